package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/datastar-go/datastar/internal/config"
	"github.com/datastar-go/datastar/internal/demo"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var (
		addr    string
		cfgPath string
		dev     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo server",
		Long: `Start the demo server.

Configuration is read from demo.toml in the working directory when
present; flags override the file.

Examples:
  demo serve
  demo serve --addr=0.0.0.0:8000
  demo serve --config=/etc/demo.toml --dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, cfgPath, dev)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from demo.toml)")
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (default ./demo.toml)")
	cmd.Flags().BoolVar(&dev, "dev", false, "Enable development mode (debug logging)")

	return cmd
}

func runServe(addr, cfgPath string, dev bool) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.LoadFile(cfgPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return err
	}

	// Flags override the file.
	if addr != "" {
		cfg.Addr = addr
	}
	if dev {
		cfg.Dev = true
	}

	level := slog.LevelInfo
	if cfg.Dev {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	app := demo.New(cfg, log)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: app.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr, "dev", cfg.Dev, "metrics", cfg.Metrics.Enabled)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
