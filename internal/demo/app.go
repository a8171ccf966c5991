package demo

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/datastar-go/datastar/internal/config"
	"github.com/datastar-go/datastar/pkg/middleware"
)

// App wires the demo handlers onto a router with the configured
// middleware stack.
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	feed     *FeedState
	upgrader websocket.Upgrader
}

// New creates the demo application. A nil logger falls back to
// slog.Default.
func New(cfg *config.Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{
		cfg:  cfg,
		log:  log.With("component", "demo"),
		feed: &FeedState{},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Router builds the HTTP routes.
func (a *App) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.OpenTelemetry())
	if a.cfg.Metrics.Enabled {
		r.Use(middleware.Prometheus())
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/", a.handleIndex)
	r.Get("/get", a.handleGet)
	r.Get("/target", a.handleTarget)
	r.Get("/multi-target", a.handleMultiTarget)
	r.Get("/update-store", a.handleUpdateStore)
	r.Get("/toggle", a.handleToggle)
	r.Get("/feed", a.handleFeed)
	r.Get("/feed/ws", a.handleFeedWS)
	r.Get("/healthz", a.handleHealthz)

	return r
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}
