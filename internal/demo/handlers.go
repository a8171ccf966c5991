package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/datastar-go/datastar/pkg/el"
	"github.com/datastar-go/datastar/pkg/middleware"
	"github.com/datastar-go/datastar/pkg/sse"
)

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, err := el.RenderPage(IndexPage(InitialStore()))
	if err != nil {
		a.log.Error("render index", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// handleGet echoes the client store back with the output field set,
// applied as an attribute upsert on the main element.
func (a *App) handleGet(w http.ResponseWriter, r *http.Request) {
	var store map[string]any
	if err := json.Unmarshal([]byte(r.URL.Query().Get("datastar")), &store); err != nil {
		http.Error(w, "invalid datastar query parameter", http.StatusBadRequest)
		return
	}
	input, _ := store["input"].(string)
	store["output"] = fmt.Sprintf("Your input: %s, is %d long.", input, utf8.RuneCountInString(input))

	storeJSON, err := json.Marshal(store)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sw, err := sse.NewWriter(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fragment := fmt.Sprintf(`<main id="main" data-store='%s'></main>`, storeJSON)
	if err := sw.SendFragment(fragment, sse.WithMerge(sse.MergeUpsertAttributes)); err != nil {
		a.log.Error("send fragment", "err", err)
		return
	}
	middleware.RecordEvents(1)
}

func (a *App) handleTarget(w http.ResponseWriter, r *http.Request) {
	html, err := el.Render(el.Div(el.ID("single_target"), el.B(el.Text(a.now()))))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sw, err := sse.NewWriter(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := sw.SendFragment(html); err != nil {
		a.log.Error("send fragment", "err", err)
		return
	}
	middleware.RecordEvents(1)
}

// handleMultiTarget updates three targets in a single response, each
// fragment with its own merge strategy.
func (a *App) handleMultiTarget(w http.ResponseWriter, r *http.Request) {
	sw, err := sse.NewWriter(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ts := a.now()
	events := []*sse.Event{
		sse.Fragment(fmt.Sprintf(`<div id="target_1"><b>%s - Target 1</b></div>`, ts),
			sse.WithMerge(sse.MergeInner)),
		sse.Fragment(fmt.Sprintf(`<div id="target_2"><b>%s - Target 2</b></div>`, ts),
			sse.WithMerge(sse.MergePrepend), sse.WithSelector("#target_2")),
		sse.Fragment(fmt.Sprintf(`<div id="target_3"><b>%s - Target 3</b></div>`, ts)),
	}
	for _, ev := range events {
		if err := sw.Send(ev); err != nil {
			a.log.Error("send fragment", "err", err)
			return
		}
	}
	middleware.RecordEvents(len(events))
}

func (a *App) handleUpdateStore(w http.ResponseWriter, r *http.Request) {
	sw, err := sse.NewWriter(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	store := map[string]any{
		"update_store": fmt.Sprintf("Update `data-store` only: %s", a.now()),
	}
	if err := sw.SendSignal(store); err != nil {
		a.log.Error("send signal", "err", err)
		return
	}
	middleware.RecordEvents(1)
}

func (a *App) handleToggle(w http.ResponseWriter, r *http.Request) {
	active := a.feed.Toggle()
	a.log.Info("feed toggled", "active", active)

	sw, err := sse.NewWriter(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := sw.SendSignal(map[string]any{"send": active}); err != nil {
		a.log.Error("send signal", "err", err)
		return
	}
	middleware.RecordEvents(1)
}

// handleFeed holds the connection open and prepends a numbered
// timestamp into #feeds on every tick while the feed is active.
func (a *App) handleFeed(w http.ResponseWriter, r *http.Request) {
	sw, err := sse.NewWriter(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sw.Flush()
	middleware.RecordStreamStart()
	defer middleware.RecordStreamEnd()
	a.log.Info("feed stream opened", "conn", sw.ID())

	streamer := &sse.Streamer{
		Interval:  a.cfg.FeedInterval(),
		Condition: a.feed.Active,
	}
	if err := streamer.Stream(r.Context(), sw, a.nextFeedEvent); err != nil {
		a.log.Debug("feed stream closed", "conn", sw.ID(), "err", err)
	}
}

// handleFeedWS serves the same feed frames over a WebSocket.
func (a *App) handleFeedWS(w http.ResponseWriter, r *http.Request) {
	ws, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		a.log.Warn("websocket upgrade failed", "err", err)
		return
	}
	conn := sse.NewConn(ws)
	defer conn.Close()

	middleware.RecordStreamStart()
	defer middleware.RecordStreamEnd()

	// A hijacked request's context is not cancelled on disconnect, so a
	// read pump detects the client going away and ends the stream.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	streamer := &sse.Streamer{
		Interval:  a.cfg.FeedInterval(),
		Condition: a.feed.Active,
	}
	if err := streamer.Stream(ctx, conn, a.nextFeedEvent); err != nil {
		a.log.Debug("websocket feed closed", "err", err)
	}
}

func (a *App) nextFeedEvent(ctx context.Context) (*sse.Event, error) {
	n := a.feed.Next()
	middleware.RecordEvents(1)
	return sse.Fragment(
		fmt.Sprintf(`<div id="feed">%d - %s</div>`, n, a.now()),
		sse.WithMerge(sse.MergePrepend),
		sse.WithSelector("#feeds"),
		sse.WithViewTransitions(false),
	), nil
}

func (a *App) now() string {
	return time.Now().Format(TimeFormat)
}
