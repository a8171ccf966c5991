// Command demo-inline is the single-file rendition of the Datastar demo:
// the SSE formatting lives right here instead of going through the
// library packages.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	listenAddr   = "127.0.0.1:8000"
	timeFormat   = "2006-01-02 15:04:05"
	feedInterval = time.Second
)

type mergeType string

const (
	mergeMorph            mergeType = "morph_element"
	mergeInner            mergeType = "inner_element"
	mergeOuter            mergeType = "outer_element"
	mergePrepend          mergeType = "prepend_element"
	mergeAppend           mergeType = "append_element"
	mergeBefore           mergeType = "before_element"
	mergeAfter            mergeType = "after_element"
	mergeDelete           mergeType = "delete_element"
	mergeUpsertAttributes mergeType = "upsert_attributes"
)

// formatFragment builds a datastar-fragment SSE frame. Directive order:
// selector, merge, settle, vt, then the fragment itself.
func formatFragment(fragment string, merge mergeType, selector string, settle int, vt *bool) string {
	var lines []string
	if selector != "" {
		lines = append(lines, "selector "+selector)
	}
	if merge != "" {
		lines = append(lines, "merge "+string(merge))
	}
	if settle > 0 {
		lines = append(lines, "settle "+strconv.Itoa(settle))
	}
	if vt != nil {
		lines = append(lines, "vt "+strconv.FormatBool(*vt))
	}
	lines = append(lines, "fragment "+fragment)
	return "event: datastar-fragment\ndata: " + strings.Join(lines, "\ndata: ") + "\n\n"
}

// formatSignal builds a datastar-signal SSE frame carrying a store patch.
func formatSignal(store map[string]any) string {
	data, err := json.Marshal(store)
	if err != nil {
		data = []byte(`{}`)
	}
	return "event: datastar-signal\ndata: " + string(data) + "\n\n"
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <title>Go SSE with Datastar</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <script type="module" defer src="https://cdn.jsdelivr.net/npm/@sudodevnull/datastar@0.18.13/dist/datastar.min.js"></script>
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/water.css@2/out/water.css">
</head>
<body>
    <h2>Go + Datastar Example</h2>
    <main class="container" id="main" data-store='{"input": "datastar", "output": "", "_show": false, "message": "", "send": "", "update_store": ""}'>

        <hr />

        <input type="text" placeholder="Send to server..." data-model="input" />
        <button data-on-click="$$get('/get')">Send State Roundtrip</button>
        <div id="output" data-text="$output"></div>
        <hr />

        <button data-on-click="$$get('/target')">Target single HTML Element</button>
        <div id="single_target"></div>
        <hr />

        <button data-on-click="$$get('/multi-target')">Target multiple HTML Element</button>
        <div id="target_1"></div>
        <div id="target_2"></div>
        <div id="target_3"></div>
        <hr />

        <button data-on-click="$$get('/update-store')">Update ` + "`data-store`" + ` only</button>
        <div id="update_store" data-text="'Data-store variable: update_store=' + $update_store"></div>
        <hr />

        <button data-on-click="$_show=!$_show">Toggle Show Feed</button>
        <div data-show="$_show">
        <button data-on-click="$$get('/toggle')">Toggle Feed from server</button>
        <span>Feed from server: <span data-text="$send ? 'Active' : 'Inactive'"></span></span>
        <div id="feeds" style="border: 1px solid red; max-height: 300px; overflow:auto;" data-on-load="$$get('/feed')">
            <div id="feed"></div>
        </div>
        </div>
        <hr />

    </main>
</body>
</html>
`

// server holds the shared demo state.
type server struct {
	log *slog.Logger

	mu   sync.Mutex
	send bool
	i    int
}

func newServer(log *slog.Logger) *server {
	if log == nil {
		log = slog.Default()
	}
	return &server{log: log}
}

func (s *server) router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/get", s.handleGet)
	r.Get("/target", s.handleTarget)
	r.Get("/multi-target", s.handleMultiTarget)
	r.Get("/update-store", s.handleUpdateStore)
	r.Get("/toggle", s.handleToggle)
	r.Get("/feed", s.handleFeed)

	return r
}

// sseResponse writes headers and one or more complete SSE frames.
func sseResponse(w http.ResponseWriter, frames ...string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return fmt.Errorf("response writer does not support streaming")
	}
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	for _, frame := range frames {
		if _, err := io.WriteString(w, frame); err != nil {
			return err
		}
		flusher.Flush()
	}
	return nil
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, indexHTML)
}

func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
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
	fragment := fmt.Sprintf(`<main id="main" data-store='%s'></main>`, storeJSON)
	if err := sseResponse(w, formatFragment(fragment, mergeUpsertAttributes, "", 0, nil)); err != nil {
		s.log.Error("write sse response", "err", err)
	}
}

func (s *server) handleTarget(w http.ResponseWriter, r *http.Request) {
	fragment := fmt.Sprintf(`<div id='single_target'><b>%s</b></div>`, time.Now().Format(timeFormat))
	if err := sseResponse(w, formatFragment(fragment, "", "", 0, nil)); err != nil {
		s.log.Error("write sse response", "err", err)
	}
}

func (s *server) handleMultiTarget(w http.ResponseWriter, r *http.Request) {
	ts := time.Now().Format(timeFormat)
	frames := make([]string, 0, 3)
	for i := 1; i <= 3; i++ {
		fragment := fmt.Sprintf(`<div id="target_%d"><b>%s - Target %d</b></div>`, i, ts, i)
		frames = append(frames, formatFragment(fragment, "", "", 0, nil))
	}
	if err := sseResponse(w, frames...); err != nil {
		s.log.Error("write sse response", "err", err)
	}
}

func (s *server) handleUpdateStore(w http.ResponseWriter, r *http.Request) {
	store := map[string]any{
		"update_store": fmt.Sprintf("Update `data-store` only: %s", time.Now().Format(timeFormat)),
	}
	if err := sseResponse(w, formatSignal(store)); err != nil {
		s.log.Error("write sse response", "err", err)
	}
}

func (s *server) handleToggle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.send = !s.send
	active := s.send
	s.mu.Unlock()
	s.log.Info("feed toggled", "active", active)

	if err := sseResponse(w, formatSignal(map[string]any{"send": active})); err != nil {
		s.log.Error("write sse response", "err", err)
	}
}

// handleFeed streams a numbered timestamp into #feeds every second while
// the feed is toggled on.
func (s *server) handleFeed(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(feedInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			if !s.send {
				s.mu.Unlock()
				continue
			}
			s.i++
			n := s.i
			s.mu.Unlock()

			vt := false
			fragment := fmt.Sprintf(`<div id="feed">%d - %s</div>`, n, time.Now().Format(timeFormat))
			frame := formatFragment(fragment, mergePrepend, "#feeds", 0, &vt)
			if _, err := io.WriteString(w, frame); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	srv := newServer(log)
	log.Info("server listening", "addr", listenAddr)
	if err := http.ListenAndServe(listenAddr, srv.router()); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}
