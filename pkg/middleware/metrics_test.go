package middleware

import (
	"bufio"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func resetMetrics() {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()
}

func TestPrometheusRecordsRequests(t *testing.T) {
	resetMetrics()
	registry := prometheus.NewRegistry()

	handler := Prometheus(WithRegistry(registry))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("ok"))
	}))

	for _, path := range []string{"/target", "/target", "/missing"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	}
	RecordStreamStart()
	RecordEvents(3)

	rec := httptest.NewRecorder()
	promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()

	for _, want := range []string{
		`datastar_requests_total{code="200",path="/target"} 2`,
		`datastar_requests_total{code="404",path="/missing"} 1`,
		`datastar_events_sent_total 3`,
		`datastar_active_streams 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}

	RecordStreamEnd()
}

func TestStatusWriterKeepsFlusher(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, code: http.StatusOK}

	var w http.ResponseWriter = sw
	flusher, ok := w.(http.Flusher)
	if !ok {
		t.Fatal("statusWriter must implement http.Flusher for SSE handlers")
	}
	flusher.Flush()
	if !rec.Flushed {
		t.Errorf("Flush was not forwarded")
	}
}

// hijackRecorder fakes the hijackable ResponseWriter a real server
// provides for upgradable requests.
type hijackRecorder struct {
	*httptest.ResponseRecorder
	hijacked bool
}

func (h *hijackRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h.hijacked = true
	c, _ := net.Pipe()
	return c, bufio.NewReadWriter(bufio.NewReader(c), bufio.NewWriter(c)), nil
}

func TestStatusWriterKeepsHijacker(t *testing.T) {
	rec := &hijackRecorder{ResponseRecorder: httptest.NewRecorder()}
	sw := &statusWriter{ResponseWriter: rec, code: http.StatusOK}

	var w http.ResponseWriter = sw
	hj, ok := w.(http.Hijacker)
	if !ok {
		t.Fatal("statusWriter must implement http.Hijacker for WebSocket upgrades")
	}
	conn, _, err := hj.Hijack()
	if err != nil {
		t.Fatalf("Hijack failed: %v", err)
	}
	conn.Close()
	if !rec.hijacked {
		t.Error("Hijack was not forwarded")
	}
}

func TestStatusWriterHijackUnsupported(t *testing.T) {
	sw := &statusWriter{ResponseWriter: httptest.NewRecorder(), code: http.StatusOK}
	if _, _, err := sw.Hijack(); err == nil {
		t.Fatal("expected an error from a non-hijackable writer")
	}
}

func TestStatusWriterDefaultsTo200(t *testing.T) {
	resetMetrics()
	registry := prometheus.NewRegistry()

	handler := Prometheus(WithRegistry(registry), WithNamespace("sample"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Implicit WriteHeader(200) via Write.
			w.Write([]byte("ok"))
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	srec := httptest.NewRecorder()
	promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP(srec, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(srec.Body.String(), `sample_requests_total{code="200",path="/"} 1`) {
		t.Errorf("expected implicit 200 to be recorded:\n%s", srec.Body.String())
	}
}

func TestRecordHelpersNoopWithoutInit(t *testing.T) {
	resetMetrics()
	// Must not panic before Prometheus() has run.
	RecordEvents(1)
	RecordStreamStart()
	RecordStreamEnd()
}
