package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"tzresolve/internal/platform/config"
	"tzresolve/internal/platform/logger"
	pnet "tzresolve/internal/platform/net"
	kit "tzresolve/internal/platform/testkit"
)

// syncBuf guards the shared log sink across handlers
type syncBuf struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuf) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuf) take() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.buf.String()
	s.buf.Reset()
	return out
}

var logs = &syncBuf{}

func TestMain(m *testing.M) {
	logger.Init(logger.Options{Level: "debug", Format: "json", Writer: logs})
	os.Exit(m.Run())
}

func TestRequestID_MintsAndEchoes(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || len(seen) != 36 {
		t.Fatalf("expected a uuid request id, got %q", seen)
	}
	if got := rec.Header().Get(pnet.HeaderRequestID); got != seen {
		t.Fatalf("header = %q, want %q", got, seen)
	}
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(pnet.HeaderRequestID, "abc-123")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "abc-123" {
		t.Fatalf("client id dropped, got %q", seen)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(pnet.HeaderRequestID, "bad id\x01")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen == "bad id\x01" || seen == "" {
		t.Fatalf("unsafe id should be replaced, got %q", seen)
	}
}

func TestRecoverJSON(t *testing.T) {
	h := RequestID()(RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(pnet.HeaderRequestID, "req-1")
	rec := httptest.NewRecorder()
	kit.MustNotPanic(t, func() { h.ServeHTTP(rec, req) })

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var env pnet.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.RequestID != "req-1" || env.Kind != "panic" || env.Error != "panic recovered" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	kit.MustContain(t, logs.take(), "kaboom")
}

func TestRecoverJSON_AbortHandlerPropagates(t *testing.T) {
	h := RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	kit.MustPanic(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestAccessLogZerolog_Levels(t *testing.T) {
	cases := []struct {
		name   string
		status int
		sleep  time.Duration
		slow   time.Duration
		level  string
	}{
		{"ok", http.StatusOK, 0, 0, `"level":"info"`},
		{"slow", http.StatusOK, 5 * time.Millisecond, time.Millisecond, `"level":"warn"`},
		{"server error", http.StatusInternalServerError, 0, 0, `"level":"error"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			logs.take()
			h := RequestID()(AccessLogZerolog(AccessLogOptions{Slow: c.slow})(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					time.Sleep(c.sleep)
					w.WriteHeader(c.status)
					_, _ = w.Write([]byte("hello"))
				})))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/resolve/date", nil)
			req.Header.Set(pnet.HeaderRequestID, "log-1")
			h.ServeHTTP(httptest.NewRecorder(), req)

			out := logs.take()
			kit.MustContain(t, out, c.level)
			kit.MustContain(t, out, `"request_id":"log-1"`)
			kit.MustContain(t, out, `"path":"/api/v1/resolve/date"`)
			kit.MustContain(t, out, `"bytes":5`)
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS(CORSOptions{AllowedOrigins: []string{"https://app.example"}})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/resolve/date", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("allow origin = %q", got)
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost) {
		t.Fatalf("allow methods = %q", rec.Header().Get("Access-Control-Allow-Methods"))
	}
}

func TestDefaults_Throttle(t *testing.T) {
	cfg := config.New().Prefix("MWTEST_")
	base := len(Defaults(cfg))

	t.Setenv("MWTEST_THROTTLE", "4")
	if got := len(Defaults(cfg)); got != base+1 {
		t.Fatalf("throttle not appended: %d vs %d", got, base)
	}
}

func TestDefaults_ServesThroughStack(t *testing.T) {
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if pnet.RequestID(r.Context()) == "" {
			t.Errorf("request id missing inside stack")
		}
		w.WriteHeader(http.StatusNoContent)
	})
	stack := Defaults(config.New().Prefix("MWTEST_"))
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get(pnet.HeaderRequestID) == "" {
		t.Fatalf("request id header missing")
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("NoCache header missing")
	}
}
