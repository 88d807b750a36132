package http

import (
	"context"
	"encoding/json"
	"net"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tzresolve/internal/platform/config"
	perr "tzresolve/internal/platform/errors"
	pnet "tzresolve/internal/platform/net"

	"github.com/go-chi/chi/v5"
)

type zoneIn struct {
	Zone string `json:"zone" validate:"required,timezone"`
}

func reqWithReqID(method, target, body, id string) *stdhttp.Request {
	var r *stdhttp.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return r.WithContext(pnet.WithRequest(r.Context(), id))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestRouter_MethodsGroupRoute(t *testing.T) {
	root := AdaptChi(chi.NewRouter())
	var order []string
	root.Use(func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			order = append(order, "mw")
			next.ServeHTTP(w, r)
		})
	})
	root.Route("/resolve", func(r Router) {
		r.Post("/date", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(stdhttp.StatusCreated) })
		r.Group(func(g Router) {
			g.Get("/zones/{name}", func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
				_, _ = w.Write([]byte(URLParam(r, "name")))
			})
		})
	})
	root.Handle("/raw", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusAccepted)
	}))

	cases := []struct {
		method, path string
		code         int
		body         string
	}{
		{stdhttp.MethodPost, "/resolve/date", stdhttp.StatusCreated, ""},
		{stdhttp.MethodGet, "/resolve/date", stdhttp.StatusMethodNotAllowed, ""},
		{stdhttp.MethodGet, "/resolve/zones/UTC", stdhttp.StatusOK, "UTC"},
		{stdhttp.MethodGet, "/raw", stdhttp.StatusAccepted, ""},
		{stdhttp.MethodGet, "/missing", stdhttp.StatusNotFound, ""},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		root.Mux().ServeHTTP(rec, httptest.NewRequest(c.method, c.path, nil))
		if rec.Code != c.code {
			t.Fatalf("%s %s = %d, want %d", c.method, c.path, rec.Code, c.code)
		}
		if c.body != "" && rec.Body.String() != c.body {
			t.Fatalf("%s %s body = %q", c.method, c.path, rec.Body.String())
		}
	}
	if len(order) != len(cases) {
		t.Fatalf("middleware ran %d times, want %d", len(order), len(cases))
	}
}

func TestHandle_SuccessAndError(t *testing.T) {
	ok := Handle(func(r *stdhttp.Request) Response { return OK(map[string]int{"unix": 1}) })
	rec := httptest.NewRecorder()
	ok(rec, reqWithReqID(stdhttp.MethodGet, "/", "", "rid-1"))
	env := decode(t, rec)
	if rec.Code != stdhttp.StatusOK || env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("unexpected success: %d %+v", rec.Code, env)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}

	bad := Handle(func(r *stdhttp.Request) Response {
		return Error(perr.WithField(perr.Conversionf("wall clock does not exist"), "hour"))
	})
	rec = httptest.NewRecorder()
	bad(rec, reqWithReqID(stdhttp.MethodGet, "/", "", "rid-2"))
	env = decode(t, rec)
	if rec.Code != stdhttp.StatusUnprocessableEntity || env.Kind != "conversion" || env.Field != "hour" || env.RequestID != "rid-2" {
		t.Fatalf("unexpected error: %d %+v", rec.Code, env)
	}
}

func TestResponse_Headers(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response {
		return Response{Status: stdhttp.StatusCreated, Body: "x", Header: stdhttp.Header{"X-Zone": {"UTC"}}}
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if rec.Code != stdhttp.StatusCreated || rec.Header().Get("X-Zone") != "UTC" {
		t.Fatalf("unexpected: %d %v", rec.Code, rec.Header())
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, reqWithReqID(stdhttp.MethodGet, "/", "", "rid-3"), perr.NotFoundf("nope"))
	env := decode(t, rec)
	if rec.Code != stdhttp.StatusNotFound || env.Error != "nope" || env.RequestID != "rid-3" {
		t.Fatalf("unexpected: %d %+v", rec.Code, env)
	}
}

func TestJSONHandler_BindAndValidate(t *testing.T) {
	r := AdaptChi(chi.NewRouter())
	PostJSON(r, "/zone", func(_ *stdhttp.Request, in zoneIn) (any, error) {
		return map[string]string{"zone": in.Zone}, nil
	})
	GetJSON(r, "/fail", func(_ *stdhttp.Request) (any, error) {
		return nil, perr.Timezonef("unknown zone")
	})
	GetJSON(r, "/custom", func(_ *stdhttp.Request) (any, error) {
		return Response{Status: stdhttp.StatusAccepted}, nil
	})

	cases := []struct {
		method, path, body string
		code               int
		kind               string
	}{
		{stdhttp.MethodPost, "/zone", `{"zone":"Europe/Berlin"}`, stdhttp.StatusOK, ""},
		{stdhttp.MethodPost, "/zone", `{"zone":"Mars/Olympus"}`, stdhttp.StatusBadRequest, "validation"},
		{stdhttp.MethodPost, "/zone", `{"zone":`, stdhttp.StatusBadRequest, "json"},
		{stdhttp.MethodGet, "/fail", "", stdhttp.StatusUnprocessableEntity, "timezone"},
		{stdhttp.MethodGet, "/custom", "", stdhttp.StatusAccepted, ""},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, reqWithReqID(c.method, c.path, c.body, "rid"))
		env := decode(t, rec)
		if rec.Code != c.code || env.Kind != c.kind {
			t.Fatalf("%s %s = %d %+v", c.method, c.path, rec.Code, env)
		}
	}
}

func TestMountProfiler(t *testing.T) {
	off := AdaptChi(chi.NewRouter())
	MountProfiler(off, "/debug", false)
	rec := httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/", nil))
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("disabled profiler served %d", rec.Code)
	}

	on := AdaptChi(chi.NewRouter())
	MountProfiler(on, "/debug", true)
	rec = httptest.NewRecorder()
	on.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/", nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("profiler index = %d", rec.Code)
	}
}

func TestServer_ConfigAndOptions(t *testing.T) {
	t.Setenv("SRVTEST_PORT", "127.0.0.1:0")
	t.Setenv("SRVTEST_READ_TIMEOUT", "3s")

	hooked := false
	s := NewServer(config.New().Prefix("SRVTEST_"), func(m *chi.Mux) { hooked = m != nil })
	if !hooked {
		t.Fatalf("option hook not called")
	}
	if s.Addr() != "127.0.0.1:0" || s.srv.ReadTimeout != 3*time.Second {
		t.Fatalf("config not applied: %q %v", s.Addr(), s.srv.ReadTimeout)
	}
}

func TestServer_ServeUntilCanceled(t *testing.T) {
	s := NewServer(config.New().Prefix("SRVTEST_"))
	s.Router().Get("/ping", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte("pong")) })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := stdhttp.Get("http://" + ln.Addr().String() + "/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("ping status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}

func TestServer_RunBadAddr(t *testing.T) {
	t.Setenv("SRVTEST_PORT", "256.0.0.1:bad")
	s := NewServer(config.New().Prefix("SRVTEST_"))
	if err := s.Run(context.Background()); err == nil {
		t.Fatalf("expected listen error")
	}
}
