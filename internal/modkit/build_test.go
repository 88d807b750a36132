package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tzresolve/internal/modkit/httpkit"
	"tzresolve/internal/modkit/module"
	"tzresolve/internal/modkit/swaggerkit"
	phttp "tzresolve/internal/platform/net/http"
	kit "tzresolve/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type probePorts struct{ Zone string }

func TestBuild_DefaultsAndCopies(t *testing.T) {
	b := Build()
	if b.Register == nil {
		t.Fatalf("Register should default to a no-op")
	}
	kit.MustNotPanic(t, func() { b.Register(phttp.AdaptChi(chi.NewRouter())) })

	mw := []func(http.Handler) http.Handler{func(h http.Handler) http.Handler { return h }}
	b = Build(WithName("resolve"), WithPrefix("/resolve"), WithMiddlewares(mw...), WithPorts(probePorts{Zone: "UTC"}))
	mw[0] = nil
	if b.Name != "resolve" || b.Prefix != "/resolve" || len(b.Mw) != 1 || b.Mw[0] == nil {
		t.Fatalf("unexpected build: %+v", b)
	}
	if p, ok := b.Ports.(probePorts); !ok || p.Zone != "UTC" {
		t.Fatalf("ports lost: %#v", b.Ports)
	}
}

func TestBuilt_MountUnderPrefix(t *testing.T) {
	hits := 0
	b := Build(
		WithPrefix("resolve/"),
		WithMiddlewares(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits++
				next.ServeHTTP(w, r)
			})
		}),
		WithRegister(func(r phttp.Router) {
			httpkit.Get(r, "/ping", func(*http.Request) (any, error) { return "pong", nil })
		}),
	)
	root := phttp.AdaptChi(chi.NewRouter())
	b.Mount(root)

	rec := httptest.NewRecorder()
	root.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resolve/ping", nil))
	if rec.Code != http.StatusOK || hits != 1 {
		t.Fatalf("status=%d hits=%d", rec.Code, hits)
	}
}

func TestBuilt_MountWithoutPrefix(t *testing.T) {
	b := Build(WithRegister(func(r phttp.Router) {
		httpkit.Get(r, "/bare", func(*http.Request) (any, error) { return nil, nil })
	}))
	root := phttp.AdaptChi(chi.NewRouter())
	b.Mount(root)

	rec := httptest.NewRecorder()
	root.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bare", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestBuilt_Publish(t *testing.T) {
	kit.Serial(t)
	module.Reset()
	swaggerkit.Reset()
	t.Cleanup(func() {
		module.Reset()
		swaggerkit.Reset()
	})

	b := Build(
		WithName("probe"),
		WithPorts(probePorts{Zone: "Asia/Tokyo"}),
		WithDocs(func(spec map[string]any) {
			spec["x-probe"] = "Asia/Tokyo"
		}),
	)
	b.Publish()

	got, ok := module.PortsAs[probePorts]("probe")
	if !ok || got.Zone != "Asia/Tokyo" {
		t.Fatalf("ports not registered: %v %+v", ok, got)
	}
	spec, err := swaggerkit.Spec()
	if err != nil || spec["x-probe"] != "Asia/Tokyo" {
		t.Fatalf("docs mutator not registered: %v %v", err, spec["x-probe"])
	}
}

func TestDeps_Fallbacks(t *testing.T) {
	var d Deps
	if d.Logger() == nil {
		t.Fatalf("Logger fallback is nil")
	}
	if d.TimeResolver() == nil {
		t.Fatalf("TimeResolver fallback is nil")
	}
}
