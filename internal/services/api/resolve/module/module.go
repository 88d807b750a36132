// Package module wires resolve into the API using modkit
package module

import (
	modkit "tzresolve/internal/modkit"
	"tzresolve/internal/modkit/httpkit"
	str "tzresolve/internal/platform/strings"
	"tzresolve/internal/services/api/resolve/domain"
	resolvehttp "tzresolve/internal/services/api/resolve/http"
	resolvesvc "tzresolve/internal/services/api/resolve/service"
)

// Ports is the port set the resolve module exposes to other modules
type Ports struct {
	Service domain.ServicePort
	Zones   domain.ZonePort
}

// Module implements the resolve module
type Module struct {
	built modkit.Built
	svc   resolvesvc.Service
}

// New constructs the resolve module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	res := deps.TimeResolver()
	svc := resolvesvc.New(res)

	m := &Module{svc: svc}
	base := []modkit.Option{
		modkit.WithName("resolve"),
		modkit.WithPrefix("/resolve"),
		modkit.WithPorts(Ports{Service: svc, Zones: res}),
		modkit.WithDocs(docs),
	}
	b := modkit.Build(append(base, opts...)...)

	external := b.Register
	b.Register = func(r httpkit.Router) {
		resolvehttp.Register(r, m.svc)
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports returns the resolve port set
func (m *Module) Ports() any { return m.built.Ports }

// Publish registers the module's ports and OpenAPI docs
func (m *Module) Publish() { m.built.Publish() }
