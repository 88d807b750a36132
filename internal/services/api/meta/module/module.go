// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "tzresolve/internal/modkit"
	"tzresolve/internal/modkit/httpkit"
	str "tzresolve/internal/platform/strings"
	metahttp "tzresolve/internal/services/api/meta/http"
)

// ServiceName is reported by the meta endpoints
const ServiceName = "tzresolve-api"

// Module implements the modkit.Module interface
type Module struct {
	built     modkit.Built
	startedAt time.Time
}

// New constructs a meta module. zones is probed by /ready; nil probes the
// resolver in deps
func New(deps modkit.Deps, zones metahttp.ZoneProber, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{startedAt: time.Now()}
	res := deps.TimeResolver()
	if zones == nil {
		zones = res
	}

	external := b.Register
	b.Register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Local:       res.Local,
			Zones:       zones,
		})
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
