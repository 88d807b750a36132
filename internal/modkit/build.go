package modkit

import (
	"net/http"

	"tzresolve/internal/modkit/httpkit"
	"tzresolve/internal/modkit/module"
	"tzresolve/internal/modkit/swaggerkit"
	pstrings "tzresolve/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Docs     []swaggerkit.SpecMutator
	Register func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Docs:     append([]swaggerkit.SpecMutator(nil), c.docs...),
		Register: c.register,
	}
}

// Mount mounts the built module under its prefix with its middleware.
// An empty prefix registers directly on r
func (b Built) Mount(r httpkit.Router) {
	if b.Prefix == "" {
		b.Register(r)
		return
	}
	httpkit.MountUnder(r, pstrings.MustPrefix(b.Prefix), b.Mw, b.Register)
}

// Publish registers the module's ports and docs in the process registries
func (b Built) Publish() {
	if b.Name != "" && b.Ports != nil {
		module.Register(b.Name, b.Ports)
	}
	for _, m := range b.Docs {
		swaggerkit.Register(m)
	}
}
