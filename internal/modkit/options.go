package modkit

import (
	"net/http"

	"tzresolve/internal/modkit/swaggerkit"
	phttp "tzresolve/internal/platform/net/http"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

// buildCfg is internal wiring state for options
type buildCfg struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	ports    any
	docs     []swaggerkit.SpecMutator
	register func(phttp.Router)
}

// WithName sets a module name used in logs and registry
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix mounts a module under a path prefix
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts sets the port set a module exposes to others
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}

// WithDocs adds OpenAPI mutators describing the module's routes
func WithDocs(m ...swaggerkit.SpecMutator) Option {
	return func(c *buildCfg) { c.docs = append(c.docs, m...) }
}

// WithRegister sets the function that attaches endpoints to the module router
func WithRegister(fn func(phttp.Router)) Option {
	return func(c *buildCfg) { c.register = fn }
}
