// Package modkit provides module wiring and core deps
package modkit

import (
	"tzresolve/internal/core/datetime"
	"tzresolve/internal/platform/config"
	"tzresolve/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log      *logger.Logger
	Cfg      config.Conf
	Resolver *datetime.Resolver
}

// Logger returns Log or the process logger when unset
func (d Deps) Logger() *logger.Logger {
	if d.Log == nil {
		return logger.Get()
	}
	return d.Log
}

// TimeResolver returns Resolver or the package default when unset
func (d Deps) TimeResolver() *datetime.Resolver {
	if d.Resolver == nil {
		return datetime.Default()
	}
	return d.Resolver
}
