// Package api provides the HTTP API for the application
package api

import (
	"context"

	"tzresolve/internal/core/datetime"
	"tzresolve/internal/platform/config"
	perr "tzresolve/internal/platform/errors"
	"tzresolve/internal/platform/logger"
	phttp "tzresolve/internal/platform/net/http"

	"tzresolve/internal/modkit"
	"tzresolve/internal/modkit/httpkit"
	"tzresolve/internal/modkit/module"
	"tzresolve/internal/modkit/swaggerkit"

	metahttp "tzresolve/internal/services/api/meta/http"
	metamod "tzresolve/internal/services/api/meta/module"
	resolvedomain "tzresolve/internal/services/api/resolve/domain"
	resolvemod "tzresolve/internal/services/api/resolve/module"
)

// Options are the API options
type Options struct {
	// Config is the API-prefixed config (TZ_API_)
	Config         config.Conf
	Resolver       *datetime.Resolver
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// publisher is implemented by modules that register ports and docs
type publisher interface{ Publish() }

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:      opt.Logger,
		Cfg:      opt.Config,
		Resolver: opt.Resolver,
	}

	// meta's readiness probe loads zones through the resolve module's port
	resolve := resolvemod.New(deps)
	mods := []module.Module{
		metamod.New(deps, module.MustPortsOf[metahttp.ZoneProber](resolve)),
		resolve,
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, opt.Config, func(api httpkit.Router) {
		for _, m := range mods {
			if p, ok := m.(publisher); ok {
				p.Publish()
			} else {
				module.Register(m.Name(), m.Ports())
			}
			m.MountRoutes(api)
		}
	})

	deps.Logger().Info().
		Int("modules", len(mods)).
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Msg("api mounted")
}

// SelfCheck resolves a fixed date through the published resolve ports, so a
// process with a broken tz database fails before it takes traffic
func SelfCheck(ctx context.Context) (resolvedomain.Instant, error) {
	ports, ok := module.PortsAs[resolvemod.Ports]("resolve")
	if !ok || ports.Service == nil {
		return resolvedomain.Instant{}, perr.New(perr.ErrorCodeUnavailable, "resolve module not published")
	}
	return ports.Service.ResolveDate(ctx, resolvedomain.DateInput{Date: "2020-02-10", Hour: 18, Zone: "UTC"})
}
