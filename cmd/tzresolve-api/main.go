// @title         tzresolve API
// @version       0.1.0
// @description   Resolves calendar dates and foreign timestamps to instants in the server's local zone
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"tzresolve/internal/core/datetime"
	"tzresolve/internal/platform/config"
	"tzresolve/internal/platform/logger"
	phttp "tzresolve/internal/platform/net/http"
	"tzresolve/internal/platform/net/middleware"
	ptime "tzresolve/internal/platform/time"

	"tzresolve/internal/services/api"

	"github.com/go-chi/chi/v5"
)

func main() {
	// service-scoped config for HTTP etc (TZ_API_*)
	root := config.New()
	apiCfg := root.Prefix("TZ_API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// one resolver for the process; local zone from TZ_LOCAL_ZONE or the host
	local, err := ptime.LoadLocalZone()
	if err != nil {
		l.Panic().Err(err).Msg("bad local zone")
	}
	res := datetime.New(datetime.WithLogger(logger.Named("resolver")), datetime.WithLocal(local))
	l.Info().Str("local_zone", local.String()).Msg("resolver ready")

	// http server (reads TZ_API_PORT and timeouts); heartbeat sits outside the API stack
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/health"))
	})

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Resolver:       res,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	probe, err := api.SelfCheck(ctx)
	if err != nil {
		l.Panic().Err(err).Msg("resolve self check failed")
	}
	l.Info().Str("probe", probe.Local).Msg("resolve self check ok")

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("http server stopped")
}
