package httpkit

import (
	"net/http"

	"tzresolve/internal/platform/config"
	"tzresolve/internal/platform/net/middleware"
)

// CommonStack returns the baseline API middleware slice configured from cfg
// (an API-prefixed config, see middleware.Defaults)
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	return append(middleware.Defaults(cfg), middleware.StripSlashes())
}
