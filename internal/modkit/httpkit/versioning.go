package httpkit

import (
	"net/http"
	"strings"

	"tzresolve/internal/platform/config"
	str "tzresolve/internal/platform/strings"
)

// MountAPI scopes mount under /api/{version} with the given middleware stack.
// version may carry slashes ("/v2/"); an empty one panics at startup
//
//	httpkit.MountAPI(r, "v2", httpkit.CommonStack(cfg), func(api httpkit.Router) {
//		resolve.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	ver := str.MustString(strings.Trim(version, "/"), "api version")
	r.Route("/api/"+ver, func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 mounts the v1 API behind CommonStack(cfg)
func MountAPIV1(r Router, cfg config.Conf, mount func(Router)) {
	MountAPI(r, "v1", CommonStack(cfg), mount)
}
