package httpkit

import (
	"net/http"

	phttp "tzresolve/internal/platform/net/http"
)

// PostJSON mounts a JSON handler under POST that binds a T body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}
