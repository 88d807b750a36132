// Package swaggerkit assembles the OpenAPI document from module mutators and
// mounts the Swagger UI over it
package swaggerkit

import (
	"net/http"

	phttp "tzresolve/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI lives; the spec is served at DocsPath + "/doc.json"
const DocsPath = "/api/docs"

// Mount the Swagger UI and JSON spec if enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON())
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("tzresolve"),
		httpSwagger.URL(DocsPath+"/doc.json"),
	))
}
