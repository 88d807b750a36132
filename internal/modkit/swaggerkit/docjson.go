package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"tzresolve/internal/core/version"
	"tzresolve/internal/platform/config"

	docs "tzresolve/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed swagger spec before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// docReader is a seam so tests can inject invalid JSON without patching swagger
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator. Modules call it when they are published
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Reset clears registered mutators for tests
func Reset() {
	mu.Lock()
	mutators = nil
	mu.Unlock()
}

// Spec parses the generated document and applies the global fixes and every mutator
func Spec() (map[string]any, error) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
		return nil, err
	}

	// OAS3 base url lives in servers, not BasePath
	ensureServers(spec, "/api/v1")

	if info, ok := spec["info"].(map[string]any); ok {
		if v, _ := info["version"].(string); v == "" {
			info["version"] = version.Info("tzresolve-api").Version
		}
		cfg := config.New().Prefix("TZ_API_")
		if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + v
			}
		}
	}

	ensureErrorResponseDefinition(spec)
	AddErrorResponse(spec, "", "500", "Internal Server Error", map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        1,
		"kind":        "panic",
		"error":       "panic recovered",
		"request_id":  "6f1c1f0e-3b7a-4d8e-9b1e-2f0c7d4a9e51",
	})
	AddErrorResponse(spec, "", "400", "Bad Request", map[string]any{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        4,
		"kind":        "validation",
		"error":       "zone must be an IANA time zone name",
		"field":       "zone",
		"request_id":  "6f1c1f0e-3b7a-4d8e-9b1e-2f0c7d4a9e51",
	})

	mu.RLock()
	ms := append([]SpecMutator(nil), mutators...)
	mu.RUnlock()
	for _, m := range ms {
		m(spec)
	}
	return spec, nil
}

// serveDocJSON serves swagger JSON and lets modules adjust details
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := Spec()
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers makes sure the spec is OAS3 and has a servers array
// swagger http ui can't support 3.1 at the moment, so downconvert if needed
func ensureServers(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		spec["openapi"] = "3.0.3"
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition creates the error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"kind":        map[string]any{"type": "string"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// AddErrorResponse injects an ErrorResponse for status on every operation under
// prefix that lacks one. An empty prefix matches every path; example may be nil
func AddErrorResponse(spec map[string]any, prefix, status, desc string, example map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	body := map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"}}
	if example != nil {
		body["example"] = example
	}
	resp := map[string]any{
		"description": desc,
		"content":     map[string]any{"application/json": body},
	}
	for path, p := range paths {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
