package module

import "tzresolve/internal/modkit/swaggerkit"

// docs adds the domain failure response every resolve route can return
func docs(spec map[string]any) {
	swaggerkit.AddErrorResponse(spec, "/resolve/", "422", "Parse, conversion, zone or date range failure", map[string]any{
		"status_code": 422,
		"status":      "Unprocessable Entity",
		"code":        8,
		"kind":        "conversion",
		"error":       "2020-03-08 02:00 does not exist in America/New_York",
		"request_id":  "6f1c1f0e-3b7a-4d8e-9b1e-2f0c7d4a9e51",
	})
}
