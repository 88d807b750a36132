package middleware

import (
	"net/http"

	"tzresolve/internal/platform/logger"
	pnet "tzresolve/internal/platform/net"
)

// RequestID keeps a sane client supplied X-Request-ID or mints a uuid,
// stores it on the context for both chi and the logger, and echoes it back
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := pnet.SanitizeRequestID(r.Header.Get(pnet.HeaderRequestID))
			if id == "" {
				id = pnet.NewRequestID()
			}
			ctx := pnet.WithRequest(r.Context(), id)
			ctx = logger.WithRequest(ctx, id)
			w.Header().Set(pnet.HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
