// Package net provides transport-neutral request context and reply helpers
package net

import (
	"context"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request id in and out of the API
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen caps ids accepted from clients
const maxRequestIDLen = 128

// WithRequest stores reqID where chi's middleware.GetReqID finds it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// NewRequestID returns a fresh random request id
func NewRequestID() string { return uuid.NewString() }

// SanitizeRequestID keeps a client supplied id when it is short printable
// ASCII, otherwise returns ""
func SanitizeRequestID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxRequestIDLen {
		return ""
	}
	for i := 0; i < len(id); i++ {
		if c := id[i]; c < 0x21 || c > 0x7e {
			return ""
		}
	}
	return id
}
