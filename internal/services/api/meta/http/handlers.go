// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"tzresolve/internal/core/version"
	"tzresolve/internal/modkit/httpkit"
)

// ZoneProber is satisfied by anything that can load a zone by name
type ZoneProber interface {
	Zone(name string) (*time.Location, error)
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Local returns the zone results are expressed in
	Local func() *time.Location
	// Zones is probed by /ready; nil skips the check
	Zones ZoneProber
	// Probe is the zone name /ready loads
	Probe string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Probe == "" {
		d.Probe = "UTC"
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"tzresolve-api"`
	Started string `json:"started" example:"2026-01-15T13:00:00Z"`
	Now     string `json:"now"     example:"2026-01-15T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"tzdata"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"unknown time zone UTC"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-01-15T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name      string `json:"name"       example:"tzresolve-api"`
	Started   string `json:"started"    example:"2026-01-15T13:00:00Z"`
	Uptime    int64  `json:"uptime"     example:"300"`
	LocalZone string `json:"local_zone" example:"America/New_York"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe, loads a zone from the tz database
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} ReadyResponse "a check failed"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	check := ReadyCheck{Name: "tzdata", Status: "skipped"}
	if h.deps.Zones != nil {
		check.Status = "ok"
		if _, err := h.deps.Zones.Zone(h.deps.Probe); err != nil {
			check.Status, check.Error = "fail", err.Error()
		}
	}

	out := ReadyResponse{
		Status: "ok",
		Checks: []ReadyCheck{check},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}
	if check.Status == "fail" {
		out.Status = "fail"
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info, uptime and local zone
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	out := ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
	}
	if h.deps.Local != nil {
		out.LocalZone = h.deps.Local().String()
	}
	return out, nil
}
