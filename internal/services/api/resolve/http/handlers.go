// Package http provides http transport for resolve
package http

import (
	stdhttp "net/http"

	"tzresolve/internal/modkit/httpkit"
	"tzresolve/internal/services/api/resolve/domain"
	svc "tzresolve/internal/services/api/resolve/service"
)

// Register mounts resolve endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// calendar date at an hour in a zone
	httpkit.PostJSON[domain.DateInput](r, "/date", h.date)

	// instant conversions
	httpkit.PostJSON[domain.EpochInput](r, "/epoch", h.epoch)
	httpkit.PostJSON[domain.OffsetInput](r, "/offset", h.offset)
	httpkit.PostJSON[domain.ExactInput](r, "/exact", h.exact)

	// zone probe
	httpkit.Get(r, "/zones/*", h.zone)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /resolve/date Resolve resolveDate
// @Summary Resolve a calendar date at an hour in a zone to a local instant
// @Tags Resolve
// @Accept json
// @Produce json
// @Param payload body domain.DateInput true "Date"
// @Success 200 {object} domain.Instant "ok"
// @Router /resolve/date [post]
func (h *handlers) date(r *stdhttp.Request, in domain.DateInput) (any, error) {
	return h.svc.ResolveDate(r.Context(), in)
}

// swagger:route POST /resolve/epoch Resolve resolveEpoch
// @Summary Convert UNIX seconds to a local instant
// @Tags Resolve
// @Accept json
// @Produce json
// @Param payload body domain.EpochInput true "Epoch"
// @Success 200 {object} domain.Instant "ok"
// @Router /resolve/epoch [post]
func (h *handlers) epoch(r *stdhttp.Request, in domain.EpochInput) (any, error) {
	return h.svc.FromEpoch(r.Context(), in)
}

// swagger:route POST /resolve/offset Resolve resolveOffset
// @Summary Convert a fixed offset timestamp to a local instant
// @Tags Resolve
// @Accept json
// @Produce json
// @Param payload body domain.OffsetInput true "Offset timestamp"
// @Success 200 {object} domain.Instant "ok"
// @Router /resolve/offset [post]
func (h *handlers) offset(r *stdhttp.Request, in domain.OffsetInput) (any, error) {
	return h.svc.FromOffset(r.Context(), in)
}

// swagger:route POST /resolve/exact Resolve resolveExact
// @Summary Build a local instant field by field
// @Tags Resolve
// @Accept json
// @Produce json
// @Param payload body domain.ExactInput true "Fields"
// @Success 200 {object} domain.ExactOutput "ok"
// @Router /resolve/exact [post]
func (h *handlers) exact(r *stdhttp.Request, in domain.ExactInput) (any, error) {
	return h.svc.Exact(r.Context(), in)
}

// swagger:route GET /resolve/zones/{name} Resolve resolveZone
// @Summary Probe a zone by IANA name
// @Tags Resolve
// @Produce json
// @Param name path string true "IANA zone name, slashes allowed"
// @Success 200 {object} domain.ZoneOutput "ok"
// @Router /resolve/zones/{name} [get]
func (h *handlers) zone(r *stdhttp.Request) (any, error) {
	return h.svc.Zone(r.Context(), httpkit.Param(r, "*"))
}
