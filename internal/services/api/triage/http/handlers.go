// Package http provides http transport for triage
package http

import (
	stdhttp "net/http"

	"issuegate/internal/modkit/httpkit"
	"issuegate/internal/services/api/triage/domain"
	svc "issuegate/internal/services/api/triage/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CheckInput](r, "/check", h.check)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /triage/check Triage check
// @Summary Classify an issue body as spam or legitimate
// @Tags triage
// @Accept json
// @Produce json
// @Param payload body domain.CheckInput true "Check"
// @Success 200 {object} domain.CheckResult "ok"
// @Failure 400 {object} httpkit.Envelope "bad payload"
// @Router /triage/check [post]
func (h *handlers) check(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	return h.svc.Check(r.Context(), in)
}
