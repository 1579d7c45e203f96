// Package http provides http transport for activity
package http

import (
	stdhttp "net/http"

	"devgate/internal/core/period"
	"devgate/internal/modkit/httpkit"
	perr "devgate/internal/platform/errors"
	"devgate/internal/services/activity/domain"
	svc "devgate/internal/services/activity/service"
)

// Register mounts activity endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// contribution heatmap over a named window
	httpkit.Get(r, "/heatmap", h.heatmap)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /activity/heatmap Activity activityHeatmap
// @Summary Contribution heatmap for a user
// @Tags Activity
// @Produce json
// @Param user_id query string true "User id"
// @Param period query string false "month|3months|6months|year (default year)"
// @Success 200 {object} domain.Heatmap "ok"
// @Router /activity/heatmap [get]
func (h *handlers) heatmap(r *stdhttp.Request) (any, error) {
	qs := r.URL.Query()
	userID := qs.Get("user_id")
	if userID == "" {
		return nil, perr.InvalidArgf("user_id query param is required")
	}
	return h.svc.Heatmap(r.Context(), domain.HeatmapQuery{
		UserID: userID,
		Period: period.Parse(qs.Get("period")),
	})
}
