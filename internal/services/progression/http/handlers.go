// Package http provides http transport for progression
package http

import (
	stdhttp "net/http"

	"devgate/internal/modkit/httpkit"
	perr "devgate/internal/platform/errors"
	svc "devgate/internal/services/progression/service"
)

// Register mounts progression endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// computed level from live metrics
	httpkit.Get(r, "/level", h.level)

	// push the stored level up to the computed one
	httpkit.Post(r, "/reconcile", h.reconcile)

	// ordered transitions, bootstrap included
	httpkit.Get(r, "/history", h.history)

	// chart-ready labels and data
	httpkit.Get(r, "/series", h.series)
}

type handlers struct{ svc svc.Service }

func userID(r *stdhttp.Request) (string, error) {
	id := r.URL.Query().Get("user_id")
	if id == "" {
		return "", perr.InvalidArgf("user_id query param is required")
	}
	return id, nil
}

// swagger:route GET /progression/level Progression progressionLevel
// @Summary Evaluate a user's level from live metrics
// @Tags Progression
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} domain.Evaluation "ok"
// @Router /progression/level [get]
func (h *handlers) level(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Evaluate(r.Context(), id)
}

// swagger:route POST /progression/reconcile Progression progressionReconcile
// @Summary Reconcile the stored level with the computed one
// @Tags Progression
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} domain.ReconcileResult "ok"
// @Router /progression/reconcile [post]
func (h *handlers) reconcile(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Reconcile(r.Context(), id)
}

// swagger:route GET /progression/history Progression progressionHistory
// @Summary Ordered level history for a user
// @Tags Progression
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {array} domain.HistoryEntry "ok"
// @Router /progression/history [get]
func (h *handlers) history(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.History(r.Context(), id)
}

// swagger:route GET /progression/series Progression progressionSeries
// @Summary Chart-ready level series for a user
// @Tags Progression
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} domain.Series "ok"
// @Router /progression/series [get]
func (h *handlers) series(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Series(r.Context(), id)
}
