// Package http provides http transport for users
package http

import (
	stdhttp "net/http"

	"devgate/internal/modkit/httpkit"
	perr "devgate/internal/platform/errors"
	svc "devgate/internal/services/users/service"
)

// Register mounts users endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// public profile by id
	httpkit.Get(r, "/profile", h.profile)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /users/profile Users usersProfile
// @Summary Public profile lookup
// @Tags Users
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} domain.Profile "ok"
// @Router /users/profile [get]
func (h *handlers) profile(r *stdhttp.Request) (any, error) {
	id := r.URL.Query().Get("user_id")
	if id == "" {
		return nil, perr.InvalidArgf("user_id query param is required")
	}
	return h.svc.Get(r.Context(), id)
}
