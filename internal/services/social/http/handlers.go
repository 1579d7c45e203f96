// Package http provides http transport for the follow graph
package http

import (
	stdhttp "net/http"

	"devgate/internal/modkit/httpkit"
	perr "devgate/internal/platform/errors"
	"devgate/internal/platform/net/http/bind"
	"devgate/internal/services/social/domain"
	svc "devgate/internal/services/social/service"
)

// Register mounts social endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Post(r, "/follow", h.follow)
	httpkit.Post(r, "/unfollow", h.unfollow)
	httpkit.Get(r, "/followers", h.followers)
	httpkit.Get(r, "/following", h.following)
	httpkit.Get(r, "/is-following", h.isFollowing)
}

type handlers struct{ svc svc.Service }

func userID(r *stdhttp.Request) (string, error) {
	id := r.URL.Query().Get("user_id")
	if id == "" {
		return "", perr.InvalidArgf("user_id query param is required")
	}
	return id, nil
}

// swagger:route POST /social/follow Social socialFollow
// @Summary Follow a user
// @Tags Social
// @Accept json
// @Produce json
// @Param payload body domain.FollowInput true "Edge"
// @Success 200 {object} domain.FollowResult "ok"
// @Router /social/follow [post]
func (h *handlers) follow(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.FollowInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Follow(r.Context(), in)
}

// swagger:route POST /social/unfollow Social socialUnfollow
// @Summary Unfollow a user
// @Tags Social
// @Accept json
// @Produce json
// @Param payload body domain.FollowInput true "Edge"
// @Success 200 {object} domain.FollowResult "ok"
// @Router /social/unfollow [post]
func (h *handlers) unfollow(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.FollowInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Unfollow(r.Context(), in)
}

// swagger:route GET /social/followers Social socialFollowers
// @Summary List a user's followers
// @Tags Social
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {array} domain.Edge "ok"
// @Router /social/followers [get]
func (h *handlers) followers(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Followers(r.Context(), id)
}

// swagger:route GET /social/following Social socialFollowing
// @Summary List who a user follows
// @Tags Social
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {array} domain.Edge "ok"
// @Router /social/following [get]
func (h *handlers) following(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Following(r.Context(), id)
}

// swagger:route GET /social/is-following Social socialIsFollowing
// @Summary Check whether one user follows another
// @Tags Social
// @Produce json
// @Param follower_id query string true "Follower id"
// @Param followee_id query string true "Followee id"
// @Success 200 {boolean} bool "ok"
// @Router /social/is-following [get]
func (h *handlers) isFollowing(r *stdhttp.Request) (any, error) {
	qs := r.URL.Query()
	in := domain.FollowInput{FollowerID: qs.Get("follower_id"), FolloweeID: qs.Get("followee_id")}
	if in.FollowerID == "" || in.FolloweeID == "" {
		return nil, perr.InvalidArgf("follower_id and followee_id query params are required")
	}
	return h.svc.IsFollowing(r.Context(), in)
}
