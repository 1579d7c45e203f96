// Package http provides http transport for the feed
package http

import (
	stdhttp "net/http"

	"devgate/internal/modkit/httpkit"
	perr "devgate/internal/platform/errors"
	"devgate/internal/platform/net/http/bind"
	"devgate/internal/services/feed/domain"
	svc "devgate/internal/services/feed/service"
)

// Register mounts feed endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Post(r, "/posts", h.createPost)
	httpkit.Get(r, "/posts", h.listPosts)
	httpkit.Get(r, "/post", h.getPost)
	httpkit.Post(r, "/votes", h.vote)
	httpkit.Post(r, "/comments", h.createComment)
	httpkit.Get(r, "/comments", h.commentTree)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /feed/posts Feed feedCreatePost
// @Summary Publish a post
// @Tags Feed
// @Accept json
// @Produce json
// @Param payload body domain.CreatePostInput true "Post"
// @Success 200 {object} domain.Post "ok"
// @Router /feed/posts [post]
func (h *handlers) createPost(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.CreatePostInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.CreatePost(r.Context(), in)
}

// swagger:route GET /feed/posts Feed feedListPosts
// @Summary List an author's posts, newest first
// @Tags Feed
// @Produce json
// @Param author_id query string true "Author id"
// @Success 200 {array} domain.Post "ok"
// @Router /feed/posts [get]
func (h *handlers) listPosts(r *stdhttp.Request) (any, error) {
	authorID := r.URL.Query().Get("author_id")
	if authorID == "" {
		return nil, perr.InvalidArgf("author_id query param is required")
	}
	return h.svc.PostsByAuthor(r.Context(), authorID)
}

// swagger:route GET /feed/post Feed feedGetPost
// @Summary Fetch one post
// @Tags Feed
// @Produce json
// @Param id query string true "Post id"
// @Success 200 {object} domain.Post "ok"
// @Router /feed/post [get]
func (h *handlers) getPost(r *stdhttp.Request) (any, error) {
	return h.svc.GetPost(r.Context(), r.URL.Query().Get("id"))
}

// swagger:route POST /feed/votes Feed feedVote
// @Summary Cast, flip, or retract a vote
// @Tags Feed
// @Accept json
// @Produce json
// @Param payload body domain.VoteInput true "Vote"
// @Success 200 {object} domain.VoteResult "ok"
// @Router /feed/votes [post]
func (h *handlers) vote(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.VoteInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Vote(r.Context(), in)
}

// swagger:route POST /feed/comments Feed feedCreateComment
// @Summary Comment on a post, optionally under a parent comment
// @Tags Feed
// @Accept json
// @Produce json
// @Param payload body domain.CreateCommentInput true "Comment"
// @Success 200 {object} domain.Comment "ok"
// @Router /feed/comments [post]
func (h *handlers) createComment(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.CreateCommentInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.CreateComment(r.Context(), in)
}

// swagger:route GET /feed/comments Feed feedCommentTree
// @Summary Nested comment tree for a post
// @Tags Feed
// @Produce json
// @Param post_id query string true "Post id"
// @Success 200 {array} domain.Comment "ok"
// @Router /feed/comments [get]
func (h *handlers) commentTree(r *stdhttp.Request) (any, error) {
	postID := r.URL.Query().Get("post_id")
	if postID == "" {
		return nil, perr.InvalidArgf("post_id query param is required")
	}
	return h.svc.CommentTree(r.Context(), postID)
}
