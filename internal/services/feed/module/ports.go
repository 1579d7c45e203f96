package module

import (
	"context"

	"devgate/internal/services/feed/domain"
	feedsvc "devgate/internal/services/feed/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptFeedPort struct{ svc feedsvc.Service }

// CreatePost publishes a post
func (a adaptFeedPort) CreatePost(ctx context.Context, in domain.CreatePostInput) (domain.Post, error) {
	return a.svc.CreatePost(ctx, in)
}

// GetPost fetches one post
func (a adaptFeedPort) GetPost(ctx context.Context, id string) (domain.Post, error) {
	return a.svc.GetPost(ctx, id)
}

// PostsByAuthor lists an author's posts
func (a adaptFeedPort) PostsByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	return a.svc.PostsByAuthor(ctx, authorID)
}

// Vote applies one vote transition
func (a adaptFeedPort) Vote(ctx context.Context, in domain.VoteInput) (domain.VoteResult, error) {
	return a.svc.Vote(ctx, in)
}

// CreateComment appends a comment
func (a adaptFeedPort) CreateComment(ctx context.Context, in domain.CreateCommentInput) (domain.Comment, error) {
	return a.svc.CreateComment(ctx, in)
}

// CommentTree returns the nested comment tree
func (a adaptFeedPort) CommentTree(ctx context.Context, postID string) ([]domain.Comment, error) {
	return a.svc.CommentTree(ctx, postID)
}
