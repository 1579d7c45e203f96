package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	CreatePost(ctx context.Context, in CreatePostInput) (Post, error)
	GetPost(ctx context.Context, id string) (Post, error)
	PostsByAuthor(ctx context.Context, authorID string) ([]Post, error)
	Vote(ctx context.Context, in VoteInput) (VoteResult, error)
	CreateComment(ctx context.Context, in CreateCommentInput) (Comment, error)
	CommentTree(ctx context.Context, postID string) ([]Comment, error)
}
