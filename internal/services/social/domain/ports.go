package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Follow(ctx context.Context, in FollowInput) (FollowResult, error)
	Unfollow(ctx context.Context, in FollowInput) (FollowResult, error)
	Followers(ctx context.Context, userID string) ([]Edge, error)
	Following(ctx context.Context, userID string) ([]Edge, error)
	IsFollowing(ctx context.Context, in FollowInput) (bool, error)
}
