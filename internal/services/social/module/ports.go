package module

import (
	"context"

	"devgate/internal/services/social/domain"
	socialsvc "devgate/internal/services/social/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptSocialPort struct{ svc socialsvc.Service }

// Follow creates a follow edge
func (a adaptSocialPort) Follow(ctx context.Context, in domain.FollowInput) (domain.FollowResult, error) {
	return a.svc.Follow(ctx, in)
}

// Unfollow removes a follow edge
func (a adaptSocialPort) Unfollow(ctx context.Context, in domain.FollowInput) (domain.FollowResult, error) {
	return a.svc.Unfollow(ctx, in)
}

// Followers lists who follows the user
func (a adaptSocialPort) Followers(ctx context.Context, userID string) ([]domain.Edge, error) {
	return a.svc.Followers(ctx, userID)
}

// Following lists who the user follows
func (a adaptSocialPort) Following(ctx context.Context, userID string) ([]domain.Edge, error) {
	return a.svc.Following(ctx, userID)
}

// IsFollowing reports whether the edge exists
func (a adaptSocialPort) IsFollowing(ctx context.Context, in domain.FollowInput) (bool, error) {
	return a.svc.IsFollowing(ctx, in)
}
