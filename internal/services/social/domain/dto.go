// Package domain holds DTOs for social http and service contracts
package domain

import "time"

// FollowInput names the edge to create or remove
type FollowInput struct {
	FollowerID string `json:"follower_id" validate:"required,uuid4"`
	FolloweeID string `json:"followee_id" validate:"required,uuid4"`
}

// FollowResult reports the edge state after the call
type FollowResult struct {
	Following bool `json:"following"`
	// Changed is false when the edge was already in the requested state
	Changed bool `json:"changed"`
}

// Edge is one follow relationship seen from either side
type Edge struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Level      int       `json:"level"`
	FollowedAt time.Time `json:"followed_at"`
}
