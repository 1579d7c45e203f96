// Package domain holds DTOs for users http and service contracts
package domain

import "time"

// Profile is the public shape of a user row
type Profile struct {
	ID             string    `json:"id" example:"5f2d6c9a-0b1e-4c57-9a75-1d2f3e4a5b6c"`
	Username       string    `json:"username" example:"adaloveslace"`
	Level          int       `json:"level" example:"2"`
	FollowersCount int       `json:"followers_count" example:"12"`
	FollowingCount int       `json:"following_count" example:"7"`
	CreatedAt      time.Time `json:"created_at"`
}
