// Package domain holds DTOs for feed http and service contracts
package domain

import "time"

// Post is a published feed post with its vote tallies
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title" example:"Shipping my first CLI"`
	Content   string    `json:"content"`
	Upvotes   int       `json:"upvotes" example:"3"`
	Downvotes int       `json:"downvotes" example:"1"`
	Score     int       `json:"score" example:"2"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostInput is the payload for publishing a post
type CreatePostInput struct {
	AuthorID string `json:"author_id" validate:"required,uuid4" example:"5f2d6c9a-0b1e-4c57-9a75-1d2f3e4a5b6c"`
	Title    string `json:"title" validate:"required,min=1,max=200" example:"Shipping my first CLI"`
	Content  string `json:"content" validate:"required,min=1,max=20000"`
}

// VoteInput casts or retracts a vote on a post. Casting the same value
// twice retracts it
type VoteInput struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	PostID string `json:"post_id" validate:"required,uuid4"`
	Value  int    `json:"value" validate:"required,oneof=1 -1" example:"1"`
}

// VoteResult reports the post tallies after the transition
type VoteResult struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
	Score     int `json:"score"`
	// UserVote is the caller's vote after the transition: 1, -1, or 0
	UserVote int `json:"user_vote"`
}

// CreateCommentInput is the payload for commenting on a post
type CreateCommentInput struct {
	PostID   string `json:"post_id" validate:"required,uuid4"`
	AuthorID string `json:"author_id" validate:"required,uuid4"`
	ParentID string `json:"parent_id,omitempty" validate:"omitempty,uuid4"`
	Content  string `json:"content" validate:"required,min=1,max=10000"`
}

// Comment is one comment node; Replies nest recursively, each level sorted
// by creation time ascending
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	ParentID  string    `json:"parent_id,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Replies   []Comment `json:"replies"`
}
