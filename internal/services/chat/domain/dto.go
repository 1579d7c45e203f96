// Package domain holds DTOs for chat http and service contracts
package domain

import "time"

// CreateConversationInput opens a conversation between two or more members
type CreateConversationInput struct {
	MemberIDs []string `json:"member_ids" validate:"required,min=2,max=50,dive,uuid4"`
}

// Conversation is one conversation with an optional last-message preview
type Conversation struct {
	ID        string    `json:"id"`
	MemberIDs []string  `json:"member_ids"`
	CreatedAt time.Time `json:"created_at"`
	// LastMessage is nil until someone writes
	LastMessage *Message `json:"last_message,omitempty"`
}

// SendMessageInput appends one message to a conversation
type SendMessageInput struct {
	ConversationID string `json:"conversation_id" validate:"required,uuid4"`
	SenderID       string `json:"sender_id" validate:"required,uuid4"`
	Body           string `json:"body" validate:"required,min=1,max=10000"`
}

// Message is one chat message
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}
