package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	CreateConversation(ctx context.Context, in CreateConversationInput) (Conversation, error)
	Conversations(ctx context.Context, userID string) ([]Conversation, error)
	Send(ctx context.Context, in SendMessageInput) (Message, error)
	Messages(ctx context.Context, conversationID string) ([]Message, error)
}
