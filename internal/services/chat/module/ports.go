package module

import (
	"context"

	"devgate/internal/services/chat/domain"
	chatsvc "devgate/internal/services/chat/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptChatPort struct{ svc chatsvc.Service }

// CreateConversation opens a conversation
func (a adaptChatPort) CreateConversation(ctx context.Context, in domain.CreateConversationInput) (domain.Conversation, error) {
	return a.svc.CreateConversation(ctx, in)
}

// Conversations lists a user's conversations
func (a adaptChatPort) Conversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	return a.svc.Conversations(ctx, userID)
}

// Send appends a message
func (a adaptChatPort) Send(ctx context.Context, in domain.SendMessageInput) (domain.Message, error) {
	return a.svc.Send(ctx, in)
}

// Messages lists a conversation's messages
func (a adaptChatPort) Messages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	return a.svc.Messages(ctx, conversationID)
}
