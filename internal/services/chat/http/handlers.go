// Package http provides http transport for chat
package http

import (
	stdhttp "net/http"

	"devgate/internal/modkit/httpkit"
	perr "devgate/internal/platform/errors"
	"devgate/internal/platform/net/http/bind"
	"devgate/internal/services/chat/domain"
	svc "devgate/internal/services/chat/service"
)

// Register mounts chat endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Post(r, "/conversations", h.createConversation)
	httpkit.Get(r, "/conversations", h.conversations)
	httpkit.Post(r, "/messages", h.send)
	httpkit.Get(r, "/messages", h.messages)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /chat/conversations Chat chatCreateConversation
// @Summary Open a conversation
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body domain.CreateConversationInput true "Members"
// @Success 200 {object} domain.Conversation "ok"
// @Router /chat/conversations [post]
func (h *handlers) createConversation(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.CreateConversationInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.CreateConversation(r.Context(), in)
}

// swagger:route GET /chat/conversations Chat chatConversations
// @Summary List a user's conversations with last-message previews
// @Tags Chat
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {array} domain.Conversation "ok"
// @Router /chat/conversations [get]
func (h *handlers) conversations(r *stdhttp.Request) (any, error) {
	id := r.URL.Query().Get("user_id")
	if id == "" {
		return nil, perr.InvalidArgf("user_id query param is required")
	}
	return h.svc.Conversations(r.Context(), id)
}

// swagger:route POST /chat/messages Chat chatSend
// @Summary Append a message to a conversation
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body domain.SendMessageInput true "Message"
// @Success 200 {object} domain.Message "ok"
// @Router /chat/messages [post]
func (h *handlers) send(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.SendMessageInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Send(r.Context(), in)
}

// swagger:route GET /chat/messages Chat chatMessages
// @Summary List a conversation's messages, oldest first
// @Tags Chat
// @Produce json
// @Param conversation_id query string true "Conversation id"
// @Success 200 {array} domain.Message "ok"
// @Router /chat/messages [get]
func (h *handlers) messages(r *stdhttp.Request) (any, error) {
	return h.svc.Messages(r.Context(), r.URL.Query().Get("conversation_id"))
}
