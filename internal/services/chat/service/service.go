// Package service contains conversation and message workflows
package service

import (
	"context"
	"time"

	"devgate/internal/modkit/repokit"
	perr "devgate/internal/platform/errors"
	"devgate/internal/services/chat/domain"
	"devgate/internal/services/chat/repo"
	usersdomain "devgate/internal/services/users/domain"

	"github.com/google/uuid"
)

// Service defines the chat service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the chat service
type Svc struct {
	Repo   repo.Repo
	Users  usersdomain.ServicePort
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now func() time.Time
}

// New constructs a chat service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], users usersdomain.ServicePort) *Svc {
	if db == nil {
		panic("chat.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("chat.Service requires a non nil Repo binder")
	}
	if users == nil {
		panic("chat.Service requires the users port")
	}
	return &Svc{Repo: binder.Bind(db), Users: users, binder: binder, db: db, now: time.Now}
}

// CreateConversation opens a conversation after checking every member
// exists. Conversation plus memberships land in one transaction
func (s *Svc) CreateConversation(ctx context.Context, in domain.CreateConversationInput) (domain.Conversation, error) {
	seen := map[string]struct{}{}
	for _, id := range in.MemberIDs {
		if _, dup := seen[id]; dup {
			return domain.Conversation{}, perr.InvalidArgf("duplicate member %s", id)
		}
		seen[id] = struct{}{}
		if err := s.Users.MustExist(ctx, id); err != nil {
			return domain.Conversation{}, err
		}
	}

	conv := domain.Conversation{
		ID:        uuid.NewString(),
		MemberIDs: in.MemberIDs,
		CreatedAt: s.now().UTC(),
	}
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.InsertConversation(ctx, conv.ID, conv.CreatedAt); err != nil {
			return err
		}
		for _, id := range in.MemberIDs {
			if err := r.AddMember(ctx, conv.ID, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	return conv, nil
}

// Conversations lists the user's conversations, newest first, each with its
// member list and last-message preview
func (s *Svc) Conversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	if err := s.Users.MustExist(ctx, userID); err != nil {
		return nil, err
	}

	rows, err := s.Repo.ConversationsOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Conversation, 0, len(rows))
	for _, c := range rows {
		members, err := s.Repo.Members(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		conv := domain.Conversation{ID: c.ID, MemberIDs: members, CreatedAt: c.CreatedAt}
		if last, ok, err := s.Repo.LastMessage(ctx, c.ID); err != nil {
			return nil, err
		} else if ok {
			m := toMessage(last)
			conv.LastMessage = &m
		}
		out = append(out, conv)
	}
	return out, nil
}

// Send appends a message. The sender must be a member of the conversation
func (s *Svc) Send(ctx context.Context, in domain.SendMessageInput) (domain.Message, error) {
	if err := s.Users.MustExist(ctx, in.SenderID); err != nil {
		return domain.Message{}, err
	}
	ok, err := s.Repo.IsMember(ctx, in.ConversationID, in.SenderID)
	if err != nil {
		return domain.Message{}, err
	}
	if !ok {
		return domain.Message{}, perr.NotFoundf("conversation %s not found", in.ConversationID)
	}

	row := repo.RowMessage{
		ID:             uuid.NewString(),
		ConversationID: in.ConversationID,
		SenderID:       in.SenderID,
		Body:           in.Body,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.Repo.InsertMessage(ctx, row); err != nil {
		return domain.Message{}, err
	}
	return toMessage(row), nil
}

// Messages returns the conversation's messages, oldest first. Snapshot read
// only; delivery is the client's polling problem
func (s *Svc) Messages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	if conversationID == "" {
		return nil, perr.InvalidArgf("conversation id is required")
	}
	rows, err := s.Repo.Messages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Message, 0, len(rows))
	for _, m := range rows {
		out = append(out, toMessage(m))
	}
	return out, nil
}

func toMessage(m repo.RowMessage) domain.Message {
	return domain.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Body:           m.Body,
		CreatedAt:      m.CreatedAt,
	}
}
