// Package repo provides postgres access for chat
package repo

import (
	"context"
	"errors"
	"time"

	"devgate/internal/modkit/repokit"
	perr "devgate/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// Repo is the persistence surface for conversations and messages
type Repo interface {
	InsertConversation(ctx context.Context, id string, createdAt time.Time) error
	AddMember(ctx context.Context, conversationID, userID string) error
	Members(ctx context.Context, conversationID string) ([]string, error)
	IsMember(ctx context.Context, conversationID, userID string) (bool, error)
	ConversationsOf(ctx context.Context, userID string) ([]RowConversation, error)

	InsertMessage(ctx context.Context, m RowMessage) error
	Messages(ctx context.Context, conversationID string) ([]RowMessage, error)
	LastMessage(ctx context.Context, conversationID string) (RowMessage, bool, error)
}

// RowConversation is one conversation row
type RowConversation struct {
	ID        string
	CreatedAt time.Time
}

// RowMessage is one message row as stored
type RowMessage struct {
	ID             string
	ConversationID string
	SenderID       string
	Body           string
	CreatedAt      time.Time
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) InsertConversation(ctx context.Context, id string, createdAt time.Time) error {
	const sql = `insert into conversations (id, created_at) values ($1, $2)`
	_, err := r.q.Exec(ctx, sql, id, createdAt)
	return perr.FromPostgres(err, "insert conversation")
}

func (r *queries) AddMember(ctx context.Context, conversationID, userID string) error {
	const sql = `
insert into conversation_members (conversation_id, user_id)
values ($1, $2)
on conflict do nothing
`
	_, err := r.q.Exec(ctx, sql, conversationID, userID)
	return err
}

func (r *queries) Members(ctx context.Context, conversationID string) ([]string, error) {
	const sql = `
select user_id::text
from conversation_members
where conversation_id = $1
order by user_id asc
`
	rows, err := r.q.Query(ctx, sql, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *queries) IsMember(ctx context.Context, conversationID, userID string) (bool, error) {
	const sql = `
select exists(
	select 1 from conversation_members where conversation_id = $1 and user_id = $2
)
`
	var ok bool
	if err := r.q.QueryRow(ctx, sql, conversationID, userID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *queries) ConversationsOf(ctx context.Context, userID string) ([]RowConversation, error) {
	const sql = `
select c.id::text, c.created_at
from conversations c
join conversation_members m on m.conversation_id = c.id
where m.user_id = $1
order by c.created_at desc
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowConversation
	for rows.Next() {
		var c RowConversation
		if err := rows.Scan(&c.ID, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *queries) InsertMessage(ctx context.Context, m RowMessage) error {
	const sql = `
insert into chat_messages (id, conversation_id, sender_id, body, created_at)
values ($1, $2, $3, $4, $5)
`
	_, err := r.q.Exec(ctx, sql, m.ID, m.ConversationID, m.SenderID, m.Body, m.CreatedAt)
	return perr.FromPostgres(err, "insert message")
}

func (r *queries) Messages(ctx context.Context, conversationID string) ([]RowMessage, error) {
	const sql = `
select id::text, conversation_id::text, sender_id::text, body, created_at
from chat_messages
where conversation_id = $1
order by created_at asc
`
	rows, err := r.q.Query(ctx, sql, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowMessage
	for rows.Next() {
		var m RowMessage
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *queries) LastMessage(ctx context.Context, conversationID string) (RowMessage, bool, error) {
	const sql = `
select id::text, conversation_id::text, sender_id::text, body, created_at
from chat_messages
where conversation_id = $1
order by created_at desc
limit 1
`
	var m RowMessage
	row := r.q.QueryRow(ctx, sql, conversationID)
	if err := row.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowMessage{}, false, nil
		}
		return RowMessage{}, false, err
	}
	return m, true, nil
}
