// Package repo provides postgres access for the feed
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"devgate/internal/modkit/repokit"
	perr "devgate/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// Repo is the persistence surface for posts, votes, and comments
type Repo interface {
	InsertPost(ctx context.Context, p RowPost) error
	GetPost(ctx context.Context, id string) (RowPost, error)
	PostsByAuthor(ctx context.Context, authorID string) ([]RowPost, error)

	// Vote returns 0 when the user has not voted on the post
	Vote(ctx context.Context, userID, postID string) (int, error)
	SetVote(ctx context.Context, userID, postID string, value int) error
	ClearVote(ctx context.Context, userID, postID string) error
	BumpCounts(ctx context.Context, postID string, dUp, dDown int) error

	InsertComment(ctx context.Context, c RowComment) error
	CommentsByPost(ctx context.Context, postID string) ([]RowComment, error)
}

// RowPost is a post row as stored
type RowPost struct {
	ID        string
	AuthorID  string
	Title     string
	Content   string
	Upvotes   int
	Downvotes int
	CreatedAt time.Time
}

// RowComment is a comment row as stored
type RowComment struct {
	ID        string
	PostID    string
	AuthorID  string
	ParentID  string
	Content   string
	CreatedAt time.Time
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

func (r *queries) InsertPost(ctx context.Context, p RowPost) error {
	// the doc column carries the aggregator-facing shape; "created" is the
	// field the contribution extractor reads
	doc, err := json.Marshal(map[string]any{
		"title":   p.Title,
		"content": p.Content,
		"created": p.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	const sql = `
insert into posts (id, author_id, title, content, upvotes, downvotes, created_at, doc)
values ($1, $2, $3, $4, 0, 0, $5, $6)
`
	_, err = r.q.Exec(ctx, sql, p.ID, p.AuthorID, p.Title, p.Content, p.CreatedAt, doc)
	return perr.FromPostgresWithField(err, "insert post")
}

func (r *queries) GetPost(ctx context.Context, id string) (RowPost, error) {
	const sql = `
select id::text, author_id::text, title, content, upvotes, downvotes, created_at
from posts
where id = $1
`
	var p RowPost
	row := r.q.QueryRow(ctx, sql, id)
	if err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.Upvotes, &p.Downvotes, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowPost{}, perr.NotFoundf("post %s not found", id)
		}
		return RowPost{}, err
	}
	return p, nil
}

func (r *queries) PostsByAuthor(ctx context.Context, authorID string) ([]RowPost, error) {
	const sql = `
select id::text, author_id::text, title, content, upvotes, downvotes, created_at
from posts
where author_id = $1
order by created_at desc
`
	rows, err := r.q.Query(ctx, sql, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowPost
	for rows.Next() {
		var p RowPost
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.Upvotes, &p.Downvotes, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *queries) Vote(ctx context.Context, userID, postID string) (int, error) {
	const sql = `select value from post_votes where user_id = $1 and post_id = $2`
	var v int
	if err := r.q.QueryRow(ctx, sql, userID, postID).Scan(&v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return v, nil
}

func (r *queries) SetVote(ctx context.Context, userID, postID string, value int) error {
	const sql = `
insert into post_votes (user_id, post_id, value, created_at)
values ($1, $2, $3, now())
on conflict (user_id, post_id) do update set value = excluded.value
`
	_, err := r.q.Exec(ctx, sql, userID, postID, value)
	return err
}

func (r *queries) ClearVote(ctx context.Context, userID, postID string) error {
	const sql = `delete from post_votes where user_id = $1 and post_id = $2`
	_, err := r.q.Exec(ctx, sql, userID, postID)
	return err
}

func (r *queries) BumpCounts(ctx context.Context, postID string, dUp, dDown int) error {
	const sql = `update posts set upvotes = upvotes + $2, downvotes = downvotes + $3 where id = $1`
	tag, err := r.q.Exec(ctx, sql, postID, dUp, dDown)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("post %s not found", postID)
	}
	return nil
}

func (r *queries) InsertComment(ctx context.Context, c RowComment) error {
	doc, err := json.Marshal(map[string]any{
		"content":   c.Content,
		"createdAt": c.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	const sql = `
insert into post_comments (id, post_id, author_id, parent_id, content, created_at, doc)
values ($1, $2, $3, nullif($4, ''), $5, $6, $7)
`
	_, err = r.q.Exec(ctx, sql, c.ID, c.PostID, c.AuthorID, c.ParentID, c.Content, c.CreatedAt, doc)
	return perr.FromPostgresWithField(err, "insert comment")
}

func (r *queries) CommentsByPost(ctx context.Context, postID string) ([]RowComment, error) {
	const sql = `
select id::text, post_id::text, author_id::text, coalesce(parent_id::text, ''), content, created_at
from post_comments
where post_id = $1
order by created_at asc
`
	rows, err := r.q.Query(ctx, sql, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowComment
	for rows.Next() {
		var c RowComment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.ParentID, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
