// Package repo provides postgres access for activity sources
package repo

import (
	"context"
	"encoding/json"

	"devgate/internal/core/contrib"
	"devgate/internal/modkit/repokit"
)

// Repo reads the raw documents each source collection holds for a user.
// Documents come back as decoded JSONB payloads; shape interpretation is
// left to the aggregator
type Repo interface {
	Commits(ctx context.Context, userID string) ([]contrib.Doc, error)
	Posts(ctx context.Context, userID string) ([]contrib.Doc, error)
	Projects(ctx context.Context, userID string) ([]contrib.Doc, error)
	ProjectUpdates(ctx context.Context, userID string) ([]contrib.Doc, error)
	Objectives(ctx context.Context, userID string) ([]contrib.Doc, error)
	Comments(ctx context.Context, userID string) ([]contrib.Doc, error)
	Skills(ctx context.Context, userID string) ([]contrib.Doc, error)
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

func (r *queries) Commits(ctx context.Context, userID string) ([]contrib.Doc, error) {
	return r.docs(ctx, `select doc from commits where user_id = $1`, userID)
}

func (r *queries) Posts(ctx context.Context, userID string) ([]contrib.Doc, error) {
	return r.docs(ctx, `select doc from posts where author_id = $1`, userID)
}

func (r *queries) Projects(ctx context.Context, userID string) ([]contrib.Doc, error) {
	return r.docs(ctx, `select doc from projects where user_id = $1`, userID)
}

func (r *queries) ProjectUpdates(ctx context.Context, userID string) ([]contrib.Doc, error) {
	return r.docs(ctx, `select doc from project_updates where user_id = $1`, userID)
}

func (r *queries) Objectives(ctx context.Context, userID string) ([]contrib.Doc, error) {
	return r.docs(ctx, `select doc from objectives where user_id = $1`, userID)
}

func (r *queries) Comments(ctx context.Context, userID string) ([]contrib.Doc, error) {
	return r.docs(ctx, `select doc from post_comments where author_id = $1`, userID)
}

func (r *queries) Skills(ctx context.Context, userID string) ([]contrib.Doc, error) {
	return r.docs(ctx, `select doc from skills where user_id = $1`, userID)
}

// docs runs a single-column JSONB query and decodes each row
func (r *queries) docs(ctx context.Context, sql string, args ...any) ([]contrib.Doc, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []contrib.Doc
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var d contrib.Doc
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
