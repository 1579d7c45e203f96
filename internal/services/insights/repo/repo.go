// Package repo provides postgres access for insights
package repo

import (
	"context"
	"encoding/json"
	"time"

	"devgate/internal/core/contrib"
	"devgate/internal/modkit/repokit"
)

// Repo is the persistence surface for insights
type Repo interface {
	CodingDocs(ctx context.Context, userID string) ([]contrib.Doc, error)
	Skills(ctx context.Context, userID string) ([]RowSkill, error)
	Projects(ctx context.Context, userID string) ([]RowProject, error)
}

// RowSkill is one acquired skill
type RowSkill struct {
	Name       string
	AcquiredAt time.Time
}

// RowProject is one project row plus its raw document
type RowProject struct {
	Status    string
	CreatedAt time.Time
	Doc       contrib.Doc
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

func (r *queries) CodingDocs(ctx context.Context, userID string) ([]contrib.Doc, error) {
	const sql = `select doc from coding_sessions where user_id = $1 order by created_at asc`
	rows, err := r.q.Query(ctx, sql, userID)
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

func (r *queries) Skills(ctx context.Context, userID string) ([]RowSkill, error) {
	const sql = `
select name, acquired_at
from skills
where user_id = $1
order by acquired_at asc
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowSkill
	for rows.Next() {
		var s RowSkill
		if err := rows.Scan(&s.Name, &s.AcquiredAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *queries) Projects(ctx context.Context, userID string) ([]RowProject, error) {
	const sql = `
select status, created_at, doc
from projects
where user_id = $1
order by created_at asc
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowProject
	for rows.Next() {
		var p RowProject
		var raw []byte
		if err := rows.Scan(&p.Status, &p.CreatedAt, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &p.Doc); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
