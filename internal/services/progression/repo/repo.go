// Package repo provides postgres access for level progression
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"devgate/internal/core/contrib"
	"devgate/internal/modkit/repokit"
	perr "devgate/internal/platform/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repo is the persistence surface for progression
type Repo interface {
	// metric inputs
	CompletedProjects(ctx context.Context, userID string) (int, error)
	SkillCount(ctx context.Context, userID string) (int, error)
	CodingDocs(ctx context.Context, userID string) ([]contrib.Doc, error)

	// stored level
	CurrentLevel(ctx context.Context, userID string) (int, error)
	CASLevel(ctx context.Context, userID string, from, to int) (bool, error)

	// append-only history
	History(ctx context.Context, userID string) ([]RowHistory, error)
	AppendHistory(ctx context.Context, userID string, level, previousLevel int, achievedAt time.Time) error
}

// RowHistory is one level_history row
type RowHistory struct {
	Level         int
	PreviousLevel int
	AchievedAt    time.Time
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

func (r *queries) CompletedProjects(ctx context.Context, userID string) (int, error) {
	// status casing varies across client versions; compare folded
	const sql = `
select count(1)
from projects
where user_id = $1
and lower(status) in ('completed', 'finished')
`
	var n int
	if err := r.q.QueryRow(ctx, sql, userID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *queries) SkillCount(ctx context.Context, userID string) (int, error) {
	const sql = `select count(1) from skills where user_id = $1`
	var n int
	if err := r.q.QueryRow(ctx, sql, userID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *queries) CodingDocs(ctx context.Context, userID string) ([]contrib.Doc, error) {
	const sql = `select doc from coding_sessions where user_id = $1`
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

func (r *queries) CurrentLevel(ctx context.Context, userID string) (int, error) {
	const sql = `select level from users where id = $1`
	var lvl int
	if err := r.q.QueryRow(ctx, sql, userID).Scan(&lvl); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, perr.NotFoundf("user %s not found", userID)
		}
		return 0, err
	}
	return lvl, nil
}

// CASLevel is a compare-and-swap on the stored level. It reports false when
// the stored value no longer matches from, which means a concurrent writer
// got there first
func (r *queries) CASLevel(ctx context.Context, userID string, from, to int) (bool, error) {
	const sql = `update users set level = $2 where id = $1 and level = $3`
	tag, err := r.q.Exec(ctx, sql, userID, to, from)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) History(ctx context.Context, userID string) ([]RowHistory, error) {
	const sql = `
select level, previous_level, achieved_at
from level_history
where user_id = $1
order by achieved_at asc
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowHistory
	for rows.Next() {
		var h RowHistory
		if err := rows.Scan(&h.Level, &h.PreviousLevel, &h.AchievedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *queries) AppendHistory(ctx context.Context, userID string, level, previousLevel int, achievedAt time.Time) error {
	const sql = `
insert into level_history (id, user_id, level, previous_level, achieved_at)
values ($1, $2, $3, $4, $5)
`
	_, err := r.q.Exec(ctx, sql, uuid.NewString(), userID, level, previousLevel, achievedAt)
	return err
}
