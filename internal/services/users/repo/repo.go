// Package repo provides postgres access for users
package repo

import (
	"context"
	"errors"
	"time"

	"devgate/internal/modkit/repokit"
	perr "devgate/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// Repo is the minimal persistence surface for users
type Repo interface {
	Get(ctx context.Context, id string) (RowUser, error)
	Exists(ctx context.Context, id string) (bool, error)
	IDs(ctx context.Context) ([]string, error)
}

// RowUser is a user row as stored
type RowUser struct {
	ID             string
	Username       string
	Level          int
	FollowersCount int
	FollowingCount int
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

func (r *queries) Get(ctx context.Context, id string) (RowUser, error) {
	const sql = `
select id::text, username, level, followers_count, following_count, created_at
from users
where id = $1
`
	var u RowUser
	row := r.q.QueryRow(ctx, sql, id)
	if err := row.Scan(&u.ID, &u.Username, &u.Level, &u.FollowersCount, &u.FollowingCount, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowUser{}, perr.NotFoundf("user %s not found", id)
		}
		return RowUser{}, err
	}
	return u, nil
}

func (r *queries) Exists(ctx context.Context, id string) (bool, error) {
	const sql = `select exists(select 1 from users where id = $1)`
	var ok bool
	if err := r.q.QueryRow(ctx, sql, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *queries) IDs(ctx context.Context) ([]string, error) {
	const sql = `select id::text from users order by created_at asc`
	rows, err := r.q.Query(ctx, sql)
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
