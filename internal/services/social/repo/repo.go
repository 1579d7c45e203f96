// Package repo provides postgres access for the follow graph
package repo

import (
	"context"
	"time"

	"devgate/internal/modkit/repokit"
)

// Repo is the persistence surface for follow edges
type Repo interface {
	// Insert reports whether a new edge was created
	Insert(ctx context.Context, followerID, followeeID string) (bool, error)
	// Delete reports whether an edge existed and was removed
	Delete(ctx context.Context, followerID, followeeID string) (bool, error)
	Exists(ctx context.Context, followerID, followeeID string) (bool, error)
	Followers(ctx context.Context, userID string) ([]RowEdge, error)
	Following(ctx context.Context, userID string) ([]RowEdge, error)

	// counter maintenance on user rows
	BumpFollowerCount(ctx context.Context, userID string, delta int) error
	BumpFollowingCount(ctx context.Context, userID string, delta int) error
}

// RowEdge is one follow edge joined with the counterpart's profile basics
type RowEdge struct {
	UserID     string
	Username   string
	Level      int
	FollowedAt time.Time
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

func (r *queries) Insert(ctx context.Context, followerID, followeeID string) (bool, error) {
	const sql = `
insert into follows (follower_id, followee_id, created_at)
values ($1, $2, now())
on conflict (follower_id, followee_id) do nothing
`
	tag, err := r.q.Exec(ctx, sql, followerID, followeeID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) Delete(ctx context.Context, followerID, followeeID string) (bool, error) {
	const sql = `delete from follows where follower_id = $1 and followee_id = $2`
	tag, err := r.q.Exec(ctx, sql, followerID, followeeID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	const sql = `select exists(select 1 from follows where follower_id = $1 and followee_id = $2)`
	var ok bool
	if err := r.q.QueryRow(ctx, sql, followerID, followeeID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *queries) Followers(ctx context.Context, userID string) ([]RowEdge, error) {
	const sql = `
select u.id::text, u.username, u.level, f.created_at
from follows f
join users u on u.id = f.follower_id
where f.followee_id = $1
order by f.created_at desc
`
	return r.edges(ctx, sql, userID)
}

func (r *queries) Following(ctx context.Context, userID string) ([]RowEdge, error) {
	const sql = `
select u.id::text, u.username, u.level, f.created_at
from follows f
join users u on u.id = f.followee_id
where f.follower_id = $1
order by f.created_at desc
`
	return r.edges(ctx, sql, userID)
}

func (r *queries) edges(ctx context.Context, sql string, args ...any) ([]RowEdge, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowEdge
	for rows.Next() {
		var e RowEdge
		if err := rows.Scan(&e.UserID, &e.Username, &e.Level, &e.FollowedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *queries) BumpFollowerCount(ctx context.Context, userID string, delta int) error {
	const sql = `update users set followers_count = followers_count + $2 where id = $1`
	_, err := r.q.Exec(ctx, sql, userID, delta)
	return err
}

func (r *queries) BumpFollowingCount(ctx context.Context, userID string, delta int) error {
	const sql = `update users set following_count = following_count + $2 where id = $1`
	_, err := r.q.Exec(ctx, sql, userID, delta)
	return err
}
