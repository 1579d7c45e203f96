// Package service contains follow graph workflows
package service

import (
	"context"

	"devgate/internal/modkit/repokit"
	perr "devgate/internal/platform/errors"
	"devgate/internal/services/social/domain"
	"devgate/internal/services/social/repo"
	usersdomain "devgate/internal/services/users/domain"
)

// Service defines the social service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the social service
type Svc struct {
	Repo   repo.Repo
	Users  usersdomain.ServicePort
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a social service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], users usersdomain.ServicePort) *Svc {
	if db == nil {
		panic("social.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("social.Service requires a non nil Repo binder")
	}
	if users == nil {
		panic("social.Service requires the users port")
	}
	return &Svc{Repo: binder.Bind(db), Users: users, binder: binder, db: db}
}

func (s *Svc) checkPair(ctx context.Context, in domain.FollowInput) error {
	if in.FollowerID == in.FolloweeID {
		return perr.InvalidArgf("cannot follow yourself")
	}
	if err := s.Users.MustExist(ctx, in.FollowerID); err != nil {
		return err
	}
	return s.Users.MustExist(ctx, in.FolloweeID)
}

// Follow creates the edge and bumps both counters, all in one transaction.
// Following someone twice is a no op
func (s *Svc) Follow(ctx context.Context, in domain.FollowInput) (domain.FollowResult, error) {
	if err := s.checkPair(ctx, in); err != nil {
		return domain.FollowResult{}, err
	}

	out := domain.FollowResult{Following: true}
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		created, err := r.Insert(ctx, in.FollowerID, in.FolloweeID)
		if err != nil {
			return err
		}
		if !created {
			return nil
		}
		out.Changed = true
		if err := r.BumpFollowerCount(ctx, in.FolloweeID, 1); err != nil {
			return err
		}
		return r.BumpFollowingCount(ctx, in.FollowerID, 1)
	})
	if err != nil {
		return domain.FollowResult{}, err
	}
	return out, nil
}

// Unfollow removes the edge and decrements both counters. Removing a
// missing edge is a no op
func (s *Svc) Unfollow(ctx context.Context, in domain.FollowInput) (domain.FollowResult, error) {
	if err := s.checkPair(ctx, in); err != nil {
		return domain.FollowResult{}, err
	}

	out := domain.FollowResult{Following: false}
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		removed, err := r.Delete(ctx, in.FollowerID, in.FolloweeID)
		if err != nil {
			return err
		}
		if !removed {
			return nil
		}
		out.Changed = true
		if err := r.BumpFollowerCount(ctx, in.FolloweeID, -1); err != nil {
			return err
		}
		return r.BumpFollowingCount(ctx, in.FollowerID, -1)
	})
	if err != nil {
		return domain.FollowResult{}, err
	}
	return out, nil
}

// Followers lists who follows the user, newest edge first
func (s *Svc) Followers(ctx context.Context, userID string) ([]domain.Edge, error) {
	if err := s.Users.MustExist(ctx, userID); err != nil {
		return nil, err
	}
	rows, err := s.Repo.Followers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toEdges(rows), nil
}

// Following lists who the user follows, newest edge first
func (s *Svc) Following(ctx context.Context, userID string) ([]domain.Edge, error) {
	if err := s.Users.MustExist(ctx, userID); err != nil {
		return nil, err
	}
	rows, err := s.Repo.Following(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toEdges(rows), nil
}

// IsFollowing reports whether the edge exists
func (s *Svc) IsFollowing(ctx context.Context, in domain.FollowInput) (bool, error) {
	return s.Repo.Exists(ctx, in.FollowerID, in.FolloweeID)
}

func toEdges(rows []repo.RowEdge) []domain.Edge {
	out := make([]domain.Edge, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Edge{
			UserID:     r.UserID,
			Username:   r.Username,
			Level:      r.Level,
			FollowedAt: r.FollowedAt,
		})
	}
	return out
}
