// Package service contains user profile workflows
package service

import (
	"context"

	"devgate/internal/modkit/repokit"
	perr "devgate/internal/platform/errors"
	"devgate/internal/services/users/domain"
	"devgate/internal/services/users/repo"
)

// Service defines the users service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the users service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a users service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Get returns the public profile for the given user id
func (s *Svc) Get(ctx context.Context, id string) (domain.Profile, error) {
	if id == "" {
		return domain.Profile{}, perr.InvalidArgf("user id is required")
	}
	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		ID:             u.ID,
		Username:       u.Username,
		Level:          u.Level,
		FollowersCount: u.FollowersCount,
		FollowingCount: u.FollowingCount,
		CreatedAt:      u.CreatedAt,
	}, nil
}

// MustExist returns perr.NotFound when the user id has no row
func (s *Svc) MustExist(ctx context.Context, id string) error {
	if id == "" {
		return perr.InvalidArgf("user id is required")
	}
	ok, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return perr.NotFoundf("user %s not found", id)
	}
	return nil
}

// IDs lists every user id, oldest first
func (s *Svc) IDs(ctx context.Context) ([]string, error) {
	return s.Repo.IDs(ctx)
}
