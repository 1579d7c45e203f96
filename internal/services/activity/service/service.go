// Package service runs the contribution aggregation workflow
package service

import (
	"context"
	"sync"
	"time"

	"devgate/internal/core/contrib"
	"devgate/internal/modkit/repokit"
	"devgate/internal/platform/logger"
	"devgate/internal/services/activity/domain"
	"devgate/internal/services/activity/repo"
	usersdomain "devgate/internal/services/users/domain"
)

// Service defines the activity service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the activity service
type Svc struct {
	Repo   repo.Repo
	Users  usersdomain.ServicePort
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	// now is a seam for tests
	now func() time.Time
}

// New constructs an activity service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], users usersdomain.ServicePort) *Svc {
	if db == nil {
		panic("activity.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("activity.Service requires a non nil Repo binder")
	}
	if users == nil {
		panic("activity.Service requires the users port")
	}
	return &Svc{Repo: binder.Bind(db), Users: users, binder: binder, db: db, now: time.Now}
}

// fetch names one source read so failures can be attributed
type fetch struct {
	name string
	run  func(context.Context, string) ([]contrib.Doc, error)
	dst  *[]contrib.Doc
}

// Heatmap loads every source collection for the user concurrently, folds the
// results into contribution events, and buckets them into the requested
// window. A failing source is logged, reported in Errors, and contributes
// zero records; only a missing user aborts the run
func (s *Svc) Heatmap(ctx context.Context, q domain.HeatmapQuery) (domain.Heatmap, error) {
	if err := s.Users.MustExist(ctx, q.UserID); err != nil {
		return domain.Heatmap{}, err
	}

	var src contrib.Sources
	fetches := []fetch{
		{"commits", s.Repo.Commits, &src.Commits},
		{"posts", s.Repo.Posts, &src.Posts},
		{"projects", s.Repo.Projects, &src.Projects},
		{"projectUpdates", s.Repo.ProjectUpdates, &src.ProjectUpdates},
		{"objectives", s.Repo.Objectives, &src.Objectives},
		{"comments", s.Repo.Comments, &src.Comments},
		{"skills", s.Repo.Skills, &src.Skills},
	}

	errSlots := make([]error, len(fetches))
	var wg sync.WaitGroup
	for i := range fetches {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f := fetches[i]
			docs, err := f.run(ctx, q.UserID)
			if err != nil {
				errSlots[i] = err
				return
			}
			*f.dst = docs
		}(i)
	}
	wg.Wait()

	var srcErrs []domain.SourceError
	for i, err := range errSlots {
		if err == nil {
			continue
		}
		logger.C(ctx).Warn().
			Str("source", fetches[i].name).
			Err(err).
			Msg("source read failed, folding as empty")
		srcErrs = append(srcErrs, domain.SourceError{Source: fetches[i].name, Error: err.Error()})
	}

	res := contrib.Aggregate(contrib.Extract(src), q.Period, s.now())
	return domain.Heatmap{
		Days:      res.Days,
		Breakdown: res.Breakdown,
		Total:     res.Total,
		Errors:    srcErrs,
	}, nil
}
