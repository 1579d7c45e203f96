// Package service contains the level evaluation and reconcile workflows
package service

import (
	"context"
	"time"

	"devgate/internal/core/level"
	"devgate/internal/core/rollup"
	"devgate/internal/modkit/repokit"
	"devgate/internal/platform/logger"
	"devgate/internal/services/progression/domain"
	"devgate/internal/services/progression/repo"
	usersdomain "devgate/internal/services/users/domain"
)

// Service defines the progression service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the progression service
type Svc struct {
	Repo   repo.Repo
	Users  usersdomain.ServicePort
	Ladder level.Ladder
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now func() time.Time
}

// New constructs a progression service over the default ladder
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], users usersdomain.ServicePort) *Svc {
	if db == nil {
		panic("progression.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("progression.Service requires a non nil Repo binder")
	}
	if users == nil {
		panic("progression.Service requires the users port")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		Users:  users,
		Ladder: level.DefaultLadder(),
		binder: binder,
		db:     db,
		now:    time.Now,
	}
}

// metrics loads the three live numbers the ladder is walked against
func (s *Svc) metrics(ctx context.Context, userID string) (level.Metrics, error) {
	projects, err := s.Repo.CompletedProjects(ctx, userID)
	if err != nil {
		return level.Metrics{}, err
	}
	skills, err := s.Repo.SkillCount(ctx, userID)
	if err != nil {
		return level.Metrics{}, err
	}
	docs, err := s.Repo.CodingDocs(ctx, userID)
	if err != nil {
		return level.Metrics{}, err
	}
	var hours float64
	for _, d := range docs {
		hours += rollup.Hours(d)
	}
	return level.Metrics{
		CompletedProjects: projects,
		SkillCount:        skills,
		CodingHours:       hours,
	}, nil
}

// Evaluate computes the level the user's live metrics earn, without touching
// the stored level
func (s *Svc) Evaluate(ctx context.Context, userID string) (domain.Evaluation, error) {
	if err := s.Users.MustExist(ctx, userID); err != nil {
		return domain.Evaluation{}, err
	}
	m, err := s.metrics(ctx, userID)
	if err != nil {
		return domain.Evaluation{}, err
	}
	return s.Ladder.Evaluate(m), nil
}

// Reconcile moves the stored level up to the computed one. The update is a
// compare-and-swap inside one transaction; a lost race is re-read and retried
// once, then reported as updated=false rather than an error. The stored level
// never decreases
func (s *Svc) Reconcile(ctx context.Context, userID string) (domain.ReconcileResult, error) {
	eval, err := s.Evaluate(ctx, userID)
	if err != nil {
		return domain.ReconcileResult{}, err
	}

	out := domain.ReconcileResult{Level: eval.Level}
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		for attempt := 0; attempt < 2; attempt++ {
			cur, err := r.CurrentLevel(ctx, userID)
			if err != nil {
				return err
			}
			if eval.Level <= cur {
				out.Level = cur
				out.Updated = false
				return nil
			}
			ok, err := r.CASLevel(ctx, userID, cur, eval.Level)
			if err != nil {
				return err
			}
			if !ok {
				// concurrent writer advanced the level; re-read and retry once
				continue
			}
			if err := r.AppendHistory(ctx, userID, eval.Level, cur, s.now().UTC()); err != nil {
				return err
			}
			out.Updated = true
			return nil
		}

		logger.C(ctx).Warn().
			Str("user_id", userID).
			Int("level", eval.Level).
			Msg("level cas lost twice, leaving stored level alone")
		out.Updated = false
		return nil
	})
	if err != nil {
		return domain.ReconcileResult{}, err
	}
	return out, nil
}

// History returns the ordered level history. A user still at level 1 with no
// rows gets a synthetic bootstrap entry persisted first, so every account has
// at least one transition on record
func (s *Svc) History(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	if err := s.Users.MustExist(ctx, userID); err != nil {
		return nil, err
	}

	rows, err := s.Repo.History(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		cur, err := s.Repo.CurrentLevel(ctx, userID)
		if err != nil {
			return nil, err
		}
		if cur == 1 {
			at := s.now().UTC()
			if err := s.Repo.AppendHistory(ctx, userID, 1, 0, at); err != nil {
				return nil, err
			}
			rows = []repo.RowHistory{{Level: 1, PreviousLevel: 0, AchievedAt: at}}
		}
	}

	out := make([]domain.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.HistoryEntry{
			Level:         r.Level,
			PreviousLevel: r.PreviousLevel,
			AchievedAt:    r.AchievedAt,
		})
	}
	return out, nil
}

// Series projects the history into chart labels and level values. An empty
// history renders the one-element zero state instead of empty arrays
func (s *Svc) Series(ctx context.Context, userID string) (domain.Series, error) {
	entries, err := s.History(ctx, userID)
	if err != nil {
		return domain.Series{}, err
	}
	if len(entries) == 0 {
		return domain.Series{Labels: []string{"No data available"}, Data: []int{0}}, nil
	}
	out := domain.Series{
		Labels: make([]string, 0, len(entries)),
		Data:   make([]int, 0, len(entries)),
	}
	for _, e := range entries {
		out.Labels = append(out.Labels, e.AchievedAt.UTC().Format("Jan 2, 2006"))
		out.Data = append(out.Data, e.Level)
	}
	return out, nil
}
