// Package service computes the coding-time, skills, and project insights
package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"devgate/internal/core/contrib"
	"devgate/internal/core/rollup"
	"devgate/internal/core/timeutil"
	"devgate/internal/modkit/repokit"
	"devgate/internal/services/insights/domain"
	"devgate/internal/services/insights/repo"
	usersdomain "devgate/internal/services/users/domain"
)

// Service defines the insights service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the insights service
type Svc struct {
	Repo   repo.Repo
	Users  usersdomain.ServicePort
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	title cases.Caser
}

// New constructs an insights service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], users usersdomain.ServicePort) *Svc {
	if db == nil {
		panic("insights.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("insights.Service requires a non nil Repo binder")
	}
	if users == nil {
		panic("insights.Service requires the users port")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		Users:  users,
		binder: binder,
		db:     db,
		title:  cases.Title(language.English),
	}
}

// sessionAt resolves the instant a coding session belongs to. Client
// versions disagree on the field name, so try the known ones in order
func sessionAt(d contrib.Doc) (time.Time, bool) {
	for _, key := range []string{"date", "createdAt", "timestamp"} {
		if v, ok := d[key]; ok {
			if t, ok := timeutil.Normalize(v); ok {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// label pulls a non-empty string field, falling back to def
func label(d contrib.Doc, key, def string) string {
	if v, ok := d[key].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

// CodingTime folds the user's coding sessions into Sunday-aligned weekly
// buckets plus per-language and per-project hour totals. Sessions with no
// resolvable instant are skipped silently
func (s *Svc) CodingTime(ctx context.Context, userID string) (domain.CodingTime, error) {
	if err := s.Users.MustExist(ctx, userID); err != nil {
		return domain.CodingTime{}, err
	}

	docs, err := s.Repo.CodingDocs(ctx, userID)
	if err != nil {
		return domain.CodingTime{}, err
	}

	weeks := rollup.NewAccumulator()
	langs := map[string]float64{}
	projects := map[string]float64{}
	days := map[string]struct{}{}
	var total float64

	for _, d := range docs {
		at, ok := sessionAt(d)
		if !ok {
			continue
		}
		h := rollup.Hours(d)
		weeks.Add(rollup.WeekKey(at), h)
		langs[label(d, "language", "Other")] += h
		projects[label(d, "project", "Other")] += h
		days[timeutil.DayKey(at)] = struct{}{}
		total += h
	}

	out := domain.CodingTime{
		Weekly:    domain.Series{Labels: []string{}, Data: []float64{}},
		Languages: map[string]float64{},
		Projects:  map[string]float64{},
	}
	if weeks.Len() == 0 {
		out.Weekly = domain.Series{Labels: []string{domain.NoData}, Data: []float64{0}}
		return out, nil
	}

	for _, b := range weeks.Sorted() {
		out.Weekly.Labels = append(out.Weekly.Labels, b.Key.Label)
		out.Weekly.Data = append(out.Weekly.Data, rollup.RoundTenth(b.Value))
	}
	for k, v := range langs {
		out.Languages[k] = rollup.RoundTenth(v)
	}
	for k, v := range projects {
		out.Projects[k] = rollup.RoundTenth(v)
	}
	out.Stats = domain.CodingStats{
		TotalHours:   rollup.RoundTenth(total),
		DailyAverage: rollup.RoundTenth(total / float64(len(days))),
	}
	return out, nil
}

// SkillsByMonth counts skill acquisitions per calendar month and lists the
// acquired skill names display cased
func (s *Svc) SkillsByMonth(ctx context.Context, userID string) (domain.SkillsByMonth, error) {
	if err := s.Users.MustExist(ctx, userID); err != nil {
		return domain.SkillsByMonth{}, err
	}

	rows, err := s.Repo.Skills(ctx, userID)
	if err != nil {
		return domain.SkillsByMonth{}, err
	}

	out := domain.SkillsByMonth{
		Monthly: domain.CountSeries{Labels: []string{}, Data: []int{}},
		Skills:  []string{},
	}
	if len(rows) == 0 {
		out.Monthly = domain.CountSeries{Labels: []string{domain.NoData}, Data: []int{0}}
		return out, nil
	}

	months := rollup.NewAccumulator()
	for _, r := range rows {
		months.Add(rollup.MonthKey(r.AcquiredAt), 1)
		out.Skills = append(out.Skills, s.title.String(r.Name))
	}
	for _, b := range months.Sorted() {
		out.Monthly.Labels = append(out.Monthly.Labels, b.Key.Label)
		out.Monthly.Data = append(out.Monthly.Data, int(b.Value))
	}
	return out, nil
}

// ProjectsByMonth counts project creations per calendar month
func (s *Svc) ProjectsByMonth(ctx context.Context, userID string) (domain.CountSeries, error) {
	if err := s.Users.MustExist(ctx, userID); err != nil {
		return domain.CountSeries{}, err
	}

	rows, err := s.Repo.Projects(ctx, userID)
	if err != nil {
		return domain.CountSeries{}, err
	}
	if len(rows) == 0 {
		return domain.CountSeries{Labels: []string{domain.NoData}, Data: []int{0}}, nil
	}

	months := rollup.NewAccumulator()
	for _, r := range rows {
		months.Add(rollup.MonthKey(r.CreatedAt), 1)
	}
	out := domain.CountSeries{Labels: []string{}, Data: []int{}}
	for _, b := range months.Sorted() {
		out.Labels = append(out.Labels, b.Key.Label)
		out.Data = append(out.Data, int(b.Value))
	}
	return out, nil
}

// ProjectCompletion partitions projects by status and buckets the finished
// ones by completion month. When nothing is finished yet but projects exist,
// the monthly series collapses to one "All Projects" bucket so the chart
// still shows the portfolio size
func (s *Svc) ProjectCompletion(ctx context.Context, userID string) (domain.ProjectCompletion, error) {
	if err := s.Users.MustExist(ctx, userID); err != nil {
		return domain.ProjectCompletion{}, err
	}

	rows, err := s.Repo.Projects(ctx, userID)
	if err != nil {
		return domain.ProjectCompletion{}, err
	}

	out := domain.ProjectCompletion{
		Statuses: map[string]int{},
		Monthly:  domain.CountSeries{Labels: []string{}, Data: []int{}},
	}
	if len(rows) == 0 {
		out.Monthly = domain.CountSeries{Labels: []string{domain.NoData}, Data: []int{0}}
		return out, nil
	}

	months := rollup.NewAccumulator()
	for _, r := range rows {
		status := strings.TrimSpace(r.Status)
		if status == "" {
			status = "In Progress"
		}
		out.Statuses[status]++

		switch strings.ToLower(status) {
		case "completed", "finished":
			at := r.CreatedAt
			if v, ok := r.Doc["completedAt"]; ok {
				if t, ok := timeutil.Normalize(v); ok {
					at = t
				}
			}
			months.Add(rollup.MonthKey(at), 1)
		}
	}

	if months.Len() == 0 {
		out.Monthly = domain.CountSeries{Labels: []string{"All Projects"}, Data: []int{len(rows)}}
		return out, nil
	}
	for _, b := range months.Sorted() {
		out.Monthly.Labels = append(out.Monthly.Labels, b.Key.Label)
		out.Monthly.Data = append(out.Monthly.Data, int(b.Value))
	}
	return out, nil
}
