package service

import (
	"context"
	"testing"
	"time"

	"devgate/internal/core/contrib"
	"devgate/internal/modkit/repokit"
	perr "devgate/internal/platform/errors"
	"devgate/internal/platform/store"
	"devgate/internal/services/insights/domain"
	"devgate/internal/services/insights/repo"
	usersdomain "devgate/internal/services/users/domain"
)

type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	var z store.CommandTag
	return z, nil
}
func (fakeTx) Query(context.Context, string, ...any) (store.Rows, error) {
	var z store.Rows
	return z, nil
}
func (fakeTx) QueryRow(context.Context, string, ...any) store.Row {
	var z store.Row
	return z
}
func (f fakeTx) Tx(_ context.Context, fn func(q store.RowQuerier) error) error { return fn(f) }

type fakeUsers struct{ missing bool }

func (f fakeUsers) Get(_ context.Context, id string) (usersdomain.Profile, error) {
	if f.missing {
		return usersdomain.Profile{}, perr.NotFoundf("user %s not found", id)
	}
	return usersdomain.Profile{ID: id}, nil
}

func (f fakeUsers) MustExist(_ context.Context, id string) error {
	if f.missing {
		return perr.NotFoundf("user %s not found", id)
	}
	return nil
}

func (f fakeUsers) IDs(context.Context) ([]string, error) { return nil, nil }

type fakeRepo struct {
	docs     []contrib.Doc
	skills   []repo.RowSkill
	projects []repo.RowProject
}

func (f *fakeRepo) CodingDocs(context.Context, string) ([]contrib.Doc, error) { return f.docs, nil }
func (f *fakeRepo) Skills(context.Context, string) ([]repo.RowSkill, error)   { return f.skills, nil }
func (f *fakeRepo) Projects(context.Context, string) ([]repo.RowProject, error) {
	return f.projects, nil
}

func newTestSvc(fr *fakeRepo) *Svc {
	return New(fakeTx{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return fr }), fakeUsers{})
}

func TestCodingTime_WeeklyBucketsAndStats(t *testing.T) {
	t.Parallel()

	// Jun 9 2025 is a Monday; Jun 11 falls in the same Sunday-aligned week,
	// Jun 16 in the next
	fr := &fakeRepo{docs: []contrib.Doc{
		{"date": "2025-06-09T10:00:00Z", "hours": 2.0, "language": "Go"},
		{"date": "2025-06-11T10:00:00Z", "durationMinutes": float64(90), "language": "Go"},
		{"date": "2025-06-16T10:00:00Z", "hours": 1.0, "project": "devgate"},
	}}
	s := newTestSvc(fr)

	got, err := s.CodingTime(context.Background(), "u1")
	if err != nil {
		t.Fatalf("CodingTime: %v", err)
	}
	if len(got.Weekly.Labels) != 2 {
		t.Fatalf("weekly buckets = %v, want 2", got.Weekly.Labels)
	}
	if got.Weekly.Data[0] != 3.5 || got.Weekly.Data[1] != 1.0 {
		t.Fatalf("weekly data = %v", got.Weekly.Data)
	}
	if got.Languages["Go"] != 3.5 || got.Languages["Other"] != 1.0 {
		t.Fatalf("languages = %v", got.Languages)
	}
	if got.Projects["devgate"] != 1.0 {
		t.Fatalf("projects = %v", got.Projects)
	}
	if got.Stats.TotalHours != 4.5 || got.Stats.DailyAverage != 1.5 {
		t.Fatalf("stats = %+v", got.Stats)
	}
}

func TestCodingTime_ZeroState(t *testing.T) {
	t.Parallel()

	s := newTestSvc(&fakeRepo{})
	got, err := s.CodingTime(context.Background(), "u1")
	if err != nil {
		t.Fatalf("CodingTime: %v", err)
	}
	if len(got.Weekly.Labels) != 1 || got.Weekly.Labels[0] != domain.NoData || got.Weekly.Data[0] != 0 {
		t.Fatalf("zero state = %+v", got.Weekly)
	}
}

func TestCodingTime_SkipsUnresolvableSessions(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{docs: []contrib.Doc{
		{"hours": 5.0}, // no instant at all
		{"date": "2025-06-09T10:00:00Z", "hours": 1.0},
	}}
	s := newTestSvc(fr)

	got, err := s.CodingTime(context.Background(), "u1")
	if err != nil {
		t.Fatalf("CodingTime: %v", err)
	}
	if got.Stats.TotalHours != 1.0 {
		t.Fatalf("total = %v, want the undated session skipped", got.Stats.TotalHours)
	}
}

func TestSkillsByMonth_CountsAndTitleCases(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{skills: []repo.RowSkill{
		{Name: "go", AcquiredAt: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)},
		{Name: "rust", AcquiredAt: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)},
		{Name: "sql", AcquiredAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
	}}
	s := newTestSvc(fr)

	got, err := s.SkillsByMonth(context.Background(), "u1")
	if err != nil {
		t.Fatalf("SkillsByMonth: %v", err)
	}
	if len(got.Monthly.Labels) != 2 || got.Monthly.Labels[0] != "Feb 2025" || got.Monthly.Labels[1] != "Apr 2025" {
		t.Fatalf("monthly labels = %v", got.Monthly.Labels)
	}
	if got.Monthly.Data[0] != 2 || got.Monthly.Data[1] != 1 {
		t.Fatalf("monthly data = %v", got.Monthly.Data)
	}
	if got.Skills[0] != "Go" || got.Skills[1] != "Rust" || got.Skills[2] != "Sql" {
		t.Fatalf("skills = %v", got.Skills)
	}
}

func TestSkillsByMonth_ZeroState(t *testing.T) {
	t.Parallel()

	s := newTestSvc(&fakeRepo{})
	got, err := s.SkillsByMonth(context.Background(), "u1")
	if err != nil {
		t.Fatalf("SkillsByMonth: %v", err)
	}
	if len(got.Monthly.Labels) != 1 || got.Monthly.Labels[0] != domain.NoData {
		t.Fatalf("zero state = %+v", got.Monthly)
	}
	if len(got.Skills) != 0 {
		t.Fatalf("skills = %v, want empty", got.Skills)
	}
}

func TestProjectCompletion_BucketsFinishedByCompletionMonth(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{projects: []repo.RowProject{
		{
			Status:    "Completed",
			CreatedAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Doc:       contrib.Doc{"completedAt": "2025-03-02T00:00:00Z"},
		},
		{
			// finished but no completedAt; falls back to creation month
			Status:    "finished",
			CreatedAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			Doc:       contrib.Doc{},
		},
		{Status: "", CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Doc: contrib.Doc{}},
	}}
	s := newTestSvc(fr)

	got, err := s.ProjectCompletion(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ProjectCompletion: %v", err)
	}
	if got.Statuses["Completed"] != 1 || got.Statuses["finished"] != 1 || got.Statuses["In Progress"] != 1 {
		t.Fatalf("statuses = %v", got.Statuses)
	}
	if len(got.Monthly.Labels) != 2 || got.Monthly.Labels[0] != "Jan 2025" || got.Monthly.Labels[1] != "Mar 2025" {
		t.Fatalf("monthly labels = %v", got.Monthly.Labels)
	}
}

func TestProjectCompletion_AllProjectsFallback(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{projects: []repo.RowProject{
		{Status: "In Progress", CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Doc: contrib.Doc{}},
		{Status: "Planning", CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Doc: contrib.Doc{}},
	}}
	s := newTestSvc(fr)

	got, err := s.ProjectCompletion(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ProjectCompletion: %v", err)
	}
	if len(got.Monthly.Labels) != 1 || got.Monthly.Labels[0] != "All Projects" || got.Monthly.Data[0] != 2 {
		t.Fatalf("fallback bucket = %+v", got.Monthly)
	}
}

func TestProjectCompletion_ZeroState(t *testing.T) {
	t.Parallel()

	s := newTestSvc(&fakeRepo{})
	got, err := s.ProjectCompletion(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ProjectCompletion: %v", err)
	}
	if len(got.Monthly.Labels) != 1 || got.Monthly.Labels[0] != domain.NoData {
		t.Fatalf("zero state = %+v", got.Monthly)
	}
}
