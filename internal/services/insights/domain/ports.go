package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	CodingTime(ctx context.Context, userID string) (CodingTime, error)
	SkillsByMonth(ctx context.Context, userID string) (SkillsByMonth, error)
	ProjectsByMonth(ctx context.Context, userID string) (CountSeries, error)
	ProjectCompletion(ctx context.Context, userID string) (ProjectCompletion, error)
}
