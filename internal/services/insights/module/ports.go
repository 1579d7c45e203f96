package module

import (
	"context"

	"devgate/internal/services/insights/domain"
	insightssvc "devgate/internal/services/insights/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptInsightsPort struct{ svc insightssvc.Service }

// CodingTime returns the weekly coding-time insight
func (a adaptInsightsPort) CodingTime(ctx context.Context, userID string) (domain.CodingTime, error) {
	return a.svc.CodingTime(ctx, userID)
}

// SkillsByMonth returns the monthly skill acquisition insight
func (a adaptInsightsPort) SkillsByMonth(ctx context.Context, userID string) (domain.SkillsByMonth, error) {
	return a.svc.SkillsByMonth(ctx, userID)
}

// ProjectsByMonth returns monthly project creation counts
func (a adaptInsightsPort) ProjectsByMonth(ctx context.Context, userID string) (domain.CountSeries, error) {
	return a.svc.ProjectsByMonth(ctx, userID)
}

// ProjectCompletion returns the status partition and completion timeline
func (a adaptInsightsPort) ProjectCompletion(ctx context.Context, userID string) (domain.ProjectCompletion, error) {
	return a.svc.ProjectCompletion(ctx, userID)
}
