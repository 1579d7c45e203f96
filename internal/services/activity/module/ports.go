package module

import (
	"context"

	"devgate/internal/services/activity/domain"
	activitysvc "devgate/internal/services/activity/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptActivityPort struct{ svc activitysvc.Service }

// Heatmap aggregates a user's contributions over a named window
func (a adaptActivityPort) Heatmap(ctx context.Context, q domain.HeatmapQuery) (domain.Heatmap, error) {
	return a.svc.Heatmap(ctx, q)
}
