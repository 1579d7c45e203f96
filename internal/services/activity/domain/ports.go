package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Heatmap(ctx context.Context, q HeatmapQuery) (Heatmap, error)
}
