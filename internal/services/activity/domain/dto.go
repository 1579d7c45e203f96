// Package domain holds DTOs for activity http and service contracts
package domain

import (
	"devgate/internal/core/contrib"
	"devgate/internal/core/period"
)

// HeatmapQuery selects the user and window to aggregate
type HeatmapQuery struct {
	UserID string
	Period period.Period
}

// SourceError reports one source collection that failed to load.
// A failed source contributes zero records; it never aborts the run
type SourceError struct {
	Source string `json:"source" example:"comments"`
	Error  string `json:"error" example:"timeout"`
}

// Heatmap is the aggregated contribution view for one user and window
type Heatmap struct {
	Days      []period.Day      `json:"days"`
	Breakdown contrib.Breakdown `json:"breakdown"`
	Total     int               `json:"total"`
	Errors    []SourceError     `json:"errors,omitempty"`
}
