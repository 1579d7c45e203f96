// Package domain holds DTOs for progression http and service contracts
package domain

import (
	"time"

	"devgate/internal/core/level"
)

// Evaluation re-exports the ladder evaluation shape
type Evaluation = level.Evaluation

// ReconcileResult reports what a reconcile run did to the stored level
type ReconcileResult struct {
	Level   int  `json:"level" example:"3"`
	Updated bool `json:"updated" example:"true"`
}

// HistoryEntry is one level transition, append only
type HistoryEntry struct {
	Level         int       `json:"level" example:"2"`
	PreviousLevel int       `json:"previousLevel" example:"1"`
	AchievedAt    time.Time `json:"achievedAt"`
}

// Series is the chart-ready projection of a user's level history
type Series struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}
