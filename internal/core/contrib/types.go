// Package contrib classifies raw activity documents into contribution events
// and folds them into the per-day heatmap model
//
// The counting model follows the GitHub contribution methodology adapted for
// DevGate: commits, posts, project creations, project updates, objectives,
// and comments each count as one contribution on the day they happened
package contrib

import (
	"time"

	"devgate/internal/core/period"
)

// Kind is the closed set of contribution classifications
type Kind string

// All contribution kinds. A project creation and a project update map to
// different kinds on purpose: creations behave like new repositories,
// updates like pull requests
const (
	KindCommits      Kind = "commits"
	KindPosts        Kind = "posts"
	KindProjects     Kind = "projects"
	KindPullRequests Kind = "pullRequests"
	KindIssues       Kind = "issues"
	KindReviews      Kind = "reviews"
)

// Kinds lists every Kind in display order
func Kinds() []Kind {
	return []Kind{KindCommits, KindPosts, KindProjects, KindPullRequests, KindIssues, KindReviews}
}

// Doc is a raw document from one of the source collections. Field names and
// timestamp encodings vary by source and client version; timeutil.Normalize
// is the only code allowed to interpret timestamp shapes
type Doc map[string]any

// Sources bundles the per-collection document lists one aggregation run
// consumes. A nil slice means the source was unavailable; the aggregator
// treats it the same as empty
type Sources struct {
	Commits        []Doc
	Posts          []Doc
	Projects       []Doc
	ProjectUpdates []Doc
	Objectives     []Doc
	Comments       []Doc
	Skills         []Doc
}

// Event is one countable contribution: a kind, a human description, and the
// instant it happened
type Event struct {
	Kind        Kind
	Description string
	At          time.Time
}

// Breakdown maps each kind to its contribution count
type Breakdown map[Kind]int

// NewBreakdown returns a Breakdown with every kind present at zero, so
// serialized output always carries all six keys
func NewBreakdown() Breakdown {
	b := make(Breakdown, 6)
	for _, k := range Kinds() {
		b[k] = 0
	}
	return b
}

// Result is the output of one aggregation run
type Result struct {
	// Days is the contiguous day sequence, oldest first
	Days []period.Day `json:"days"`
	// Breakdown counts contributions per kind; its values sum to Total
	Breakdown Breakdown `json:"breakdown"`
	// Total is the overall contribution count inside the window
	Total int `json:"total"`
}
