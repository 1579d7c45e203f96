package contrib

import (
	"fmt"

	"devgate/internal/core/timeutil"
)

// Extract is the single classification point from raw source documents to
// typed events. Documents whose instant cannot be resolved are skipped
// silently; that is expected, not an error
//
// Event order is deterministic: sources in fixed order, documents in input
// order, creation before update within one document
func Extract(s Sources) []Event {
	out := make([]Event, 0, 64)

	for _, d := range s.Commits {
		if at, ok := timeutil.Normalize(d["timestamp"]); ok {
			out = append(out, Event{
				Kind:        KindCommits,
				Description: strField(d, "message", "Code commit"),
				At:          at,
			})
		}
	}

	for _, d := range s.Posts {
		if at, ok := timeutil.Normalize(d["created"]); ok {
			out = append(out, Event{Kind: KindPosts, Description: "Created a post", At: at})
		}
	}

	for _, d := range s.Projects {
		if at, ok := timeutil.Normalize(d["createdAt"]); ok {
			out = append(out, Event{
				Kind:        KindProjects,
				Description: fmt.Sprintf("Created project: %s", strField(d, "title", "Untitled")),
				At:          at,
			})
		}
	}

	for _, d := range s.ProjectUpdates {
		if at, ok := timeutil.Normalize(d["timestamp"]); ok {
			out = append(out, Event{
				Kind:        KindPullRequests,
				Description: fmt.Sprintf("Updated project: %s", strField(d, "projectTitle", "Untitled")),
				At:          at,
			})
		}
	}

	// Fallback: when no dedicated update log exists at all, derive update
	// events from the projects themselves. An update only counts when its
	// instant resolves and differs from the creation instant. Fallback-only
	// semantics: the two sources are never merged
	if len(s.ProjectUpdates) == 0 {
		for _, d := range s.Projects {
			created, okC := timeutil.Normalize(d["createdAt"])
			updated, okU := timeutil.Normalize(d["updatedAt"])
			if okC && okU && !timeutil.SameInstant(created, updated) {
				out = append(out, Event{
					Kind:        KindPullRequests,
					Description: fmt.Sprintf("Updated project: %s", strField(d, "title", "Untitled")),
					At:          updated,
				})
			}
		}
	}

	for _, d := range s.Objectives {
		created, okC := timeutil.Normalize(d["startDate"])
		if okC {
			out = append(out, Event{
				Kind:        KindIssues,
				Description: fmt.Sprintf("Created objective: %s", strField(d, "title", "Untitled")),
				At:          created,
			})
		}
		// an objective's later update counts as a second contribution when
		// both instants resolve and differ
		if updated, okU := timeutil.Normalize(d["lastUpdate"]); okU && okC && !timeutil.SameInstant(created, updated) {
			out = append(out, Event{
				Kind:        KindIssues,
				Description: fmt.Sprintf("Updated objective: %s", strField(d, "title", "Untitled")),
				At:          updated,
			})
		}
	}

	for _, d := range s.Comments {
		if at, ok := timeutil.Normalize(d["createdAt"]); ok {
			out = append(out, Event{Kind: KindReviews, Description: "Posted a comment", At: at})
		}
	}

	// skills count as knowledge-sharing contributions, same bucket as posts
	for _, d := range s.Skills {
		if at, ok := timeutil.Normalize(d["acquiredAt"]); ok {
			out = append(out, Event{
				Kind:        KindPosts,
				Description: fmt.Sprintf("Added skill: %s", strField(d, "name", "Untitled")),
				At:          at,
			})
		}
	}

	return out
}

func strField(d Doc, key, def string) string {
	if v, ok := d[key].(string); ok && v != "" {
		return v
	}
	return def
}
