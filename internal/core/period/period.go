// Package period turns a named time window into calendar-day skeletons for
// the contribution heatmap and cutoff instants for record filtering
package period

import "time"

// Period names a supported aggregation window
type Period string

// Supported windows. Anything else falls back to Year
const (
	Month       Period = "month"
	ThreeMonths Period = "3months"
	SixMonths   Period = "6months"
	Year        Period = "year"
)

// Parse maps a raw query value to a Period, defaulting to Year
func Parse(s string) Period {
	switch Period(s) {
	case Month, ThreeMonths, SixMonths:
		return Period(s)
	default:
		return Year
	}
}

// Day is one calendar day seed in a heatmap skeleton
type Day struct {
	// Date is the day in 2006-01-02 form, no time component
	Date string `json:"date"`
	// DayOfWeek is 0=Sunday..6=Saturday, used for heatmap column layout
	DayOfWeek int `json:"dayOfWeek"`
	// Count starts at zero and is filled in by the aggregator
	Count int `json:"count"`
	// Details starts empty; one entry per contribution on this day
	Details []Detail `json:"details"`
}

// Detail is one contribution attributed to a day
type Detail struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   int64  `json:"timestamp"`
}

// Start returns the window's opening instant for the given now.
// Month snaps to the first of now's calendar month; the others subtract
// whole months or a year from now
func Start(p Period, now time.Time) time.Time {
	now = now.UTC()
	switch p {
	case Month:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	case ThreeMonths:
		return now.AddDate(0, -3, 0)
	case SixMonths:
		return now.AddDate(0, -6, 0)
	default:
		return now.AddDate(-1, 0, 0)
	}
}

// DateRange produces one Day per calendar day from the window start through
// now inclusive. The sequence is contiguous and gap free; zero-activity days
// are present with Count 0
func DateRange(p Period, now time.Time) []Day {
	start := Start(p, now)
	cur := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)

	days := make([]Day, 0, int(last.Sub(cur).Hours()/24)+1)
	for !cur.After(last) {
		days = append(days, Day{
			Date:      cur.Format("2006-01-02"),
			DayOfWeek: int(cur.Weekday()),
			Details:   []Detail{},
		})
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}
