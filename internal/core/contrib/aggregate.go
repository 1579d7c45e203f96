package contrib

import (
	"time"

	"devgate/internal/core/period"
	"devgate/internal/core/timeutil"
)

// Aggregate buckets events into the calendar-day skeleton for the given
// window. It is a pure function of its inputs: re-running with the same
// events, period, and now yields an identical Result, and the input slice is
// never mutated
//
// Events before the window cutoff are dropped. Events whose day is somehow
// outside the generated skeleton (clock skew, future instants) are dropped
// too, not treated as errors
func Aggregate(events []Event, p period.Period, now time.Time) Result {
	days := period.DateRange(p, now)
	index := make(map[string]int, len(days))
	for i, d := range days {
		index[d.Date] = i
	}

	cutoff := period.Start(p, now)
	breakdown := NewBreakdown()
	total := 0

	for _, ev := range events {
		if ev.At.Before(cutoff) {
			continue
		}
		i, ok := index[timeutil.DayKey(ev.At)]
		if !ok {
			continue
		}
		days[i].Count++
		days[i].Details = append(days[i].Details, period.Detail{
			Type:        string(ev.Kind),
			Description: ev.Description,
			Timestamp:   ev.At.UnixMilli(),
		})
		breakdown[ev.Kind]++
		total++
	}

	return Result{Days: days, Breakdown: breakdown, Total: total}
}
