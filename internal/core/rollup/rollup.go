// Package rollup provides the shared bucketing and rounding used by the
// coding-time, skills, and project analytics
//
// Buckets always sort by their actual (year, month, day) tuple. Sorting the
// display label as a string would put "Apr 2024" before "Feb 2024"
package rollup

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Key identifies a calendar bucket. Week is the week-start day for weekly
// buckets and zero for monthly ones
type Key struct {
	Year  int
	Month time.Month
	Week  int
	Label string
}

// before orders keys chronologically, year major
func (k Key) before(o Key) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	if k.Month != o.Month {
		return k.Month < o.Month
	}
	return k.Week < o.Week
}

// MonthKey buckets t into its calendar month, label "Jan 2006"
func MonthKey(t time.Time) Key {
	t = t.UTC()
	return Key{
		Year:  t.Year(),
		Month: t.Month(),
		Label: fmt.Sprintf("%s %d", t.Format("Jan"), t.Year()),
	}
}

// WeekKey buckets t into its Sunday-aligned week, label "May 1-7" style
// (month of the week start plus start and end day of month)
func WeekKey(t time.Time) Key {
	t = t.UTC()
	start := t.AddDate(0, 0, -int(t.Weekday()))
	end := start.AddDate(0, 0, 6)
	return Key{
		Year:  start.Year(),
		Month: start.Month(),
		Week:  start.Day(),
		Label: fmt.Sprintf("%s %d-%d", start.Format("Jan"), start.Day(), end.Day()),
	}
}

// Bucket is one (label, value) entry in a sorted rollup series
type Bucket struct {
	Key   Key
	Value float64
}

// Accumulator folds values into keyed buckets and emits them sorted
type Accumulator struct {
	m map[Key]float64
}

// NewAccumulator returns an empty Accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{m: make(map[Key]float64)}
}

// Add folds v into the bucket for k
func (a *Accumulator) Add(k Key, v float64) { a.m[k] += v }

// Len reports how many distinct buckets have been touched
func (a *Accumulator) Len() int { return len(a.m) }

// Sorted returns the buckets in chronological order
func (a *Accumulator) Sorted() []Bucket {
	out := make([]Bucket, 0, len(a.m))
	for k, v := range a.m {
		out = append(out, Bucket{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.before(out[j].Key) })
	return out
}

// RoundTenth rounds x to one decimal place, half up on the tenths digit
func RoundTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// Hours extracts the hour value from a coding-time document: the hours field
// when present, otherwise duration minutes divided by 60
func Hours(doc map[string]any) float64 {
	if h, ok := numeric(doc["hours"]); ok && h > 0 {
		return h
	}
	for _, field := range []string{"durationMinutes", "duration"} {
		if m, ok := numeric(doc[field]); ok && m > 0 {
			return m / 60
		}
	}
	return 0
}

func numeric(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
