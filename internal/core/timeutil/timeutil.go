// Package timeutil resolves the many timestamp shapes found in imported
// documents into a single comparable instant
//
// Source collections were written by different clients over time, so a
// "timestamp" may arrive as a native time, a seconds/nanos document, a bare
// epoch number, or an ISO string. All shape sniffing lives here; callers only
// ever see a time.Time and an ok flag
package timeutil

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ToTimer is the to-date conversion surface some decoded documents expose
type ToTimer interface {
	ToTime() time.Time
}

// Normalize converts a raw timestamp value into an instant.
// Priority order: to-date object, native time, seconds document, epoch
// number, ISO-8601 string. Unrecognized or empty shapes return ok=false and
// never an error; a missing instant is a normal outcome
func Normalize(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, false
	case ToTimer:
		t := v.ToTime()
		return t, !t.IsZero()
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case map[string]any:
		return fromSecondsDoc(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return fromEpoch(f)
		}
		return time.Time{}, false
	case float64:
		return fromEpoch(v)
	case int64:
		return fromEpoch(float64(v))
	case int:
		return fromEpoch(float64(v))
	case string:
		return fromString(v)
	default:
		return time.Time{}, false
	}
}

// fromSecondsDoc handles {"seconds": N, "nanos": M} documents, including the
// serialized "_seconds"/"_nanoseconds" variant older clients wrote
func fromSecondsDoc(m map[string]any) (time.Time, bool) {
	sec, ok := numField(m, "seconds", "_seconds")
	if !ok {
		return time.Time{}, false
	}
	nanos, _ := numField(m, "nanos", "nanoseconds", "_nanoseconds")
	t := time.Unix(int64(sec), int64(nanos)).UTC()
	return t, !t.IsZero()
}

func numField(m map[string]any, names ...string) (float64, bool) {
	for _, n := range names {
		v, ok := m[n]
		if !ok {
			continue
		}
		switch x := v.(type) {
		case float64:
			return x, true
		case int64:
			return float64(x), true
		case int:
			return float64(x), true
		case json.Number:
			if f, err := x.Float64(); err == nil {
				return f, true
			}
		case string:
			if f, err := strconv.ParseFloat(x, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func fromEpoch(sec float64) (time.Time, bool) {
	if sec <= 0 {
		return time.Time{}, false
	}
	whole := int64(sec)
	frac := sec - float64(whole)
	t := time.Unix(whole, int64(frac*float64(time.Second))).UTC()
	return t, true
}

// fromString tries the ISO-8601 layouts seen in exported data, widest first
func fromString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DayKey truncates t to its calendar day in UTC, formatted 2006-01-02.
// Heatmap buckets and detail attribution key on this
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// SameInstant reports whether two instants are the same point in time.
// Used to decide whether an update counts separately from a creation
func SameInstant(a, b time.Time) bool { return a.Equal(b) }
