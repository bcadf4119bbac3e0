package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mode identifies which scope-resolution branch a read request took.
type Mode int

const (
	// ModeAll applies no date restriction.
	ModeAll Mode = iota
	// ModeMonth restricts to [start-of-month, end-of-month].
	ModeMonth
	// ModeDay restricts to [start-of-day, end-of-day].
	ModeDay
)

// Scope is the resolved date range restricting a read query. Start and
// End are inclusive and are only meaningful when Mode != ModeAll.
type Scope struct {
	Mode  Mode
	Start time.Time
	End   time.Time
}

// dateLayouts are the accepted date-time input formats. Layouts without
// an offset are interpreted in the configured zone.
var dateLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{time.RFC3339, true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02", false},
}

// parseDateTime parses s as a calendar instant. Naive inputs are placed
// in loc so that later boundary math stays in a single zone.
func parseDateTime(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range dateLayouts {
		var (
			t   time.Time
			err error
		)
		if l.zoned {
			t, err = time.Parse(l.layout, s)
		} else {
			t, err = time.ParseInLocation(l.layout, s, loc)
		}
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// resolveScope selects exactly one of the three read modes.
//
// Precedence: an absent or unparseable date parameter means no range at
// all; otherwise a request carrying both month and year is a month
// query (month is zero-indexed, 0–11, matching the wire contract);
// otherwise the parsed date selects a single day. A month or year value
// that is present but not an integer is a BadScope error regardless of
// which branch would have been taken.
func resolveScope(dateStr, monthStr, yearStr string, loc *time.Location) (Scope, error) {
	month, monthOK, err := optionalInt(monthStr)
	if err != nil {
		return Scope{}, fmt.Errorf("%w: month %q is not a number", ErrBadScope, monthStr)
	}
	year, yearOK, err := optionalInt(yearStr)
	if err != nil {
		return Scope{}, fmt.Errorf("%w: year %q is not a number", ErrBadScope, yearStr)
	}

	parsed, ok := parseDateTime(dateStr, loc)
	if !ok {
		return Scope{Mode: ModeAll}, nil
	}
	if monthOK && yearOK {
		return monthScope(year, month, loc), nil
	}
	return dayScope(parsed, loc), nil
}

// monthScope computes the inclusive range covering the given month.
// wireMonth is zero-indexed; time.Date normalizes out-of-range values
// by wrapping into adjacent years instead of failing.
func monthScope(year, wireMonth int, loc *time.Location) Scope {
	start := time.Date(year, time.Month(wireMonth+1), 1, 0, 0, 0, 0, loc)
	return Scope{
		Mode:  ModeMonth,
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Microsecond),
	}
}

// dayScope computes the inclusive range covering the calendar day that
// contains t, in the configured zone.
func dayScope(t time.Time, loc *time.Location) Scope {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return Scope{
		Mode:  ModeDay,
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Microsecond),
	}
}

// daysInMonth returns the number of calendar days in the month
// containing start, accounting for leap years.
func daysInMonth(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// optionalInt parses s when present. The second return reports whether
// a non-empty value was supplied at all.
func optionalInt(s string) (int, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
