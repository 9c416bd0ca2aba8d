package timeutil

import (
	"fmt"
	"time"
)

// IsSameDay reports whether two instants fall on the same calendar day in
// the local zone of a.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func IsToday(date, now time.Time) bool {
	return IsSameDay(now, date)
}

func IsYesterday(date, now time.Time) bool {
	return IsSameDay(now.AddDate(0, 0, -1), date)
}

// IsThisWeek reports whether date falls in the Sunday-to-Saturday week
// containing now.
func IsThisWeek(date, now time.Time) bool {
	start := StartOfWeek(now)
	end := EndOfWeek(now)
	return !date.Before(start) && !date.After(end)
}

// IsOverdue reports whether a due date lies in the past. Completion is the
// caller's concern.
func IsOverdue(due, now time.Time) bool {
	return due.Before(now)
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t.AddDate(0, 0, -int(t.Weekday())))
}

func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(StartOfWeek(t).AddDate(0, 0, 6))
}

// InRange reports whether date lies within the inclusive [start, end]
// range. A nil bound imposes no constraint.
func InRange(date time.Time, start, end *time.Time) bool {
	if start != nil && date.Before(*start) {
		return false
	}
	if end != nil && date.After(*end) {
		return false
	}
	return true
}

// RelativeTime renders how long ago date was relative to now, coarsening
// with distance the way list rows expect ("5m ago", "yesterday", "3w ago").
func RelativeTime(date, now time.Time) string {
	diff := now.Sub(date)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	}
	days := int(diff.Hours() / 24)
	switch {
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	case days < 30:
		return fmt.Sprintf("%dw ago", days/7)
	case days < 365:
		return fmt.Sprintf("%dmo ago", days/30)
	default:
		return fmt.Sprintf("%dy ago", days/365)
	}
}
