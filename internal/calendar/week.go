// Package calendar computes Monday-anchored week ranges and the
// month-bounded navigation rules the timesheet grid is built on.
//
// Every function that depends on "the current month" takes today as an
// explicit parameter. Call sites pass time.Now(); tests pass fixed dates.
package calendar

import (
	"fmt"
	"time"
)

// WeekRange is a Monday-to-Sunday week. It is immutable: navigation always
// constructs a new WeekRange.
type WeekRange struct {
	Start time.Time
	End   time.Time
	Dates [7]time.Time
}

// WeekFor returns the week containing date. Dates[0] is the Monday on or
// before date; a Sunday belongs to the week starting six days earlier.
func WeekFor(date time.Time) WeekRange {
	weekday := int(date.Weekday()) // 0 = Sunday
	offset := weekday - 1
	if weekday == 0 {
		offset = 6
	}

	start := midnight(date).AddDate(0, 0, -offset)

	var w WeekRange
	w.Start = start
	for i := 0; i < 7; i++ {
		w.Dates[i] = start.AddDate(0, 0, i)
	}
	w.End = w.Dates[6]
	return w
}

// FirstWeekOfMonth returns the week containing the 1st of today's month.
// It may include trailing days of the previous month.
func FirstWeekOfMonth(today time.Time) WeekRange {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	return WeekFor(first)
}

// NextWeek returns the week after w when that week still touches today's
// month. The second return value is false at the navigation boundary.
func NextWeek(w WeekRange, today time.Time) (WeekRange, bool) {
	cand := WeekFor(w.Start.AddDate(0, 0, 7))
	if WeekInMonth(cand, today) {
		return cand, true
	}
	return WeekRange{}, false
}

// PreviousWeek returns the week before w when that week still touches
// today's month.
func PreviousWeek(w WeekRange, today time.Time) (WeekRange, bool) {
	cand := WeekFor(w.Start.AddDate(0, 0, -7))
	if WeekInMonth(cand, today) {
		return cand, true
	}
	return WeekRange{}, false
}

// WeekInMonth reports whether any of the week's dates falls in today's
// calendar month. This is the membership test for navigability: boundary
// weeks commonly spill into the adjacent month and must stay reachable.
func WeekInMonth(w WeekRange, today time.Time) bool {
	for _, d := range w.Dates {
		if d.Month() == today.Month() && d.Year() == today.Year() {
			return true
		}
	}
	return false
}

// WeekFullyInMonth reports whether every date of the week falls in today's
// calendar month. Used only for advisory display, never for navigation.
func WeekFullyInMonth(w WeekRange, today time.Time) bool {
	for _, d := range w.Dates {
		if d.Month() != today.Month() || d.Year() != today.Year() {
			return false
		}
	}
	return true
}

// CanNavigateNext reports whether a week after w is reachable.
func CanNavigateNext(w WeekRange, today time.Time) bool {
	_, ok := NextWeek(w, today)
	return ok
}

// CanNavigatePrevious reports whether a week before w is reachable.
func CanNavigatePrevious(w WeekRange, today time.Time) bool {
	_, ok := PreviousWeek(w, today)
	return ok
}

// DayName returns the English weekday name for date.
func DayName(date time.Time) string {
	return date.Weekday().String()
}

// IsToday compares calendar dates, ignoring time of day.
func IsToday(date, today time.Time) bool {
	return date.Year() == today.Year() &&
		date.Month() == today.Month() &&
		date.Day() == today.Day()
}

// DisplayRange renders a week as "Feb 26 - Mar 3, 2024", collapsing to
// "Mar 4 - 10, 2024" when both ends share a month.
func DisplayRange(w WeekRange) string {
	year := w.Start.Year()
	if w.Start.Month() == w.End.Month() {
		return fmt.Sprintf("%s %d - %d, %d", w.Start.Format("Jan"), w.Start.Day(), w.End.Day(), year)
	}
	return fmt.Sprintf("%s %d - %s %d, %d", w.Start.Format("Jan"), w.Start.Day(), w.End.Format("Jan"), w.End.Day(), year)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
