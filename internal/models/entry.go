package models

import (
	"fmt"

	"github.com/hourkeep/hourkeep-cli/internal/constants"
)

// DayEntry holds the editable state for one day of the visible week.
type DayEntry struct {
	Billable    int
	NonBillable int
	WFH         bool
}

// WeekEntries is the per-day view model for one week. Index i is the entry
// for WeekRange.Dates[i], so index 0 is always Monday. The array is replaced
// wholesale on navigation and reconciliation; the setters below are
// copy-on-write so an in-place mutation can never leak between weeks.
type WeekEntries [7]DayEntry

// SetBillable returns a copy of w with day's billable hours replaced.
// Hours must already be validated to 0..24 at the input boundary; the
// model does not re-check.
func (w WeekEntries) SetBillable(day, hours int) WeekEntries {
	w[day].Billable = hours
	return w
}

// SetNonBillable returns a copy of w with day's non-billable hours replaced.
func (w WeekEntries) SetNonBillable(day, hours int) WeekEntries {
	w[day].NonBillable = hours
	return w
}

// SetWFH returns a copy of w with day's work-from-home flag replaced.
func (w WeekEntries) SetWFH(day int, wfh bool) WeekEntries {
	w[day].WFH = wfh
	return w
}

// ValidHours reports whether hours is an acceptable cell value. The input
// boundary (TUI text field, CLI flags) must call this before touching the
// model.
func ValidHours(hours int) bool {
	return hours >= 0 && hours <= constants.MaxDailyHours
}

// ClampHours forces hours into 0..24 for boundary code that prefers
// clamping over rejection.
func ClampHours(hours int) int {
	if hours < 0 {
		return 0
	}
	if hours > constants.MaxDailyHours {
		return constants.MaxDailyHours
	}
	return hours
}

// Total returns the summed billable and non-billable hours for the week.
func (w WeekEntries) Total() (billable, nonBillable int) {
	for _, e := range w {
		billable += e.Billable
		nonBillable += e.NonBillable
	}
	return billable, nonBillable
}

// String renders a compact one-line summary, handy in logs.
func (w WeekEntries) String() string {
	b, nb := w.Total()
	return fmt.Sprintf("week{billable=%d nonBillable=%d}", b, nb)
}
