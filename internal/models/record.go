package models

import (
	"fmt"
	"time"

	"github.com/hourkeep/hourkeep-cli/internal/constants"
)

// Record is a single timesheet record as carried by the save and submit
// services. The services own the authoritative copy; this type only exists
// at the request/response boundary.
type Record struct {
	Date       string               `json:"date"`
	Hours      int                  `json:"hours"`
	EmployeeID string               `json:"employeeId"`
	ProjectID  string               `json:"projectId"`
	TaskID     string               `json:"taskId"`
	RecordType constants.RecordType `json:"recordType"`
}

// Validate checks a record received from a service. Malformed records are
// logged and skipped by callers rather than failing the whole fetch.
func (r Record) Validate() error {
	if _, err := r.Day(); err != nil {
		return err
	}
	switch r.RecordType {
	case constants.RecordBillable, constants.RecordNonBillable:
	default:
		return fmt.Errorf("unknown record type %q", r.RecordType)
	}
	if r.Hours < 0 || r.Hours > constants.MaxDailyHours {
		return fmt.Errorf("hours %d out of range", r.Hours)
	}
	return nil
}

// Day parses the record's date into a local calendar day. Services store
// dates as YYYY-MM-DD, but some return full timestamps; accept both by
// keying off the date prefix.
func (r Record) Day() (time.Time, error) {
	s := r.Date
	if len(s) > len(constants.DateFormat) {
		s = s[:len(constants.DateFormat)]
	}
	d, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid record date %q: %w", r.Date, err)
	}
	return d, nil
}

// SameDay reports whether the record belongs to the given calendar date.
func (r Record) SameDay(date time.Time) bool {
	d, err := r.Day()
	if err != nil {
		return false
	}
	return d.Year() == date.Year() && d.Month() == date.Month() && d.Day() == date.Day()
}

// ServiceHealth tracks per-collaborator availability. Probed once at mount
// and reused; never refreshed on a timer.
type ServiceHealth struct {
	SaveAvailable   bool
	SubmitAvailable bool
}
