package timesheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/hourkeep/hourkeep-cli/internal/calendar"
	"github.com/hourkeep/hourkeep-cli/internal/constants"
	"github.com/hourkeep/hourkeep-cli/internal/logger"
	"github.com/hourkeep/hourkeep-cli/internal/models"
)

// ErrServiceUnavailable is returned when a dispatch is attempted against a
// service whose health check failed at mount.
var ErrServiceUnavailable = errors.New("service unavailable")

// Dispatcher walks a week's entries and issues one write per day per
// category against the targeted record service.
type Dispatcher struct {
	Save   RecordStore
	Submit RecordStore
	Health models.ServiceHealth

	EmployeeID string
	ProjectID  string
	TaskID     string
}

// SaveWeek persists all 14 (day, category) values to the save-service.
func (d *Dispatcher) SaveWeek(ctx context.Context, week calendar.WeekRange, entries models.WeekEntries) error {
	if !d.Health.SaveAvailable {
		return fmt.Errorf("save-service: %w", ErrServiceUnavailable)
	}
	return d.dispatch(ctx, d.Save, "save-service", week, entries)
}

// SubmitWeek persists all 14 (day, category) values to the submit-service.
func (d *Dispatcher) SubmitWeek(ctx context.Context, week calendar.WeekRange, entries models.WeekEntries) error {
	if !d.Health.SubmitAvailable {
		return fmt.Errorf("submit-service: %w", ErrServiceUnavailable)
	}
	return d.dispatch(ctx, d.Submit, "submit-service", week, entries)
}

// dispatch issues the writes strictly in day-then-category order, each
// awaited before the next begins. Zero-hour entries are written too: an
// explicit zero is a real entry, distinct from "never recorded". The first
// failure aborts the remainder; completed writes are not rolled back, so a
// partial failure leaves a deterministic prefix of days persisted.
func (d *Dispatcher) dispatch(ctx context.Context, store RecordStore, target string, week calendar.WeekRange, entries models.WeekEntries) error {
	for i, date := range week.Dates {
		categories := []struct {
			recordType constants.RecordType
			hours      int
		}{
			{constants.RecordBillable, entries[i].Billable},
			{constants.RecordNonBillable, entries[i].NonBillable},
		}

		for _, cat := range categories {
			rec := models.Record{
				Date:       date.Format(constants.DateFormat),
				Hours:      cat.hours,
				EmployeeID: d.EmployeeID,
				ProjectID:  d.ProjectID,
				TaskID:     d.TaskID,
				RecordType: cat.recordType,
			}
			if err := store.Write(ctx, rec); err != nil {
				logger.Error("record write failed, aborting sequence",
					"target", target, "date", rec.Date, "recordType", rec.RecordType, "error", err)
				return fmt.Errorf("writing %s hours for %s: %w", cat.recordType, rec.Date, err)
			}
		}
	}

	logger.Info("week dispatched", "target", target, "week", calendar.DisplayRange(week))
	return nil
}
