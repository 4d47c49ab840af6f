package timesheet

import (
	"context"

	"github.com/hourkeep/hourkeep-cli/internal/calendar"
	"github.com/hourkeep/hourkeep-cli/internal/constants"
	"github.com/hourkeep/hourkeep-cli/internal/logger"
	"github.com/hourkeep/hourkeep-cli/internal/models"
)

// Reconciler merges the two record sources into a single week of entries.
type Reconciler struct {
	Save       RecordStore
	Submit     RecordStore
	Health     models.ServiceHealth
	EmployeeID string
}

// Reconcile produces the 7-slot view model for week. Slots start zeroed;
// saved records are applied first, then submitted records overwrite them
// slot by slot and category by category. An unhealthy source is skipped
// without a fetch, and a fetch failure degrades to whatever the other
// source provided; the merge itself never fails.
//
// Reconcile replaces the whole array, so callers must flush pending local
// edits before triggering it.
func (r *Reconciler) Reconcile(ctx context.Context, week calendar.WeekRange) models.WeekEntries {
	var entries models.WeekEntries

	if r.Health.SaveAvailable {
		r.apply(ctx, r.Save, "save-service", week, &entries)
	}
	if r.Health.SubmitAvailable {
		r.apply(ctx, r.Submit, "submit-service", week, &entries)
	}

	return entries
}

func (r *Reconciler) apply(ctx context.Context, store RecordStore, source string, week calendar.WeekRange, entries *models.WeekEntries) {
	records, err := store.Records(ctx, r.EmployeeID, week.Start, week.End)
	if err != nil {
		logger.Warn("record fetch failed, continuing without source", "source", source, "error", err)
		return
	}

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			logger.Warn("skipping malformed record", "source", source, "error", err)
			continue
		}
		for i, date := range week.Dates {
			if !rec.SameDay(date) {
				continue
			}
			switch rec.RecordType {
			case constants.RecordBillable:
				entries[i].Billable = rec.Hours
			case constants.RecordNonBillable:
				entries[i].NonBillable = rec.Hours
			}
			break
		}
	}
}
