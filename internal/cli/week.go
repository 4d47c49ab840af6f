package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hourkeep/hourkeep-cli/internal/calendar"
	"github.com/hourkeep/hourkeep-cli/internal/timesheet"
)

// WeekCmd prints the reconciled grid for one week, read-only.
type WeekCmd struct {
	Date string `help:"Anchor date in YYYY-MM-DD (default: today)."`
}

func (cmd *WeekCmd) Run(appCtx *Context) error {
	anchor, err := ResolveDate(cmd.Date)
	if err != nil {
		return fmt.Errorf("parse date: %w", err)
	}

	ctx := context.Background()
	week := calendar.WeekFor(anchor)
	health := timesheet.Probe(ctx, appCtx.Save, appCtx.Submit)

	rec := &timesheet.Reconciler{
		Save: appCtx.Save, Submit: appCtx.Submit,
		Health:     health,
		EmployeeID: appCtx.EmployeeID(),
	}
	entries := rec.Reconcile(ctx, week)

	fmt.Printf("Week of %s\n\n", calendar.DisplayRange(week))
	if !health.SaveAvailable {
		fmt.Println("⚠ save-service unavailable; saved hours not shown")
	}
	if !health.SubmitAvailable {
		fmt.Println("⚠ submit-service unavailable; submitted hours not shown")
	}

	fmt.Printf("%-14s", "")
	for _, d := range week.Dates {
		fmt.Printf("%-6s", strings.ToUpper(calendar.DayName(d)[:3]))
	}
	fmt.Println()

	fmt.Printf("%-14s", "Date")
	for _, d := range week.Dates {
		fmt.Printf("%-6d", d.Day())
	}
	fmt.Println()

	fmt.Printf("%-14s", "Billable")
	for _, e := range entries {
		fmt.Printf("%-6d", e.Billable)
	}
	fmt.Println()

	fmt.Printf("%-14s", "Non-Billable")
	for _, e := range entries {
		fmt.Printf("%-6d", e.NonBillable)
	}
	fmt.Println()

	b, nb := entries.Total()
	fmt.Printf("\nTotals: %d billable, %d non-billable\n", b, nb)
	return nil
}
