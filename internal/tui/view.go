package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hourkeep/hourkeep-cli/internal/calendar"
	"github.com/hourkeep/hourkeep-cli/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == constants.StateConfirmSubmit {
		return m.viewConfirmSubmit()
	}

	now := time.Now()

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTitle(now),
		m.viewBanners(),
		m.viewGrid(now),
		m.viewTotals(),
		m.help.View(m.keys),
	)

	return docStyle.Render(ui)
}

func (m Model) viewTitle(now time.Time) string {
	prev := "  "
	if calendar.CanNavigatePrevious(m.week, now) {
		prev = "< "
	}
	next := "  "
	if calendar.CanNavigateNext(m.week, now) {
		next = " >"
	}
	return titleStyle.Render(prev+calendar.DisplayRange(m.week)+next) + "\n"
}

func (m Model) viewBanners() string {
	var banners []string

	if m.probed && !m.health.SaveAvailable {
		banners = append(banners, warningStyle.Render("⚠ save-service unavailable — saving disabled"))
	}
	if m.probed && !m.health.SubmitAvailable {
		banners = append(banners, warningStyle.Render("⚠ submit-service unavailable — submitting disabled"))
	}
	if m.errBanner != "" {
		banners = append(banners, dangerStyle.Render("✗ "+m.errBanner))
	}
	if m.status != "" {
		banners = append(banners, statusStyle.Render("✓ "+m.status))
	}
	if m.dispatching {
		banners = append(banners, statusStyle.Render("… writing week"))
	}

	if len(banners) == 0 {
		return ""
	}
	return strings.Join(banners, "\n") + "\n"
}

func (m Model) viewGrid(now time.Time) string {
	var rows []string

	// Weekday header; today is highlighted.
	cells := []string{rowLabelStyle.Render("")}
	for _, d := range m.week.Dates {
		style := headerCellStyle
		if calendar.IsToday(d, now) {
			style = todayHeaderStyle
		}
		cells = append(cells, style.Render(strings.ToUpper(calendar.DayName(d)[:3])))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))

	// Date row with selection markers.
	cells = []string{rowLabelStyle.Render("Date")}
	for i, d := range m.week.Dates {
		label := fmt.Sprintf("%02d", d.Day())
		if m.selected[i] {
			label = "•" + label
		}
		style := cellStyle
		if m.selected[i] {
			style = selectedCellStyle
		}
		cells = append(cells, style.Render(label))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))

	rows = append(rows, m.viewHoursRow("Billable", rowBillable))
	rows = append(rows, m.viewHoursRow("Non-Billable", rowNonBillable))
	rows = append(rows, m.viewWFHRow())

	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (m Model) viewHoursRow(label string, row gridRow) string {
	cells := []string{rowLabelStyle.Render(label)}
	for i := range m.week.Dates {
		hours := m.entries[i].Billable
		if row == rowNonBillable {
			hours = m.entries[i].NonBillable
		}

		if m.state == constants.StateEditHours && m.cursorDay == i && m.cursorRow == row {
			cells = append(cells, cellStyle.Render(m.input.View()))
			continue
		}

		style := cellStyle
		if m.cursorDay == i && m.cursorRow == row {
			style = cursorCellStyle
		}
		cells = append(cells, style.Render(fmt.Sprintf("%d", hours)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) viewWFHRow() string {
	cells := []string{rowLabelStyle.Render("WFH")}
	for i := range m.week.Dates {
		label := "—"
		if m.entries[i].WFH {
			label = wfhOnStyle.Render("WFH")
		}

		style := cellStyle
		if m.cursorDay == i && m.cursorRow == rowWFH {
			style = cursorCellStyle
			if m.entries[i].WFH {
				label = "WFH"
			}
		}
		cells = append(cells, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) viewConfirmSubmit() string {
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Submit the week of %s?", calendar.DisplayRange(m.week))),
			"Submitted hours overwrite saved hours and cannot be unsubmitted here.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewTotals() string {
	b, nb := m.entries.Total()
	return rowLabelStyle.Render(fmt.Sprintf("Σ %dh + %dh", b, nb)) + "\n"
}
