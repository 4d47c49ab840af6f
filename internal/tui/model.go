package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/hourkeep/hourkeep-cli/internal/calendar"
	"github.com/hourkeep/hourkeep-cli/internal/constants"
	"github.com/hourkeep/hourkeep-cli/internal/models"
	"github.com/hourkeep/hourkeep-cli/internal/timesheet"
)

// gridRow is the vertical cursor position within a day column.
type gridRow int

const (
	rowBillable gridRow = iota
	rowNonBillable
	rowWFH
)

// Deps are the collaborators the TUI needs; wired by the CLI layer.
type Deps struct {
	Save       timesheet.RecordStore
	Submit     timesheet.RecordStore
	EmployeeID string
	ProjectID  string
	TaskID     string
}

// Messages produced by background commands. All remote work happens in
// tea.Cmds; Update applies the results on the single UI goroutine, so the
// entries array never sees concurrent writers.
type (
	healthMsg models.ServiceHealth

	reconcileDoneMsg struct {
		gen     string
		entries models.WeekEntries
	}

	dispatchDoneMsg struct {
		op  string // "save" or "submit"
		err error
	}
)

type Model struct {
	deps   Deps
	health models.ServiceHealth
	probed bool

	week    calendar.WeekRange
	entries models.WeekEntries

	// selected day indices, week-scoped; cleared on every navigation
	selected map[int]bool

	cursorDay int
	cursorRow gridRow

	state constants.SessionState
	input textinput.Model

	// reconcileGen tags the in-flight reconciliation; completions carrying
	// a stale tag are dropped so a slow fetch can never overwrite a week
	// the user has already navigated away from.
	reconcileGen string

	dispatching bool

	keys KeyMap
	help help.Model

	errBanner string
	status    string

	quitting bool
	width    int
	height   int
}

// NewModel builds the weekly grid anchored at today's week.
func NewModel(deps Deps) Model {
	ti := textinput.New()
	ti.CharLimit = 2
	ti.Width = 4

	return Model{
		deps:     deps,
		week:     calendar.WeekFor(time.Now()),
		selected: make(map[int]bool),
		state:    constants.StateGrid,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    ti,
	}
}

// Init probes service health once; the first reconciliation follows from
// the health result in Update.
func (m Model) Init() tea.Cmd {
	return m.probeCmd()
}

func (m Model) probeCmd() tea.Cmd {
	save, submit := m.deps.Save, m.deps.Submit
	return func() tea.Msg {
		return healthMsg(timesheet.Probe(context.Background(), save, submit))
	}
}

// reconcileCmd fetches and merges both sources for week, tagged with gen.
func (m Model) reconcileCmd(week calendar.WeekRange, gen string) tea.Cmd {
	rec := &timesheet.Reconciler{
		Save:       m.deps.Save,
		Submit:     m.deps.Submit,
		Health:     m.health,
		EmployeeID: m.deps.EmployeeID,
	}
	return func() tea.Msg {
		return reconcileDoneMsg{
			gen:     gen,
			entries: rec.Reconcile(context.Background(), week),
		}
	}
}

// dispatchCmd captures the week and entries at start; navigation during
// the write sequence does not retarget or abort it.
func (m Model) dispatchCmd(op string) tea.Cmd {
	d := &timesheet.Dispatcher{
		Save:       m.deps.Save,
		Submit:     m.deps.Submit,
		Health:     m.health,
		EmployeeID: m.deps.EmployeeID,
		ProjectID:  m.deps.ProjectID,
		TaskID:     m.deps.TaskID,
	}
	week, entries := m.week, m.entries
	return func() tea.Msg {
		var err error
		if op == "submit" {
			err = d.SubmitWeek(context.Background(), week, entries)
		} else {
			err = d.SaveWeek(context.Background(), week, entries)
		}
		return dispatchDoneMsg{op: op, err: err}
	}
}

// setWeek replaces the active week: entries are zeroed until the tagged
// reconciliation lands, and the selection is cleared (it is week-scoped).
func (m *Model) setWeek(week calendar.WeekRange) tea.Cmd {
	m.week = week
	m.entries = models.WeekEntries{}
	m.selected = make(map[int]bool)
	m.reconcileGen = uuid.New().String()
	return m.reconcileCmd(week, m.reconcileGen)
}
