package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/hourkeep/hourkeep-cli/internal/calendar"
	"github.com/hourkeep/hourkeep-cli/internal/constants"
	"github.com/hourkeep/hourkeep-cli/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case healthMsg:
		m.health = models.ServiceHealth(msg)
		m.probed = true
		cmd := m.setWeek(m.week)
		return m, cmd

	case reconcileDoneMsg:
		// Drop stale completions: a fetch for a week the user has since
		// navigated away from must not overwrite the current view.
		if msg.gen != m.reconcileGen {
			return m, nil
		}
		m.entries = msg.entries
		return m, nil

	case dispatchDoneMsg:
		m.dispatching = false
		if msg.err != nil {
			m.errBanner = msg.err.Error()
			return m, nil
		}
		if msg.op == "submit" {
			m.status = "Week submitted"
		} else {
			m.status = "Week saved"
		}
		// Pull the just-written state back from the source of truth so the
		// grid shows what the server actually persisted.
		m.reconcileGen = uuid.New().String()
		return m, m.reconcileCmd(m.week, m.reconcileGen)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case constants.StateEditHours:
		return m.handleEditKey(msg)
	case constants.StateConfirmSubmit:
		return m.handleConfirmKey(msg)
	}

	// A write failure banner is transient: any keypress clears it.
	m.errBanner = ""
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.cursorDay > 0 {
			m.cursorDay--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.cursorDay < 6 {
			m.cursorDay++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursorRow > rowBillable {
			m.cursorRow--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursorRow < rowWFH {
			m.cursorRow++
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevWeek):
		if prev, ok := calendar.PreviousWeek(m.week, time.Now()); ok {
			cmd := m.setWeek(prev)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.NextWeek):
		if next, ok := calendar.NextWeek(m.week, time.Now()); ok {
			cmd := m.setWeek(next)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if m.selected[m.cursorDay] {
			delete(m.selected, m.cursorDay)
		} else {
			m.selected[m.cursorDay] = true
		}
		return m, nil

	case key.Matches(msg, m.keys.WFH):
		if len(m.selected) > 0 {
			for day := range m.selected {
				m.entries = m.entries.SetWFH(day, !m.entries[day].WFH)
			}
		} else {
			m.entries = m.entries.SetWFH(m.cursorDay, !m.entries[m.cursorDay].WFH)
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.cursorRow == rowWFH {
			m.entries = m.entries.SetWFH(m.cursorDay, !m.entries[m.cursorDay].WFH)
			return m, nil
		}
		return m.startEditing()

	case key.Matches(msg, m.keys.Save):
		return m.startDispatch("save")

	case key.Matches(msg, m.keys.Submit):
		if m.dispatching {
			return m, nil
		}
		if !m.health.SubmitAvailable {
			m.errBanner = "submit-service is unavailable"
			return m, nil
		}
		m.state = constants.StateConfirmSubmit
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.reconcileGen = uuid.New().String()
		return m, m.reconcileCmd(m.week, m.reconcileGen)
	}

	// Typing a digit on an hours cell opens the editor seeded with it.
	if m.cursorRow != rowWFH && len(msg.String()) == 1 && msg.String() >= "0" && msg.String() <= "9" {
		model, cmd := m.startEditing()
		model.input.SetValue(msg.String())
		model.input.CursorEnd()
		return model, cmd
	}

	return m, nil
}

func (m Model) startEditing() (Model, tea.Cmd) {
	current := m.entries[m.cursorDay].Billable
	if m.cursorRow == rowNonBillable {
		current = m.entries[m.cursorDay].NonBillable
	}
	m.input.SetValue(strconv.Itoa(current))
	m.input.CursorEnd()
	m.state = constants.StateEditHours
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = constants.StateGrid
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		m.state = constants.StateGrid
		m.input.Blur()
		hours, err := strconv.Atoi(m.input.Value())
		if err != nil {
			// Not a number; leave the cell untouched.
			return m, nil
		}
		// Clamp at the boundary: out-of-range input never reaches the model.
		hours = models.ClampHours(hours)
		if m.cursorRow == rowNonBillable {
			m.entries = m.entries.SetNonBillable(m.cursorDay, hours)
		} else {
			m.entries = m.entries.SetBillable(m.cursorDay, hours)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.state = constants.StateGrid
		return m.startDispatch("submit")
	case "n", "N", "esc", "q":
		m.state = constants.StateGrid
		return m, nil
	}
	return m, nil
}

func (m Model) startDispatch(op string) (Model, tea.Cmd) {
	if m.dispatching {
		return m, nil
	}
	if op == "save" && !m.health.SaveAvailable {
		m.errBanner = "save-service is unavailable"
		return m, nil
	}
	if op == "submit" && !m.health.SubmitAvailable {
		m.errBanner = "submit-service is unavailable"
		return m, nil
	}
	m.dispatching = true
	return m, m.dispatchCmd(op)
}
