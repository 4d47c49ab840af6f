package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hourkeep/hourkeep-cli/internal/calendar"
	"github.com/hourkeep/hourkeep-cli/internal/constants"
	"github.com/hourkeep/hourkeep-cli/internal/models"
)

type stubStore struct{}

func (stubStore) Healthy(ctx context.Context) bool { return true }
func (stubStore) Records(ctx context.Context, employeeID string, start, end time.Time) ([]models.Record, error) {
	return nil, nil
}
func (stubStore) Write(ctx context.Context, rec models.Record) error { return nil }

func testModel() Model {
	m := NewModel(Deps{
		Save: stubStore{}, Submit: stubStore{},
		EmployeeID: "EMP-001", ProjectID: "PROJ-001", TaskID: "TASK-001",
	})
	m.health = models.ServiceHealth{SaveAvailable: true, SubmitAvailable: true}
	m.probed = true
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStaleReconcileDiscarded(t *testing.T) {
	m := testModel()
	m.reconcileGen = "current"

	var fetched models.WeekEntries
	fetched = fetched.SetBillable(0, 8)

	// A completion tagged with an older generation must be dropped.
	updated, _ := m.Update(reconcileDoneMsg{gen: "stale", entries: fetched})
	m = updated.(Model)
	if m.entries[0].Billable != 0 {
		t.Error("stale reconciliation overwrote the current week")
	}

	// The matching generation applies.
	updated, _ = m.Update(reconcileDoneMsg{gen: "current", entries: fetched})
	m = updated.(Model)
	if m.entries[0].Billable != 8 {
		t.Error("current reconciliation was not applied")
	}
}

func TestSetWeekResetsWeekScopedState(t *testing.T) {
	m := testModel()
	m.selected[2] = true
	m.entries = m.entries.SetBillable(1, 5)
	oldGen := m.reconcileGen

	cmd := m.setWeek(calendar.WeekFor(time.Now().AddDate(0, 0, 7)))

	if cmd == nil {
		t.Fatal("setWeek must kick off a reconciliation")
	}
	if len(m.selected) != 0 {
		t.Error("selection not cleared on week change")
	}
	if m.entries != (models.WeekEntries{}) {
		t.Error("entries not zeroed on week change")
	}
	if m.reconcileGen == oldGen {
		t.Error("generation token not rotated on week change")
	}
}

func TestEditClampsHours(t *testing.T) {
	m := testModel()
	m.cursorDay = 3
	m.cursorRow = rowBillable

	m, _ = m.startEditing()
	m.input.SetValue("99")

	updated, _ := m.handleEditKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.state != constants.StateGrid {
		t.Error("enter should return to the grid")
	}
	if m.entries[3].Billable != 24 {
		t.Errorf("billable = %d, want clamped 24", m.entries[3].Billable)
	}
}

func TestEditRejectsNonNumeric(t *testing.T) {
	m := testModel()
	m.entries = m.entries.SetNonBillable(1, 4)
	m.cursorDay = 1
	m.cursorRow = rowNonBillable

	m, _ = m.startEditing()
	m.input.SetValue("x")

	updated, _ := m.handleEditKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.entries[1].NonBillable != 4 {
		t.Errorf("non-billable = %d, want untouched 4", m.entries[1].NonBillable)
	}
}

func TestEscCancelsEdit(t *testing.T) {
	m := testModel()
	m, _ = m.startEditing()
	m.input.SetValue("7")

	updated, _ := m.handleEditKey(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if m.state != constants.StateGrid {
		t.Error("esc should return to the grid")
	}
	if m.entries[0].Billable != 0 {
		t.Error("esc must not commit the pending value")
	}
}

func TestDispatchErrorBannerClearsOnKeypress(t *testing.T) {
	m := testModel()
	m.dispatching = true

	updated, _ := m.Update(dispatchDoneMsg{op: "save", err: context.DeadlineExceeded})
	m = updated.(Model)
	if m.errBanner == "" {
		t.Fatal("dispatch failure should raise the error banner")
	}
	if m.dispatching {
		t.Error("dispatching flag not cleared after failure")
	}

	updated, _ = m.Update(keyMsg("h"))
	m = updated.(Model)
	if m.errBanner != "" {
		t.Error("error banner should clear on the next keypress")
	}
}

func TestDispatchSuccessTriggersReconcile(t *testing.T) {
	m := testModel()
	m.dispatching = true
	oldGen := m.reconcileGen

	updated, cmd := m.Update(dispatchDoneMsg{op: "submit"})
	m = updated.(Model)

	if m.status == "" {
		t.Error("successful submit should set a status line")
	}
	if cmd == nil {
		t.Error("successful dispatch must re-reconcile from the source of truth")
	}
	if m.reconcileGen == oldGen {
		t.Error("re-reconcile must rotate the generation token")
	}
}

func TestSaveBlockedWhenUnavailable(t *testing.T) {
	m := testModel()
	m.health.SaveAvailable = false

	updated, cmd := m.startDispatch("save")
	m = updated

	if cmd != nil {
		t.Error("no dispatch command may run against an unavailable service")
	}
	if m.errBanner == "" {
		t.Error("expected an unavailability banner")
	}
	if m.dispatching {
		t.Error("dispatching flag set despite refusal")
	}
}

func TestSubmitRequiresConfirmation(t *testing.T) {
	m := testModel()

	updated, cmd := m.Update(keyMsg("S"))
	m = updated.(Model)

	if m.state != constants.StateConfirmSubmit {
		t.Fatal("submit key should open the confirmation prompt")
	}
	if cmd != nil {
		t.Error("nothing may be written before the prompt is answered")
	}

	// Declining returns to the grid without dispatching.
	updated, cmd = m.Update(keyMsg("n"))
	m = updated.(Model)
	if m.state != constants.StateGrid || cmd != nil {
		t.Error("declining must cancel the submission")
	}

	// Accepting starts the dispatch.
	updated, _ = m.Update(keyMsg("S"))
	m = updated.(Model)
	updated, cmd = m.Update(keyMsg("y"))
	m = updated.(Model)
	if cmd == nil {
		t.Error("confirming must start the submit dispatch")
	}
	if !m.dispatching {
		t.Error("dispatching flag not set after confirmation")
	}
}

func TestWFHToggleAppliesToSelection(t *testing.T) {
	m := testModel()
	m.selected[1] = true
	m.selected[4] = true

	updated, _ := m.Update(keyMsg("w"))
	m = updated.(Model)

	if !m.entries[1].WFH || !m.entries[4].WFH {
		t.Error("WFH toggle should apply to every selected day")
	}
	if m.entries[0].WFH {
		t.Error("WFH toggle leaked onto an unselected day")
	}
}

func TestHealthMsgStartsFirstReconcile(t *testing.T) {
	m := testModel()
	m.probed = false

	updated, cmd := m.Update(healthMsg{SaveAvailable: true, SubmitAvailable: false})
	m = updated.(Model)

	if !m.probed {
		t.Error("health result not recorded")
	}
	if m.health.SubmitAvailable {
		t.Error("health result not applied")
	}
	if cmd == nil {
		t.Error("health result must kick off the first reconciliation")
	}
	// The returned model must carry the week setup itself, not just the
	// command: the generation token is minted there.
	if m.reconcileGen == "" {
		t.Error("returned model missing the generation token for the first reconciliation")
	}
}
