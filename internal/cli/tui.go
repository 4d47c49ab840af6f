package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hourkeep/hourkeep-cli/internal/tui"
)

// TuiCmd launches the interactive weekly grid.
type TuiCmd struct{}

func (cmd *TuiCmd) Run(appCtx *Context) error {
	m := tui.NewModel(tui.Deps{
		Save:       appCtx.Save,
		Submit:     appCtx.Submit,
		EmployeeID: appCtx.EmployeeID(),
		ProjectID:  appCtx.Config.ProjectID,
		TaskID:     appCtx.Config.TaskID,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
