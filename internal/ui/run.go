package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/FluidXR/tabletswitch/internal/monitor"
)

type sender interface {
	Send(msg tea.Msg)
}

// Presenter forwards controller callbacks into the running program.
type Presenter struct {
	program sender
}

func (p *Presenter) OnConnectionChanged(connected bool) {
	p.program.Send(connectionMsg{connected: connected})
}

func (p *Presenter) OnActionResult(err error) {
	p.program.Send(actionResultMsg{err: err})
}

// Run shows the TUI until the user quits. The caller owns the poller.
// Device listings go through ctrl so they never overlap a poll or switch.
func Run(ctrl *monitor.Controller) error {
	program := tea.NewProgram(NewModel(ctrl, ctrl, ctrl.IsActionAllowed()), tea.WithAltScreen())
	ctrl.SetPresenter(&Presenter{program: program})
	defer ctrl.SetPresenter(nil)
	_, err := program.Run()
	return err
}
