package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/samir0909/flyingcarpet/application"
)

// UI is an application.UI backed by a running bubbletea program. Start
// must be called once before any other method; it blocks until the
// program quits (on EnableUI or user interrupt).
type UI struct {
	program *tea.Program
}

// New constructs a UI. The returned program is not yet running; call
// Start to begin rendering.
func New() *UI {
	return &UI{program: tea.NewProgram(newModel())}
}

// Start runs the bubbletea event loop. It returns when the program quits;
// callers typically run it in its own goroutine alongside a session.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}

func (u *UI) Output(msg string)             { u.program.Send(statusMsg(msg)) }
func (u *UI) ShowProgressBar()              { u.program.Send(progressMsg(0)) }
func (u *UI) UpdateProgressBar(percent int) { u.program.Send(progressMsg(percent)) }
func (u *UI) ShowPIN(pin string)            { u.program.Send(pinMsg(pin)) }
func (u *UI) EnableUI()                     { u.program.Send(enableMsg{}) }

var _ application.UI = (*UI)(nil)
