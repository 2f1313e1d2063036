// Package tui implements application.UI as a bubbletea program: a PIN
// display followed by a progress bar, styled with lipgloss, in the
// teacher's presentation/bubble_tea idiom.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	pinStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

type statusMsg string
type progressMsg int
type pinMsg string
type enableMsg struct{}

type model struct {
	bar      progress.Model
	status   []string
	pin      string
	percent  int
	barShown bool
}

func newModel() model {
	return model{bar: progress.New(progress.WithDefaultGradient())}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case statusMsg:
		m.status = append(m.status, string(msg))
	case pinMsg:
		m.pin = string(msg)
	case progressMsg:
		m.barShown = true
		m.percent = int(msg)
	case enableMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	s := ""
	for _, line := range m.status {
		s += statusStyle.Render(line) + "\n"
	}
	if m.pin != "" {
		s += pinStyle.Render("PIN: "+m.pin) + "\n"
	}
	if m.barShown {
		s += m.bar.ViewAs(float64(m.percent)/100) + "\n"
	}
	return s
}
