package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleFooter = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// Viewer is a scrollable full-screen view over pre-rendered content.
type Viewer struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewViewer returns a viewer for content.
func NewViewer(title, content string) Viewer {
	return Viewer{title: title, content: content}
}

// Init implements tea.Model.
func (v Viewer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-lipgloss.Height(v.header())-lipgloss.Height(v.footer()), 1)
		if !v.ready {
			v.viewport = viewport.New(msg.Width, height)
			v.viewport.SetContent(v.content)
			v.ready = true
		} else {
			v.viewport.Width = msg.Width
			v.viewport.Height = height
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements tea.Model.
func (v Viewer) View() string {
	if !v.ready {
		return "loading…"
	}
	return lipgloss.JoinVertical(lipgloss.Left, v.header(), v.viewport.View(), v.footer())
}

func (v Viewer) header() string {
	return styleTitle.Render(v.title)
}

func (v Viewer) footer() string {
	percent := 100.0
	if v.ready {
		percent = v.viewport.ScrollPercent() * 100
	}
	return styleFooter.Render(fmt.Sprintf("%3.0f%%  q quit  ↑/↓ scroll", percent))
}

// Run shows content in the alternate screen until the user quits.
func Run(title, content string) error {
	_, err := tea.NewProgram(NewViewer(title, content), tea.WithAltScreen()).Run()
	return err
}
