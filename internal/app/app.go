package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/router"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/screen"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/screens/history"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/screens/order"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/store"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/ui/layout"
)

// Options configures the terminal UI.
type Options struct {
	// Subjects is the initial subject order.
	Subjects []string

	// Generate builds and writes the schedule for the chosen order.
	Generate order.Generator

	// Runs enables the history screen when non-nil.
	Runs store.RunRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	order  *order.OrderScreen
	width  int
	height int
}

// newAppModel creates a new AppModel with the order screen.
func newAppModel(opts Options) AppModel {
	var historyScreen func() screen.Screen
	if opts.Runs != nil {
		runs := opts.Runs
		historyScreen = func() screen.Screen { return history.New(runs) }
	}
	orderScreen := order.New(opts.Subjects, opts.Generate, historyScreen)
	return AppModel{
		router: router.New(orderScreen),
		order:  orderScreen,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, len(m.order.Order()), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and returns the subject order the user
// left the order screen with.
func Run(opts Options) ([]string, error) {
	p := tea.NewProgram(newAppModel(opts))
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return nil, err
	}
	if m, ok := final.(AppModel); ok {
		return m.order.Order(), nil
	}
	return opts.Subjects, nil
}
