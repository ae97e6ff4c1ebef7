// Package order implements the screen where the user arranges subjects
// before generating the schedule.
package order

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/ordering"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/router"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/schedule"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/screen"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/screens/summary"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/ui/components"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/ui/layout"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/ui/theme"
)

// Generator builds and writes the schedule for the given subject order and
// returns the result with the path it was written to.
type Generator func(order []string) (*schedule.Result, string, error)

// generatedMsg carries the outcome of a Generator call.
type generatedMsg struct {
	result *schedule.Result
	output string
	err    error
}

// OrderScreen lets the user reorder, drop and then schedule subjects.
type OrderScreen struct {
	list     *ordering.List
	cursor   int
	marked   map[int]bool
	generate Generator
	history  func() screen.Screen

	typing bool
	input  components.OrderInput

	busy   bool
	errMsg string
}

var _ screen.Screen = (*OrderScreen)(nil)
var _ screen.KeyHintProvider = (*OrderScreen)(nil)

// New creates an OrderScreen over names. history may be nil when no run
// store is available.
func New(names []string, generate Generator, history func() screen.Screen) *OrderScreen {
	return &OrderScreen{
		list:     ordering.NewList(names),
		marked:   make(map[int]bool),
		generate: generate,
		history:  history,
	}
}

// Order returns the current subject order.
func (s *OrderScreen) Order() []string {
	return s.list.Items()
}

func (s *OrderScreen) Init() tea.Cmd {
	return nil
}

func (s *OrderScreen) Title() string {
	return "Ordem das matérias"
}

func (s *OrderScreen) KeyHints() []layout.KeyHint {
	if s.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "K/J", Description: "Move"},
		{Key: "Space", Description: "Mark"},
		{Key: "d", Description: "Remove"},
		{Key: "t", Description: "Type order"},
		{Key: "Enter", Description: "Generate"},
	}
	if s.history != nil {
		hints = append(hints, layout.KeyHint{Key: "h", Description: "History"})
	}
	return append(hints, layout.KeyHint{Key: "q", Description: "Quit"})
}

func (s *OrderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		s.busy = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.errMsg = ""
		next := summary.New(msg.result, msg.output)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
		if s.typing {
			return s.updateTyping(msg)
		}
		return s.updateList(msg)
	}

	if s.typing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *OrderScreen) updateList(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.list.Len()-1 {
			s.cursor++
		}
	case "K", "shift+up":
		s.move(s.list.MoveUp)
	case "J", "shift+down":
		s.move(s.list.MoveDown)
	case "space":
		if s.list.Len() > 0 {
			s.marked[s.cursor] = !s.marked[s.cursor]
		}
	case "d", "delete":
		s.remove()
	case "t":
		s.typing = true
		s.input = components.NewOrderInput(s.placeholder(), 0)
		return s, s.input.Init()
	case "h":
		if s.history != nil {
			next := s.history()
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	case "enter":
		return s, s.startGenerate()
	case "q":
		return s, tea.Quit
	}
	return s, nil
}

func (s *OrderScreen) updateTyping(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.typing = false
		return s, nil
	case "enter":
		order, err := ordering.Parse(s.input.Value(), s.list.Len())
		if err == nil {
			err = s.list.Apply(order)
		}
		if err != nil {
			s.input.Fail(err)
			return s, nil
		}
		s.typing = false
		s.cursor = 0
		s.marked = make(map[int]bool)
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// move applies fn to the cursor item and follows it. Marks travel with the
// item they belong to.
func (s *OrderScreen) move(fn func(int) int) {
	from := s.cursor
	to := fn(from)
	if to == from {
		return
	}
	s.marked[from], s.marked[to] = s.marked[to], s.marked[from]
	s.cursor = to
}

// remove drops every marked subject, or the one under the cursor when
// nothing is marked.
func (s *OrderScreen) remove() {
	if s.list.Len() == 0 {
		return
	}
	var drop []int
	for i, m := range s.marked {
		if m {
			drop = append(drop, i)
		}
	}
	if len(drop) == 0 {
		drop = []int{s.cursor}
	}
	s.list.Remove(drop...)
	s.marked = make(map[int]bool)
	if s.cursor >= s.list.Len() {
		s.cursor = max(s.list.Len()-1, 0)
	}
}

func (s *OrderScreen) startGenerate() tea.Cmd {
	if s.list.Len() == 0 {
		s.errMsg = "nenhuma matéria para agendar"
		return nil
	}
	if s.generate == nil {
		return nil
	}
	s.busy = true
	s.errMsg = ""
	order := s.list.Items()
	gen := s.generate
	return func() tea.Msg {
		res, out, err := gen(order)
		return generatedMsg{result: res, output: out, err: err}
	}
}

func (s *OrderScreen) placeholder() string {
	parts := make([]string, s.list.Len())
	for i := range parts {
		parts[i] = fmt.Sprint(i + 1)
	}
	return strings.Join(parts, ", ")
}

func (s *OrderScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.list.Len() == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Nenhuma matéria selecionada.")))
		b.WriteString("\n")
	}

	for i, name := range s.list.Items() {
		prefix := "  "
		style := theme.Unselected
		if i == s.cursor && !s.typing {
			prefix = "▸ "
			style = theme.Selected
		}
		label := fmt.Sprintf("%2d. %s", i+1, name)
		if s.marked[i] {
			label = theme.Marked.Render(label)
		}
		b.WriteString("  " + style.Render(prefix) + style.Render(label))
		b.WriteString("\n")
	}

	if s.typing {
		b.WriteString("\n  ")
		b.WriteString(theme.Hint.Render("Digite a nova ordem (ex.: 3, 1, 2)"))
		b.WriteString("\n  ")
		b.WriteString(s.input.View())
		b.WriteString("\n")
	}

	if s.busy {
		b.WriteString("\n  ")
		b.WriteString(theme.Hint.Render("Gerando cronograma..."))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n  ")
		b.WriteString(theme.Failure.Render("Erro: " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}
