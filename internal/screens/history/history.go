package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/duration"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/router"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/screen"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/store"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/ui/layout"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/ui/theme"
)

// Limit is the number of runs loaded.
const Limit = 50

type historyLoadedMsg struct {
	Runs []store.Run
	Err  error
}

// HistoryScreen displays previously generated schedules.
type HistoryScreen struct {
	runRepo  store.RunRepo
	runs     []store.Run
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(runRepo store.RunRepo) *HistoryScreen {
	return &HistoryScreen{
		runRepo:  runRepo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		runs, err := s.runRepo.Recent(context.Background(), store.QueryOpts{Limit: Limit})
		return historyLoadedMsg{Runs: runs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Histórico"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.runs = msg.Runs
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.runs)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Carregando histórico...")
	}
	if len(s.runs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nenhum cronograma gerado ainda.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, run := range s.runs {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d matérias  %d dias  %s",
			prefix, run.CreatedAt.Local().Format("02/01/2006 15:04"),
			len(run.Subjects), run.Rows, duration.Format(run.TotalSeconds))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, detail := range details(run) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					theme.Hint.Render("    "+detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func details(run store.Run) []string {
	return []string{
		"Ordem: " + strings.Join(run.Subjects, ", "),
		fmt.Sprintf("%d aulas em %d blocos, %d revisões semanais, %d mensais",
			run.Lessons, run.LessonBlocks, run.WeeklyReviews, run.MonthlyReviews),
		"Arquivo: " + run.OutputPath,
		"ID: " + run.ID,
	}
}
