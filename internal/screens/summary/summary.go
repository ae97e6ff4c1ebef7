package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/duration"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/router"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/schedule"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/screen"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/ui/components"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/ui/layout"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/ui/theme"
)

// SummaryScreen displays the stats of a generated schedule.
type SummaryScreen struct {
	result *schedule.Result
	output string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result *schedule.Result, output string) *SummaryScreen {
	return &SummaryScreen{result: result, output: output}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Resumo"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
		{Key: "Esc", Description: "Back to order"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return s, tea.Quit
		case "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	if res == nil {
		return ""
	}
	st := res.Stats

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Cronograma gerado!"))
	b.WriteString("\n\n")

	if s.output != "" {
		b.WriteString(center(theme.Hint.Render(s.output)))
		b.WriteString("\n\n")
	}

	statsLine := fmt.Sprintf("Dias: %d    Aulas: %d    Tempo total: %s",
		st.Rows, st.Lessons, duration.Format(st.Seconds))
	b.WriteString(center(theme.Body.Render(statsLine)))
	b.WriteString("\n")

	reviewLine := theme.Body.Render(fmt.Sprintf("Blocos: %d    ", st.LessonBlocks)) +
		theme.Weekly.Render(fmt.Sprintf("Revisões semanais: %d    ", st.WeeklyReviews)) +
		theme.Monthly.Render(fmt.Sprintf("Revisões mensais: %d", st.MonthlyReviews))
	b.WriteString(center(reviewLine))
	b.WriteString("\n")

	if st.InvalidDurations > 0 {
		b.WriteString(center(theme.Failure.Render(
			fmt.Sprintf("%d aulas com duração inválida contadas como 00:00:00", st.InvalidDurations))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	barWidth := min(width-8, 70)
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(barWidth, 0)))
	b.WriteString(center(theme.Hint.Render("Matérias")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, ss := range st.Subjects {
		labelWidth = max(labelWidth, lipgloss.Width(ss.Name))
	}
	labelWidth = min(labelWidth, barWidth/3)

	for _, ss := range st.Subjects {
		bar := components.ShareBar{
			Label:      ss.Name,
			LabelWidth: labelWidth,
			Part:       ss.Seconds,
			Whole:      st.Seconds,
			Width:      barWidth,
		}
		b.WriteString(center(bar.View()))
		b.WriteString("\n")
		detail := fmt.Sprintf("%d aulas em %d blocos, %s, %d semanais, %d mensais",
			ss.Lessons, ss.Blocks, duration.Format(ss.Seconds), ss.WeeklyReviews, ss.MonthlyReviews)
		b.WriteString(center(theme.Hint.Render(detail)))
		b.WriteString("\n")
	}

	return b.String()
}
