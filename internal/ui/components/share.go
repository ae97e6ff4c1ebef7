package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/ui/theme"
)

// ShareBar shows a labelled part of a whole, such as one subject's share
// of the total study time.
type ShareBar struct {
	Label      string
	LabelWidth int
	Part       int
	Whole      int
	Width      int
}

// Fraction returns Part/Whole clamped to [0, 1].
func (b ShareBar) Fraction() float64 {
	if b.Whole <= 0 || b.Part <= 0 {
		return 0
	}
	f := float64(b.Part) / float64(b.Whole)
	if f > 1 {
		return 1
	}
	return f
}

// View renders the bar.
func (b ShareBar) View() string {
	label := b.Label
	if b.LabelWidth > 0 {
		label = lipgloss.NewStyle().Width(b.LabelWidth).MaxWidth(b.LabelWidth).Render(label)
	}
	result := theme.Body.Render(label) + "  "

	percent := fmt.Sprintf("  %3d%%", int(b.Fraction()*100))
	barWidth := b.Width - lipgloss.Width(result) - len(percent)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * b.Fraction())
	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		theme.Hint.Render(percent)
	return result
}
