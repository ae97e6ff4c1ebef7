package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#0D9488") // Teal
	Accent    = lipgloss.Color("#D97706") // Amber
	Error     = lipgloss.Color("#DC2626") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	// Marked is a subject flagged for removal.
	Marked = lipgloss.NewStyle().
		Foreground(Accent).
		Strikethrough(true)

	Failure = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Review rows
var (
	Weekly = lipgloss.NewStyle().
		Foreground(Secondary)

	Monthly = lipgloss.NewStyle().
		Foreground(Accent)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
