package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — muted, easy on the eyes for long study sessions
var (
	Primary   = lipgloss.Color("#7C9EF4") // Periwinkle
	Secondary = lipgloss.Color("#4ECBA0") // Mint
	Accent    = lipgloss.Color("#E8B44C") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#E7E9EE") // Off-white
	TextDim   = lipgloss.Color("#8B93A7") // Gray blue
	BgDark    = lipgloss.Color("#14161F") // Near black
	BgCard    = lipgloss.Color("#1F2333") // Dark indigo
	Border    = lipgloss.Color("#3A4160") // Muted indigo
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Flashcard faces
var (
	CardFront = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 4)

	CardBack = lipgloss.NewStyle().
			Foreground(Text).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(1, 4)

	CardNote = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true).
			Align(lipgloss.Center)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
