package render

import "github.com/charmbracelet/lipgloss"

// Tile colors follow the classic game: green for a match, yellow for a
// misplaced letter, plain for an absent one.
var (
	ColorMatch   = lipgloss.Color("2")
	ColorPresent = lipgloss.Color("3")
	ColorWarning = lipgloss.Color("5")
	ColorFinal   = lipgloss.Color("1")
)

var (
	MatchStyle   = lipgloss.NewStyle().Foreground(ColorMatch).Bold(true)
	PresentStyle = lipgloss.NewStyle().Foreground(ColorPresent).Bold(true)
	AbsentStyle  = lipgloss.NewStyle()

	EncourageStyle    = lipgloss.NewStyle()
	WarningStyle      = lipgloss.NewStyle().Foreground(ColorWarning)
	FinalWarningStyle = lipgloss.NewStyle().Foreground(ColorFinal).Bold(true)

	WinStyle    = lipgloss.NewStyle().Foreground(ColorMatch).Bold(true)
	LossStyle   = lipgloss.NewStyle().Foreground(ColorFinal).Bold(true)
	BannerStyle = lipgloss.NewStyle().Faint(true)
)
