package tui

import "github.com/charmbracelet/lipgloss"

// One Dark palette
var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorRed       = lipgloss.Color("#E06C75")
	ColorGreen     = lipgloss.Color("#98C379")
	ColorYellow    = lipgloss.Color("#E5C07B")
	ColorBlue      = lipgloss.Color("#61AFEF")
	ColorMagenta   = lipgloss.Color("#C678DD")
	ColorBorder    = lipgloss.Color("#3F4451")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true).
			PaddingLeft(1)

	CountPendingStyle = lipgloss.NewStyle().
				Foreground(ColorYellow)

	CountApprovedStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	CountSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorBlue)

	FilterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorFgMuted).
				PaddingLeft(1)

	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)

	TableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorYellow).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			PaddingLeft(1)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorRed).
				Bold(true).
				PaddingLeft(1)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			Italic(true).
			Padding(1, 2)
)
