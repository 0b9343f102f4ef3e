package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorAccent = lipgloss.Color("#E5A00D")
	colorDim    = lipgloss.Color("#6B7280")
	colorLight  = lipgloss.Color("#9CA3AF")
	colorWhite  = lipgloss.Color("#F9FAFB")
	colorGood   = lipgloss.Color("#10B981")
	colorMedium = lipgloss.Color("#F59E0B")
	colorPoor   = lipgloss.Color("#EF4444")
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	styleTab = lipgloss.NewStyle().
			Foreground(colorLight).
			Padding(0, 1)

	styleTabActive = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorAccent).
			Bold(true).
			Padding(0, 1)

	styleDim = lipgloss.NewStyle().
			Foreground(colorDim)

	styleCardTitle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	stylePlaceholderCard = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Foreground(colorDim).
				Padding(0, 1)

	styleBanner = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPoor).
			Foreground(colorPoor).
			Padding(0, 1)

	styleEmpty = lipgloss.NewStyle().
			Foreground(colorLight).
			Padding(1, 2)

	styleBadgeGood = lipgloss.NewStyle().
			Foreground(colorGood).
			Bold(true)

	styleBadgeMedium = lipgloss.NewStyle().
				Foreground(colorMedium).
				Bold(true)

	styleBadgePoor = lipgloss.NewStyle().
			Foreground(colorPoor).
			Bold(true)

	styleBadgeNone = lipgloss.NewStyle().
			Foreground(colorDim)
)
