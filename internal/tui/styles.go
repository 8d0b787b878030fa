// Package tui renders the job detail screen, both as a Bubble Tea program and
// as static text for non-interactive output.
package tui

import "github.com/charmbracelet/lipgloss"

// Layout defaults.
const (
	defaultWidth  = 80
	defaultHeight = 24
	minWidth      = 40
	minHeight     = 5
	borderPadding = 2
	// chromeHeight is the rows used by the app header and help footer.
	chromeHeight = 4
)

// Icons used in place of the web view's icon font.
const (
	IconStar     = "★"
	IconLocation = "⌖"
	IconBriefing = "▣"
	IconExternal = "↗"
	IconFailure  = "✕"
	IconSkill    = "◆"
)

// Color palette.
//
//nolint:gochecknoglobals // Styles are package-level for reuse across views.
var (
	colorAccent  = lipgloss.Color("63")
	colorSubtle  = lipgloss.Color("241")
	colorValue   = lipgloss.Color("252")
	colorRating  = lipgloss.Color("220")
	colorLink    = lipgloss.Color("39")
	colorError   = lipgloss.Color("196")
	colorBadgeBg = lipgloss.Color("236")
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are package-level for reuse across views.
var (
	AppHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(colorAccent).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorValue)

	LabelStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	ValueStyle = lipgloss.NewStyle().Foreground(colorValue)

	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)

	RatingStyle = lipgloss.NewStyle().Foreground(colorRating)

	LinkStyle = lipgloss.NewStyle().Foreground(colorLink).Underline(true)

	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(colorValue).
			Background(colorBadgeBg).
			Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	SelectedCardStyle = CardStyle.BorderForeground(colorRating)

	RuleStyle = lipgloss.NewStyle().Foreground(colorSubtle)
)
