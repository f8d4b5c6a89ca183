// Package tui provides the terminal dashboard for healthdash.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/reminder"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary = lipgloss.Color("#0EA5E9") // Sky
	ColorWater   = lipgloss.Color("#3B82F6") // Blue
	ColorMove    = lipgloss.Color("#10B981") // Green
	ColorSleep   = lipgloss.Color("#6366F1") // Indigo
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorOrange  = lipgloss.Color("#F97316")
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for the dashboard header.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StylePanelTitle is used for panel headings.
	StylePanelTitle = lipgloss.NewStyle().
			Bold(true)

	// StyleSubtitle is used for secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleMuted is used for muted text.
	StyleMuted = StyleSubtitle

	// StyleClock renders the large clock.
	StyleClock = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StyleValue = lipgloss.NewStyle().
			Bold(true)

	StyleWater = lipgloss.NewStyle().
			Foreground(ColorWater)

	StyleMove = lipgloss.NewStyle().
			Foreground(ColorMove)

	StyleSleep = lipgloss.NewStyle().
			Foreground(ColorSleep)

	// StyleCountdown renders a running stretch timer.
	StyleCountdown = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMove)

	// StyleWarning is used for warning messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleSuccess is used for success messages.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMove)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles for the panels.
var (
	StylePanelBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// StyleReminderBox highlights a panel with a visible prompt.
	StyleReminderBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorWarning).
				Padding(0, 1)

	// StyleActiveBox highlights a running stretch.
	StyleActiveBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSuccess).
			Padding(0, 1)
)

// ProgressBar creates a colored progress bar string.
func ProgressBar(percentage float64, width int, fill lipgloss.Color) string {
	percentage = min(max(percentage, 0), 100)
	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	filledStyle := lipgloss.NewStyle().Foreground(fill)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", empty))
}

// HydrationLevelStyle colors the hydration status text.
func HydrationLevelStyle(level model.HydrationLevel) lipgloss.Style {
	switch level {
	case model.HydrationLow:
		return lipgloss.NewStyle().Foreground(ColorError)
	case model.HydrationModerate:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	default:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	}
}

// QualityColor maps a sleep quality band to a color.
func QualityColor(q reminder.Quality) lipgloss.Color {
	switch q {
	case reminder.QualityShort:
		return ColorError
	case reminder.QualityBorderline:
		return ColorOrange
	case reminder.QualityHealthy:
		return ColorSuccess
	default:
		return ColorWater
	}
}
