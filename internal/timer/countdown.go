// Package timer runs the interactive stretch countdown for the CLI.
package timer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// CountdownDisplay handles the visual display of a stretch countdown.
type CountdownDisplay struct {
	Writer   io.Writer
	UseColor bool
}

// NewCountdownDisplay creates a new countdown display.
func NewCountdownDisplay() *CountdownDisplay {
	return &CountdownDisplay{
		Writer:   os.Stdout,
		UseColor: true,
	}
}

var (
	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")) // Green

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#059669"))

	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	cancelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B")) // Yellow

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray

	statusStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6B7280"))
)

// FormatDuration formats a duration as M:SS, or H:MM:SS past an hour.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int((d + time.Second - 1) / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func (cd *CountdownDisplay) style(s lipgloss.Style, text string) string {
	if cd.UseColor {
		return s.Render(text)
	}
	return text
}

// RenderTimer renders the countdown screen for a running stretch.
func (cd *CountdownDisplay) RenderTimer(name, description string, remaining, total time.Duration, paused bool) string {
	var b strings.Builder

	b.WriteString(cd.style(headerStyle, name+" in progress"))
	b.WriteString("\n\n")
	b.WriteString(cd.style(timerStyle, FormatDuration(remaining)))
	b.WriteString("\n\n")

	if description != "" {
		b.WriteString(description)
		b.WriteString("\n\n")
	}

	progress := 0.0
	if total > 0 {
		progress = 1.0 - (float64(remaining) / float64(total))
	}
	progress = min(max(progress, 0), 1)
	b.WriteString(cd.style(progressStyle, cd.renderProgressBar(progress, 30)))
	b.WriteString("\n\n")

	status := "Press SPACE to pause, ENTER to finish early, Q to quit"
	if paused {
		status = "[PAUSED] Press SPACE to resume, Q to quit"
	}
	b.WriteString(cd.style(statusStyle, status))

	return b.String()
}

func (cd *CountdownDisplay) renderProgressBar(progress float64, width int) string {
	filled := min(max(int(progress*float64(width)), 0), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d%%", bar, int(progress*100))
}

// ClearScreen clears the terminal screen.
func (cd *CountdownDisplay) ClearScreen() {
	fmt.Fprint(cd.Writer, "\033[H\033[2J")
}

// MoveCursorHome moves cursor to home position.
func (cd *CountdownDisplay) MoveCursorHome() {
	fmt.Fprint(cd.Writer, "\033[H")
}

// RenderComplete renders the message shown when a stretch ends.
func (cd *CountdownDisplay) RenderComplete(name string, minutes int, early bool) string {
	msg := fmt.Sprintf("%s complete! Logged %d min.", name, minutes)
	if early {
		msg = fmt.Sprintf("%s finished early. Logged %d min.", name, minutes)
	}
	return cd.style(doneStyle, msg)
}

// RenderCancelled renders the message shown when a stretch is abandoned.
func (cd *CountdownDisplay) RenderCancelled(name string) string {
	return cd.style(cancelStyle, name+" cancelled. Nothing logged.")
}
