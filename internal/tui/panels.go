package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/output"
	"github.com/manav03panchal/healthdash/internal/reminder"
	"github.com/manav03panchal/healthdash/internal/weather"
)

// boxWidth returns the inner width for a bordered panel.
func boxWidth(width int) int {
	return max(width-4, 20)
}

// ClockComponent displays the current time and date.
type ClockComponent struct {
	Now time.Time
}

// View renders the clock.
func (c ClockComponent) View() string {
	return StyleClock.Render(c.Now.Format("03:04:05 PM")) + "  " +
		StyleSubtitle.Render(c.Now.Format("Monday, January 2, 2006"))
}

// WeatherComponent displays current conditions and health alerts.
type WeatherComponent struct {
	Weather output.WeatherView
	Loaded  bool
	Width   int
}

// View renders the weather panel.
func (wc WeatherComponent) View() string {
	var content strings.Builder
	content.WriteString(StylePanelTitle.Render("Weather"))
	content.WriteString("\n")

	if !wc.Loaded {
		content.WriteString(StyleMuted.Render("Fetching weather..."))
		return StylePanelBox.Width(boxWidth(wc.Width)).Render(content.String())
	}

	s := wc.Weather.Snapshot
	cond := weather.Classify(s.WeatherCode, s.IsDay)
	content.WriteString(fmt.Sprintf("%s %s  %s\n",
		cond.Icon(),
		StyleValue.Render(output.FormatTemperature(s.TemperatureC)),
		weather.Describe(s.WeatherCode)))
	content.WriteString(StyleSubtitle.Render(fmt.Sprintf("Humidity %.0f%%  UV %.1f", s.Humidity, s.UVIndex)))

	if !wc.Weather.Live {
		content.WriteString("\n")
		content.WriteString(StyleMuted.Render("Weather unavailable, showing defaults"))
	}

	for _, a := range wc.Weather.Alerts {
		content.WriteString("\n")
		if a.Level == model.AlertWarning {
			content.WriteString(StyleWarning.Render("⚠ " + a.Message))
		} else {
			content.WriteString(StyleWater.Render("ℹ " + a.Message))
		}
	}

	return StylePanelBox.Width(boxWidth(wc.Width)).Render(content.String())
}

// HydrationComponent displays today's water intake.
type HydrationComponent struct {
	TotalML  int
	Reminder bool
	Width    int
}

// View renders the hydration panel.
func (hc HydrationComponent) View() string {
	var content strings.Builder

	level := model.HydrationStatus(hc.TotalML)
	content.WriteString(StylePanelTitle.Render("Hydration Tracker"))
	content.WriteString("  ")
	content.WriteString(HydrationLevelStyle(level).Render(string(level)))
	content.WriteString("\n")

	content.WriteString(fmt.Sprintf("Today's intake  %s\n",
		StyleValue.Render(fmt.Sprintf("%dml / %dml", hc.TotalML, model.DailyHydrationGoalML))))
	barWidth := max(boxWidth(hc.Width)-4, 10)
	content.WriteString(ProgressBar(model.HydrationProgress(hc.TotalML), barWidth, ColorWater))

	if hc.Reminder {
		content.WriteString("\n")
		content.WriteString(StyleWater.Render("Time to hydrate! Weather conditions suggest increased water intake."))
		content.WriteString(" ")
		content.WriteString(StyleMuted.Render("(x to dismiss)"))
	}

	box := StylePanelBox
	if hc.Reminder {
		box = StyleReminderBox
	}
	return box.Width(boxWidth(hc.Width)).Render(content.String())
}

// StretchComponent displays the stretch reminder cycle.
type StretchComponent struct {
	State     reminder.StretchState
	Next      time.Time
	Current   model.StretchType
	Remaining int
	Count     int
	Width     int
}

// View renders the stretch panel.
func (sc StretchComponent) View() string {
	var content strings.Builder
	content.WriteString(StylePanelTitle.Render("Movement Tracker"))
	content.WriteString("  ")
	content.WriteString(StyleMove.Render(fmt.Sprintf("✓ %d today", sc.Count)))
	content.WriteString("\n")

	box := StylePanelBox
	switch sc.State {
	case reminder.StretchActive:
		box = StyleActiveBox
		content.WriteString(StyleMove.Render(sc.Current.Name + " in progress"))
		content.WriteString("\n")
		content.WriteString(StyleCountdown.Render(reminder.FormatCountdown(sc.Remaining)))
		content.WriteString("\n")
		content.WriteString(StyleSubtitle.Render(sc.Current.Description))
		content.WriteString("\n")
		content.WriteString(StyleMuted.Render("enter: complete early"))

	case reminder.StretchPrompting:
		box = StyleReminderBox
		content.WriteString(StyleWarning.Render("Time for a movement break!"))
		content.WriteString("\n")
		content.WriteString(StyleSubtitle.Render("Regular movement helps reduce strain and improve circulation."))
		for _, s := range model.ReminderMenu() {
			content.WriteString("\n")
			content.WriteString(stretchOption(s))
		}
		content.WriteString("\n")
		content.WriteString(StyleMuted.Render("k: skip"))

	default:
		next := "not scheduled"
		if !sc.Next.IsZero() {
			next = sc.Next.Format("15:04")
		}
		content.WriteString(StyleSubtitle.Render("Next reminder: " + next))
		for _, s := range model.StretchTypes() {
			content.WriteString("\n")
			content.WriteString(stretchOption(s))
		}
	}

	return box.Width(boxWidth(sc.Width)).Render(content.String())
}

func stretchOption(s model.StretchType) string {
	return fmt.Sprintf("%s %s %s",
		StyleHelpKey.Render(s.Shortcut),
		s.Name,
		StyleMuted.Render(fmt.Sprintf("%d min", s.DurationMin)))
}

// SleepComponent displays the sleep schedule.
type SleepComponent struct {
	Stats reminder.Stats
	Width int
}

// View renders the sleep panel.
func (sc SleepComponent) View() string {
	var content strings.Builder
	s := sc.Stats

	content.WriteString(StylePanelTitle.Render("Sleep Schedule"))
	content.WriteString("\n")

	bed := fmt.Sprintf("☾ Bedtime %s %s", StyleSleep.Render(s.SleepTime),
		StyleMuted.Render("in "+output.FormatHours(s.HoursUntilBedtime)))
	wake := fmt.Sprintf("☀ Wake up %s %s", StyleSleep.Render(s.WakeTime),
		StyleMuted.Render("in "+output.FormatHours(s.HoursUntilWakeup)))
	content.WriteString(bed + "   " + wake)
	content.WriteString("\n")

	color := QualityColor(s.Quality)
	content.WriteString("Sleep duration ")
	content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).
		Render(fmt.Sprintf("%.1f hours", s.Duration)))
	content.WriteString("\n")
	barWidth := max(boxWidth(sc.Width)-4, 10)
	content.WriteString(ProgressBar(min(s.Duration/9*100, 100), barWidth, color))

	if s.Recommendation != "" {
		content.WriteString("\n")
		content.WriteString(StyleWater.Render(s.Recommendation))
	}

	return StylePanelBox.Width(boxWidth(sc.Width)).Render(content.String())
}

// HelpBar renders the help bar at the bottom.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"1/2/3", "log 250/500/750ml"},
		{"x", "dismiss"},
		{"n/b/l/e/f", "stretch"},
		{"k", "skip"},
		{"enter", "done"},
		{"r", "refresh"},
		{"q", "quit"},
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, StyleHelpKey.Render(k.key)+" "+StyleHelpDesc.Render(k.desc))
	}
	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
