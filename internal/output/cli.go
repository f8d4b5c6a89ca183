package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/reminder"
	"github.com/manav03panchal/healthdash/internal/weather"
)

var (
	colorPrimary = lipgloss.Color("#0EA5E9") // Sky
	colorWater   = lipgloss.Color("#3B82F6") // Blue
	colorMove    = lipgloss.Color("#10B981") // Green
	colorSleep   = lipgloss.Color("#6366F1") // Indigo
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981")

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleWater = lipgloss.NewStyle().
			Foreground(colorWater)

	styleMove = lipgloss.NewStyle().
			Foreground(colorMove)

	styleSleep = lipgloss.NewStyle().
			Foreground(colorSleep)
)

// qualityColors maps sleep quality bands to terminal colors.
var qualityColors = map[reminder.Quality]lipgloss.Color{
	reminder.QualityShort:      colorError,
	reminder.QualityBorderline: lipgloss.Color("#F97316"),
	reminder.QualityHealthy:    colorSuccess,
	reminder.QualityLong:       colorWater,
}

// CLIFormatter provides styled terminal output.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(s lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return s.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	percentage = min(max(percentage, 0), 100)
	filled := int(float64(width) * percentage / 100)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Weather prints current conditions and alerts.
func (c *CLIFormatter) Weather(v WeatherView) error {
	s := v.Snapshot
	cond := weather.Classify(s.WeatherCode, s.IsDay)

	title := "Weather"
	if v.Location != "" {
		title += " @ " + v.Location
	}
	c.Title(title)
	c.Printf("  %s %s  %s\n", cond.Icon(), c.render(styleBold, FormatTemperature(s.TemperatureC)), weather.Describe(s.WeatherCode))
	c.Printf("  Humidity: %.0f%%   UV index: %.1f\n", s.Humidity, s.UVIndex)
	if !v.Live {
		c.Muted("  Weather service unreachable, showing defaults.")
	}

	for _, a := range v.Alerts {
		if a.Level == model.AlertWarning {
			c.Warning(a.Message)
		} else {
			c.Println(c.render(styleWater, "ℹ "+a.Message))
		}
	}
	return nil
}

// Hydration prints a logged water entry.
func (c *CLIFormatter) Hydration(v HydrationView) error {
	c.Success(fmt.Sprintf("Logged %dml of water", v.AmountML))
	c.printHydrationTotal(v.TotalML)
	if !v.Synced {
		c.Muted("  Not synced: remote store unavailable.")
	}
	return nil
}

func (c *CLIFormatter) printHydrationTotal(total int) {
	pct := model.HydrationProgress(total)
	c.Printf("  Today: %s  %dml / %dml  %s\n",
		c.render(styleWater, ProgressBar(pct, 20)),
		total, model.DailyHydrationGoalML,
		model.HydrationStatus(total))
}

// Stretch prints a logged stretch.
func (c *CLIFormatter) Stretch(v StretchView) error {
	c.Success(fmt.Sprintf("Logged %s (%d min)", v.Type, v.DurationMin))
	if v.Count > 0 {
		c.Printf("  Stretches today: %s\n", c.render(styleMove, fmt.Sprint(v.Count)))
	}
	if !v.Synced {
		c.Muted("  Not synced: remote store unavailable.")
	}
	return nil
}

// StretchTypes prints the stretch catalog.
func (c *CLIFormatter) StretchTypes(types []model.StretchType) error {
	c.Title("Stretches")
	rows := make([]TableRow, 0, len(types))
	for _, s := range types {
		rows = append(rows, TableRow{Columns: []string{
			s.Shortcut, s.Name, fmt.Sprintf("%d min", s.DurationMin), s.Description,
		}})
	}
	c.PrintTable([]string{"KEY", "NAME", "LENGTH", "DESCRIPTION"}, rows)
	return nil
}

// Today prints the day's activity.
func (c *CLIFormatter) Today(v TodayView) error {
	c.Title("Today, " + FormatDate(v.Date))

	c.Println(c.render(styleWater, "Hydration"))
	c.printHydrationTotal(v.TotalML())
	for _, l := range v.Hydration {
		c.Printf("    %s  %dml\n", FormatTimeOnly(l.LoggedAt), l.AmountML)
	}

	c.Println(c.render(styleMove, "Movement"))
	c.Printf("  Stretches: %d\n", len(v.Stretches))
	for _, l := range v.Stretches {
		c.Printf("    %s  %s (%d min)\n", FormatTimeOnly(l.LoggedAt), l.Type, l.DurationMin)
	}

	if v.Store != "" {
		c.Muted("Store: " + v.Store)
	}
	return nil
}

// Sleep prints the sleep schedule summary.
func (c *CLIFormatter) Sleep(s reminder.Stats) error {
	c.Title("Sleep Schedule")
	c.Printf("  Bedtime: %s   Wake up: %s\n",
		c.render(styleSleep, s.SleepTime), c.render(styleSleep, s.WakeTime))
	c.Printf("  Until bedtime: %s   Until wake up: %s\n",
		FormatHours(s.HoursUntilBedtime), FormatHours(s.HoursUntilWakeup))

	quality := fmt.Sprintf("%s (%s)", FormatHours(s.Duration), s.Quality)
	if c.IsColorEnabled() {
		quality = lipgloss.NewStyle().Foreground(qualityColors[s.Quality]).Render(quality)
	}
	c.Printf("  Sleep duration: %s\n", quality)
	c.Println()
	c.Println("  " + s.Recommendation)
	return nil
}

// Settings prints the preference listing.
func (c *CLIFormatter) Settings(v SettingsView) error {
	c.Title("Settings")
	rows := make([]TableRow, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, TableRow{Columns: []string{r.Key, r.Value, r.Range, r.Description}})
	}
	c.PrintTable([]string{"KEY", "VALUE", "RANGE", "DESCRIPTION"}, rows)
	if v.Source != "" || v.Store != "" {
		c.Muted(fmt.Sprintf("Loaded from %s, store: %s", v.Source, v.Store))
	}
	return nil
}

// Saved prints the outcome of a preference change.
func (c *CLIFormatter) Saved(v SavedView) error {
	msg := "Preferences " + v.Action
	if v.Key != "" {
		msg = fmt.Sprintf("Set %s = %s", v.Key, v.Value)
	}
	c.Success(msg)
	if !v.Synced {
		c.Warning("Remote store unavailable, saved locally instead.")
	}
	return nil
}

// Error prints an error with its suggestion.
func (c *CLIFormatter) Error(err error) error {
	c.Println(c.render(styleError, "✗ "+apperrors.FormatByCategory(err)))
	return nil
}

// TableRow is one row of a CLI table.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && lipgloss.Width(col) > widths[i] {
				widths[i] = lipgloss.Width(col)
			}
		}
	}

	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(pad(h, widths[i]) + "  ")
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	for _, row := range rows {
		var line strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				line.WriteString(pad(col, widths[i]) + "  ")
			}
		}
		c.Println(strings.TrimRight(line.String(), " "))
	}
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
