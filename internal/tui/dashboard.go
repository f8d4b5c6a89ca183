package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/healthdash/internal/config"
	"github.com/manav03panchal/healthdash/internal/health"
	"github.com/manav03panchal/healthdash/internal/logging"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/output"
	"github.com/manav03panchal/healthdash/internal/reminder"
	"github.com/manav03panchal/healthdash/internal/scheduler"
	"github.com/manav03panchal/healthdash/internal/settings"
)

// Water amounts bound to the 1, 2 and 3 keys.
var quickAmounts = map[string]int{"1": 250, "2": 500, "3": 750}

// Scheduler job names.
const (
	jobClock   = "clock"
	jobWeather = "weather"
	jobSleep   = "sleep"
	jobStretch = "stretch"
)

// tickMsg is sent when the UI clock ticks.
type tickMsg time.Time

// prefsMsg carries loaded preferences.
type prefsMsg struct {
	prefs model.Preferences
}

// weatherMsg carries a weather fetch result.
type weatherMsg struct {
	view output.WeatherView
}

// todayMsg carries the day's totals.
type todayMsg struct {
	hydrationML int
	stretches   int
}

// hydrationLoggedMsg reports a water log attempt.
type hydrationLoggedMsg struct {
	amount int
	ok     bool
}

// stretchLoggedMsg reports a stretch log attempt.
type stretchLoggedMsg struct {
	done reminder.Completion
	ok   bool
}

// WeatherSource fetches current conditions for the dashboard.
type WeatherSource interface {
	CurrentWeather(ctx context.Context) output.WeatherView
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Health   *health.Service
	Settings *settings.Manager
	Weather  WeatherSource
	Clock    scheduler.Clock
	Refresh  config.RefreshConfig
	// Timeout bounds each network call.
	Timeout time.Duration
}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	health   *health.Service
	settings *settings.Manager
	weather  WeatherSource
	clock    scheduler.Clock
	refresh  config.RefreshConfig
	timeout  time.Duration

	sched   *scheduler.Scheduler
	pending []tea.Cmd

	now            time.Time
	prefs          model.Preferences
	prefsLoaded    bool
	weatherView    output.WeatherView
	weatherLoaded  bool
	weatherLoading bool
	todayML        int
	stretchCount   int
	gate           reminder.HydrationGate
	stretch        reminder.StretchCycle
	sleep          reminder.Stats

	// UI state
	width      int
	height     int
	message    string
	messageExp time.Time
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(cfg DashboardConfig) *DashboardModel {
	if cfg.Clock == nil {
		cfg.Clock = scheduler.SystemClock{}
	}
	defaults := config.DefaultRuntimeConfig().Refresh
	if cfg.Refresh.Clock <= 0 {
		cfg.Refresh.Clock = defaults.Clock
	}
	if cfg.Refresh.Weather <= 0 {
		cfg.Refresh.Weather = defaults.Weather
	}
	if cfg.Refresh.Sleep <= 0 {
		cfg.Refresh.Sleep = defaults.Sleep
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	now := cfg.Clock.Now()
	m := &DashboardModel{
		health:   cfg.Health,
		settings: cfg.Settings,
		weather:  cfg.Weather,
		clock:    cfg.Clock,
		refresh:  cfg.Refresh,
		timeout:  cfg.Timeout,
		sched:    scheduler.New(),
		now:      now,
		prefs:    *model.DefaultPreferences(),
	}
	m.sleep = reminder.SleepStats(now, m.prefs)

	m.sched.Every(jobClock, m.refresh.Clock, now, func(t time.Time) { m.now = t })
	m.sched.Every(jobWeather, m.refresh.Weather, now, func(time.Time) { m.queue(m.fetchWeatherCmd()) })
	m.sched.Every(jobSleep, m.refresh.Sleep, now, m.updateSleep)
	return m
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	m.weatherLoading = true
	return tea.Batch(
		m.tickCmd(),
		m.loadPrefsCmd(),
		m.fetchWeatherCmd(),
		m.loadTodayCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.onTick(m.clock.Now())
		return m, tea.Batch(append(m.drain(), m.tickCmd())...)

	case prefsMsg:
		m.applyPrefs(msg.prefs)
		return m, nil

	case weatherMsg:
		m.weatherView = msg.view
		m.weatherLoaded = true
		m.weatherLoading = false
		m.evaluateHydration()
		return m, nil

	case todayMsg:
		m.todayML = msg.hydrationML
		m.stretchCount = msg.stretches
		return m, nil

	case hydrationLoggedMsg:
		if msg.ok {
			m.todayML += msg.amount
			m.gate.Logged()
			m.setMessage(fmt.Sprintf("Logged %dml of water", msg.amount), 3*time.Second)
		} else {
			m.setMessage("Could not log water: remote store unavailable", 5*time.Second)
		}
		return m, nil

	case stretchLoggedMsg:
		m.stretchCount++
		if msg.ok {
			m.setMessage(fmt.Sprintf("Logged %s (%d min)", msg.done.Type, msg.done.DurationMin), 3*time.Second)
		} else {
			m.setMessage(fmt.Sprintf("%s done, but the log was not saved", msg.done.Type), 5*time.Second)
		}
		return m, nil
	}

	return m, nil
}

// onTick drives the scheduler and the stretch countdown.
func (m *DashboardModel) onTick(now time.Time) {
	m.now = now
	m.sched.Run(now)

	if m.stretch.State() == reminder.StretchActive {
		if done, ok := m.stretch.Tick(now); ok {
			m.queue(m.logStretchCmd(done))
			m.armStretchJob()
		}
	}

	if !m.messageExp.IsZero() && now.After(m.messageExp) {
		m.message = ""
		m.messageExp = time.Time{}
	}
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.clock.Now()
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		m.sched.Stop()
		return m, tea.Quit

	case "1", "2", "3":
		return m, m.logHydrationCmd(quickAmounts[key])

	case "x":
		if m.gate.Visible() {
			m.gate.Dismiss(now)
		}
		return m, nil

	case "k":
		if m.stretch.Skip(now) {
			m.armStretchJob()
		}
		return m, nil

	case "enter":
		if done, ok := m.stretch.CompleteEarly(now); ok {
			m.armStretchJob()
			return m, m.logStretchCmd(done)
		}
		return m, nil

	case "r":
		m.setMessage("Refreshing...", time.Second)
		m.weatherLoading = true
		return m, tea.Batch(m.fetchWeatherCmd(), m.loadTodayCmd())
	}

	if s, ok := m.stretchForKey(key); ok {
		if err := m.stretch.Start(now, s); err == nil {
			m.sched.Cancel(jobStretch)
		}
	}
	return m, nil
}

// stretchForKey maps a shortcut to a stretch. A visible prompt offers
// only the reminder menu.
func (m *DashboardModel) stretchForKey(key string) (model.StretchType, bool) {
	var options []model.StretchType
	switch m.stretch.State() {
	case reminder.StretchPrompting:
		options = model.ReminderMenu()
	case reminder.StretchWaiting:
		options = model.StretchTypes()
	default:
		return model.StretchType{}, false
	}
	for _, s := range options {
		if s.Shortcut == key {
			return s, true
		}
	}
	return model.StretchType{}, false
}

func (m *DashboardModel) applyPrefs(prefs model.Preferences) {
	m.prefs = prefs.WithDefaults()
	m.prefsLoaded = true
	now := m.clock.Now()
	// An open prompt stays up until the user answers it.
	if m.stretch.State() != reminder.StretchPrompting {
		m.stretch.Arm(now, m.prefs.StretchCountdown())
		m.armStretchJob()
	}
	m.updateSleep(now)
	m.evaluateHydration()
}

// armStretchJob mirrors the stretch countdown into the scheduler.
func (m *DashboardModel) armStretchJob() {
	next := m.stretch.NextReminder()
	if m.stretch.State() != reminder.StretchWaiting || next.IsZero() {
		m.sched.Cancel(jobStretch)
		return
	}
	m.sched.Once(jobStretch, next, func(t time.Time) { m.stretch.Tick(t) })
}

func (m *DashboardModel) evaluateHydration() {
	if !m.prefsLoaded || !m.weatherLoaded {
		return
	}
	if m.gate.Evaluate(m.clock.Now(), m.weatherView.Snapshot, m.prefs) {
		logging.Component("dashboard").Debug("hydration reminder shown")
	}
}

func (m *DashboardModel) updateSleep(now time.Time) {
	m.sleep = reminder.SleepStats(now, m.prefs)
}

func (m *DashboardModel) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *DashboardModel) drain() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, d time.Duration) {
	m.message = msg
	m.messageExp = m.clock.Now().Add(d)
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		StyleTitle.Render("Health Tracker"), "  ", ClockComponent{Now: m.now}.View())

	sections := []string{header}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	weatherPanel := WeatherComponent{Weather: m.weatherView, Loaded: m.weatherLoaded}
	hydrationPanel := HydrationComponent{TotalML: m.todayML, Reminder: m.gate.Visible()}
	stretchPanel := StretchComponent{
		State:     m.stretch.State(),
		Next:      m.stretch.NextReminder(),
		Remaining: m.stretch.Remaining(m.now),
		Count:     m.stretchCount,
	}
	if cur, ok := m.stretch.Current(); ok {
		stretchPanel.Current = cur
	}
	sleepPanel := SleepComponent{Stats: m.sleep}

	if m.width >= 100 {
		half := m.width / 2
		weatherPanel.Width, hydrationPanel.Width = half, half
		stretchPanel.Width, sleepPanel.Width = half, half
		left := lipgloss.JoinVertical(lipgloss.Left, weatherPanel.View(), hydrationPanel.View())
		right := lipgloss.JoinVertical(lipgloss.Left, stretchPanel.View(), sleepPanel.View())
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	} else {
		weatherPanel.Width, hydrationPanel.Width = m.width, m.width
		stretchPanel.Width, sleepPanel.Width = m.width, m.width
		sections = append(sections,
			weatherPanel.View(), hydrationPanel.View(), stretchPanel.View(), sleepPanel.View())
	}

	sections = append(sections, HelpBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refresh.Clock, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *DashboardModel) loadPrefsCmd() tea.Cmd {
	mgr, timeout := m.settings, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return prefsMsg{prefs: mgr.Load(ctx)}
	}
}

func (m *DashboardModel) fetchWeatherCmd() tea.Cmd {
	src, timeout := m.weather, m.timeout
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return weatherMsg{view: src.CurrentWeather(ctx)}
	}
}

func (m *DashboardModel) loadTodayCmd() tea.Cmd {
	svc, timeout := m.health, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return todayMsg{
			hydrationML: model.TotalHydration(svc.GetTodayHydrationLogs(ctx)),
			stretches:   len(svc.GetTodayStretchLogs(ctx)),
		}
	}
}

func (m *DashboardModel) logHydrationCmd(amount int) tea.Cmd {
	svc, timeout := m.health, m.timeout
	var temp, humidity *float64
	if m.weatherLoaded {
		t := float64(m.weatherView.Snapshot.TemperatureC)
		h := m.weatherView.Snapshot.Humidity
		temp, humidity = &t, &h
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return hydrationLoggedMsg{amount: amount, ok: svc.LogHydration(ctx, amount, temp, humidity)}
	}
}

func (m *DashboardModel) logStretchCmd(done reminder.Completion) tea.Cmd {
	svc, timeout := m.health, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return stretchLoggedMsg{done: done, ok: svc.LogStretch(ctx, done.Type, done.DurationMin)}
	}
}

// Run starts the dashboard TUI.
func Run(cfg DashboardConfig) error {
	m := NewDashboardModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
