package timer

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/healthdash/internal/model"
)

// =============================================================================
// CountdownDisplay Tests
// =============================================================================

func TestNewCountdownDisplay(t *testing.T) {
	cd := NewCountdownDisplay()
	assert.NotNil(t, cd.Writer)
	assert.True(t, cd.UseColor)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "0:00"},
		{30 * time.Second, "0:30"},
		{1500 * time.Millisecond, "0:02"},
		{5 * time.Minute, "5:00"},
		{10 * time.Minute, "10:00"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{-5 * time.Second, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}

func TestCountdownDisplayRenderTimer(t *testing.T) {
	cd := &CountdownDisplay{Writer: &bytes.Buffer{}, UseColor: false}

	out := cd.RenderTimer("Neck & Shoulders", "Gentle neck rolls", 150*time.Second, 5*time.Minute, false)
	assert.Contains(t, out, "Neck & Shoulders in progress")
	assert.Contains(t, out, "2:30")
	assert.Contains(t, out, "Gentle neck rolls")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "ENTER to finish early")

	paused := cd.RenderTimer("Eye Rest", "", time.Minute, 2*time.Minute, true)
	assert.Contains(t, paused, "[PAUSED]")
}

func TestCountdownDisplayRenderProgressBar(t *testing.T) {
	cd := &CountdownDisplay{}

	assert.Equal(t, "[░░░░░░░░░░] 0%", cd.renderProgressBar(0, 10))
	assert.Equal(t, "[█████░░░░░] 50%", cd.renderProgressBar(0.5, 10))
	assert.Equal(t, "[██████████] 100%", cd.renderProgressBar(1, 10))
}

func TestCountdownDisplayZeroTotal(t *testing.T) {
	cd := &CountdownDisplay{UseColor: false}
	out := cd.RenderTimer("Custom", "", 0, 0, false)
	assert.Contains(t, out, "0%")
}

func TestCountdownDisplayScreenControl(t *testing.T) {
	var buf bytes.Buffer
	cd := &CountdownDisplay{Writer: &buf}

	cd.ClearScreen()
	assert.Equal(t, "\033[H\033[2J", buf.String())

	buf.Reset()
	cd.MoveCursorHome()
	assert.Equal(t, "\033[H", buf.String())
}

func TestCountdownDisplayRenderComplete(t *testing.T) {
	cd := &CountdownDisplay{UseColor: false}

	assert.Equal(t, "Back Stretch complete! Logged 5 min.", cd.RenderComplete("Back Stretch", 5, false))
	assert.Equal(t, "Back Stretch finished early. Logged 5 min.", cd.RenderComplete("Back Stretch", 5, true))
	assert.Equal(t, "Eye Rest cancelled. Nothing logged.", cd.RenderCancelled("Eye Rest"))
}

// =============================================================================
// Session Tests
// =============================================================================

func newTestSession(d time.Duration) (*Session, *bytes.Buffer) {
	var buf bytes.Buffer
	s := NewSession(model.StretchType{Name: "Eye Rest", DurationMin: 2}, d)
	s.Input = nil
	s.Tick = 5 * time.Millisecond
	s.SetDisplay(&CountdownDisplay{Writer: &buf, UseColor: false})
	return s, &buf
}

func TestNewSessionUsesCatalogDuration(t *testing.T) {
	s := NewSession(model.StretchType{Name: "Full Body", DurationMin: 10}, 0)
	state := s.GetState()
	assert.Equal(t, 10*time.Minute, state.Total)
	assert.Equal(t, 10*time.Minute, state.Remaining)
	assert.False(t, state.Paused)
}

func TestSessionRunsToCompletion(t *testing.T) {
	s, buf := newTestSession(30 * time.Millisecond)

	var events []Event
	s.SetCallback(func(e Event, _ SessionState) { events = append(events, e) })

	outcome, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.True(t, outcome.Logged())
	assert.Equal(t, time.Duration(0), s.GetState().Remaining)
	assert.Contains(t, buf.String(), "Eye Rest in progress")
	require.NotEmpty(t, events)
	assert.Equal(t, EventComplete, events[len(events)-1])
}

func TestSessionFinishEarly(t *testing.T) {
	s, _ := newTestSession(time.Hour)
	s.Finish()

	outcome, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompletedEarly, outcome)
	assert.True(t, outcome.Logged())
}

func TestSessionQuit(t *testing.T) {
	s, _ := newTestSession(time.Hour)

	var last Event
	s.SetCallback(func(e Event, _ SessionState) { last = e })
	s.Quit()

	outcome, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, outcome)
	assert.False(t, outcome.Logged())
	assert.Equal(t, EventQuit, last)
}

func TestSessionContextCancel(t *testing.T) {
	s, _ := newTestSession(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	outcome, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, outcome)
}

func TestSessionAdvance(t *testing.T) {
	s, _ := newTestSession(time.Second)

	assert.False(t, s.advance(400*time.Millisecond))
	assert.Equal(t, 600*time.Millisecond, s.GetState().Remaining)

	s.state.Paused = true
	assert.False(t, s.advance(time.Second))
	assert.Equal(t, 600*time.Millisecond, s.GetState().Remaining)

	s.state.Paused = false
	assert.True(t, s.advance(time.Second))
	assert.Equal(t, time.Duration(0), s.GetState().Remaining)
}

func TestSignalOnceDoesNotBlock(t *testing.T) {
	s, _ := newTestSession(time.Second)
	s.Pause()
	s.Pause()
	s.Quit()
	s.Quit()
	assert.Len(t, s.pauseCh, 1)
	assert.Len(t, s.quitCh, 1)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "completed", OutcomeCompleted.String())
	assert.Equal(t, "completed_early", OutcomeCompletedEarly.String())
	assert.Equal(t, "cancelled", OutcomeCancelled.String())
	assert.Equal(t, "unknown", Outcome(9).String())
}
