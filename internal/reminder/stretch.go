package reminder

import (
	"fmt"
	"time"

	"github.com/manav03panchal/healthdash/internal/model"
)

// StretchState is the phase of the stretch reminder cycle.
type StretchState int

const (
	// StretchWaiting counts down to the next reminder.
	StretchWaiting StretchState = iota
	// StretchPrompting shows the reminder menu.
	StretchPrompting
	// StretchActive runs a stretch countdown.
	StretchActive
)

func (s StretchState) String() string {
	switch s {
	case StretchWaiting:
		return "waiting"
	case StretchPrompting:
		return "prompting"
	case StretchActive:
		return "stretching"
	default:
		return fmt.Sprintf("StretchState(%d)", int(s))
	}
}

// Completion is a finished stretch ready to be logged.
type Completion struct {
	Type        string
	DurationMin int
}

// StretchCycle is the stretch reminder state machine:
// waiting -> prompting -> stretching -> waiting.
// It is not safe for concurrent use; the dashboard owns it.
type StretchCycle struct {
	state    StretchState
	interval time.Duration
	nextAt   time.Time
	current  model.StretchType
	endsAt   time.Time
}

// State returns the current phase.
func (c *StretchCycle) State() StretchState {
	return c.state
}

// NextReminder returns when the waiting countdown expires. It is zero
// until the cycle is armed.
func (c *StretchCycle) NextReminder() time.Time {
	return c.nextAt
}

// Current returns the stretch in progress.
func (c *StretchCycle) Current() (model.StretchType, bool) {
	if c.state != StretchActive {
		return model.StretchType{}, false
	}
	return c.current, true
}

// Remaining returns the whole seconds left on the running stretch.
func (c *StretchCycle) Remaining(now time.Time) int {
	if c.state != StretchActive {
		return 0
	}
	left := c.endsAt.Sub(now)
	if left <= 0 {
		return 0
	}
	secs := int(left / time.Second)
	if left%time.Second != 0 {
		secs++
	}
	return secs
}

// Arm restarts the one-shot reminder countdown. A non-positive interval
// leaves the cycle idle. A running stretch keeps going and picks up the
// new interval when it ends.
func (c *StretchCycle) Arm(now time.Time, interval time.Duration) {
	if interval <= 0 {
		c.interval = 0
		c.nextAt = time.Time{}
		if c.state != StretchActive {
			c.state = StretchWaiting
		}
		return
	}
	c.interval = interval
	if c.state == StretchActive {
		return
	}
	c.rearm(now)
}

func (c *StretchCycle) rearm(now time.Time) {
	c.state = StretchWaiting
	c.current = model.StretchType{}
	c.endsAt = time.Time{}
	if c.interval <= 0 {
		c.nextAt = time.Time{}
		return
	}
	c.nextAt = now.Add(c.interval)
}

// Tick advances the cycle. It surfaces the prompt when the countdown
// expires and returns a completion when a stretch runs out.
func (c *StretchCycle) Tick(now time.Time) (Completion, bool) {
	switch c.state {
	case StretchWaiting:
		if !c.nextAt.IsZero() && !now.Before(c.nextAt) {
			c.state = StretchPrompting
		}
	case StretchActive:
		if c.Remaining(now) == 0 {
			return c.finish(now), true
		}
	}
	return Completion{}, false
}

// Start begins a stretch. Starting while another stretch runs is an error.
func (c *StretchCycle) Start(now time.Time, s model.StretchType) error {
	if c.state == StretchActive {
		return fmt.Errorf("stretch %q already in progress", c.current.Name)
	}
	c.state = StretchActive
	c.current = s
	c.endsAt = now.Add(s.Duration())
	return nil
}

// CompleteEarly ends the running stretch and returns it for logging.
func (c *StretchCycle) CompleteEarly(now time.Time) (Completion, bool) {
	if c.state != StretchActive {
		return Completion{}, false
	}
	return c.finish(now), true
}

// Skip dismisses the prompt and re-arms the countdown.
func (c *StretchCycle) Skip(now time.Time) bool {
	if c.state != StretchPrompting {
		return false
	}
	c.rearm(now)
	return true
}

func (c *StretchCycle) finish(now time.Time) Completion {
	done := Completion{
		Type:        c.current.Name,
		DurationMin: model.StretchDuration(c.current.Name),
	}
	c.rearm(now)
	return done
}

// FormatCountdown renders seconds as M:SS.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
