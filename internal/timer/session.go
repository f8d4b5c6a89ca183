package timer

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/manav03panchal/healthdash/internal/model"
)

// Outcome is how a stretch session ended.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeCompletedEarly
	OutcomeCancelled
)

// String returns a string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeCompletedEarly:
		return "completed_early"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Logged reports whether the outcome should be recorded as a stretch.
func (o Outcome) Logged() bool {
	return o == OutcomeCompleted || o == OutcomeCompletedEarly
}

// SessionState is a snapshot of a running stretch.
type SessionState struct {
	Stretch   model.StretchType
	Remaining time.Duration
	Total     time.Duration
	Paused    bool
	StartedAt time.Time
}

// Event is reported to the session callback.
type Event int

const (
	EventTick Event = iota
	EventPaused
	EventResumed
	EventComplete
	EventQuit
)

// Callback is called when events occur.
type Callback func(event Event, state SessionState)

// Session runs one stretch countdown in the terminal.
type Session struct {
	// Input is read for key presses when it is a terminal. Nil disables
	// keyboard control.
	Input *os.File
	// Tick is the refresh period.
	Tick time.Duration

	state    SessionState
	display  *CountdownDisplay
	callback Callback
	mu       sync.RWMutex

	pauseCh  chan struct{}
	finishCh chan struct{}
	quitCh   chan struct{}
}

// NewSession creates a countdown for the stretch. A zero duration uses
// the stretch's catalog duration.
func NewSession(s model.StretchType, d time.Duration) *Session {
	if d <= 0 {
		d = s.Duration()
	}
	return &Session{
		Input:   os.Stdin,
		Tick:    100 * time.Millisecond,
		display: NewCountdownDisplay(),
		state: SessionState{
			Stretch:   s,
			Remaining: d,
			Total:     d,
		},
		pauseCh:  make(chan struct{}, 1),
		finishCh: make(chan struct{}, 1),
		quitCh:   make(chan struct{}, 1),
	}
}

// SetCallback sets the event callback.
func (s *Session) SetCallback(cb Callback) {
	s.callback = cb
}

// SetDisplay sets the countdown display.
func (s *Session) SetDisplay(display *CountdownDisplay) {
	s.display = display
}

// GetState returns a copy of the current state.
func (s *Session) GetState() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Pause toggles the countdown.
func (s *Session) Pause() {
	signalOnce(s.pauseCh)
}

// Finish ends the stretch early.
func (s *Session) Finish() {
	signalOnce(s.finishCh)
}

// Quit abandons the stretch.
func (s *Session) Quit() {
	signalOnce(s.quitCh)
}

func signalOnce(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Run blocks until the stretch completes, is finished early, or is quit.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.Input != nil && term.IsTerminal(int(s.Input.Fd())) {
		fd := int(s.Input.Fd())
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return OutcomeCancelled, err
		}
		defer func() { _ = term.Restore(fd, oldState) }()
		go s.listenKeyboard(ctx, s.Input)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	s.mu.Lock()
	s.state.StartedAt = time.Now()
	s.mu.Unlock()

	outcome := s.loop(ctx, sigCh)
	switch outcome {
	case OutcomeCancelled:
		s.emit(EventQuit)
	default:
		s.emit(EventComplete)
	}
	return outcome, nil
}

func (s *Session) loop(ctx context.Context, sigCh <-chan os.Signal) Outcome {
	ticker := time.NewTicker(s.Tick)
	defer ticker.Stop()

	last := time.Now()
	s.render()

	for {
		select {
		case <-ctx.Done():
			return OutcomeCancelled

		case <-sigCh:
			return OutcomeCancelled

		case <-s.quitCh:
			return OutcomeCancelled

		case <-s.finishCh:
			return OutcomeCompletedEarly

		case <-s.pauseCh:
			s.mu.Lock()
			s.state.Paused = !s.state.Paused
			paused := s.state.Paused
			s.mu.Unlock()
			last = time.Now()
			if paused {
				s.emit(EventPaused)
			} else {
				s.emit(EventResumed)
			}
			s.render()

		case now := <-ticker.C:
			done := s.advance(now.Sub(last))
			last = now
			s.render()
			if done {
				return OutcomeCompleted
			}
			s.emit(EventTick)
		}
	}
}

// advance subtracts elapsed time unless paused and reports whether the
// countdown reached zero.
func (s *Session) advance(elapsed time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Paused {
		return false
	}
	s.state.Remaining -= elapsed
	if s.state.Remaining <= 0 {
		s.state.Remaining = 0
		return true
	}
	return false
}

func (s *Session) emit(e Event) {
	if s.callback != nil {
		s.callback(e, s.GetState())
	}
}

func (s *Session) render() {
	state := s.GetState()
	s.display.MoveCursorHome()
	s.display.ClearScreen()
	out := s.display.RenderTimer(
		state.Stretch.Name,
		state.Stretch.Description,
		state.Remaining,
		state.Total,
		state.Paused,
	)
	_, _ = io.WriteString(s.display.Writer, out)
}

func (s *Session) listenKeyboard(ctx context.Context, in *os.File) {
	buf := make([]byte, 1)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			_ = in.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
			n, err := in.Read(buf)
			if err != nil || n == 0 {
				continue
			}

			switch buf[0] {
			case ' ':
				s.Pause()
			case '\r', '\n':
				s.Finish()
			case 'q', 'Q', 3: // Q or Ctrl+C
				s.Quit()
			}
		}
	}
}
