// Package scheduler tracks named jobs by their next fire time. It does not
// own a goroutine: the caller drives it with Run from its own tick, so all
// handlers execute on the caller's event loop.
package scheduler

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/healthdash/internal/logging"
)

// DefaultSleepThreshold is the tick gap treated as the machine having slept.
const DefaultSleepThreshold = time.Hour

// Handler runs when a job fires. now is the time passed to Run.
type Handler func(now time.Time)

type job struct {
	name     string
	schedule cron.Schedule // nil for one-shot jobs
	next     time.Time
	handler  Handler
}

// Scheduler manages recurring and one-shot jobs.
type Scheduler struct {
	mu      sync.Mutex
	jobs    []*job
	lastRun time.Time

	// SleepThreshold is the gap between Run calls after which missed
	// recurring occurrences are coalesced into one firing.
	SleepThreshold time.Duration
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{SleepThreshold: DefaultSleepThreshold}
}

// Every registers (or replaces) a recurring job firing every d after now.
// Periods are rounded to whole seconds with a one second minimum.
func (s *Scheduler) Every(name string, d time.Duration, now time.Time, h Handler) {
	sched := cron.Every(d)
	s.put(&job{name: name, schedule: sched, next: sched.Next(now), handler: h})
}

// Once registers (or replaces) a one-shot job firing at at.
func (s *Scheduler) Once(name string, at time.Time, h Handler) {
	s.put(&job{name: name, next: at, handler: h})
}

func (s *Scheduler) put(j *job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.jobs {
		if existing.name == j.name {
			s.jobs[i] = j
			return
		}
	}
	s.jobs = append(s.jobs, j)
}

// Cancel removes a job. It reports whether the job existed.
func (s *Scheduler) Cancel(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, j := range s.jobs {
		if j.name == name {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return true
		}
	}
	return false
}

// Next returns the next fire time of a job.
func (s *Scheduler) Next(name string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.name == name {
			return j.next, true
		}
	}
	return time.Time{}, false
}

// Len returns the number of registered jobs.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Run fires every job due at now, in registration order, and returns the
// names fired. Recurring jobs fire at most once per Run and are rescheduled
// from now; one-shot jobs are removed before their handler runs, so a
// handler may re-arm itself.
func (s *Scheduler) Run(now time.Time) []string {
	s.mu.Lock()
	if !s.lastRun.IsZero() && s.SleepThreshold > 0 && now.Sub(s.lastRun) > s.SleepThreshold {
		logging.DebugLog("scheduler resumed after gap", "gap", now.Sub(s.lastRun).Round(time.Second).String())
	}
	s.lastRun = now

	var due []*job
	kept := s.jobs[:0]
	for _, j := range s.jobs {
		if now.Before(j.next) {
			kept = append(kept, j)
			continue
		}
		due = append(due, j)
		if j.schedule != nil {
			j.next = j.schedule.Next(now)
			kept = append(kept, j)
		}
	}
	s.jobs = kept
	s.mu.Unlock()

	names := make([]string, 0, len(due))
	for _, j := range due {
		names = append(names, j.name)
		if j.handler != nil {
			j.handler(now)
		}
	}
	return names
}

// Stop removes every job.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = nil
}
