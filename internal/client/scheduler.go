package client

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler drives periodic refreshes. Disabling the gate leaves the ticker
// running and skips the task, so re-enabling resumes on the next tick
// without restarting anything. Disabling is cooperative: a task already
// started keeps running and applies its result.
type Scheduler struct {
	interval time.Duration
	task     func()
	enabled  atomic.Bool

	mu   sync.Mutex
	stop chan struct{}
}

func NewScheduler(interval time.Duration, task func()) *Scheduler {
	s := &Scheduler{interval: interval, task: task}
	s.enabled.Store(true)
	return s
}

// Start runs the task immediately, then once per interval. Calling Start on
// a running scheduler cancels the existing timer before arming a new one,
// so repeated starts never stack tickers.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.stop != nil {
		close(s.stop)
	}
	stop := make(chan struct{})
	s.stop = stop
	s.mu.Unlock()

	s.task()

	go s.run(stop)
}

func (s *Scheduler) run(stop chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if s.enabled.Load() {
				s.task()
			}
		}
	}
}

// Stop cancels the timer outright. Used when the owner is torn down, not
// for pausing; pausing is SetEnabled(false).
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

func (s *Scheduler) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
}

func (s *Scheduler) Enabled() bool {
	return s.enabled.Load()
}
