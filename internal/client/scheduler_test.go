package client_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/api-sage/currency-converter/internal/client"
)

func TestSchedulerRunsImmediatelyOnStart(t *testing.T) {
	var runs atomic.Int32
	s := client.NewScheduler(time.Hour, func() { runs.Add(1) })
	defer s.Stop()

	s.Start()

	if got := runs.Load(); got != 1 {
		t.Fatalf("expected one immediate run, got %d", got)
	}
}

func TestSchedulerTicks(t *testing.T) {
	var runs atomic.Int32
	s := client.NewScheduler(10*time.Millisecond, func() { runs.Add(1) })
	defer s.Stop()

	s.Start()
	time.Sleep(100 * time.Millisecond)

	if got := runs.Load(); got < 3 {
		t.Fatalf("expected several periodic runs, got %d", got)
	}
}

func TestSchedulerGateSkipsTicksWithoutStopping(t *testing.T) {
	var runs atomic.Int32
	s := client.NewScheduler(10*time.Millisecond, func() { runs.Add(1) })
	defer s.Stop()

	s.SetEnabled(false)
	s.Start() // immediate run is not gated
	time.Sleep(60 * time.Millisecond)

	if got := runs.Load(); got != 1 {
		t.Fatalf("expected ticks to be skipped while disabled, got %d runs", got)
	}

	// re-enabling resumes on the next tick, no restart needed
	s.SetEnabled(true)
	time.Sleep(60 * time.Millisecond)

	if got := runs.Load(); got < 2 {
		t.Fatalf("expected runs to resume after re-enable, got %d", got)
	}
}

func TestSchedulerRestartDoesNotStackTimers(t *testing.T) {
	var runs atomic.Int32
	s := client.NewScheduler(20*time.Millisecond, func() { runs.Add(1) })
	defer s.Stop()

	s.Start()
	s.Start()
	runs.Store(0)

	time.Sleep(110 * time.Millisecond)

	// one ticker at 20ms yields about five runs in 110ms; stacked tickers
	// would roughly double that
	if got := runs.Load(); got > 8 {
		t.Fatalf("expected a single ticker after restart, got %d runs", got)
	}
}

func TestSchedulerStopHaltsRuns(t *testing.T) {
	var runs atomic.Int32
	s := client.NewScheduler(10*time.Millisecond, func() { runs.Add(1) })

	s.Start()
	time.Sleep(30 * time.Millisecond)
	s.Stop()
	time.Sleep(20 * time.Millisecond) // let any in-flight tick drain

	settled := runs.Load()
	time.Sleep(50 * time.Millisecond)

	if got := runs.Load(); got != settled {
		t.Fatalf("expected no runs after stop, got %d more", got-settled)
	}

	// stop is idempotent
	s.Stop()
}
