package session

import (
	"testing"
	"time"
)

func collectEvents(t *Timer) *[]Event {
	var events []Event
	t.Subscribe(func(ev Event) {
		events = append(events, ev)
	})
	return &events
}

func TestWorkCountdownRollsIntoBreak(t *testing.T) {
	tm := NewTimer(25*time.Minute, 5*time.Minute)
	events := collectEvents(tm)

	tm.Start()
	for i := 0; i < 1500; i++ {
		tm.Tick()
	}

	if tm.Mode() != ModeBreak {
		t.Fatalf("mode=%s, want break", tm.Mode())
	}
	if tm.Running() {
		t.Fatal("timer should be paused after the work interval completes")
	}
	if got := tm.Remaining(); got != 5*time.Minute {
		t.Fatalf("remaining=%s, want 5m", got)
	}
	if got := tm.CompletedSessions(); got != 1 {
		t.Fatalf("completedSessions=%d, want 1", got)
	}

	kinds := []EventKind{}
	for _, ev := range *events {
		kinds = append(kinds, ev.Kind)
	}
	want := []EventKind{EventSessionStarted, EventWorkCompleted, EventBreakStarted}
	if len(kinds) != len(want) {
		t.Fatalf("events=%v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("event[%d]=%v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestBreakCountdownRollsBackToWork(t *testing.T) {
	tm := NewTimer(2*time.Second, 3*time.Second)
	events := collectEvents(tm)

	tm.Start()
	tm.Tick()
	tm.Tick() // work done, now paused in break

	tm.Start()
	tm.Tick()
	tm.Tick()
	tm.Tick() // break done

	if tm.Mode() != ModeWork {
		t.Fatalf("mode=%s, want work", tm.Mode())
	}
	if tm.Running() {
		t.Fatal("timer should be paused after the break completes")
	}
	if got := tm.Remaining(); got != 2*time.Second {
		t.Fatalf("remaining=%s, want full work duration", got)
	}

	last := (*events)[len(*events)-1]
	if last.Kind != EventBreakEnded {
		t.Fatalf("last event=%v, want break-ended", last.Kind)
	}
	if got := tm.CompletedSessions(); got != 1 {
		t.Fatalf("completedSessions=%d, want 1 (breaks do not count)", got)
	}
}

func TestPauseKeepsRemaining(t *testing.T) {
	tm := NewTimer(time.Minute, 10*time.Second)

	tm.Start()
	tm.Tick()
	tm.Tick()
	tm.Pause()

	if got := tm.Remaining(); got != 58*time.Second {
		t.Fatalf("remaining=%s, want 58s", got)
	}
	tm.Tick() // paused, must not move
	if got := tm.Remaining(); got != 58*time.Second {
		t.Fatalf("remaining moved while paused: %s", got)
	}

	tm.Start()
	tm.Tick()
	if got := tm.Remaining(); got != 57*time.Second {
		t.Fatalf("remaining=%s after resume, want 57s", got)
	}
}

func TestResetRestoresDurationKeepsMode(t *testing.T) {
	tm := NewTimer(2*time.Second, 4*time.Second)

	tm.Start()
	tm.Tick()
	tm.Tick() // into break
	tm.Start()
	tm.Tick()
	tm.Reset()

	if tm.Mode() != ModeBreak {
		t.Fatalf("reset changed mode to %s", tm.Mode())
	}
	if tm.Running() {
		t.Fatal("reset should pause the timer")
	}
	if got := tm.Remaining(); got != 4*time.Second {
		t.Fatalf("remaining=%s, want the full break duration", got)
	}
}

func TestSessionStartedFiresOncePerCycle(t *testing.T) {
	tm := NewTimer(time.Minute, 10*time.Second)
	events := collectEvents(tm)

	tm.Start()
	tm.Pause()
	tm.Start() // resume within the same cycle
	tm.Pause()
	tm.Start()

	starts := 0
	for _, ev := range *events {
		if ev.Kind == EventSessionStarted {
			starts++
		}
	}
	if starts != 1 {
		t.Fatalf("session-started fired %d times in one cycle, want 1", starts)
	}

	// Reset clears the cycle, so the next start announces again.
	tm.Reset()
	tm.Start()
	starts = 0
	for _, ev := range *events {
		if ev.Kind == EventSessionStarted {
			starts++
		}
	}
	if starts != 2 {
		t.Fatalf("session-started fired %d times across two cycles, want 2", starts)
	}
}

func TestSetDurationDeferredWhileRunning(t *testing.T) {
	tm := NewTimer(time.Minute, 10*time.Second)

	tm.Start()
	tm.Tick()
	tm.SetWorkDuration(30 * time.Minute)

	if got := tm.Remaining(); got != 59*time.Second {
		t.Fatalf("running countdown was touched: remaining=%s", got)
	}
	if got := tm.WorkDuration(); got != 30*time.Minute {
		t.Fatalf("workDuration=%s, want 30m", got)
	}

	// Paused in work mode: the new value applies immediately.
	tm.Pause()
	tm.SetWorkDuration(45 * time.Minute)
	if got := tm.Remaining(); got != 45*time.Minute {
		t.Fatalf("remaining=%s, want 45m after paused change", got)
	}

	// Changing the break duration in work mode never touches remaining.
	tm.SetBreakDuration(15 * time.Minute)
	if got := tm.Remaining(); got != 45*time.Minute {
		t.Fatalf("break change touched work remaining: %s", got)
	}
	if got := tm.BreakDuration(); got != 15*time.Minute {
		t.Fatalf("breakDuration=%s, want 15m", got)
	}
}

func TestSetDurationRejectsNonPositive(t *testing.T) {
	tm := NewTimer(time.Minute, 10*time.Second)
	tm.SetWorkDuration(0)
	tm.SetBreakDuration(-time.Second)
	if tm.WorkDuration() != time.Minute || tm.BreakDuration() != 10*time.Second {
		t.Fatalf("non-positive durations must be ignored: work=%s break=%s",
			tm.WorkDuration(), tm.BreakDuration())
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	tm := NewTimer(time.Second, time.Second)
	tm.Start()
	for i := 0; i < 10; i++ {
		tm.Tick()
		if tm.Remaining() < 0 {
			t.Fatalf("remaining went negative: %s", tm.Remaining())
		}
	}
}
