package session

import "time"

// Mode is the interval kind the timer is counting down.
type Mode int

const (
	ModeWork Mode = iota
	ModeBreak
)

func (m Mode) String() string {
	if m == ModeBreak {
		return "break"
	}
	return "work"
}

type EventKind int

const (
	// EventSessionStarted fires on the first Start of a work interval in a
	// focus cycle (the autoplay request).
	EventSessionStarted EventKind = iota
	// EventWorkCompleted fires when a work interval counts down to zero.
	EventWorkCompleted
	// EventBreakStarted fires when the timer rolls over into a break.
	EventBreakStarted
	// EventBreakEnded fires when a break counts down to zero.
	EventBreakEnded
)

type Event struct {
	Kind              EventKind
	Mode              Mode
	CompletedSessions int
}

const (
	DefaultWorkDuration  = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
)

// Timer is the countdown state machine: {work, break} x {running, paused}.
// It never persists and never talks to its consumers directly; interested
// parties subscribe for events. Ticking is driven externally, once per
// second while running.
type Timer struct {
	mode          Mode
	workDuration  time.Duration
	breakDuration time.Duration
	remaining     time.Duration
	running       bool

	// inCycle is set on the first Start of a work interval and cleared when
	// the interval completes or the timer is reset. It gates the
	// session-started event to once per focus cycle.
	inCycle           bool
	completedSessions int

	subs []func(Event)
}

func NewTimer(work, brk time.Duration) *Timer {
	if work <= 0 {
		work = DefaultWorkDuration
	}
	if brk <= 0 {
		brk = DefaultBreakDuration
	}
	return &Timer{
		mode:          ModeWork,
		workDuration:  work,
		breakDuration: brk,
		remaining:     work,
	}
}

// Subscribe registers a listener. Events are delivered synchronously, in
// subscription order, on the same logical thread that drives the timer.
func (t *Timer) Subscribe(fn func(Event)) {
	t.subs = append(t.subs, fn)
}

func (t *Timer) emit(kind EventKind) {
	ev := Event{Kind: kind, Mode: t.mode, CompletedSessions: t.completedSessions}
	for _, fn := range t.subs {
		fn(ev)
	}
}

func (t *Timer) Mode() Mode                 { return t.mode }
func (t *Timer) Running() bool              { return t.running }
func (t *Timer) Remaining() time.Duration   { return t.remaining }
func (t *Timer) CompletedSessions() int     { return t.completedSessions }
func (t *Timer) WorkDuration() time.Duration  { return t.workDuration }
func (t *Timer) BreakDuration() time.Duration { return t.breakDuration }

// Duration returns the configured duration of the current mode.
func (t *Timer) Duration() time.Duration {
	if t.mode == ModeBreak {
		return t.breakDuration
	}
	return t.workDuration
}

// Start begins (or resumes) the countdown. The first start of a work
// interval announces the session so the coordinator can request autoplay.
func (t *Timer) Start() {
	if t.running {
		return
	}
	t.running = true
	if t.mode == ModeWork && !t.inCycle {
		t.inCycle = true
		t.emit(EventSessionStarted)
	}
}

// Pause stops the countdown, keeping the remaining time.
func (t *Timer) Pause() {
	t.running = false
}

// Reset pauses and restores the current mode's full duration. The mode is
// not changed.
func (t *Timer) Reset() {
	t.running = false
	t.inCycle = false
	t.remaining = t.Duration()
}

// Tick advances the countdown by one second. It is a no-op while paused.
// Hitting zero fires the completion transition; remaining never goes
// negative.
func (t *Timer) Tick() {
	if !t.running {
		return
	}
	t.remaining -= time.Second
	if t.remaining > 0 {
		return
	}
	t.remaining = 0
	t.complete()
}

func (t *Timer) complete() {
	t.running = false
	if t.mode == ModeWork {
		t.completedSessions++
		t.inCycle = false
		t.mode = ModeBreak
		t.remaining = t.breakDuration
		t.emit(EventWorkCompleted)
		t.emit(EventBreakStarted)
		return
	}
	t.mode = ModeWork
	t.remaining = t.workDuration
	t.emit(EventBreakEnded)
}

// SetWorkDuration changes the configured work duration. The in-flight
// countdown is only touched when the timer is paused in work mode; a running
// countdown is never corrupted, and the new value applies when work is next
// entered.
func (t *Timer) SetWorkDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	t.workDuration = d
	if !t.running && t.mode == ModeWork {
		t.remaining = d
	}
}

// SetBreakDuration is the break-mode counterpart of SetWorkDuration.
func (t *Timer) SetBreakDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	t.breakDuration = d
	if !t.running && t.mode == ModeBreak {
		t.remaining = d
	}
}
