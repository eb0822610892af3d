package session

import (
	"context"
	"time"

	"github.com/srujankaleru2007/StudyHub/internal/audio"
)

// Bookkeeper persists the cumulative session counters. The timer itself is
// ephemeral; only streak, last-session day and total sessions survive a
// restart. *storage.Store satisfies this.
type Bookkeeper interface {
	Streak(ctx context.Context) (int, error)
	SaveStreak(ctx context.Context, streak int) error
	LastSessionDate(ctx context.Context) (day time.Time, ok bool, err error)
	SaveLastSessionDate(ctx context.Context, day time.Time) error
	TotalSessions(ctx context.Context) (int, error)
	SaveTotalSessions(ctx context.Context, n int) error
}

// Coordinator wires the timer to its consumers: the ambient-audio
// collaborator, the streak bookkeeping and the focus presentation gate.
// The timer stays unaware of all of them.
type Coordinator struct {
	timer  *Timer
	player audio.Player
	book   Bookkeeper

	now      func() time.Time
	autoplay bool
	focus    bool

	// pending buffers events emitted during a timer call so they are handled
	// with the caller's context, in order, after the transition settles.
	pending []Event
}

func NewCoordinator(t *Timer, player audio.Player, book Bookkeeper) *Coordinator {
	if player == nil {
		player = audio.Nop{}
	}
	c := &Coordinator{
		timer:    t,
		player:   player,
		book:     book,
		now:      time.Now,
		autoplay: true,
	}
	t.Subscribe(func(ev Event) {
		c.pending = append(c.pending, ev)
	})
	return c
}

func (c *Coordinator) Timer() *Timer { return c.timer }

// SetAutoplay controls whether starting a session requests audio playback.
func (c *Coordinator) SetAutoplay(on bool) { c.autoplay = on }

// EnterFocus and ExitFocus gate the focus presentation mode. The gate is
// purely presentational: it never resets or otherwise touches the timer.
func (c *Coordinator) EnterFocus() { c.focus = true }
func (c *Coordinator) ExitFocus() { c.focus = false }
func (c *Coordinator) InFocus() bool { return c.focus }

func (c *Coordinator) Start(ctx context.Context) error {
	c.timer.Start()
	return c.drain(ctx)
}

func (c *Coordinator) Pause(ctx context.Context) error {
	c.timer.Pause()
	return c.drain(ctx)
}

func (c *Coordinator) Reset(ctx context.Context) error {
	c.timer.Reset()
	return c.drain(ctx)
}

// Tick advances the timer by one second and handles whatever transitions it
// triggers.
func (c *Coordinator) Tick(ctx context.Context) error {
	c.timer.Tick()
	return c.drain(ctx)
}

// PlayAudio and PauseAudio forward manual audio controls from the UI.
func (c *Coordinator) PlayAudio(ctx context.Context) error {
	return c.player.Play(ctx)
}

func (c *Coordinator) PauseAudio(ctx context.Context) error {
	return c.player.Pause(ctx)
}

func (c *Coordinator) drain(ctx context.Context) error {
	for len(c.pending) > 0 {
		ev := c.pending[0]
		c.pending = c.pending[1:]
		if err := c.handle(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

func (c *Coordinator) handle(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case EventSessionStarted:
		c.player.SetMood(audio.MoodFocus)
		if c.autoplay {
			// Audio is best-effort; a deaf session is still a session.
			_ = c.player.Play(ctx)
		}
	case EventWorkCompleted:
		if err := c.recordSession(ctx); err != nil {
			return err
		}
	case EventBreakStarted:
		c.player.SetMood(audio.MoodRelax)
		if c.autoplay {
			_ = c.player.Play(ctx)
		}
	case EventBreakEnded:
		c.player.SetMood(audio.MoodFocus)
	}
	return nil
}

// recordSession runs the streak bookkeeping once per completed work
// interval, and bumps the cumulative counter.
func (c *Coordinator) recordSession(ctx context.Context) error {
	if c.book == nil {
		return nil
	}
	today := dayOf(c.now())

	streak, err := c.book.Streak(ctx)
	if err != nil {
		return err
	}
	last, ok, err := c.book.LastSessionDate(ctx)
	if err != nil {
		return err
	}

	next := NextStreak(streak, last, ok, today)
	if next != streak {
		if err := c.book.SaveStreak(ctx, next); err != nil {
			return err
		}
	}
	if err := c.book.SaveLastSessionDate(ctx, today); err != nil {
		return err
	}

	total, err := c.book.TotalSessions(ctx)
	if err != nil {
		return err
	}
	return c.book.SaveTotalSessions(ctx, total+1)
}

// NextStreak applies the consecutive-day rule: a session on the same day
// keeps the streak, a session exactly one day after the last extends it, and
// any larger gap (or a first-ever session) starts over at 1.
func NextStreak(streak int, last time.Time, hasLast bool, today time.Time) int {
	if !hasLast {
		return 1
	}
	switch daysBetween(dayOf(last), today) {
	case 0:
		if streak < 1 {
			return 1
		}
		return streak
	case 1:
		return streak + 1
	default:
		return 1
	}
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	hours := dayOf(to).Sub(dayOf(from)).Hours()
	// Round to absorb DST shifting a day by an hour.
	if hours >= 0 {
		return int(hours + 12) / 24
	}
	return -int(-hours+12) / 24
}
