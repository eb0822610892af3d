package engine

import (
	"context"
	"time"
)

// Notifier receives one-shot reminder firings. Implementations live with the
// surfaces that can show them (CLI output, the focus TUI).
type Notifier interface {
	Notify(text string, at time.Time)
}

// ScanReminders checks every todo for a due reminder and fires it through the
// notifier. ReminderShown is the de-duplication guard: a reminder fires at
// most once per task, no matter how often the scan runs. The flipped flags
// are persisted before returning.
func (s *Service) ScanReminders(ctx context.Context, now time.Time, n Notifier) ([]int64, error) {
	c, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	var fired []int64
	for i := range c.Todos {
		t := &c.Todos[i]
		if t.Reminder == nil || t.Completed || t.ReminderShown {
			continue
		}
		if t.Reminder.After(now) {
			continue
		}
		t.ReminderShown = true
		fired = append(fired, t.ID)
		if n != nil {
			n.Notify(t.Text, *t.Reminder)
		}
	}
	if len(fired) == 0 {
		return nil, nil
	}
	if err := s.store.SaveTasks(ctx, c); err != nil {
		return nil, err
	}
	return fired, nil
}
