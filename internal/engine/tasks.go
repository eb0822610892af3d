package engine

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/srujankaleru2007/StudyHub/internal/storage"
)

// TaskInput carries the editable fields of a task.
type TaskInput struct {
	Text       string
	Priority   Priority
	Difficulty Difficulty
	Deadline   *time.Time
	Reminder   *time.Time

	// SetDeadline and SetReminder mark the schedule fields as intentional on
	// update; without them an edit keeps whatever the task already carries
	// (a nil Deadline with SetDeadline clears it). AddTask ignores both.
	SetDeadline bool
	SetReminder bool
}

// CompleteResult reports what a completion changed.
type CompleteResult struct {
	Task        storage.Task
	Kind        Kind
	XPAwarded   int
	GoldAwarded int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	// Removed is true for todos, which leave their collection on completion.
	Removed bool
}

func collection(c *storage.Collections, kind Kind) *[]storage.Task {
	switch kind {
	case KindDaily:
		return &c.Dailies
	case KindTodo:
		return &c.Todos
	default:
		return &c.Habits
	}
}

func findTask(list []storage.Task, id int64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// AddTask appends a new task to the kind's collection. Blank text is a silent
// no-op and returns a nil task. IDs are creation-time milliseconds, bumped on
// the rare collision within the same collection.
func (s *Service) AddTask(ctx context.Context, kind Kind, in TaskInput) (*storage.Task, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, nil
	}
	if !in.Difficulty.IsValid() {
		in.Difficulty = DifficultyEasy
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}

	c, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	list := collection(c, kind)

	now := s.now()
	id := now.UnixMilli()
	for findTask(*list, id) >= 0 {
		id++
	}

	t := storage.Task{
		ID:         id,
		Text:       text,
		Priority:   string(in.Priority),
		Difficulty: int(in.Difficulty),
		Deadline:   in.Deadline,
		Reminder:   in.Reminder,
		CreatedAt:  now,
	}
	*list = append(*list, t)

	if err := s.store.SaveTasks(ctx, c); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask replaces the editable fields of the matching task. ID and
// createdAt are immutable. Blank text or an unknown id is a silent no-op.
func (s *Service) UpdateTask(ctx context.Context, kind Kind, id int64, in TaskInput) (*storage.Task, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, nil
	}

	c, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	list := collection(c, kind)
	i := findTask(*list, id)
	if i < 0 {
		return nil, nil
	}

	t := &(*list)[i]
	t.Text = text
	if in.Priority != "" {
		t.Priority = string(in.Priority)
	}
	if in.Difficulty.IsValid() {
		t.Difficulty = int(in.Difficulty)
	}
	if in.SetDeadline {
		t.Deadline = in.Deadline
	}
	if in.SetReminder {
		t.Reminder = in.Reminder
	}

	if err := s.store.SaveTasks(ctx, c); err != nil {
		return nil, err
	}
	updated := *t
	return &updated, nil
}

// Complete applies the kind's completion semantics and the reward rules.
// Habits stay in place and can be completed again; dailies complete at most
// once until reset; todos are removed and snapshotted as the last completed
// task. An unknown id or an already-completed daily returns a nil result.
func (s *Service) Complete(ctx context.Context, kind Kind, id int64) (*CompleteResult, error) {
	c, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	list := collection(c, kind)
	i := findTask(*list, id)
	if i < 0 {
		return nil, nil
	}
	task := (*list)[i]

	if kind == KindDaily && task.Completed {
		return nil, nil
	}

	p, err := s.store.Profile(ctx)
	if err != nil {
		return nil, err
	}
	levelBefore := p.Level
	reward := CompletionReward(kind, Difficulty(task.Difficulty))

	switch kind {
	case KindDaily:
		(*list)[i].Completed = true
		if err := s.store.SaveTasks(ctx, c); err != nil {
			return nil, err
		}
	case KindTodo:
		now := s.now()
		task.Completed = true
		task.CompletedAt = &now
		*list = append((*list)[:i], (*list)[i+1:]...)
		if err := s.store.SaveTasks(ctx, c); err != nil {
			return nil, err
		}
		if err := s.store.SaveLastCompleted(ctx, &task); err != nil {
			return nil, err
		}
	default:
		// Habits are repeatable; the task itself is untouched.
	}

	AddXP(p, reward.XP)
	AddGold(p, reward.Gold)
	if err := s.store.SaveProfile(ctx, p); err != nil {
		return nil, err
	}

	return &CompleteResult{
		Task:        task,
		Kind:        kind,
		XPAwarded:   reward.XP,
		GoldAwarded: reward.Gold,
		LevelBefore: levelBefore,
		LevelAfter:  p.Level,
		LevelUp:     p.Level > levelBefore,
		Removed:     kind == KindTodo,
	}, nil
}

// MissHabit applies the flat habit-miss damage. No XP or gold changes.
func (s *Service) MissHabit(ctx context.Context, id int64) (*storage.Profile, error) {
	c, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	if findTask(c.Habits, id) < 0 {
		return nil, nil
	}
	return s.Damage(ctx, HabitMissDamage)
}

// FailDaily is the "give up on today" action: flat damage, and completion
// state forced back to false regardless of what it was.
func (s *Service) FailDaily(ctx context.Context, id int64) (*storage.Profile, error) {
	c, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	i := findTask(c.Dailies, id)
	if i < 0 {
		return nil, nil
	}
	c.Dailies[i].Completed = false
	if err := s.store.SaveTasks(ctx, c); err != nil {
		return nil, err
	}
	return s.Damage(ctx, DailyFailDamage)
}

// Delete removes the task regardless of completion state. Unknown ids are a
// no-op.
func (s *Service) Delete(ctx context.Context, kind Kind, id int64) error {
	c, err := s.store.Tasks(ctx)
	if err != nil {
		return err
	}
	list := collection(c, kind)
	i := findTask(*list, id)
	if i < 0 {
		return nil
	}
	*list = append((*list)[:i], (*list)[i+1:]...)
	return s.store.SaveTasks(ctx, c)
}

// ResetDailies flips every daily back to incomplete. Day rollover is left to
// the user or an external scheduler.
func (s *Service) ResetDailies(ctx context.Context) error {
	c, err := s.store.Tasks(ctx)
	if err != nil {
		return err
	}
	for i := range c.Dailies {
		c.Dailies[i].Completed = false
	}
	return s.store.SaveTasks(ctx, c)
}

// SortForDisplay orders tasks by priority descending, then nearest deadline
// first; tasks without a deadline sort after those with one. The sort is
// stable so equal tasks keep their creation order.
func SortForDisplay(tasks []storage.Task) []storage.Task {
	out := make([]storage.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := priorityWeight(out[i].Priority), priorityWeight(out[j].Priority)
		if wi != wj {
			return wi > wj
		}
		di, dj := out[i].Deadline, out[j].Deadline
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})
	return out
}

// TodayTasks returns the focus-mode task panel: incomplete dailies plus
// incomplete todos due today or later (or with no deadline at all).
func (s *Service) TodayTasks(ctx context.Context, now time.Time) ([]storage.Task, error) {
	c, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	var out []storage.Task
	for _, t := range c.Dailies {
		if !t.Completed {
			out = append(out, t)
		}
	}
	y, m, d := now.Date()
	for _, t := range c.Todos {
		if t.Completed {
			continue
		}
		if t.Deadline == nil {
			out = append(out, t)
			continue
		}
		dy, dm, dd := t.Deadline.Date()
		sameDay := y == dy && m == dm && d == dd
		if sameDay || t.Deadline.After(now) {
			out = append(out, t)
		}
	}
	return out, nil
}
