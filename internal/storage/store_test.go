package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func newTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cleanup := func() {
		_ = db.Close()
	}
	return NewStore(db), cleanup
}

func TestFreshStoreYieldsDefaults(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	p, err := s.Profile(ctx)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if !reflect.DeepEqual(p, DefaultProfile()) {
		t.Fatalf("profile=%+v, want defaults", p)
	}

	c, err := s.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if len(c.Habits) != 0 || len(c.Dailies) != 0 || len(c.Todos) != 0 {
		t.Fatalf("collections not empty: %+v", c)
	}

	streak, err := s.Streak(ctx)
	if err != nil || streak != 0 {
		t.Fatalf("streak=%d err=%v, want 0", streak, err)
	}
	if _, ok, err := s.LastSessionDate(ctx); err != nil || ok {
		t.Fatalf("fresh store should have no last session date")
	}
	last, err := s.LastCompleted(ctx)
	if err != nil || last != nil {
		t.Fatalf("fresh store should have no last completed task")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	p := &Profile{
		Level:    4,
		XP:       37,
		XPToNext: 152,
		HP:       61,
		MaxHP:    80,
		Gold:     412,
		Avatar:   Avatar{Name: "Riv", Class: "rogue", Color: "#e74c3c"},
	}
	if err := s.SaveProfile(ctx, p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	got, err := s.Profile(ctx)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, p)
	}
}

func TestTasksRoundTrip(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	deadline := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
	reminder := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	c := &Collections{
		Habits: []Task{{ID: 1, Text: "meditate", Priority: "low", Difficulty: 1, CreatedAt: reminder}},
		Dailies: []Task{
			{ID: 2, Text: "workout", Priority: "high", Difficulty: 2, Completed: true, CreatedAt: reminder},
		},
		Todos: []Task{
			{ID: 3, Text: "taxes", Priority: "high", Difficulty: 3, Deadline: &deadline, Reminder: &reminder, CreatedAt: reminder},
		},
	}
	if err := s.SaveTasks(ctx, c); err != nil {
		t.Fatalf("SaveTasks: %v", err)
	}

	got, err := s.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, c)
	}
}

func TestCorruptDocumentsFallBackToDefaults(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	db, err := Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	s := NewStore(db)

	for _, key := range []string{KeyProfile, KeyTasks, KeyStreak, KeyLastSession, KeyLastCompleted} {
		if _, err := db.ExecContext(ctx, `INSERT INTO documents (key, value) VALUES (?, ?)`, key, "{not json]"); err != nil {
			t.Fatalf("seed corrupt %q: %v", key, err)
		}
	}

	p, err := s.Profile(ctx)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if !reflect.DeepEqual(p, DefaultProfile()) {
		t.Fatalf("corrupt profile should yield defaults, got %+v", p)
	}

	c, err := s.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if len(c.Habits) != 0 || len(c.Dailies) != 0 || len(c.Todos) != 0 {
		t.Fatalf("corrupt tasks should yield empty collections, got %+v", c)
	}

	if streak, err := s.Streak(ctx); err != nil || streak != 0 {
		t.Fatalf("corrupt streak should read 0, got %d err=%v", streak, err)
	}
	if _, ok, err := s.LastSessionDate(ctx); err != nil || ok {
		t.Fatalf("corrupt session date should read as absent")
	}
	if last, err := s.LastCompleted(ctx); err != nil || last != nil {
		t.Fatalf("corrupt snapshot should read as absent")
	}
}

func TestPartialProfileDocumentFallsBack(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	db, err := Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	s := NewStore(db)

	// Decodes fine, but xpToNext and maxHp come out zero.
	for _, doc := range []string{`{"level":2}`, `{"level":3,"xpToNext":132}`, `{"level":0}`} {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO documents (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, KeyProfile, doc); err != nil {
			t.Fatalf("seed %q: %v", doc, err)
		}
		p, err := s.Profile(ctx)
		if err != nil {
			t.Fatalf("Profile for %q: %v", doc, err)
		}
		if !reflect.DeepEqual(p, DefaultProfile()) {
			t.Fatalf("doc %q should yield defaults, got %+v", doc, p)
		}
	}
}

func TestSessionBookkeepingRoundTrip(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if err := s.SaveStreak(ctx, 7); err != nil {
		t.Fatalf("SaveStreak: %v", err)
	}
	if got, err := s.Streak(ctx); err != nil || got != 7 {
		t.Fatalf("streak=%d err=%v, want 7", got, err)
	}

	day := time.Date(2025, 8, 30, 0, 0, 0, 0, time.Local)
	if err := s.SaveLastSessionDate(ctx, day); err != nil {
		t.Fatalf("SaveLastSessionDate: %v", err)
	}
	got, ok, err := s.LastSessionDate(ctx)
	if err != nil || !ok {
		t.Fatalf("LastSessionDate: ok=%v err=%v", ok, err)
	}
	if !got.Equal(day) {
		t.Fatalf("day=%v, want %v", got, day)
	}

	if err := s.SaveTotalSessions(ctx, 12); err != nil {
		t.Fatalf("SaveTotalSessions: %v", err)
	}
	if got, err := s.TotalSessions(ctx); err != nil || got != 12 {
		t.Fatalf("total=%d err=%v, want 12", got, err)
	}
}

func TestAccountRoundTrip(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	a := &Account{Name: "Sam", Email: "sam@example.com"}
	if err := s.SaveAccount(ctx, a); err != nil {
		t.Fatalf("SaveAccount: %v", err)
	}
	got, err := s.Account(ctx)
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	if !reflect.DeepEqual(got, a) {
		t.Fatalf("account=%+v, want %+v", got, a)
	}

	if err := s.ClearAccount(ctx); err != nil {
		t.Fatalf("ClearAccount: %v", err)
	}
	got, err = s.Account(ctx)
	if err != nil || got != nil {
		t.Fatalf("after logout account=%+v err=%v, want nil", got, err)
	}
}
