package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Logical document keys. These names are the app's external persistence
// interface and must stay stable across versions.
const (
	KeyProfile       = "user"
	KeyTasks         = "tasks"
	KeyStreak        = "focusStreak"
	KeyLastSession   = "lastSessionDate"
	KeyTotalSessions = "totalSessions"
	KeyLastCompleted = "lastCompletedTask"
	KeyAccount       = "account"
)

const sessionDateLayout = "2006-01-02"

// Store reads and writes whole JSON documents, one per key. Writes are
// write-through and independent per key; a crash between two writes can leave
// related keys inconsistent, which is accepted for a best-effort local cache.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM documents WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("document get %q: %w", key, err)
	}
	return []byte(value), nil
}

func (s *Store) put(ctx context.Context, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("document encode %q: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("document put %q: %w", key, err)
	}
	return nil
}

func (s *Store) delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("document delete %q: %w", key, err)
	}
	return nil
}

// Profile loads the character document. Missing or corrupt data falls back to
// the default level-1 profile; the app must always come up usable.
func (s *Store) Profile(ctx context.Context) (*Profile, error) {
	raw, err := s.get(ctx, KeyProfile)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return DefaultProfile(), nil
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return DefaultProfile(), nil
	}
	// A document that decodes but breaks the level invariants (a partial or
	// hand-edited write) is as unusable as garbage.
	if p.Level < 1 || p.XPToNext <= 0 || p.MaxHP <= 0 {
		return DefaultProfile(), nil
	}
	return &p, nil
}

func (s *Store) SaveProfile(ctx context.Context, p *Profile) error {
	return s.put(ctx, KeyProfile, p)
}

// Tasks loads the three collections, substituting empty ones for missing or
// corrupt data.
func (s *Store) Tasks(ctx context.Context) (*Collections, error) {
	raw, err := s.get(ctx, KeyTasks)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return NewCollections(), nil
	}
	var c Collections
	if err := json.Unmarshal(raw, &c); err != nil {
		return NewCollections(), nil
	}
	if c.Habits == nil {
		c.Habits = []Task{}
	}
	if c.Dailies == nil {
		c.Dailies = []Task{}
	}
	if c.Todos == nil {
		c.Todos = []Task{}
	}
	return &c, nil
}

func (s *Store) SaveTasks(ctx context.Context, c *Collections) error {
	return s.put(ctx, KeyTasks, c)
}

// Streak returns the consecutive-day focus streak, 0 when unset or corrupt.
func (s *Store) Streak(ctx context.Context) (int, error) {
	raw, err := s.get(ctx, KeyStreak)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}

func (s *Store) SaveStreak(ctx context.Context, streak int) error {
	return s.put(ctx, KeyStreak, streak)
}

// LastSessionDate returns the calendar day of the last completed focus
// session. ok is false when no session was ever recorded.
func (s *Store) LastSessionDate(ctx context.Context) (day time.Time, ok bool, err error) {
	raw, err := s.get(ctx, KeyLastSession)
	if err != nil {
		return time.Time{}, false, err
	}
	if raw == nil {
		return time.Time{}, false, nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return time.Time{}, false, nil
	}
	day, perr := time.ParseInLocation(sessionDateLayout, str, time.Local)
	if perr != nil {
		return time.Time{}, false, nil
	}
	return day, true, nil
}

func (s *Store) SaveLastSessionDate(ctx context.Context, day time.Time) error {
	return s.put(ctx, KeyLastSession, day.Format(sessionDateLayout))
}

// TotalSessions returns the cumulative completed-session counter.
func (s *Store) TotalSessions(ctx context.Context) (int, error) {
	raw, err := s.get(ctx, KeyTotalSessions)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}

func (s *Store) SaveTotalSessions(ctx context.Context, n int) error {
	return s.put(ctx, KeyTotalSessions, n)
}

// LastCompleted returns the most recent completed todo snapshot, or nil.
// The snapshot is overwritten on every todo completion; there is no history.
func (s *Store) LastCompleted(ctx context.Context) (*Task, error) {
	raw, err := s.get(ctx, KeyLastCompleted)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var t Task
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, nil
	}
	return &t, nil
}

func (s *Store) SaveLastCompleted(ctx context.Context, t *Task) error {
	return s.put(ctx, KeyLastCompleted, t)
}

// Account returns the logged-in account record, or nil when logged out.
func (s *Store) Account(ctx context.Context) (*Account, error) {
	raw, err := s.get(ctx, KeyAccount)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var a Account
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, nil
	}
	return &a, nil
}

func (s *Store) SaveAccount(ctx context.Context, a *Account) error {
	return s.put(ctx, KeyAccount, a)
}

func (s *Store) ClearAccount(ctx context.Context) error {
	return s.delete(ctx, KeyAccount)
}
