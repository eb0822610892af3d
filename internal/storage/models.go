package storage

import "time"

// Avatar is the cosmetic part of the profile, merged field-by-field on
// customization.
type Avatar struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Color string `json:"color"`
}

// Profile is the character document persisted under the "user" key.
// It is mutated only through the engine's reward operations and avatar
// customization.
type Profile struct {
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
	XPToNext int    `json:"xpToNext"`
	HP       int    `json:"hp"`
	MaxHP    int    `json:"maxHp"`
	Gold     int    `json:"gold"`
	Avatar   Avatar `json:"avatar"`
}

// Task is a single entry in one of the three collections. The collection a
// task lives in decides its completion semantics; the shape is shared.
type Task struct {
	ID            int64      `json:"id"`
	Text          string     `json:"text"`
	Priority      string     `json:"priority"`
	Difficulty    int        `json:"difficulty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Reminder      *time.Time `json:"reminder,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	ReminderShown bool       `json:"reminderShown"`
}

// Collections is the task document persisted under the "tasks" key.
type Collections struct {
	Habits  []Task `json:"habits"`
	Dailies []Task `json:"dailies"`
	Todos   []Task `json:"todos"`
}

// Account is the record handed over by the authentication collaborator.
// Credentials are never inspected here.
type Account struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsGuest bool   `json:"isGuest"`
}

// DefaultProfile returns the level-1 warrior every fresh install starts with.
func DefaultProfile() *Profile {
	return &Profile{
		Level:    1,
		XP:       0,
		XPToNext: 100,
		HP:       50,
		MaxHP:    50,
		Gold:     0,
		Avatar: Avatar{
			Name:  "Adventurer",
			Class: "warrior",
			Color: "#4a90e2",
		},
	}
}

// NewCollections returns three empty collections.
func NewCollections() *Collections {
	return &Collections{
		Habits:  []Task{},
		Dailies: []Task{},
		Todos:   []Task{},
	}
}
