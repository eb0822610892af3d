package engine

import (
	"fmt"
	"strings"
)

// Kind selects which collection a task lives in and which completion
// semantics apply. A task never changes kind in place.
type Kind string

const (
	KindHabit Kind = "habit"
	KindDaily Kind = "daily"
	KindTodo  Kind = "todo"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindHabit, KindDaily, KindTodo:
		return true
	default:
		return false
	}
}

func ParseKind(input string) (Kind, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "habit", "habits":
		return KindHabit, nil
	case "daily", "dailies":
		return KindDaily, nil
	case "todo", "todos":
		return KindTodo, nil
	default:
		return "", fmt.Errorf("invalid task kind: %q", input)
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority is forgiving: anything unrecognized reads as medium, matching
// the display-sort contract for unknown priorities.
func ParsePriority(input string) Priority {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// priorityWeight orders priorities for display. Unknown values sort as medium.
func priorityWeight(p string) int {
	switch Priority(p) {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
)

func (d Difficulty) IsValid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// AvatarClasses are the selectable avatar classes.
var AvatarClasses = []string{"warrior", "mage", "rogue", "healer"}

func ValidAvatarClass(class string) bool {
	for _, c := range AvatarClasses {
		if c == class {
			return true
		}
	}
	return false
}
