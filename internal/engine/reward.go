package engine

import (
	"math"

	"github.com/srujankaleru2007/StudyHub/internal/storage"
)

const (
	// BaseXPToNext and XPGrowth define the leveling curve:
	// xpToNext = floor(100 * 1.15^(level-1)).
	BaseXPToNext = 100
	XPGrowth     = 1.15

	// BaseMaxHP and HPPerLevel define max HP: 50 + (level-1)*10.
	BaseMaxHP  = 50
	HPPerLevel = 10

	// LevelHeal is the HP restored after an XP award, capped at max HP.
	LevelHeal = 5

	HabitMissDamage = 2
	DailyFailDamage = 5

	MaxAvatarNameLen = 20
)

// XPToNext returns the XP threshold for leveling past the given level.
func XPToNext(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(BaseXPToNext * math.Pow(XPGrowth, float64(level-1))))
}

// MaxHPForLevel derives max HP from the level invariant.
func MaxHPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return BaseMaxHP + (level-1)*HPPerLevel
}

// Reward is the XP/gold pair a completion grants.
type Reward struct {
	XP   int
	Gold int
}

// CompletionReward returns the reward for completing a task of the given kind
// and difficulty. Todos pay best because they are one-shot, habits least
// because they repeat.
func CompletionReward(kind Kind, d Difficulty) Reward {
	if !d.IsValid() {
		d = DifficultyEasy
	}
	switch kind {
	case KindDaily:
		return Reward{XP: 15 * int(d), Gold: 8 * int(d)}
	case KindTodo:
		return Reward{XP: 20 * int(d), Gold: 10 * int(d)}
	default:
		return Reward{XP: 10 * int(d), Gold: 5 * int(d)}
	}
}

// AddXP applies an XP award to the profile. A single large award may cross
// several level boundaries, so the level-up step loops until xp < xpToNext.
// After the loop max HP is recomputed and the profile heals a little, capped
// at the new max.
func AddXP(p *storage.Profile, amount int) {
	if amount < 0 {
		amount = 0
	}
	p.XP += amount

	for p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		p.XPToNext = XPToNext(p.Level)
	}

	p.MaxHP = MaxHPForLevel(p.Level)
	p.HP += LevelHeal
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// AddGold credits gold. Amounts are non-negative by contract.
func AddGold(p *storage.Profile, amount int) {
	if amount < 0 {
		amount = 0
	}
	p.Gold += amount
}

// TakeDamage reduces HP, flooring at 0. Reaching 0 has no further effect.
func TakeDamage(p *storage.Profile, amount int) {
	if amount < 0 {
		amount = 0
	}
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
}
