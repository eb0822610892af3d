package engine

import (
	"testing"

	"github.com/srujankaleru2007/StudyHub/internal/storage"
)

func TestXPToNextCurve(t *testing.T) {
	if got := XPToNext(1); got != 100 {
		t.Fatalf("XPToNext(1)=%d, want 100", got)
	}
	if got := XPToNext(2); got != 114 {
		t.Fatalf("XPToNext(2)=%d, want 114", got)
	}
	if got := XPToNext(3); got != 132 {
		t.Fatalf("XPToNext(3)=%d, want 132", got)
	}
}

func TestAddXPConverges(t *testing.T) {
	for _, amount := range []int{0, 1, 99, 100, 250, 1000, 100000} {
		p := storage.DefaultProfile()
		levelBefore := p.Level
		AddXP(p, amount)
		if p.XP >= p.XPToNext {
			t.Fatalf("AddXP(%d): xp=%d not below xpToNext=%d", amount, p.XP, p.XPToNext)
		}
		if p.Level < levelBefore {
			t.Fatalf("AddXP(%d): level decreased %d -> %d", amount, levelBefore, p.Level)
		}
		if p.MaxHP != MaxHPForLevel(p.Level) {
			t.Fatalf("AddXP(%d): maxHp=%d, want %d", amount, p.MaxHP, MaxHPForLevel(p.Level))
		}
		if p.HP > p.MaxHP {
			t.Fatalf("AddXP(%d): hp=%d above maxHp=%d", amount, p.HP, p.MaxHP)
		}
	}
}

func TestAddXPCrossesTwoLevels(t *testing.T) {
	p := storage.DefaultProfile()
	p.XP = 95

	AddXP(p, 250)

	// 345 total: -100 -> level 2 (next 114), -114 -> level 3 (next 132).
	if p.Level != 3 {
		t.Fatalf("level=%d, want 3", p.Level)
	}
	if p.XP != 131 {
		t.Fatalf("xp=%d, want 131", p.XP)
	}
	if p.XPToNext != 132 {
		t.Fatalf("xpToNext=%d, want 132", p.XPToNext)
	}
	if p.MaxHP != 70 {
		t.Fatalf("maxHp=%d, want 70", p.MaxHP)
	}
	if p.HP != 55 {
		t.Fatalf("hp=%d, want 55", p.HP)
	}
}

func TestTakeDamageFloorsAtZero(t *testing.T) {
	p := storage.DefaultProfile()
	TakeDamage(p, 30)
	if p.HP != 20 {
		t.Fatalf("hp=%d, want 20", p.HP)
	}
	TakeDamage(p, 999)
	if p.HP != 0 {
		t.Fatalf("hp=%d, want 0", p.HP)
	}
	TakeDamage(p, 5)
	if p.HP != 0 {
		t.Fatalf("hp after bottoming out=%d, want 0", p.HP)
	}
}

func TestAddGoldNeverDecreases(t *testing.T) {
	p := storage.DefaultProfile()
	AddGold(p, 25)
	if p.Gold != 25 {
		t.Fatalf("gold=%d, want 25", p.Gold)
	}
	AddGold(p, -10)
	if p.Gold != 25 {
		t.Fatalf("gold after negative amount=%d, want 25", p.Gold)
	}
}

func TestCompletionRewardTable(t *testing.T) {
	cases := []struct {
		kind Kind
		d    Difficulty
		xp   int
		gold int
	}{
		{KindHabit, 1, 10, 5},
		{KindHabit, 3, 30, 15},
		{KindDaily, 1, 15, 8},
		{KindDaily, 2, 30, 16},
		{KindTodo, 1, 20, 10},
		{KindTodo, 3, 60, 30},
	}
	for _, c := range cases {
		got := CompletionReward(c.kind, c.d)
		if got.XP != c.xp || got.Gold != c.gold {
			t.Fatalf("CompletionReward(%s, %d)=%+v, want xp=%d gold=%d", c.kind, c.d, got, c.xp, c.gold)
		}
	}
}
