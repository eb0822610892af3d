package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StudyHub theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconHabit   = "🔄"
	IconDaily   = "📅"
	IconTodo    = "✅"
	IconSparkle = "✨"
	IconTimer   = "⏱️"
	IconBreak   = "☕"
	IconTomato  = "🍅"
	IconHeart   = "❤️"
	IconGold    = "🪙"
	IconFlame   = "🔥"
	IconBell    = "⏰"
	IconMusic   = "🎵"
	IconTarget  = "🎯"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// KindIcon maps a task kind name to its icon.
func KindIcon(kind string) string {
	switch kind {
	case "daily":
		return IconDaily
	case "todo":
		return IconTodo
	default:
		return IconHabit
	}
}

// PriorityBadge renders a colored priority marker.
func PriorityBadge(priority string) string {
	switch priority {
	case "high":
		return Bad.Render("high")
	case "low":
		return Good.Render("low")
	default:
		return Warn.Render("medium")
	}
}

// HPBar renders the profile HP as a fixed-width bar.
func HPBar(hp, maxHP, width int) string {
	if maxHP <= 0 {
		maxHP = 1
	}
	if width <= 3 {
		width = 3
	}
	if hp < 0 {
		hp = 0
	}
	if hp > maxHP {
		hp = maxHP
	}
	filled := hp * width / maxHP
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if hp*3 <= maxHP {
		return Bad.Render(bar)
	}
	return Good.Render(bar)
}

// ClassIcon maps avatar classes to their icons.
func ClassIcon(class string) string {
	switch class {
	case "mage":
		return "🔮"
	case "rogue":
		return "🗡️"
	case "healer":
		return "✨"
	default:
		return "⚔️"
	}
}
