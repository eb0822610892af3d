// Package audio is the boundary to the ambient-audio collaborator. The core
// only ever talks to the Player interface; the actual sound backend is out of
// scope.
package audio

import (
	"context"
	"os/exec"
)

// Mood hints which ambient profile to play: focused work or a relaxing break.
type Mood string

const (
	MoodFocus Mood = "focus"
	MoodRelax Mood = "relax"
)

type Player interface {
	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	SetMood(m Mood)
}

// Nop is the default player: every signal is accepted and dropped.
type Nop struct{}

func (Nop) Play(context.Context) error  { return nil }
func (Nop) Pause(context.Context) error { return nil }
func (Nop) SetMood(Mood)                {}

// Cmd drives a user-configured shell command (for example an mpv invocation)
// as the audio backend. The current mood is exported to the command through
// STUDYHUB_MOOD so a script can pick a matching playlist.
type Cmd struct {
	Command string

	mood Mood
	proc *exec.Cmd
}

func NewCmd(command string) *Cmd {
	return &Cmd{Command: command, mood: MoodFocus}
}

func (c *Cmd) SetMood(m Mood) {
	c.mood = m
}

func (c *Cmd) Play(ctx context.Context) error {
	if c.Command == "" {
		return nil
	}
	if c.proc != nil && c.proc.Process != nil {
		// Already playing; mood changes take effect on the next Play.
		return nil
	}
	proc := exec.CommandContext(ctx, "sh", "-c", c.Command)
	proc.Env = append(proc.Environ(), "STUDYHUB_MOOD="+string(c.mood))
	if err := proc.Start(); err != nil {
		return err
	}
	c.proc = proc
	go func() { _ = proc.Wait() }()
	return nil
}

func (c *Cmd) Pause(context.Context) error {
	if c.proc == nil || c.proc.Process == nil {
		return nil
	}
	err := c.proc.Process.Kill()
	c.proc = nil
	return err
}
