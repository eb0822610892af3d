// Package notify delivers one-shot task reminders. The engine only depends
// on its Notifier contract; this package holds the implementations.
package notify

import (
	"fmt"
	"io"
	"time"

	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

// Writer renders reminders as styled lines, for the CLI and the focus TUI
// status area.
type Writer struct {
	Out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{Out: out}
}

func (w *Writer) Notify(text string, at time.Time) {
	if w.Out == nil {
		return
	}
	line := fmt.Sprintf("%s Reminder: %s %s",
		ui.IconBell,
		text,
		ui.Muted.Render("("+at.Format("Jan 2 15:04")+")"),
	)
	fmt.Fprintln(w.Out, ui.Warn.Render(line))
}

// Collector keeps fired reminders in memory so a host view can show them in
// its own frame instead of writing to a stream.
type Collector struct {
	Fired []string
}

func (c *Collector) Notify(text string, at time.Time) {
	c.Fired = append(c.Fired, fmt.Sprintf("%s (%s)", text, at.Format("15:04")))
}
