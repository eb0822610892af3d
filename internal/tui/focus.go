package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/srujankaleru2007/StudyHub/internal/engine"
	"github.com/srujankaleru2007/StudyHub/internal/notify"
	"github.com/srujankaleru2007/StudyHub/internal/session"
	"github.com/srujankaleru2007/StudyHub/internal/storage"
	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

// RunFocus opens the full-screen focus mode around an existing coordinator.
// Entering and leaving focus never touches the timer itself; the ticker that
// drives it lives and dies with this program.
func RunFocus(ctx context.Context, svc *engine.Service, coord *session.Coordinator, out io.Writer) error {
	coord.EnterFocus()
	defer coord.ExitFocus()

	m := newFocusModel(ctx, svc, coord)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type focusModel struct {
	ctx   context.Context
	svc   *engine.Service
	coord *session.Coordinator

	width  int
	height int

	profile  *storage.Profile
	tasks    []storage.Task
	streak   int
	sessions int

	bar          progress.Model
	audioPlaying bool
	lastLog      string
	err          error
}

type loadedMsg struct {
	profile  *storage.Profile
	tasks    []storage.Task
	streak   int
	sessions int
	err      error
}

type tickMsg time.Time

type remindMsg struct {
	fired []string
	err   error
}

func newFocusModel(ctx context.Context, svc *engine.Service, coord *session.Coordinator) focusModel {
	return focusModel{
		ctx:     ctx,
		svc:     svc,
		coord:   coord,
		bar:     progress.New(progress.WithDefaultGradient()),
		lastLog: "Press s to start.",
	}
}

func (m focusModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tickCmd(), remindCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func remindCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(time.Time) tea.Msg {
		return tickReminderMarker{}
	})
}

type tickReminderMarker struct{}

func (m focusModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Profile(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.TodayTasks(m.ctx, time.Now())
		if err != nil {
			return loadedMsg{err: err}
		}
		streak, err := m.svc.Store().Streak(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		sessions, err := m.svc.Store().TotalSessions(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, tasks: tasks, streak: streak, sessions: sessions}
	}
}

func (m focusModel) scanCmd() tea.Cmd {
	return func() tea.Msg {
		var col notify.Collector
		if _, err := m.svc.ScanReminders(m.ctx, time.Now(), &col); err != nil {
			return remindMsg{err: err}
		}
		return remindMsg{fired: col.Fired}
	}
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 10
		if w > 50 {
			w = 50
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.profile = msg.profile
		m.tasks = msg.tasks
		m.streak = msg.streak
		m.sessions = msg.sessions
		return m, nil

	case tickMsg:
		before := m.coord.Timer().CompletedSessions()
		if err := m.coord.Tick(m.ctx); err != nil {
			m.lastLog = "Tick failed: " + err.Error()
		}
		if m.coord.Timer().CompletedSessions() > before {
			m.lastLog = ui.IconBreak + " Session complete! Take a break."
			return m, tea.Batch(tickCmd(), m.loadCmd())
		}
		return m, tickCmd()

	case tickReminderMarker:
		return m, tea.Batch(remindCmd(), m.scanCmd())

	case remindMsg:
		if msg.err != nil {
			m.lastLog = "Reminder scan failed: " + msg.err.Error()
			return m, nil
		}
		if len(msg.fired) > 0 {
			m.lastLog = ui.IconBell + " Reminder: " + strings.Join(msg.fired, "; ")
			return m, m.loadCmd()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "s", " ":
			t := m.coord.Timer()
			if t.Running() {
				if err := m.coord.Pause(m.ctx); err != nil {
					m.lastLog = err.Error()
				} else {
					m.lastLog = "Paused."
				}
			} else {
				if err := m.coord.Start(m.ctx); err != nil {
					m.lastLog = err.Error()
				} else {
					m.lastLog = "Running. Stay focused."
				}
			}
			return m, nil
		case "r":
			if err := m.coord.Reset(m.ctx); err != nil {
				m.lastLog = err.Error()
			} else {
				m.lastLog = "Timer reset."
			}
			return m, nil
		case "m":
			if m.audioPlaying {
				_ = m.coord.PauseAudio(m.ctx)
				m.audioPlaying = false
				m.lastLog = ui.IconMusic + " Audio paused."
			} else {
				_ = m.coord.PlayAudio(m.ctx)
				m.audioPlaying = true
				m.lastLog = ui.IconMusic + " Audio playing."
			}
			return m, nil
		}
	}
	return m, nil
}

func (m focusModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	t := m.coord.Timer()

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconTarget, "Focus Mode"))
	b.WriteString("\n\n")

	modeLabel := ui.IconTimer + " Focus Time"
	if t.Mode() == session.ModeBreak {
		modeLabel = ui.IconBreak + " Break Time"
	}
	state := ui.Muted.Render("paused")
	if t.Running() {
		state = ui.Good.Render("running")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n\n", ui.H2.Render(modeLabel), state))

	b.WriteString(ui.Title.Render(formatClock(t.Remaining())))
	b.WriteString("\n")
	total := t.Duration()
	done := total - t.Remaining()
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	b.WriteString(m.bar.ViewAs(pct))
	b.WriteString("\n\n")

	b.WriteString(ui.LabelValue("Sessions", fmt.Sprintf("%d this run, %d total", t.CompletedSessions(), m.sessions)))
	b.WriteString("\n")
	b.WriteString(ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s)", ui.IconFlame, m.streak)))
	b.WriteString("\n\n")

	b.WriteString(ui.H2.Render("Today's Tasks"))
	b.WriteString("\n")
	if len(m.tasks) == 0 {
		b.WriteString(ui.Muted.Render("(no tasks for today)"))
		b.WriteString("\n")
	} else {
		for _, task := range m.tasks {
			mark := "○"
			if task.Completed {
				mark = "✓"
			}
			b.WriteString(fmt.Sprintf("%s %s\n", mark, task.Text))
		}
	}
	b.WriteString("\n")

	b.WriteString(ui.Muted.Render("s: start/pause  r: reset  m: audio  q: exit"))
	b.WriteString("\n")
	b.WriteString(m.lastLog)
	return ui.Panel.Render(b.String()) + "\n"
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
