package root

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/srujankaleru2007/StudyHub/internal/engine"
	"github.com/srujankaleru2007/StudyHub/internal/storage"
	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [kind]",
		Short: "List tasks, sorted by priority and deadline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := svc.Tasks(ctx)
			if err != nil {
				return err
			}

			kinds := []engine.Kind{engine.KindHabit, engine.KindDaily, engine.KindTodo}
			if len(args) == 1 {
				k, err := engine.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []engine.Kind{k}
			}

			out := cmd.OutOrStdout()
			for _, kind := range kinds {
				var list []storage.Task
				var title string
				switch kind {
				case engine.KindHabit:
					list, title = c.Habits, "Habits"
				case engine.KindDaily:
					list, title = c.Dailies, "Dailies"
				default:
					list, title = c.Todos, "To-Dos"
				}

				fmt.Fprintln(out, ui.Heading(ui.KindIcon(string(kind)), fmt.Sprintf("%s (%d)", title, len(list))))
				if len(list) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(none)"))
					fmt.Fprintln(out, "")
					continue
				}
				for _, t := range engine.SortForDisplay(list) {
					printTask(out, kind, t)
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}

	return cmd
}

func printTask(out io.Writer, kind engine.Kind, t storage.Task) {
	mark := " "
	if kind != engine.KindHabit && t.Completed {
		mark = ui.Good.Render("✓")
	}
	line := fmt.Sprintf("%s #%d %s %s d%d", mark, t.ID, t.Text, ui.PriorityBadge(t.Priority), t.Difficulty)
	if t.Deadline != nil {
		badge := t.Deadline.Format("Jan 2 15:04")
		if t.Deadline.Before(time.Now()) && !t.Completed {
			line += " " + ui.Bad.Render(ui.IconWarn+" "+badge+" (overdue)")
		} else {
			line += " " + ui.Muted.Render(ui.IconDaily+" "+badge)
		}
	}
	if t.Reminder != nil {
		line += " " + ui.Muted.Render(ui.IconBell+" "+t.Reminder.Format("Jan 2 15:04"))
	}
	fmt.Fprintln(out, line)
}
