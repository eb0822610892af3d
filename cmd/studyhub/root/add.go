package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srujankaleru2007/StudyHub/internal/engine"
	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

func newAddCmd() *cobra.Command {
	var kindFlag string
	var priorityFlag string
	var diff int
	var deadlineFlag string
	var remindFlag string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a habit, daily or to-do",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			kind, err := engine.ParseKind(kindFlag)
			if err != nil {
				return err
			}
			deadline, err := parseWhen(deadlineFlag)
			if err != nil {
				return err
			}
			reminder, err := parseWhen(remindFlag)
			if err != nil {
				return err
			}

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.AddTask(ctx, kind, engine.TaskInput{
				Text:       args[0],
				Priority:   engine.ParsePriority(priorityFlag),
				Difficulty: engine.Difficulty(diff),
				Deadline:   deadline,
				Reminder:   reminder,
			})
			if err != nil {
				return err
			}
			if t == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to add (empty text)."))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s #%d %s %s\n",
				ui.Good.Render("+"),
				ui.KindIcon(string(kind)),
				t.ID,
				t.Text,
				ui.PriorityBadge(t.Priority),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "todo", "Task kind (habit|daily|todo)")
	cmd.Flags().StringVarP(&priorityFlag, "priority", "p", "medium", "Priority (low|medium|high)")
	cmd.Flags().IntVarP(&diff, "diff", "d", 1, "Difficulty (1-3)")
	cmd.Flags().StringVar(&deadlineFlag, "deadline", "", "Deadline (2006-01-02 15:04)")
	cmd.Flags().StringVar(&remindFlag, "remind", "", "Reminder time (2006-01-02 15:04)")

	return cmd
}
