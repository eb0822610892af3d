package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srujankaleru2007/StudyHub/internal/engine"
	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

func newEditCmd() *cobra.Command {
	var textFlag string
	var priorityFlag string
	var diff int
	var deadlineFlag string
	var remindFlag string
	var clearDeadline bool
	var clearRemind bool

	cmd := &cobra.Command{
		Use:   "edit <kind> <id>",
		Short: "Edit a task's fields",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("kind and id are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			kind, err := engine.ParseKind(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
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

			// Omitted flags keep the task's current values.
			in := engine.TaskInput{Text: textFlag}
			if priorityFlag != "" {
				in.Priority = engine.ParsePriority(priorityFlag)
			}
			if diff != 0 {
				in.Difficulty = engine.Difficulty(diff)
			}
			if cmd.Flags().Changed("deadline") || clearDeadline {
				in.SetDeadline = true
				if !clearDeadline {
					in.Deadline = deadline
				}
			}
			if cmd.Flags().Changed("remind") || clearRemind {
				in.SetReminder = true
				if !clearRemind {
					in.Reminder = reminder
				}
			}

			t, err := svc.UpdateTask(ctx, kind, id, in)
			if err != nil {
				return err
			}
			if t == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing updated."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %s #%d %s\n",
				ui.Good.Render("✓"), ui.KindIcon(string(kind)), t.ID, t.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&textFlag, "text", "t", "", "New task text (required)")
	cmd.Flags().StringVarP(&priorityFlag, "priority", "p", "", "Priority (low|medium|high)")
	cmd.Flags().IntVarP(&diff, "diff", "d", 0, "Difficulty (1-3)")
	cmd.Flags().StringVar(&deadlineFlag, "deadline", "", "Deadline (2006-01-02 15:04)")
	cmd.Flags().StringVar(&remindFlag, "remind", "", "Reminder time (2006-01-02 15:04)")
	cmd.Flags().BoolVar(&clearDeadline, "clear-deadline", false, "Remove the deadline")
	cmd.Flags().BoolVar(&clearRemind, "clear-remind", false, "Remove the reminder")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
