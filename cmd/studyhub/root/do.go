package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srujankaleru2007/StudyHub/internal/engine"
	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <kind> <id>",
		Short: "Complete a task",
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

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Complete(ctx, kind, id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res == nil {
				fmt.Fprintln(out, ui.Muted.Render("Nothing to complete."))
				return nil
			}

			fmt.Fprintf(out, "%s %s %s %s\n",
				ui.Good.Render("✓ Done"),
				ui.KindIcon(string(kind)),
				res.Task.Text,
				ui.Muted.Render(fmt.Sprintf("(+%d XP, +%d gold)", res.XPAwarded, res.GoldAwarded)),
			)
			if res.Removed {
				fmt.Fprintln(out, ui.Muted.Render("To-do cleared from the list."))
			}
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s Level %d → %d\n", ui.BadgeLevelUp, ui.IconSparkle, res.LevelBefore, res.LevelAfter)
			}
			return nil
		},
	}

	return cmd
}
