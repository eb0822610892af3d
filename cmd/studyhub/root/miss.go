package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

func newMissCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "miss <id>",
		Short: "Record missing a habit (costs a little HP)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.MissHabit(ctx, id)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such habit."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Habit missed. HP %d/%d\n",
				ui.Bad.Render("−"), p.HP, p.MaxHP)
			return nil
		},
	}

	return cmd
}
