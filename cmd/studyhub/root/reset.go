package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

func newResetDailiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-dailies",
		Short: "Clear every daily's check for a new day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ResetDailies(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDaily+" Dailies reset."))
			return nil
		},
	}

	return cmd
}
