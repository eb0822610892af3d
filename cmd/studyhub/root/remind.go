package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/srujankaleru2007/StudyHub/internal/notify"
	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

func newRemindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print due reminders and mark them as shown",
		Long:  "Scans to-dos for due reminders and prints each one. A reminder fires at most once; suitable for a cron job or shell prompt hook.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fired, err := svc.ScanReminders(ctx, time.Now(), notify.NewWriter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			if len(fired) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No reminders due."))
			}
			return nil
		},
	}

	return cmd
}
