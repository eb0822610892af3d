package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, streak and session stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Profile(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.ClassIcon(p.Avatar.Class), p.Avatar.Name))
			fmt.Fprintln(out, ui.LabelValue("Class", p.Avatar.Class))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d / %d to next level", p.XP, p.XPToNext)))
			fmt.Fprintf(out, "%s %s %d/%d\n", ui.Key.Render(ui.IconHeart+" HP:"), ui.HPBar(p.HP, p.MaxHP, 20), p.HP, p.MaxHP)
			fmt.Fprintln(out, ui.LabelValue("Gold", fmt.Sprintf("%s %d", ui.IconGold, p.Gold)))
			fmt.Fprintln(out, "")

			streak, err := svc.Store().Streak(ctx)
			if err != nil {
				return err
			}
			total, err := svc.Store().TotalSessions(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconTomato+" Focus"))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s)", ui.IconFlame, streak)))
			fmt.Fprintln(out, ui.LabelValue("Total sessions", total))
			fmt.Fprintln(out, "")

			last, err := svc.Store().LastCompleted(ctx)
			if err != nil {
				return err
			}
			if last != nil {
				when := ""
				if last.CompletedAt != nil {
					when = ui.Muted.Render(" (" + last.CompletedAt.Format("Jan 2 15:04") + ")")
				}
				fmt.Fprintln(out, ui.LabelValue("Last completed", last.Text+when))
			}

			acct, err := svc.Store().Account(ctx)
			if err != nil {
				return err
			}
			if acct != nil {
				who := acct.Name
				if acct.IsGuest {
					who += ui.Muted.Render(" (guest)")
				}
				fmt.Fprintln(out, ui.LabelValue("Signed in as", who))
			}
			return nil
		},
	}

	return cmd
}
