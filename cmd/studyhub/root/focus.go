package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/srujankaleru2007/StudyHub/internal/audio"
	"github.com/srujankaleru2007/StudyHub/internal/session"
	"github.com/srujankaleru2007/StudyHub/internal/tui"
)

func newFocusCmd() *cobra.Command {
	var workMin int
	var breakMin int
	var noAudio bool

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Enter focus mode (Pomodoro timer, audio, today's tasks)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			work := cfg.WorkDuration()
			brk := cfg.BreakDuration()
			if workMin > 0 {
				work = time.Duration(workMin) * time.Minute
			}
			if breakMin > 0 {
				brk = time.Duration(breakMin) * time.Minute
			}

			var player audio.Player = audio.Nop{}
			if cfg.AudioCommand != "" && !noAudio {
				player = audio.NewCmd(cfg.AudioCommand)
			}

			timer := session.NewTimer(work, brk)
			coord := session.NewCoordinator(timer, player, svc.Store())
			coord.SetAutoplay(cfg.Autoplay && !noAudio)

			return tui.RunFocus(ctx, svc, coord, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&workMin, "work", 0, "Work interval in minutes (overrides config)")
	cmd.Flags().IntVar(&breakMin, "break", 0, "Break interval in minutes (overrides config)")
	cmd.Flags().BoolVar(&noAudio, "no-audio", false, "Disable ambient audio")

	return cmd
}
