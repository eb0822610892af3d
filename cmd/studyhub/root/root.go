package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "studyhub",
	Short:         "StudyHub — gamified task manager with focus sessions",
	Long:          "StudyHub is a local-first productivity app: habits, dailies and to-dos feed an RPG-style profile, and Pomodoro focus sessions build a daily streak.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newDoCmd(),
		newMissCmd(),
		newFailCmd(),
		newRmCmd(),
		newListCmd(),
		newResetDailiesCmd(),
		newRemindCmd(),
		newStatusCmd(),
		newAvatarCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newFocusCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
