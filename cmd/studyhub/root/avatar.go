package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srujankaleru2007/StudyHub/internal/engine"
	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

func newAvatarCmd() *cobra.Command {
	var nameFlag string
	var classFlag string
	var colorFlag string

	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "Customize your avatar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.AvatarUpdate{}
			if cmd.Flags().Changed("name") {
				in.Name = &nameFlag
			}
			if cmd.Flags().Changed("class") {
				in.Class = &classFlag
			}
			if cmd.Flags().Changed("color") {
				in.Color = &colorFlag
			}

			p, err := svc.UpdateAvatar(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s the %s %s\n",
				ui.ClassIcon(p.Avatar.Class),
				ui.Title.Render(p.Avatar.Name),
				p.Avatar.Class,
				ui.Muted.Render("("+p.Avatar.Color+")"),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "Avatar name (max 20 chars)")
	cmd.Flags().StringVar(&classFlag, "class", "", "Class ("+strings.Join(engine.AvatarClasses, "|")+")")
	cmd.Flags().StringVar(&colorFlag, "color", "", "Avatar color (hex)")

	return cmd
}
