package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srujankaleru2007/StudyHub/internal/storage"
	"github.com/srujankaleru2007/StudyHub/internal/ui"
)

func newLoginCmd() *cobra.Command {
	var nameFlag string
	var emailFlag string
	var guestFlag bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Record who is using this device",
		Long:  "Stores the account record for display. Credentials are never checked; identity comes from an external authenticator or guest mode.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			acct := storage.Account{Name: nameFlag, Email: emailFlag, IsGuest: guestFlag}
			if guestFlag {
				acct = storage.Account{Name: "Guest", IsGuest: true}
			} else {
				if acct.Name == "" && acct.Email != "" {
					acct.Name = strings.SplitN(acct.Email, "@", 2)[0]
				}
				if acct.Name == "" {
					return errors.New("either --name/--email or --guest is required")
				}
			}

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Login(ctx, acct); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Welcome, %s!\n", ui.Good.Render("✓"), acct.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "Display name")
	cmd.Flags().StringVar(&emailFlag, "email", "", "Email address")
	cmd.Flags().BoolVar(&guestFlag, "guest", false, "Continue as guest")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored account record",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Logged out."))
			return nil
		},
	}

	return cmd
}
