package cli

import (
	"errors"
	"strings"

	"clario/internal/store"

	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "User profile commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, db.Profile)
		},
	})

	cmd.AddCommand(newProfileSetCmd(app))
	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, email, theme string
	var notifyEmail, notifyPush bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields (only changed flags are applied)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return err
			}

			var patch store.ProfilePatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}
			if cmd.Flags().Changed("theme") {
				t := strings.ToLower(strings.TrimSpace(theme))
				if t != "light" && t != "dark" {
					return errors.New("invalid theme (expected light|dark)")
				}
				patch.Theme = &t
			}
			// The profile merge is shallow: build the full notifications pair
			// from the current values so one toggle doesn't drop the other.
			if cmd.Flags().Changed("notify-email") || cmd.Flags().Changed("notify-push") {
				n := db.Profile.Notifications
				if cmd.Flags().Changed("notify-email") {
					n.Email = notifyEmail
				}
				if cmd.Flags().Changed("notify-push") {
					n.Push = notifyPush
				}
				patch.Notifications = &n
			}

			if err := s.UpdateProfile(db, patch); err != nil {
				return err
			}
			return writeOut(cmd, app, db.Profile)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&theme, "theme", "", "Theme (light|dark; only light is functional)")
	cmd.Flags().BoolVar(&notifyEmail, "notify-email", false, "Email notifications on/off")
	cmd.Flags().BoolVar(&notifyPush, "notify-push", false, "Push notifications on/off")
	return cmd
}
