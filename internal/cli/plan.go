package cli

import (
	"errors"
	"strings"

	"clario/internal/model"

	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Subscription plan commands (local label only, no billing)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"plan": db.Plan})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <starter|pro|business>",
		Short: "Switch plans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := parsePlan(args[0])
			if err != nil {
				return err
			}
			db, s, err := loadDB(app)
			if err != nil {
				return err
			}
			if err := s.UpdatePlan(db, plan); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"plan": db.Plan})
		},
	})

	return cmd
}

func parsePlan(s string) (model.Plan, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "starter":
		return model.PlanStarter, nil
	case "pro":
		return model.PlanPro, nil
	case "business":
		return model.PlanBusiness, nil
	default:
		return "", errors.New("invalid plan (expected starter|pro|business)")
	}
}
