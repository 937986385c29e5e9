package cli

import (
	"os"
	"strings"

	"clario/internal/format"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all four slices as YAML (backup/inspection)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if p := strings.TrimSpace(out); p != "" {
				f, err := os.Create(p)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return format.WriteYAML(w, db)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to a file instead of stdout")
	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Store summary (counts, plan, profile)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return err
			}
			m := db.Metrics()
			return writeOut(cmd, app, map[string]any{
				"dir":            s.Dir,
				"leads":          len(db.Leads),
				"tasks":          len(db.Tasks),
				"openTasks":      m.OpenTasks,
				"pipelineValue":  m.TotalPipelineValue,
				"conversionRate": m.ConversionRate,
				"plan":           db.Plan,
				"profileEmail":   db.Profile.Email,
			})
		},
	}
}
