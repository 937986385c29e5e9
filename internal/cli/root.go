package cli

import (
	"os"
	"strings"

	"clario/internal/format"
	"clario/internal/store"
	"clario/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "clario",
		Short:        "Clario local-first CRM (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  clario

  # Scriptable commands
  clario leads list
  clario leads set-stage lead-1b9d6bcd won
  clario export --out backup.yaml
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("CLARIO_DIR", ""), "Path to store dir (default: ~/.clario)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("CLARIO_FORMAT", "json"), "Output format (json|yaml)")

	cmd.AddCommand(newLeadsCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newPlanCmd(app))
	cmd.AddCommand(newProfileCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newStatusCmd(app))

	return cmd
}

func runTUI(app *App) error {
	db, s, err := loadDB(app)
	if err != nil {
		return err
	}
	return tui.Run(s, db)
}

func loadDB(app *App) (*store.DB, store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return nil, store.Store{}, err
		}
		dir = d
	}
	s := store.Store{Dir: dir}
	db, err := s.Load()
	if err != nil {
		return nil, store.Store{}, err
	}
	return db, s, nil
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
