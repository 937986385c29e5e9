package cli

import (
	"errors"
	"strings"

	"clario/internal/model"
	"clario/internal/store"

	"github.com/spf13/cobra"
)

func newLeadsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Lead commands",
	}

	cmd.AddCommand(newLeadsListCmd(app))
	cmd.AddCommand(newLeadsAddCmd(app))
	cmd.AddCommand(newLeadsShowCmd(app))
	cmd.AddCommand(newLeadsSetStageCmd(app))
	cmd.AddCommand(newLeadsUpdateCmd(app))
	cmd.AddCommand(newLeadsRmCmd(app))

	return cmd
}

func parseStage(s string) (model.Stage, error) {
	st := model.Stage(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", errors.New("invalid stage (expected new|contacted|qualified|proposal|negotiation|won)")
	}
	return st, nil
}

func newLeadsListCmd(app *App) *cobra.Command {
	var stage string
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return err
			}
			leads := db.FilterLeads(query)
			if strings.TrimSpace(stage) != "" {
				st, err := parseStage(stage)
				if err != nil {
					return err
				}
				filtered := leads[:0]
				for _, l := range leads {
					if l.Stage == st {
						filtered = append(filtered, l)
					}
				}
				leads = filtered
			}
			return writeOut(cmd, app, leads)
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Only leads in this stage")
	cmd.Flags().StringVar(&query, "query", "", "Substring match against name, company, and tags")
	return cmd
}

func newLeadsAddCmd(app *App) *cobra.Command {
	var name, company, email, phone, stage, tags string
	var value float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" || strings.TrimSpace(company) == "" {
				return errors.New("missing --name or --company")
			}
			st := model.StageNew
			if strings.TrimSpace(stage) != "" {
				parsed, err := parseStage(stage)
				if err != nil {
					return err
				}
				st = parsed
			}
			if value < 0 {
				return errors.New("value must be non-negative")
			}

			db, s, err := loadDB(app)
			if err != nil {
				return err
			}
			lead, err := s.AddLead(db, model.Lead{
				Name:    strings.TrimSpace(name),
				Company: strings.TrimSpace(company),
				Value:   value,
				Stage:   st,
				Tags:    model.ParseTags(tags),
				Email:   strings.TrimSpace(email),
				Phone:   strings.TrimSpace(phone),
			})
			if err != nil {
				return err
			}
			return writeOut(cmd, app, lead)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Contact name (required)")
	cmd.Flags().StringVar(&company, "company", "", "Company (required)")
	cmd.Flags().Float64Var(&value, "value", 0, "Deal value")
	cmd.Flags().StringVar(&stage, "stage", "", "Pipeline stage (default: new)")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	return cmd
}

func newLeadsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <lead-id>",
		Short: "Show a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return err
			}
			l, ok := db.FindLead(strings.TrimSpace(args[0]))
			if !ok {
				return errNotFound("lead", args[0])
			}
			return writeOut(cmd, app, l)
		},
	}
}

func newLeadsSetStageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-stage <lead-id> <stage>",
		Short: "Move a lead to a pipeline stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseStage(args[1])
			if err != nil {
				return err
			}
			db, s, err := loadDB(app)
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			if _, ok := db.FindLead(id); !ok {
				return errNotFound("lead", id)
			}
			if err := s.UpdateLeadStage(db, id, st); err != nil {
				return err
			}
			l, _ := db.FindLead(id)
			return writeOut(cmd, app, l)
		},
	}
}

func newLeadsUpdateCmd(app *App) *cobra.Command {
	var name, company, email, phone, stage, tags string
	var value float64

	cmd := &cobra.Command{
		Use:   "update <lead-id>",
		Short: "Update lead fields (only changed flags are applied)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			if _, ok := db.FindLead(id); !ok {
				return errNotFound("lead", id)
			}

			var patch store.LeadPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("company") {
				patch.Company = &company
			}
			if cmd.Flags().Changed("value") {
				if value < 0 {
					return errors.New("value must be non-negative")
				}
				patch.Value = &value
			}
			if cmd.Flags().Changed("stage") {
				st, err := parseStage(stage)
				if err != nil {
					return err
				}
				patch.Stage = &st
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}
			if cmd.Flags().Changed("phone") {
				patch.Phone = &phone
			}
			if cmd.Flags().Changed("tags") {
				t := model.ParseTags(tags)
				patch.Tags = &t
			}

			if err := s.UpdateLead(db, id, patch); err != nil {
				return err
			}
			l, _ := db.FindLead(id)
			return writeOut(cmd, app, l)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Contact name")
	cmd.Flags().StringVar(&company, "company", "", "Company")
	cmd.Flags().Float64Var(&value, "value", 0, "Deal value")
	cmd.Flags().StringVar(&stage, "stage", "", "Pipeline stage")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags (replaces the set)")
	return cmd
}

func newLeadsRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <lead-id>",
		Short: "Delete a lead (tasks linking to it keep their cached name)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			if _, ok := db.FindLead(id); !ok {
				return errNotFound("lead", id)
			}
			if err := s.DeleteLead(db, id); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"deleted": id})
		},
	}
}
