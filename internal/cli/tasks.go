package cli

import (
	"errors"
	"strings"
	"time"

	"clario/internal/model"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}

	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksToggleCmd(app))
	cmd.AddCommand(newTasksRmCmd(app))

	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var openOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return err
			}
			tasks := db.Tasks
			if openOnly {
				filtered := make([]model.Task, 0, len(tasks))
				for _, t := range tasks {
					if !t.Completed {
						filtered = append(filtered, t)
					}
				}
				tasks = filtered
			}
			return writeOut(cmd, app, tasks)
		},
	}

	cmd.Flags().BoolVar(&openOnly, "open", false, "Only tasks not yet completed")
	return cmd
}

func newTasksAddCmd(app *App) *cobra.Command {
	var title, due, leadID string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(title) == "" {
				return errors.New("missing --title")
			}
			dueDate := strings.TrimSpace(due)
			if dueDate == "" {
				dueDate = time.Now().Format("2006-01-02")
			} else if _, err := time.Parse("2006-01-02", dueDate); err != nil {
				return errors.New("invalid --due (expected YYYY-MM-DD)")
			}

			db, s, err := loadDB(app)
			if err != nil {
				return err
			}

			task := model.Task{Title: strings.TrimSpace(title), DueDate: dueDate}
			if id := strings.TrimSpace(leadID); id != "" {
				l, ok := db.FindLead(id)
				if !ok {
					return errNotFound("lead", id)
				}
				task.LeadID = l.ID
				task.LeadName = l.Name
			}

			created, err := s.AddTask(db, task)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, created)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&due, "due", "", "Due date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&leadID, "lead", "", "Link to a lead by id")
	return cmd
}

func newTasksToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Flip a task's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			if _, ok := db.FindTask(id); !ok {
				return errNotFound("task", id)
			}
			if err := s.ToggleTask(db, id); err != nil {
				return err
			}
			t, _ := db.FindTask(id)
			return writeOut(cmd, app, t)
		},
	}
}

func newTasksRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			if _, ok := db.FindTask(id); !ok {
				return errNotFound("task", id)
			}
			if err := s.DeleteTask(db, id); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"deleted": id})
		},
	}
}
