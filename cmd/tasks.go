/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/organizer/internal/ui"
	"github.com/josephgoksu/organizer/models"
	"github.com/josephgoksu/organizer/store"
	"github.com/spf13/cobra"
)

// tasksCmd represents the tasks command
var tasksCmd = &cobra.Command{
	Use:     "tasks",
	Aliases: []string{"task", "t"},
	Short:   "Manage your tasks",
	Long: `Add, list, complete, edit and delete tasks.

Examples:
  organizer tasks add "Pay rent" --priority High --due 01-11-2026
  organizer tasks list --pending
  organizer tasks done 3`,
}

func taskFileStore() (*store.FileStore[*models.Task], error) {
	s, err := GetTaskStore()
	if err != nil {
		return nil, err
	}
	return s.FileStore, nil
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		priority, _ := cmd.Flags().GetString("priority")
		due, _ := cmd.Flags().GetString("due")

		s, err := GetTaskStore()
		if err != nil {
			return err
		}
		task, err := s.Add(args[0], description, priority, due)
		if err != nil {
			return err
		}
		return printDone(cmd.OutOrStdout(), task, "Added task %d: %s", task.ID, ui.Truncate(task.Title, 60))
	},
}

var tasksListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your tasks",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pending, _ := cmd.Flags().GetBool("pending")

		s, err := GetTaskStore()
		if err != nil {
			return err
		}
		tasks := []*models.Task{}
		for task, err := range s.List() {
			if err != nil {
				return err
			}
			if pending && task.Done {
				continue
			}
			tasks = append(tasks, task)
		}
		return printRecords(cmd.OutOrStdout(), "tasks", tasks, ui.TaskTable)
	},
}

var tasksDoneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"complete", "finish"},
	Short:   "Mark a task as done",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		s, err := GetTaskStore()
		if err != nil {
			return err
		}
		task, err := s.MarkDone(id)
		if reportNotFound(cmd, err, "task", id) {
			return nil
		}
		if err != nil {
			return err
		}
		return printDone(cmd.OutOrStdout(), task, "Task %d marked as done.", task.ID)
	},
}

var tasksEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a task's fields",
	Long:  `Change the title, description, priority or due date of a task. Only the flags you pass are changed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		edit := store.TaskEdit{
			Title:       optionalString(cmd, "title"),
			Description: optionalString(cmd, "description"),
			Priority:    optionalString(cmd, "priority"),
			DueDate:     optionalString(cmd, "due"),
		}
		if edit == (store.TaskEdit{}) {
			return fmt.Errorf("nothing to change: pass at least one of --title, --description, --priority or --due")
		}

		s, err := GetTaskStore()
		if err != nil {
			return err
		}
		task, err := s.Edit(id, edit)
		if reportNotFound(cmd, err, "task", id) {
			return nil
		}
		if err != nil {
			return err
		}
		return printDone(cmd.OutOrStdout(), task, "Updated task %d.", task.ID)
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)

	tasksAddCmd.Flags().StringP("description", "d", "", "task description")
	tasksAddCmd.Flags().StringP("priority", "p", string(models.PriorityMedium), "priority: High, Medium or Low")
	tasksAddCmd.Flags().String("due", "", "due date (DD-MM-YYYY)")

	tasksListCmd.Flags().Bool("pending", false, "only show tasks that are not done")

	tasksEditCmd.Flags().String("title", "", "new title")
	tasksEditCmd.Flags().StringP("description", "d", "", "new description")
	tasksEditCmd.Flags().StringP("priority", "p", "", "new priority: High, Medium or Low")
	tasksEditCmd.Flags().String("due", "", "new due date (DD-MM-YYYY)")

	tasksCmd.AddCommand(
		tasksAddCmd,
		tasksListCmd,
		newShowCmd("tasks", taskFileStore, ui.TaskDetails),
		tasksDoneCmd,
		tasksEditCmd,
		newDeleteCmd("tasks", taskFileStore),
		newExportCmd("tasks", taskFileStore),
		newImportCmd("tasks", taskFileStore),
	)
}
