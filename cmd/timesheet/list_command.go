package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"timesheet/internal/api"
	"timesheet/internal/tasks"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var query api.Query

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visible tasks, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := ctx.principal()
			if err != nil {
				return err
			}
			return ctx.withService(func(service *api.TaskService) error {
				result, err := service.List(cmd.Context(), principal, query)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Detail)
				if len(result.Tasks) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
					return nil
				}
				out := renderTable(
					[]string{"ID", "Employee", "Date", "Hours", "Status", "Title", "Tags"},
					buildTaskRows(result.Tasks),
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&query.Date, "date", "", "Only tasks on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&query.EmployeeID, "employee", "", "Only tasks owned by this employee id")
	cmd.Flags().StringVar(&query.Tags, "tags", "", "Only tasks whose tags contain this text")
	cmd.Flags().StringVar(&query.Status, "status", "", "Only tasks with this status (pending, approved, rejected)")

	return cmd
}

func buildTaskRows(list []api.Task) [][]string {
	rows := make([][]string, 0, len(list))
	for _, task := range list {
		status := task.Status
		if parsed, ok := tasks.ParseStatus(task.Status); ok {
			status = statusLabel(parsed)
		}
		rows = append(rows, []string{
			task.ID,
			task.EmployeeID,
			task.Date,
			task.Hours,
			status,
			task.Title,
			task.Tags,
		})
	}
	return rows
}
