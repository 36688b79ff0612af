package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"timesheet/internal/api"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var query api.Query

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize visible tasks, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := ctx.principal()
			if err != nil {
				return err
			}
			return ctx.withService(func(service *api.TaskService) error {
				stats, err := service.Stats(cmd.Context(), principal, query)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Total hours: %.2f\n", stats.TotalHours)
				fmt.Fprintf(cmd.OutOrStdout(), "Pending tasks: %d\n", stats.PendingCount)
				if len(stats.TopTags) == 0 {
					return nil
				}
				out := renderTable(
					[]string{"Tag", "Count"},
					buildTagRows(stats.TopTags),
					[]columnAlignment{alignLeft, alignRight},
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

func buildTagRows(counts []api.TagCount) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, entry := range counts {
		rows = append(rows, []string{entry.Tag, strconv.Itoa(entry.Count)})
	}
	return rows
}
