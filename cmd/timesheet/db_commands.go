package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"timesheet/internal/tasks"
)

func newDBCommand(ctx *commandContext) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Task database utilities",
	}

	dbCmd.AddCommand(newDBHealthCommand(ctx))

	return dbCmd
}

func newDBHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the task database for problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *tasks.Store) error {
				health, err := store.CheckHealth(cmd.Context())
				if err != nil {
					return err
				}
				out := renderTable(
					[]string{"Check", "Result"},
					buildHealthRows(health),
					[]columnAlignment{alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				if health.Error != "" {
					return fmt.Errorf("database unhealthy: %s", health.Error)
				}
				return nil
			})
		},
	}
}

func buildHealthRows(health tasks.DatabaseHealth) [][]string {
	rows := [][]string{
		{"Path", health.DBPath},
		{"Exists", strconv.FormatBool(health.DatabaseExists)},
		{"Readable", strconv.FormatBool(health.DatabaseReadable)},
		{"Table present", strconv.FormatBool(health.TableExists)},
		{"Integrity", strconv.FormatBool(health.IntegrityCheck)},
		{"Tasks", strconv.Itoa(health.TotalTasks)},
	}
	if len(health.MissingColumns) > 0 {
		rows = append(rows, []string{"Missing columns", strings.Join(health.MissingColumns, ", ")})
	}
	if health.Error != "" {
		rows = append(rows, []string{"Error", health.Error})
	}
	return rows
}
