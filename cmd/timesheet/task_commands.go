package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"timesheet/internal/tasks"
	"timesheet/internal/workflow"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var (
		title       string
		description string
		tags        string
		hoursValue  string
		dateValue   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a new task entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := ctx.principal()
			if err != nil {
				return err
			}

			hours, err := tasks.ParseHours(hoursValue)
			if err != nil {
				return err
			}
			date := tasks.Today()
			if strings.TrimSpace(dateValue) != "" {
				date, err = tasks.ParseDate(dateValue)
				if err != nil {
					return err
				}
			}

			return ctx.withEngine(func(engine *workflow.Engine) error {
				task, err := engine.Create(principalContext(cmd, principal), principal, workflow.Draft{
					Title:       title,
					Description: description,
					Tags:        tags,
					Hours:       hours,
					Date:        date,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Task created successfully.")
				fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", task.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&description, "desc", "", "Task description")
	cmd.Flags().StringVar(&tags, "tags", "", "Free-form tags, comma separated")
	cmd.Flags().StringVar(&hoursValue, "hours", "", "Hours spent, up to two decimals (required)")
	cmd.Flags().StringVar(&dateValue, "date", "", "Task date as YYYY-MM-DD (defaults to today)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var (
		title       string
		description string
		tags        string
		hoursValue  string
		dateValue   string
	)

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Edit one of your task entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := ctx.principal()
			if err != nil {
				return err
			}

			var patch workflow.Patch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("desc") {
				patch.Description = &description
			}
			if flags.Changed("tags") {
				patch.Tags = &tags
			}
			if flags.Changed("hours") {
				hours, err := tasks.ParseHours(hoursValue)
				if err != nil {
					return err
				}
				patch.Hours = &hours
			}
			if flags.Changed("date") {
				date, err := tasks.ParseDate(dateValue)
				if err != nil {
					return err
				}
				patch.Date = &date
			}

			return ctx.withEngine(func(engine *workflow.Engine) error {
				task, err := engine.Update(principalContext(cmd, principal), principal, args[0], patch)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Task updated successfully.")
				fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", statusLabel(task.Status))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New task title")
	cmd.Flags().StringVar(&description, "desc", "", "New task description")
	cmd.Flags().StringVar(&tags, "tags", "", "New tags, comma separated")
	cmd.Flags().StringVar(&hoursValue, "hours", "", "New hours spent")
	cmd.Flags().StringVar(&dateValue, "date", "", "New task date as YYYY-MM-DD")

	return cmd
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete one of your task entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := ctx.principal()
			if err != nil {
				return err
			}
			return ctx.withEngine(func(engine *workflow.Engine) error {
				if err := engine.Delete(principalContext(cmd, principal), principal, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Task deleted successfully.")
				return nil
			})
		},
	}
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a single task entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := ctx.principal()
			if err != nil {
				return err
			}
			return ctx.withEngine(func(engine *workflow.Engine) error {
				task, err := engine.Get(principalContext(cmd, principal), principal, args[0])
				if err != nil {
					return err
				}
				rows := buildTaskDetailRows(task)
				out := renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}

func buildTaskDetailRows(task *tasks.Task) [][]string {
	rows := [][]string{
		{"ID", task.ID},
		{"Employee", task.EmployeeID},
		{"Title", task.Title},
		{"Description", task.Description},
		{"Tags", task.Tags},
		{"Hours", task.Hours.String()},
		{"Date", string(task.Date)},
		{"Status", statusLabel(task.Status)},
	}
	if task.ManagerComment != "" {
		rows = append(rows, []string{"Manager comment", task.ManagerComment})
	}
	rows = append(rows,
		[]string{"Created", task.CreatedAt.Format("2006-01-02 15:04:05")},
		[]string{"Updated", task.UpdatedAt.Format("2006-01-02 15:04:05")},
	)
	return rows
}
