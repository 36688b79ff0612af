package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"timesheet/internal/api"
	"timesheet/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		query      api.Query
		formatFlag string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export visible tasks and their stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := ctx.principal()
			if err != nil {
				return err
			}
			format, ok := export.ParseFormat(formatFlag)
			if !ok {
				return fmt.Errorf("unknown export format %q; use yaml or json", formatFlag)
			}

			return ctx.withService(func(service *api.TaskService) error {
				result, err := service.List(cmd.Context(), principal, query)
				if err != nil {
					return err
				}
				stats, err := service.Stats(cmd.Context(), principal, query)
				if err != nil {
					return err
				}
				doc := export.NewDocument(result.Tasks, stats)

				if strings.TrimSpace(outputPath) == "" {
					return export.Write(cmd.OutOrStdout(), doc, format)
				}

				file, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				if err := export.Write(file, doc, format); err != nil {
					file.Close()
					return err
				}
				if err := file.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", len(result.Tasks), outputPath)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "yaml", "Export format: yaml or json")
	cmd.Flags().StringVar(&outputPath, "output", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&query.Date, "date", "", "Only tasks on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&query.EmployeeID, "employee", "", "Only tasks owned by this employee id")
	cmd.Flags().StringVar(&query.Tags, "tags", "", "Only tasks whose tags contain this text")
	cmd.Flags().StringVar(&query.Status, "status", "", "Only tasks with this status (pending, approved, rejected)")

	return cmd
}
