package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"timesheet/internal/workflow"
)

func newApproveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <task-id>",
		Short: "Approve a pending task (manager only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := ctx.principal()
			if err != nil {
				return err
			}
			return ctx.withEngine(func(engine *workflow.Engine) error {
				task, err := engine.Decide(principalContext(cmd, principal), principal, args[0], workflow.ActionApprove, "")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s approved.\n", task.ID)
				return nil
			})
		},
	}
}

func newRejectCommand(ctx *commandContext) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "reject <task-id>",
		Short: "Reject a pending task (manager only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := ctx.principal()
			if err != nil {
				return err
			}
			return ctx.withEngine(func(engine *workflow.Engine) error {
				task, err := engine.Decide(principalContext(cmd, principal), principal, args[0], workflow.ActionReject, comment)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s rejected.\n", task.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "Reason shown to the task owner")

	return cmd
}
