package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/workflow-tui/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a workflow for consistency",
	Long:  `Loads the workflow and reports structural errors: missing nodes, broken edges, invalid fields or unreachable nodes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ValidateFile(cmd.Context(), args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
