package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/workflow-tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of workflow-tui",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "workflow-tui version %s\n", strings.TrimSpace(workflowtui.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
