package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/workflow-tui/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the workflow graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the workflow. With --session, the path
taken by an archived session is highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		sessionID, _ := cmd.Flags().GetString("session")
		return cli.GraphFile(cmd.Context(), cli.GraphOptions{
			Path:       args[0],
			ResultsDir: stringFlag(cmd, "results-dir", cfg.ResultsDir),
			SessionID:  sessionID,
		}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("session", "", "Archived session id to overlay")
	graphCmd.Flags().String("results-dir", "", "Directory of archived sessions")
}
