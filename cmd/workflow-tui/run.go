package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/workflow-tui/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run an interactive session of a workflow",
	Long: `Loads the workflow file, validates it with the default engine and asks each node's
fields on stdin. Type "back" at any prompt to return to the previous step.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkflow,
}

func init() {
	rootCmd.AddCommand(runCmd)

	for _, cmd := range []*cobra.Command{runCmd, rootCmd} {
		cmd.Flags().StringP("output", "o", "", `Write collected data as JSON to a file ("-" for stdout)`)
		cmd.Flags().String("metrics-file", "", "Write session metrics in Prometheus text format")
		cmd.Flags().Bool("trace", false, "Record OpenTelemetry spans (logged at debug level)")
		cmd.Flags().Bool("no-banner", false, "Do not print the banner")
		cmd.Flags().Bool("markdown", false, "Render descriptions as markdown")
		cmd.Flags().String("context", "", "Initial data as a JSON object (values become defaults)")
		cmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
		cmd.Flags().String("results-dir", "", "Archive each completed session in this directory")
	}

	// The root command runs a workflow when given a file.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runWorkflow(cmd, args)
	}
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := cli.RunOptions{
		Path:        args[0],
		Debug:       boolFlag(cmd, "debug", cfg.Debug),
		NoColor:     boolFlag(cmd, "no-color", cfg.NoColor),
		LogFormat:   stringFlag(cmd, "log-format", cfg.LogFormat),
		MetricsFile: stringFlag(cmd, "metrics-file", cfg.MetricsFile),
		ResultsDir:  stringFlag(cmd, "results-dir", cfg.ResultsDir),
	}
	opts.Output, _ = cmd.Flags().GetString("output")
	opts.Trace, _ = cmd.Flags().GetBool("trace")
	opts.NoBanner, _ = cmd.Flags().GetBool("no-banner")
	opts.Markdown, _ = cmd.Flags().GetBool("markdown")
	opts.Context, _ = cmd.Flags().GetString("context")
	opts.JSON, _ = cmd.Flags().GetBool("json")

	return cli.RunSession(cmd.Context(), opts)
}
