package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/workflow-tui/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "workflow-tui [file]",
	Short: "workflow-tui runs question workflows in the terminal",
	Long: `workflow-tui loads a workflow definition (JSON or YAML), asks each question node's
fields with local validation, supports going "back" at any prompt, and prints the
collected data when an end node is reached.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colors and styling")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
	rootCmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "Optional .env file with WORKFLOW_TUI_* settings")
}

// loadConfig reads the .env file and the environment. Flags are applied on top by each command.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	return config.Load(envFile)
}

// boolFlag returns the flag value when it was set explicitly, otherwise fallback.
func boolFlag(cmd *cobra.Command, name string, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}
	return fallback
}

// stringFlag returns the flag value when it was set explicitly or fallback is empty.
func stringFlag(cmd *cobra.Command, name string, fallback string) string {
	v, _ := cmd.Flags().GetString(name)
	if cmd.Flags().Changed(name) || fallback == "" {
		return v
	}
	return fallback
}

// exitWithError prints err in red on stderr and exits with status 1.
func exitWithError(err error) {
	out := termenv.NewOutput(os.Stderr)
	msg := fmt.Sprintf("Error: %v", err)
	fmt.Fprintln(os.Stderr, out.String(msg).Foreground(out.Color("#ef4444")))
	os.Exit(1)
}
