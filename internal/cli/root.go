package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
	ExitConfigError  = 3
)

var rootCmd = &cobra.Command{
	Use:   "prreview",
	Short: "AI review of the newest open pull request",
	Long: "prreview fetches the most recently opened pull request of GITHUB_REPOSITORY, asks an LLM for " +
		"line-level corrections and posts them as a single inline review.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReview,
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command with the process arguments and returns an exit code.
func Run(ctx context.Context) int {
	return execute(ctx, os.Args[1:])
}

func execute(ctx context.Context, args []string) int {
	exitCode = ExitSuccess
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print prreview version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "prreview version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
