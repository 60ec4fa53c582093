package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dshills/prreview/internal/config"
	"github.com/dshills/prreview/internal/github"
	"github.com/dshills/prreview/internal/logging"
	"github.com/dshills/prreview/internal/output"
	"github.com/dshills/prreview/internal/pipeline"
	"github.com/dshills/prreview/internal/providers"
)

var (
	flagEnvFile  string
	flagLogLevel string
	flagDryRun   bool
	flagFormat   string
	flagOut      string
)

func runReview(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger(cmd.ErrOrStderr(), logging.ParseLevel(flagLogLevel))

	if flagDryRun {
		if _, err := output.GetWriter(flagFormat); err != nil {
			logger.Error("invalid flag", "flag", "format", "error", err)
			exitCode = ExitUsageError
			return nil
		}
	}

	cfg, err := config.Load(config.Options{EnvFile: flagEnvFile})
	if err != nil {
		logger.Error("configuration error", "error", err)
		exitCode = ExitConfigError
		return nil
	}
	if flagLogLevel == "" {
		logger = logging.NewLogger(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel))
	}

	ghClient, err := github.NewClient(cfg.GitHubToken, cfg.GitHubAPIURL)
	if err != nil {
		logger.Error("configuration error", "error", err)
		exitCode = ExitConfigError
		return nil
	}
	model, err := providers.NewOpenAI(cfg.OpenAIAPIKey, cfg.Model, cfg.OpenAIBaseURL)
	if err != nil {
		logger.Error("configuration error", "error", err)
		exitCode = ExitConfigError
		return nil
	}

	runner := pipeline.New(ghClient, model, logger, pipeline.Options{
		Repository:    cfg.Repository,
		Temperature:   cfg.Temperature,
		RedactSecrets: cfg.RedactSecrets,
		RedactPaths:   cfg.RedactPaths,
		DryRun:        flagDryRun,
	})

	outcome, err := runner.Run(cmd.Context())
	if err != nil {
		logFatal(logger, err)
		exitCode = ExitRuntimeError
		return nil
	}

	if flagDryRun && outcome.Err == nil {
		preview := output.NewPreview(cfg.Repository, outcome.PullRequest, outcome.Comments)
		preview.Files = outcome.Files
		preview.PromptBytes = outcome.PromptBytes
		if err := writePreview(cmd, preview); err != nil {
			logger.Error("writing output", "error", err)
			exitCode = ExitRuntimeError
		}
	}
	return nil
}

func logFatal(logger *slog.Logger, err error) {
	var notFound *github.NotFoundError
	var reqErr *github.RequestError
	switch {
	case errors.As(err, &notFound):
		logger.Error("nothing to review", "error", err)
	case errors.As(err, &reqErr) && reqErr.StatusCode != 0:
		logger.Error("GitHub request failed", "status", reqErr.StatusCode, "error", err)
	default:
		logger.Error("review run failed", "error", err)
	}
}

func writePreview(cmd *cobra.Command, p *output.Preview) error {
	if flagOut != "" {
		return output.WritePreview(p, flagFormat, flagOut)
	}
	w, err := output.GetWriter(flagFormat)
	if err != nil {
		return err
	}
	return w.Write(cmd.OutOrStdout(), p)
}

func init() {
	rootCmd.Flags().StringVar(&flagEnvFile, "env-file", "", "Env file to load (default .env when present)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Ask for the review but print it instead of posting")
	rootCmd.Flags().StringVar(&flagFormat, "format", "text", "Dry-run output format (text, json, yaml, markdown)")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "Dry-run output file path (default: stdout)")
}
