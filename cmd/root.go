package cmd

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samsaffron/gemini-search/internal/exitcode"
	"github.com/spf13/cobra"
)

var verbosity int

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
}

var rootCmd = &cobra.Command{
	Use:   "gemini-search",
	Short: "Query Gemini with Google Search grounding",
	Long: `gemini-search connects Gemini to real-time web content, providing
up-to-date answers with verifiable sources.

Environment Variables:
  GEMINI_API_KEY    Required API key for Gemini authentication

Examples:
  gemini-search query "Who won euro 2024?"
  gemini-search query "Latest AI news" --add-citations
  echo "Climate change updates" | gemini-search query --stdin`,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbosity)
	},
}

func setupLogging(verbosity int) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr exitcode.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		if errors.Is(err, context.Canceled) {
			os.Exit(exitcode.Cancelled)
		}
		os.Exit(exitcode.Error)
	}
}
