package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samsaffron/gemini-search/internal/config"
	"github.com/samsaffron/gemini-search/internal/gemini"
	"github.com/samsaffron/gemini-search/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	queryStdin        bool
	queryAddCitations bool
	queryPro          bool
	queryText         bool
)

var queryCmd = &cobra.Command{
	Use:   "query [PROMPT]",
	Short: "Query Gemini with Google Search grounding",
	Long: `Query Gemini with Google Search grounding for real-time web information.

Examples:
  gemini-search query "Who won euro 2024?"
  gemini-search query "Who won euro 2024?" --add-citations
  echo "Who won euro 2024?" | gemini-search query --stdin
  gemini-search query "Latest AI developments" --pro --text

Output is JSON by default:
  {"response_text": "...", "citations": [{"index": 1, "uri": "...", "title": "..."}]}

With -vv or above the JSON also includes a grounding_metadata object. Use
--text for markdown output with a trailing citation list instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVarP(&queryStdin, "stdin", "s", false, "Read prompt from stdin (overrides PROMPT argument)")
	queryCmd.Flags().BoolVar(&queryAddCitations, "add-citations", false, "Add inline citations to the response text")
	queryCmd.Flags().BoolVar(&queryPro, "pro", false, "Use the pro model (default: flash)")
	queryCmd.Flags().BoolVarP(&queryText, "text", "t", false, "Output markdown instead of JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Unexpected error: %v", r)
		}
	}()

	ctx := cmd.Context()

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	question, err := prompt.Validate(arg, queryStdin, os.Stdin)
	if err != nil {
		return err
	}
	log.Debug().Int("length", len(question)).Msg("validated prompt")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := gemini.NewClient(ctx, cfg.APIKey, log.Logger)
	if err != nil {
		return err
	}

	model := cfg.Model(queryPro)
	log.Info().Str("model", model).Msg("querying with Google Search grounding")

	resp, err := client.Query(ctx, question, model)
	if err != nil {
		return err
	}
	log.Info().
		Int("response_chars", len(resp.ResponseText)).
		Int("citations", len(resp.Citations)).
		Msg("query completed")

	if queryAddCitations && len(resp.GroundingSegments) > 0 {
		resp.ResponseText = gemini.AddInlineCitations(resp.ResponseText, resp.GroundingSegments, resp.Citations)
		log.Debug().Msg("inline citations added to response text")
	}

	if queryText {
		fmt.Print(gemini.FormatMarkdown(resp))
		return nil
	}

	out, err := gemini.FormatJSON(resp, verbosity >= 2)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
