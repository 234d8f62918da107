// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/compose"
	"github.com/pdiddy/research-assistant/internal/engine"
	"github.com/pdiddy/research-assistant/internal/scan"
	"github.com/pdiddy/research-assistant/pkg/types"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Search, scan, and compose a streamed, cited answer",
	Long: `Ask runs the full pipeline: search for sources, scan their content, build
a prompt, and stream the composed answer to stdout. With --offline the
answer is an extractive summary of the top sources and no LLM is called.

Search failures degrade to an answer without citations; a generation
failure is reported as an error, since the answer is the deliverable.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		offline, _ := cmd.Flags().GetBool("offline")
		deep, _ := cmd.Flags().GetBool("deep")
		limit, _ := cmd.Flags().GetInt("limit")

		cfg := loadConfig()
		eng := engine.New(cfg.Engine, os.Stderr)
		ctx := cmd.Context()

		resp, err := searchFor(cmd, eng, query, deep, limit)
		if err != nil {
			return err
		}

		scanner := scan.NewScanner(cfg.Scan, cfg.Engine.Seed)
		if err := eng.ScanResults(ctx, scanner, resp.Results); err != nil {
			return err
		}

		var text string
		if offline {
			text = compose.Summarize(query, resp.Results)
		} else {
			gen, err := compose.NewLLMGenerator(cfg.Compose)
			if err != nil {
				return err
			}
			prompt, err := compose.BuildPrompt(query, nil, resp.Results)
			if err != nil {
				return err
			}
			text, err = gen.Generate(ctx, prompt)
			if err != nil {
				return err
			}
		}

		streamer := compose.NewStreamer(cfg.Compose, cfg.Engine.Seed)
		if err := streamer.Stream(ctx, text, func(chunk string) {
			fmt.Fprint(os.Stdout, chunk)
		}); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout)
		return nil
	},
}

func searchFor(cmd *cobra.Command, eng *engine.Engine, query string, deep bool, limit int) (types.SearchResponse, error) {
	if deep {
		return eng.DeepResearch(cmd.Context(), query, nil)
	}
	return eng.SearchWeb(cmd.Context(), query, limit)
}

func init() {
	askCmd.Flags().Bool("offline", false, "compose an extractive summary without calling an LLM")
	askCmd.Flags().Bool("deep", false, "use deep research for source gathering")
	askCmd.Flags().Int("limit", 8, "maximum number of sources to gather")

	rootCmd.AddCommand(askCmd)
}
