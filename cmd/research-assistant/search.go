// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/analyze"
	"github.com/pdiddy/research-assistant/internal/engine"
	"github.com/pdiddy/research-assistant/internal/scan"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a single-pass search over the synthesized source catalog",
	Long: `Search analyzes the query, expands it into search terms, generates
candidates from the categories relevant to the detected subject, and
returns them deduplicated and ranked by relevance.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")
		savePath, _ := cmd.Flags().GetString("save")
		doScan, _ := cmd.Flags().GetBool("scan")
		noHistory, _ := cmd.Flags().GetBool("no-history")

		cfg := loadConfig()
		eng := engine.New(cfg.Engine, os.Stderr)

		resp, err := eng.SearchWeb(cmd.Context(), query, limit)
		if err != nil {
			return err
		}

		if doScan {
			scanner := scan.NewScanner(cfg.Scan, cfg.Engine.Seed)
			if err := eng.ScanResults(cmd.Context(), scanner, resp.Results); err != nil {
				return err
			}
		}

		analysis := analyze.Analyze(query)
		if savePath != "" {
			if err := engine.WriteReportFile(savePath, query, false, analysis, resp); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved report to %s\n", savePath)
		}

		if !noHistory {
			if err := recordHistory(cmd, cfg, query, false, analysis, resp); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
			}
		}

		if asJSON {
			return engine.FormatJSON(resp, os.Stdout)
		}
		engine.FormatTable(resp, os.Stdout)
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("limit", 0, "maximum number of results (default from config, 15)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save the run to a YAML report file")
	searchCmd.Flags().Bool("scan", false, "scan result content before output")
	searchCmd.Flags().Bool("no-history", false, "skip recording the run in the history database")

	rootCmd.AddCommand(searchCmd)
}
