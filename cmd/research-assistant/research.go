// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/analyze"
	"github.com/pdiddy/research-assistant/internal/engine"
)

var researchCmd = &cobra.Command{
	Use:   "research [query]",
	Short: "Run deep research: multi-variation, all-category search",
	Long: `Research expands the query into up to 15 variations, searches every
source category for each, and returns up to 50 deduplicated results ranked
with a freshness bonus. Progress is reported on stderr.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		asJSON, _ := cmd.Flags().GetBool("json")
		savePath, _ := cmd.Flags().GetString("save")
		quiet, _ := cmd.Flags().GetBool("quiet")
		noHistory, _ := cmd.Flags().GetBool("no-history")

		cfg := loadConfig()
		eng := engine.New(cfg.Engine, os.Stderr)

		var onProgress engine.ProgressFunc
		if !quiet {
			onProgress = func(percent int, status string) {
				fmt.Fprintf(os.Stderr, "\r[%3d%%] %-60s", percent, status)
				if percent == 100 {
					fmt.Fprintln(os.Stderr)
				}
			}
		}

		resp, err := eng.DeepResearch(cmd.Context(), query, onProgress)
		if err != nil {
			return err
		}

		analysis := analyze.Analyze(query)
		if savePath != "" {
			if err := engine.WriteReportFile(savePath, query, true, analysis, resp); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved report to %s\n", savePath)
		}

		if !noHistory {
			if err := recordHistory(cmd, cfg, query, true, analysis, resp); err != nil {
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
	researchCmd.Flags().Bool("json", false, "output results as JSON")
	researchCmd.Flags().String("save", "", "save the run to a YAML report file")
	researchCmd.Flags().Bool("quiet", false, "suppress progress output")
	researchCmd.Flags().Bool("no-history", false, "skip recording the run in the history database")

	rootCmd.AddCommand(researchCmd)
}
