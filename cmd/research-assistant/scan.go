// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/engine"
	"github.com/pdiddy/research-assistant/internal/scan"
	"github.com/pdiddy/research-assistant/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan [url]",
	Short: "Scan one URL for content",
	Long: `Scan returns a content excerpt for a result URL. The default scanner is
the offline simulation, serving canned per-domain excerpts. With --live the
URL is actually fetched and its visible text extracted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		live, _ := cmd.Flags().GetBool("live")

		cfg := loadConfig()

		var scanner engine.ContentScanner
		if live {
			scanner = scan.NewLiveScanner(cfg.Scan)
		} else {
			scanner = scan.NewScanner(cfg.Scan, cfg.Engine.Seed)
		}

		outcome := scanner.Scan(cmd.Context(), args[0])
		if outcome.Status != types.ScanCompleted {
			return fmt.Errorf("scan failed for %s", args[0])
		}

		fmt.Fprintln(os.Stdout, outcome.Content)
		return nil
	},
}

func init() {
	scanCmd.Flags().Bool("live", false, "fetch the URL for real instead of the offline simulation")

	rootCmd.AddCommand(scanCmd)
}
