// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/engine"
	"github.com/pdiddy/research-assistant/internal/history"
	"github.com/pdiddy/research-assistant/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent search runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("limit")

		cfg := loadConfig()
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.Recent(cmd.Context(), n)
		if err != nil {
			return err
		}
		history.FormatRecords(records, os.Stdout)
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show the stored results of one search run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()

		results, err := store.Results(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return fmt.Errorf("no stored results for %s", args[0])
		}

		engine.FormatTable(types.SearchResponse{
			Results:      results,
			TotalResults: len(results),
		}, os.Stdout)
		return nil
	},
}

// recordHistory stores one finished run in the history database.
func recordHistory(cmd *cobra.Command, cfg types.AssistantConfig, query string, deep bool, analysis types.QueryAnalysis, resp types.SearchResponse) error {
	store, err := history.NewStore(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveSearch(cmd.Context(), query, deep, analysis, resp)
	return err
}

func init() {
	historyCmd.Flags().Int("limit", 0, "number of runs to list (default from config, 20)")
	historyCmd.AddCommand(historyShowCmd)

	rootCmd.AddCommand(historyCmd)
}
