// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// ReportFile is the on-disk representation of one search run. A saved run
// can be reloaded later — for display or composing — without re-running
// the engine.
type ReportFile struct {
	Query    string               `yaml:"query"`
	Deep     bool                 `yaml:"deep"`
	Analysis types.QueryAnalysis  `yaml:"analysis"`
	Results  []types.SearchResult `yaml:"results"`
	Summary  ReportSummary        `yaml:"summary"`
}

// ReportSummary stores result statistics and a timestamp.
type ReportSummary struct {
	Total       int       `yaml:"total"`
	SearchTime  int64     `yaml:"search_time_ms"`
	Suggestions []string  `yaml:"suggestions,omitempty"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// WriteReportFile saves a search run to a YAML file.
func WriteReportFile(path, query string, deep bool, analysis types.QueryAnalysis, resp types.SearchResponse) error {
	rf := ReportFile{
		Query:    query,
		Deep:     deep,
		Analysis: analysis,
		Results:  resp.Results,
		Summary: ReportSummary{
			Total:       resp.TotalResults,
			SearchTime:  resp.SearchTime,
			Suggestions: resp.SearchSuggestions,
			Timestamp:   time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling report file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReportFile loads a previously saved report from disk.
func ReadReportFile(path string) (*ReportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report file: %w", err)
	}
	var rf ReportFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing report file: %w", err)
	}
	return &rf, nil
}
