// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/research-assistant/internal/analyze"
	"github.com/pdiddy/research-assistant/pkg/types"
)

func sampleResponse() types.SearchResponse {
	return types.SearchResponse{
		Results: []types.SearchResult{
			{
				ID:                "r1",
				Title:             "Understanding Quantum Computing",
				Snippet:           "An overview.",
				URL:               "https://en.wikipedia.org/w/index.php?search=quantum",
				Domain:            "en.wikipedia.org",
				ScanStatus:        types.ScanPending,
				Category:          types.CategoryGeneral,
				SourceType:        types.SourceGeneral,
				RelevanceScore:    88,
				AuthorCredibility: 86,
			},
			{
				ID:                "r2",
				Title:             "Quantum Computing: A Systematic Review of Recent Findings",
				Snippet:           "Peer-reviewed analysis.",
				URL:               "https://arxiv.org/search/?query=quantum",
				Domain:            "arxiv.org",
				ScanStatus:        types.ScanPending,
				Category:          types.CategoryAcademic,
				SourceType:        types.SourceAcademic,
				RelevanceScore:    75,
				AuthorCredibility: 100,
			},
		},
		TotalResults:      2,
		SearchTime:        12,
		ExpandedKeywords:  []string{"quantum", "computing"},
		SearchSuggestions: []string{"quantum computing explained"},
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleResponse(), &buf)
	out := buf.String()

	for _, want := range []string{
		"Understanding Quantum Computing",
		"arxiv.org",
		"2 results in 12 ms",
		"Related: quantum computing explained",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(types.SearchResponse{}, &buf)
	if !strings.Contains(buf.String(), "No results found.") {
		t.Errorf("empty response output = %q", buf.String())
	}
}

func TestFormatJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(sampleResponse(), &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var decoded types.SearchResponse
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.TotalResults != 2 || len(decoded.Results) != 2 {
		t.Errorf("decoded %d/%d results, want 2/2", decoded.TotalResults, len(decoded.Results))
	}
	if decoded.Results[0].ID != "r1" {
		t.Errorf("decoded first ID = %q", decoded.Results[0].ID)
	}
}

func TestReportFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	query := "quantum computing basics"
	analysis := analyze.Analyze(query)
	resp := sampleResponse()

	if err := WriteReportFile(path, query, true, analysis, resp); err != nil {
		t.Fatalf("WriteReportFile: %v", err)
	}

	rf, err := ReadReportFile(path)
	if err != nil {
		t.Fatalf("ReadReportFile: %v", err)
	}
	if rf.Query != query {
		t.Errorf("Query = %q, want %q", rf.Query, query)
	}
	if !rf.Deep {
		t.Error("Deep flag lost in round trip")
	}
	if rf.Analysis.Category != analysis.Category || rf.Analysis.Intent != analysis.Intent {
		t.Errorf("analysis changed in round trip: %+v", rf.Analysis)
	}
	if len(rf.Results) != len(resp.Results) {
		t.Fatalf("got %d results, want %d", len(rf.Results), len(resp.Results))
	}
	if rf.Results[1].AuthorCredibility != 100 {
		t.Errorf("credibility = %d, want 100", rf.Results[1].AuthorCredibility)
	}
	if rf.Summary.Total != 2 || rf.Summary.SearchTime != 12 {
		t.Errorf("summary = %+v", rf.Summary)
	}
	if rf.Summary.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestReadReportFileMissing(t *testing.T) {
	if _, err := ReadReportFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
