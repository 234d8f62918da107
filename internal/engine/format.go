// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// FormatTable writes a response as a human-readable table to w.
func FormatTable(resp types.SearchResponse, w io.Writer) {
	if len(resp.Results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-52s  %-24s  %-6s  %-5s  %s\n",
		"Rank", "Title", "Domain", "Score", "Cred", "Type")
	fmt.Fprintln(w, strings.Repeat("-", 104))

	for i, r := range resp.Results {
		title := r.Title
		if len(title) > 52 {
			title = title[:49] + "..."
		}
		domain := r.Domain
		if len(domain) > 24 {
			domain = domain[:21] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-52s  %-24s  %-6d  %-5d  %s\n",
			i+1, title, domain, r.RelevanceScore, r.AuthorCredibility, r.SourceType)
	}

	fmt.Fprintf(w, "\n%d results in %d ms\n", resp.TotalResults, resp.SearchTime)
	if len(resp.SearchSuggestions) > 0 {
		fmt.Fprintf(w, "Related: %s\n", strings.Join(resp.SearchSuggestions, " | "))
	}
}

// FormatJSON writes a response as indented JSON to w.
func FormatJSON(resp types.SearchResponse, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
