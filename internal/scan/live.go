// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/research-assistant/internal/httputil"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// LiveScanner fetches a URL for real and extracts readable text. Unlike
// the stub, it has genuine failure modes: network errors, non-2xx
// statuses, and unparseable bodies all yield an error status with empty
// content rather than a Go error, so callers treat both scanners the same.
type LiveScanner struct {
	cfg    types.ScanConfig
	client *http.Client
}

// NewLiveScanner returns a scanner that performs real HTTP fetches.
func NewLiveScanner(cfg types.ScanConfig) *LiveScanner {
	if cfg.MaxContentLen <= 0 {
		cfg.MaxContentLen = 800
	}
	return &LiveScanner{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Scan fetches rawURL with retry on transient statuses and returns the
// page's visible text, truncated like the stub's output.
func (s *LiveScanner) Scan(ctx context.Context, rawURL string) types.ScanOutcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return types.ScanOutcome{Status: types.ScanError}
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, s.client, req, 0)
	if err != nil {
		return types.ScanOutcome{Status: types.ScanError}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.ScanOutcome{Status: types.ScanError}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return types.ScanOutcome{Status: types.ScanError}
	}

	text := extractText(doc)
	if text == "" {
		return types.ScanOutcome{Status: types.ScanError}
	}

	return types.ScanOutcome{
		Content: Truncate(text, s.cfg.MaxContentLen),
		Status:  types.ScanCompleted,
	}
}

// extractText pulls paragraph text from the document body, falling back to
// the whole body when there are no <p> elements. Script and style text is
// dropped.
func extractText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	if len(parts) == 0 {
		return strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
