// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan enriches a search result with page content. The default
// scanner is a simulation: content comes from a canned per-domain table
// after a randomized delay, and no request leaves the process. The live
// scanner (live.go) fetches for real and is opt-in.
// See docs/ARCHITECTURE § Content Scanning.
package scan

import (
	"context"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Ellipsis marks truncated content.
const Ellipsis = "…"

// cannedContent holds the per-domain excerpts served by the stub scanner.
// Lookup is by registrable-domain suffix so en.wikipedia.org hits the
// wikipedia.org entry.
var cannedContent = map[string]string{
	"arxiv.org":               "Abstract. We study the problem in a unified framework and establish new bounds under mild assumptions. Our experiments on standard benchmarks show consistent improvements over prior work, and we release code and data to support reproduction. We further discuss limitations, failure cases, and directions for follow-up research, including extensions to the multilingual and low-resource settings that practitioners care about in deployment.",
	"wikipedia.org":           "This article provides a broad overview of the topic, including its history, core concepts, notable applications, and ongoing debates. Citations link to primary sources and review articles. Related topics are cross-referenced throughout, and the further-reading section lists accessible introductions alongside more rigorous treatments for readers who want depth.",
	"stackoverflow.com":       "Accepted answer: the behavior you are seeing is expected. The idiomatic fix is to restructure the call so the resource is owned by a single goroutine and shared through a channel. See the worked example below, which compiles and includes benchmarks. Several commenters note edge cases around cancellation and cleanup that are worth reading before you ship.",
	"github.com":              "README. This repository contains a reference implementation with examples, a test suite, and CI configuration. Quick start: install the prerequisites, run the setup script, then follow the usage section. Contributions are welcome; see CONTRIBUTING.md for the review process and coding standards used by the maintainers.",
	"pubmed.ncbi.nlm.nih.gov": "Objective: to evaluate outcomes across the included cohorts. Methods: systematic review and meta-analysis of randomized controlled trials published in the last decade. Results: pooled estimates favored the intervention with moderate certainty of evidence. Conclusions: findings support cautious adoption while larger trials address the remaining heterogeneity.",
	"who.int":                 "Key facts. The organization publishes technical guidance, surveillance data, and policy recommendations on this topic. Member states are advised to follow the current guidelines, which are reviewed as new evidence emerges. The fact sheet below summarizes burden, risk factors, prevention, and the global response.",
	"reuters.com":             "The development drew immediate reaction from officials and market participants, with analysts split on the longer-term implications. This account is based on interviews with people familiar with the matter and on documents reviewed by reporters. The story will be updated as more information becomes available.",
	"statista.com":            "The statistic shows the indicator's development over the observed period, broken down by region and segment. The accompanying dossier bundles related charts, forecasts, and survey results. Methodology notes describe the sources and the adjustments applied to make the series comparable across years.",
	"bbc.com":                 "Officials confirmed the latest developments on Tuesday, as correspondents reported reaction from the region. Analysis from our editors puts the events in context, and a timeline traces how the story has unfolded. More coverage, including explainers and first-person accounts, is linked below.",
	"mckinsey.com":            "Our research across industries suggests leaders who move early capture a disproportionate share of the value. This article outlines the operating-model shifts involved, the capabilities required, and the pitfalls we observe most often, drawing on client work and proprietary survey data.",
}

// fallbackContent is served for domains without a canned entry.
const fallbackContent = "The page presents authoritative, well-sourced material on the topic, including background, current developments, and references for further reading. Key claims are attributed, and the publication maintains an editorial process for corrections and updates."

// Scanner simulates scanning a result URL. Safe for sequential use; the
// engine runs one scan per result at a time.
type Scanner struct {
	cfg types.ScanConfig
	rng *rand.Rand
}

// NewScanner returns a stub scanner. A zero seed uses the clock.
func NewScanner(cfg types.ScanConfig, seed int64) *Scanner {
	if cfg.MaxContentLen <= 0 {
		cfg.MaxContentLen = 800
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Scanner{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Scan returns the canned excerpt for the URL's domain after a simulated
// delay. The stub path only reports an error status when the context is
// cancelled mid-scan; every domain resolves to content.
func (s *Scanner) Scan(ctx context.Context, rawURL string) types.ScanOutcome {
	if err := s.sleep(ctx); err != nil {
		return types.ScanOutcome{Status: types.ScanError}
	}

	content := contentFor(domainOf(rawURL))
	return types.ScanOutcome{
		Content: Truncate(content, s.cfg.MaxContentLen),
		Status:  types.ScanCompleted,
	}
}

// sleep blocks for a uniformly random duration in [MinDelay, MaxDelay],
// or returns early if the context is cancelled. Zero bounds skip the delay.
func (s *Scanner) sleep(ctx context.Context) error {
	if s.cfg.MaxDelay <= 0 {
		return ctx.Err()
	}
	delay := s.cfg.MinDelay
	if jitter := s.cfg.MaxDelay - s.cfg.MinDelay; jitter > 0 {
		delay += time.Duration(s.rng.Int63n(int64(jitter)))
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// contentFor finds the canned excerpt whose domain key matches host or a
// parent of host.
func contentFor(host string) string {
	for domain, content := range cannedContent {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return content
		}
	}
	return fallbackContent
}

// domainOf extracts the hostname without a leading "www.".
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// Truncate caps s at max runes, appending an ellipsis when content was
// dropped.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + Ellipsis
}
