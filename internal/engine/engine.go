// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine is the public surface of the research assistant's search
// core: single-pass search, multi-variation deep research, and content
// scanning over synthesized candidates. Search failures are fail-soft —
// the caller gets an empty, well-formed response rather than an error —
// because search enriches an answer; it is not the answer itself.
// See docs/ARCHITECTURE § Engine.
package engine

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/research-assistant/internal/analyze"
	"github.com/pdiddy/research-assistant/internal/generate"
	"github.com/pdiddy/research-assistant/internal/rank"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// ContentScanner enriches one result URL with page content. Implemented by
// the stub and live scanners in internal/scan.
type ContentScanner interface {
	Scan(ctx context.Context, url string) types.ScanOutcome
}

// ProgressFunc receives deep-research progress: a percentage in [0,100]
// and a status line. The reported sequence is non-decreasing and ends at
// 100.
type ProgressFunc func(percent int, status string)

// Engine runs the analyze → generate → rank pipeline.
type Engine struct {
	cfg types.EngineConfig
	gen *generate.Generator
	w   io.Writer
}

// New builds an Engine. Warnings (swallowed search failures) go to w.
func New(cfg types.EngineConfig, w io.Writer) *Engine {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 15
	}
	if cfg.DeepResearchCap <= 0 {
		cfg.DeepResearchCap = 50
	}
	if cfg.MaxVariations <= 0 {
		cfg.MaxVariations = 15
	}
	if cfg.PerSiteLimit <= 0 {
		cfg.PerSiteLimit = 8
	}
	if w == nil {
		w = io.Discard
	}
	return &Engine{
		cfg: cfg,
		gen: generate.New(cfg.Seed),
		w:   w,
	}
}

// categoryPlan maps the analyzed subject category to the search categories
// worth generating for a standard search, in a fixed order.
var categoryPlan = map[types.Category][]types.Category{
	types.CategoryTech:       {types.CategoryExpert, types.CategoryAcademic, types.CategoryIndustry, types.CategoryGeneral},
	types.CategoryEducation:  {types.CategoryAcademic, types.CategoryGeneral, types.CategoryExpert},
	types.CategoryNews:       {types.CategoryNews, types.CategoryGeneral},
	types.CategoryHealth:     {types.CategoryAcademic, types.CategoryGovernment, types.CategoryGeneral},
	types.CategoryCooking:    {types.CategoryGeneral, types.CategoryExpert},
	types.CategoryGovernment: {types.CategoryGovernment, types.CategoryNews, types.CategoryGeneral},
	types.CategoryIndustry:   {types.CategoryIndustry, types.CategoryStatistical, types.CategoryNews},
	types.CategoryGeneral:    {types.CategoryGeneral, types.CategoryNews, types.CategoryExpert, types.CategoryAcademic},
}

// deepCategories is the full category fan-out for deep research.
var deepCategories = []types.Category{
	types.CategoryAcademic,
	types.CategoryNews,
	types.CategoryIndustry,
	types.CategoryGovernment,
	types.CategoryExpert,
	types.CategoryStatistical,
	types.CategoryGeneral,
}

// SearchWeb runs one standard search. A non-positive limit uses the
// configured default (15). Internal failures yield an empty response; the
// only returned error is context cancellation.
func (e *Engine) SearchWeb(ctx context.Context, query string, limit int) (types.SearchResponse, error) {
	start := time.Now()
	if limit <= 0 {
		limit = e.cfg.MaxResults
	}

	resp, err := e.searchSafe(ctx, query, limit)
	if err != nil {
		if ctx.Err() != nil {
			return types.SearchResponse{}, ctx.Err()
		}
		fmt.Fprintf(e.w, "warning: search failed: %v\n", err)
		resp = types.SearchResponse{Results: []types.SearchResult{}}
	}

	resp.TotalResults = len(resp.Results)
	resp.SearchTime = time.Since(start).Milliseconds()
	return resp, nil
}

// searchSafe is the throwing core of SearchWeb; panics become errors so
// the fail-soft conversion above has one place to catch everything.
func (e *Engine) searchSafe(ctx context.Context, query string, limit int) (resp types.SearchResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("search panicked: %v", r)
		}
	}()

	analysis := analyze.Analyze(query)

	categories := categoryPlan[analysis.Category]
	if len(categories) == 0 {
		categories = categoryPlan[types.CategoryGeneral]
	}
	perCategory := limit/len(categories) + 2

	var candidates []types.SearchResult
	for _, cat := range categories {
		if ctx.Err() != nil {
			return types.SearchResponse{}, ctx.Err()
		}
		candidates = append(candidates, e.gen.Generate(cat, analysis, perCategory)...)
	}

	ranked := rank.Rank(candidates, query, analysis, rank.Options{MaxResults: limit})

	return types.SearchResponse{
		Results:           ranked,
		ExpandedKeywords:  analysis.SearchTerms,
		SearchSuggestions: suggestions(query, analysis),
	}, nil
}

// DeepResearch fans out over query variations and all categories, then
// ranks with the freshness bonus and caps at the configured limit (50).
// onProgress may be nil.
func (e *Engine) DeepResearch(ctx context.Context, query string, onProgress ProgressFunc) (types.SearchResponse, error) {
	start := time.Now()
	report := newProgressReporter(onProgress)

	resp, err := e.deepSafe(ctx, query, report)
	if err != nil {
		if ctx.Err() != nil {
			return types.SearchResponse{}, ctx.Err()
		}
		fmt.Fprintf(e.w, "warning: deep research failed: %v\n", err)
		resp = types.SearchResponse{Results: []types.SearchResult{}}
	}

	report(100, "done")
	resp.TotalResults = len(resp.Results)
	resp.SearchTime = time.Since(start).Milliseconds()
	return resp, nil
}

func (e *Engine) deepSafe(ctx context.Context, query string, report ProgressFunc) (resp types.SearchResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("deep research panicked: %v", r)
		}
	}()

	analysis := analyze.Analyze(query)
	report(5, "analyzed query")

	variations := e.queryVariations(query, analysis)
	totalSteps := len(variations) * len(deepCategories)

	var candidates []types.SearchResult
	step := 0
	for _, variation := range variations {
		for _, cat := range deepCategories {
			if ctx.Err() != nil {
				return types.SearchResponse{}, ctx.Err()
			}
			candidates = append(candidates,
				e.gen.GenerateTerm(cat, analysis, variation, e.cfg.PerSiteLimit)...)

			step++
			// Generation spans 5–90% of the reported progress.
			percent := 5 + step*85/totalSteps
			report(percent, fmt.Sprintf("searching %s sources (%d/%d)", cat, step, totalSteps))
		}
	}

	report(95, "ranking results")
	ranked := rank.Rank(candidates, query, analysis, rank.Options{
		Freshness:  true,
		MaxResults: e.cfg.DeepResearchCap,
	})

	return types.SearchResponse{
		Results:           ranked,
		ExpandedKeywords:  analysis.SearchTerms,
		SearchSuggestions: suggestions(query, analysis),
	}, nil
}

// queryVariations builds the deep-research fan-out terms: the query
// itself, each expanded search term, and lead-keyword pairings, capped at
// the configured maximum.
func (e *Engine) queryVariations(query string, analysis types.QueryAnalysis) []string {
	var variations []string
	seen := make(map[string]bool)
	add := func(v string) {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			return
		}
		seen[key] = true
		variations = append(variations, v)
	}

	add(query)
	for _, term := range analysis.SearchTerms {
		add(term)
	}
	if len(analysis.Keywords) > 0 {
		lead := analysis.Keywords[0]
		for _, syn := range analysis.Synonyms {
			add(lead + " " + syn)
		}
	}

	if len(variations) == 0 {
		variations = []string{""}
	}
	if len(variations) > e.cfg.MaxVariations {
		variations = variations[:e.cfg.MaxVariations]
	}
	return variations
}

// ScanResults runs the scanner over each result in place, walking the
// pending → scanning → completed/error lifecycle. Content is only set on
// completion. A cancelled context stops the walk and returns the error;
// already-scanned results keep their state.
func (e *Engine) ScanResults(ctx context.Context, scanner ContentScanner, results []types.SearchResult) error {
	for i := range results {
		if err := ctx.Err(); err != nil {
			return err
		}
		results[i].ScanStatus = types.ScanScanning
		outcome := scanner.Scan(ctx, results[i].URL)
		results[i].ScanStatus = outcome.Status
		if outcome.Status == types.ScanCompleted {
			results[i].Content = outcome.Content
		}
	}
	return nil
}

// newProgressReporter wraps onProgress with a monotonic guard so callers
// always observe a non-decreasing sequence, whatever the step math does.
func newProgressReporter(onProgress ProgressFunc) ProgressFunc {
	last := -1
	return func(percent int, status string) {
		if onProgress == nil {
			return
		}
		if percent > 100 {
			percent = 100
		}
		if percent < last {
			return
		}
		last = percent
		onProgress(percent, status)
	}
}

// suggestions derives follow-up queries from the original one.
func suggestions(query string, analysis types.QueryAnalysis) []string {
	base := strings.TrimSpace(query)
	if base == "" {
		return nil
	}

	var suffixes []string
	if analysis.Language == types.LangArabic {
		suffixes = []string{"شرح", "أمثلة", "أحدث التطورات", "مقارنة", "للمبتدئين"}
	} else {
		suffixes = []string{"explained", "examples", "latest developments", "comparison", "for beginners"}
	}

	out := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		out = append(out, base+" "+s)
	}
	return out
}
