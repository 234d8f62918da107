// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank deduplicates candidate results and orders them by a
// composite relevance score. One scoring function serves both the standard
// and deep-research paths; the only difference is the freshness toggle in
// Options, so the two call sites cannot drift apart.
// See docs/ARCHITECTURE § Ranking.
package rank

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/pdiddy/research-assistant/internal/generate"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// Options parameterizes one ranking pass.
type Options struct {
	// Freshness enables the publication-recency bonus (deep research only).
	Freshness bool

	// MaxResults caps the returned slice. Zero means no cap.
	MaxResults int

	// Now anchors the freshness calculation; zero value uses the clock.
	Now time.Time
}

// Scoring weights. Query-word hits on the title dominate, with smaller
// credit for snippet and domain hits, then graded bonuses for the
// analyzer's expanded terms.
const (
	titleWordBonus   = 28
	snippetWordBonus = 12
	domainWordBonus  = 10

	keywordTitleBonus   = 15
	keywordSnippetBonus = 5
	synonymTitleBonus   = 20
	synonymSnippetBonus = 10
	relatedTitleBonus   = 15
	relatedSnippetBonus = 8

	authorityBonus      = 20
	categoryDomainBonus = 15
	sourceIntentBonus   = 10

	freshBonus30 = 10
	freshBonus90 = 5

	scoreFloor   = 15
	scoreCeiling = 100
)

// authorityDomains is a fixed allowlist of broadly trusted domains.
var authorityDomains = []string{
	"wikipedia.org",
	"github.com",
	"stackoverflow.com",
	"bbc.com",
	"reuters.com",
	"apnews.com",
	"nytimes.com",
	"theguardian.com",
	"nature.com",
	"arxiv.org",
	"pubmed.ncbi.nlm.nih.gov",
	"who.int",
	"un.org",
	"worldbank.org",
}

// intentSourceTypes maps an intent to its preferred source types.
var intentSourceTypes = map[types.Intent][]types.SourceType{
	types.IntentExplanation: {types.SourceAcademic, types.SourceGeneral, types.SourceExpert},
	types.IntentTutorial:    {types.SourceExpert, types.SourceGeneral},
	types.IntentComparison:  {types.SourceIndustry, types.SourceExpert, types.SourceGeneral},
	types.IntentNews:        {types.SourceNews},
	types.IntentProgramming: {types.SourceExpert, types.SourceAcademic},
	types.IntentLearning:    {types.SourceAcademic, types.SourceGeneral},
	types.IntentStatistical: {types.SourceStatistical, types.SourceGovernment, types.SourceAcademic},
	types.IntentGeneral:     {types.SourceGeneral, types.SourceNews, types.SourceExpert},
}

// Rank deduplicates candidates, scores each survivor against the query and
// its analysis, and returns them sorted by descending score. Ties keep
// their input order (stable sort), so generation order decides.
func Rank(candidates []types.SearchResult, query string, analysis types.QueryAnalysis, opts Options) []types.SearchResult {
	deduped := Deduplicate(candidates)

	for i := range deduped {
		deduped[i].RelevanceScore = Score(deduped[i], query, analysis, opts)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].RelevanceScore > deduped[j].RelevanceScore
	})

	if opts.MaxResults > 0 && len(deduped) > opts.MaxResults {
		deduped = deduped[:opts.MaxResults]
	}
	return deduped
}

// Deduplicate keeps the first-seen result per unique URL and per
// normalized title. A candidate is dropped when either key has already
// appeared.
func Deduplicate(results []types.SearchResult) []types.SearchResult {
	seenURL := make(map[string]bool)
	seenTitle := make(map[string]bool)

	var deduped []types.SearchResult
	for _, r := range results {
		titleKey := NormalizeTitle(r.Title)
		if seenURL[r.URL] || (titleKey != "" && seenTitle[titleKey]) {
			continue
		}
		seenURL[r.URL] = true
		if titleKey != "" {
			seenTitle[titleKey] = true
		}
		deduped = append(deduped, r)
	}
	return deduped
}

// NormalizeTitle lowercases a title and strips everything but letters,
// digits, and single spaces.
func NormalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Score computes the composite 15–100 relevance score for one result.
func Score(r types.SearchResult, query string, analysis types.QueryAnalysis, opts Options) int {
	title := strings.ToLower(r.Title)
	snippet := strings.ToLower(r.Snippet)
	domain := strings.ToLower(r.Domain)

	score := 0

	for _, word := range queryWords(query) {
		if strings.Contains(title, word) {
			score += titleWordBonus
		}
		if strings.Contains(snippet, word) {
			score += snippetWordBonus
		}
		if strings.Contains(domain, word) {
			score += domainWordBonus
		}
	}

	score += termBonuses(title, snippet, analysis.Keywords, keywordTitleBonus, keywordSnippetBonus)
	score += termBonuses(title, snippet, analysis.Synonyms, synonymTitleBonus, synonymSnippetBonus)
	score += termBonuses(title, snippet, analysis.RelatedTerms, relatedTitleBonus, relatedSnippetBonus)

	if matchesAnyDomain(domain, authorityDomains) {
		score += authorityBonus
	}
	if matchesAnyDomain(domain, generate.CategoryDomains(r.Category, analysis.Language)) {
		score += categoryDomainBonus
	}
	if sourceTypePreferred(r.SourceType, analysis.Intent) {
		score += sourceIntentBonus
	}

	if opts.Freshness && !r.PublishDate.IsZero() {
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		switch age := now.Sub(r.PublishDate); {
		case age < 30*24*time.Hour:
			score += freshBonus30
		case age < 90*24*time.Hour:
			score += freshBonus90
		}
	}

	if score < scoreFloor {
		return scoreFloor
	}
	if score > scoreCeiling {
		return scoreCeiling
	}
	return score
}

// queryWords returns the lowercased query tokens longer than two runes.
func queryWords(query string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if len([]rune(w)) > 2 {
			words = append(words, w)
		}
	}
	return words
}

func termBonuses(title, snippet string, terms []string, titleBonus, snippetBonus int) int {
	score := 0
	for _, term := range terms {
		t := strings.ToLower(term)
		if strings.Contains(title, t) {
			score += titleBonus
		}
		if strings.Contains(snippet, t) {
			score += snippetBonus
		}
	}
	return score
}

// matchesAnyDomain reports whether host equals one of the domains or is a
// subdomain of one (en.wikipedia.org matches wikipedia.org).
func matchesAnyDomain(host string, domains []string) bool {
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

func sourceTypePreferred(st types.SourceType, intent types.Intent) bool {
	for _, preferred := range intentSourceTypes[intent] {
		if st == preferred {
			return true
		}
	}
	return false
}
