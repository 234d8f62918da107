// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate synthesizes plausible search results from fixed site
// tables. This is a simulation layer: every record is template-generated
// from the analyzed query, no network I/O happens here, and the produced
// URLs are search-style URLs on real domains that are never fetched by
// this stage. See docs/ARCHITECTURE § Candidate Generation.
package generate

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Generator synthesizes results for one category at a time. The random
// source only drives template choice and date jitter; site order is fixed,
// so two generators with equal seeds produce identical output.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New returns a Generator seeded with seed. A zero seed uses the clock.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// NewFixed returns a Generator with a fixed seed and clock, for
// reproducible output.
func NewFixed(seed int64, now time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: func() time.Time { return now },
	}
}

// Generate returns up to limit results for one category, one per
// configured site, in site-table order.
func (g *Generator) Generate(category types.Category, analysis types.QueryAnalysis, limit int) []types.SearchResult {
	return g.GenerateTerm(category, analysis, primaryTerm(analysis), limit)
}

// GenerateTerm is Generate with an explicit lead term. Deep research uses
// it to fan out over query variations.
func (g *Generator) GenerateTerm(category types.Category, analysis types.QueryAnalysis, term string, limit int) []types.SearchResult {
	if limit <= 0 {
		return nil
	}
	if strings.TrimSpace(term) == "" {
		term = primaryTerm(analysis)
	}

	sites := SitesFor(category, analysis.Language)

	var results []types.SearchResult
	for _, site := range sites {
		if len(results) == limit {
			break
		}

		rawURL := SearchURL(site.Domain, term)
		r := types.SearchResult{
			ID:                uuid.NewString(),
			Title:             g.title(site, term, analysis.Language),
			Snippet:           g.snippet(site, term, analysis.Language),
			URL:               rawURL,
			Domain:            hostOf(rawURL, site.Domain),
			Favicon:           FaviconURL(site.Domain),
			ScanStatus:        types.ScanPending,
			Category:          category,
			SourceType:        site.SourceType,
			Keywords:          resultKeywords(analysis),
			PublishDate:       g.publishDate(site.SourceType),
			AuthorCredibility: Credibility(site.Domain, site.SourceType),
		}
		results = append(results, r)
	}
	return results
}

// primaryTerm picks the lead search term; an empty analysis falls back to
// a generic topic so generation still produces well-formed records.
func primaryTerm(a types.QueryAnalysis) string {
	if len(a.SearchTerms) > 0 {
		return a.SearchTerms[0]
	}
	if a.Language == types.LangArabic {
		return "معلومات عامة"
	}
	return "general information"
}

// resultKeywords attaches up to four expanded terms to a result.
func resultKeywords(a types.QueryAnalysis) []string {
	terms := a.SearchTerms
	if len(terms) > 4 {
		terms = terms[:4]
	}
	return append([]string(nil), terms...)
}

// publishDate samples a synthetic date inside the source type's recency
// window: news 0–7 days, academic 0–365, industry 0–90, otherwise 0–180.
func (g *Generator) publishDate(st types.SourceType) time.Time {
	var windowDays int
	switch st {
	case types.SourceNews:
		windowDays = 7
	case types.SourceAcademic:
		windowDays = 365
	case types.SourceIndustry:
		windowDays = 90
	default:
		windowDays = 180
	}
	offset := time.Duration(g.rng.Int63n(int64(windowDays)*24)) * time.Hour
	return g.now().Add(-offset).UTC()
}

var englishTitleTemplates = map[types.SourceType][]string{
	types.SourceAcademic: {
		"%s: A Systematic Review of Recent Findings",
		"Advances in %s: Methods and Open Problems",
	},
	types.SourceNews: {
		"%s: What We Know So Far",
		"Latest Developments in %s",
	},
	types.SourceIndustry: {
		"How %s Is Reshaping the Market",
		"%s: Industry Outlook and Analysis",
	},
	types.SourceGovernment: {
		"Official Guidance on %s",
		"%s: Policies, Regulations, and Public Resources",
	},
	types.SourceExpert: {
		"%s Explained by Practitioners",
		"Community Deep Dive: %s",
	},
	types.SourceStatistical: {
		"%s in Numbers: Key Statistics and Trends",
		"The Data Behind %s",
	},
	types.SourceCaseStudy: {
		"Case Study: %s in Practice",
	},
	types.SourceWhitepaper: {
		"%s: A Strategic Perspective",
	},
	types.SourceGeneral: {
		"%s: An Accessible Introduction",
		"Understanding %s",
	},
}

var arabicTitleTemplates = map[types.SourceType][]string{
	types.SourceAcademic: {
		"%s: مراجعة منهجية لأحدث الأبحاث",
		"تطورات البحث في %s",
	},
	types.SourceNews: {
		"%s: آخر المستجدات",
		"تغطية شاملة حول %s",
	},
	types.SourceGeneral: {
		"%s: مقدمة مبسطة",
		"كل ما تحتاج معرفته عن %s",
	},
}

var englishSnippetTemplates = map[types.SourceType]string{
	types.SourceAcademic:    "Peer-reviewed analysis of %s covering methodology, recent findings, and open research questions. Published via %s.",
	types.SourceNews:        "Up-to-the-minute reporting on %s with background, expert reaction, and ongoing coverage from %s correspondents.",
	types.SourceIndustry:    "Market analysis of %s: adoption trends, key players, and what it means for the industry, from %s.",
	types.SourceGovernment:  "Official information on %s including regulations, guidance documents, and public datasets published by %s.",
	types.SourceExpert:      "Practitioner answers and worked examples on %s, with discussion threads and code shared on %s.",
	types.SourceStatistical: "Curated statistics on %s: charts, time series, and survey data compiled by %s.",
	types.SourceCaseStudy:   "A detailed case study of %s in a real organization, with outcomes and lessons learned, from %s.",
	types.SourceWhitepaper:  "A strategic whitepaper on %s outlining frameworks and recommendations, published by %s.",
	types.SourceGeneral:     "A clear, accessible overview of %s with definitions, context, and further reading on %s.",
}

var arabicSnippetTemplates = map[types.SourceType]string{
	types.SourceAcademic: "تحليل علمي محكم حول %s يغطي المنهجية وأحدث النتائج، منشور عبر %s.",
	types.SourceNews:     "تغطية إخبارية مستمرة حول %s مع خلفيات وتحليلات من مراسلي %s.",
	types.SourceGeneral:  "نظرة شاملة ومبسطة حول %s مع تعريفات وسياق وقراءات إضافية على %s.",
}

func (g *Generator) title(site Site, term string, lang types.Language) string {
	templates := englishTitleTemplates[site.SourceType]
	if lang == types.LangArabic {
		if ar, ok := arabicTitleTemplates[site.SourceType]; ok {
			templates = ar
		}
	}
	if len(templates) == 0 {
		templates = englishTitleTemplates[types.SourceGeneral]
	}
	tmpl := templates[g.rng.Intn(len(templates))]
	return fmt.Sprintf(tmpl, titleCase(term))
}

func (g *Generator) snippet(site Site, term string, lang types.Language) string {
	tmpl, ok := englishSnippetTemplates[site.SourceType]
	if lang == types.LangArabic {
		if ar, arOK := arabicSnippetTemplates[site.SourceType]; arOK {
			tmpl, ok = ar, true
		}
	}
	if !ok {
		tmpl = englishSnippetTemplates[types.SourceGeneral]
	}
	return fmt.Sprintf(tmpl, term, site.Name)
}

// hostOf extracts the hostname from rawURL, stripping a leading "www.".
// It falls back to the site's configured domain on a parse failure.
func hostOf(rawURL, fallback string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return fallback
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// titleCase upper-cases the first letter of each word. Arabic has no case,
// so the input passes through unchanged.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 && r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 'a' + 'A'
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
