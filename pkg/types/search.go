// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the research-assistant
// pipeline: query analysis, synthesized search results, and engine
// responses. See docs/ARCHITECTURE § Data Structures.
package types

import "time"

// Language is the detected query language.
type Language string

const (
	LangArabic  Language = "ar"
	LangEnglish Language = "en"
)

// Intent classifies what the user is trying to do with a query.
type Intent string

const (
	IntentExplanation Intent = "explanation"
	IntentTutorial    Intent = "tutorial"
	IntentComparison  Intent = "comparison"
	IntentNews        Intent = "news"
	IntentProgramming Intent = "programming"
	IntentLearning    Intent = "learning"
	IntentStatistical Intent = "statistical"
	IntentGeneral     Intent = "general"
)

// Category classifies the subject area of a query or result.
type Category string

const (
	CategoryTech        Category = "tech"
	CategoryEducation   Category = "education"
	CategoryNews        Category = "news"
	CategoryHealth      Category = "health"
	CategoryCooking     Category = "cooking"
	CategoryGovernment  Category = "government"
	CategoryIndustry    Category = "industry"
	CategoryAcademic    Category = "academic"
	CategoryExpert      Category = "expert"
	CategoryStatistical Category = "statistical"
	CategoryGeneral     Category = "general"
)

// SourceType classifies the provenance of a result. It drives both
// publication-date synthesis and ranking bonuses.
type SourceType string

const (
	SourceAcademic    SourceType = "academic"
	SourceNews        SourceType = "news"
	SourceIndustry    SourceType = "industry"
	SourceGovernment  SourceType = "government"
	SourceExpert      SourceType = "expert"
	SourceStatistical SourceType = "statistical"
	SourceCaseStudy   SourceType = "case_study"
	SourceWhitepaper  SourceType = "whitepaper"
	SourceGeneral     SourceType = "general"
)

// Complexity grades a query by length and structure.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// ScanStatus is the lifecycle state of a result's content enrichment.
// Transitions are one-directional: pending → scanning → completed or error.
type ScanStatus string

const (
	ScanPending   ScanStatus = "pending"
	ScanScanning  ScanStatus = "scanning"
	ScanCompleted ScanStatus = "completed"
	ScanError     ScanStatus = "error"
)

// SearchResult is one synthesized candidate result. The URL is a
// constructed search-style URL on a real domain; it is not guaranteed to
// resolve, and nothing in the pipeline fetches it unless the live scanner
// is explicitly invoked.
type SearchResult struct {
	// ID is assigned at generation time and unique within one response.
	ID string `json:"id" yaml:"id"`

	// Title and Snippet are generated display strings, never empty.
	Title   string `json:"title" yaml:"title"`
	Snippet string `json:"snippet" yaml:"snippet"`

	// URL is the constructed search URL; Domain is its hostname.
	URL    string `json:"url" yaml:"url"`
	Domain string `json:"domain" yaml:"domain"`

	// Favicon is a derived icon URL, optional.
	Favicon string `json:"favicon,omitempty" yaml:"favicon,omitempty"`

	// ScanStatus starts as pending; Content is set once it reaches completed.
	ScanStatus ScanStatus `json:"scan_status" yaml:"scan_status"`
	Content    string     `json:"content,omitempty" yaml:"content,omitempty"`

	// Category and SourceType are assigned from the site tables at
	// generation time.
	Category   Category   `json:"category" yaml:"category"`
	SourceType SourceType `json:"source_type" yaml:"source_type"`

	// RelevanceScore is 0–100 with a floor of 15, computed once per
	// response by the ranker. The floor avoids a "0% relevant" display.
	RelevanceScore int `json:"relevance_score" yaml:"relevance_score"`

	// Keywords is the subset of expanded search terms tied to this result.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// PublishDate is synthetic, with a recency distribution per SourceType.
	PublishDate time.Time `json:"publish_date" yaml:"publish_date"`

	// AuthorCredibility is 0–100: per-domain trust weight plus a
	// source-type bonus.
	AuthorCredibility int `json:"author_credibility" yaml:"author_credibility"`
}

// QueryAnalysis is the analyzer's ephemeral view of one raw query. It is
// never persisted.
type QueryAnalysis struct {
	Language   Language   `json:"language" yaml:"language"`
	Intent     Intent     `json:"intent" yaml:"intent"`
	Category   Category   `json:"category" yaml:"category"`
	Complexity Complexity `json:"complexity" yaml:"complexity"`

	Keywords         []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Synonyms         []string `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	RelatedTerms     []string `json:"related_terms,omitempty" yaml:"related_terms,omitempty"`
	Phrases          []string `json:"phrases,omitempty" yaml:"phrases,omitempty"`
	BooleanOperators []string `json:"boolean_operators,omitempty" yaml:"boolean_operators,omitempty"`

	// SearchTerms is the final deduplicated, capped list that drives
	// candidate generation.
	SearchTerms []string `json:"search_terms,omitempty" yaml:"search_terms,omitempty"`
}

// SearchResponse is the engine's answer to one search or deep-research call.
type SearchResponse struct {
	Results      []SearchResult `json:"results" yaml:"results"`
	TotalResults int            `json:"total_results" yaml:"total_results"`

	// SearchTime is the elapsed wall time in milliseconds.
	SearchTime int64 `json:"search_time_ms" yaml:"search_time_ms"`

	ExpandedKeywords  []string `json:"expanded_keywords,omitempty" yaml:"expanded_keywords,omitempty"`
	SearchSuggestions []string `json:"search_suggestions,omitempty" yaml:"search_suggestions,omitempty"`
}

// ScanOutcome is the content scanner's verdict for one URL.
type ScanOutcome struct {
	Content string     `json:"content" yaml:"content"`
	Status  ScanStatus `json:"status" yaml:"status"`
}
