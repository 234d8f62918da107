// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		query string
		want  types.Language
	}{
		{"explain artificial intelligence", types.LangEnglish},
		{"اشرح الذكاء الاصطناعي", types.LangArabic},
		{"what is تعلم الآلة", types.LangArabic},
		{"1234 !?", types.LangEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := Analyze(tt.query).Language; got != tt.want {
				t.Errorf("Language = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectIntentOrder(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  types.Intent
	}{
		{"explanation", "what is photosynthesis", types.IntentExplanation},
		{"tutorial", "how to bake bread", types.IntentTutorial},
		{"comparison", "rust vs go performance", types.IntentComparison},
		{"news", "latest elections results", types.IntentNews},
		{"programming", "python function scope", types.IntentProgramming},
		{"learning", "best course on linear algebra", types.IntentLearning},
		{"statistical", "smartphone usage statistics", types.IntentStatistical},
		{"general fallback", "tomato plants wilting", types.IntentGeneral},
		// "what is" appears before "statistics" in the pattern order, so
		// explanation wins even though both match.
		{"explanation shadows statistical", "what is the unemployment statistics", types.IntentExplanation},
		// "news" appears before "code", so news wins.
		{"news shadows programming", "latest news about python code", types.IntentNews},
		{"arabic explanation", "ما هو التمثيل الضوئي", types.IntentExplanation},
		{"arabic tutorial", "كيف أتعلم البرمجة", types.IntentTutorial},
		{"arabic news", "آخر أخبار التقنية", types.IntentNews},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Analyze(tt.query).Intent; got != tt.want {
				t.Errorf("Intent = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectCategoryOrder(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  types.Category
	}{
		{"tech", "software architecture patterns", types.CategoryTech},
		{"education", "university admission requirements", types.CategoryEducation},
		{"news", "election coverage tonight", types.CategoryNews},
		{"health", "flu symptoms duration", types.CategoryHealth},
		{"cooking", "pasta recipe with garlic", types.CategoryCooking},
		{"government", "data privacy regulation", types.CategoryGovernment},
		{"industry", "startup market valuation", types.CategoryIndustry},
		{"general fallback", "mountain hiking trails", types.CategoryGeneral},
		// "tech" is tested before "health", so a query matching both lands
		// in tech.
		{"tech shadows health", "ai in medical imaging", types.CategoryTech},
		{"arabic health", "أعراض الانفلونزا", types.CategoryHealth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Analyze(tt.query).Category; got != tt.want {
				t.Errorf("Category = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGradeComplexity(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  types.Complexity
	}{
		{"short is simple", "cats", types.ComplexitySimple},
		{"19 runes is simple", strings.Repeat("a", 19), types.ComplexitySimple},
		{"20 runes is medium", strings.Repeat("a", 20), types.ComplexityMedium},
		{"49 runes is medium", strings.Repeat("a", 49), types.ComplexityMedium},
		{"50 runes is complex", strings.Repeat("a", 50), types.ComplexityComplex},
		{"boolean operator forces complex past 20", "golang AND kubernetes orchestration", types.ComplexityComplex},
		{"boolean operator under 20 stays simple", "cats AND dogs", types.ComplexitySimple},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Analyze(tt.query).Complexity; got != tt.want {
				t.Errorf("Complexity = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	a := Analyze("What is the BEST way to learn Go-lang, quickly?")
	// "what", "the", "best"... stop words and short tokens are dropped;
	// punctuation splits tokens.
	for _, kw := range a.Keywords {
		if len([]rune(kw)) <= 2 {
			t.Errorf("keyword %q has length ≤2", kw)
		}
		if kw != strings.ToLower(kw) {
			t.Errorf("keyword %q is not lowercased", kw)
		}
	}
	if !contains(a.Keywords, "learn") || !contains(a.Keywords, "quickly") {
		t.Errorf("Keywords = %v, missing expected tokens", a.Keywords)
	}
	if contains(a.Keywords, "the") || contains(a.Keywords, "what") {
		t.Errorf("Keywords = %v, stop words not dropped", a.Keywords)
	}
}

func TestExtractPhrases(t *testing.T) {
	a := Analyze(`compare "deep learning" with "decision trees" today`)
	want := []string{"deep learning", "decision trees"}
	if !reflect.DeepEqual(a.Phrases, want) {
		t.Errorf("Phrases = %v, want %v", a.Phrases, want)
	}
}

func TestExtractBooleanOperators(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"golang AND rust NOT java", []string{"AND", "NOT"}},
		{"cats or dogs", []string{"OR"}},
		{"android phones", nil},
		{"NOTEBOOK reviews", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Analyze(tt.query).BooleanOperators
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BooleanOperators = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeEmptyQuery(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		a := Analyze(query)
		if a.Language != types.LangEnglish || a.Intent != types.IntentGeneral ||
			a.Category != types.CategoryGeneral || a.Complexity != types.ComplexitySimple {
			t.Errorf("Analyze(%q) did not degrade to defaults: %+v", query, a)
		}
		if len(a.Keywords) != 0 || len(a.SearchTerms) != 0 {
			t.Errorf("Analyze(%q) should produce empty term sets", query)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	query := "how to secure a web application AND its data"
	first := Analyze(query)
	for i := 0; i < 5; i++ {
		if got := Analyze(query); !reflect.DeepEqual(got, first) {
			t.Fatalf("Analyze is not deterministic: run %d differs", i)
		}
	}
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
