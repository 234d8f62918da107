// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze classifies a raw user query (language, intent, category,
// complexity) and extracts the terms that drive candidate generation.
// The stage is pure and total: any input string, including empty or
// mixed-script text, yields a fully populated QueryAnalysis and never an
// error. See docs/ARCHITECTURE § Query Analysis.
package analyze

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// classifierPattern pairs one label with its per-language trigger regexes.
// Patterns are tested in slice order against the lowercased raw query and
// the first match wins. Later patterns can be shadowed by earlier, broader
// ones; that priority is part of the contract, so keep the order.
type classifierPattern[T ~string] struct {
	label T
	en    *regexp.Regexp
	ar    *regexp.Regexp
}

var intentPatterns = []classifierPattern[types.Intent]{
	{types.IntentExplanation,
		regexp.MustCompile(`\b(what is|what are|explain|definition of|meaning of)\b`),
		regexp.MustCompile(`ما هو|ما هي|اشرح|تعريف|معنى`)},
	{types.IntentTutorial,
		regexp.MustCompile(`\b(how to|tutorial|guide|step by step|walkthrough)\b`),
		regexp.MustCompile(`كيف|طريقة|خطوات|دليل`)},
	{types.IntentComparison,
		regexp.MustCompile(`\b(vs|versus|compare|difference between|better than)\b`),
		regexp.MustCompile(`مقارنة|الفرق بين|أفضل من|مقابل`)},
	{types.IntentNews,
		regexp.MustCompile(`\b(news|latest|breaking|update|today)\b`),
		regexp.MustCompile(`أخبار|آخر|عاجل|جديد|اليوم`)},
	{types.IntentProgramming,
		regexp.MustCompile(`\b(code|programming|javascript|python|golang|function|error|bug|api)\b`),
		regexp.MustCompile(`برمجة|كود|خطأ|دالة`)},
	{types.IntentLearning,
		regexp.MustCompile(`\b(learn|course|study|education|practice)\b`),
		regexp.MustCompile(`تعلم|دورة|دراسة|تعليم`)},
	{types.IntentStatistical,
		regexp.MustCompile(`\b(statistics|data|numbers|percentage|survey|trends)\b`),
		regexp.MustCompile(`إحصائيات|بيانات|أرقام|نسبة|استطلاع`)},
}

var categoryPatterns = []classifierPattern[types.Category]{
	{types.CategoryTech,
		regexp.MustCompile(`\b(programming|software|computer|tech|ai|artificial intelligence|app|code)\b`),
		regexp.MustCompile(`برمجة|تقنية|حاسوب|ذكاء اصطناعي|تطبيق`)},
	{types.CategoryEducation,
		regexp.MustCompile(`\b(learn|course|study|university|school|education)\b`),
		regexp.MustCompile(`تعلم|دورة|جامعة|مدرسة|تعليم`)},
	{types.CategoryNews,
		regexp.MustCompile(`\b(news|politics|election|breaking|headlines)\b`),
		regexp.MustCompile(`أخبار|سياسة|انتخابات|عاجل`)},
	{types.CategoryHealth,
		regexp.MustCompile(`\b(health|medical|disease|medicine|doctor|symptoms)\b`),
		regexp.MustCompile(`صحة|طب|مرض|دواء|طبيب|أعراض`)},
	{types.CategoryCooking,
		regexp.MustCompile(`\b(recipe|cook|cooking|food|ingredients|bake)\b`),
		regexp.MustCompile(`وصفة|طبخ|طعام|مكونات`)},
	{types.CategoryGovernment,
		regexp.MustCompile(`\b(law|government|regulation|policy|official)\b`),
		regexp.MustCompile(`قانون|حكومة|لائحة|رسمي`)},
	{types.CategoryIndustry,
		regexp.MustCompile(`\b(market|business|industry|company|startup|finance)\b`),
		regexp.MustCompile(`سوق|أعمال|صناعة|شركة|تمويل`)},
}

var phraseRe = regexp.MustCompile(`"([^"]+)"`)

var booleanOpRe = regexp.MustCompile(`(?i)\b(AND|OR|NOT)\b`)

// englishStopWords and arabicStopWords are dropped during keyword
// extraction. Tokens of rune length ≤2 are dropped regardless.
var englishStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "was": true,
	"were": true, "with": true, "that": true, "this": true, "from": true,
	"have": true, "has": true, "had": true, "what": true, "when": true,
	"where": true, "which": true, "will": true, "would": true, "there": true,
	"their": true, "about": true, "into": true, "your": true, "them": true,
	"then": true, "than": true, "how": true, "can": true, "could": true,
	"should": true, "not": true, "but": true, "all": true, "you": true,
}

var arabicStopWords = map[string]bool{
	"في": true, "من": true, "على": true, "إلى": true, "عن": true,
	"أن": true, "إن": true, "كان": true, "كانت": true, "هذا": true,
	"هذه": true, "ذلك": true, "التي": true, "الذي": true, "ما": true,
	"لا": true, "لم": true, "لن": true, "قد": true, "كل": true,
	"بعد": true, "قبل": true, "حتى": true, "إذا": true, "لكن": true,
	"ثم": true, "هل": true, "هو": true, "هي": true, "أو": true,
}

// Analyze classifies query and extracts its search terms. A query that is
// empty after trimming degrades to English/general/general/simple with
// empty term sets.
func Analyze(query string) types.QueryAnalysis {
	trimmed := strings.TrimSpace(query)
	analysis := types.QueryAnalysis{
		Language:   types.LangEnglish,
		Intent:     types.IntentGeneral,
		Category:   types.CategoryGeneral,
		Complexity: types.ComplexitySimple,
	}
	if trimmed == "" {
		return analysis
	}

	analysis.Language = detectLanguage(trimmed)

	lowered := strings.ToLower(trimmed)
	analysis.Intent = detectIntent(lowered, analysis.Language)
	analysis.Category = detectCategory(lowered, analysis.Language)

	analysis.Keywords = extractKeywords(trimmed, analysis.Language)
	analysis.Phrases = extractPhrases(trimmed)
	analysis.BooleanOperators = extractBooleanOperators(trimmed)
	analysis.Complexity = gradeComplexity(trimmed, analysis.BooleanOperators)

	analysis.Synonyms = expandSynonyms(analysis.Keywords, analysis.Language)
	analysis.RelatedTerms = expandRelatedTerms(analysis.Keywords)
	analysis.SearchTerms = buildSearchTerms(analysis)

	return analysis
}

// detectLanguage returns Arabic when any codepoint falls in the Arabic
// Unicode block, English otherwise.
func detectLanguage(query string) types.Language {
	for _, r := range query {
		if unicode.Is(unicode.Arabic, r) {
			return types.LangArabic
		}
	}
	return types.LangEnglish
}

func detectIntent(lowered string, lang types.Language) types.Intent {
	for _, p := range intentPatterns {
		re := p.en
		if lang == types.LangArabic {
			re = p.ar
		}
		if re.MatchString(lowered) {
			return p.label
		}
	}
	return types.IntentGeneral
}

func detectCategory(lowered string, lang types.Language) types.Category {
	for _, p := range categoryPatterns {
		re := p.en
		if lang == types.LangArabic {
			re = p.ar
		}
		if re.MatchString(lowered) {
			return p.label
		}
	}
	return types.CategoryGeneral
}

// extractKeywords strips punctuation, lowercases, splits on whitespace, and
// drops short tokens and stop words.
func extractKeywords(query string, lang types.Language) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(query) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	stop := englishStopWords
	if lang == types.LangArabic {
		stop = arabicStopWords
	}

	var keywords []string
	for _, tok := range strings.Fields(b.String()) {
		if len([]rune(tok)) <= 2 {
			continue
		}
		if stop[tok] {
			continue
		}
		keywords = append(keywords, tok)
	}
	return keywords
}

// extractPhrases returns double-quoted substrings with the quotes stripped.
func extractPhrases(query string) []string {
	var phrases []string
	for _, m := range phraseRe.FindAllStringSubmatch(query, -1) {
		phrases = append(phrases, m[1])
	}
	return phrases
}

// extractBooleanOperators collects AND/OR/NOT in order of appearance,
// normalized to upper case.
func extractBooleanOperators(query string) []string {
	var ops []string
	for _, m := range booleanOpRe.FindAllString(query, -1) {
		ops = append(ops, strings.ToUpper(m))
	}
	return ops
}

// gradeComplexity grades on rune length and boolean structure: <20 simple,
// <50 without boolean operators medium, otherwise complex.
func gradeComplexity(query string, boolOps []string) types.Complexity {
	n := len([]rune(query))
	switch {
	case n < 20:
		return types.ComplexitySimple
	case n < 50 && len(boolOps) == 0:
		return types.ComplexityMedium
	default:
		return types.ComplexityComplex
	}
}
