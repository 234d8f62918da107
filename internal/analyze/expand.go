// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// conceptSynonyms maps a canonical concept key to its per-language synonym
// lists. A keyword matches a concept when it equals (case-insensitively)
// any entry in the language's list; on match the other entries of that
// list become synonyms. The tables are immutable configuration, loaded
// once and never written.
var conceptSynonyms = map[string]map[types.Language][]string{
	"programming": {
		types.LangEnglish: {"programming", "coding", "software development", "development"},
		types.LangArabic:  {"برمجة", "تطوير", "كتابة الأكواد"},
	},
	"learning": {
		types.LangEnglish: {"learning", "education", "studying", "training"},
		types.LangArabic:  {"تعلم", "تعليم", "دراسة", "تدريب"},
	},
	"health": {
		types.LangEnglish: {"health", "wellness", "medicine", "medical care"},
		types.LangArabic:  {"صحة", "عافية", "طب", "رعاية صحية"},
	},
	"business": {
		types.LangEnglish: {"business", "commerce", "trade", "enterprise"},
		types.LangArabic:  {"أعمال", "تجارة", "مشاريع"},
	},
	"technology": {
		types.LangEnglish: {"technology", "tech", "digital", "innovation"},
		types.LangArabic:  {"تقنية", "تكنولوجيا", "رقمية", "ابتكار"},
	},
	"cooking": {
		types.LangEnglish: {"cooking", "cuisine", "recipes", "food preparation"},
		types.LangArabic:  {"طبخ", "مطبخ", "وصفات"},
	},
}

// conceptOrder fixes the lookup order over conceptSynonyms so that term
// assembly is deterministic for a given query.
var conceptOrder = []string{"programming", "learning", "health", "business", "technology", "cooking"}

// relatedTermTable maps substring keys to related terms. A keyword
// contributes a table entry when it contains the key.
var relatedTermTable = map[string][]string{
	"ai":       {"machine learning", "deep learning", "neural networks", "artificial intelligence"},
	"web":      {"frontend", "backend", "html", "javascript"},
	"data":     {"database", "analytics", "big data", "data science"},
	"security": {"encryption", "privacy", "cybersecurity", "authentication"},
	"cloud":    {"aws", "azure", "devops", "infrastructure"},
	"ذكاء":     {"تعلم الآلة", "الشبكات العصبية", "الذكاء الاصطناعي"},
	"بيانات":   {"قواعد البيانات", "تحليل البيانات", "علم البيانات"},
}

// relatedOrder fixes the lookup order over relatedTermTable.
var relatedOrder = []string{"ai", "web", "data", "security", "cloud", "ذكاء", "بيانات"}

// intentBoilerplate supplies intent-specific filler terms appended when
// assembling the final search term list.
var intentBoilerplate = map[types.Intent]map[types.Language][]string{
	types.IntentExplanation: {
		types.LangEnglish: {"overview", "basics"},
		types.LangArabic:  {"شرح", "مفهوم"},
	},
	types.IntentTutorial: {
		types.LangEnglish: {"tutorial", "guide"},
		types.LangArabic:  {"شرح خطوة بخطوة", "دليل"},
	},
	types.IntentComparison: {
		types.LangEnglish: {"comparison"},
		types.LangArabic:  {"مقارنة"},
	},
	types.IntentNews: {
		types.LangEnglish: {"latest news"},
		types.LangArabic:  {"آخر الأخبار"},
	},
	types.IntentProgramming: {
		types.LangEnglish: {"example code", "documentation"},
		types.LangArabic:  {"أمثلة برمجية", "توثيق"},
	},
	types.IntentLearning: {
		types.LangEnglish: {"course", "curriculum"},
		types.LangArabic:  {"دورة", "منهج"},
	},
	types.IntentStatistical: {
		types.LangEnglish: {"statistics", "report"},
		types.LangArabic:  {"إحصائيات", "تقرير"},
	},
}

const maxSearchTerms = 12

// expandSynonyms returns the deduplicated synonyms for keywords in lang.
// An unmatched keyword contributes nothing.
func expandSynonyms(keywords []string, lang types.Language) []string {
	var synonyms []string
	seen := make(map[string]bool)
	for _, kw := range keywords {
		for _, concept := range conceptOrder {
			list := conceptSynonyms[concept][lang]
			if !containsFold(list, kw) {
				continue
			}
			for _, entry := range list {
				if strings.EqualFold(entry, kw) {
					continue
				}
				key := strings.ToLower(entry)
				if !seen[key] {
					seen[key] = true
					synonyms = append(synonyms, entry)
				}
			}
		}
	}
	return synonyms
}

// expandRelatedTerms returns deduplicated related terms for keywords that
// contain one of the table's substring keys.
func expandRelatedTerms(keywords []string) []string {
	var related []string
	seen := make(map[string]bool)
	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		for _, key := range relatedOrder {
			if !strings.Contains(lower, key) {
				continue
			}
			for _, term := range relatedTermTable[key] {
				k := strings.ToLower(term)
				if !seen[k] {
					seen[k] = true
					related = append(related, term)
				}
			}
		}
	}
	return related
}

// buildSearchTerms assembles the final generation-driving term list:
// keywords, then up to three synonyms, up to two related terms, and the
// intent boilerplate, deduplicated case-insensitively and capped at 12.
func buildSearchTerms(a types.QueryAnalysis) []string {
	var terms []string
	terms = append(terms, a.Keywords...)
	terms = append(terms, capList(a.Synonyms, 3)...)
	terms = append(terms, capList(a.RelatedTerms, 2)...)
	if boiler, ok := intentBoilerplate[a.Intent]; ok {
		terms = append(terms, boiler[a.Language]...)
	}

	seen := make(map[string]bool)
	var out []string
	for _, t := range terms {
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
		if len(out) == maxSearchTerms {
			break
		}
	}
	return out
}

func capList(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func containsFold(list []string, s string) bool {
	for _, entry := range list {
		if strings.EqualFold(entry, s) {
			return true
		}
	}
	return false
}
