// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"fmt"
	"net/url"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Site is one fixed source record: a real-world domain with a display
// name and provenance classification.
type Site struct {
	Domain     string
	Name       string
	SiteType   string
	SourceType types.SourceType
}

// categorySites lists the configured sites per search category. The slice
// order is the generation order, which also fixes the deduplication
// tie-break downstream, so keep it stable.
var categorySites = map[types.Category][]Site{
	types.CategoryAcademic: {
		{"arxiv.org", "arXiv", "preprint archive", types.SourceAcademic},
		{"scholar.google.com", "Google Scholar", "literature index", types.SourceAcademic},
		{"pubmed.ncbi.nlm.nih.gov", "PubMed", "biomedical index", types.SourceAcademic},
		{"nature.com", "Nature", "journal", types.SourceAcademic},
		{"sciencedirect.com", "ScienceDirect", "journal platform", types.SourceAcademic},
		{"jstor.org", "JSTOR", "archive", types.SourceAcademic},
		{"researchgate.net", "ResearchGate", "research network", types.SourceAcademic},
	},
	types.CategoryIndustry: {
		{"techcrunch.com", "TechCrunch", "tech press", types.SourceIndustry},
		{"forbes.com", "Forbes", "business press", types.SourceIndustry},
		{"hbr.org", "Harvard Business Review", "management journal", types.SourceWhitepaper},
		{"bloomberg.com", "Bloomberg", "financial press", types.SourceIndustry},
		{"wired.com", "WIRED", "tech press", types.SourceIndustry},
		{"mckinsey.com", "McKinsey & Company", "consultancy", types.SourceCaseStudy},
	},
	types.CategoryGovernment: {
		{"usa.gov", "USA.gov", "government portal", types.SourceGovernment},
		{"europa.eu", "European Union", "government portal", types.SourceGovernment},
		{"un.org", "United Nations", "international org", types.SourceGovernment},
		{"who.int", "World Health Organization", "international org", types.SourceGovernment},
		{"data.gov", "Data.gov", "open data portal", types.SourceGovernment},
		{"worldbank.org", "World Bank", "international org", types.SourceGovernment},
	},
	types.CategoryExpert: {
		{"stackoverflow.com", "Stack Overflow", "Q&A community", types.SourceExpert},
		{"github.com", "GitHub", "code hosting", types.SourceExpert},
		{"medium.com", "Medium", "blog platform", types.SourceExpert},
		{"dev.to", "DEV Community", "blog platform", types.SourceExpert},
		{"quora.com", "Quora", "Q&A community", types.SourceExpert},
		{"reddit.com", "Reddit", "discussion forum", types.SourceExpert},
	},
	types.CategoryStatistical: {
		{"statista.com", "Statista", "statistics portal", types.SourceStatistical},
		{"ourworldindata.org", "Our World in Data", "statistics portal", types.SourceStatistical},
		{"pewresearch.org", "Pew Research Center", "research institute", types.SourceStatistical},
		{"data.worldbank.org", "World Bank Open Data", "open data portal", types.SourceStatistical},
		{"gallup.com", "Gallup", "polling institute", types.SourceStatistical},
		{"kaggle.com", "Kaggle", "data platform", types.SourceStatistical},
	},
	types.CategoryGeneral: {
		{"wikipedia.org", "Wikipedia", "encyclopedia", types.SourceGeneral},
		{"britannica.com", "Encyclopaedia Britannica", "encyclopedia", types.SourceGeneral},
		{"khanacademy.org", "Khan Academy", "learning platform", types.SourceGeneral},
		{"coursera.org", "Coursera", "learning platform", types.SourceGeneral},
		{"ted.com", "TED", "talks", types.SourceGeneral},
		{"howstuffworks.com", "HowStuffWorks", "reference", types.SourceGeneral},
	},
}

// englishNewsSites and arabicNewsSites are the per-language site lists for
// the news category.
var englishNewsSites = []Site{
	{"reuters.com", "Reuters", "news agency", types.SourceNews},
	{"bbc.com", "BBC News", "broadcaster", types.SourceNews},
	{"apnews.com", "Associated Press", "news agency", types.SourceNews},
	{"theguardian.com", "The Guardian", "newspaper", types.SourceNews},
	{"nytimes.com", "The New York Times", "newspaper", types.SourceNews},
	{"cnn.com", "CNN", "broadcaster", types.SourceNews},
}

var arabicNewsSites = []Site{
	{"aljazeera.net", "الجزيرة نت", "broadcaster", types.SourceNews},
	{"alarabiya.net", "العربية", "broadcaster", types.SourceNews},
	{"skynewsarabia.com", "سكاي نيوز عربية", "broadcaster", types.SourceNews},
	{"arabic.cnn.com", "CNN بالعربية", "broadcaster", types.SourceNews},
	{"bbc.com", "بي بي سي عربي", "broadcaster", types.SourceNews},
	{"alhurra.com", "الحرة", "broadcaster", types.SourceNews},
}

// SitesFor returns the configured sites for a category, selecting the
// per-language list for news.
func SitesFor(category types.Category, lang types.Language) []Site {
	if category == types.CategoryNews {
		if lang == types.LangArabic {
			return arabicNewsSites
		}
		return englishNewsSites
	}
	return categorySites[category]
}

// CategoryDomains returns the canonical domain list for a category. The
// ranker treats membership as a category-relevance signal.
func CategoryDomains(category types.Category, lang types.Language) []string {
	sites := SitesFor(category, lang)
	domains := make([]string, len(sites))
	for i, s := range sites {
		domains[i] = s.Domain
	}
	return domains
}

// domainCredibility is the static per-domain trust weight. Domains not
// listed default to 70.
var domainCredibility = map[string]int{
	"arxiv.org":               95,
	"scholar.google.com":      92,
	"pubmed.ncbi.nlm.nih.gov": 96,
	"nature.com":              97,
	"sciencedirect.com":       93,
	"jstor.org":               90,
	"researchgate.net":        85,
	"reuters.com":             92,
	"bbc.com":                 90,
	"apnews.com":              91,
	"theguardian.com":         87,
	"nytimes.com":             88,
	"cnn.com":                 82,
	"aljazeera.net":           85,
	"alarabiya.net":           80,
	"skynewsarabia.com":       78,
	"arabic.cnn.com":          80,
	"alhurra.com":             75,
	"techcrunch.com":          78,
	"forbes.com":              80,
	"hbr.org":                 86,
	"bloomberg.com":           88,
	"wired.com":               79,
	"mckinsey.com":            87,
	"usa.gov":                 95,
	"europa.eu":               94,
	"un.org":                  95,
	"who.int":                 97,
	"data.gov":                93,
	"worldbank.org":           94,
	"stackoverflow.com":       88,
	"github.com":              86,
	"medium.com":              65,
	"dev.to":                  68,
	"quora.com":               60,
	"reddit.com":              55,
	"statista.com":            90,
	"ourworldindata.org":      92,
	"pewresearch.org":         93,
	"data.worldbank.org":      94,
	"gallup.com":              89,
	"kaggle.com":              80,
	"wikipedia.org":           86,
	"britannica.com":          90,
	"khanacademy.org":         88,
	"coursera.org":            84,
	"ted.com":                 82,
	"howstuffworks.com":       72,
}

const defaultCredibility = 70

// sourceTypeBonus is added to the domain weight to form the final
// credibility score.
var sourceTypeBonus = map[types.SourceType]int{
	types.SourceAcademic:    10,
	types.SourceGovernment:  15,
	types.SourceNews:        5,
	types.SourceIndustry:    5,
	types.SourceStatistical: 10,
}

// Credibility returns the 0–100 credibility score for a domain and source
// type.
func Credibility(domain string, st types.SourceType) int {
	score, ok := domainCredibility[domain]
	if !ok {
		score = defaultCredibility
	}
	score += sourceTypeBonus[st]
	if score > 100 {
		score = 100
	}
	return score
}

// searchURLTemplates holds per-domain search URL formats for well-known
// sites; %s is the escaped query. Unlisted domains use a generic
// /search?q= URL.
var searchURLTemplates = map[string]string{
	"arxiv.org":               "https://arxiv.org/search/?query=%s&searchtype=all",
	"scholar.google.com":      "https://scholar.google.com/scholar?q=%s",
	"pubmed.ncbi.nlm.nih.gov": "https://pubmed.ncbi.nlm.nih.gov/?term=%s",
	"stackoverflow.com":       "https://stackoverflow.com/search?q=%s",
	"github.com":              "https://github.com/search?q=%s&type=repositories",
	"wikipedia.org":           "https://en.wikipedia.org/w/index.php?search=%s",
	"statista.com":            "https://www.statista.com/search/?q=%s",
	"reddit.com":              "https://www.reddit.com/search/?q=%s",
	"kaggle.com":              "https://www.kaggle.com/search?q=%s",
}

// SearchURL builds the simulated result URL for a domain and query term.
func SearchURL(domain, term string) string {
	escaped := url.QueryEscape(term)
	if tmpl, ok := searchURLTemplates[domain]; ok {
		return fmt.Sprintf(tmpl, escaped)
	}
	return fmt.Sprintf("https://%s/search?q=%s", domain, escaped)
}

// FaviconURL derives an icon URL for a domain.
func FaviconURL(domain string) string {
	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=64", domain)
}
