package digest

import (
	"html"
	"regexp"
	"sort"
	"strings"

	"github.com/prepdesk/bankdigest/app/config"
)

var markupTags = regexp.MustCompile(`<[^>]*>`)

// Pipeline holds the data-driven rules for normalizing, deduplicating,
// scoring, and categorizing articles within one run.
type Pipeline struct {
	tiers     []Tier
	rules     []Rule
	threshold int

	descriptionLength int
	minTitleLength    int
	fingerprintWords  int
	perCategory       int
}

// NewPipeline builds a pipeline from the loaded catalog.
func NewPipeline(catalog *config.Catalog) *Pipeline {
	tiers := []Tier{
		{Weight: catalog.Scoring.HighWeight, Keywords: catalog.Keywords.High},
		{Weight: catalog.Scoring.MediumWeight, Keywords: catalog.Keywords.Medium},
		{Weight: catalog.Scoring.LowWeight, Keywords: catalog.Keywords.Low},
	}

	rules := make([]Rule, 0, len(catalog.Categories))
	for _, rule := range catalog.Categories {
		rules = append(rules, Rule{Tag: Category(rule.Tag), Keywords: rule.Keywords})
	}

	return &Pipeline{
		tiers:             tiers,
		rules:             rules,
		threshold:         catalog.Scoring.Threshold,
		descriptionLength: catalog.Limits.DescriptionLength,
		minTitleLength:    catalog.Limits.MinTitleLength,
		fingerprintWords:  catalog.Limits.FingerprintWords,
		perCategory:       catalog.Limits.PerCategory,
	}
}

// Normalize maps a raw record from any source into the uniform Article
// shape: markup stripped from the description, entities decoded, and the
// description truncated at ingestion.
func (p *Pipeline) Normalize(title, description, source, url, published string) Article {
	title = strings.TrimSpace(html.UnescapeString(markupTags.ReplaceAllString(title, "")))
	description = strings.TrimSpace(html.UnescapeString(markupTags.ReplaceAllString(description, " ")))
	description = strings.Join(strings.Fields(description), " ")

	if runes := []rune(description); len(runes) > p.descriptionLength {
		description = string(runes[:p.descriptionLength])
	}

	return Article{
		Title:       title,
		Description: description,
		Source:      source,
		URL:         url,
		Published:   published,
	}
}

// Fingerprint derives the deduplication key from a title: the lowercase,
// whitespace-joined head of the word list. Same title, same fingerprint,
// independent of description or source.
func (p *Pipeline) Fingerprint(title string) string {
	words := strings.Fields(strings.ToLower(title))
	if len(words) > p.fingerprintWords {
		words = words[:p.fingerprintWords]
	}
	return strings.Join(words, " ")
}

// Dedupe keeps the first-seen article per fingerprint, preserving input
// order. Articles with degenerate titles are dropped outright.
func (p *Pipeline) Dedupe(articles []Article) []Article {
	seen := make(map[string]bool, len(articles))
	result := make([]Article, 0, len(articles))

	for _, article := range articles {
		if len([]rune(strings.TrimSpace(article.Title))) < p.minTitleLength {
			continue
		}

		fp := p.Fingerprint(article.Title)
		if seen[fp] {
			continue
		}
		seen[fp] = true
		result = append(result, article)
	}

	return result
}

// Score sums, over the keyword tiers, the tier weight for every keyword
// found as a case-insensitive substring of title+description. Keywords
// are checked independently and each contributes its weight once.
func (p *Pipeline) Score(article Article) int {
	text := strings.ToLower(article.Title + " " + article.Description)

	score := 0
	for _, tier := range p.tiers {
		for _, keyword := range tier.Keywords {
			if strings.Contains(text, strings.ToLower(keyword)) {
				score += tier.Weight
			}
		}
	}

	return score
}

// Filter attaches scores, drops articles below the relevance threshold,
// and sorts the survivors descending by score. Ties retain prior
// relative order.
func (p *Pipeline) Filter(articles []Article) []Article {
	result := make([]Article, 0, len(articles))
	for _, article := range articles {
		article.Score = p.Score(article)
		if article.Score < p.threshold {
			continue
		}
		result = append(result, article)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})

	return result
}

// Categorize assigns exactly one category using first-match precedence
// over the ordered rule list, falling through to general.
func (p *Pipeline) Categorize(article Article) Category {
	text := strings.ToLower(article.Title + " " + article.Description)

	for _, rule := range p.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, strings.ToLower(keyword)) {
				return rule.Tag
			}
		}
	}

	return CategoryGeneral
}

// ApplyCategories stamps every article with its category in place.
func (p *Pipeline) ApplyCategories(articles []Article) []Article {
	for i := range articles {
		articles[i].Category = p.Categorize(articles[i])
	}
	return articles
}

// Group buckets articles by category, capping each bucket to bound the
// text sent to the generative pass. Input order (descending score) is
// preserved inside each bucket, so the cap keeps the top scorers.
func (p *Pipeline) Group(articles []Article) map[Category][]Article {
	grouped := make(map[Category][]Article)
	for _, article := range articles {
		if len(grouped[article.Category]) >= p.perCategory {
			continue
		}
		grouped[article.Category] = append(grouped[article.Category], article)
	}
	return grouped
}
