package digest

// Category is one fixed topical bucket assigned to each surviving article.
type Category string

const (
	CategoryBankingFinance    Category = "banking_finance"
	CategoryEconomic          Category = "economic"
	CategoryGovernmentSchemes Category = "government_schemes"
	CategoryInternational     Category = "international"
	CategorySportsAwards      Category = "sports_awards"
	CategoryGeneral           Category = "general"
)

// CategoryOrder is the fixed assembly order of the final document.
var CategoryOrder = []Category{
	CategoryBankingFinance,
	CategoryEconomic,
	CategoryGovernmentSchemes,
	CategoryInternational,
	CategorySportsAwards,
	CategoryGeneral,
}

// Article is the unit of work throughout the pipeline. Records are
// created fresh per run and live only in memory; each is an independent
// value with no references to other articles.
type Article struct {
	Title       string
	Description string
	Source      string
	URL         string
	Published   string // carried opaquely, never parsed
	Score       int    // attached by the scorer
	Category    Category
}

// Tier is one relevance keyword tier with its per-hit weight.
type Tier struct {
	Weight   int
	Keywords []string
}

// Rule binds a category to its keyword set; rules are evaluated in
// slice order, first match wins.
type Rule struct {
	Tag      Category
	Keywords []string
}
