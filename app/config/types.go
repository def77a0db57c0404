package config

// Catalog describes where articles come from and how they are weighed.
// It is loaded once at startup and passed by reference into the pipeline.
type Catalog struct {
	Queries []string `yaml:"queries"`
	Feeds   []string `yaml:"feeds"`
	Pages   []string `yaml:"pages"`

	Keywords   CatalogKeywords `yaml:"keywords"`
	Categories []CatalogRule   `yaml:"categories"`
	Scoring    CatalogScoring  `yaml:"scoring"`
	Limits     CatalogLimits   `yaml:"limits"`
}

// CatalogKeywords holds the three disjoint relevance tiers.
type CatalogKeywords struct {
	High   []string `yaml:"high"`
	Medium []string `yaml:"medium"`
	Low    []string `yaml:"low"`
}

// CatalogRule binds a category tag to its keyword set. Order in the
// catalog is precedence order: the first matching rule wins.
type CatalogRule struct {
	Tag      string   `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
}

type CatalogScoring struct {
	Threshold    int `yaml:"threshold"`
	HighWeight   int `yaml:"high_weight"`
	MediumWeight int `yaml:"medium_weight"`
	LowWeight    int `yaml:"low_weight"`
}

type CatalogLimits struct {
	PageSize          int `yaml:"page_size"`          // query source results per request
	PerSource         int `yaml:"per_source"`         // head slice per feed/page
	PerCategory       int `yaml:"per_category"`       // articles handed to the generative pass
	DescriptionLength int `yaml:"description_length"` // truncation at ingestion
	MinTitleLength    int `yaml:"min_title_length"`   // degenerate-title cutoff
	MinHeadingLength  int `yaml:"min_heading_length"` // scraped-page navigation chrome cutoff
	FingerprintWords  int `yaml:"fingerprint_words"`
}
