package config

// Default returns the built-in catalog mirroring the reference sources
// and keyword lists for banking exam preparation.
func Default() *Catalog {
	return &Catalog{
		Queries: []string{
			"India AND (RBI OR SEBI OR banking OR economic)",
		},
		Feeds: []string{
			"https://economictimes.indiatimes.com/markets/rssfeeds/1977021501.cms",
			"https://www.business-standard.com/rss/finance-103.rss",
		},
		Pages: []string{
			"https://www.livemint.com/industry/banking",
		},
		Keywords: CatalogKeywords{
			High: []string{
				"rbi", "reserve bank", "sebi", "monetary", "policy", "repo rate",
				"inflation", "gdp", "banking", "bank", "nabard", "npci", "upi",
				"government scheme", "kisan", "agriculture credit", "crr", "slr",
				"financial inclusion",
			},
			Medium: []string{
				"sensex", "nifty", "stock market", "mutual fund", "ipo", "bond",
				"fintech", "digital payment", "insurance", "rupee", "forex",
				"nbfc", "treasury",
			},
			Low: []string{
				"international", "summit", "sports", "cricket", "award", "medal",
				"olympic", "world bank", "imf", "election", "tournament",
			},
		},
		Categories: []CatalogRule{
			{
				Tag: "banking_finance",
				Keywords: []string{
					"rbi", "bank", "sebi", "upi", "npci", "nbfc", "loan",
					"credit", "deposit", "repo", "finance", "insurance",
				},
			},
			{
				Tag: "economic",
				Keywords: []string{
					"gdp", "inflation", "economy", "economic", "budget",
					"fiscal", "tax", "trade", "export", "import",
				},
			},
			{
				Tag: "government_schemes",
				Keywords: []string{
					"scheme", "yojana", "pradhan mantri", "subsidy",
					"welfare", "mission", "pension",
				},
			},
			{
				Tag: "international",
				Keywords: []string{
					"global", "world", "china", "united states", "summit",
					"treaty", "foreign", "bilateral",
				},
			},
			{
				Tag: "sports_awards",
				Keywords: []string{
					"sport", "cricket", "olympic", "award", "medal",
					"tournament", "championship", "prize",
				},
			},
		},
		Scoring: CatalogScoring{
			Threshold:    2,
			HighWeight:   3,
			MediumWeight: 2,
			LowWeight:    1,
		},
		Limits: CatalogLimits{
			PageSize:          20,
			PerSource:         10,
			PerCategory:       8,
			DescriptionLength: 300,
			MinTitleLength:    15,
			MinHeadingLength:  20,
			FingerprintWords:  8,
		},
	}
}
