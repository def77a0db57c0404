package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var validCategoryTags = map[string]bool{
	"banking_finance":    true,
	"economic":           true,
	"government_schemes": true,
	"international":      true,
	"sports_awards":      true,
	"general":            true,
}

// Load reads the catalog from a YAML file. A missing file yields the
// built-in defaults; a present but malformed file is an error.
func Load(path string) (*Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	catalog := Default()
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	setDefaults(catalog)

	if err := validate(catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return catalog, nil
}

func setDefaults(c *Catalog) {
	def := Default()

	if c.Scoring.Threshold == 0 {
		c.Scoring.Threshold = def.Scoring.Threshold
	}
	if c.Scoring.HighWeight == 0 {
		c.Scoring.HighWeight = def.Scoring.HighWeight
	}
	if c.Scoring.MediumWeight == 0 {
		c.Scoring.MediumWeight = def.Scoring.MediumWeight
	}
	if c.Scoring.LowWeight == 0 {
		c.Scoring.LowWeight = def.Scoring.LowWeight
	}

	if c.Limits.PageSize == 0 {
		c.Limits.PageSize = def.Limits.PageSize
	}
	if c.Limits.PerSource == 0 {
		c.Limits.PerSource = def.Limits.PerSource
	}
	if c.Limits.PerCategory == 0 {
		c.Limits.PerCategory = def.Limits.PerCategory
	}
	if c.Limits.DescriptionLength == 0 {
		c.Limits.DescriptionLength = def.Limits.DescriptionLength
	}
	if c.Limits.MinTitleLength == 0 {
		c.Limits.MinTitleLength = def.Limits.MinTitleLength
	}
	if c.Limits.MinHeadingLength == 0 {
		c.Limits.MinHeadingLength = def.Limits.MinHeadingLength
	}
	if c.Limits.FingerprintWords == 0 {
		c.Limits.FingerprintWords = def.Limits.FingerprintWords
	}

	if len(c.Keywords.High) == 0 && len(c.Keywords.Medium) == 0 && len(c.Keywords.Low) == 0 {
		c.Keywords = def.Keywords
	}
	if len(c.Categories) == 0 {
		c.Categories = def.Categories
	}
}

func validate(c *Catalog) error {
	if len(c.Queries) == 0 && len(c.Feeds) == 0 && len(c.Pages) == 0 {
		return fmt.Errorf("at least one query, feed, or page source is required")
	}

	for i, rule := range c.Categories {
		if !validCategoryTags[rule.Tag] {
			return fmt.Errorf("invalid category tag at index %d: %s", i, rule.Tag)
		}
		if rule.Tag != "general" && len(rule.Keywords) == 0 {
			return fmt.Errorf("category %s must have at least one keyword", rule.Tag)
		}
	}

	if c.Scoring.Threshold < 0 {
		return fmt.Errorf("scoring threshold must be non-negative")
	}
	if c.Scoring.HighWeight < c.Scoring.MediumWeight || c.Scoring.MediumWeight < c.Scoring.LowWeight {
		return fmt.Errorf("tier weights must be non-increasing from high to low")
	}

	return nil
}
