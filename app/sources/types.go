package sources

import (
	"context"
	"log/slog"

	"github.com/prepdesk/bankdigest/app/digest"
)

// Source pulls raw candidate articles from one upstream kind.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]digest.Article, error)
}

// Collector runs every source sequentially in a fixed order. A failing
// source is logged and skipped; the run continues with whatever the
// other sources gathered.
type Collector struct {
	sources []Source
}

func NewCollector(sources ...Source) *Collector {
	return &Collector{sources: sources}
}

// Collect returns the flat bag of candidate articles. The source order
// passed to NewCollector determines which duplicate survives later
// deduplication, so it must stay deterministic.
func (c *Collector) Collect(ctx context.Context) []digest.Article {
	var articles []digest.Article

	for _, source := range c.sources {
		fetched, err := source.Fetch(ctx)
		if err != nil {
			slog.Warn("Source fetch failed, skipping", "source", source.Name(), "error", err)
			continue
		}

		slog.Info("Source fetched", "source", source.Name(), "count", len(fetched))
		articles = append(articles, fetched...)
	}

	return articles
}
