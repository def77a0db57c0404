package sources

import (
	"context"
	"fmt"
	"testing"

	"github.com/prepdesk/bankdigest/app/digest"
)

type stubSource struct {
	name     string
	articles []digest.Article
	err      error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context) ([]digest.Article, error) {
	return s.articles, s.err
}

func TestCollector_FailingSourceSkipped(t *testing.T) {
	failing := &stubSource{name: "rss", err: fmt.Errorf("connection timed out")}
	working := &stubSource{name: "newsapi", articles: []digest.Article{
		{Title: "RBI keeps repo rate unchanged at review", Source: "newsapi"},
	}}

	collector := NewCollector(working, failing)

	articles := collector.Collect(context.Background())

	if len(articles) != 1 {
		t.Fatalf("Expected 1 article from the working source, got %d", len(articles))
	}
	if articles[0].Source != "newsapi" {
		t.Errorf("Unexpected source: %q", articles[0].Source)
	}
}

func TestCollector_PreservesSourceOrder(t *testing.T) {
	query := &stubSource{name: "newsapi", articles: []digest.Article{{Title: "from query", Source: "newsapi"}}}
	rss := &stubSource{name: "rss", articles: []digest.Article{{Title: "from rss", Source: "rss"}}}
	scrape := &stubSource{name: "scraper", articles: []digest.Article{{Title: "from scrape", Source: "scraper"}}}

	collector := NewCollector(query, rss, scrape)

	articles := collector.Collect(context.Background())

	if len(articles) != 3 {
		t.Fatalf("Expected 3 articles, got %d", len(articles))
	}
	order := []string{"newsapi", "rss", "scraper"}
	for i, want := range order {
		if articles[i].Source != want {
			t.Errorf("Expected source %q at index %d, got %q", want, i, articles[i].Source)
		}
	}
}
