package sources

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/mmcdole/gofeed"

	"github.com/prepdesk/bankdigest/app/digest"
)

// FeedSource retrieves and parses the configured syndicated feeds,
// taking a head slice of items from each.
type FeedSource struct {
	feeds     []string
	perSource int
	userAgent string
	pipeline  *digest.Pipeline
	enricher  *Enricher
	client    *http.Client
	parser    *gofeed.Parser
}

func NewFeedSource(feeds []string, perSource int, userAgent string,
	pipeline *digest.Pipeline, enricher *Enricher, client *http.Client) *FeedSource {
	return &FeedSource{
		feeds:     feeds,
		perSource: perSource,
		userAgent: userAgent,
		pipeline:  pipeline,
		enricher:  enricher,
		client:    client,
		parser:    gofeed.NewParser(),
	}
}

func (s *FeedSource) Name() string {
	return "rss"
}

func (s *FeedSource) Fetch(ctx context.Context) ([]digest.Article, error) {
	var articles []digest.Article

	// One unreachable or malformed feed must not abort the others.
	for _, feedURL := range s.feeds {
		fetched, err := s.fetchFeed(ctx, feedURL)
		if err != nil {
			slog.Warn("Feed fetch failed, skipping", "feed", feedURL, "error", err)
			continue
		}
		articles = append(articles, fetched...)
	}

	return articles, nil
}

func (s *FeedSource) fetchFeed(ctx context.Context, feedURL string) ([]digest.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	feed, err := s.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	label := hostLabel(feedURL)

	items := feed.Items
	if s.perSource > 0 && len(items) > s.perSource {
		items = items[:s.perSource]
	}

	articles := make([]digest.Article, 0, len(items))
	for _, item := range items {
		if item.Title == "" {
			continue
		}

		description := item.Description
		if description == "" && s.enricher != nil {
			if extracted, err := s.enricher.Describe(ctx, item.Link); err == nil {
				description = extracted
			}
		}

		articles = append(articles, s.pipeline.Normalize(
			item.Title, description, label, item.Link, item.Published))
	}

	return articles, nil
}

// hostLabel derives the display source label from a URL's hostname.
func hostLabel(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}
	return parsed.Host
}
