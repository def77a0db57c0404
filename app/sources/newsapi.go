package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/prepdesk/bankdigest/app/digest"
)

// QuerySource issues one search request per configured free-text query
// against a NewsAPI-compatible endpoint, constrained to the prior 24
// hours and sorted newest-first.
type QuerySource struct {
	endpoint string
	apiKey   string
	queries  []string
	pageSize int
	pipeline *digest.Pipeline
	enricher *Enricher
	client   *http.Client
}

func NewQuerySource(endpoint, apiKey string, queries []string, pageSize int,
	pipeline *digest.Pipeline, enricher *Enricher, client *http.Client) *QuerySource {
	return &QuerySource{
		endpoint: endpoint,
		apiKey:   apiKey,
		queries:  queries,
		pageSize: pageSize,
		pipeline: pipeline,
		enricher: enricher,
		client:   client,
	}
}

func (s *QuerySource) Name() string {
	return "newsapi"
}

func (s *QuerySource) Fetch(ctx context.Context) ([]digest.Article, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("query source disabled: no API key configured")
	}

	var articles []digest.Article

	// A failing query must not abort the remaining queries.
	for _, query := range s.queries {
		fetched, err := s.fetchQuery(ctx, query)
		if err != nil {
			slog.Warn("Query fetch failed, skipping", "query", query, "error", err)
			continue
		}
		articles = append(articles, fetched...)
	}

	return articles, nil
}

func (s *QuerySource) fetchQuery(ctx context.Context, query string) ([]digest.Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("from", time.Now().AddDate(0, 0, -1).Format("2006-01-02"))
	params.Set("pageSize", fmt.Sprintf("%d", s.pageSize))
	params.Set("apiKey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch query results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	var raw queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	articles := make([]digest.Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		if item.Title == "" && item.Description == "" {
			continue
		}

		description := item.Description
		if description == "" && s.enricher != nil {
			if extracted, err := s.enricher.Describe(ctx, item.URL); err == nil {
				description = extracted
			}
		}

		source := item.Source.Name
		if source == "" {
			source = s.Name()
		}

		articles = append(articles, s.pipeline.Normalize(
			item.Title, description, source, item.URL, item.PublishedAt))
	}

	return articles, nil
}

type queryResponse struct {
	Articles []queryArticle `json:"articles"`
}

type queryArticle struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	PublishedAt string      `json:"publishedAt"`
	Source      querySource `json:"source"`
}

type querySource struct {
	Name string `json:"name"`
}
