package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// Enricher fills in a missing description by fetching the linked page
// and extracting its readable text.
type Enricher struct {
	userAgent string
	maxLength int
	client    *http.Client
}

func NewEnricher(userAgent string, maxLength int, client *http.Client) *Enricher {
	return &Enricher{
		userAgent: userAgent,
		maxLength: maxLength,
		client:    client,
	}
}

// Describe returns a plain-text summary extracted from the page at
// link, truncated to the configured length.
func (e *Enricher) Describe(ctx context.Context, link string) (string, error) {
	if link == "" {
		return "", fmt.Errorf("no link to enrich from")
	}

	pageURL, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("invalid link: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	if text == "" {
		return "", fmt.Errorf("no content extracted from page")
	}

	if runes := []rune(text); len(runes) > e.maxLength {
		text = string(runes[:e.maxLength])
	}

	return text, nil
}
