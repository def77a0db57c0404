package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/prepdesk/bankdigest/app/digest"
)

// PageSource scrapes listing pages, pairing heading-like elements with
// a following paragraph-like element as the description.
type PageSource struct {
	pages      []string
	perSource  int
	minHeading int
	userAgent  string
	pipeline   *digest.Pipeline
	client     *http.Client
}

func NewPageSource(pages []string, perSource, minHeading int, userAgent string,
	pipeline *digest.Pipeline, client *http.Client) *PageSource {
	return &PageSource{
		pages:      pages,
		perSource:  perSource,
		minHeading: minHeading,
		userAgent:  userAgent,
		pipeline:   pipeline,
		client:     client,
	}
}

func (s *PageSource) Name() string {
	return "scraper"
}

func (s *PageSource) Fetch(ctx context.Context) ([]digest.Article, error) {
	var articles []digest.Article

	for _, pageURL := range s.pages {
		fetched, err := s.scrapePage(ctx, pageURL)
		if err != nil {
			slog.Warn("Page scrape failed, skipping", "page", pageURL, "error", err)
			continue
		}
		articles = append(articles, fetched...)
	}

	return articles, nil
}

func (s *PageSource) scrapePage(ctx context.Context, pageURL string) ([]digest.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	label := hostLabel(pageURL)

	var articles []digest.Article
	doc.Find("h1, h2, h3, [class*='headline'], [class*='title']").EachWithBreak(func(i int, heading *goquery.Selection) bool {
		if s.perSource > 0 && len(articles) >= s.perSource {
			return false
		}

		title := strings.TrimSpace(heading.Text())
		// Headings shorter than the cutoff are navigation chrome.
		if len([]rune(title)) < s.minHeading {
			return true
		}

		description := s.followingSummary(heading)
		if description == "" {
			description = title
		}

		link := ""
		if href, exists := heading.Find("a").First().Attr("href"); exists {
			link = href
		} else if href, exists := heading.Closest("a").Attr("href"); exists {
			link = href
		}

		articles = append(articles, s.pipeline.Normalize(title, description, label, link, ""))
		return true
	})

	return articles, nil
}

// followingSummary walks a few siblings after the heading looking for a
// paragraph-like element whose style hints at a summary.
func (s *PageSource) followingSummary(heading *goquery.Selection) string {
	sibling := heading.Next()
	for i := 0; i < 3 && sibling.Length() > 0; i++ {
		name := goquery.NodeName(sibling)
		class, _ := sibling.Attr("class")

		if name == "p" || strings.Contains(class, "summary") || strings.Contains(class, "desc") {
			if text := strings.TrimSpace(sibling.Text()); text != "" {
				return text
			}
		}

		sibling = sibling.Next()
	}

	return ""
}
