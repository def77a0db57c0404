package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prepdesk/bankdigest/app/config"
	"github.com/prepdesk/bankdigest/app/digest"
)

func testPipeline() *digest.Pipeline {
	return digest.NewPipeline(config.Default())
}

func testClient() *http.Client {
	return &http.Client{Timeout: 2 * time.Second}
}

func TestQuerySource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("language"); got != "en" {
			t.Errorf("Expected language=en, got %q", got)
		}
		if got := r.URL.Query().Get("sortBy"); got != "publishedAt" {
			t.Errorf("Expected sortBy=publishedAt, got %q", got)
		}
		if got := r.URL.Query().Get("pageSize"); got != "20" {
			t.Errorf("Expected pageSize=20, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{
					"title": "RBI raises repo rate by 25 basis points",
					"description": "The central bank moved to curb inflation",
					"url": "https://example.com/rbi-repo",
					"publishedAt": "2025-08-31T04:00:00Z",
					"source": {"name": "Example Times"}
				},
				{
					"title": "",
					"description": "",
					"url": "https://example.com/empty"
				},
				{
					"title": "Sensex rallies on banking stocks",
					"description": "",
					"url": "https://example.com/sensex",
					"publishedAt": "2025-08-31T05:00:00Z",
					"source": {"name": ""}
				}
			]
		}`))
	}))
	defer server.Close()

	source := NewQuerySource(server.URL, "test-key", []string{"RBI banking"}, 20,
		testPipeline(), nil, testClient())

	articles, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles (empty record discarded), got %d", len(articles))
	}

	first := articles[0]
	if first.Title != "RBI raises repo rate by 25 basis points" {
		t.Errorf("Unexpected title: %q", first.Title)
	}
	if first.Source != "Example Times" {
		t.Errorf("Expected source label from API, got %q", first.Source)
	}
	if first.Published != "2025-08-31T04:00:00Z" {
		t.Errorf("Expected published timestamp carried through, got %q", first.Published)
	}

	if articles[1].Source != "newsapi" {
		t.Errorf("Expected fallback source label, got %q", articles[1].Source)
	}
}

func TestQuerySource_NoAPIKey(t *testing.T) {
	source := NewQuerySource("http://unused", "", []string{"q"}, 20,
		testPipeline(), nil, testClient())

	if _, err := source.Fetch(context.Background()); err == nil {
		t.Error("Expected error when no API key is configured, got nil")
	}
}

func TestQuerySource_FailingQueryDoesNotAbort(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("q") == "bad query" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"articles": [{"title": "Nifty hits record high on bank earnings", "description": "Markets update", "url": "https://example.com/n"}]}`))
	}))
	defer server.Close()

	source := NewQuerySource(server.URL, "test-key", []string{"bad query", "good query"}, 20,
		testPipeline(), nil, testClient())

	articles, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected both queries attempted, got %d calls", calls)
	}
	if len(articles) != 1 {
		t.Errorf("Expected 1 article from the surviving query, got %d", len(articles))
	}
}
