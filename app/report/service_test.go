package report

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prepdesk/bankdigest/app/config"
	"github.com/prepdesk/bankdigest/app/database"
	"github.com/prepdesk/bankdigest/app/digest"
)

type stubCollector struct {
	articles []digest.Article
	calls    int
}

func (c *stubCollector) Collect(ctx context.Context) []digest.Article {
	c.calls++
	return c.articles
}

type stubGenerator struct {
	err   error
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return "🔹 Generated study note\n✅ Exam takeaway", nil
}

type stubRenderer struct {
	err error
}

func (r *stubRenderer) Render(content, dateStr string) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-stub"), nil
}

type stubMailer struct {
	err         error
	calls       int
	attachments [][]byte
}

func (m *stubMailer) Send(dateStr, body string, attachment []byte) error {
	m.calls++
	m.attachments = append(m.attachments, attachment)
	return m.err
}

type memRepository struct {
	rows        map[string]database.Report
	upsertErr   error
	upsertCalls int
}

func newMemRepository() *memRepository {
	return &memRepository{rows: make(map[string]database.Report)}
}

func (r *memRepository) GetReportByDate(date string) (*database.Report, error) {
	row, ok := r.rows[date]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *memRepository) UpsertReport(report database.Report) error {
	r.upsertCalls++
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.rows[report.Date] = report
	return nil
}

func (r *memRepository) GetRecentReports(limit int) ([]database.Report, error) {
	var reports []database.Report
	for _, row := range r.rows {
		reports = append(reports, row)
	}
	return reports, nil
}

func (r *memRepository) GetReportCount() (int, error) {
	return len(r.rows), nil
}

func relevantArticles() []digest.Article {
	return []digest.Article{
		{
			Title:       "RBI keeps repo rate unchanged as inflation cools",
			Description: "The central bank held policy rates steady citing easing inflation.",
			Source:      "economictimes.indiatimes.com",
		},
		{
			Title:       "Sensex climbs after strong quarterly bank earnings",
			Description: "Banking stocks led the rally on the stock market.",
			Source:      "business-standard.com",
		},
	}
}

type harness struct {
	service   *Service
	collector *stubCollector
	generator *stubGenerator
	renderer  *stubRenderer
	mailer    *stubMailer
	reports   *memRepository
}

func newHarness() *harness {
	h := &harness{
		collector: &stubCollector{articles: relevantArticles()},
		generator: &stubGenerator{},
		renderer:  &stubRenderer{},
		mailer:    &stubMailer{},
		reports:   newMemRepository(),
	}
	h.service = NewService(Deps{
		Collector: h.collector,
		Pipeline:  digest.NewPipeline(config.Default()),
		Generator: h.generator,
		Renderer:  h.renderer,
		Mailer:    h.mailer,
		Reports:   h.reports,
		Location:  time.UTC,
	})
	return h
}

func todayUTC() string {
	return time.Now().UTC().Format("02 January 2006")
}

func TestRunSuccess(t *testing.T) {
	h := newHarness()

	result, err := h.service.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Status != StatusSuccess {
		t.Errorf("Expected status %q, got %q", StatusSuccess, result.Status)
	}
	if result.ArticlesProcessed != 2 {
		t.Errorf("Expected 2 articles processed, got %d", result.ArticlesProcessed)
	}
	if !result.EmailSent {
		t.Error("Expected email to be marked sent")
	}
	if !result.PDFGenerated {
		t.Error("Expected PDF to be marked generated")
	}

	row, ok := h.reports.rows[todayUTC()]
	if !ok {
		t.Fatal("Expected ledger row for today")
	}
	if !row.EmailSent {
		t.Error("Expected ledger row to record email sent")
	}
	if !strings.Contains(row.Content, "🔷") {
		t.Errorf("Expected section banner in content, got %q", row.Content)
	}
}

func TestRunNoArticles(t *testing.T) {
	h := newHarness()
	h.collector.articles = nil

	_, err := h.service.Run(context.Background(), false)
	if err == nil {
		t.Fatal("Expected error when no articles survive filtering")
	}

	if h.reports.upsertCalls != 0 {
		t.Errorf("Expected no ledger write, got %d upserts", h.reports.upsertCalls)
	}
	if h.mailer.calls != 0 {
		t.Errorf("Expected no mail attempts, got %d", h.mailer.calls)
	}
}

func TestRunIrrelevantArticlesFiltered(t *testing.T) {
	h := newHarness()
	h.collector.articles = []digest.Article{
		{Title: "Local bakery opens second branch downtown", Description: "Fresh bread daily."},
	}

	_, err := h.service.Run(context.Background(), false)
	if err == nil {
		t.Fatal("Expected error when every article scores below threshold")
	}
	if h.generator.calls != 0 {
		t.Errorf("Expected no generative calls, got %d", h.generator.calls)
	}
}

func TestRunAlreadyExists(t *testing.T) {
	h := newHarness()
	h.reports.rows[todayUTC()] = database.Report{
		Date:         todayUTC(),
		Content:      "existing content",
		ArticleCount: 7,
		EmailSent:    true,
	}

	result, err := h.service.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Status != StatusAlreadyExists {
		t.Errorf("Expected status %q, got %q", StatusAlreadyExists, result.Status)
	}
	if result.ArticlesProcessed != 7 {
		t.Errorf("Expected existing article count 7, got %d", result.ArticlesProcessed)
	}
	if h.collector.calls != 0 {
		t.Errorf("Expected no source fetching, got %d collect calls", h.collector.calls)
	}
	if h.generator.calls != 0 {
		t.Errorf("Expected no generative calls, got %d", h.generator.calls)
	}
}

func TestRunForceOverwrite(t *testing.T) {
	h := newHarness()
	h.reports.rows[todayUTC()] = database.Report{
		Date:    todayUTC(),
		Content: "stale content",
	}

	result, err := h.service.Run(context.Background(), true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Status != StatusSuccess {
		t.Errorf("Expected status %q, got %q", StatusSuccess, result.Status)
	}

	row := h.reports.rows[todayUTC()]
	if row.Content == "stale content" {
		t.Error("Expected force run to overwrite the ledger row content")
	}
}

func TestRunMailFailureRecorded(t *testing.T) {
	h := newHarness()
	h.mailer.err = fmt.Errorf("smtp connection refused")

	result, err := h.service.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Status != StatusSuccess {
		t.Errorf("Expected status %q, got %q", StatusSuccess, result.Status)
	}
	if result.EmailSent {
		t.Error("Expected email_sent false after mail failure")
	}

	row := h.reports.rows[todayUTC()]
	if row.EmailSent {
		t.Error("Expected ledger row to record email failure")
	}
}

func TestRunRenderFailureContinues(t *testing.T) {
	h := newHarness()
	h.renderer.err = fmt.Errorf("render failed")

	result, err := h.service.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.PDFGenerated {
		t.Error("Expected pdf_generated false after render failure")
	}
	if h.mailer.calls != 1 {
		t.Fatalf("Expected mail still attempted, got %d calls", h.mailer.calls)
	}
	if h.mailer.attachments[0] != nil {
		t.Error("Expected nil attachment after render failure")
	}
}

func TestRunGeneratorFailureUsesFallback(t *testing.T) {
	h := newHarness()
	h.generator.err = fmt.Errorf("quota exceeded")

	result, err := h.service.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Status != StatusSuccess {
		t.Errorf("Expected status %q, got %q", StatusSuccess, result.Status)
	}

	row := h.reports.rows[todayUTC()]
	if !strings.Contains(row.Content, "DAILY BANKING CAPSULE") {
		t.Errorf("Expected fallback capsule content, got %q", row.Content)
	}
}

func TestRunLedgerFailure(t *testing.T) {
	h := newHarness()
	h.reports.upsertErr = fmt.Errorf("disk full")

	_, err := h.service.Run(context.Background(), false)
	if err == nil {
		t.Fatal("Expected error when ledger write fails")
	}
}
