package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prepdesk/bankdigest/app/database"
	"github.com/prepdesk/bankdigest/app/digest"
)

const dateLayout = "02 January 2006"

const (
	StatusSuccess       = "success"
	StatusAlreadyExists = "already_exists"
	StatusError         = "error"
)

// RunResult reports one generation run back to the trigger surface.
type RunResult struct {
	Status            string `json:"status"`
	Date              string `json:"date"`
	ArticlesProcessed int    `json:"articles_processed"`
	PDFGenerated      bool   `json:"pdf_generated"`
	EmailSent         bool   `json:"email_sent"`
	Message           string `json:"message,omitempty"`
}

// ArticleCollector gathers raw candidate articles from all sources.
type ArticleCollector interface {
	Collect(ctx context.Context) []digest.Article
}

// TextGenerator is the opaque text-in/text-out generative backend.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// DocumentRenderer converts assembled text into a paginated document.
type DocumentRenderer interface {
	Render(content, dateStr string) ([]byte, error)
}

// Mailer delivers the report; failure is recorded, never fatal.
type Mailer interface {
	Send(dateStr, body string, attachment []byte) error
}

// Service orchestrates one report generation run: fetch, dedupe, score,
// categorize, generate, render, deliver, persist. Runs are synchronous
// and single-threaded; concurrent triggers are only guarded by the
// ledger's date uniqueness, matching the reference behavior.
type Service struct {
	collector ArticleCollector
	pipeline  *digest.Pipeline
	generator TextGenerator
	renderer  DocumentRenderer
	mailer    Mailer
	reports   database.ReportRepository
	location  *time.Location
}

type Deps struct {
	Collector ArticleCollector
	Pipeline  *digest.Pipeline
	Generator TextGenerator
	Renderer  DocumentRenderer
	Mailer    Mailer
	Reports   database.ReportRepository
	Location  *time.Location
}

func NewService(deps Deps) *Service {
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		collector: deps.Collector,
		pipeline:  deps.Pipeline,
		generator: deps.Generator,
		renderer:  deps.Renderer,
		mailer:    deps.Mailer,
		reports:   deps.Reports,
		location:  loc,
	}
}

// Run executes one generation run. In normal mode an existing ledger
// row for today short-circuits before any fetching or generation; force
// mode overwrites the row.
func (s *Service) Run(ctx context.Context, force bool) (*RunResult, error) {
	dateStr := time.Now().In(s.location).Format(dateLayout)

	if !force {
		existing, err := s.reports.GetReportByDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing report: %w", err)
		}
		if existing != nil {
			slog.Info("Report already generated", "date", dateStr)
			return &RunResult{
				Status:            StatusAlreadyExists,
				Date:              dateStr,
				ArticlesProcessed: existing.ArticleCount,
				PDFGenerated:      existing.PDFGenerated,
				EmailSent:         existing.EmailSent,
				Message:           "report already generated for this date, use force to regenerate",
			}, nil
		}
	}

	started := time.Now()

	articles := s.collector.Collect(ctx)
	articles = s.pipeline.Dedupe(articles)
	articles = s.pipeline.Filter(articles)
	articles = s.pipeline.ApplyCategories(articles)

	if len(articles) == 0 {
		return nil, fmt.Errorf("no articles survived relevance filtering for %s", dateStr)
	}

	slog.Info("Articles collected", "date", dateStr, "count", len(articles))

	content := s.generateContent(ctx, dateStr, articles)

	pdfData, err := s.renderer.Render(content, dateStr)
	if err != nil {
		slog.Warn("Document render failed, sending text-only mail", "error", err)
		pdfData = nil
	}

	emailSent := false
	if err := s.mailer.Send(dateStr, emailBody(dateStr), pdfData); err != nil {
		slog.Warn("Mail delivery failed", "date", dateStr, "error", err)
	} else {
		emailSent = true
	}

	err = s.reports.UpsertReport(database.Report{
		Date:         dateStr,
		Content:      content,
		ArticleCount: len(articles),
		PDFGenerated: pdfData != nil,
		EmailSent:    emailSent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist report: %w", err)
	}

	slog.Info("Report generated",
		"date", dateStr,
		"articles", len(articles),
		"pdf", pdfData != nil,
		"email_sent", emailSent,
		"duration", time.Since(started))

	return &RunResult{
		Status:            StatusSuccess,
		Date:              dateStr,
		ArticlesProcessed: len(articles),
		PDFGenerated:      pdfData != nil,
		EmailSent:         emailSent,
	}, nil
}

// generateContent runs the per-category generative passes and the final
// quiz pass, assembles them in the fixed category order, and applies the
// deterministic cleanup over the concatenated whole.
func (s *Service) generateContent(ctx context.Context, dateStr string, articles []digest.Article) string {
	grouped := s.pipeline.Group(articles)

	var sections []string
	for _, category := range digest.CategoryOrder {
		bucket := grouped[category]
		if len(bucket) == 0 {
			continue
		}

		text, err := s.generator.Generate(ctx, categoryPrompt(category, dateStr, bucket))
		if err != nil {
			slog.Warn("Generative pass failed, omitting section",
				"category", string(category), "error", err)
			continue
		}

		sections = append(sections, sectionBanner(category)+"\n\n"+text)
	}

	if len(sections) == 0 {
		slog.Warn("All generative passes failed, using fallback content", "date", dateStr)
		return digest.Cleanup(fallbackContent(dateStr))
	}

	assembled := strings.Join(sections, "\n\n")

	if quiz, err := s.generator.Generate(ctx, quizPrompt(assembled)); err != nil {
		slog.Warn("Quiz pass failed, omitting quiz section", "error", err)
	} else {
		assembled += "\n\n" + quiz
	}

	return digest.Cleanup(assembled)
}

func emailBody(dateStr string) string {
	return fmt.Sprintf(`Your daily banking exam study material for %s.

Includes:
- banking and economic news
- structured exam content
- revision capsules
- practice MCQs

Good luck!`, dateStr)
}
