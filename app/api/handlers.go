package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prepdesk/bankdigest/app/cfg"
	"github.com/prepdesk/bankdigest/app/database"
)

func NewHandler(runner ReportRunnerInterface, reportRepo database.ReportRepository) *Handler {
	return &Handler{
		runner:     runner,
		reportRepo: reportRepo,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	count, err := h.reportRepo.GetReportCount()
	if err != nil {
		slog.Error("Database error", "operation", "get_report_count", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"version":   cfg.GetVersion(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"reports":   count,
	})
}

// Generate triggers a normal run: an existing report for today is
// returned as already_exists without refetching or regenerating.
func (h *Handler) Generate(c *gin.Context) {
	h.runReport(c, false)
}

// GenerateForce regenerates and overwrites today's report.
func (h *Handler) GenerateForce(c *gin.Context) {
	h.runReport(c, true)
}

func (h *Handler) runReport(c *gin.Context, force bool) {
	result, err := h.runner.Run(c.Request.Context(), force)
	if err != nil {
		slog.Error("Report run failed", "force", force, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListReports(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	reports, err := h.reportRepo.GetRecentReports(limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_recent_reports", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	summaries := make([]gin.H, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, gin.H{
			"date":          r.Date,
			"article_count": r.ArticleCount,
			"pdf_generated": r.PDFGenerated,
			"email_sent":    r.EmailSent,
			"created_at":    r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(summaries),
		"reports": summaries,
	})
}
