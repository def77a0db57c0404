package database

import (
	"time"
)

// Report is one persisted ledger row. The date field carries the sole
// uniqueness guarantee: one row per calendar date.
type Report struct {
	ID           int64
	Date         string // "DD Month YYYY" in the configured timezone
	Content      string
	ArticleCount int
	PDFGenerated bool
	EmailSent    bool
	CreatedAt    time.Time
}
