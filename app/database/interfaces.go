package database

// ReportRepository is the run ledger: one outcome row per calendar date.
type ReportRepository interface {
	// GetReportByDate returns nil, nil when no row exists for the date.
	GetReportByDate(date string) (*Report, error)

	// UpsertReport inserts the row, replacing any existing row for the
	// same date (force mode).
	UpsertReport(report Report) error

	GetRecentReports(limit int) ([]Report, error)
	GetReportCount() (int, error)
}
