package database

import (
	"database/sql"
	"fmt"
)

var _ ReportRepository = (*SQLiteReportRepository)(nil)

// SQLiteReportRepository implements the run ledger over SQLite.
type SQLiteReportRepository struct {
	db *DB
}

func NewReportRepository(db *DB) *SQLiteReportRepository {
	return &SQLiteReportRepository{db: db}
}

func (r *SQLiteReportRepository) GetReportByDate(date string) (*Report, error) {
	var report Report
	err := r.db.QueryRow(`
		SELECT id, report_date, content, article_count, pdf_generated, email_sent, created_at
		FROM reports
		WHERE report_date = ?
	`, date).Scan(
		&report.ID, &report.Date, &report.Content, &report.ArticleCount,
		&report.PDFGenerated, &report.EmailSent, &report.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report by date: %w", err)
	}

	return &report, nil
}

func (r *SQLiteReportRepository) UpsertReport(report Report) error {
	_, err := r.db.Exec(`
		INSERT INTO reports (report_date, content, article_count, pdf_generated, email_sent)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(report_date) DO UPDATE SET
			content = excluded.content,
			article_count = excluded.article_count,
			pdf_generated = excluded.pdf_generated,
			email_sent = excluded.email_sent,
			created_at = CURRENT_TIMESTAMP
	`, report.Date, report.Content, report.ArticleCount, report.PDFGenerated, report.EmailSent)

	if err != nil {
		return fmt.Errorf("failed to upsert report: %w", err)
	}

	return nil
}

func (r *SQLiteReportRepository) GetRecentReports(limit int) ([]Report, error) {
	rows, err := r.db.Query(`
		SELECT id, report_date, content, article_count, pdf_generated, email_sent, created_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent reports: %w", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var report Report
		err := rows.Scan(
			&report.ID, &report.Date, &report.Content, &report.ArticleCount,
			&report.PDFGenerated, &report.EmailSent, &report.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	return reports, nil
}

func (r *SQLiteReportRepository) GetReportCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM reports").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get report count: %w", err)
	}
	return count, nil
}
