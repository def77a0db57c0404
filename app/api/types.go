package api

import (
	"context"

	"github.com/prepdesk/bankdigest/app/database"
	"github.com/prepdesk/bankdigest/app/report"
)

type ReportRunnerInterface interface {
	Run(ctx context.Context, force bool) (*report.RunResult, error)
}

var _ ReportRunnerInterface = (*report.Service)(nil)

type Handler struct {
	runner     ReportRunnerInterface
	reportRepo database.ReportRepository
}
