package analysis

//go:generate mockgen -source port.go -destination mock_port.go -package analysis

import (
	"context"
	"errors"

	"returnhub/internal/domain/returns"
)

var (
	ErrReportNotFound    = errors.New("report not found")
	ErrInvalidMonth      = errors.New("invalid month")
	ErrMalformedResponse = errors.New("malformed model response")
	ErrNoData            = errors.New("no returns data for month")
)

// Prompt is one completion request to the language model.
type Prompt struct {
	System string
	User   string
}

// LLMClient is the language model used to generate reports.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
	Model() string
}

// ReportRepo stores generated reports. Saving the same month twice replaces
// the earlier report.
type ReportRepo interface {
	Save(ctx context.Context, report Report) (Report, error)
	GetByMonth(ctx context.Context, month string) (Report, error)
	List(ctx context.Context) ([]Report, error)
}

// ReturnsSource is the slice of the returns repository the analysis reads.
type ReturnsSource interface {
	QueryRequests(ctx context.Context, query returns.ReturnsQuery) ([]returns.ReturnRequest, error)
	GetStatistics(ctx context.Context, query returns.ReturnsQuery) (returns.Statistics, error)
}
