package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"returnhub/internal/domain/returns"
)

const systemPrompt = `You are an operations analyst for an e-commerce returns department.
You answer with a single JSON object and nothing else. The object has exactly
these fields: summary (string), pain_points (array of {category, count,
description}), recommendations (array of strings), sku_analysis (array of
{sku, product_name, return_count, top_reason}), channel_analysis (array of
{channel, return_count, return_rate}). Do not wrap the JSON in markdown.`

// AnalysisService generates and serves the monthly returns reports.
type AnalysisService struct {
	llm     LLMClient
	reports ReportRepo
	source  ReturnsSource
	now     func() time.Time
}

func NewAnalysisService(llm LLMClient, reports ReportRepo, source ReturnsSource) *AnalysisService {
	return &AnalysisService{
		llm:     llm,
		reports: reports,
		source:  source,
		now:     time.Now,
	}
}

// monthlyInput is the aggregated snapshot serialized into the user prompt.
type monthlyInput struct {
	Month      string                `json:"month"`
	Statistics returns.Statistics    `json:"statistics"`
	ByReason   map[string]int        `json:"by_reason"`
	ByChannel  map[string]int        `json:"by_channel"`
	Requests   []monthlyInputRequest `json:"requests"`
}

type monthlyInputRequest struct {
	RequestNumber string   `json:"request_number"`
	Status        string   `json:"status"`
	Channel       string   `json:"channel"`
	Reason        string   `json:"reason"`
	ReasonDetail  string   `json:"reason_detail,omitempty"`
	RefundAmount  *float64 `json:"refund_amount,omitempty"`
}

// GenerateMonthlyReport aggregates the month's returns, asks the model for
// an analysis and stores the parsed result. A response that does not match
// the schema fails the generation; nothing partial is stored.
func (s *AnalysisService) GenerateMonthlyReport(ctx context.Context, month string) (Report, error) {
	start, err := ParseMonth(month)
	if err != nil {
		return Report{}, err
	}
	end := start.AddDate(0, 1, 0)

	query, err := returns.NewReturnsQueryBuilder().
		WithCreatedBetween(start, end).
		WithLimit(200).
		Build()
	if err != nil {
		return Report{}, fmt.Errorf("build month query: %w", err)
	}

	requests, err := s.source.QueryRequests(ctx, query)
	if err != nil {
		return Report{}, fmt.Errorf("query month returns: %w", err)
	}
	if len(requests) == 0 {
		return Report{}, fmt.Errorf("%w: %s", ErrNoData, month)
	}
	stats, err := s.source.GetStatistics(ctx, query)
	if err != nil {
		return Report{}, fmt.Errorf("get month statistics: %w", err)
	}

	input := buildMonthlyInput(month, stats, requests)
	payload, err := json.Marshal(input)
	if err != nil {
		return Report{}, fmt.Errorf("marshal month snapshot: %w", err)
	}

	raw, err := s.llm.Complete(ctx, Prompt{
		System: systemPrompt,
		User:   fmt.Sprintf("Analyze the following returns data for %s:\n%s", month, payload),
	})
	if err != nil {
		return Report{}, fmt.Errorf("complete analysis: %w", err)
	}

	content, err := ParseReportContent([]byte(stripCodeFence(raw)))
	if err != nil {
		return Report{}, err
	}

	report, err := s.reports.Save(ctx, Report{
		Month:       month,
		Model:       s.llm.Model(),
		GeneratedAt: s.now(),
		Content:     content,
	})
	if err != nil {
		return Report{}, fmt.Errorf("save report: %w", err)
	}
	return report, nil
}

func (s *AnalysisService) GetReport(ctx context.Context, month string) (Report, error) {
	if _, err := ParseMonth(month); err != nil {
		return Report{}, err
	}
	return s.reports.GetByMonth(ctx, month)
}

func (s *AnalysisService) ListReports(ctx context.Context) ([]Report, error) {
	return s.reports.List(ctx)
}

func buildMonthlyInput(month string, stats returns.Statistics, requests []returns.ReturnRequest) monthlyInput {
	input := monthlyInput{
		Month:      month,
		Statistics: stats,
		ByReason:   make(map[string]int),
		ByChannel:  make(map[string]int),
	}
	for _, r := range requests {
		input.ByReason[string(r.ReasonCategory)]++
		input.ByChannel[string(r.ChannelSource)]++
		input.Requests = append(input.Requests, monthlyInputRequest{
			RequestNumber: r.RequestNumber,
			Status:        string(r.Status),
			Channel:       string(r.ChannelSource),
			Reason:        string(r.ReasonCategory),
			ReasonDetail:  r.ReasonDetail,
			RefundAmount:  r.RefundAmount,
		})
	}
	return input
}

// stripCodeFence tolerates models that wrap the JSON in a markdown fence
// despite the instructions.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
