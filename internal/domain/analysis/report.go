package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Report is one generated monthly returns analysis.
type Report struct {
	ID          string        `json:"id"`
	Month       string        `json:"month"` // formatted as 2006-01
	Model       string        `json:"model"`
	GeneratedAt time.Time     `json:"generated_at"`
	Content     ReportContent `json:"content"`
}

// ReportContent is the structured body the language model must produce.
// The schema is part of the prompt; anything that does not parse into it
// is rejected rather than stored partially.
type ReportContent struct {
	Summary         string           `json:"summary"`
	PainPoints      []PainPoint      `json:"pain_points"`
	Recommendations []string         `json:"recommendations"`
	SKUAnalysis     []SKUInsight     `json:"sku_analysis"`
	ChannelAnalysis []ChannelInsight `json:"channel_analysis"`
}

type PainPoint struct {
	Category    string `json:"category"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}

type SKUInsight struct {
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	ReturnCount int    `json:"return_count"`
	TopReason   string `json:"top_reason"`
}

type ChannelInsight struct {
	Channel     string  `json:"channel"`
	ReturnCount int     `json:"return_count"`
	ReturnRate  float64 `json:"return_rate"`
}

// ParseReportContent decodes and validates a model response. Unknown fields
// are rejected so schema drift in the model output surfaces as an error
// instead of silently dropped data.
func ParseReportContent(raw []byte) (ReportContent, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var content ReportContent
	if err := dec.Decode(&content); err != nil {
		return ReportContent{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := content.Validate(); err != nil {
		return ReportContent{}, err
	}
	return content, nil
}

func (c ReportContent) Validate() error {
	if c.Summary == "" {
		return fmt.Errorf("%w: summary is empty", ErrMalformedResponse)
	}
	if len(c.Recommendations) == 0 {
		return fmt.Errorf("%w: no recommendations", ErrMalformedResponse)
	}
	for i, p := range c.PainPoints {
		if p.Category == "" {
			return fmt.Errorf("%w: pain point %d has no category", ErrMalformedResponse, i)
		}
	}
	return nil
}

// ParseMonth validates the 2006-01 month key used by reports.
func ParseMonth(raw string) (time.Time, error) {
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, want YYYY-MM", ErrInvalidMonth, raw)
	}
	return month, nil
}
