package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"returnhub/internal/domain/returns"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Returns"

var header = []string{
	"Request Number", "Order ID", "Status", "Channel", "Reason", "Reason Detail",
	"Shipping Method", "Tracking Number", "Logistics Company",
	"Refund Type", "Refund Amount", "Refund Number",
	"Applied At", "Approved At", "Received At", "Closed At",
}

// ExcelExporter renders return requests as an xlsx workbook.
type ExcelExporter struct {
	repo returns.ReturnRepo
}

func NewExcelExporter(repo returns.ReturnRepo) *ExcelExporter {
	return &ExcelExporter{repo: repo}
}

// Export writes the requests matching the query to w.
func (e *ExcelExporter) Export(ctx context.Context, query returns.ReturnsQuery, w io.Writer) error {
	requests, err := e.repo.QueryRequests(ctx, query)
	if err != nil {
		return fmt.Errorf("query requests for export: %w", err)
	}

	f, err := Render(requests)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Render builds the workbook in memory.
func Render(requests []returns.ReturnRequest) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for i, req := range requests {
		row := []any{
			req.RequestNumber,
			req.OrderID,
			string(req.Status),
			string(req.ChannelSource),
			string(req.ReasonCategory),
			req.ReasonDetail,
			string(req.ReturnShippingMethod),
			req.TrackingNumber,
			req.LogisticsCompany,
			string(req.RefundType),
			floatCell(req.RefundAmount),
			req.RefundNumber,
			timeCell(&req.AppliedAt),
			timeCell(req.ApprovedAt),
			timeCell(req.ReceivedAt),
			timeCell(req.ClosedAt),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

// Filename names the download with the generation timestamp.
func Filename(now time.Time) string {
	return fmt.Sprintf("returns_%s.xlsx", now.Format("20060102_150405"))
}

func timeCell(t *time.Time) any {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func floatCell(f *float64) any {
	if f == nil {
		return ""
	}
	return *f
}
