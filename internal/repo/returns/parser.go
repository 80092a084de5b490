package returns_repo

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"returnhub/internal/domain/orders"
	"returnhub/internal/domain/returns"

	"github.com/jackc/pgx/v5"
)

var requestColumns = []string{
	"id", "request_number", "order_id", "customer_id", "status",
	"channel_source", "reason_category", "reason_detail", "return_shipping_method",
	"refund_type", "refund_amount", "refund_method", "refund_number", "refund_notes", "refund_processed_by",
	"tracking_number", "logistics_company",
	"review_notes", "inspection_notes", "dispute_notes",
	"reviewed_by", "inspected_by",
	"applied_at", "approved_at", "shipped_at", "received_at",
	"inspected_at", "refund_processed_at", "closed_at", "updated_at",
}

func parseRequestRows(rows pgx.Rows) ([]returns.ReturnRequest, error) {
	var requests []returns.ReturnRequest
	for rows.Next() {
		var (
			req                                      returns.ReturnRequest
			rawStatus, rawChannel, rawReason         string
			rawShipping, rawRefundType               string
			customerID, refundProcessedBy            sql.NullString
			reviewedBy, inspectedBy                  sql.NullString
			refundAmount                             sql.NullFloat64
			approvedAt, shippedAt, receivedAt        sql.NullTime
			inspectedAt, refundProcessedAt, closedAt sql.NullTime
		)

		err := rows.Scan(
			&req.ID, &req.RequestNumber, &req.OrderID, &customerID, &rawStatus,
			&rawChannel, &rawReason, &req.ReasonDetail, &rawShipping,
			&rawRefundType, &refundAmount, &req.RefundMethod, &req.RefundNumber, &req.RefundNotes, &refundProcessedBy,
			&req.TrackingNumber, &req.LogisticsCompany,
			&req.ReviewNotes, &req.InspectionNotes, &req.DisputeNotes,
			&reviewedBy, &inspectedBy,
			&req.AppliedAt, &approvedAt, &shippedAt, &receivedAt,
			&inspectedAt, &refundProcessedAt, &closedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan return request row: %w", err)
		}

		status, err := returns.ParseStatus(rawStatus)
		if err != nil {
			return nil, fmt.Errorf("invalid status in database: %w", err)
		}
		req.Status = status
		req.ChannelSource = orders.ParseChannel(rawChannel)
		req.ReasonCategory = returns.ParseReasonCategory(rawReason)
		req.ReturnShippingMethod = returns.ShippingMethod(rawShipping)
		req.RefundType = returns.RefundType(rawRefundType)

		if customerID.Valid {
			req.CustomerID = &customerID.String
		}
		if refundProcessedBy.Valid {
			req.RefundProcessedBy = &refundProcessedBy.String
		}
		if reviewedBy.Valid {
			req.ReviewedBy = &reviewedBy.String
		}
		if inspectedBy.Valid {
			req.InspectedBy = &inspectedBy.String
		}
		if refundAmount.Valid {
			req.RefundAmount = &refundAmount.Float64
		}
		if approvedAt.Valid {
			req.ApprovedAt = &approvedAt.Time
		}
		if shippedAt.Valid {
			req.ShippedAt = &shippedAt.Time
		}
		if receivedAt.Valid {
			req.ReceivedAt = &receivedAt.Time
		}
		if inspectedAt.Valid {
			req.InspectedAt = &inspectedAt.Time
		}
		if refundProcessedAt.Valid {
			req.RefundProcessedAt = &refundProcessedAt.Time
		}
		if closedAt.Valid {
			req.ClosedAt = &closedAt.Time
		}

		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate return request rows: %w", err)
	}

	return requests, nil
}

func parseItemRows(rows pgx.Rows) ([]returns.ReturnItem, error) {
	var items []returns.ReturnItem
	for rows.Next() {
		var (
			item       returns.ReturnItem
			allocation sql.NullFloat64
		)
		err := rows.Scan(&item.ID, &item.ReturnRequestID, &item.OrderItemID, &item.ProductName, &item.ProductSKU, &item.Quantity, &item.Reason, &allocation)
		if err != nil {
			return nil, fmt.Errorf("scan return item row: %w", err)
		}
		if allocation.Valid {
			item.RefundAllocation = &allocation.Float64
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate return item rows: %w", err)
	}

	return items, nil
}

func parseImageRows(rows pgx.Rows) ([]returns.ReturnImage, error) {
	var images []returns.ReturnImage
	for rows.Next() {
		var (
			image   returns.ReturnImage
			rawType string
		)
		err := rows.Scan(&image.ID, &image.ReturnRequestID, &image.ImageURL, &image.StoragePath, &rawType, &image.UploadedBy, &image.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan return image row: %w", err)
		}
		image.ImageType = returns.ImageType(rawType)
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate return image rows: %w", err)
	}

	return images, nil
}

func parseInspectionRows(rows pgx.Rows) ([]returns.InspectionRecord, error) {
	var records []returns.InspectionRecord
	for rows.Next() {
		var (
			record       returns.InspectionRecord
			rawResult    string
			rawGrade     string
			rawChecklist []byte
		)
		err := rows.Scan(&record.ID, &record.ReturnRequestID, &record.InspectorID, &rawResult, &rawGrade, &rawChecklist, &record.Notes, &record.InspectorComment, &record.InspectedAt)
		if err != nil {
			return nil, fmt.Errorf("scan inspection row: %w", err)
		}

		result, err := returns.ParseInspectionResult(rawResult)
		if err != nil {
			return nil, fmt.Errorf("invalid result in database: %w", err)
		}
		record.Result = result
		record.ConditionGrade = returns.ConditionGrade(rawGrade)

		if len(rawChecklist) > 0 {
			if err := json.Unmarshal(rawChecklist, &record.Checklist); err != nil {
				return nil, fmt.Errorf("unmarshal checklist: %w", err)
			}
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inspection rows: %w", err)
	}

	return records, nil
}
