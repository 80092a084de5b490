package returns_repo

import (
	"context"
	"fmt"

	"returnhub/internal/domain/returns"

	"github.com/Masterminds/squirrel"
)

func (r *repo) GetRequestByNumber(ctx context.Context, requestNumber string) (returns.ReturnRequest, error) {
	return r.getRequestWhere(ctx, squirrel.Eq{"request_number": requestNumber})
}

func (r *repo) QueryRequests(ctx context.Context, q returns.ReturnsQuery) ([]returns.ReturnRequest, error) {
	builder := r.applyFilters(r.builder.Select(requestColumns...).From("return_requests"), q).
		OrderBy("applied_at DESC")
	if q.Limit > 0 {
		builder = builder.Limit(uint64(q.Limit))
	}
	if q.Offset > 0 {
		builder = builder.Offset(uint64(q.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query return requests: %w", err)
	}
	defer rows.Close()

	return parseRequestRows(rows)
}

func (r *repo) CountRequests(ctx context.Context, q returns.ReturnsQuery) (int64, error) {
	query, args, err := r.applyFilters(r.builder.Select("COUNT(*)").From("return_requests"), q).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count return requests: %w", err)
	}
	return count, nil
}

func (r *repo) GetDetail(ctx context.Context, id string) (returns.RequestDetail, error) {
	request, err := r.GetRequestByID(ctx, id)
	if err != nil {
		return returns.RequestDetail{}, err
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return returns.RequestDetail{}, err
	}
	images, err := r.listImages(ctx, id)
	if err != nil {
		return returns.RequestDetail{}, err
	}
	inspections, err := r.ListInspections(ctx, id)
	if err != nil {
		return returns.RequestDetail{}, err
	}

	return returns.RequestDetail{
		Request:     request,
		Items:       items,
		Images:      images,
		Inspections: inspections,
	}, nil
}

func (r *repo) listItems(ctx context.Context, requestID string) ([]returns.ReturnItem, error) {
	query, args, err := r.builder.
		Select("id", "return_request_id", "order_item_id", "product_name", "product_sku", "quantity", "reason", "refund_allocation").
		From("return_items").
		Where(squirrel.Eq{"return_request_id": requestID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query return items: %w", err)
	}
	defer rows.Close()

	return parseItemRows(rows)
}

func (r *repo) listImages(ctx context.Context, requestID string) ([]returns.ReturnImage, error) {
	query, args, err := r.builder.
		Select("id", "return_request_id", "image_url", "storage_path", "image_type", "uploaded_by", "created_at").
		From("return_images").
		Where(squirrel.Eq{"return_request_id": requestID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query return images: %w", err)
	}
	defer rows.Close()

	return parseImageRows(rows)
}

func (r *repo) ListInspections(ctx context.Context, requestID string) ([]returns.InspectionRecord, error) {
	query, args, err := r.builder.
		Select("id", "return_request_id", "inspector_id", "result", "condition_grade", "checklist", "notes", "inspector_comment", "inspected_at").
		From("inspection_records").
		Where(squirrel.Eq{"return_request_id": requestID}).
		OrderBy("inspected_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query inspection records: %w", err)
	}
	defer rows.Close()

	return parseInspectionRows(rows)
}

func (r *repo) GetStatistics(ctx context.Context, q returns.ReturnsQuery) (returns.Statistics, error) {
	stats := returns.Statistics{}

	query, args, err := r.applyFilters(r.builder.Select("status", "COUNT(*)").From("return_requests"), q).
		GroupBy("status").
		ToSql()
	if err != nil {
		return returns.Statistics{}, fmt.Errorf("build status counts query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return returns.Statistics{}, fmt.Errorf("query status counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sc returns.StatusCount
		var rawStatus string
		if err := rows.Scan(&rawStatus, &sc.Count); err != nil {
			return returns.Statistics{}, fmt.Errorf("scan status count row: %w", err)
		}
		sc.Status = returns.Status(rawStatus)
		stats.ByStatus = append(stats.ByStatus, sc)
		stats.Total += sc.Count

		switch sc.Status {
		case returns.StatusPendingReview:
			stats.PendingReview += sc.Count
		case returns.StatusCompleted:
			stats.Completed += sc.Count
		case returns.StatusAbnormalDisputed:
			stats.Disputed += sc.Count
		default:
			stats.InProgress += sc.Count
		}
	}
	if err := rows.Err(); err != nil {
		return returns.Statistics{}, fmt.Errorf("iterate status count rows: %w", err)
	}

	query, args, err = r.applyFilters(
		r.builder.Select(
			"COALESCE(SUM(refund_amount) FILTER (WHERE refund_processed_at IS NOT NULL), 0)",
			"COALESCE(AVG(EXTRACT(EPOCH FROM (closed_at - applied_at)) / 3600) FILTER (WHERE closed_at IS NOT NULL), 0)",
		).From("return_requests"), q).
		ToSql()
	if err != nil {
		return returns.Statistics{}, fmt.Errorf("build aggregates query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&stats.TotalRefunded, &stats.AvgCloseHours); err != nil {
		return returns.Statistics{}, fmt.Errorf("query aggregates: %w", err)
	}

	return stats, nil
}

func (r *repo) applyFilters(builder squirrel.SelectBuilder, q returns.ReturnsQuery) squirrel.SelectBuilder {
	if len(q.IDs) > 0 {
		builder = builder.Where(squirrel.Eq{"id": q.IDs})
	}
	if len(q.Statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"status": q.Statuses})
	}
	if len(q.Channels) > 0 {
		builder = builder.Where(squirrel.Eq{"channel_source": q.Channels})
	}
	if len(q.ReasonCats) > 0 {
		builder = builder.Where(squirrel.Eq{"reason_category": q.ReasonCats})
	}
	if q.OrderID != "" {
		builder = builder.Where(squirrel.Eq{"order_id": q.OrderID})
	}
	if q.CustomerID != "" {
		builder = builder.Where(squirrel.Eq{"customer_id": q.CustomerID})
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"request_number": pattern},
			squirrel.ILike{"tracking_number": pattern},
		})
	}
	if q.CreatedFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"applied_at": *q.CreatedFrom})
	}
	if q.CreatedTo != nil {
		builder = builder.Where(squirrel.Lt{"applied_at": *q.CreatedTo})
	}
	return builder
}
