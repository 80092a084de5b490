package returns_repo

import (
	"context"
	"encoding/json"
	"fmt"

	"returnhub/internal/domain/returns"
	"returnhub/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// PgReturnRepo is the main repository
type PgReturnRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgReturnRepo(pg *postgres.Postgres) returns.ReturnRepo {
	return &PgReturnRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgReturnRepo) InTransaction(ctx context.Context, fn func(repo returns.TxReturnRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) CreateRequest(ctx context.Context, newRequest returns.NewReturnRequest) (returns.ReturnRequest, error) {
	id := uuid.New().String()
	requestNumber := returns.NewRequestNumber(newRequest.AppliedAt)

	query, args, err := r.builder.Insert("return_requests").
		Columns(
			"id", "request_number", "order_id", "customer_id", "status",
			"channel_source", "reason_category", "reason_detail", "return_shipping_method",
			"refund_type", "applied_at", "updated_at",
		).
		Values(
			id, requestNumber, newRequest.OrderID, newRequest.CustomerID, newRequest.Status,
			newRequest.ChannelSource, newRequest.ReasonCategory, newRequest.ReasonDetail, newRequest.ReturnShippingMethod,
			newRequest.RefundType, newRequest.AppliedAt, newRequest.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return returns.ReturnRequest{}, fmt.Errorf("build insert query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if postgres.IsPgErrorUniqueViolation(err) {
		return returns.ReturnRequest{}, fmt.Errorf("request number %s already exists: %w", requestNumber, err)
	}
	if err != nil {
		return returns.ReturnRequest{}, fmt.Errorf("create return request: %w", err)
	}

	return returns.ReturnRequest{
		ID:            id,
		RequestNumber: requestNumber,
		Status:        newRequest.Status,
		RequestInfo:   newRequest.RequestInfo,
	}, nil
}

func (r *repo) GetRequestByID(ctx context.Context, id string) (returns.ReturnRequest, error) {
	return r.getRequestWhere(ctx, squirrel.Eq{"id": id})
}

func (r *repo) getRequestWhere(ctx context.Context, cond squirrel.Sqlizer) (returns.ReturnRequest, error) {
	query, args, err := r.builder.Select(requestColumns...).
		From("return_requests").
		Where(cond).
		ToSql()
	if err != nil {
		return returns.ReturnRequest{}, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return returns.ReturnRequest{}, fmt.Errorf("query return request: %w", err)
	}
	defer rows.Close()

	requests, err := parseRequestRows(rows)
	if err != nil {
		return returns.ReturnRequest{}, err
	}
	if len(requests) == 0 {
		return returns.ReturnRequest{}, returns.ErrNotFound
	}
	return requests[0], nil
}

// UpdateRequestStatus writes the full request row guarded by the status the
// caller read. Zero affected rows means another writer moved the request
// first.
func (r *repo) UpdateRequestStatus(ctx context.Context, updated returns.ReturnRequest, fromStatus returns.Status) error {
	query, args, err := r.updateSetters(updated).
		Set("status", updated.Status).
		Where(squirrel.Eq{"id": updated.ID, "status": fromStatus}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update return request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return returns.ErrConcurrentUpdate
	}
	return nil
}

func (r *repo) UpdateRequestInfo(ctx context.Context, updated returns.ReturnRequest) error {
	query, args, err := r.updateSetters(updated).
		Where(squirrel.Eq{"id": updated.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update return request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return returns.ErrNotFound
	}
	return nil
}

func (r *repo) updateSetters(req returns.ReturnRequest) squirrel.UpdateBuilder {
	return r.builder.Update("return_requests").
		Set("reason_category", req.ReasonCategory).
		Set("reason_detail", req.ReasonDetail).
		Set("return_shipping_method", req.ReturnShippingMethod).
		Set("refund_type", req.RefundType).
		Set("refund_amount", req.RefundAmount).
		Set("refund_method", req.RefundMethod).
		Set("refund_number", req.RefundNumber).
		Set("refund_notes", req.RefundNotes).
		Set("refund_processed_by", req.RefundProcessedBy).
		Set("tracking_number", req.TrackingNumber).
		Set("logistics_company", req.LogisticsCompany).
		Set("review_notes", req.ReviewNotes).
		Set("inspection_notes", req.InspectionNotes).
		Set("dispute_notes", req.DisputeNotes).
		Set("reviewed_by", req.ReviewedBy).
		Set("inspected_by", req.InspectedBy).
		Set("approved_at", req.ApprovedAt).
		Set("shipped_at", req.ShippedAt).
		Set("received_at", req.ReceivedAt).
		Set("inspected_at", req.InspectedAt).
		Set("refund_processed_at", req.RefundProcessedAt).
		Set("closed_at", req.ClosedAt).
		Set("updated_at", req.UpdatedAt)
}

func (r *repo) AddItems(ctx context.Context, requestID string, items []returns.NewReturnItem) ([]returns.ReturnItem, error) {
	builder := r.builder.Insert("return_items").
		Columns("id", "return_request_id", "order_item_id", "product_name", "product_sku", "quantity", "reason", "refund_allocation")

	created := make([]returns.ReturnItem, 0, len(items))
	for _, item := range items {
		id := uuid.New().String()
		builder = builder.Values(id, requestID, item.OrderItemID, item.ProductName, item.ProductSKU, item.Quantity, item.Reason, item.RefundAllocation)
		created = append(created, returns.ReturnItem{ID: id, ReturnRequestID: requestID, NewReturnItem: item})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("add return items: %w", err)
	}
	return created, nil
}

func (r *repo) AddImages(ctx context.Context, requestID string, images []returns.NewReturnImage) ([]returns.ReturnImage, error) {
	builder := r.builder.Insert("return_images").
		Columns("id", "return_request_id", "image_url", "storage_path", "image_type", "uploaded_by")

	created := make([]returns.ReturnImage, 0, len(images))
	for _, image := range images {
		id := uuid.New().String()
		builder = builder.Values(id, requestID, image.ImageURL, image.StoragePath, image.ImageType, image.UploadedBy)
		created = append(created, returns.ReturnImage{ID: id, ReturnRequestID: requestID, NewReturnImage: image})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("add return images: %w", err)
	}
	return created, nil
}

func (r *repo) AddInspection(ctx context.Context, record returns.NewInspectionRecord) (returns.InspectionRecord, error) {
	id := uuid.New().String()

	checklist, err := json.Marshal(record.Checklist)
	if err != nil {
		return returns.InspectionRecord{}, fmt.Errorf("marshal checklist: %w", err)
	}

	query, args, err := r.builder.Insert("inspection_records").
		Columns("id", "return_request_id", "inspector_id", "result", "condition_grade", "checklist", "notes", "inspector_comment", "inspected_at").
		Values(id, record.ReturnRequestID, record.InspectorID, record.Result, record.ConditionGrade, checklist, record.Notes, record.InspectorComment, squirrel.Expr("NOW()")).
		Suffix("RETURNING inspected_at").
		ToSql()
	if err != nil {
		return returns.InspectionRecord{}, fmt.Errorf("build insert query: %w", err)
	}

	created := returns.InspectionRecord{ID: id, NewInspectionRecord: record}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&created.InspectedAt); err != nil {
		return returns.InspectionRecord{}, fmt.Errorf("add inspection record: %w", err)
	}
	return created, nil
}
