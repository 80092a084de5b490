package returns

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"returnhub/internal/domain/orders"
	"returnhub/pkg/metrics"
)

// ReturnService drives the return lifecycle. All state changes run inside a
// repository transaction; the activity log and event sink are written after
// commit, so an audit or publish failure never rolls back the change itself.
type ReturnService struct {
	repo        ReturnRepo
	orders      orders.OrderRepo
	activity    ActivityLog
	events      EventSink
	policy      ReturnPolicy
	transitions TransitionPolicy
	now         func() time.Time
}

type ServiceOption func(*ReturnService)

// WithClock overrides the service clock.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *ReturnService) { s.now = now }
}

// WithReturnPolicy overrides the default return window policy.
func WithReturnPolicy(policy ReturnPolicy) ServiceOption {
	return func(s *ReturnService) { s.policy = policy }
}

func NewReturnService(
	repo ReturnRepo,
	orderRepo orders.OrderRepo,
	activity ActivityLog,
	events EventSink,
	transitions TransitionPolicy,
	opts ...ServiceOption,
) *ReturnService {
	s := &ReturnService{
		repo:        repo,
		orders:      orderRepo,
		activity:    activity,
		events:      events,
		policy:      DefaultPolicy,
		transitions: transitions,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CustomerLogin resolves an order by its number and the phone it was placed
// with, and returns the portal session for it.
func (s *ReturnService) CustomerLogin(ctx context.Context, login CustomerLogin) (CustomerSession, error) {
	if err := login.Validate(); err != nil {
		return CustomerSession{}, fmt.Errorf("%w: order number and phone are required", ErrValidation)
	}

	order, err := s.orders.GetByNumberAndPhone(ctx, login.OrderNumber, login.Phone)
	if err != nil {
		return CustomerSession{}, fmt.Errorf("resolve order: %w", err)
	}

	query, err := NewReturnsQueryBuilder().WithOrderID(order.ID).Build()
	if err != nil {
		return CustomerSession{}, fmt.Errorf("build existing returns query: %w", err)
	}
	existing, err := s.repo.QueryRequests(ctx, query)
	if err != nil {
		return CustomerSession{}, fmt.Errorf("list existing returns: %w", err)
	}

	return CustomerSession{
		Order:            order,
		SelfServiceOpen:  order.Channel.AllowsSelfServiceReturn(),
		ExistingRequests: existing,
		RemainingDays:    s.policy.RemainingDays(ReasonOther, order.DeliveredAt, s.now()),
	}, nil
}

// SubmitApplication is the command that opens a return request.
type SubmitApplication struct {
	OrderID              string
	ActorType            string
	ActorID              string
	ReasonCategory       ReasonCategory
	ReasonDetail         string
	ReturnShippingMethod ShippingMethod
	RefundType           RefundType
	Items                []NewReturnItem
	Images               []NewReturnImage
}

func (c SubmitApplication) validate() error {
	if c.OrderID == "" {
		return fmt.Errorf("%w: order id is required", ErrValidation)
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrValidation)
	}
	for _, item := range c.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item quantity must be positive", ErrValidation)
		}
	}
	if n := len(c.Images); n < MinSubmissionImages || n > MaxSubmissionImages {
		return fmt.Errorf("%w: between %d and %d images are required, got %d",
			ErrValidation, MinSubmissionImages, MaxSubmissionImages, n)
	}
	return nil
}

// SubmitApplication creates a return request in pending_review. Customer
// submissions are checked against the sales channel and the return window;
// staff submissions skip the window check so support can register late or
// undelivered returns manually.
func (s *ReturnService) SubmitApplication(ctx context.Context, cmd SubmitApplication) (RequestDetail, error) {
	if err := cmd.validate(); err != nil {
		return RequestDetail{}, err
	}

	order, err := s.orders.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return RequestDetail{}, fmt.Errorf("resolve order: %w", err)
	}

	if cmd.ActorType != ActorTypeStaff {
		if !order.Channel.AllowsSelfServiceReturn() {
			return RequestDetail{}, fmt.Errorf("%w: channel %s handles returns on its own platform",
				ErrChannelRestricted, order.Channel)
		}
		switch s.policy.Evaluate(cmd.ReasonCategory, order.DeliveredAt, s.now()) {
		case Expired:
			return RequestDetail{}, fmt.Errorf("%w: the %d day window for %s has passed",
				ErrDeadlineExpired, s.policy.WindowDays(cmd.ReasonCategory), cmd.ReasonCategory)
		case UnknownEligibility:
			return RequestDetail{}, fmt.Errorf("%w: order has no recorded delivery", ErrEligibilityUnknown)
		}
	}

	now := s.now()
	newRequest := NewReturnRequest{
		Status: StatusPendingReview,
		RequestInfo: RequestInfo{
			OrderID:              order.ID,
			CustomerID:           order.CustomerID,
			ChannelSource:        order.Channel,
			ReasonCategory:       cmd.ReasonCategory,
			ReasonDetail:         cmd.ReasonDetail,
			ReturnShippingMethod: cmd.ReturnShippingMethod,
			RefundType:           cmd.RefundType,
			AppliedAt:            now,
			UpdatedAt:            now,
		},
	}

	var detail RequestDetail
	err = s.repo.InTransaction(ctx, func(tx TxReturnRepo) error {
		request, err := tx.CreateRequest(ctx, newRequest)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		items, err := tx.AddItems(ctx, request.ID, cmd.Items)
		if err != nil {
			return fmt.Errorf("add items: %w", err)
		}
		images, err := tx.AddImages(ctx, request.ID, cmd.Images)
		if err != nil {
			return fmt.Errorf("add images: %w", err)
		}
		detail = RequestDetail{Request: request, Items: items, Images: images}
		return nil
	})
	if err != nil {
		return RequestDetail{}, err
	}

	entry := NewActivityEntry(detail.Request.ID, ActionCreated, actorTypeOrSystem(cmd.ActorType), cmd.ActorID)
	entry.NewValue = StatusValue(StatusPendingReview)
	entry.Description = fmt.Sprintf("return %s opened for order %s", detail.Request.RequestNumber, order.OrderNumber)
	s.record(ctx, entry)

	s.publish(ctx, ReturnEvent{
		Type:          EventRequestCreated,
		RequestID:     detail.Request.ID,
		RequestNumber: detail.Request.RequestNumber,
		ToStatus:      StatusPendingReview,
		ActorType:     actorTypeOrSystem(cmd.ActorType),
		ActorID:       cmd.ActorID,
		OccurredAt:    now,
	})

	return detail, nil
}

// UpdateStatus is the command that moves a request along the lifecycle.
type UpdateStatus struct {
	RequestID string
	To        Status
	ActorType string
	Change    StatusChange
}

// UpdateStatus moves a request to the destination status. The stored status
// is re-read inside the transaction and compared on write, so two staff
// members racing on the same request get ErrConcurrentUpdate instead of a
// silent lost update.
func (s *ReturnService) UpdateStatus(ctx context.Context, cmd UpdateStatus) (ReturnRequest, error) {
	if cmd.RequestID == "" {
		return ReturnRequest{}, fmt.Errorf("%w: request id is required", ErrValidation)
	}
	if _, err := ParseStatus(string(cmd.To)); err != nil {
		return ReturnRequest{}, err
	}

	var (
		updated ReturnRequest
		from    Status
	)
	err := s.repo.InTransaction(ctx, func(tx TxReturnRepo) error {
		request, err := tx.GetRequestByID(ctx, cmd.RequestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		from = request.Status

		if from.IsTerminal() {
			return fmt.Errorf("%w: request %s is closed", ErrRequestClosed, request.RequestNumber)
		}
		if !s.transitions.Allows(from, cmd.To) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, cmd.To)
		}

		updated = ApplyTransition(request, cmd.To, cmd.Change, s.now())
		if err := tx.UpdateRequestStatus(ctx, updated, from); err != nil {
			return fmt.Errorf("update request status: %w", err)
		}
		return nil
	})
	if err != nil {
		return ReturnRequest{}, err
	}

	s.afterTransition(ctx, updated, from, actorTypeOrSystem(cmd.ActorType), cmd.Change.ActorID, "")

	return updated, nil
}

// SubmitInspection records an inspection verdict and derives the next
// status from it: a failed inspection escalates to abnormal_disputed,
// anything else proceeds to refund_processing.
type SubmitInspection struct {
	NewInspectionRecord
}

func (c SubmitInspection) validate() error {
	if c.ReturnRequestID == "" {
		return fmt.Errorf("%w: return request id is required", ErrValidation)
	}
	if c.InspectorID == "" {
		return fmt.Errorf("%w: inspector id is required", ErrValidation)
	}
	if _, err := ParseInspectionResult(string(c.Result)); err != nil {
		return err
	}
	if _, err := ParseConditionGrade(string(c.ConditionGrade)); err != nil {
		return err
	}
	for key := range c.Checklist {
		if !slices.Contains(ChecklistKeys, key) {
			return fmt.Errorf("%w: unknown checklist key %q", ErrValidation, key)
		}
	}
	return nil
}

func (s *ReturnService) SubmitInspection(ctx context.Context, cmd SubmitInspection) (InspectionRecord, error) {
	if err := cmd.validate(); err != nil {
		return InspectionRecord{}, err
	}

	var (
		record  InspectionRecord
		updated ReturnRequest
		from    Status
	)
	err := s.repo.InTransaction(ctx, func(tx TxReturnRepo) error {
		request, err := tx.GetRequestByID(ctx, cmd.ReturnRequestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		from = request.Status
		switch from {
		case StatusReceivedInspecting, StatusRefundProcessing, StatusAbnormalDisputed:
			// re-inspecting an already verdicted request adds a new
			// record and re-derives the status from the new result
		case StatusCompleted:
			return fmt.Errorf("%w: request %s is closed", ErrRequestClosed, request.RequestNumber)
		default:
			return fmt.Errorf("%w: request %s is in %s, goods have not been received yet",
				ErrInvalidTransition, request.RequestNumber, from)
		}

		record, err = tx.AddInspection(ctx, cmd.NewInspectionRecord)
		if err != nil {
			return fmt.Errorf("add inspection: %w", err)
		}

		now := s.now()
		change := StatusChange{ActorID: cmd.InspectorID, Notes: cmd.Notes}
		updated = ApplyTransition(request, cmd.Result.FollowUpStatus(), change, now)
		// every verdict stamps the inspection fields, a failed one as well
		updated.InspectedAt = &now
		updated.InspectionNotes = cmd.Notes
		if cmd.InspectorID != "" {
			inspector := cmd.InspectorID
			updated.InspectedBy = &inspector
		}
		if err := tx.UpdateRequestStatus(ctx, updated, from); err != nil {
			return fmt.Errorf("update request status: %w", err)
		}
		return nil
	})
	if err != nil {
		return InspectionRecord{}, err
	}

	entry := NewActivityEntry(updated.ID, ActionInspected, ActorTypeStaff, cmd.InspectorID)
	entry.OldValue = StatusValue(from)
	entry.NewValue = StatusValue(updated.Status)
	entry.Description = fmt.Sprintf("inspection %s, grade %s", record.Result, record.ConditionGrade)
	s.record(ctx, entry)

	metrics.StatusTransitionsTotal.WithLabelValues(string(from), string(updated.Status)).Inc()
	s.publish(ctx, ReturnEvent{
		Type:          EventInspectionSubmitted,
		RequestID:     updated.ID,
		RequestNumber: updated.RequestNumber,
		FromStatus:    from,
		ToStatus:      updated.Status,
		ActorType:     ActorTypeStaff,
		ActorID:       cmd.InspectorID,
		OccurredAt:    s.now(),
	})

	return record, nil
}

// ProcessRefund executes the refund and closes the request.
type ProcessRefund struct {
	RequestID  string
	ActorID    string
	Amount     float64
	RefundType RefundType
	Method     string
	Notes      string
}

func (s *ReturnService) ProcessRefund(ctx context.Context, cmd ProcessRefund) (ReturnRequest, error) {
	if cmd.RequestID == "" {
		return ReturnRequest{}, fmt.Errorf("%w: request id is required", ErrValidation)
	}
	if cmd.Amount <= 0 {
		return ReturnRequest{}, fmt.Errorf("%w: refund amount must be positive", ErrValidation)
	}
	if cmd.RefundType != "" {
		if _, err := ParseRefundType(string(cmd.RefundType)); err != nil {
			return ReturnRequest{}, err
		}
	}

	var (
		updated ReturnRequest
		from    Status
	)
	err := s.repo.InTransaction(ctx, func(tx TxReturnRepo) error {
		request, err := tx.GetRequestByID(ctx, cmd.RequestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		from = request.Status
		if from != StatusRefundProcessing {
			return fmt.Errorf("%w: request %s is in %s", ErrRefundNotReady, request.RequestNumber, from)
		}

		now := s.now()
		request.RefundAmount = &cmd.Amount
		request.RefundMethod = cmd.Method
		request.RefundNotes = cmd.Notes
		request.RefundNumber = NewRefundNumber(now)
		request.RefundProcessedBy = &cmd.ActorID
		request.RefundProcessedAt = &now
		if cmd.RefundType != "" {
			request.RefundType = cmd.RefundType
		}

		updated = ApplyTransition(request, StatusCompleted, StatusChange{ActorID: cmd.ActorID}, now)
		if err := tx.UpdateRequestStatus(ctx, updated, from); err != nil {
			return fmt.Errorf("update request status: %w", err)
		}
		return nil
	})
	if err != nil {
		return ReturnRequest{}, err
	}

	entry := NewActivityEntry(updated.ID, ActionRefunded, ActorTypeStaff, cmd.ActorID)
	entry.OldValue = StatusValue(from)
	entry.NewValue = StatusValue(StatusCompleted)
	entry.Description = fmt.Sprintf("refund %s of %.2f via %s", updated.RefundNumber, cmd.Amount, updated.RefundType)
	s.record(ctx, entry)

	metrics.StatusTransitionsTotal.WithLabelValues(string(from), string(StatusCompleted)).Inc()
	s.publish(ctx, ReturnEvent{
		Type:          EventRefundProcessed,
		RequestID:     updated.ID,
		RequestNumber: updated.RequestNumber,
		FromStatus:    from,
		ToStatus:      StatusCompleted,
		ActorType:     ActorTypeStaff,
		ActorID:       cmd.ActorID,
		OccurredAt:    s.now(),
	})

	return updated, nil
}

// UpdateReturnInfo edits the logistics and annotation fields of an open
// request without touching its status.
type UpdateReturnInfo struct {
	RequestID            string
	ActorType            string
	ActorID              string
	TrackingNumber       *string
	LogisticsCompany     *string
	ReturnShippingMethod *ShippingMethod
	RefundType           *RefundType
	ReviewNotes          *string
	DisputeNotes         *string
}

func (s *ReturnService) UpdateReturnInfo(ctx context.Context, cmd UpdateReturnInfo) (ReturnRequest, error) {
	if cmd.RequestID == "" {
		return ReturnRequest{}, fmt.Errorf("%w: request id is required", ErrValidation)
	}
	if cmd.ReturnShippingMethod != nil {
		if _, err := ParseShippingMethod(string(*cmd.ReturnShippingMethod)); err != nil {
			return ReturnRequest{}, err
		}
	}
	if cmd.RefundType != nil {
		if _, err := ParseRefundType(string(*cmd.RefundType)); err != nil {
			return ReturnRequest{}, err
		}
	}

	var updated ReturnRequest
	err := s.repo.InTransaction(ctx, func(tx TxReturnRepo) error {
		request, err := tx.GetRequestByID(ctx, cmd.RequestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		if request.Status.IsTerminal() {
			return fmt.Errorf("%w: request %s is closed", ErrRequestClosed, request.RequestNumber)
		}

		if cmd.TrackingNumber != nil {
			request.TrackingNumber = *cmd.TrackingNumber
		}
		if cmd.LogisticsCompany != nil {
			request.LogisticsCompany = *cmd.LogisticsCompany
		}
		if cmd.ReturnShippingMethod != nil {
			request.ReturnShippingMethod = *cmd.ReturnShippingMethod
		}
		if cmd.RefundType != nil {
			request.RefundType = *cmd.RefundType
		}
		if cmd.ReviewNotes != nil {
			request.ReviewNotes = *cmd.ReviewNotes
		}
		if cmd.DisputeNotes != nil {
			request.DisputeNotes = *cmd.DisputeNotes
		}
		request.UpdatedAt = s.now()

		if err := tx.UpdateRequestInfo(ctx, request); err != nil {
			return fmt.Errorf("update request info: %w", err)
		}
		updated = request
		return nil
	})
	if err != nil {
		return ReturnRequest{}, err
	}

	entry := NewActivityEntry(updated.ID, ActionInfoUpdated, actorTypeOrSystem(cmd.ActorType), cmd.ActorID)
	entry.Description = "return details updated"
	s.record(ctx, entry)

	return updated, nil
}

// AttachImages adds evidence photos to an open request, on top of the ones
// submitted with the application. Closed requests stay immutable.
func (s *ReturnService) AttachImages(ctx context.Context, requestID string, images []NewReturnImage) ([]ReturnImage, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: no images supplied", ErrValidation)
	}

	var attached []ReturnImage
	err := s.repo.InTransaction(ctx, func(tx TxReturnRepo) error {
		request, err := tx.GetRequestByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		if request.Status.IsTerminal() {
			return fmt.Errorf("%w: request %s is closed", ErrRequestClosed, request.RequestNumber)
		}

		attached, err = tx.AddImages(ctx, requestID, images)
		if err != nil {
			return fmt.Errorf("add images: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attached, nil
}

func (s *ReturnService) GetRequestByID(ctx context.Context, id string) (ReturnRequest, error) {
	return s.repo.GetRequestByID(ctx, id)
}

func (s *ReturnService) GetDetail(ctx context.Context, id string) (RequestDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

// QueryRequests lists requests with the total count for pagination.
func (s *ReturnService) QueryRequests(ctx context.Context, query ReturnsQuery) ([]ReturnRequest, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	if query.Limit == 0 {
		query.Limit = defaultQueryLimit
	}
	requests, err := s.repo.QueryRequests(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("query requests: %w", err)
	}
	total, err := s.repo.CountRequests(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count requests: %w", err)
	}
	return requests, total, nil
}

// TrackByNumber is the public tracking lookup used by the portal. It does
// not require a login; the request number itself is the capability.
func (s *ReturnService) TrackByNumber(ctx context.Context, requestNumber string) (RequestDetail, error) {
	if requestNumber == "" {
		return RequestDetail{}, fmt.Errorf("%w: request number is required", ErrValidation)
	}
	request, err := s.repo.GetRequestByNumber(ctx, requestNumber)
	if err != nil {
		return RequestDetail{}, fmt.Errorf("get request by number: %w", err)
	}
	return s.repo.GetDetail(ctx, request.ID)
}

func (s *ReturnService) GetStatistics(ctx context.Context, query ReturnsQuery) (Statistics, error) {
	if err := query.Validate(); err != nil {
		return Statistics{}, err
	}
	return s.repo.GetStatistics(ctx, query)
}

func (s *ReturnService) ListInspections(ctx context.Context, requestID string) ([]InspectionRecord, error) {
	return s.repo.ListInspections(ctx, requestID)
}

func (s *ReturnService) ListActivity(ctx context.Context, requestID string) ([]ActivityEntry, error) {
	return s.activity.ListForEntity(ctx, "return_request", requestID)
}

func (s *ReturnService) afterTransition(ctx context.Context, updated ReturnRequest, from Status, actorType, actorID, description string) {
	entry := NewActivityEntry(updated.ID, ActionStatusChanged, actorType, actorID)
	entry.OldValue = StatusValue(from)
	entry.NewValue = StatusValue(updated.Status)
	entry.Description = description
	s.record(ctx, entry)

	metrics.StatusTransitionsTotal.WithLabelValues(string(from), string(updated.Status)).Inc()
	s.publish(ctx, ReturnEvent{
		Type:          EventStatusChanged,
		RequestID:     updated.ID,
		RequestNumber: updated.RequestNumber,
		FromStatus:    from,
		ToStatus:      updated.Status,
		ActorType:     actorType,
		ActorID:       actorID,
		OccurredAt:    updated.UpdatedAt,
	})
}

func (s *ReturnService) record(ctx context.Context, entry ActivityEntry) {
	if err := s.activity.Record(ctx, entry); err != nil {
		slog.WarnContext(ctx, "failed to record activity entry",
			"entity_id", entry.EntityID, "action", entry.Action, "error", err)
	}
}

func (s *ReturnService) publish(ctx context.Context, event ReturnEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish return event",
			"request_id", event.RequestID, "type", event.Type, "error", err)
	}
}

func actorTypeOrSystem(actorType string) string {
	if actorType == "" {
		return ActorTypeSystem
	}
	return actorType
}
