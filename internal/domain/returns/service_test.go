package returns

import (
	"context"
	"errors"
	"testing"
	"time"

	"returnhub/internal/domain/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingActivityLog captures entries so tests can assert the audit trail
// without a real store.
type recordingActivityLog struct {
	entries []ActivityEntry
}

func (l *recordingActivityLog) Record(_ context.Context, entry ActivityEntry) error {
	l.entries = append(l.entries, entry)
	return nil
}

func (l *recordingActivityLog) ListForEntity(context.Context, string, string) ([]ActivityEntry, error) {
	return l.entries, nil
}

// recordingEventSink captures published lifecycle events.
type recordingEventSink struct {
	events []ReturnEvent
}

func (s *recordingEventSink) Publish(_ context.Context, event ReturnEvent) error {
	s.events = append(s.events, event)
	return nil
}

type serviceFixture struct {
	service  *ReturnService
	repo     *MockReturnRepo
	tx       *MockTxReturnRepo
	orders   *orders.MockOrderRepo
	activity *recordingActivityLog
	events   *recordingEventSink
	now      time.Time
}

func returnService(t *testing.T, policy TransitionPolicy) serviceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := NewMockReturnRepo(ctrl)
	mockTx := NewMockTxReturnRepo(ctrl)
	mockOrders := orders.NewMockOrderRepo(ctrl)
	activity := &recordingActivityLog{}
	events := &recordingEventSink{}
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	service := NewReturnService(mockRepo, mockOrders, activity, events, policy,
		WithClock(func() time.Time { return now }))

	return serviceFixture{
		service:  service,
		repo:     mockRepo,
		tx:       mockTx,
		orders:   mockOrders,
		activity: activity,
		events:   events,
		now:      now,
	}
}

// expectTransaction routes InTransaction through the tx mock.
func (f serviceFixture) expectTransaction(ctx context.Context) {
	f.repo.EXPECT().InTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(tx TxReturnRepo) error) error {
			return fn(f.tx)
		})
}

func validSubmission() SubmitApplication {
	return SubmitApplication{
		OrderID:              "order-1",
		ActorType:            ActorTypeCustomer,
		ReasonCategory:       ReasonDefective,
		ReasonDetail:         "does not power on",
		ReturnShippingMethod: ShipConvenienceStore,
		RefundType:           RefundPending,
		Items: []NewReturnItem{
			{OrderItemID: "item-1", ProductName: "Mixer", Quantity: 1, Reason: "defective"},
		},
		Images: []NewReturnImage{
			{ImageURL: "http://img/1", ImageType: ImageProductDamage, UploadedBy: "customer"},
			{ImageURL: "http://img/2", ImageType: ImageOuterBox, UploadedBy: "customer"},
			{ImageURL: "http://img/3", ImageType: ImageOther, UploadedBy: "customer"},
		},
	}
}

func deliveredOrder(deliveredAt *time.Time, channel orders.Channel) orders.Order {
	return orders.Order{
		ID:            "order-1",
		OrderNumber:   "ORD-100",
		CustomerPhone: "0912345678",
		Channel:       channel,
		DeliveredAt:   deliveredAt,
	}
}

func TestReturnService_SubmitApplication(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should create a pending review request", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		cmd := validSubmission()
		delivered := f.now.Add(-2 * 24 * time.Hour)
		order := deliveredOrder(&delivered, orders.ChannelOfficial)

		f.orders.EXPECT().GetByID(ctx, "order-1").Return(order, nil)
		f.expectTransaction(ctx)
		f.tx.EXPECT().CreateRequest(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, newRequest NewReturnRequest) (ReturnRequest, error) {
				assert.Equal(t, StatusPendingReview, newRequest.Status)
				assert.Equal(t, "order-1", newRequest.OrderID)
				return ReturnRequest{ID: "req-1", RequestNumber: "RT100", Status: newRequest.Status, RequestInfo: newRequest.RequestInfo}, nil
			})
		f.tx.EXPECT().AddItems(ctx, "req-1", cmd.Items).Return([]ReturnItem{{ID: "ri-1"}}, nil)
		f.tx.EXPECT().AddImages(ctx, "req-1", cmd.Images).Return([]ReturnImage{{ID: "im-1"}, {ID: "im-2"}, {ID: "im-3"}}, nil)

		// when
		detail, err := f.service.SubmitApplication(ctx, cmd)

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusPendingReview, detail.Request.Status)
		assert.Len(t, detail.Items, 1)
		assert.Len(t, detail.Images, 3)

		require.Len(t, f.activity.entries, 1)
		assert.Equal(t, ActionCreated, f.activity.entries[0].Action)
		assert.Equal(t, ActorTypeCustomer, f.activity.entries[0].ActorType)

		require.Len(t, f.events.events, 1)
		assert.Equal(t, EventRequestCreated, f.events.events[0].Type)
	})

	t.Run("should reject marketplace channel for customers", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		delivered := f.now.Add(-24 * time.Hour)
		f.orders.EXPECT().GetByID(ctx, "order-1").Return(deliveredOrder(&delivered, orders.ChannelShopee), nil)

		// when
		_, err := f.service.SubmitApplication(ctx, validSubmission())

		// then
		assert.ErrorIs(t, err, ErrChannelRestricted)
	})

	t.Run("should reject when the window has expired", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		delivered := f.now.Add(-10 * 24 * time.Hour)
		f.orders.EXPECT().GetByID(ctx, "order-1").Return(deliveredOrder(&delivered, orders.ChannelOfficial), nil)

		// when
		_, err := f.service.SubmitApplication(ctx, validSubmission())

		// then
		assert.ErrorIs(t, err, ErrDeadlineExpired)
	})

	t.Run("should reject when delivery date is unknown", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		f.orders.EXPECT().GetByID(ctx, "order-1").Return(deliveredOrder(nil, orders.ChannelOfficial), nil)

		// when
		_, err := f.service.SubmitApplication(ctx, validSubmission())

		// then
		assert.ErrorIs(t, err, ErrEligibilityUnknown)
	})

	t.Run("staff submissions skip channel and window checks", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		cmd := validSubmission()
		cmd.ActorType = ActorTypeStaff
		cmd.ActorID = "staff-1"
		delivered := f.now.Add(-30 * 24 * time.Hour)

		f.orders.EXPECT().GetByID(ctx, "order-1").Return(deliveredOrder(&delivered, orders.ChannelShopee), nil)
		f.expectTransaction(ctx)
		f.tx.EXPECT().CreateRequest(ctx, gomock.Any()).Return(ReturnRequest{ID: "req-1", Status: StatusPendingReview}, nil)
		f.tx.EXPECT().AddItems(ctx, "req-1", cmd.Items).Return(nil, nil)
		f.tx.EXPECT().AddImages(ctx, "req-1", cmd.Images).Return(nil, nil)

		// when
		_, err := f.service.SubmitApplication(ctx, cmd)

		// then
		require.NoError(t, err)
	})

	t.Run("should reject bad image counts", func(t *testing.T) {
		f := returnService(t, TransitionStrict)

		cmd := validSubmission()
		cmd.Images = cmd.Images[:2]
		_, err := f.service.SubmitApplication(ctx, cmd)
		assert.ErrorIs(t, err, ErrValidation)

		cmd = validSubmission()
		cmd.Images = append(cmd.Images, cmd.Images[0], cmd.Images[1], cmd.Images[2])
		_, err = f.service.SubmitApplication(ctx, cmd)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("should reject empty item selection", func(t *testing.T) {
		f := returnService(t, TransitionStrict)

		cmd := validSubmission()
		cmd.Items = nil

		_, err := f.service.SubmitApplication(ctx, cmd)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestReturnService_UpdateStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should approve a pending request", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", RequestNumber: "RT100", Status: StatusPendingReview}

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)
		f.tx.EXPECT().UpdateRequestStatus(ctx, gomock.Any(), StatusPendingReview).DoAndReturn(
			func(_ context.Context, updated ReturnRequest, _ Status) error {
				assert.Equal(t, StatusApprovedWaitingShipping, updated.Status)
				require.NotNil(t, updated.ApprovedAt)
				return nil
			})

		// when
		updated, err := f.service.UpdateStatus(ctx, UpdateStatus{
			RequestID: "req-1",
			To:        StatusApprovedWaitingShipping,
			ActorType: ActorTypeStaff,
			Change:    StatusChange{ActorID: "staff-1", Notes: "approved"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusApprovedWaitingShipping, updated.Status)

		require.Len(t, f.activity.entries, 1)
		assert.Equal(t, ActionStatusChanged, f.activity.entries[0].Action)
		assert.JSONEq(t, `{"status":"pending_review"}`, string(f.activity.entries[0].OldValue))

		require.Len(t, f.events.events, 1)
		assert.Equal(t, EventStatusChanged, f.events.events[0].Type)
		assert.Equal(t, StatusPendingReview, f.events.events[0].FromStatus)
	})

	t.Run("should mark an approved request as shipped", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		approvedAt := f.now.Add(-24 * time.Hour)
		stored := ReturnRequest{
			ID: "req-1", RequestNumber: "RT100",
			Status:      StatusApprovedWaitingShipping,
			RequestInfo: RequestInfo{ApprovedAt: &approvedAt},
		}

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)
		f.tx.EXPECT().UpdateRequestStatus(ctx, gomock.Any(), StatusApprovedWaitingShipping).DoAndReturn(
			func(_ context.Context, updated ReturnRequest, _ Status) error {
				assert.Equal(t, StatusShippingInTransit, updated.Status)
				require.NotNil(t, updated.ShippedAt)
				assert.Equal(t, f.now, *updated.ShippedAt)
				assert.Equal(t, "TW123", updated.TrackingNumber)
				assert.Equal(t, approvedAt, *updated.ApprovedAt)
				return nil
			})

		// when
		updated, err := f.service.UpdateStatus(ctx, UpdateStatus{
			RequestID: "req-1",
			To:        StatusShippingInTransit,
			ActorType: ActorTypeStaff,
			Change:    StatusChange{ActorID: "staff-1", TrackingNumber: "TW123", LogisticsCompany: "black-cat"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "TW123", updated.TrackingNumber)
		assert.Equal(t, "black-cat", updated.LogisticsCompany)

		require.Len(t, f.activity.entries, 1)
		assert.JSONEq(t, `{"status":"approved_waiting_shipping"}`, string(f.activity.entries[0].OldValue))
		assert.JSONEq(t, `{"status":"shipping_in_transit"}`, string(f.activity.entries[0].NewValue))
	})

	t.Run("strict policy rejects a skip", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", Status: StatusPendingReview}

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)

		// when
		_, err := f.service.UpdateStatus(ctx, UpdateStatus{RequestID: "req-1", To: StatusCompleted})

		// then
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Empty(t, f.events.events)
	})

	t.Run("permissive policy allows the same skip", func(t *testing.T) {
		// given
		f := returnService(t, TransitionPermissive)
		stored := ReturnRequest{ID: "req-1", Status: StatusPendingReview}

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)
		f.tx.EXPECT().UpdateRequestStatus(ctx, gomock.Any(), StatusPendingReview).Return(nil)

		// when
		updated, err := f.service.UpdateStatus(ctx, UpdateStatus{RequestID: "req-1", To: StatusCompleted})

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, updated.Status)
		require.NotNil(t, updated.ClosedAt)
	})

	t.Run("closed requests stay closed", func(t *testing.T) {
		// given
		f := returnService(t, TransitionPermissive)
		stored := ReturnRequest{ID: "req-1", RequestNumber: "RT100", Status: StatusCompleted}

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)

		// when
		_, err := f.service.UpdateStatus(ctx, UpdateStatus{RequestID: "req-1", To: StatusAbnormalDisputed})

		// then
		assert.ErrorIs(t, err, ErrRequestClosed)
	})

	t.Run("should surface a concurrent update", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", Status: StatusPendingReview}

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)
		f.tx.EXPECT().UpdateRequestStatus(ctx, gomock.Any(), StatusPendingReview).Return(ErrConcurrentUpdate)

		// when
		_, err := f.service.UpdateStatus(ctx, UpdateStatus{RequestID: "req-1", To: StatusApprovedWaitingShipping})

		// then
		assert.ErrorIs(t, err, ErrConcurrentUpdate)
		assert.Empty(t, f.events.events)
	})

	t.Run("should reject an unknown destination status", func(t *testing.T) {
		f := returnService(t, TransitionStrict)

		_, err := f.service.UpdateStatus(ctx, UpdateStatus{RequestID: "req-1", To: "returned"})

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestReturnService_SubmitInspection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	yes := true

	newInspection := func(result InspectionResult) SubmitInspection {
		return SubmitInspection{NewInspectionRecord{
			ReturnRequestID: "req-1",
			InspectorID:     "inspector-1",
			Result:          result,
			ConditionGrade:  GradeB,
			Checklist:       Checklist{"packaging_intact": &yes},
		}}
	}

	t.Run("passed inspection moves to refund processing", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", Status: StatusReceivedInspecting}
		cmd := newInspection(InspectionPassed)

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)
		f.tx.EXPECT().AddInspection(ctx, cmd.NewInspectionRecord).Return(
			InspectionRecord{ID: "insp-1", InspectedAt: f.now, NewInspectionRecord: cmd.NewInspectionRecord}, nil)
		f.tx.EXPECT().UpdateRequestStatus(ctx, gomock.Any(), StatusReceivedInspecting).DoAndReturn(
			func(_ context.Context, updated ReturnRequest, _ Status) error {
				assert.Equal(t, StatusRefundProcessing, updated.Status)
				return nil
			})

		// when
		record, err := f.service.SubmitInspection(ctx, cmd)

		// then
		require.NoError(t, err)
		assert.Equal(t, "insp-1", record.ID)

		require.Len(t, f.events.events, 1)
		assert.Equal(t, EventInspectionSubmitted, f.events.events[0].Type)
		assert.Equal(t, StatusRefundProcessing, f.events.events[0].ToStatus)
	})

	t.Run("failed inspection escalates to disputed and still stamps the verdict", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", Status: StatusReceivedInspecting}
		cmd := newInspection(InspectionFailed)
		cmd.Notes = "box crushed"

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)
		f.tx.EXPECT().AddInspection(ctx, cmd.NewInspectionRecord).Return(
			InspectionRecord{ID: "insp-1", NewInspectionRecord: cmd.NewInspectionRecord}, nil)
		f.tx.EXPECT().UpdateRequestStatus(ctx, gomock.Any(), StatusReceivedInspecting).DoAndReturn(
			func(_ context.Context, updated ReturnRequest, _ Status) error {
				assert.Equal(t, StatusAbnormalDisputed, updated.Status)
				require.NotNil(t, updated.InspectedAt)
				assert.Equal(t, f.now, *updated.InspectedAt)
				require.NotNil(t, updated.InspectedBy)
				assert.Equal(t, "inspector-1", *updated.InspectedBy)
				assert.Equal(t, "box crushed", updated.InspectionNotes)
				assert.Equal(t, "box crushed", updated.DisputeNotes)
				return nil
			})

		// when
		_, err := f.service.SubmitInspection(ctx, cmd)

		// then
		require.NoError(t, err)
	})

	t.Run("re-inspection of a disputed request re-derives the status", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", Status: StatusAbnormalDisputed}
		cmd := newInspection(InspectionPassed)

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)
		f.tx.EXPECT().AddInspection(ctx, cmd.NewInspectionRecord).Return(
			InspectionRecord{ID: "insp-2", NewInspectionRecord: cmd.NewInspectionRecord}, nil)
		f.tx.EXPECT().UpdateRequestStatus(ctx, gomock.Any(), StatusAbnormalDisputed).DoAndReturn(
			func(_ context.Context, updated ReturnRequest, _ Status) error {
				assert.Equal(t, StatusRefundProcessing, updated.Status)
				require.NotNil(t, updated.InspectedAt)
				return nil
			})

		// when
		record, err := f.service.SubmitInspection(ctx, cmd)

		// then
		require.NoError(t, err)
		assert.Equal(t, "insp-2", record.ID)
	})

	t.Run("re-inspection during refund processing is allowed", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", Status: StatusRefundProcessing}
		cmd := newInspection(InspectionPassed)

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)
		f.tx.EXPECT().AddInspection(ctx, cmd.NewInspectionRecord).Return(
			InspectionRecord{ID: "insp-2", NewInspectionRecord: cmd.NewInspectionRecord}, nil)
		f.tx.EXPECT().UpdateRequestStatus(ctx, gomock.Any(), StatusRefundProcessing).Return(nil)

		// when
		_, err := f.service.SubmitInspection(ctx, cmd)

		// then
		require.NoError(t, err)
	})

	t.Run("inspection needs the goods in hand", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", Status: StatusPendingReview}

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)

		// when
		_, err := f.service.SubmitInspection(ctx, newInspection(InspectionPassed))

		// then
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("closed requests cannot be re-inspected", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", RequestNumber: "RT100", Status: StatusCompleted}

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)

		// when
		_, err := f.service.SubmitInspection(ctx, newInspection(InspectionPassed))

		// then
		assert.ErrorIs(t, err, ErrRequestClosed)
	})

	t.Run("should reject unknown checklist keys", func(t *testing.T) {
		f := returnService(t, TransitionStrict)

		cmd := newInspection(InspectionPassed)
		cmd.Checklist = Checklist{"smells_fine": &yes}

		_, err := f.service.SubmitInspection(ctx, cmd)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestReturnService_ProcessRefund(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should complete the request and stamp refund fields", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", RequestNumber: "RT100", Status: StatusRefundProcessing}

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)
		f.tx.EXPECT().UpdateRequestStatus(ctx, gomock.Any(), StatusRefundProcessing).DoAndReturn(
			func(_ context.Context, updated ReturnRequest, _ Status) error {
				assert.Equal(t, StatusCompleted, updated.Status)
				require.NotNil(t, updated.RefundAmount)
				assert.Equal(t, 1290.0, *updated.RefundAmount)
				assert.NotEmpty(t, updated.RefundNumber)
				require.NotNil(t, updated.RefundProcessedAt)
				require.NotNil(t, updated.ClosedAt)
				return nil
			})

		// when
		updated, err := f.service.ProcessRefund(ctx, ProcessRefund{
			RequestID:  "req-1",
			ActorID:    "staff-1",
			Amount:     1290,
			RefundType: RefundOriginalPayment,
			Method:     "credit card reversal",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, updated.Status)

		require.Len(t, f.events.events, 1)
		assert.Equal(t, EventRefundProcessed, f.events.events[0].Type)
	})

	t.Run("refund requires refund_processing", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", Status: StatusReceivedInspecting}

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)

		// when
		_, err := f.service.ProcessRefund(ctx, ProcessRefund{RequestID: "req-1", Amount: 100})

		// then
		assert.ErrorIs(t, err, ErrRefundNotReady)
	})

	t.Run("should reject a non-positive amount", func(t *testing.T) {
		f := returnService(t, TransitionStrict)

		_, err := f.service.ProcessRefund(ctx, ProcessRefund{RequestID: "req-1", Amount: 0})

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestReturnService_UpdateReturnInfo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should patch only the supplied fields", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", Status: StatusShippingInTransit}
		stored.ReviewNotes = "keep me"
		tracking := "TW987"

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)
		f.tx.EXPECT().UpdateRequestInfo(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, updated ReturnRequest) error {
				assert.Equal(t, "TW987", updated.TrackingNumber)
				assert.Equal(t, "keep me", updated.ReviewNotes)
				return nil
			})

		// when
		updated, err := f.service.UpdateReturnInfo(ctx, UpdateReturnInfo{
			RequestID:      "req-1",
			TrackingNumber: &tracking,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "TW987", updated.TrackingNumber)
	})

	t.Run("closed requests cannot be edited", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		stored := ReturnRequest{ID: "req-1", Status: StatusCompleted}

		f.expectTransaction(ctx)
		f.tx.EXPECT().GetRequestByID(ctx, "req-1").Return(stored, nil)

		// when
		_, err := f.service.UpdateReturnInfo(ctx, UpdateReturnInfo{RequestID: "req-1"})

		// then
		assert.ErrorIs(t, err, ErrRequestClosed)
	})
}

func TestReturnService_CustomerLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should build the portal session", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		delivered := f.now.Add(-2 * 24 * time.Hour)
		order := deliveredOrder(&delivered, orders.ChannelOfficial)
		existing := []ReturnRequest{{ID: "req-1", Status: StatusPendingReview}}

		f.orders.EXPECT().GetByNumberAndPhone(ctx, "ORD-100", "0912345678").Return(order, nil)
		f.repo.EXPECT().QueryRequests(ctx, gomock.Any()).Return(existing, nil)

		// when
		session, err := f.service.CustomerLogin(ctx, CustomerLogin{OrderNumber: "ORD-100", Phone: "0912345678"})

		// then
		require.NoError(t, err)
		assert.True(t, session.SelfServiceOpen)
		assert.Len(t, session.ExistingRequests, 1)
		assert.Equal(t, 5, session.RemainingDays)
	})

	t.Run("marketplace orders close self-service", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		delivered := f.now.Add(-24 * time.Hour)
		order := deliveredOrder(&delivered, orders.ChannelShopee)

		f.orders.EXPECT().GetByNumberAndPhone(ctx, "ORD-100", "0912345678").Return(order, nil)
		f.repo.EXPECT().QueryRequests(ctx, gomock.Any()).Return(nil, nil)

		// when
		session, err := f.service.CustomerLogin(ctx, CustomerLogin{OrderNumber: "ORD-100", Phone: "0912345678"})

		// then
		require.NoError(t, err)
		assert.False(t, session.SelfServiceOpen)
	})

	t.Run("should propagate order lookup failures", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		f.orders.EXPECT().GetByNumberAndPhone(ctx, "ORD-100", "0912345678").Return(orders.Order{}, orders.ErrNotFound)

		// when
		_, err := f.service.CustomerLogin(ctx, CustomerLogin{OrderNumber: "ORD-100", Phone: "0912345678"})

		// then
		assert.ErrorIs(t, err, orders.ErrNotFound)
	})

	t.Run("should validate credentials", func(t *testing.T) {
		f := returnService(t, TransitionStrict)

		_, err := f.service.CustomerLogin(ctx, CustomerLogin{OrderNumber: "", Phone: ""})

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestReturnService_QueryRequests(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should apply the default limit and return the total", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)

		f.repo.EXPECT().QueryRequests(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, query ReturnsQuery) ([]ReturnRequest, error) {
				assert.Equal(t, defaultQueryLimit, query.Limit)
				return []ReturnRequest{{ID: "req-1"}}, nil
			})
		f.repo.EXPECT().CountRequests(ctx, gomock.Any()).Return(int64(41), nil)

		// when
		requests, total, err := f.service.QueryRequests(ctx, ReturnsQuery{})

		// then
		require.NoError(t, err)
		assert.Len(t, requests, 1)
		assert.Equal(t, int64(41), total)
	})

	t.Run("should propagate repository failures", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		f.repo.EXPECT().QueryRequests(ctx, gomock.Any()).Return(nil, errors.New("database error"))

		// when
		_, _, err := f.service.QueryRequests(ctx, ReturnsQuery{})

		// then
		assert.Error(t, err)
	})
}

func TestReturnService_TrackByNumber(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should resolve the request by its public number", func(t *testing.T) {
		// given
		f := returnService(t, TransitionStrict)
		request := ReturnRequest{ID: "req-1", RequestNumber: "RT100"}

		f.repo.EXPECT().GetRequestByNumber(ctx, "RT100").Return(request, nil)
		f.repo.EXPECT().GetDetail(ctx, "req-1").Return(RequestDetail{Request: request}, nil)

		// when
		detail, err := f.service.TrackByNumber(ctx, "RT100")

		// then
		require.NoError(t, err)
		assert.Equal(t, "RT100", detail.Request.RequestNumber)
	})

	t.Run("should reject an empty number", func(t *testing.T) {
		f := returnService(t, TransitionStrict)

		_, err := f.service.TrackByNumber(ctx, "")

		assert.ErrorIs(t, err, ErrValidation)
	})
}
