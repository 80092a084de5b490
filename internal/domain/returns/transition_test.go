package returns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTransition(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

	t.Run("approval stamps approved_at and reviewer", func(t *testing.T) {
		req := ReturnRequest{ID: "req-1", Status: StatusPendingReview}

		updated := ApplyTransition(req, StatusApprovedWaitingShipping, StatusChange{
			ActorID: "staff-7",
			Notes:   "photos look fine",
		}, now)

		assert.Equal(t, StatusApprovedWaitingShipping, updated.Status)
		require.NotNil(t, updated.ApprovedAt)
		assert.Equal(t, now, *updated.ApprovedAt)
		require.NotNil(t, updated.ReviewedBy)
		assert.Equal(t, "staff-7", *updated.ReviewedBy)
		assert.Equal(t, "photos look fine", updated.ReviewNotes)
		assert.Equal(t, now, updated.UpdatedAt)
	})

	t.Run("shipping stamps shipped_at and logistics fields", func(t *testing.T) {
		req := ReturnRequest{ID: "req-1", Status: StatusApprovedWaitingShipping}

		updated := ApplyTransition(req, StatusShippingInTransit, StatusChange{
			TrackingNumber:   "TW123456789",
			LogisticsCompany: "black cat",
		}, now)

		require.NotNil(t, updated.ShippedAt)
		assert.Equal(t, "TW123456789", updated.TrackingNumber)
		assert.Equal(t, "black cat", updated.LogisticsCompany)
	})

	t.Run("milestone timestamps are write-once", func(t *testing.T) {
		earlier := now.Add(-48 * time.Hour)
		req := ReturnRequest{ID: "req-1", Status: StatusAbnormalDisputed}
		req.ApprovedAt = &earlier

		updated := ApplyTransition(req, StatusApprovedWaitingShipping, StatusChange{}, now)

		require.NotNil(t, updated.ApprovedAt)
		assert.Equal(t, earlier, *updated.ApprovedAt, "existing stamp must survive a re-entry")
		assert.Equal(t, now, updated.UpdatedAt)
	})

	t.Run("refund processing stamps inspection fields", func(t *testing.T) {
		req := ReturnRequest{ID: "req-1", Status: StatusReceivedInspecting}

		updated := ApplyTransition(req, StatusRefundProcessing, StatusChange{
			ActorID: "inspector-2",
			Notes:   "minor scuffs",
		}, now)

		require.NotNil(t, updated.InspectedAt)
		require.NotNil(t, updated.InspectedBy)
		assert.Equal(t, "inspector-2", *updated.InspectedBy)
		assert.Equal(t, "minor scuffs", updated.InspectionNotes)
	})

	t.Run("dispute keeps timestamps and records the note", func(t *testing.T) {
		req := ReturnRequest{ID: "req-1", Status: StatusShippingInTransit}

		updated := ApplyTransition(req, StatusAbnormalDisputed, StatusChange{Notes: "parcel lost"}, now)

		assert.Equal(t, "parcel lost", updated.DisputeNotes)
		assert.Nil(t, updated.ClosedAt)
	})

	t.Run("completion stamps closed_at", func(t *testing.T) {
		req := ReturnRequest{ID: "req-1", Status: StatusRefundProcessing}

		updated := ApplyTransition(req, StatusCompleted, StatusChange{}, now)

		require.NotNil(t, updated.ClosedAt)
		assert.Equal(t, now, *updated.ClosedAt)
	})

	t.Run("empty change fields never clear existing values", func(t *testing.T) {
		req := ReturnRequest{ID: "req-1", Status: StatusApprovedWaitingShipping}
		req.TrackingNumber = "TW-KEEP"
		req.LogisticsCompany = "keep express"

		updated := ApplyTransition(req, StatusShippingInTransit, StatusChange{}, now)

		assert.Equal(t, "TW-KEEP", updated.TrackingNumber)
		assert.Equal(t, "keep express", updated.LogisticsCompany)
	})
}
