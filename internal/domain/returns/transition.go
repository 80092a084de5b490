package returns

import "time"

// StatusChange carries the optional fields a transition may write.
type StatusChange struct {
	ActorID          string
	Notes            string
	TrackingNumber   string
	LogisticsCompany string
}

// ApplyTransition moves a request to the destination status and stamps the
// fields the transition owns. Milestone timestamps are write-once: a later
// transition never clears or overwrites one that is already set. The caller
// has already validated the transition against the policy.
func ApplyTransition(req ReturnRequest, to Status, change StatusChange, now time.Time) ReturnRequest {
	req.Status = to
	req.UpdatedAt = now

	switch to {
	case StatusApprovedWaitingShipping:
		if req.ApprovedAt == nil {
			req.ApprovedAt = &now
		}
		if change.ActorID != "" {
			req.ReviewedBy = &change.ActorID
		}
		if change.Notes != "" {
			req.ReviewNotes = change.Notes
		}
	case StatusShippingInTransit:
		if req.ShippedAt == nil {
			req.ShippedAt = &now
		}
		if change.TrackingNumber != "" {
			req.TrackingNumber = change.TrackingNumber
		}
		if change.LogisticsCompany != "" {
			req.LogisticsCompany = change.LogisticsCompany
		}
	case StatusReceivedInspecting:
		if req.ReceivedAt == nil {
			req.ReceivedAt = &now
		}
	case StatusRefundProcessing:
		if req.InspectedAt == nil {
			req.InspectedAt = &now
		}
		if change.ActorID != "" {
			req.InspectedBy = &change.ActorID
		}
		if change.Notes != "" {
			req.InspectionNotes = change.Notes
		}
	case StatusAbnormalDisputed:
		if change.Notes != "" {
			req.DisputeNotes = change.Notes
		}
	case StatusCompleted:
		if req.ClosedAt == nil {
			req.ClosedAt = &now
		}
	}

	return req
}
