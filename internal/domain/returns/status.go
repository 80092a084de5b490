package returns

import (
	"fmt"
	"slices"
)

// Status is the lifecycle stage of a return request. The values are stable
// wire strings shared with the portal and the admin dashboard.
type Status string

const (
	StatusPendingReview           Status = "pending_review"
	StatusApprovedWaitingShipping Status = "approved_waiting_shipping"
	StatusShippingInTransit       Status = "shipping_in_transit"
	StatusReceivedInspecting      Status = "received_inspecting"
	StatusRefundProcessing        Status = "refund_processing"
	StatusAbnormalDisputed        Status = "abnormal_disputed"
	StatusCompleted               Status = "completed"
)

var AvailableStatuses = []Status{
	StatusPendingReview,
	StatusApprovedWaitingShipping,
	StatusShippingInTransit,
	StatusReceivedInspecting,
	StatusRefundProcessing,
	StatusAbnormalDisputed,
	StatusCompleted,
}

func ParseStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, raw)
}

// IsTerminal reports whether the status closes the request. Completed
// requests never transition again.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// CanTransitionTo implements the forward transition graph. Any non-terminal
// status may move to abnormal_disputed (manual override); a disputed request
// may resolve into refund processing or closure.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusAbnormalDisputed {
		return true
	}

	switch s {
	case StatusPendingReview:
		return next == StatusApprovedWaitingShipping
	case StatusApprovedWaitingShipping:
		return next == StatusShippingInTransit
	case StatusShippingInTransit:
		return next == StatusReceivedInspecting
	case StatusReceivedInspecting:
		return next == StatusRefundProcessing
	case StatusRefundProcessing:
		return next == StatusCompleted
	case StatusAbnormalDisputed:
		return slices.Contains([]Status{StatusRefundProcessing, StatusCompleted}, next)
	default:
		return false
	}
}

// TransitionPolicy decides whether the transition graph is enforced.
// Permissive mode keeps the legacy behavior of accepting any recognized
// status so staff can correct records manually; strict mode rejects pairs
// outside the graph. Both reject transitions out of a terminal status.
type TransitionPolicy string

const (
	TransitionStrict     TransitionPolicy = "strict"
	TransitionPermissive TransitionPolicy = "permissive"
)

func ParseTransitionPolicy(raw string) (TransitionPolicy, error) {
	switch TransitionPolicy(raw) {
	case TransitionStrict, TransitionPermissive:
		return TransitionPolicy(raw), nil
	default:
		return "", fmt.Errorf("unknown transition policy %q", raw)
	}
}

// Allows reports whether the policy accepts moving from one status to another.
func (p TransitionPolicy) Allows(from, to Status) bool {
	if from.IsTerminal() {
		return false
	}
	if p == TransitionPermissive {
		return true
	}
	return from.CanTransitionTo(to)
}
