package returns

import "errors"

var (
	// ErrNotFound is returned when the referenced return request does not exist.
	ErrNotFound = errors.New("return request not found")

	// ErrValidation is returned for malformed or unrecognized input values.
	ErrValidation = errors.New("validation failed")

	// ErrChannelRestricted is returned when the order's sales channel requires
	// returns to go through the marketplace's own flow.
	ErrChannelRestricted = errors.New("channel does not allow self-service returns")

	// ErrDeadlineExpired is returned when the return-eligibility window has passed.
	ErrDeadlineExpired = errors.New("return deadline expired")

	// ErrEligibilityUnknown is returned when the order has no delivery timestamp,
	// so the eligibility window cannot be computed.
	ErrEligibilityUnknown = errors.New("return eligibility unknown: order has no delivery date")

	// ErrRequestClosed is returned on any attempt to change a completed request.
	ErrRequestClosed = errors.New("return request is closed")

	// ErrInvalidTransition is returned when the transition policy rejects a
	// status pair.
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrConcurrentUpdate is returned when the request changed between read and
	// write inside a status update.
	ErrConcurrentUpdate = errors.New("return request was modified concurrently")

	// ErrRefundNotReady is returned when a refund is processed for a request
	// that is not in refund_processing.
	ErrRefundNotReady = errors.New("return request is not ready for refund")
)
