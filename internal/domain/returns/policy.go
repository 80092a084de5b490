package returns

import "time"

// Eligibility is the outcome of a return window check.
type Eligibility string

const (
	Eligible           Eligibility = "eligible"
	Expired            Eligibility = "expired"
	UnknownEligibility Eligibility = "unknown"
)

const hoursPerDay = 24

// ReturnPolicy defines the per-category return windows, counted in days
// from the delivery timestamp.
type ReturnPolicy struct {
	StandardDays int
	HygieneDays  int
	DefectDays   int
}

// DefaultPolicy mirrors the published store policy.
var DefaultPolicy = ReturnPolicy{
	StandardDays: 7,
	HygieneDays:  3,
	DefectDays:   7,
}

// WindowDays returns the return window for a reason category.
func (p ReturnPolicy) WindowDays(reason ReasonCategory) int {
	switch reason {
	case ReasonHygiene:
		return p.HygieneDays
	case ReasonDefective, ReasonDamagedInTransit:
		return p.DefectDays
	default:
		return p.StandardDays
	}
}

// Evaluate checks whether a return started at now for goods delivered at
// deliveredAt falls inside the window. A nil deliveredAt means the order
// has no recorded delivery, so the outcome is unknown rather than a
// hard rejection.
func (p ReturnPolicy) Evaluate(reason ReasonCategory, deliveredAt *time.Time, now time.Time) Eligibility {
	if deliveredAt == nil {
		return UnknownEligibility
	}
	deadline := deliveredAt.Add(time.Duration(p.WindowDays(reason)) * hoursPerDay * time.Hour)
	if now.After(deadline) {
		return Expired
	}
	return Eligible
}

// RemainingDays reports how many whole days of the window remain,
// clamped at zero. Unknown delivery yields the full window.
func (p ReturnPolicy) RemainingDays(reason ReasonCategory, deliveredAt *time.Time, now time.Time) int {
	window := p.WindowDays(reason)
	if deliveredAt == nil {
		return window
	}
	deadline := deliveredAt.Add(time.Duration(window) * hoursPerDay * time.Hour)
	if !deadline.After(now) {
		return 0
	}
	return int(deadline.Sub(now) / (hoursPerDay * time.Hour))
}
