package returns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReturnPolicyWindowDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, DefaultPolicy.WindowDays(ReasonHygiene))
	assert.Equal(t, 7, DefaultPolicy.WindowDays(ReasonDefective))
	assert.Equal(t, 7, DefaultPolicy.WindowDays(ReasonDamagedInTransit))
	assert.Equal(t, 7, DefaultPolicy.WindowDays(ReasonChangeOfMind))
	assert.Equal(t, 7, DefaultPolicy.WindowDays(ReasonOther))
}

func TestReturnPolicyEvaluate(t *testing.T) {
	t.Parallel()

	delivered := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		reason      ReasonCategory
		deliveredAt *time.Time
		now         time.Time
		expected    Eligibility
	}{
		{
			name:        "inside the standard window",
			reason:      ReasonChangeOfMind,
			deliveredAt: &delivered,
			now:         delivered.Add(6 * 24 * time.Hour),
			expected:    Eligible,
		},
		{
			name:        "on the last day of the standard window",
			reason:      ReasonChangeOfMind,
			deliveredAt: &delivered,
			now:         delivered.Add(7 * 24 * time.Hour),
			expected:    Eligible,
		},
		{
			name:        "past the standard window",
			reason:      ReasonChangeOfMind,
			deliveredAt: &delivered,
			now:         delivered.Add(7*24*time.Hour + time.Minute),
			expected:    Expired,
		},
		{
			name:        "hygiene window is shorter",
			reason:      ReasonHygiene,
			deliveredAt: &delivered,
			now:         delivered.Add(4 * 24 * time.Hour),
			expected:    Expired,
		},
		{
			name:        "no delivery date means unknown",
			reason:      ReasonChangeOfMind,
			deliveredAt: nil,
			now:         delivered,
			expected:    UnknownEligibility,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DefaultPolicy.Evaluate(tc.reason, tc.deliveredAt, tc.now))
		})
	}
}

func TestReturnPolicyRemainingDays(t *testing.T) {
	t.Parallel()

	delivered := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("counts whole days left", func(t *testing.T) {
		now := delivered.Add(2 * 24 * time.Hour)
		assert.Equal(t, 5, DefaultPolicy.RemainingDays(ReasonChangeOfMind, &delivered, now))
	})

	t.Run("clamps at zero after the deadline", func(t *testing.T) {
		now := delivered.Add(10 * 24 * time.Hour)
		assert.Equal(t, 0, DefaultPolicy.RemainingDays(ReasonChangeOfMind, &delivered, now))
	})

	t.Run("unknown delivery yields the full window", func(t *testing.T) {
		assert.Equal(t, 7, DefaultPolicy.RemainingDays(ReasonChangeOfMind, nil, delivered))
		assert.Equal(t, 3, DefaultPolicy.RemainingDays(ReasonHygiene, nil, delivered))
	})
}
