package returns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnsQueryBuilder(t *testing.T) {
	t.Parallel()

	t.Run("should build a filtered query", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		query, err := NewReturnsQueryBuilder().
			WithStatuses(StatusPendingReview, StatusAbnormalDisputed).
			WithChannels("official").
			WithSearch("RT1").
			WithCreatedBetween(from, to).
			WithLimit(20).
			WithOffset(40).
			Build()

		require.NoError(t, err)
		assert.Len(t, query.Statuses, 2)
		assert.Equal(t, "RT1", query.Search)
		assert.Equal(t, 20, query.Limit)
		assert.Equal(t, 40, query.Offset)
	})

	t.Run("default limit applies", func(t *testing.T) {
		query, err := NewReturnsQueryBuilder().Build()

		require.NoError(t, err)
		assert.Equal(t, defaultQueryLimit, query.Limit)
	})

	t.Run("should reject a limit above the cap", func(t *testing.T) {
		_, err := NewReturnsQueryBuilder().WithLimit(maxQueryLimit + 1).Build()
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("should reject an inverted time range", func(t *testing.T) {
		to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		from := to.AddDate(0, 1, 0)

		_, err := NewReturnsQueryBuilder().WithCreatedBetween(from, to).Build()
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("should reject negative offsets", func(t *testing.T) {
		_, err := NewReturnsQueryBuilder().WithOffset(-1).Build()
		assert.ErrorIs(t, err, ErrValidation)
	})
}
