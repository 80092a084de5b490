package returns_repo

import (
	"context"
	"testing"
	"time"

	"returnhub/internal/domain/returns"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

// anyArgs matches the SET clause values of the full-row update, whose exact
// contents the subtests do not care about.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

// updateSetters in pg_return_repo.go binds one value per updated column.
const setterArgCount = 23

func fullRequestRow(mock pgxmock.PgxPoolIface, id, status string) *pgxmock.Rows {
	appliedAt := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	return mock.NewRows(requestColumns).AddRow(
		id, "RT100", "order-1", nil, status,
		"official", "defective", "does not power on", "convenience_store",
		"pending", nil, "", "", "", nil,
		"", "",
		"", "", "",
		nil, nil,
		appliedAt, nil, nil, nil,
		nil, nil, nil, appliedAt,
	)
}

func TestGetRequestByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	t.Run("should return the request", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM return_requests WHERE id = \$1`).
			WithArgs("req-1").
			WillReturnRows(fullRequestRow(mock, "req-1", "pending_review"))

		request, err := repo.GetRequestByID(ctx, "req-1")

		require.NoError(t, err)
		assert.Equal(t, "RT100", request.RequestNumber)
		assert.Equal(t, returns.StatusPendingReview, request.Status)
		assert.Equal(t, returns.ReasonDefective, request.ReasonCategory)
		assert.Nil(t, request.CustomerID)
		assert.Nil(t, request.ApprovedAt)
	})

	t.Run("should return ErrNotFound for a missing id", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM return_requests WHERE id = \$1`).
			WithArgs("req-404").
			WillReturnRows(mock.NewRows(requestColumns))

		_, err := repo.GetRequestByID(ctx, "req-404")

		assert.ErrorIs(t, err, returns.ErrNotFound)
	})

	t.Run("should reject a corrupt status value", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM return_requests WHERE id = \$1`).
			WithArgs("req-1").
			WillReturnRows(fullRequestRow(mock, "req-1", "limbo"))

		_, err := repo.GetRequestByID(ctx, "req-1")

		assert.Error(t, err)
	})
}

func TestGetRequestByNumber(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	t.Run("should resolve by request number", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM return_requests WHERE request_number = \$1`).
			WithArgs("RT100").
			WillReturnRows(fullRequestRow(mock, "req-1", "shipping_in_transit"))

		request, err := repo.GetRequestByNumber(ctx, "RT100")

		require.NoError(t, err)
		assert.Equal(t, "req-1", request.ID)
		assert.Equal(t, returns.StatusShippingInTransit, request.Status)
	})
}

func TestUpdateRequestStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	updated := returns.ReturnRequest{ID: "req-1", Status: returns.StatusApprovedWaitingShipping}

	// SET values first, then the WHERE guard: id and the status the caller read
	casArgs := append(anyArgs(setterArgCount+1), "req-1", returns.StatusPendingReview)

	t.Run("should update when the stored status still matches", func(t *testing.T) {
		mock.ExpectExec(`UPDATE return_requests SET .+ WHERE id = \$\d+ AND status = \$\d+`).
			WithArgs(casArgs...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateRequestStatus(ctx, updated, returns.StatusPendingReview)

		require.NoError(t, err)
	})

	t.Run("zero affected rows means a concurrent writer won", func(t *testing.T) {
		mock.ExpectExec(`UPDATE return_requests SET .+ WHERE id = \$\d+ AND status = \$\d+`).
			WithArgs(casArgs...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateRequestStatus(ctx, updated, returns.StatusPendingReview)

		assert.ErrorIs(t, err, returns.ErrConcurrentUpdate)
	})
}

func TestUpdateRequestInfo(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	t.Run("zero affected rows means the request is gone", func(t *testing.T) {
		mock.ExpectExec(`UPDATE return_requests SET .+ WHERE id = \$\d+`).
			WithArgs(append(anyArgs(setterArgCount), "req-404")...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateRequestInfo(ctx, returns.ReturnRequest{ID: "req-404"})

		assert.ErrorIs(t, err, returns.ErrNotFound)
	})
}

func TestQueryRequests(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	t.Run("should filter by status and paginate", func(t *testing.T) {
		query, err := returns.NewReturnsQueryBuilder().
			WithStatuses(returns.StatusPendingReview).
			WithLimit(10).
			Build()
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT .+ FROM return_requests WHERE status IN \(\$1\) ORDER BY applied_at DESC LIMIT 10`).
			WithArgs(returns.StatusPendingReview).
			WillReturnRows(fullRequestRow(mock, "req-1", "pending_review"))

		result, err := repo.QueryRequests(ctx, query)

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("search matches request and tracking numbers", func(t *testing.T) {
		query, err := returns.NewReturnsQueryBuilder().WithSearch("RT1").Build()
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT .+ FROM return_requests WHERE \(request_number ILIKE \$1 OR tracking_number ILIKE \$2\)`).
			WithArgs("%RT1%", "%RT1%").
			WillReturnRows(mock.NewRows(requestColumns))

		result, err := repo.QueryRequests(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestCountRequests(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM return_requests`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(7)))

	total, err := repo.CountRequests(ctx, returns.ReturnsQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
}
