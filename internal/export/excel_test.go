package export

import (
	"testing"
	"time"

	"returnhub/internal/domain/returns"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	amount := 990.0
	closed := time.Date(2026, 3, 20, 16, 0, 0, 0, time.UTC)

	request := returns.ReturnRequest{
		ID:            "req-1",
		RequestNumber: "RT100",
		Status:        returns.StatusCompleted,
	}
	request.OrderID = "order-1"
	request.ChannelSource = "official"
	request.ReasonCategory = returns.ReasonDefective
	request.RefundAmount = &amount
	request.RefundNumber = "RF200"
	request.AppliedAt = time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	request.ClosedAt = &closed

	f, err := Render([]returns.ReturnRequest{request})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, header, rows[0][:len(header)])
	assert.Equal(t, "RT100", rows[1][0])
	assert.Equal(t, "completed", rows[1][2])
	assert.Equal(t, "990", rows[1][10])
	assert.Equal(t, "2026-03-20 16:00:00", rows[1][15])
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	f, err := Render(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the header row")
}

func TestFilename(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 31, 8, 15, 0, 0, time.UTC)
	assert.Equal(t, "returns_20260331_081500.xlsx", Filename(now))
}
