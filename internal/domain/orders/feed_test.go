package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFeedService_ProcessUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should upsert the mapped order", func(t *testing.T) {
		// given
		mockRepo := NewMockOrderRepo(gomock.NewController(t))
		service := NewFeedService(mockRepo)
		delivered := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

		update := FeedUpdate{
			OrderNumber:   "ORD-100",
			CustomerName:  "Lin Wei",
			CustomerPhone: "0912345678",
			ChannelSource: "momo",
			Status:        "delivered",
			TotalAmount:   2490,
			DeliveredAt:   &delivered,
			Items: []FeedItem{
				{SKU: "SKU-1", ProductName: "Mixer", Quantity: 1, UnitPrice: 2490},
			},
		}

		mockRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, order Order) error {
				assert.Equal(t, "ORD-100", order.OrderNumber)
				assert.Equal(t, ChannelMomo, order.Channel)
				require.Len(t, order.Items, 1)
				assert.Equal(t, "SKU-1", order.Items[0].SKU)
				return nil
			})

		// when
		err := service.ProcessUpdate(ctx, update)

		// then
		require.NoError(t, err)
	})

	t.Run("unknown channels collapse to other", func(t *testing.T) {
		// given
		mockRepo := NewMockOrderRepo(gomock.NewController(t))
		service := NewFeedService(mockRepo)

		mockRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, order Order) error {
				assert.Equal(t, ChannelOther, order.Channel)
				return nil
			})

		// when
		err := service.ProcessUpdate(ctx, FeedUpdate{
			OrderNumber:   "ORD-101",
			CustomerPhone: "0900000000",
			ChannelSource: "ebay",
		})

		// then
		require.NoError(t, err)
	})

	t.Run("should reject an update without an order number", func(t *testing.T) {
		service := NewFeedService(NewMockOrderRepo(gomock.NewController(t)))

		err := service.ProcessUpdate(ctx, FeedUpdate{CustomerPhone: "0900000000"})

		assert.Error(t, err)
	})
}
