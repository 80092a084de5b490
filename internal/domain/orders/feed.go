package orders

import (
	"context"
	"fmt"
	"time"
)

// FeedUpdate is one order record from the commerce platform feed.
type FeedUpdate struct {
	OrderNumber   string     `json:"order_number"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	ChannelSource string     `json:"channel_source"`
	Status        string     `json:"status"`
	TotalAmount   float64    `json:"total_amount"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	Items         []FeedItem `json:"items,omitempty"`
}

type FeedItem struct {
	SKU         string  `json:"sku"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (u FeedUpdate) Validate() error {
	if u.OrderNumber == "" {
		return fmt.Errorf("order_number is required")
	}
	if u.CustomerPhone == "" {
		return fmt.Errorf("customer_phone is required")
	}
	return nil
}

// FeedService keeps the local order table current from the platform feed.
type FeedService struct {
	repo OrderRepo
}

func NewFeedService(repo OrderRepo) *FeedService {
	return &FeedService{repo: repo}
}

// ProcessUpdate upserts one order from the feed.
func (s *FeedService) ProcessUpdate(ctx context.Context, update FeedUpdate) error {
	if err := update.Validate(); err != nil {
		return fmt.Errorf("invalid order update: %w", err)
	}

	order := Order{
		OrderNumber:   update.OrderNumber,
		CustomerName:  update.CustomerName,
		CustomerPhone: update.CustomerPhone,
		Channel:       ParseChannel(update.ChannelSource),
		Status:        update.Status,
		TotalAmount:   update.TotalAmount,
		DeliveredAt:   update.DeliveredAt,
	}
	for _, it := range update.Items {
		order.Items = append(order.Items, OrderItem{
			SKU:         it.SKU,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	if err := s.repo.Upsert(ctx, order); err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}
	return nil
}
