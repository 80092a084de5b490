package orders

import (
	"errors"
	"slices"
	"time"
)

// Order is the purchase a return request refers to. Orders are fed into the
// local store from the commerce platform; the returns service never creates
// them except as a fallback during portal submission.
type Order struct {
	ID            string     `json:"id"`
	OrderNumber   string     `json:"order_number"`
	CustomerID    *string    `json:"customer_id,omitempty"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	Channel       Channel    `json:"channel_source"`
	Status        string     `json:"status"`
	TotalAmount   float64    `json:"total_amount"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem is a purchased line item, referenced by return items.
type OrderItem struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	SKU         string  `json:"sku"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Channel is the sales channel the order was placed through.
type Channel string

const (
	ChannelShopee   Channel = "shopee"
	ChannelOfficial Channel = "official"
	ChannelMomo     Channel = "momo"
	ChannelDealer   Channel = "dealer"
	ChannelOther    Channel = "other"
)

var AvailableChannels = []Channel{ChannelShopee, ChannelOfficial, ChannelMomo, ChannelDealer, ChannelOther}

// ParseChannel validates a raw channel value. Unknown channels collapse to
// ChannelOther, matching how order records arrive from mixed sources.
func ParseChannel(raw string) Channel {
	if slices.Contains(AvailableChannels, Channel(raw)) {
		return Channel(raw)
	}
	return ChannelOther
}

// AllowsSelfServiceReturn reports whether customers may open return requests
// for this channel through the portal. Marketplace channels that run their
// own return flow are excluded.
func (c Channel) AllowsSelfServiceReturn() bool {
	return c != ChannelShopee
}

var ErrNotFound = errors.New("order not found")
