package returns

import "returnhub/internal/domain/orders"

// CustomerLogin identifies a customer through their order.
type CustomerLogin struct {
	OrderNumber string `json:"order_number"`
	Phone       string `json:"phone"`
}

func (l CustomerLogin) Validate() error {
	if l.OrderNumber == "" || l.Phone == "" {
		return ErrValidation
	}
	return nil
}

// CustomerSession is what the portal works with after a successful login.
type CustomerSession struct {
	Order            orders.Order    `json:"order"`
	SelfServiceOpen  bool            `json:"self_service_open"`
	ExistingRequests []ReturnRequest `json:"existing_requests"`
	RemainingDays    int             `json:"remaining_days"`
}
