package orders

import "context"

//go:generate mockgen -source repo.go -destination mock_repo.go -package orders

type OrderRepo interface {
	GetByID(ctx context.Context, id string) (Order, error)
	GetByNumberAndPhone(ctx context.Context, orderNumber, phone string) (Order, error)
	Upsert(ctx context.Context, order Order) error
}
