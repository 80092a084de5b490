package orders_repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"returnhub/internal/domain/orders"
	"returnhub/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "order_number", "customer_id", "customer_name", "customer_phone",
	"channel_source", "status", "total_amount", "delivered_at", "created_at", "updated_at",
}

type PgOrderRepo struct {
	pg      *postgres.Postgres
	builder squirrel.StatementBuilderType
}

func NewPgOrderRepo(pg *postgres.Postgres) orders.OrderRepo {
	return &PgOrderRepo{pg: pg, builder: pg.Builder}
}

func (r *PgOrderRepo) GetByID(ctx context.Context, id string) (orders.Order, error) {
	return r.getOrderWhere(ctx, squirrel.Eq{"id": id})
}

func (r *PgOrderRepo) GetByNumberAndPhone(ctx context.Context, orderNumber, phone string) (orders.Order, error) {
	return r.getOrderWhere(ctx, squirrel.Eq{"order_number": orderNumber, "customer_phone": phone})
}

// Upsert replaces the order row and its items keyed by order number. The
// platform feed is the source of truth for order data, so the newest
// message always wins.
func (r *PgOrderRepo) Upsert(ctx context.Context, order orders.Order) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		id := order.ID
		if id == "" {
			id = uuid.New().String()
		}

		query, args, err := r.builder.Insert("orders").
			Columns(orderColumns...).
			Values(
				id, order.OrderNumber, order.CustomerID, order.CustomerName, order.CustomerPhone,
				order.Channel, order.Status, order.TotalAmount, order.DeliveredAt,
				squirrel.Expr("NOW()"), squirrel.Expr("NOW()"),
			).
			Suffix(`ON CONFLICT (order_number) DO UPDATE SET
				customer_name = EXCLUDED.customer_name,
				customer_phone = EXCLUDED.customer_phone,
				channel_source = EXCLUDED.channel_source,
				status = EXCLUDED.status,
				total_amount = EXCLUDED.total_amount,
				delivered_at = EXCLUDED.delivered_at,
				updated_at = NOW()
				RETURNING id`).
			ToSql()
		if err != nil {
			return fmt.Errorf("build upsert query: %w", err)
		}

		if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return fmt.Errorf("upsert order: %w", err)
		}

		deleteSQL, deleteArgs, err := r.builder.Delete("order_items").
			Where(squirrel.Eq{"order_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build delete items query: %w", err)
		}
		if _, err := tx.Exec(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("delete order items: %w", err)
		}

		if len(order.Items) == 0 {
			return nil
		}

		insert := r.builder.Insert("order_items").
			Columns("id", "order_id", "sku", "product_name", "quantity", "unit_price")
		for _, item := range order.Items {
			insert = insert.Values(uuid.New().String(), id, item.SKU, item.ProductName, item.Quantity, item.UnitPrice)
		}
		insertSQL, insertArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("build insert items query: %w", err)
		}
		if _, err := tx.Exec(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
		return nil
	})
}

func (r *PgOrderRepo) getOrderWhere(ctx context.Context, cond squirrel.Sqlizer) (orders.Order, error) {
	query, args, err := r.builder.Select(orderColumns...).
		From("orders").
		Where(cond).
		ToSql()
	if err != nil {
		return orders.Order{}, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.pg.Pool.Query(ctx, query, args...)
	if err != nil {
		return orders.Order{}, fmt.Errorf("query order: %w", err)
	}
	defer rows.Close()

	found, err := parseOrderRows(rows)
	if err != nil {
		return orders.Order{}, err
	}
	if len(found) == 0 {
		return orders.Order{}, orders.ErrNotFound
	}

	order := found[0]
	order.Items, err = r.listItems(ctx, order.ID)
	if err != nil {
		return orders.Order{}, err
	}
	return order, nil
}

func (r *PgOrderRepo) listItems(ctx context.Context, orderID string) ([]orders.OrderItem, error) {
	query, args, err := r.builder.Select("id", "sku", "product_name", "quantity", "unit_price").
		From("order_items").
		Where(squirrel.Eq{"order_id": orderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.pg.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	var items []orders.OrderItem
	for rows.Next() {
		var item orders.OrderItem
		if err := rows.Scan(&item.ID, &item.SKU, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}
	return items, nil
}

func parseOrderRows(rows pgx.Rows) ([]orders.Order, error) {
	var result []orders.Order
	for rows.Next() {
		var (
			o           orders.Order
			rawChannel  string
			customerID  sql.NullString
			deliveredAt sql.NullTime
			createdAt   time.Time
			updatedAt   time.Time
		)
		err := rows.Scan(&o.ID, &o.OrderNumber, &customerID, &o.CustomerName, &o.CustomerPhone,
			&rawChannel, &o.Status, &o.TotalAmount, &deliveredAt, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		o.Channel = orders.ParseChannel(rawChannel)
		o.CreatedAt = createdAt
		o.UpdatedAt = updatedAt
		if customerID.Valid {
			o.CustomerID = &customerID.String
		}
		if deliveredAt.Valid {
			o.DeliveredAt = &deliveredAt.Time
		}

		result = append(result, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return result, nil
}
