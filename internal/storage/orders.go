package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/suit-shop/internal/models"
)

// CreateOrder сохраняет заказ вместе с позициями в одной транзакции:
// либо записывается всё, либо ничего.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) error {
	const op = "storage.CreateOrder"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, total, status, shipping_address, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		order.ID, order.UserID, order.Total, order.Status, order.ShippingAddress,
		order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, product_id, size, quantity, price)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, order.ID, item.ProductID, item.Size, item.Quantity, item.Price)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListOrdersByUser возвращает заказы пользователя вместе с позициями,
// новые заказы первыми.
func (s *Storage) ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	const op = "storage.ListOrdersByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, user_id, total, status, shipping_address, created_at, updated_at
		 FROM orders
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.ShippingAddress,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, o := range result {
		items, err := s.listOrderItems(ctx, o.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		o.Items = items
	}
	return result, nil
}

func (s *Storage) listOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, order_id, product_id, size, quantity, price
		 FROM order_items
		 WHERE order_id = $1
		 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Size,
			&item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
