// Package order содержит бизнес-логику оформления заказов.
// Сервис ограничивается сохранением строк заказа: ни оплаты,
// ни управления доставкой здесь нет.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/suit-shop/internal/lib/id"
	"github.com/magabrotheeeer/suit-shop/internal/models"
	"github.com/magabrotheeeer/suit-shop/internal/storage"
)

// ErrUnknownProduct возвращается, если позиция заказа ссылается
// на несуществующий товар.
var ErrUnknownProduct = errors.New("unknown product")

// OrderRepository определяет методы для работы с заказами в хранилище.
type OrderRepository interface {
	// CreateOrder сохраняет заказ с позициями в одной транзакции.
	CreateOrder(ctx context.Context, order models.Order) error
	// ListOrdersByUser возвращает заказы пользователя.
	ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error)
}

// ProductGetter достаёт товар для расчёта цены позиции.
type ProductGetter interface {
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
}

// OrderService реализует оформление и чтение заказов.
type OrderService struct {
	orders   OrderRepository
	products ProductGetter
	log      *slog.Logger
}

// New создает новый экземпляр OrderService.
func New(orders OrderRepository, products ProductGetter, log *slog.Logger) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		log:      log,
	}
}

// Create оформляет заказ: цены берутся из каталога на момент оформления,
// итог считается по позициям. Ссылка на несуществующий товар отклоняет
// весь заказ.
func (s *OrderService) Create(ctx context.Context, userID, shippingAddress string, items []models.DummyOrderItem) (*models.Order, error) {
	now := time.Now().UTC()
	order := models.Order{
		ID:              id.NewOrderID(),
		UserID:          userID,
		Status:          "pending",
		ShippingAddress: shippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for _, item := range items {
		product, err := s.products.GetProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, item.ProductID)
			}
			return nil, err
		}
		order.Items = append(order.Items, models.OrderItem{
			ID:        id.NewOrderItemID(),
			OrderID:   order.ID,
			ProductID: product.ID,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
		order.Total += product.Price * float64(item.Quantity)
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("created new order",
		slog.String("id", order.ID),
		slog.Int("items", len(order.Items)))
	return &order, nil
}

// List возвращает заказы пользователя, новые первыми.
func (s *OrderService) List(ctx context.Context, userID string) ([]*models.Order, error) {
	return s.orders.ListOrdersByUser(ctx, userID)
}
