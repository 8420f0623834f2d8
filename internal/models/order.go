package models

import "time"

// Order представляет заказ пользователя. Сервис только сохраняет строки
// заказа, обработка и доставка остаются за пределами системы.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem — позиция заказа с ценой на момент оформления.
type OrderItem struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	ProductID string  `json:"product_id"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// DummyOrderItem используется для приёма позиции заказа из JSON-запроса.
type DummyOrderItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}
