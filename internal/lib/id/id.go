// Package id генерирует идентификаторы сущностей магазина.
//
// Каждый идентификатор — UUID с префиксом пространства имён, поэтому
// по одной только строке видно, к какой сущности он относится.
package id

import "github.com/google/uuid"

// NewUserID возвращает новый идентификатор пользователя вида "user_<uuid>".
func NewUserID() string {
	return "user_" + uuid.NewString()
}

// NewProductID возвращает новый идентификатор товара вида "prod_<uuid>".
func NewProductID() string {
	return "prod_" + uuid.NewString()
}

// NewOrderID возвращает новый идентификатор заказа вида "order_<uuid>".
func NewOrderID() string {
	return "order_" + uuid.NewString()
}

// NewOrderItemID возвращает новый идентификатор позиции заказа.
func NewOrderItemID() string {
	return "item_" + uuid.NewString()
}
