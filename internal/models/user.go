// Package models содержит доменные структуры магазина:
// пользователей, товары каталога и заказы, а также DTO для приёма
// данных из JSON-запросов до их валидации.
package models

import "time"

// User представляет зарегистрированного пользователя магазина.
// Идентификатор имеет префикс "user_" и неизменен после создания.
type User struct {
	ID           string    // Уникальный идентификатор пользователя
	Email        string    // Электронная почта (уникальная, сравнивается как есть)
	PasswordHash string    // Bcrypt-хэш пароля
	IsAdmin      bool      // Признак администратора
	CreatedAt    time.Time // Дата создания записи
	UpdatedAt    time.Time // Дата последнего изменения записи
}
