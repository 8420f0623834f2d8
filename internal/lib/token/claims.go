// Package token реализует выпуск и проверку JWT сессионных токенов.
//
// Токен самодостаточен: внутри него идентификатор пользователя, почта,
// признак администратора и срок действия. Отзыв токена не поддерживается —
// единственный механизм инвалидации это истечение TTL.
package token

import (
	"time"
)

// Maker описывает интерфейс для выпуска и разбора сессионных токенов.
type Maker interface {
	// Generate выпускает подписанный токен с тремя клеймами и сроком действия.
	Generate(userID, email string, isAdmin bool) (string, error)
	// Parse проверяет подпись и срок действия, возвращает клеймы токена.
	Parse(tokenStr string) (*Claims, error)
}

// JWTMaker реализует Maker поверх HS256 с общим для процесса секретом
// и фиксированным временем жизни токена.
type JWTMaker struct {
	secretKey string        // Секретный ключ для подписи токенов
	tokenTTL  time.Duration // Время жизни токена
}

// New создаёт JWTMaker на основе секретного ключа и TTL.
func New(secretKey string, ttl time.Duration) *JWTMaker {
	return &JWTMaker{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
