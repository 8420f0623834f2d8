package middlewarectx

import (
	"github.com/magabrotheeeer/suit-shop/internal/lib/token"
)

// TokenParser описывает интерфейс проверки сессионного токена.
type TokenParser interface {
	Parse(tokenStr string) (*token.Claims, error)
}
