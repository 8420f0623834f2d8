package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims описывает данные сессии, хранящиеся в JWT.
type Claims struct {
	UserID               string `json:"userId"`  // Идентификатор пользователя
	Email                string `json:"email"`   // Электронная почта
	IsAdmin              bool   `json:"isAdmin"` // Признак администратора
	jwt.RegisteredClaims        // Встроенные стандартные claims (ExpiresAt, IssuedAt и пр.)
}

// Generate создает JWT с заданными клеймами, подписывая его секретным ключом.
// Срок действия определяется полем tokenTTL.
func (j *JWTMaker) Generate(userID, email string, isAdmin bool) (string, error) {
	claims := Claims{
		UserID:  userID,
		Email:   email,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// Parse разбирает JWT, проверяет подпись и срок действия.
// Любой дефект токена — неверная подпись, мусор вместо токена, истёкший
// срок — возвращается как ошибка, никогда как паника.
func (j *JWTMaker) Parse(tokenStr string) (*Claims, error) {
	const op = "token.Parse"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
