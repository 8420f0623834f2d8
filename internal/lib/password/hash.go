// Package password реализует хеширование паролей и проверку парольной
// политики магазина.
//
// Hash создает bcrypt-хеш для безопасного хранения, Compare проверяет
// введённый пароль против сохранённого хеша. ValidatePolicy накапливает
// все нарушенные правила политики, а не останавливается на первом.
package password

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Сообщения о нарушениях политики, в порядке проверки правил.
const (
	msgTooShort    = "Password must be at least 8 characters"
	msgNoUppercase = "Password must contain at least one uppercase letter"
	msgNoDigit     = "Password must contain at least one number"
)

// Hash принимает пароль пользователя и возвращает его bcrypt-хэш.
// Стоимость фиксирована (10 раундов).
func Hash(plain string) (string, error) {
	const op = "password.Hash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Compare сравнивает bcrypt-хэш с введённым паролем.
// Возвращает ошибку и для несовпадения, и для некорректного хеша —
// вызывающий трактует оба случая как неверные учетные данные.
func Compare(originalHash, plain string) error {
	const op = "password.Compare"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(plain)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ValidatePolicy проверяет пароль по правилам магазина: минимум 8 символов,
// хотя бы одна заглавная буква, хотя бы одна цифра. Возвращает список всех
// нарушенных правил в фиксированном порядке; пустой список — пароль валиден.
func ValidatePolicy(plain string) []string {
	var violations []string

	if len(plain) < 8 {
		violations = append(violations, msgTooShort)
	}

	var hasUpper, hasDigit bool
	for _, r := range plain {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper {
		violations = append(violations, msgNoUppercase)
	}
	if !hasDigit {
		violations = append(violations, msgNoDigit)
	}

	return violations
}
