// Package email содержит структурную проверку адреса электронной почты.
package email

import (
	"strings"
	"unicode"
)

// Valid проверяет адрес на очевидные дефекты: ровно один символ "@",
// непустая локальная часть без пробелов, непустой домен с хотя бы одной
// точкой. Это не полная RFC-валидация — она отсекает только явный мусор.
func Valid(s string) bool {
	at := strings.Count(s, "@")
	if at != 1 {
		return false
	}

	local, domain, _ := strings.Cut(s, "@")
	if local == "" || domain == "" {
		return false
	}
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	// Домен вида "user@." или "user@example." — тоже мусор.
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
