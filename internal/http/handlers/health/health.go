// Package health реализует HTTP-обработчик проверки живости сервиса.
package health

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/suit-shop/internal/http/response"
)

// New возвращает обработчик, отвечающий текущим временем сервера.
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OKWithData(map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}))
	}
}
