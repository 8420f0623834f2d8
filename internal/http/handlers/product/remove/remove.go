// Package remove реализует HTTP-обработчик удаления товара.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/suit-shop/internal/http/response"
	"github.com/magabrotheeeer/suit-shop/internal/lib/sl"
)

// Service описывает интерфейс удаления товара.
type Service interface {
	Delete(ctx context.Context, productID string) (bool, error)
}

// Handler обрабатывает запросы удаления товара.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	productID := chi.URLParam(r, "id")

	deleted, err := h.service.Delete(r.Context(), productID)
	if err != nil {
		log.Error("failed to delete product", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete product"))
		return
	}
	if !deleted {
		log.Error("product not found", slog.String("id", productID))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("product not found"))
		return
	}

	log.Info("deleted product", slog.String("id", productID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "product deleted",
	}))
}
