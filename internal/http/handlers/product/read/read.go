// Package read реализует HTTP-обработчик чтения товара по идентификатору.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/suit-shop/internal/http/response"
	"github.com/magabrotheeeer/suit-shop/internal/lib/sl"
	"github.com/magabrotheeeer/suit-shop/internal/models"
	"github.com/magabrotheeeer/suit-shop/internal/storage"
)

// Service описывает интерфейс чтения товара.
type Service interface {
	Get(ctx context.Context, productID string) (*models.Product, error)
}

// Handler обрабатывает запросы чтения товара.
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
	const op = "handlers.product.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	productID := chi.URLParam(r, "id")

	product, err := h.service.Get(r.Context(), productID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("product not found", slog.String("id", productID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
			return
		}
		log.Error("failed to read product", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read product"))
		return
	}

	render.JSON(w, r, response.OKWithData(product))
}
