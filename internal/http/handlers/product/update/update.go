// Package update реализует HTTP-обработчик частичного обновления товара.
// Применяются только присланные поля; отсутствующие остаются как были.
package update

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

// Service описывает интерфейс обновления товара.
type Service interface {
	Update(ctx context.Context, productID string, patch models.ProductPatch) (*models.Product, error)
}

// Handler обрабатывает запросы обновления товара.
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
	const op = "handlers.product.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var patch models.ProductPatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if patch.Price != nil && *patch.Price < 0 {
		log.Error("negative price rejected")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("price must not be negative"))
		return
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		log.Error("negative stock rejected")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("stock must not be negative"))
		return
	}

	productID := chi.URLParam(r, "id")

	product, err := h.service.Update(r.Context(), productID, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("product not found", slog.String("id", productID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
			return
		}
		log.Error("failed to update product", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update product"))
		return
	}

	log.Info("updated product", slog.String("id", productID))
	render.JSON(w, r, response.OKWithData(product))
}
