// Package list реализует HTTP-обработчик выборки каталога с фильтрами
// из query-параметров: style, minPrice, maxPrice, search. Все фильтры
// необязательны и комбинируются через AND.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/suit-shop/internal/http/response"
	"github.com/magabrotheeeer/suit-shop/internal/lib/sl"
	"github.com/magabrotheeeer/suit-shop/internal/models"
)

// Service описывает интерфейс выборки каталога.
type Service interface {
	List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
}

// Handler обрабатывает запросы списка товаров.
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
	const op = "handlers.product.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := models.ProductFilter{
		Style:  r.URL.Query().Get("style"),
		Search: r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Error("invalid minPrice", slog.String("value", raw))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid minPrice"))
			return
		}
		filter.MinPrice = &minPrice
	}
	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Error("invalid maxPrice", slog.String("value", raw))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid maxPrice"))
			return
		}
		filter.MaxPrice = &maxPrice
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list products"))
		return
	}
	if products == nil {
		products = []*models.Product{}
	}

	log.Info("list products", slog.Int("count", len(products)))
	render.JSON(w, r, response.OKWithData(products))
}
