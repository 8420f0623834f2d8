// Package create реализует HTTP-обработчик создания товара.
// Маршрут доступен только администраторам — проверку выполняет middleware
// до вызова обработчика.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/suit-shop/internal/http/response"
	"github.com/magabrotheeeer/suit-shop/internal/lib/sl"
	"github.com/magabrotheeeer/suit-shop/internal/models"
)

// Service описывает интерфейс создания товара.
type Service interface {
	Create(ctx context.Context, req models.DummyProduct) (*models.Product, error)
}

// Handler обрабатывает запросы создания товара.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyProduct
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	if *req.Price < 0 {
		log.Error("negative price rejected")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("price must not be negative"))
		return
	}
	if req.Stock != nil && *req.Stock < 0 {
		log.Error("negative stock rejected")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("stock must not be negative"))
		return
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create product", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create product"))
		return
	}

	log.Info("created new product", slog.String("id", product.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData(product))
}
