// Package create реализует HTTP-обработчик оформления заказа.
package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/suit-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/suit-shop/internal/http/response"
	"github.com/magabrotheeeer/suit-shop/internal/lib/sl"
	"github.com/magabrotheeeer/suit-shop/internal/models"
	"github.com/magabrotheeeer/suit-shop/internal/services/order"
)

// Request — входные данные оформления заказа.
type Request struct {
	Items           []models.DummyOrderItem `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string                  `json:"shipping_address" validate:"required"`
}

// Service описывает интерфейс оформления заказа.
type Service interface {
	Create(ctx context.Context, userID, shippingAddress string, items []models.DummyOrderItem) (*models.Order, error)
}

// Handler обрабатывает запросы оформления заказа.
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
	const op = "handlers.order.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(string)
	if !ok || userID == "" {
		log.Error("user identification missing")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	var req Request
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

	created, err := h.service.Create(r.Context(), userID, req.ShippingAddress, req.Items)
	if err != nil {
		if errors.Is(err, order.ErrUnknownProduct) {
			log.Error("order references unknown product", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown product in order"))
			return
		}
		log.Error("failed to create order", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create order"))
		return
	}

	log.Info("created new order", slog.String("id", created.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData(created))
}
