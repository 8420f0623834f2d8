// Package me реализует HTTP-обработчик чтения собственного профиля.
// Запись пользователя перечитывается из базы: токен может пережить
// удаление учётной записи, тогда возвращается 404.
package me

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/suit-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/suit-shop/internal/http/response"
	"github.com/magabrotheeeer/suit-shop/internal/lib/sl"
	"github.com/magabrotheeeer/suit-shop/internal/models"
	"github.com/magabrotheeeer/suit-shop/internal/storage"
)

// Service описывает интерфейс чтения профиля.
type Service interface {
	Me(ctx context.Context, userID string) (*models.User, error)
}

// Handler обрабатывает запросы профиля текущего пользователя.
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
	const op = "handlers.auth.me"

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

	user, err := h.service.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("user row no longer exists", slog.String("user_id", userID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to read user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read user"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"userId":  user.ID,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
	}))
}
