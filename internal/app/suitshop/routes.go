// Package suitshop предоставляет маршруты для основного приложения.
package suitshop

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/suit-shop/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/suit-shop/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/suit-shop/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/suit-shop/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/suit-shop/internal/http/handlers/health"
	ordercreate "github.com/magabrotheeeer/suit-shop/internal/http/handlers/order/create"
	orderlist "github.com/magabrotheeeer/suit-shop/internal/http/handlers/order/list"
	productcreate "github.com/magabrotheeeer/suit-shop/internal/http/handlers/product/create"
	productlist "github.com/magabrotheeeer/suit-shop/internal/http/handlers/product/list"
	productread "github.com/magabrotheeeer/suit-shop/internal/http/handlers/product/read"
	productremove "github.com/magabrotheeeer/suit-shop/internal/http/handlers/product/remove"
	productupdate "github.com/magabrotheeeer/suit-shop/internal/http/handlers/product/update"
	"github.com/magabrotheeeer/suit-shop/internal/http/handlers/product/uploadimage"
	"github.com/magabrotheeeer/suit-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/suit-shop/internal/objectstore"
	authservice "github.com/magabrotheeeer/suit-shop/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/suit-shop/internal/services/catalog"
	orderservice "github.com/magabrotheeeer/suit-shop/internal/services/order"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Чтение каталога и аутентификация открыты всем; мутации каталога
// проходят через проверку токена и признака администратора до того,
// как управление дойдёт до сервиса.
func RegisterRoutes(r chi.Router, logger *slog.Logger, tokenParser middlewarectx.TokenParser,
	authService *authservice.AuthService, catalogService *catalogservice.CatalogService,
	orderService *orderservice.OrderService, images *objectstore.Store) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
	r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
	r.Post("/auth/refresh", refresh.New(logger, authService).ServeHTTP)
	r.Get("/products", productlist.New(logger, catalogService).ServeHTTP)
	r.Get("/products/{id}", productread.New(logger, catalogService).ServeHTTP)
	r.Get("/health", health.New())

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(tokenParser, logger))
		r.Get("/auth/me", me.New(logger, authService).ServeHTTP)
		r.Post("/orders", ordercreate.New(logger, orderService).ServeHTTP)
		r.Get("/orders", orderlist.New(logger, orderService).ServeHTTP)

		// Мутации каталога — только для администраторов
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AdminOnly(logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/products", productcreate.New(logger, catalogService).ServeHTTP)
			r.Put("/products/{id}", productupdate.New(logger, catalogService).ServeHTTP)
			r.Delete("/products/{id}", productremove.New(logger, catalogService).ServeHTTP)
			if images != nil {
				r.Post("/products/{id}/image", uploadimage.New(logger, images, catalogService).ServeHTTP)
			}
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}
