// Package suitshop собирает приложение магазина: хранилище, миграции,
// сервисы и HTTP-сервер.
package suitshop

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/suit-shop/internal/config"
	"github.com/magabrotheeeer/suit-shop/internal/lib/token"
	"github.com/magabrotheeeer/suit-shop/internal/migrations"
	"github.com/magabrotheeeer/suit-shop/internal/objectstore"
	authservice "github.com/magabrotheeeer/suit-shop/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/suit-shop/internal/services/catalog"
	orderservice "github.com/magabrotheeeer/suit-shop/internal/services/order"
	"github.com/magabrotheeeer/suit-shop/internal/storage"
)

// App — собранное приложение с запущенным HTTP-сервером.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New подключает хранилище, применяет миграции и собирает все сервисы
// с маршрутами. Объектное хранилище поднимается только когда оно задано
// в конфиге — без него маршрут загрузки изображений не регистрируется.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	tokenMaker := token.New(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.New(db, tokenMaker)
	catalogService := catalogservice.New(db, logger)
	orderService := orderservice.New(db, db, logger)

	var images *objectstore.Store
	if cfg.ObjectStore.Endpoint != "" {
		images, err = objectstore.New(cfg.ObjectStore)
		if err != nil {
			return nil, err
		}
		if err = images.EnsureBucket(ctx); err != nil {
			return nil, err
		}
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, tokenMaker, authService, catalogService, orderService, images)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и мягко гасит его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.Close()
		return err
	}
}
