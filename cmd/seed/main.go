// Команда seed наполняет базу стартовыми данными: учётной записью
// администратора и набором демонстрационных товаров. Повторный запуск
// безопасен — существующие строки не трогаются.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/magabrotheeeer/suit-shop/internal/config"
	"github.com/magabrotheeeer/suit-shop/internal/lib/id"
	"github.com/magabrotheeeer/suit-shop/internal/lib/password"
	"github.com/magabrotheeeer/suit-shop/internal/migrations"
	"github.com/magabrotheeeer/suit-shop/internal/models"
	"github.com/magabrotheeeer/suit-shop/internal/storage"
)

var sampleProducts = []models.Product{
	{
		Name:        "Classic Black Formal Suit",
		Description: "Elegant black suit perfect for formal occasions",
		Price:       299.99,
		Style:       "formal",
		Sizes:       models.SizeList{"S", "M", "L", "XL"},
		ImageURL:    "/images/deep-blue-suit.webp",
		Stock:       15,
	},
	{
		Name:        "Navy Blue Wedding Suit",
		Description: "Premium wedding suit with perfect tailoring",
		Price:       449.99,
		Style:       "wedding",
		Sizes:       models.SizeList{"S", "M", "L", "XL", "XXL"},
		ImageURL:    "/images/navy-blue-suit.webp",
		Stock:       10,
	},
	{
		Name:        "Charcoal Casual Suit",
		Description: "Comfortable casual suit for everyday wear",
		Price:       199.99,
		Style:       "casual",
		Sizes:       models.SizeList{"XS", "S", "M", "L", "XL"},
		ImageURL:    "/images/deep-blue-suit.webp",
		Stock:       20,
	},
	{
		Name:        "Burgundy Formal Suit",
		Description: "Deep burgundy suit for special events",
		Price:       329.99,
		Style:       "formal",
		Sizes:       models.SizeList{"S", "M", "L"},
		ImageURL:    "/images/burgundy-suit.webp",
		Stock:       8,
	},
	{
		Name:        "Light Gray Casual Suit",
		Description: "Light and airy casual suit perfect for summer",
		Price:       189.99,
		Style:       "casual",
		Sizes:       models.SizeList{"S", "M", "L", "XL"},
		ImageURL:    "/images/light-gray-suit.webp",
		Stock:       12,
	},
}

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := context.Background()

	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		logger.Error("failed to connect to storage", slog.Any("err", err))
		os.Exit(1)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		logger.Error("failed to run migrations", slog.Any("err", err))
		os.Exit(1)
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		logger.Error("ADMIN_PASSWORD is not set")
		os.Exit(1)
	}
	hash, err := password.Hash(adminPassword)
	if err != nil {
		logger.Error("failed to hash admin password", slog.Any("err", err))
		os.Exit(1)
	}

	now := time.Now().UTC()
	admin := models.User{
		ID:           id.NewUserID(),
		Email:        "admin@suit-shop.dev",
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	switch err := db.CreateUser(ctx, admin); {
	case err == nil:
		logger.Info("created admin user", slog.String("email", admin.Email))
	case errors.Is(err, storage.ErrEmailTaken):
		logger.Info("admin user already exists", slog.String("email", admin.Email))
	default:
		logger.Error("failed to create admin user", slog.Any("err", err))
		os.Exit(1)
	}

	existing, err := db.ListProducts(ctx, models.ProductFilter{})
	if err != nil {
		logger.Error("failed to list products", slog.Any("err", err))
		os.Exit(1)
	}
	if len(existing) > 0 {
		logger.Info("products already seeded", slog.Int("count", len(existing)))
		return
	}

	for _, p := range sampleProducts {
		p.ID = id.NewProductID()
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := db.CreateProduct(ctx, p); err != nil {
			logger.Error("failed to seed product", slog.String("name", p.Name), slog.Any("err", err))
			os.Exit(1)
		}
	}
	logger.Info("seeded products", slog.Int("count", len(sampleProducts)))
}
