// Package catalog содержит бизнес-логику каталога товаров.
//
// Сервис не выполняет проверок авторизации: доступ к мутациям ограничивает
// вызывающий слой до обращения сюда.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/suit-shop/internal/lib/id"
	"github.com/magabrotheeeer/suit-shop/internal/models"
)

// Запас по умолчанию для нового товара, если в запросе он не указан.
const defaultStock = 10

// ProductRepository определяет методы для работы с товарами в хранилище.
type ProductRepository interface {
	// CreateProduct вставляет новый товар.
	CreateProduct(ctx context.Context, p models.Product) error
	// GetProduct возвращает товар по ID или storage.ErrNotFound.
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	// ListProducts возвращает товары по фильтру.
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
	// UpdateProduct применяет частичное обновление.
	UpdateProduct(ctx context.Context, productID string, patch models.ProductPatch) error
	// DeleteProduct удаляет товар и сообщает, была ли удалена строка.
	DeleteProduct(ctx context.Context, productID string) (bool, error)
}

// CatalogService реализует операции каталога поверх репозитория.
type CatalogService struct {
	repo ProductRepository
	log  *slog.Logger
}

// New создает новый экземпляр CatalogService.
func New(repo ProductRepository, log *slog.Logger) *CatalogService {
	return &CatalogService{
		repo: repo,
		log:  log,
	}
}

// List возвращает товары по фильтру; пустой фильтр — весь каталог.
func (s *CatalogService) List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	return s.repo.ListProducts(ctx, filter)
}

// Get возвращает товар по идентификатору.
func (s *CatalogService) Get(ctx context.Context, productID string) (*models.Product, error) {
	return s.repo.GetProduct(ctx, productID)
}

// Create присваивает товару новый идентификатор, выставляет обе временные
// метки в "сейчас" и сохраняет его. Стиль не сверяется со справочником:
// строка сохраняется как пришла.
func (s *CatalogService) Create(ctx context.Context, req models.DummyProduct) (*models.Product, error) {
	now := time.Now().UTC()
	stock := defaultStock
	if req.Stock != nil {
		stock = *req.Stock
	}

	product := models.Product{
		ID:          id.NewProductID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Style:       req.Style,
		Sizes:       req.Sizes,
		ImageURL:    req.ImageURL,
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("created new product", slog.String("id", product.ID))
	return &product, nil
}

// Update применяет частичное обновление и возвращает итоговое состояние
// товара. Отсутствующие в патче поля не трогаются, updated_at продвигается
// в любом случае.
func (s *CatalogService) Update(ctx context.Context, productID string, patch models.ProductPatch) (*models.Product, error) {
	if err := s.repo.UpdateProduct(ctx, productID, patch); err != nil {
		return nil, err
	}
	return s.repo.GetProduct(ctx, productID)
}

// Delete удаляет товар. Возвращает false без ошибки, если такого id нет.
func (s *CatalogService) Delete(ctx context.Context, productID string) (bool, error) {
	deleted, err := s.repo.DeleteProduct(ctx, productID)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info("deleted product", slog.String("id", productID))
	}
	return deleted, nil
}
