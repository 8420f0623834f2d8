package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magabrotheeeer/suit-shop/internal/models"
)

const productColumns = `id, name, description, price, style, sizes, image_url, stock,
			      created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Style, &p.Sizes,
		&p.ImageURL, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct вставляет новый товар каталога.
func (s *Storage) CreateProduct(ctx context.Context, p models.Product) error {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO products (id, name, description, price, style, sizes, image_url,
			      stock, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := s.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Style, p.Sizes, p.ImageURL,
		p.Stock, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetProduct возвращает товар по его идентификатору.
func (s *Storage) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	const op = "storage.GetProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + productColumns + `
			  FROM products
			  WHERE id = $1`
	p, err := scanProduct(s.DB.QueryRowContext(ctx, query, productID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// ListProducts возвращает товары, подходящие под фильтр. Все условия
// необязательны и комбинируются через AND; пустой фильтр отдаёт весь каталог.
// Порядок фиксирован: по дате создания, затем по id.
func (s *Storage) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []any
	if filter.Style != "" {
		args = append(args, filter.Style)
		query += fmt.Sprintf(" AND style = $%d", len(args))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		query += fmt.Sprintf(" AND price >= $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY created_at, id"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateProduct применяет частичное обновление: в SET попадают только
// заполненные поля патча, updated_at продвигается всегда. Если строки с
// таким id нет, возвращается ErrNotFound и ничего не записывается.
func (s *Storage) UpdateProduct(ctx context.Context, productID string, patch models.ProductPatch) error {
	const op = "storage.UpdateProduct"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var set []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Style != nil {
		add("style", *patch.Style)
	}
	if patch.Sizes != nil {
		add("sizes", *patch.Sizes)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.Stock != nil {
		add("stock", *patch.Stock)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, productID)
	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d",
		strings.Join(set, ", "), len(args))

	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// DeleteProduct удаляет товар и сообщает, была ли строка на самом деле
// удалена. Удаление несуществующего id — не ошибка.
func (s *Storage) DeleteProduct(ctx context.Context, productID string) (bool, error) {
	const op = "storage.DeleteProduct"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected > 0, nil
}
