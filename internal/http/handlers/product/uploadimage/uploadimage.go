// Package uploadimage реализует HTTP-обработчик загрузки изображения
// товара. Файл уходит в объектное хранилище, после чего у товара
// обновляется image_url.
package uploadimage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/suit-shop/internal/http/response"
	"github.com/magabrotheeeer/suit-shop/internal/lib/sl"
	"github.com/magabrotheeeer/suit-shop/internal/models"
	"github.com/magabrotheeeer/suit-shop/internal/storage"
)

// Предельный размер изображения, 10 МиБ.
const maxImageSize = 10 << 20

// Uploader загружает файл в объектное хранилище и возвращает публичный URL.
type Uploader interface {
	PutImage(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// Service проверяет товар перед загрузкой и обновляет его после.
type Service interface {
	Get(ctx context.Context, productID string) (*models.Product, error)
	Update(ctx context.Context, productID string, patch models.ProductPatch) (*models.Product, error)
}

// Handler обрабатывает загрузку изображений товара.
type Handler struct {
	log      *slog.Logger
	uploader Uploader
	service  Service
}

// New создает новый Handler с указанными логгером, хранилищем и сервисом.
func New(log *slog.Logger, uploader Uploader, service Service) *Handler {
	return &Handler{
		log:      log,
		uploader: uploader,
		service:  service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.uploadimage"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	productID := chi.URLParam(r, "id")

	// Существование товара проверяется до загрузки, иначе 404 оставил бы
	// в бакете осиротевший объект.
	if _, err := h.service.Get(r.Context(), productID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("product not found", slog.String("id", productID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
			return
		}
		log.Error("failed to read product", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read product"))
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		log.Error("image file missing", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("image file is required"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := path.Join("products", productID, header.Filename)

	url, err := h.uploader.PutImage(r.Context(), key, file, header.Size, contentType)
	if err != nil {
		log.Error("failed to upload image", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to upload image"))
		return
	}

	product, err := h.service.Update(r.Context(), productID, models.ProductPatch{ImageURL: &url})
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

	log.Info("uploaded product image", slog.String("id", productID), slog.String("url", url))
	render.JSON(w, r, response.OKWithData(product))
}
