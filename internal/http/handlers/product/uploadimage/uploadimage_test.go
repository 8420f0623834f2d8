package uploadimage

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/suit-shop/internal/models"
	"github.com/magabrotheeeer/suit-shop/internal/storage"
)

// Мок объектного хранилища
type UploaderMock struct {
	mock.Mock
}

func (m *UploaderMock) PutImage(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, r, size, contentType)
	return args.String(0), args.Error(1)
}

// Мок сервиса с методами Get и Update
type CatalogServiceMock struct {
	mock.Mock
}

func (m *CatalogServiceMock) Get(ctx context.Context, productID string) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *CatalogServiceMock) Update(ctx context.Context, productID string, patch models.ProductPatch) (*models.Product, error) {
	args := m.Called(ctx, productID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newUploadRequest(t *testing.T, productID, fieldName, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/products/"+productID+"/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", productID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUploadImageHandler_Success(t *testing.T) {
	uploaderMock := new(UploaderMock)
	catalogMock := new(CatalogServiceMock)
	handler := New(newNoopLogger(), uploaderMock, catalogMock)

	wantURL := "https://cdn.example.com/products/prod_abc/blazer.jpg"

	catalogMock.On("Get", mock.Anything, "prod_abc").
		Return(&models.Product{ID: "prod_abc"}, nil).Once()
	uploaderMock.On("PutImage", mock.Anything,
		"products/prod_abc/blazer.jpg",
		mock.Anything, mock.Anything, mock.Anything,
	).Return(wantURL, nil).Once()

	var gotPatch models.ProductPatch
	catalogMock.On("Update", mock.Anything, "prod_abc", mock.MatchedBy(func(p models.ProductPatch) bool {
		gotPatch = p
		return true
	})).Return(&models.Product{ID: "prod_abc", ImageURL: wantURL}, nil).Once()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newUploadRequest(t, "prod_abc", "image", "blazer.jpg", []byte("fake image bytes")))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, true, got["success"])

	data, ok := got["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, wantURL, data["image_url"])

	// В патч попадает только image_url.
	require.NotNil(t, gotPatch.ImageURL)
	assert.Equal(t, wantURL, *gotPatch.ImageURL)
	assert.Nil(t, gotPatch.Name)

	uploaderMock.AssertExpectations(t)
	catalogMock.AssertExpectations(t)
}

func TestUploadImageHandler_MissingFile(t *testing.T) {
	uploaderMock := new(UploaderMock)
	catalogMock := new(CatalogServiceMock)
	handler := New(newNoopLogger(), uploaderMock, catalogMock)

	catalogMock.On("Get", mock.Anything, "prod_abc").
		Return(&models.Product{ID: "prod_abc"}, nil).Once()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newUploadRequest(t, "prod_abc", "wrongfield", "blazer.jpg", []byte("x")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "image file is required", got["error"])

	uploaderMock.AssertNotCalled(t, "PutImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadImageHandler_UnknownProduct(t *testing.T) {
	uploaderMock := new(UploaderMock)
	catalogMock := new(CatalogServiceMock)
	handler := New(newNoopLogger(), uploaderMock, catalogMock)

	catalogMock.On("Get", mock.Anything, "prod_missing").
		Return(nil, storage.ErrNotFound).Once()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newUploadRequest(t, "prod_missing", "image", "x.jpg", []byte("x")))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "product not found", got["error"])

	// Неизвестный товар не оставляет объектов в хранилище.
	uploaderMock.AssertNotCalled(t, "PutImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	catalogMock.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
