package remove

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Мок сервиса с методом Delete
type CatalogServiceMock struct {
	mock.Mock
}

func (m *CatalogServiceMock) Delete(ctx context.Context, productID string) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newRequestWithID(productID string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/products/"+productID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", productID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRemoveHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		productID      string
		mockDeleted    bool
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "existing product",
			productID:      "prod_abc",
			mockDeleted:    true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "unknown product",
			productID:      "prod_missing",
			mockDeleted:    false,
			wantStatusCode: http.StatusNotFound,
			wantError:      "product not found",
		},
		{
			name:           "storage failure",
			productID:      "prod_abc",
			mockErr:        errors.New("db is down"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to delete product",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalogMock := new(CatalogServiceMock)
			handler := New(newNoopLogger(), catalogMock)

			catalogMock.On("Delete", mock.Anything, tt.productID).Return(tt.mockDeleted, tt.mockErr).Once()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, newRequestWithID(tt.productID))

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, false, got["success"])
				assert.Equal(t, tt.wantError, got["error"])
				return
			}

			assert.Equal(t, true, got["success"])
			data, ok := got["data"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "product deleted", data["message"])

			catalogMock.AssertExpectations(t)
		})
	}
}
