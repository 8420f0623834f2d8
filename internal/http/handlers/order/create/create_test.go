package create

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/suit-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/suit-shop/internal/models"
	"github.com/magabrotheeeer/suit-shop/internal/services/order"
)

// Мок сервиса с методом Create
type OrderServiceMock struct {
	mock.Mock
}

func (m *OrderServiceMock) Create(ctx context.Context, userID, shippingAddress string, items []models.DummyOrderItem) (*models.Order, error) {
	args := m.Called(ctx, userID, shippingAddress, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newOrderRequest(body string, userID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader([]byte(body)))
	if userID != "" {
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserID, userID))
	}
	return req
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	validBody := `{"items": [{"product_id": "prod_abc", "size": "M", "quantity": 2}], "shipping_address": "1 Main Street"}`

	tests := []struct {
		name           string
		userID         string
		requestBody    string
		mockOrder      *models.Order
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "valid order",
			userID:      "user_abc",
			requestBody: validBody,
			mockOrder: &models.Order{
				ID:     "order_abc",
				UserID: "user_abc",
				Total:  399.98,
				Status: "pending",
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "missing user in context",
			userID:         "",
			requestBody:    validBody,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "unauthorized",
		},
		{
			name:           "invalid json body",
			userID:         "user_abc",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:           "empty items",
			userID:         "user_abc",
			requestBody:    `{"items": [], "shipping_address": "1 Main Street"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing shipping address",
			userID:         "user_abc",
			requestBody:    `{"items": [{"product_id": "prod_abc", "size": "M", "quantity": 1}]}`,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field ShippingAddress is a required field",
		},
		{
			name:           "zero quantity",
			userID:         "user_abc",
			requestBody:    `{"items": [{"product_id": "prod_abc", "size": "M", "quantity": 0}], "shipping_address": "1 Main Street"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown product",
			userID:         "user_abc",
			requestBody:    validBody,
			mockErr:        order.ErrUnknownProduct,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "unknown product in order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderMock := new(OrderServiceMock)
			handler := New(newNoopLogger(), orderMock)

			if tt.mockOrder != nil || tt.mockErr != nil {
				orderMock.On("Create", mock.Anything, tt.userID, mock.Anything, mock.Anything).
					Return(tt.mockOrder, tt.mockErr).Once()
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, newOrderRequest(tt.requestBody, tt.userID))

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantStatusCode != http.StatusCreated {
				assert.Equal(t, false, got["success"])
				if tt.wantError != "" {
					assert.Equal(t, tt.wantError, got["error"])
				} else {
					assert.NotEmpty(t, got["error"])
				}
				return
			}

			assert.Equal(t, true, got["success"])
			data, ok := got["data"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.mockOrder.ID, data["id"])
			assert.Equal(t, "pending", data["status"])

			orderMock.AssertExpectations(t)
		})
	}
}
