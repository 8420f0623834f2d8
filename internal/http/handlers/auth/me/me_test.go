package me

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/suit-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/suit-shop/internal/models"
	"github.com/magabrotheeeer/suit-shop/internal/storage"
)

// Мок сервиса с методом Me
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Me(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestMeHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		ctxUserID      any
		mockUser       *models.User
		mockErr        error
		wantStatusCode int
		wantData       map[string]any
		wantError      string
	}{
		{
			name:      "valid request",
			ctxUserID: "user_abc",
			mockUser: &models.User{
				ID:      "user_abc",
				Email:   "user@example.com",
				IsAdmin: false,
			},
			wantStatusCode: http.StatusOK,
			wantData: map[string]any{
				"userId":  "user_abc",
				"email":   "user@example.com",
				"isAdmin": false,
			},
		},
		{
			name:           "missing user id in context",
			ctxUserID:      nil,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "unauthorized",
		},
		{
			name:           "user row deleted after token issue",
			ctxUserID:      "user_gone",
			mockErr:        storage.ErrNotFound,
			wantStatusCode: http.StatusNotFound,
			wantError:      "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			handler := New(newNoopLogger(), authMock)

			if tt.mockUser != nil || tt.mockErr != nil {
				authMock.On("Me", mock.Anything, tt.ctxUserID).Return(tt.mockUser, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.ctxUserID != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserID, tt.ctxUserID))
			}

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, false, got["success"])
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, true, got["success"])
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				for k, v := range tt.wantData {
					assert.Equal(t, v, data[k])
				}
			}

			authMock.AssertExpectations(t)
		})
	}
}
