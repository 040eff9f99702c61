package invite

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/vc-metrics/internal/models"
	authservice "github.com/magabrotheeeer/vc-metrics/internal/services/auth"
)

// MockService реализует интерфейс invite.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Invite(ctx context.Context, email string, isAdmin bool) (*models.User, string, error) {
	args := m.Called(ctx, email, isAdmin)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.String(1), args.Error(2)
}

func TestInviteHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное приглашение",
			body: `{"email":"new@local","is_admin":false}`,
			setupMock: func(m *MockService) {
				m.On("Invite", mock.Anything, "new@local", false).
					Return(&models.User{ID: 2, Email: "new@local"}, "Xk3!mQp9wRt2", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"temp_password":"Xk3!mQp9wRt2"`,
		},
		{
			name: "email уже занят",
			body: `{"email":"admin@local","is_admin":true}`,
			setupMock: func(m *MockService) {
				m.On("Invite", mock.Anything, "admin@local", true).
					Return(nil, "", authservice.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"kind":"conflict"`,
		},
		{
			name:           "некорректный email",
			body:           `{"email":"oops","is_admin":false}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name: "ошибка сервиса",
			body: `{"email":"new@local"}`,
			setupMock: func(m *MockService) {
				m.On("Invite", mock.Anything, "new@local", false).
					Return(nil, "", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"kind":"internal"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/users/invite", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
