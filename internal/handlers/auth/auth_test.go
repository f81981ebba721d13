package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/dto"
	authservice "github.com/hescoapp/hesco/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"login":"newuser","password":"password","phone":"+254700000000","referral_code":"CODE10"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "newuser", "password", "+254700000000", "CODE10").
					Return(&domain.User{ID: 42, Login: "newuser", Role: domain.RoleCustomer, ReferralCode: "ABCDEF1234"}, nil)
				service.EXPECT().
					GenerateToken(42, domain.RoleCustomer).
					Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"login":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login":"newuser","password":"password","phone":"+254700000000"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "newuser", "password", "+254700000000", "").
					Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Infrastructure failure is not a conflict",
			body: `{"login":"newuser","password":"password","phone":"+254700000000"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "newuser", "password", "+254700000000", "").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "Token generation failure",
			body: `{"login":"newuser","password":"password","phone":"+254700000000"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "newuser", "password", "+254700000000", "").
					Return(&domain.User{ID: 42, Role: domain.RoleCustomer}, nil)
				service.EXPECT().
					GenerateToken(42, domain.RoleCustomer).
					Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
				var body dto.RegisterResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "ABCDEF1234", body.ReferralCode)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"login":"user","password":"password"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "user", "password").
					Return(&domain.User{ID: 1, Login: "user", Role: domain.RoleCustomer}, nil)
				service.EXPECT().
					GenerateToken(1, domain.RoleCustomer).
					Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"login":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"user","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "user", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Infrastructure failure is not an auth failure",
			body: `{"login":"user","password":"password"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "user", "password").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
			}
		})
	}
}
