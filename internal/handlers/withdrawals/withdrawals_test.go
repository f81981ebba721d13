package withdrawals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/dto"
	"github.com/hescoapp/hesco/pkg/auth"
)

func NewMock(t *testing.T) (*WithdrawalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful withdrawal",
			body: `{"amount":300,"mpesa_number":"+254700000000"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, 300.0, "+254700000000").
					Return(&domain.WithdrawalRequest{
						ID:          7,
						UserID:      1,
						Amount:      300,
						TaxAmount:   45,
						NetAmount:   255,
						MpesaNumber: "+254700000000",
						Status:      domain.WithdrawalStatusPending,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing mpesa number",
			body:         `{"amount":300}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Outside withdrawal window",
			body: `{"amount":300,"mpesa_number":"+254700000000"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, 300.0, "+254700000000").
					Return(nil, domain.ErrOutsideWithdrawalWindow)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Exceeds withdrawal limit",
			body: `{"amount":300,"mpesa_number":"+254700000000"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, 300.0, "+254700000000").
					Return(nil, domain.ErrExceedsMaxWithdrawal)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":300,"mpesa_number":"+254700000000"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, 300.0, "+254700000000").
					Return(nil, domain.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "No active plan",
			body: `{"amount":300,"mpesa_number":"+254700000000"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, 300.0, "+254700000000").
					Return(nil, domain.ErrNoActivePlan)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Internal server error",
			body: `{"amount":300,"mpesa_number":"+254700000000"}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, 300.0, "+254700000000").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/withdrawals", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.Withdraw(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WithdrawalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 7, body.ID)
				assert.Equal(t, 45.0, body.TaxAmount)
				assert.Equal(t, 255.0, body.NetAmount)
				assert.Equal(t, "pending", body.Status)
			}
		})
	}
}

func TestGetWithdrawalsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetWithdrawals(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return([]domain.WithdrawalRequest{
						{ID: 8, UserID: 1, Amount: 100, Status: domain.WithdrawalStatusCompleted},
						{ID: 7, UserID: 1, Amount: 300, Status: domain.WithdrawalStatusRejected},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No withdrawals",
			prepareMock: func() {
				service.EXPECT().
					GetWithdrawals(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetWithdrawals(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/withdrawals", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.GetWithdrawals(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.WithdrawalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}
