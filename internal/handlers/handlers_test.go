package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/hescoapp/hesco/internal/service"
)

func TestNew(t *testing.T) {
	h := New(&service.Services{})
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockTaskHandler := NewMockTaskHandler(ctrl)
	mockReferralHandler := NewMockReferralHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)
	mockPlanHandler := NewMockPlanHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		BalanceHandler:    mockBalanceHandler,
		TaskHandler:       mockTaskHandler,
		ReferralHandler:   mockReferralHandler,
		WithdrawalHandler: mockWithdrawalHandler,
		PlanHandler:       mockPlanHandler,
		AdminHandler:      mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user/balance", http.StatusUnauthorized},
		{"GET", "/api/user/balance/transactions", http.StatusUnauthorized},
		{"POST", "/api/user/tasks/complete", http.StatusUnauthorized},
		{"GET", "/api/user/tasks", http.StatusUnauthorized},
		{"GET", "/api/user/tasks/today", http.StatusUnauthorized},
		{"GET", "/api/user/referrals", http.StatusUnauthorized},
		{"GET", "/api/user/referrals/rewards", http.StatusUnauthorized},
		{"POST", "/api/user/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/user/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/user/plans", http.StatusUnauthorized},
		{"POST", "/api/user/applications", http.StatusUnauthorized},
		{"GET", "/api/user/applications", http.StatusUnauthorized},
		{"POST", "/api/user/applications/1/payment", http.StatusUnauthorized},
		{"GET", "/api/admin/applications", http.StatusUnauthorized},
		{"POST", "/api/admin/applications/1/approve", http.StatusUnauthorized},
		{"POST", "/api/admin/applications/1/reject", http.StatusUnauthorized},
		{"GET", "/api/admin/applications/1/payments", http.StatusUnauthorized},
		{"GET", "/api/admin/withdrawals", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/1/status", http.StatusUnauthorized},
		{"GET", "/api/admin/balances", http.StatusUnauthorized},
		{"GET", "/api/admin/ledger/1/verify", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
