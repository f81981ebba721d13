package withdrawalservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockWithdrawalRepo, *MockLedgerRepo, *MockPlanRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	planRepo := NewMockPlanRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(withdrawalRepo, ledgerRepo, planRepo, txManager, time.Saturday, 0.15)
	service.now = func() time.Time {
		// a Saturday
		return time.Date(2025, 1, 11, 10, 0, 0, 0, time.UTC)
	}
	defer ctrl.Finish()
	return service, withdrawalRepo, ledgerRepo, planRepo, txManager
}

func TestRequestWithdrawal(t *testing.T) {
	tests := []struct {
		name          string
		amount        float64
		weekday       *time.Time
		prepareMock   func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, planRepo *MockPlanRepo, txManager *pg.MockTXManager)
		expectedError error
		checkResult   func(t *testing.T, request *domain.WithdrawalRequest)
	}{
		{
			name:   "Successful withdrawal with tax",
			amount: 300,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, planRepo *MockPlanRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(1000.0, nil)
				ledgerRepo.EXPECT().GetUserBalance(gomock.Any(), 1).
					Return(&domain.Balance{UserID: 1, AvailableBalance: 400}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				withdrawalRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, request *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
						request.ID = 7
						return request, nil
					})
				ledgerRepo.EXPECT().Apply(gomock.Any(), 1, -300.0, domain.TransactionWithdrawal, "withdrawal:7", "withdrawal request").
					Return(&domain.Transaction{}, nil)
			},
			checkResult: func(t *testing.T, request *domain.WithdrawalRequest) {
				assert.Equal(t, 7, request.ID)
				assert.Equal(t, 45.0, request.TaxAmount)
				assert.Equal(t, 255.0, request.NetAmount)
				assert.Equal(t, domain.WithdrawalStatusPending, request.Status)
			},
		},
		{
			name:   "Cap allows base plus balance",
			amount: 550,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, planRepo *MockPlanRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(1000.0, nil)
				ledgerRepo.EXPECT().GetUserBalance(gomock.Any(), 1).
					Return(&domain.Balance{UserID: 1, AvailableBalance: 600}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				withdrawalRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, request *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
						request.ID = 8
						return request, nil
					})
				ledgerRepo.EXPECT().Apply(gomock.Any(), 1, -550.0, domain.TransactionWithdrawal, "withdrawal:8", "withdrawal request").
					Return(&domain.Transaction{}, nil)
			},
			checkResult: func(t *testing.T, request *domain.WithdrawalRequest) {
				assert.Equal(t, 550.0, request.Amount)
			},
		},
		{
			name:   "Outside the weekly window",
			amount: 100,
			weekday: func() *time.Time {
				// a Sunday
				d := time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)
				return &d
			}(),
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, planRepo *MockPlanRepo, txManager *pg.MockTXManager) {
			},
			expectedError: domain.ErrOutsideWithdrawalWindow,
		},
		{
			name:   "Exceeds tier cap",
			amount: 700,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, planRepo *MockPlanRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(1000.0, nil)
				ledgerRepo.EXPECT().GetUserBalance(gomock.Any(), 1).
					Return(&domain.Balance{UserID: 1, AvailableBalance: 400}, nil)
			},
			expectedError: domain.ErrExceedsMaxWithdrawal,
		},
		{
			name:   "Within cap but over available balance",
			amount: 500,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, planRepo *MockPlanRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(1000.0, nil)
				ledgerRepo.EXPECT().GetUserBalance(gomock.Any(), 1).
					Return(&domain.Balance{UserID: 1, AvailableBalance: 400}, nil)
			},
			expectedError: domain.ErrInsufficientBalance,
		},
		{
			name:   "No active plan",
			amount: 100,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, planRepo *MockPlanRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(0.0, domain.ErrNoActivePlan)
			},
			expectedError: domain.ErrNoActivePlan,
		},
		{
			name:   "Missing balance row",
			amount: 100,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, planRepo *MockPlanRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(1000.0, nil)
				ledgerRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrInsufficientBalance,
		},
		{
			name:   "Debit failure rolls everything back",
			amount: 100,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, planRepo *MockPlanRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(1000.0, nil)
				ledgerRepo.EXPECT().GetUserBalance(gomock.Any(), 1).
					Return(&domain.Balance{UserID: 1, AvailableBalance: 400}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, withdrawalRepo, ledgerRepo, planRepo, txManager := NewMock(t)
			if tt.weekday != nil {
				service.now = func() time.Time { return *tt.weekday }
			}
			tt.prepareMock(withdrawalRepo, ledgerRepo, planRepo, txManager)

			request, err := service.RequestWithdrawal(context.Background(), 1, tt.amount, "+254700000000")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, request)
				tt.checkResult(t, request)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		newStatus     domain.WithdrawalStatus
		prepareMock   func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager)
		expectedError error
	}{
		{
			name:      "Pending to processing",
			newStatus: domain.WithdrawalStatusProcessing,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 7).
					Return(&domain.WithdrawalRequest{ID: 7, UserID: 1, Amount: 300, Status: domain.WithdrawalStatusPending}, nil)
				withdrawalRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.WithdrawalStatusProcessing, 2, "").Return(nil)
			},
		},
		{
			name:      "Processing to completed leaves balance alone",
			newStatus: domain.WithdrawalStatusCompleted,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 7).
					Return(&domain.WithdrawalRequest{ID: 7, UserID: 1, Amount: 300, Status: domain.WithdrawalStatusProcessing}, nil)
				withdrawalRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.WithdrawalStatusCompleted, 2, "").Return(nil)
			},
		},
		{
			name:      "Rejection refunds the debited amount",
			newStatus: domain.WithdrawalStatusRejected,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 7).
					Return(&domain.WithdrawalRequest{ID: 7, UserID: 1, Amount: 300, Status: domain.WithdrawalStatusPending}, nil)
				withdrawalRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.WithdrawalStatusRejected, 2, "").Return(nil)
				ledgerRepo.EXPECT().Apply(gomock.Any(), 1, 300.0, domain.TransactionWithdrawalRefund, "withdrawal-refund:7", "withdrawal rejected, amount refunded").
					Return(&domain.Transaction{}, nil)
			},
		},
		{
			name:      "Repeated rejection does not refund twice",
			newStatus: domain.WithdrawalStatusRejected,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 7).
					Return(&domain.WithdrawalRequest{ID: 7, UserID: 1, Amount: 300, Status: domain.WithdrawalStatusPending}, nil)
				withdrawalRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.WithdrawalStatusRejected, 2, "").Return(nil)
				ledgerRepo.EXPECT().Apply(gomock.Any(), 1, 300.0, domain.TransactionWithdrawalRefund, "withdrawal-refund:7", "withdrawal rejected, amount refunded").
					Return(nil, domain.ErrDuplicateReference)
			},
		},
		{
			name:      "Completed is terminal",
			newStatus: domain.WithdrawalStatusRejected,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 7).
					Return(&domain.WithdrawalRequest{ID: 7, UserID: 1, Amount: 300, Status: domain.WithdrawalStatusCompleted}, nil)
			},
			expectedError: domain.ErrInvalidTransition,
		},
		{
			name:      "Pending is not a target status",
			newStatus: domain.WithdrawalStatusPending,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
			},
			expectedError: domain.ErrInvalidTransition,
		},
		{
			name:      "Unknown request",
			newStatus: domain.WithdrawalStatusProcessing,
			prepareMock: func(withdrawalRepo *MockWithdrawalRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrRequestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, withdrawalRepo, ledgerRepo, _, txManager := NewMock(t)
			tt.prepareMock(withdrawalRepo, ledgerRepo, txManager)

			updated, err := service.UpdateStatus(context.Background(), 7, tt.newStatus, 2, "")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, updated)
				assert.Equal(t, tt.newStatus, updated.Status)
			}
		})
	}
}

func TestGetWithdrawals(t *testing.T) {
	service, withdrawalRepo, _, _, _ := NewMock(t)

	withdrawalRepo.EXPECT().FindByUserID(gomock.Any(), 1).
		Return([]domain.WithdrawalRequest{{ID: 7, UserID: 1, Amount: 300}}, nil)

	requests, err := service.GetWithdrawals(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
}

func TestGetAllWithdrawals(t *testing.T) {
	service, withdrawalRepo, _, _, _ := NewMock(t)

	withdrawalRepo.EXPECT().FindAll(gomock.Any()).
		Return(nil, errors.New("db error"))

	requests, err := service.GetAllWithdrawals(context.Background())
	assert.Error(t, err)
	assert.Nil(t, requests)
}
