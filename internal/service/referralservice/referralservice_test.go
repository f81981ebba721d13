package referralservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockReferralRepo, *MockUserRepo, *MockLedgerRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	referralRepo := NewMockReferralRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(referralRepo, userRepo, ledgerRepo, txManager)
	defer ctrl.Finish()
	return service, referralRepo, userRepo, ledgerRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager, times int) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Times(times)
}

func TestLinkReferral(t *testing.T) {
	tests := []struct {
		name          string
		referralCode  string
		prepareMock   func(referralRepo *MockReferralRepo, userRepo *MockUserRepo)
		expectedError error
	}{
		{
			name:         "Empty code is a no-op",
			referralCode: "",
			prepareMock:  func(referralRepo *MockReferralRepo, userRepo *MockUserRepo) {},
		},
		{
			name:         "Unknown code is forgiven",
			referralCode: "BOGUS",
			prepareMock: func(referralRepo *MockReferralRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByReferralCode(gomock.Any(), "BOGUS").Return(nil, nil)
			},
		},
		{
			name:         "Direct referrer with no upline creates one edge",
			referralCode: "CODE10",
			prepareMock: func(referralRepo *MockReferralRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByReferralCode(gomock.Any(), "CODE10").Return(&domain.User{ID: 10}, nil)
				referralRepo.EXPECT().CreateEdge(gomock.Any(), &domain.Referral{
					ReferrerID: 10, ReferredID: 42, Level: 1, Status: domain.ReferralStatusActive,
				}).Return(nil)
				referralRepo.EXPECT().FindEdgesByReferredID(gomock.Any(), 10).Return(nil, nil)
			},
		},
		{
			name:         "Referrer upline yields level 2 and 3 edges",
			referralCode: "CODE10",
			prepareMock: func(referralRepo *MockReferralRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByReferralCode(gomock.Any(), "CODE10").Return(&domain.User{ID: 10}, nil)
				referralRepo.EXPECT().CreateEdge(gomock.Any(), &domain.Referral{
					ReferrerID: 10, ReferredID: 42, Level: 1, Status: domain.ReferralStatusActive,
				}).Return(nil)
				referralRepo.EXPECT().FindEdgesByReferredID(gomock.Any(), 10).Return([]domain.Referral{
					{ReferrerID: 20, ReferredID: 10, Level: 1},
					{ReferrerID: 30, ReferredID: 10, Level: 2},
					{ReferrerID: 40, ReferredID: 10, Level: 3},
				}, nil)
				referralRepo.EXPECT().CreateEdge(gomock.Any(), &domain.Referral{
					ReferrerID: 20, ReferredID: 42, Level: 2, Status: domain.ReferralStatusActive,
				}).Return(nil)
				referralRepo.EXPECT().CreateEdge(gomock.Any(), &domain.Referral{
					ReferrerID: 30, ReferredID: 42, Level: 3, Status: domain.ReferralStatusActive,
				}).Return(nil)
				// level 4 would exceed the chain depth, no edge for referrer 40
			},
		},
		{
			name:         "Self-referral is ignored",
			referralCode: "OWNCODE",
			prepareMock: func(referralRepo *MockReferralRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByReferralCode(gomock.Any(), "OWNCODE").Return(&domain.User{ID: 42}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, referralRepo, userRepo, _, _ := NewMock(t)
			tt.prepareMock(referralRepo, userRepo)

			err := service.LinkReferral(context.Background(), 42, tt.referralCode)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name          string
		planAmount    float64
		prepareMock   func(referralRepo *MockReferralRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager)
		expectedError error
	}{
		{
			name:       "Three levels paid from referred plan amount",
			planAmount: 1000,
			prepareMock: func(referralRepo *MockReferralRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				referralRepo.EXPECT().FindEdgesByReferredID(gomock.Any(), 42).Return([]domain.Referral{
					{ReferrerID: 10, ReferredID: 42, Level: 1},
					{ReferrerID: 20, ReferredID: 42, Level: 2},
					{ReferrerID: 30, ReferredID: 42, Level: 3},
				}, nil)
				passthroughTx(txManager, 3)
				referralRepo.EXPECT().CreateReward(gomock.Any(), gomock.Any()).Return(&domain.ReferralReward{}, nil).Times(3)
				ledgerRepo.EXPECT().Apply(gomock.Any(), 10, 50.0, domain.TransactionReferralReward, "referral:10:42:1", "level 1 referral reward").
					Return(&domain.Transaction{}, nil)
				ledgerRepo.EXPECT().Apply(gomock.Any(), 20, 30.0, domain.TransactionReferralReward, "referral:20:42:2", "level 2 referral reward").
					Return(&domain.Transaction{}, nil)
				ledgerRepo.EXPECT().Apply(gomock.Any(), 30, 15.0, domain.TransactionReferralReward, "referral:30:42:3", "level 3 referral reward").
					Return(&domain.Transaction{}, nil)
			},
		},
		{
			name:       "Missing upline pays only existing edges",
			planAmount: 5000,
			prepareMock: func(referralRepo *MockReferralRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				referralRepo.EXPECT().FindEdgesByReferredID(gomock.Any(), 42).Return([]domain.Referral{
					{ReferrerID: 10, ReferredID: 42, Level: 1},
				}, nil)
				passthroughTx(txManager, 1)
				referralRepo.EXPECT().CreateReward(gomock.Any(), gomock.Any()).Return(&domain.ReferralReward{}, nil)
				ledgerRepo.EXPECT().Apply(gomock.Any(), 10, 200.0, domain.TransactionReferralReward, "referral:10:42:1", "level 1 referral reward").
					Return(&domain.Transaction{}, nil)
			},
		},
		{
			name:       "Already paid level is skipped",
			planAmount: 1000,
			prepareMock: func(referralRepo *MockReferralRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				referralRepo.EXPECT().FindEdgesByReferredID(gomock.Any(), 42).Return([]domain.Referral{
					{ReferrerID: 10, ReferredID: 42, Level: 1},
					{ReferrerID: 20, ReferredID: 42, Level: 2},
				}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateReference)
				passthroughTx(txManager, 1)
				referralRepo.EXPECT().CreateReward(gomock.Any(), gomock.Any()).Return(&domain.ReferralReward{}, nil)
				ledgerRepo.EXPECT().Apply(gomock.Any(), 20, 30.0, domain.TransactionReferralReward, "referral:20:42:2", "level 2 referral reward").
					Return(&domain.Transaction{}, nil)
			},
		},
		{
			name:       "No edges distributes nothing",
			planAmount: 2000,
			prepareMock: func(referralRepo *MockReferralRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				referralRepo.EXPECT().FindEdgesByReferredID(gomock.Any(), 42).Return(nil, nil)
			},
		},
		{
			name:          "Unknown plan amount",
			planAmount:    750,
			prepareMock:   func(referralRepo *MockReferralRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {},
			expectedError: domain.ErrUnknownPlanTier,
		},
		{
			name:       "Credit failure stops distribution",
			planAmount: 1000,
			prepareMock: func(referralRepo *MockReferralRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				referralRepo.EXPECT().FindEdgesByReferredID(gomock.Any(), 42).Return([]domain.Referral{
					{ReferrerID: 10, ReferredID: 42, Level: 1},
				}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, referralRepo, _, ledgerRepo, txManager := NewMock(t)
			tt.prepareMock(referralRepo, ledgerRepo, txManager)

			err := service.Distribute(context.Background(), 42, tt.planAmount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetReferrals(t *testing.T) {
	service, referralRepo, _, _, _ := NewMock(t)

	referralRepo.EXPECT().FindEdgesByReferrerID(gomock.Any(), 10).Return([]domain.Referral{
		{ReferrerID: 10, ReferredID: 42, Level: 1},
		{ReferrerID: 10, ReferredID: 43, Level: 2},
	}, nil)

	referrals, err := service.GetReferrals(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, referrals, 2)
}

func TestGetRewards(t *testing.T) {
	service, referralRepo, _, _, _ := NewMock(t)

	referralRepo.EXPECT().FindRewardsByReferrerID(gomock.Any(), 10).
		Return([]domain.ReferralReward{{ReferrerID: 10, ReferredID: 42, Level: 1, RewardAmount: 50}}, nil)

	rewards, err := service.GetRewards(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, rewards, 1)
	assert.Equal(t, 50.0, rewards[0].RewardAmount)
}
