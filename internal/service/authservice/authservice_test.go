package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockBalanceCreator, *MockReferralLinker, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockRepo(ctrl)
	balances := NewMockBalanceCreator(ctrl)
	referrals := NewMockReferralLinker(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(userRepo, balances, referrals, hashService, jwtService)
	defer ctrl.Finish()
	return service, userRepo, balances, referrals, hashService, jwtService
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		referralCode  string
		prepareMock   func(userRepo *MockRepo, balances *MockBalanceCreator, referrals *MockReferralLinker, hashService *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name:         "Successful registration with referral code",
			referralCode: "CODE10",
			prepareMock: func(userRepo *MockRepo, balances *MockBalanceCreator, referrals *MockReferralLinker, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "newuser").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, user *domain.User) (*domain.User, error) {
						user.ID = 42
						return user, nil
					})
				balances.EXPECT().CreateBalance(gomock.Any(), 42).Return(&domain.Balance{UserID: 42}, nil)
				referrals.EXPECT().LinkReferral(gomock.Any(), 42, "CODE10").Return(nil)
			},
		},
		{
			name: "Registration without referral code",
			prepareMock: func(userRepo *MockRepo, balances *MockBalanceCreator, referrals *MockReferralLinker, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "newuser").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, user *domain.User) (*domain.User, error) {
						user.ID = 42
						return user, nil
					})
				balances.EXPECT().CreateBalance(gomock.Any(), 42).Return(&domain.Balance{UserID: 42}, nil)
				referrals.EXPECT().LinkReferral(gomock.Any(), 42, "").Return(nil)
			},
		},
		{
			name: "Login already taken",
			prepareMock: func(userRepo *MockRepo, balances *MockBalanceCreator, referrals *MockReferralLinker, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "newuser").Return(&domain.User{ID: 1, Login: "newuser"}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name: "Hashing failure",
			prepareMock: func(userRepo *MockRepo, balances *MockBalanceCreator, referrals *MockReferralLinker, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "newuser").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name: "Balance creation failure",
			prepareMock: func(userRepo *MockRepo, balances *MockBalanceCreator, referrals *MockReferralLinker, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "newuser").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, user *domain.User) (*domain.User, error) {
						user.ID = 42
						return user, nil
					})
				balances.EXPECT().CreateBalance(gomock.Any(), 42).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, balances, referrals, hashService, _ := NewMock(t)
			tt.prepareMock(userRepo, balances, referrals, hashService)

			user, err := service.Register(context.Background(), "newuser", "password", "+254700000000", tt.referralCode)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				if errors.Is(tt.expectedError, ErrLoginTaken) {
					assert.ErrorIs(t, err, ErrLoginTaken)
				}
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "hashedPassword", user.PasswordHash)
				assert.Equal(t, domain.RoleCustomer, user.Role)
				assert.Len(t, user.ReferralCode, 10)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(userRepo *MockRepo, hashService *auth.MockHashServiceInterface)
		expectErr   bool
	}{
		{
			name: "Valid credentials",
			prepareMock: func(userRepo *MockRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").
					Return(&domain.User{ID: 1, Login: "user", PasswordHash: "hashedPassword"}, nil)
				hashService.EXPECT().ComparePassword("hashedPassword", "password").Return(true)
			},
		},
		{
			name: "Unknown user",
			prepareMock: func(userRepo *MockRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(nil, nil)
			},
			expectErr: true,
		},
		{
			name: "Wrong password",
			prepareMock: func(userRepo *MockRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").
					Return(&domain.User{ID: 1, Login: "user", PasswordHash: "hashedPassword"}, nil)
				hashService.EXPECT().ComparePassword("hashedPassword", "password").Return(false)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _, _, hashService, _ := NewMock(t)
			tt.prepareMock(userRepo, hashService)

			user, err := service.Authenticate(context.Background(), "user", "password")
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	t.Run("Successful generation", func(t *testing.T) {
		service, _, _, _, _, jwtService := NewMock(t)

		jwtService.EXPECT().GenerateJWT(1, domain.RoleCustomer, gomock.AssignableToTypeOf(time.Time{})).
			Return("token", nil)

		token, err := service.GenerateToken(1, domain.RoleCustomer)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Signing failure", func(t *testing.T) {
		service, _, _, _, _, jwtService := NewMock(t)

		jwtService.EXPECT().GenerateJWT(1, domain.RoleCustomer, gomock.AssignableToTypeOf(time.Time{})).
			Return("", errors.New("signing error"))

		token, err := service.GenerateToken(1, domain.RoleCustomer)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}
