package ledgerservice

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/hescoapp/hesco/internal/domain"
)

type Repo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Apply(ctx context.Context, userID int, delta float64, txType domain.TransactionType, referenceKey, description string) (*domain.Transaction, error)
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	GetAllBalances(ctx context.Context) ([]domain.Balance, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.repo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.repo.CreateUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.repo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetAllBalances(ctx context.Context) ([]domain.Balance, error) {
	balances, err := s.repo.GetAllBalances(ctx)
	if err != nil {
		zap.L().Error("failed to fetch balances", zap.Error(err))
		return nil, err
	}
	return balances, nil
}

const replayTolerance = 1e-6

// VerifyLedger replays the user's transaction log from a zero balance and
// checks that it reproduces the stored Balance exactly.
func (s *Service) VerifyLedger(ctx context.Context, userID int) (bool, error) {
	balance, err := s.repo.GetUserBalance(ctx, userID)
	if err != nil {
		return false, err
	}
	if balance == nil {
		return false, nil
	}

	transactions, err := s.repo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		return false, err
	}

	var replayed domain.Balance
	for _, tr := range transactions {
		switch tr.Type {
		case domain.TransactionSubscriptionPayment:
			replayed.PlanBalance += tr.Amount
			replayed.TotalEarned += tr.Amount
		case domain.TransactionTaskReward, domain.TransactionReferralReward:
			replayed.AvailableBalance += tr.Amount
			replayed.TotalEarned += tr.Amount
		case domain.TransactionWithdrawal, domain.TransactionWithdrawalRefund:
			replayed.AvailableBalance += tr.Amount
		}
	}

	ok := math.Abs(replayed.PlanBalance-balance.PlanBalance) < replayTolerance &&
		math.Abs(replayed.AvailableBalance-balance.AvailableBalance) < replayTolerance &&
		math.Abs(replayed.TotalEarned-balance.TotalEarned) < replayTolerance
	if !ok {
		zap.L().Error("ledger replay mismatch",
			zap.Int("userID", userID),
			zap.Float64("storedAvailable", balance.AvailableBalance),
			zap.Float64("replayedAvailable", replayed.AvailableBalance),
		)
	}
	return ok, nil
}
