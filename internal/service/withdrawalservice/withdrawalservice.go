package withdrawalservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/pg"
)

type WithdrawalRepo interface {
	CreateRequest(ctx context.Context, request *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	FindByID(ctx context.Context, id int) (*domain.WithdrawalRequest, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.WithdrawalRequest, error)
	UpdateStatus(ctx context.Context, id int, status domain.WithdrawalStatus, processedBy int, notes string) error
	FindByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
	FindAll(ctx context.Context) ([]domain.WithdrawalRequest, error)
}

type LedgerRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Apply(ctx context.Context, userID int, delta float64, txType domain.TransactionType, referenceKey, description string) (*domain.Transaction, error)
}

type PlanRepo interface {
	FindActivePlanAmount(ctx context.Context, userID int) (float64, error)
}

var ErrRequestNotFound = errors.New("withdrawal request not found")

// transitions is the full withdrawal state machine. Completed and rejected
// are terminal.
var transitions = map[domain.WithdrawalStatus][]domain.WithdrawalStatus{
	domain.WithdrawalStatusPending:    {domain.WithdrawalStatusProcessing, domain.WithdrawalStatusCompleted, domain.WithdrawalStatusRejected},
	domain.WithdrawalStatusProcessing: {domain.WithdrawalStatusCompleted, domain.WithdrawalStatusRejected},
}

func transitionAllowed(from, to domain.WithdrawalStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Service struct {
	withdrawalRepo WithdrawalRepo
	ledgerRepo     LedgerRepo
	planRepo       PlanRepo
	txManager      pg.TXManager
	withdrawalDay  time.Weekday
	taxRate        float64
	now            func() time.Time
}

func New(withdrawalRepo WithdrawalRepo, ledgerRepo LedgerRepo, planRepo PlanRepo, txManager pg.TXManager, withdrawalDay time.Weekday, taxRate float64) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		ledgerRepo:     ledgerRepo,
		planRepo:       planRepo,
		txManager:      txManager,
		withdrawalDay:  withdrawalDay,
		taxRate:        taxRate,
		now:            time.Now,
	}
}

// RequestWithdrawal validates the weekly window, the tier cap and the
// available balance, then debits the balance and records the pending request
// as one atomic unit. The debit happens up front; a later rejection refunds it.
func (s *Service) RequestWithdrawal(ctx context.Context, userID int, amount float64, mpesaNumber string) (*domain.WithdrawalRequest, error) {
	if s.now().UTC().Weekday() != s.withdrawalDay {
		return nil, domain.ErrOutsideWithdrawalWindow
	}

	planAmount, err := s.planRepo.FindActivePlanAmount(ctx, userID)
	if err != nil {
		return nil, err
	}
	tier, err := domain.ParsePlanTier(planAmount)
	if err != nil {
		return nil, err
	}
	baseCap, err := domain.BaseWithdrawalCap(tier)
	if err != nil {
		return nil, err
	}

	balance, err := s.ledgerRepo.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, domain.ErrInsufficientBalance
	}

	maxWithdrawal := baseCap + balance.AvailableBalance
	if amount > maxWithdrawal {
		return nil, domain.ErrExceedsMaxWithdrawal
	}
	if amount > balance.AvailableBalance {
		return nil, domain.ErrInsufficientBalance
	}

	tax := amount * s.taxRate
	request := &domain.WithdrawalRequest{
		UserID:      userID,
		Amount:      amount,
		TaxAmount:   tax,
		NetAmount:   amount - tax,
		MpesaNumber: mpesaNumber,
		Status:      domain.WithdrawalStatusPending,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.withdrawalRepo.CreateRequest(ctx, request); err != nil {
			return err
		}
		referenceKey := fmt.Sprintf("withdrawal:%d", request.ID)
		if _, err := s.ledgerRepo.Apply(ctx, userID, -amount, domain.TransactionWithdrawal, referenceKey, "withdrawal request"); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to create withdrawal request", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal requested",
		zap.Int("userID", userID),
		zap.Int("requestID", request.ID),
		zap.Float64("amount", amount),
		zap.Float64("net", request.NetAmount),
	)
	return request, nil
}

// UpdateStatus drives the admin-side state machine. Completing changes no
// balance: the amount was debited at request time. Rejecting refunds exactly
// the debited amount as its own compensating ledger entry.
func (s *Service) UpdateStatus(ctx context.Context, requestID int, newStatus domain.WithdrawalStatus, actorID int, notes string) (*domain.WithdrawalRequest, error) {
	switch newStatus {
	case domain.WithdrawalStatusProcessing, domain.WithdrawalStatusCompleted, domain.WithdrawalStatusRejected:
	default:
		return nil, domain.ErrInvalidTransition
	}

	var updated *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		request, err := s.withdrawalRepo.FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if request == nil {
			return ErrRequestNotFound
		}
		if !transitionAllowed(request.Status, newStatus) {
			return domain.ErrInvalidTransition
		}

		if err := s.withdrawalRepo.UpdateStatus(ctx, requestID, newStatus, actorID, notes); err != nil {
			return err
		}

		if newStatus == domain.WithdrawalStatusRejected {
			referenceKey := fmt.Sprintf("withdrawal-refund:%d", requestID)
			_, err := s.ledgerRepo.Apply(ctx, request.UserID, request.Amount, domain.TransactionWithdrawalRefund, referenceKey, "withdrawal rejected, amount refunded")
			if err != nil && !errors.Is(err, domain.ErrDuplicateReference) {
				return err
			}
		}

		request.Status = newStatus
		request.Notes = notes
		updated = request
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidTransition) && !errors.Is(err, ErrRequestNotFound) {
			zap.L().Error("failed to update withdrawal status", zap.Int("requestID", requestID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("withdrawal status updated",
		zap.Int("requestID", requestID),
		zap.String("status", string(newStatus)),
		zap.Int("actorID", actorID),
	)
	return updated, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	requests, err := s.withdrawalRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) GetAllWithdrawals(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	requests, err := s.withdrawalRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return requests, nil
}
