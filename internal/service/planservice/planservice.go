package planservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/pg"
)

type PlanRepo interface {
	FindActivePlans(ctx context.Context) ([]domain.Plan, error)
	FindPlanByID(ctx context.Context, id int) (*domain.Plan, error)
	CreateApplication(ctx context.Context, application *domain.Application) (*domain.Application, error)
	FindApplicationByID(ctx context.Context, id int) (*domain.Application, error)
	UpdateApplicationStatus(ctx context.Context, id int, status domain.ApplicationStatus) error
	MarkRewardsDistributed(ctx context.Context, id int) error
	FindApplicationsByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error)
	FindApplicationsByUserID(ctx context.Context, userID int) ([]domain.Application, error)
	CreatePaymentSubmission(ctx context.Context, submission *domain.PaymentSubmission) (*domain.PaymentSubmission, error)
	FindSubmissionsByApplicationID(ctx context.Context, applicationID int) ([]domain.PaymentSubmission, error)
}

type LedgerRepo interface {
	Apply(ctx context.Context, userID int, delta float64, txType domain.TransactionType, referenceKey, description string) (*domain.Transaction, error)
}

// Distributor walks the referred user's upline and pays referral rewards.
type Distributor interface {
	Distribute(ctx context.Context, referredUserID int, planAmount float64) error
}

var (
	ErrPlanNotFound        = errors.New("subscription plan not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyProcessed    = errors.New("application already processed")
)

type Service struct {
	planRepo    PlanRepo
	ledgerRepo  LedgerRepo
	distributor Distributor
	txManager   pg.TXManager
}

func New(planRepo PlanRepo, ledgerRepo LedgerRepo, distributor Distributor, txManager pg.TXManager) *Service {
	return &Service{
		planRepo:    planRepo,
		ledgerRepo:  ledgerRepo,
		distributor: distributor,
		txManager:   txManager,
	}
}

func (s *Service) GetPlans(ctx context.Context) ([]domain.Plan, error) {
	plans, err := s.planRepo.FindActivePlans(ctx)
	if err != nil {
		zap.L().Error("failed to fetch plans", zap.Error(err))
		return nil, err
	}
	return plans, nil
}

func (s *Service) ApplyForPlan(ctx context.Context, userID, planID int) (*domain.Application, error) {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, ErrPlanNotFound
	}
	// Unknown price points are rejected here, at the boundary, not deep in
	// a reward lookup.
	if _, err := domain.ParsePlanTier(plan.Price); err != nil {
		return nil, err
	}

	application := &domain.Application{
		UserID: userID,
		PlanID: planID,
		Status: domain.ApplicationStatusPending,
	}
	if _, err := s.planRepo.CreateApplication(ctx, application); err != nil {
		zap.L().Error("failed to create application", zap.Error(err))
		return nil, err
	}
	return application, nil
}

func (s *Service) GetApplicationsByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	applications, err := s.planRepo.FindApplicationsByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to fetch applications", zap.Error(err))
		return nil, err
	}
	return applications, nil
}

func (s *Service) GetUserApplications(ctx context.Context, userID int) ([]domain.Application, error) {
	applications, err := s.planRepo.FindApplicationsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch applications", zap.Error(err))
		return nil, err
	}
	return applications, nil
}

// Approve activates a subscription application: the plan price is credited
// to the user's plan balance exactly once (keyed by the application id), and
// the referral upline is paid. A distribution failure never rolls the plan
// credit back; the application stays marked undistributed and the rewards
// worker retries it later.
func (s *Service) Approve(ctx context.Context, applicationID, actorID int) error {
	application, err := s.planRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if application == nil {
		return ErrApplicationNotFound
	}
	plan, err := s.planRepo.FindPlanByID(ctx, application.PlanID)
	if err != nil {
		return err
	}
	if plan == nil {
		return ErrPlanNotFound
	}

	// The status flip and the plan credit commit together: a crash between
	// them would otherwise leave an approved application whose credit the
	// rewards worker has no reason to re-post.
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if application.Status != domain.ApplicationStatusApproved {
			if err := s.planRepo.UpdateApplicationStatus(ctx, applicationID, domain.ApplicationStatusApproved); err != nil {
				return err
			}
		}
		referenceKey := fmt.Sprintf("plan-activation:%d", applicationID)
		description := fmt.Sprintf("plan activation: %s", plan.Name)
		_, err := s.ledgerRepo.Apply(ctx, application.UserID, plan.Price, domain.TransactionSubscriptionPayment, referenceKey, description)
		if err != nil && !errors.Is(err, domain.ErrDuplicateReference) {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to approve application", zap.Int("applicationID", applicationID), zap.Error(err))
		return err
	}

	zap.L().Info("application approved",
		zap.Int("applicationID", applicationID),
		zap.Int("userID", application.UserID),
		zap.Int("actorID", actorID),
		zap.Float64("planAmount", plan.Price),
	)

	if err := s.distributor.Distribute(ctx, application.UserID, plan.Price); err != nil {
		// The plan credit stands on its own; distribution is retried by
		// the rewards worker with the same idempotency keys.
		zap.L().Error("referral distribution failed, will retry",
			zap.Int("applicationID", applicationID), zap.Error(err))
		return nil
	}

	if err := s.planRepo.MarkRewardsDistributed(ctx, applicationID); err != nil {
		zap.L().Error("failed to mark rewards distributed", zap.Int("applicationID", applicationID), zap.Error(err))
	}
	return nil
}

func (s *Service) Reject(ctx context.Context, applicationID, actorID int) error {
	application, err := s.planRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if application == nil {
		return ErrApplicationNotFound
	}
	if application.Status != domain.ApplicationStatusPending {
		return ErrAlreadyProcessed
	}
	if err := s.planRepo.UpdateApplicationStatus(ctx, applicationID, domain.ApplicationStatusRejected); err != nil {
		return err
	}
	zap.L().Info("application rejected", zap.Int("applicationID", applicationID), zap.Int("actorID", actorID))
	return nil
}

// SubmitPayment records the M-Pesa confirmation message a user pastes for a
// pending application. The message is stored as-is for an administrator to
// read before approving; no payment gateway is involved.
func (s *Service) SubmitPayment(ctx context.Context, userID, applicationID int, mpesaNumber, mpesaMessage string) (*domain.PaymentSubmission, error) {
	application, err := s.planRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil || application.UserID != userID {
		return nil, ErrApplicationNotFound
	}
	if application.Status != domain.ApplicationStatusPending {
		return nil, ErrAlreadyProcessed
	}
	plan, err := s.planRepo.FindPlanByID(ctx, application.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	submission := &domain.PaymentSubmission{
		UserID:        userID,
		ApplicationID: applicationID,
		MpesaNumber:   mpesaNumber,
		MpesaMessage:  mpesaMessage,
		Amount:        plan.Price,
		Status:        domain.PaymentSubmissionPending,
	}
	if _, err := s.planRepo.CreatePaymentSubmission(ctx, submission); err != nil {
		zap.L().Error("failed to store payment submission", zap.Int("applicationID", applicationID), zap.Error(err))
		return nil, err
	}
	return submission, nil
}

func (s *Service) GetApplicationSubmissions(ctx context.Context, applicationID int) ([]domain.PaymentSubmission, error) {
	application, err := s.planRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}
	submissions, err := s.planRepo.FindSubmissionsByApplicationID(ctx, applicationID)
	if err != nil {
		zap.L().Error("failed to fetch payment submissions", zap.Int("applicationID", applicationID), zap.Error(err))
		return nil, err
	}
	return submissions, nil
}
