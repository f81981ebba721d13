package rewards

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hescoapp/hesco/internal/domain"
)

var processingApplications sync.Map

type Repo interface {
	FindPendingRewardDistribution(ctx context.Context, limit uint32) ([]domain.Application, error)
	FindPlanByID(ctx context.Context, id int) (*domain.Plan, error)
	MarkRewardsDistributed(ctx context.Context, id int) error
}

type LedgerRepo interface {
	Apply(ctx context.Context, userID int, delta float64, txType domain.TransactionType, referenceKey, description string) (*domain.Transaction, error)
}

type Distributor interface {
	Distribute(ctx context.Context, referredUserID int, planAmount float64) error
}

// Service retries referral distributions that did not finish when their
// application was approved. Distribution is idempotent per (referrer,
// referred, level), so re-driving a partially completed one converges
// without double-crediting.
type Service struct {
	repo           Repo
	ledgerRepo     LedgerRepo
	distributor    Distributor
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(repo Repo, ledgerRepo LedgerRepo, distributor Distributor) *Service {
	return &Service{
		repo:           repo,
		ledgerRepo:     ledgerRepo,
		distributor:    distributor,
		limit:          100,
		workerPool:     NewWorkerPool(5),
		updateInterval: time.Second * 30,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Rewards service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.processApplications(ctx)
		}
	}
}

func (s *Service) processApplications(ctx context.Context) {
	applications, err := s.repo.FindPendingRewardDistribution(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch applications for processing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, application := range applications {
		application := application

		if _, loaded := processingApplications.LoadOrStore(application.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingApplications.Delete(application.ID)
				return s.handleApplication(ctx, application)
			})
			if err != nil {
				processingApplications.Delete(application.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing applications", zap.Error(err))
	}
}

func (s *Service) handleApplication(ctx context.Context, application domain.Application) error {
	plan, err := s.repo.FindPlanByID(ctx, application.PlanID)
	if err != nil {
		return fmt.Errorf("failed to load plan %d: %w", application.PlanID, err)
	}
	if plan == nil {
		return fmt.Errorf("plan %d not found for application %d", application.PlanID, application.ID)
	}

	// Re-post the activation credit under its original key. Normally this is
	// a duplicate no-op; it only lands if the approving transaction never
	// committed the credit for this already-approved application.
	referenceKey := fmt.Sprintf("plan-activation:%d", application.ID)
	description := fmt.Sprintf("plan activation: %s", plan.Name)
	_, err = s.ledgerRepo.Apply(ctx, application.UserID, plan.Price, domain.TransactionSubscriptionPayment, referenceKey, description)
	if err != nil && !errors.Is(err, domain.ErrDuplicateReference) {
		return fmt.Errorf("failed to credit plan activation for application %d: %w", application.ID, err)
	}

	if err := s.distributor.Distribute(ctx, application.UserID, plan.Price); err != nil {
		return fmt.Errorf("failed to distribute rewards for application %d: %w", application.ID, err)
	}

	if err := s.repo.MarkRewardsDistributed(ctx, application.ID); err != nil {
		return fmt.Errorf("failed to mark application %d distributed: %w", application.ID, err)
	}

	zap.L().Info("Referral distribution completed",
		zap.Int("applicationID", application.ID),
		zap.Int("userID", application.UserID),
	)
	return nil
}
