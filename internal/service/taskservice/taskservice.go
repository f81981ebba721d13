package taskservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/pg"
)

type TaskRepo interface {
	CreateCompletion(ctx context.Context, completion *domain.TaskCompletion) (*domain.TaskCompletion, error)
	FindCompletion(ctx context.Context, userID int, taskType domain.TaskType, taskDate time.Time) (*domain.TaskCompletion, error)
	FindCompletionsByDate(ctx context.Context, userID int, taskDate time.Time) ([]domain.TaskCompletion, error)
	FindCompletionsByUserID(ctx context.Context, userID int) ([]domain.TaskCompletion, error)
}

type PlanRepo interface {
	FindActivePlanAmount(ctx context.Context, userID int) (float64, error)
}

type LedgerRepo interface {
	Apply(ctx context.Context, userID int, delta float64, txType domain.TransactionType, referenceKey, description string) (*domain.Transaction, error)
}

type Service struct {
	taskRepo   TaskRepo
	planRepo   PlanRepo
	ledgerRepo LedgerRepo
	txManager  pg.TXManager
	now        func() time.Time
}

func New(taskRepo TaskRepo, planRepo PlanRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		taskRepo:   taskRepo,
		planRepo:   planRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
		now:        time.Now,
	}
}

// taskDay is the server's UTC calendar day, so a client cannot complete the
// same task twice by shifting its local timezone.
func (s *Service) taskDay() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

// CompleteTask credits the daily task reward for the user's plan tier, at
// most once per user, task type and UTC day. A repeated call returns the
// completion recorded earlier and credits nothing.
func (s *Service) CompleteTask(ctx context.Context, userID int, taskType domain.TaskType) (*domain.TaskCompletion, error) {
	day := s.taskDay()

	planAmount, err := s.planRepo.FindActivePlanAmount(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNoActivePlan) {
			zap.L().Error("failed to get active plan", zap.Error(err))
		}
		return nil, err
	}
	tier, err := domain.ParsePlanTier(planAmount)
	if err != nil {
		zap.L().Error("active plan amount is not a known tier", zap.Float64("amount", planAmount))
		return nil, err
	}
	reward, err := domain.TaskRewardAmount(tier, taskType)
	if err != nil {
		return nil, err
	}

	existing, err := s.taskRepo.FindCompletion(ctx, userID, taskType, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("task already completed today",
			zap.Int("userID", userID), zap.String("taskType", string(taskType)))
		return existing, nil
	}

	completion := &domain.TaskCompletion{
		UserID:       userID,
		TaskType:     taskType,
		TaskDate:     day,
		RewardAmount: reward,
		Status:       domain.TaskStatusCompleted,
	}
	referenceKey := fmt.Sprintf("task:%d:%s:%s", userID, taskType, day.Format("2006-01-02"))

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.taskRepo.CreateCompletion(ctx, completion); err != nil {
			return err
		}
		description := fmt.Sprintf("daily %s task reward", taskType)
		if _, err := s.ledgerRepo.Apply(ctx, userID, reward, domain.TransactionTaskReward, referenceKey, description); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		// A concurrent duplicate lost the race to the natural key; the
		// reward was already credited exactly once.
		if errors.Is(err, domain.ErrDuplicateReference) {
			return s.taskRepo.FindCompletion(ctx, userID, taskType, day)
		}
		zap.L().Error("failed to complete task", zap.Error(err))
		return nil, err
	}

	zap.L().Info("task completed",
		zap.Int("userID", userID),
		zap.String("taskType", string(taskType)),
		zap.Float64("reward", reward),
	)
	return completion, nil
}

func (s *Service) GetTodayCompletions(ctx context.Context, userID int) ([]domain.TaskCompletion, error) {
	completions, err := s.taskRepo.FindCompletionsByDate(ctx, userID, s.taskDay())
	if err != nil {
		zap.L().Error("failed to fetch today's completions", zap.Error(err))
		return nil, err
	}
	return completions, nil
}

func (s *Service) GetCompletions(ctx context.Context, userID int) ([]domain.TaskCompletion, error) {
	completions, err := s.taskRepo.FindCompletionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch completions", zap.Error(err))
		return nil, err
	}
	return completions, nil
}
