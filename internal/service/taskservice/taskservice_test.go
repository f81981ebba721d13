package taskservice

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

func NewMock(t *testing.T) (*Service, *MockTaskRepo, *MockPlanRepo, *MockLedgerRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	taskRepo := NewMockTaskRepo(ctrl)
	planRepo := NewMockPlanRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(taskRepo, planRepo, ledgerRepo, txManager)
	service.now = func() time.Time {
		return time.Date(2025, 1, 11, 15, 30, 0, 0, time.UTC)
	}
	defer ctrl.Finish()
	return service, taskRepo, planRepo, ledgerRepo, txManager
}

func TestCompleteTask(t *testing.T) {
	day := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		taskType      domain.TaskType
		prepareMock   func(taskRepo *MockTaskRepo, planRepo *MockPlanRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager)
		expectedError error
		checkResult   func(t *testing.T, completion *domain.TaskCompletion)
	}{
		{
			name:     "Fresh video completion on 1000 plan",
			taskType: domain.TaskTypeVideo,
			prepareMock: func(taskRepo *MockTaskRepo, planRepo *MockPlanRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(1000.0, nil)
				taskRepo.EXPECT().FindCompletion(gomock.Any(), 1, domain.TaskTypeVideo, day).Return(nil, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				taskRepo.EXPECT().CreateCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, completion *domain.TaskCompletion) (*domain.TaskCompletion, error) {
						completion.ID = 1
						return completion, nil
					})
				ledgerRepo.EXPECT().Apply(gomock.Any(), 1, 30.0, domain.TransactionTaskReward, "task:1:video:2025-01-11", "daily video task reward").
					Return(&domain.Transaction{ID: 1}, nil)
			},
			checkResult: func(t *testing.T, completion *domain.TaskCompletion) {
				assert.Equal(t, 30.0, completion.RewardAmount)
				assert.Equal(t, day, completion.TaskDate)
				assert.Equal(t, domain.TaskStatusCompleted, completion.Status)
			},
		},
		{
			name:     "Survey completion on 5000 plan",
			taskType: domain.TaskTypeSurvey,
			prepareMock: func(taskRepo *MockTaskRepo, planRepo *MockPlanRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(5000.0, nil)
				taskRepo.EXPECT().FindCompletion(gomock.Any(), 1, domain.TaskTypeSurvey, day).Return(nil, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				taskRepo.EXPECT().CreateCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, completion *domain.TaskCompletion) (*domain.TaskCompletion, error) {
						return completion, nil
					})
				ledgerRepo.EXPECT().Apply(gomock.Any(), 1, 30.0, domain.TransactionTaskReward, "task:1:survey:2025-01-11", "daily survey task reward").
					Return(&domain.Transaction{ID: 2}, nil)
			},
			checkResult: func(t *testing.T, completion *domain.TaskCompletion) {
				assert.Equal(t, 30.0, completion.RewardAmount)
			},
		},
		{
			name:     "Already completed today returns earlier completion",
			taskType: domain.TaskTypeVideo,
			prepareMock: func(taskRepo *MockTaskRepo, planRepo *MockPlanRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(1000.0, nil)
				taskRepo.EXPECT().FindCompletion(gomock.Any(), 1, domain.TaskTypeVideo, day).
					Return(&domain.TaskCompletion{ID: 5, RewardAmount: 30.0}, nil)
			},
			checkResult: func(t *testing.T, completion *domain.TaskCompletion) {
				assert.Equal(t, 5, completion.ID)
			},
		},
		{
			name:     "No active plan",
			taskType: domain.TaskTypeVideo,
			prepareMock: func(taskRepo *MockTaskRepo, planRepo *MockPlanRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(0.0, domain.ErrNoActivePlan)
			},
			expectedError: domain.ErrNoActivePlan,
		},
		{
			name:     "Unknown task type",
			taskType: domain.TaskType("puzzle"),
			prepareMock: func(taskRepo *MockTaskRepo, planRepo *MockPlanRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(1000.0, nil)
			},
			expectedError: domain.ErrUnknownTaskType,
		},
		{
			name:     "Concurrent duplicate falls back to recorded completion",
			taskType: domain.TaskTypeVideo,
			prepareMock: func(taskRepo *MockTaskRepo, planRepo *MockPlanRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager) {
				planRepo.EXPECT().FindActivePlanAmount(gomock.Any(), 1).Return(1000.0, nil)
				taskRepo.EXPECT().FindCompletion(gomock.Any(), 1, domain.TaskTypeVideo, day).Return(nil, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateReference)
				taskRepo.EXPECT().FindCompletion(gomock.Any(), 1, domain.TaskTypeVideo, day).
					Return(&domain.TaskCompletion{ID: 9, RewardAmount: 30.0}, nil)
			},
			checkResult: func(t *testing.T, completion *domain.TaskCompletion) {
				assert.Equal(t, 9, completion.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, taskRepo, planRepo, ledgerRepo, txManager := NewMock(t)
			tt.prepareMock(taskRepo, planRepo, ledgerRepo, txManager)

			completion, err := service.CompleteTask(context.Background(), 1, tt.taskType)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, completion)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, completion)
				tt.checkResult(t, completion)
			}
		})
	}
}

func TestGetTodayCompletions(t *testing.T) {
	service, taskRepo, _, _, _ := NewMock(t)
	day := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

	taskRepo.EXPECT().FindCompletionsByDate(gomock.Any(), 1, day).
		Return([]domain.TaskCompletion{{ID: 1, TaskType: domain.TaskTypeVideo}}, nil)

	completions, err := service.GetTodayCompletions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, completions, 1)
}

func TestGetCompletions(t *testing.T) {
	service, taskRepo, _, _, _ := NewMock(t)

	taskRepo.EXPECT().FindCompletionsByUserID(gomock.Any(), 1).
		Return(nil, errors.New("db error"))

	completions, err := service.GetCompletions(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, completions)
}
