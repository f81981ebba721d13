package taskrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/pg"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateCompletion(ctx context.Context, completion *domain.TaskCompletion) (*domain.TaskCompletion, error) {
	query := `
		INSERT INTO task_completions (user_id, task_type, task_date, reward_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, completion.UserID, completion.TaskType, completion.TaskDate, completion.RewardAmount, completion.Status).
		Scan(&completion.ID, &completion.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domain.ErrDuplicateReference
		}
		zap.L().Error("can't save task completion", zap.Error(err))
		return nil, err
	}
	return completion, nil
}

func (r *Repository) FindCompletion(ctx context.Context, userID int, taskType domain.TaskType, taskDate time.Time) (*domain.TaskCompletion, error) {
	query := `
        SELECT id, user_id, task_type, task_date, reward_amount, status, created_at
        FROM task_completions
        WHERE user_id = $1 AND task_type = $2 AND task_date = $3
    `
	row := r.db.QueryRow(ctx, query, userID, taskType, taskDate)
	var completion domain.TaskCompletion
	err := row.Scan(&completion.ID, &completion.UserID, &completion.TaskType, &completion.TaskDate, &completion.RewardAmount, &completion.Status, &completion.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find task completion", zap.Error(err))
		return nil, err
	}
	return &completion, nil
}

func (r *Repository) FindCompletionsByDate(ctx context.Context, userID int, taskDate time.Time) ([]domain.TaskCompletion, error) {
	query := `
        SELECT id, user_id, task_type, task_date, reward_amount, status, created_at
        FROM task_completions
        WHERE user_id = $1 AND task_date = $2
    `
	return r.queryCompletions(ctx, query, userID, taskDate)
}

func (r *Repository) FindCompletionsByUserID(ctx context.Context, userID int) ([]domain.TaskCompletion, error) {
	query := `
        SELECT id, user_id, task_type, task_date, reward_amount, status, created_at
        FROM task_completions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.queryCompletions(ctx, query, userID)
}

func (r *Repository) queryCompletions(ctx context.Context, query string, args ...any) ([]domain.TaskCompletion, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get task completions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var completions []domain.TaskCompletion
	for rows.Next() {
		var completion domain.TaskCompletion
		err := rows.Scan(&completion.ID, &completion.UserID, &completion.TaskType, &completion.TaskDate, &completion.RewardAmount, &completion.Status, &completion.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan task completion row", zap.Error(err))
			return nil, err
		}
		completions = append(completions, completion)
	}
	return completions, nil
}
