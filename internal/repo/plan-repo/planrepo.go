package planrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindActivePlans(ctx context.Context) ([]domain.Plan, error) {
	query := `
        SELECT id, name, price, currency, duration_months, is_active, created_at
        FROM subscription_plans
        WHERE is_active = TRUE
        ORDER BY price ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get subscription plans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		var plan domain.Plan
		err := rows.Scan(&plan.ID, &plan.Name, &plan.Price, &plan.Currency, &plan.DurationMonths, &plan.IsActive, &plan.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan plan row", zap.Error(err))
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (r *Repository) FindPlanByID(ctx context.Context, id int) (*domain.Plan, error) {
	query := `
        SELECT id, name, price, currency, duration_months, is_active, created_at
        FROM subscription_plans
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var plan domain.Plan
	err := row.Scan(&plan.ID, &plan.Name, &plan.Price, &plan.Currency, &plan.DurationMonths, &plan.IsActive, &plan.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find plan", zap.Error(err))
		return nil, err
	}
	return &plan, nil
}

// FindActivePlanAmount resolves the price of the user's approved plan. At most
// one application per user is approved at a time.
func (r *Repository) FindActivePlanAmount(ctx context.Context, userID int) (float64, error) {
	query := `
        SELECT p.price
        FROM user_applications a
        JOIN subscription_plans p ON p.id = a.plan_id
        WHERE a.user_id = $1 AND a.status = 'approved'
        ORDER BY a.updated_at DESC
        LIMIT 1
    `
	var amount float64
	err := r.db.QueryRow(ctx, query, userID).Scan(&amount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, domain.ErrNoActivePlan
		}
		zap.L().Error("can't get active plan amount", zap.Error(err))
		return 0, err
	}
	return amount, nil
}

func (r *Repository) CreateApplication(ctx context.Context, application *domain.Application) (*domain.Application, error) {
	query := `
		INSERT INTO user_applications (user_id, plan_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, application.UserID, application.PlanID, application.Status).
		Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save application", zap.Error(err))
		return nil, err
	}
	return application, nil
}

func (r *Repository) FindApplicationByID(ctx context.Context, id int) (*domain.Application, error) {
	query := `
        SELECT id, user_id, plan_id, status, rewards_distributed, created_at, updated_at
        FROM user_applications
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var application domain.Application
	err := row.Scan(&application.ID, &application.UserID, &application.PlanID, &application.Status,
		&application.RewardsDistributed, &application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find application", zap.Error(err))
		return nil, err
	}
	return &application, nil
}

func (r *Repository) UpdateApplicationStatus(ctx context.Context, id int, status domain.ApplicationStatus) error {
	query := `
        UPDATE user_applications
        SET status = $1, updated_at = now()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update application status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkRewardsDistributed(ctx context.Context, id int) error {
	query := `
        UPDATE user_applications
        SET rewards_distributed = TRUE, updated_at = now()
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to mark rewards distributed", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindApplicationsByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	query := `
        SELECT id, user_id, plan_id, status, rewards_distributed, created_at, updated_at
        FROM user_applications
        WHERE status = $1
        ORDER BY created_at ASC
    `
	return r.queryApplications(ctx, query, status)
}

func (r *Repository) FindApplicationsByUserID(ctx context.Context, userID int) ([]domain.Application, error) {
	query := `
        SELECT id, user_id, plan_id, status, rewards_distributed, created_at, updated_at
        FROM user_applications
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.queryApplications(ctx, query, userID)
}

// FindPendingRewardDistribution returns approved applications whose referral
// rewards have not finished distributing, oldest first.
func (r *Repository) FindPendingRewardDistribution(ctx context.Context, limit uint32) ([]domain.Application, error) {
	query := `
        SELECT id, user_id, plan_id, status, rewards_distributed, created_at, updated_at
        FROM user_applications
        WHERE status = 'approved' AND rewards_distributed = FALSE
        ORDER BY updated_at ASC
        LIMIT $1
    `
	return r.queryApplications(ctx, query, int(limit))
}

func (r *Repository) CreatePaymentSubmission(ctx context.Context, submission *domain.PaymentSubmission) (*domain.PaymentSubmission, error) {
	query := `
		INSERT INTO payment_submissions (user_id, application_id, mpesa_number, mpesa_message, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, submission.UserID, submission.ApplicationID, submission.MpesaNumber,
		submission.MpesaMessage, submission.Amount, submission.Status).
		Scan(&submission.ID, &submission.CreatedAt, &submission.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save payment submission", zap.Error(err))
		return nil, err
	}
	return submission, nil
}

func (r *Repository) FindSubmissionsByApplicationID(ctx context.Context, applicationID int) ([]domain.PaymentSubmission, error) {
	query := `
        SELECT id, user_id, application_id, mpesa_number, mpesa_message, amount, status, created_at, updated_at
        FROM payment_submissions
        WHERE application_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		zap.L().Error("can't get payment submissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.PaymentSubmission
	for rows.Next() {
		var submission domain.PaymentSubmission
		err := rows.Scan(&submission.ID, &submission.UserID, &submission.ApplicationID, &submission.MpesaNumber,
			&submission.MpesaMessage, &submission.Amount, &submission.Status, &submission.CreatedAt, &submission.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan payment submission row", zap.Error(err))
			return nil, err
		}
		submissions = append(submissions, submission)
	}
	return submissions, nil
}

func (r *Repository) queryApplications(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var application domain.Application
		err := rows.Scan(&application.ID, &application.UserID, &application.PlanID, &application.Status,
			&application.RewardsDistributed, &application.CreatedAt, &application.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		applications = append(applications, application)
	}
	return applications, nil
}
