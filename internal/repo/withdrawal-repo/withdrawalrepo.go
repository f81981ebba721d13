package withdrawalrepo

import (
	"context"
	"time"

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

func (r *Repository) CreateRequest(ctx context.Context, request *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawal_requests (user_id, amount, tax_amount, net_amount, mpesa_number, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, request.UserID, request.Amount, request.TaxAmount, request.NetAmount, request.MpesaNumber, request.Status).
		Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return request, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT id, user_id, amount, tax_amount, net_amount, mpesa_number, status, processed_by, processed_at, notes, created_at
        FROM withdrawal_requests
        WHERE id = $1
    `
	return r.scanRequest(r.db.QueryRow(ctx, query, id))
}

// FindByIDForUpdate locks the request row; status transitions read the current
// status under this lock so two concurrent admins cannot both finalize it.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT id, user_id, amount, tax_amount, net_amount, mpesa_number, status, processed_by, processed_at, notes, created_at
        FROM withdrawal_requests
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanRequest(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) scanRequest(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var request domain.WithdrawalRequest
	err := row.Scan(&request.ID, &request.UserID, &request.Amount, &request.TaxAmount, &request.NetAmount,
		&request.MpesaNumber, &request.Status, &request.ProcessedBy, &request.ProcessedAt, &request.Notes, &request.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal request", zap.Error(err))
		return nil, err
	}
	return &request, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.WithdrawalStatus, processedBy int, notes string) error {
	query := `
        UPDATE withdrawal_requests
        SET status = $1, processed_by = $2, processed_at = $3, notes = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, status, processedBy, time.Now(), notes, id)
	if err != nil {
		zap.L().Error("failed to update withdrawal status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT id, user_id, amount, tax_amount, net_amount, mpesa_number, status, processed_by, processed_at, notes, created_at
        FROM withdrawal_requests
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.queryRequests(ctx, query, userID)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT id, user_id, amount, tax_amount, net_amount, mpesa_number, status, processed_by, processed_at, notes, created_at
        FROM withdrawal_requests
        ORDER BY created_at DESC
    `
	return r.queryRequests(ctx, query)
}

func (r *Repository) queryRequests(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	for rows.Next() {
		var request domain.WithdrawalRequest
		err := rows.Scan(&request.ID, &request.UserID, &request.Amount, &request.TaxAmount, &request.NetAmount,
			&request.MpesaNumber, &request.Status, &request.ProcessedBy, &request.ProcessedAt, &request.Notes, &request.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}
