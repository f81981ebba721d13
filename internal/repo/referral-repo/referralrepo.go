package referralrepo

import (
	"context"
	"errors"

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

// CreateEdge inserts a referral edge. Edges are created once at signup; a
// repeated insert for the same pair is a no-op.
func (r *Repository) CreateEdge(ctx context.Context, referral *domain.Referral) error {
	query := `
		INSERT INTO referrals (referrer_id, referred_id, level, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (referrer_id, referred_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, referral.ReferrerID, referral.ReferredID, referral.Level, referral.Status)
	if err != nil {
		zap.L().Error("can't save referral edge", zap.Error(err))
		return err
	}
	return nil
}

// FindEdgesByReferredID returns the referred user's upline edges, ordered by
// level. At most three rows.
func (r *Repository) FindEdgesByReferredID(ctx context.Context, referredID int) ([]domain.Referral, error) {
	query := `
        SELECT id, referrer_id, referred_id, level, status, created_at
        FROM referrals
        WHERE referred_id = $1
        ORDER BY level ASC
    `
	return r.queryEdges(ctx, query, referredID)
}

func (r *Repository) FindEdgesByReferrerID(ctx context.Context, referrerID int) ([]domain.Referral, error) {
	query := `
        SELECT id, referrer_id, referred_id, level, status, created_at
        FROM referrals
        WHERE referrer_id = $1
        ORDER BY created_at DESC
    `
	return r.queryEdges(ctx, query, referrerID)
}

func (r *Repository) queryEdges(ctx context.Context, query string, args ...any) ([]domain.Referral, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get referral edges", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var referral domain.Referral
		err := rows.Scan(&referral.ID, &referral.ReferrerID, &referral.ReferredID, &referral.Level, &referral.Status, &referral.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, referral)
	}
	return referrals, nil
}

// CreateReward appends a referral reward row. The (referrer, referred, level)
// natural key is unique for all time, so re-approval never pays twice.
func (r *Repository) CreateReward(ctx context.Context, reward *domain.ReferralReward) (*domain.ReferralReward, error) {
	query := `
		INSERT INTO referral_rewards (referrer_id, referred_id, level, referred_plan_amount, reward_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, reward.ReferrerID, reward.ReferredID, reward.Level, reward.ReferredPlanAmount, reward.RewardAmount, reward.Status).
		Scan(&reward.ID, &reward.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domain.ErrDuplicateReference
		}
		zap.L().Error("can't save referral reward", zap.Error(err))
		return nil, err
	}
	return reward, nil
}

func (r *Repository) FindRewardsByReferrerID(ctx context.Context, referrerID int) ([]domain.ReferralReward, error) {
	query := `
        SELECT id, referrer_id, referred_id, level, referred_plan_amount, reward_amount, status, created_at
        FROM referral_rewards
        WHERE referrer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("can't get referral rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.ReferralReward
	for rows.Next() {
		var reward domain.ReferralReward
		err := rows.Scan(&reward.ID, &reward.ReferrerID, &reward.ReferredID, &reward.Level, &reward.ReferredPlanAmount, &reward.RewardAmount, &reward.Status, &reward.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan referral reward row", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	return rewards, nil
}
