package referralservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/pg"
)

const maxReferralLevel = 3

type ReferralRepo interface {
	CreateEdge(ctx context.Context, referral *domain.Referral) error
	FindEdgesByReferredID(ctx context.Context, referredID int) ([]domain.Referral, error)
	FindEdgesByReferrerID(ctx context.Context, referrerID int) ([]domain.Referral, error)
	CreateReward(ctx context.Context, reward *domain.ReferralReward) (*domain.ReferralReward, error)
	FindRewardsByReferrerID(ctx context.Context, referrerID int) ([]domain.ReferralReward, error)
}

type UserRepo interface {
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
}

type LedgerRepo interface {
	Apply(ctx context.Context, userID int, delta float64, txType domain.TransactionType, referenceKey, description string) (*domain.Transaction, error)
}

type Service struct {
	referralRepo ReferralRepo
	userRepo     UserRepo
	ledgerRepo   LedgerRepo
	txManager    pg.TXManager
}

func New(referralRepo ReferralRepo, userRepo UserRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		referralRepo: referralRepo,
		userRepo:     userRepo,
		ledgerRepo:   ledgerRepo,
		txManager:    txManager,
	}
}

// LinkReferral records the referral chain for a fresh signup. The level-1
// edge comes from the referral code; level 2 and 3 edges are derived from the
// referrer's stored upline at this moment and stay fixed afterwards.
func (s *Service) LinkReferral(ctx context.Context, referredID int, referralCode string) error {
	if referralCode == "" {
		return nil
	}
	referrer, err := s.userRepo.FindByReferralCode(ctx, referralCode)
	if err != nil {
		return err
	}
	if referrer == nil || referrer.ID == referredID {
		zap.L().Warn("referral code did not resolve to a referrer", zap.String("code", referralCode))
		return nil
	}

	edge := &domain.Referral{
		ReferrerID: referrer.ID,
		ReferredID: referredID,
		Level:      1,
		Status:     domain.ReferralStatusActive,
	}
	if err := s.referralRepo.CreateEdge(ctx, edge); err != nil {
		return err
	}

	upline, err := s.referralRepo.FindEdgesByReferredID(ctx, referrer.ID)
	if err != nil {
		return err
	}
	for _, ancestor := range upline {
		level := ancestor.Level + 1
		if level > maxReferralLevel {
			continue
		}
		edge := &domain.Referral{
			ReferrerID: ancestor.ReferrerID,
			ReferredID: referredID,
			Level:      level,
			Status:     domain.ReferralStatusActive,
		}
		if err := s.referralRepo.CreateEdge(ctx, edge); err != nil {
			return err
		}
	}

	zap.L().Info("referral chain recorded", zap.Int("referredID", referredID), zap.Int("referrerID", referrer.ID))
	return nil
}

// Distribute pays the upline for a referred user's plan activation. Each
// level is its own atomic credit keyed by (referrer, referred, level), so a
// crash mid-way converges on retry without paying any level twice. Rewards
// come from the referred user's plan amount: the referrer's own plan never
// changes what was paid.
func (s *Service) Distribute(ctx context.Context, referredUserID int, planAmount float64) error {
	tier, err := domain.ParsePlanTier(planAmount)
	if err != nil {
		zap.L().Error("plan amount is not a known tier", zap.Float64("amount", planAmount))
		return err
	}

	edges, err := s.referralRepo.FindEdgesByReferredID(ctx, referredUserID)
	if err != nil {
		return err
	}

	for _, edge := range edges {
		reward, err := domain.ReferralRewardAmount(tier, edge.Level)
		if err != nil {
			return err
		}

		referenceKey := fmt.Sprintf("referral:%d:%d:%d", edge.ReferrerID, referredUserID, edge.Level)
		row := &domain.ReferralReward{
			ReferrerID:         edge.ReferrerID,
			ReferredID:         referredUserID,
			Level:              edge.Level,
			ReferredPlanAmount: planAmount,
			RewardAmount:       reward,
			Status:             domain.ReferralRewardStatusPaid,
		}

		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			if _, err := s.referralRepo.CreateReward(ctx, row); err != nil {
				return err
			}
			description := fmt.Sprintf("level %d referral reward", edge.Level)
			if _, err := s.ledgerRepo.Apply(ctx, edge.ReferrerID, reward, domain.TransactionReferralReward, referenceKey, description); err != nil {
				return err
			}
			return nil
		})
		if errors.Is(err, domain.ErrDuplicateReference) {
			// Already paid for this level, e.g. a re-approval after
			// rejection. Success no-op.
			continue
		}
		if err != nil {
			zap.L().Error("failed to credit referral reward",
				zap.Int("referrerID", edge.ReferrerID), zap.Int("level", edge.Level), zap.Error(err))
			return err
		}

		zap.L().Info("referral reward paid",
			zap.Int("referrerID", edge.ReferrerID),
			zap.Int("referredID", referredUserID),
			zap.Int("level", edge.Level),
			zap.Float64("reward", reward),
		)
	}
	return nil
}

func (s *Service) GetReferrals(ctx context.Context, userID int) ([]domain.Referral, error) {
	referrals, err := s.referralRepo.FindEdgesByReferrerID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch referrals", zap.Error(err))
		return nil, err
	}
	return referrals, nil
}

func (s *Service) GetRewards(ctx context.Context, userID int) ([]domain.ReferralReward, error) {
	rewards, err := s.referralRepo.FindRewardsByReferrerID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch referral rewards", zap.Error(err))
		return nil, err
	}
	return rewards, nil
}
