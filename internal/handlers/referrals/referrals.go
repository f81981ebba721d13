package referrals

import (
	"context"
	"net/http"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/dto"
	"github.com/hescoapp/hesco/pkg/auth"
	"github.com/hescoapp/hesco/pkg/utils"
)

type Service interface {
	GetReferrals(ctx context.Context, userID int) ([]domain.Referral, error)
	GetRewards(ctx context.Context, userID int) ([]domain.ReferralReward, error)
}

type ReferralHandler struct {
	referralService Service
}

func New(referralService Service) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// GetReferrals godoc
//
//	@Summary		Get referral network
//	@Description	List users referred by the authenticated user, across all three levels.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReferralResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referrals [get]
func (h *ReferralHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	referrals, err := h.referralService.GetReferrals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch referrals")
		return
	}

	response := make([]dto.ReferralResponseDTO, len(referrals))
	for i, ref := range referrals {
		response[i] = dto.ReferralResponseDTO{
			ReferredID: ref.ReferredID,
			Level:      ref.Level,
			Status:     ref.Status,
			CreatedAt:  ref.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRewards godoc
//
//	@Summary		Get referral rewards
//	@Description	List referral rewards paid to the authenticated user.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReferralRewardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referrals/rewards [get]
func (h *ReferralHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	rewards, err := h.referralService.GetRewards(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rewards")
		return
	}

	response := make([]dto.ReferralRewardResponseDTO, len(rewards))
	for i, reward := range rewards {
		response[i] = dto.ReferralRewardResponseDTO{
			ReferredID:         reward.ReferredID,
			Level:              reward.Level,
			ReferredPlanAmount: reward.ReferredPlanAmount,
			RewardAmount:       reward.RewardAmount,
			Status:             reward.Status,
			CreatedAt:          reward.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
