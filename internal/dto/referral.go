package dto

import "time"

type ReferralResponseDTO struct {
	ReferredID int       `json:"referred_id" example:"42"`
	Level      int       `json:"level" example:"1"`
	Status     string    `json:"status" example:"active"`
	CreatedAt  time.Time `json:"created_at" example:"2025-01-11T10:00:00Z"`
}

type ReferralRewardResponseDTO struct {
	ReferredID         int       `json:"referred_id" example:"42"`
	Level              int       `json:"level" example:"1"`
	ReferredPlanAmount float64   `json:"referred_plan_amount" example:"1000"`
	RewardAmount       float64   `json:"reward_amount" example:"50"`
	Status             string    `json:"status" example:"paid"`
	CreatedAt          time.Time `json:"created_at" example:"2025-01-11T10:00:00Z"`
}
