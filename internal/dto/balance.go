package dto

import "time"

type BalanceResponseDTO struct {
	PlanBalance      float64 `json:"plan_balance" example:"1000"`
	AvailableBalance float64 `json:"available_balance" example:"325.5"`
	TotalEarned      float64 `json:"total_earned" example:"1325.5"`
}

type TransactionResponseDTO struct {
	Type          string    `json:"type" example:"task_reward"`
	Amount        float64   `json:"amount" example:"30"`
	BalanceBefore float64   `json:"balance_before" example:"295.5"`
	BalanceAfter  float64   `json:"balance_after" example:"325.5"`
	ReferenceKey  string    `json:"reference_key" example:"task:1:video:2025-01-11"`
	Description   string    `json:"description" example:"daily video task reward"`
	CreatedAt     time.Time `json:"created_at" example:"2025-01-11T16:09:57+03:00"`
}

type AdminBalanceResponseDTO struct {
	UserID           int     `json:"user_id" example:"1"`
	PlanBalance      float64 `json:"plan_balance" example:"1000"`
	AvailableBalance float64 `json:"available_balance" example:"325.5"`
	TotalEarned      float64 `json:"total_earned" example:"1325.5"`
}

type LedgerVerifyResponseDTO struct {
	UserID     int  `json:"user_id" example:"1"`
	Consistent bool `json:"consistent" example:"true"`
}
