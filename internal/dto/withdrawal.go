package dto

import "time"

type WithdrawRequestDTO struct {
	Amount      float64 `json:"amount" example:"300"`
	MpesaNumber string  `json:"mpesa_number" example:"+254700000000"`
}

type WithdrawalResponseDTO struct {
	ID          int       `json:"id" example:"7"`
	UserID      int       `json:"user_id,omitempty" example:"1"`
	Amount      float64   `json:"amount" example:"300"`
	TaxAmount   float64   `json:"tax_amount" example:"45"`
	NetAmount   float64   `json:"net_amount" example:"255"`
	MpesaNumber string    `json:"mpesa_number" example:"+254700000000"`
	Status      string    `json:"status" example:"pending"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at" example:"2025-01-11T10:00:00Z"`
}

type UpdateWithdrawalStatusRequestDTO struct {
	Status string `json:"status" example:"completed"`
	Notes  string `json:"notes,omitempty" example:"paid via till 123"`
}
