package dto

import "time"

type PlanResponseDTO struct {
	ID             int     `json:"id" example:"2"`
	Name           string  `json:"name" example:"Bronze"`
	Price          float64 `json:"price" example:"1000"`
	Currency       string  `json:"currency" example:"KES"`
	DurationMonths int     `json:"duration_months" example:"1"`
}

type ApplyForPlanRequestDTO struct {
	PlanID int `json:"plan_id" example:"2"`
}

type ApplicationResponseDTO struct {
	ID        int       `json:"id" example:"11"`
	UserID    int       `json:"user_id" example:"1"`
	PlanID    int       `json:"plan_id" example:"2"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-11T10:00:00Z"`
}

type SubmitPaymentRequestDTO struct {
	MpesaNumber  string `json:"mpesa_number" example:"254700000001"`
	MpesaMessage string `json:"mpesa_message" example:"QGH7K2M1XY Confirmed. Ksh1,000.00 sent to HESCO"`
}

type PaymentSubmissionResponseDTO struct {
	ID            int       `json:"id" example:"9"`
	UserID        int       `json:"user_id" example:"1"`
	ApplicationID int       `json:"application_id" example:"11"`
	MpesaNumber   string    `json:"mpesa_number" example:"254700000001"`
	MpesaMessage  string    `json:"mpesa_message" example:"QGH7K2M1XY Confirmed. Ksh1,000.00 sent to HESCO"`
	Amount        float64   `json:"amount" example:"1000"`
	Status        string    `json:"status" example:"pending"`
	CreatedAt     time.Time `json:"created_at" example:"2025-01-11T10:00:00Z"`
}
