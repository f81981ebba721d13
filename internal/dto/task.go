package dto

import "time"

type CompleteTaskRequestDTO struct {
	TaskType string `json:"task_type" example:"video"`
}

type TaskCompletionResponseDTO struct {
	TaskType     string    `json:"task_type" example:"video"`
	TaskDate     string    `json:"task_date" example:"2025-01-11"`
	RewardAmount float64   `json:"reward_amount" example:"30"`
	Status       string    `json:"status" example:"completed"`
	CreatedAt    time.Time `json:"created_at" example:"2025-01-11T10:00:00Z"`
}
