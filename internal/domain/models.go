package domain

import "time"

const (
	RoleCustomer string = "customer"
	RoleAdmin    string = "admin"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Phone        string    `db:"phone"`
	Role         string    `db:"role"`
	ReferralCode string    `db:"referral_code"`
	CreatedAt    time.Time `db:"created_at"`
}

type Balance struct {
	ID               int       `db:"id"`
	UserID           int       `db:"user_id"`
	PlanBalance      float64   `db:"plan_balance"`
	AvailableBalance float64   `db:"available_balance"`
	TotalEarned      float64   `db:"total_earned"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type TransactionType string

const (
	TransactionSubscriptionPayment TransactionType = "subscription_payment"
	TransactionTaskReward          TransactionType = "task_reward"
	TransactionReferralReward      TransactionType = "referral_reward"
	TransactionWithdrawal          TransactionType = "withdrawal"
	TransactionWithdrawalRefund    TransactionType = "withdrawal_refund"
)

// Transaction is an immutable ledger entry. Amount is signed: negative only
// for withdrawals. BalanceBefore/BalanceAfter snapshot available_balance.
type Transaction struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	Type          TransactionType `db:"transaction_type"`
	Amount        float64         `db:"amount"`
	BalanceBefore float64         `db:"balance_before"`
	BalanceAfter  float64         `db:"balance_after"`
	ReferenceKey  string          `db:"reference_key"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
}

const (
	ReferralStatusActive = "active"

	ReferralRewardStatusPaid = "paid"
)

// Referral is an edge from referrer to referred. Level is fixed when the edge
// is created at signup; level 2 and 3 edges are derived from the referrer's own
// stored edges at that moment and never recomputed.
type Referral struct {
	ID         int       `db:"id"`
	ReferrerID int       `db:"referrer_id"`
	ReferredID int       `db:"referred_id"`
	Level      int       `db:"level"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

type ReferralReward struct {
	ID                 int       `db:"id"`
	ReferrerID         int       `db:"referrer_id"`
	ReferredID         int       `db:"referred_id"`
	Level              int       `db:"level"`
	ReferredPlanAmount float64   `db:"referred_plan_amount"`
	RewardAmount       float64   `db:"reward_amount"`
	Status             string    `db:"status"`
	CreatedAt          time.Time `db:"created_at"`
}

type TaskType string

const (
	TaskTypeVideo  TaskType = "video"
	TaskTypeSurvey TaskType = "survey"
)

const TaskStatusCompleted = "completed"

// TaskCompletion records one finished daily task. TaskDate is the server's
// UTC calendar day.
type TaskCompletion struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	TaskType     TaskType  `db:"task_type"`
	TaskDate     time.Time `db:"task_date"`
	RewardAmount float64   `db:"reward_amount"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

type WithdrawalStatus string

const (
	WithdrawalStatusPending    WithdrawalStatus = "pending"
	WithdrawalStatusProcessing WithdrawalStatus = "processing"
	WithdrawalStatusCompleted  WithdrawalStatus = "completed"
	WithdrawalStatusRejected   WithdrawalStatus = "rejected"
)

type WithdrawalRequest struct {
	ID          int              `db:"id"`
	UserID      int              `db:"user_id"`
	Amount      float64          `db:"amount"`
	TaxAmount   float64          `db:"tax_amount"`
	NetAmount   float64          `db:"net_amount"`
	MpesaNumber string           `db:"mpesa_number"`
	Status      WithdrawalStatus `db:"status"`
	ProcessedBy *int             `db:"processed_by"`
	ProcessedAt *time.Time       `db:"processed_at"`
	Notes       string           `db:"notes"`
	CreatedAt   time.Time        `db:"created_at"`
}

type Plan struct {
	ID             int       `db:"id"`
	Name           string    `db:"name"`
	Price          float64   `db:"price"`
	Currency       string    `db:"currency"`
	DurationMonths int       `db:"duration_months"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID                 int               `db:"id"`
	UserID             int               `db:"user_id"`
	PlanID             int               `db:"plan_id"`
	Status             ApplicationStatus `db:"status"`
	RewardsDistributed bool              `db:"rewards_distributed"`
	CreatedAt          time.Time         `db:"created_at"`
	UpdatedAt          time.Time         `db:"updated_at"`
}

type PaymentSubmissionStatus string

const (
	PaymentSubmissionPending  PaymentSubmissionStatus = "pending"
	PaymentSubmissionVerified PaymentSubmissionStatus = "verified"
	PaymentSubmissionRejected PaymentSubmissionStatus = "rejected"
)

// PaymentSubmission holds the M-Pesa confirmation message a user pastes when
// paying for an application. It is evidence for the admin review, not a
// gateway callback: the message is never parsed.
type PaymentSubmission struct {
	ID            int                     `db:"id"`
	UserID        int                     `db:"user_id"`
	ApplicationID int                     `db:"application_id"`
	MpesaNumber   string                  `db:"mpesa_number"`
	MpesaMessage  string                  `db:"mpesa_message"`
	Amount        float64                 `db:"amount"`
	Status        PaymentSubmissionStatus `db:"status"`
	CreatedAt     time.Time               `db:"created_at"`
	UpdatedAt     time.Time               `db:"updated_at"`
}
