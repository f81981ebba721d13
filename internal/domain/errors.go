package domain

import "errors"

var (
	ErrNoActivePlan            = errors.New("no active subscription plan")
	ErrUnknownPlanTier         = errors.New("unknown plan tier")
	ErrUnknownTaskType         = errors.New("unknown task type")
	ErrUnknownReferralLevel    = errors.New("unknown referral level")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrExceedsMaxWithdrawal    = errors.New("amount exceeds max withdrawal")
	ErrOutsideWithdrawalWindow = errors.New("outside withdrawal window")
	ErrDuplicateReference      = errors.New("reference key already recorded")
	ErrInvalidTransition       = errors.New("invalid withdrawal status transition")
)
