package domain

// PlanTier is the fixed price point a user subscribed at. Every reward lookup
// is keyed by it; unknown amounts are rejected at the boundary instead of
// falling through to a zero reward.
type PlanTier int

const (
	Tier500  PlanTier = 500
	Tier1000 PlanTier = 1000
	Tier2000 PlanTier = 2000
	Tier5000 PlanTier = 5000
)

func ParsePlanTier(amount float64) (PlanTier, error) {
	switch amount {
	case 500, 1000, 2000, 5000:
		return PlanTier(amount), nil
	}
	return 0, ErrUnknownPlanTier
}

var videoRewards = map[PlanTier]float64{
	Tier500:  15,
	Tier1000: 30,
	Tier2000: 50,
	Tier5000: 70,
}

var surveyRewards = map[PlanTier]float64{
	Tier500:  10,
	Tier1000: 20,
	Tier2000: 25,
	Tier5000: 30,
}

func TaskRewardAmount(tier PlanTier, taskType TaskType) (float64, error) {
	var table map[PlanTier]float64
	switch taskType {
	case TaskTypeVideo:
		table = videoRewards
	case TaskTypeSurvey:
		table = surveyRewards
	default:
		return 0, ErrUnknownTaskType
	}
	reward, ok := table[tier]
	if !ok {
		return 0, ErrUnknownPlanTier
	}
	return reward, nil
}

// referralRewards is keyed by the referred user's plan tier, indexed by
// level-1. Rewards are computed from the referred plan, not the referrer's,
// so a referrer upgrading their own plan never changes rewards already paid.
var referralRewards = map[PlanTier][3]float64{
	Tier500:  {25, 15, 5},
	Tier1000: {50, 30, 15},
	Tier2000: {100, 75, 50},
	Tier5000: {200, 150, 100},
}

func ReferralRewardAmount(referredTier PlanTier, level int) (float64, error) {
	rewards, ok := referralRewards[referredTier]
	if !ok {
		return 0, ErrUnknownPlanTier
	}
	if level < 1 || level > len(rewards) {
		return 0, ErrUnknownReferralLevel
	}
	return rewards[level-1], nil
}

// baseWithdrawalCaps caps weekly withdrawals independently of the accumulated
// balance: maxWithdrawal = cap + available_balance.
var baseWithdrawalCaps = map[PlanTier]float64{
	Tier500:  125,
	Tier1000: 250,
	Tier2000: 325,
	Tier5000: 500,
}

func BaseWithdrawalCap(tier PlanTier) (float64, error) {
	cap, ok := baseWithdrawalCaps[tier]
	if !ok {
		return 0, ErrUnknownPlanTier
	}
	return cap, nil
}
