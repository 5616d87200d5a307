package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/model"
	"github.com/fundline/pricing-service/internal/domain/valueobject"
)

// DeclineEvaluator checks the hard-decline policy rules. Each check returns
// nil when the rule passes, or a Decline whose explanation is built from the
// same figures the math breakdown shows.
type DeclineEvaluator struct {
	policy Policy
}

// NewDeclineEvaluator returns an evaluator bound to the given policy.
func NewDeclineEvaluator(policy Policy) *DeclineEvaluator {
	return &DeclineEvaluator{policy: policy}
}

// CheckPosition declines stacks beyond the policy maximum.
func (d *DeclineEvaluator) CheckPosition(position int) *model.Decline {
	if position <= d.policy.MaxPosition {
		return nil
	}
	return &model.Decline{
		Reason: valueobject.DeclineTooManyPositions,
		Explanation: fmt.Sprintf("advance position %d exceeds the policy maximum of %d concurrent positions",
			position, d.policy.MaxPosition),
	}
}

// CheckRiskScore declines scores under the hard floor regardless of any
// other factor.
func (d *DeclineEvaluator) CheckRiskScore(riskScore int) *model.Decline {
	if riskScore >= d.policy.RiskScoreFloor {
		return nil
	}
	return &model.Decline{
		Reason: valueobject.DeclineLowRiskScore,
		Explanation: fmt.Sprintf("risk score %d is below the minimum fundable score of %d",
			riskScore, d.policy.RiskScoreFloor),
	}
}

// CheckCapacity declines merchants with no remaining daily payment room.
func (d *DeclineEvaluator) CheckCapacity(capacity model.CapacityState) *model.Decline {
	if !capacity.AtCapacity {
		return nil
	}
	return &model.Decline{
		Reason: valueobject.DeclineAtCapacity,
		Explanation: fmt.Sprintf(
			"existing daily payment %s consumes the full %s%% withhold cap (max daily payment %s); remaining capacity %s",
			capacity.ExistingDailyPayment.StringFixed(2),
			capacity.MaxWithholdPercent,
			capacity.MaxDailyPayment.StringFixed(2),
			capacity.RemainingDailyCapacity.StringFixed(2)),
	}
}

// CheckVolatility declines high-volatility merchants whose remaining
// capacity is already thin.
func (d *DeclineEvaluator) CheckVolatility(volatility valueobject.Volatility, capacity model.CapacityState) *model.Decline {
	if !volatility.Equal(valueobject.VolatilityHigh) {
		return nil
	}
	threshold := capacity.MaxDailyPayment.Mul(d.policy.ThinCapacityRatio)
	if capacity.RemainingDailyCapacity.GreaterThanOrEqual(threshold) {
		return nil
	}
	return &model.Decline{
		Reason: valueobject.DeclineHighVolatility,
		Explanation: fmt.Sprintf(
			"high revenue volatility with thin remaining capacity: %s left of a %s max daily payment (threshold %s)",
			capacity.RemainingDailyCapacity.StringFixed(2),
			capacity.MaxDailyPayment.StringFixed(2),
			threshold.StringFixed(2)),
	}
}

// CheckMinimum declines approvals that would fall under the minimum fundable
// amount.
func (d *DeclineEvaluator) CheckMinimum(approved decimal.Decimal) *model.Decline {
	if approved.GreaterThanOrEqual(d.policy.MinFundingAmount) {
		return nil
	}
	return &model.Decline{
		Reason: valueobject.DeclineBelowMinimum,
		Explanation: fmt.Sprintf("approvable amount %s is below the minimum fundable amount %s",
			approved.StringFixed(2), d.policy.MinFundingAmount.StringFixed(2)),
	}
}
