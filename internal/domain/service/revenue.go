package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// RevenueNormalizer – monthly revenue to a daily figure
// ---------------------------------------------------------------------------

// RevenueNormalizer converts normalized monthly revenue into a business-day
// figure using the policy divisor.
type RevenueNormalizer struct {
	policy Policy
}

// NewRevenueNormalizer returns a normalizer bound to the given policy.
func NewRevenueNormalizer(policy Policy) *RevenueNormalizer {
	return &RevenueNormalizer{policy: policy}
}

// DailyRevenue returns monthly / BusinessDaysPerMonth.
func (n *RevenueNormalizer) DailyRevenue(monthly decimal.Decimal) (decimal.Decimal, error) {
	if monthly.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("%w: monthly true revenue must be positive, got %s",
			model.ErrInvalidInput, monthly)
	}
	return monthly.Div(n.policy.BusinessDaysPerMonth), nil
}

// ---------------------------------------------------------------------------
// CapacityCalculator – remaining repayment room under the withhold cap
// ---------------------------------------------------------------------------

// CapacityCalculator computes the binding invariant of the engine: total daily
// payment (existing + new) must never exceed the withhold cap.
type CapacityCalculator struct {
	policy Policy
}

// NewCapacityCalculator returns a calculator bound to the given policy.
func NewCapacityCalculator(policy Policy) *CapacityCalculator {
	return &CapacityCalculator{policy: policy}
}

// Evaluate derives the merchant's capacity state. Pure; no rounding is
// applied so downstream arithmetic keeps full precision.
func (c *CapacityCalculator) Evaluate(dailyRevenue, existingDailyPayment decimal.Decimal) model.CapacityState {
	maxDaily := dailyRevenue.Mul(c.policy.MaxWithholdPercent).Div(hundred)
	remaining := maxDaily.Sub(existingDailyPayment)
	currentPct := existingDailyPayment.Div(dailyRevenue).Mul(hundred)

	return model.CapacityState{
		MaxWithholdPercent:     c.policy.MaxWithholdPercent,
		DailyTrueRevenue:       dailyRevenue,
		MaxDailyPayment:        maxDaily,
		ExistingDailyPayment:   existingDailyPayment,
		RemainingDailyCapacity: remaining,
		CurrentWithholdPercent: currentPct,
		AtCapacity:             remaining.LessThanOrEqual(decimal.Zero),
	}
}
