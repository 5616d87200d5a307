package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/model"
)

// PaymentSchedule is the repayment arithmetic for an approved amount.
// Money figures are rounded to cents; the withhold percentages to two places.
type PaymentSchedule struct {
	PaybackAmount  decimal.Decimal
	DailyPayment   decimal.Decimal
	WeeklyPayment  decimal.Decimal
	MonthlyPayment decimal.Decimal
	CostOfCapital  decimal.Decimal
	CostPercentage decimal.Decimal
	Withhold       model.WithholdBreakdown
}

// ScheduleCalculator derives the payment schedule and withhold breakdown from
// an approved amount, factor rate, and term.
type ScheduleCalculator struct {
	policy Policy
}

// NewScheduleCalculator returns a calculator bound to the given policy.
func NewScheduleCalculator(policy Policy) *ScheduleCalculator {
	return &ScheduleCalculator{policy: policy}
}

// Build computes the schedule. It enforces the withhold cap as a hard
// invariant: any approved schedule whose total daily payment materially
// exceeds the cap is an internal error, not a decline.
func (s *ScheduleCalculator) Build(
	approved, factorRate decimal.Decimal,
	termBusinessDays int,
	capacity model.CapacityState,
) (PaymentSchedule, error) {
	if termBusinessDays <= 0 {
		return PaymentSchedule{}, fmt.Errorf("%w: term business days must be positive", model.ErrInvalidInput)
	}

	payback := approved.Mul(factorRate).Round(2)
	daily := payback.Div(decimal.NewFromInt(int64(termBusinessDays))).Round(2)
	weekly := daily.Mul(five).Round(2)
	monthly := daily.Mul(s.policy.BusinessDaysPerMonth).Round(2)
	cost := payback.Sub(approved)
	costPct := cost.Div(approved).Mul(hundred).Round(2)

	totalDaily := capacity.ExistingDailyPayment.Add(daily)
	remainingAfter := capacity.MaxDailyPayment.Sub(totalDaily)

	// Cent rounding of the daily payment may overshoot the cap by a sliver;
	// anything beyond the tolerance is a broken invariant.
	if remainingAfter.LessThan(approvalTolerance.Neg()) {
		return PaymentSchedule{}, fmt.Errorf(
			"withhold cap exceeded: total daily payment %s over max %s",
			totalDaily.StringFixed(2), capacity.MaxDailyPayment.StringFixed(2))
	}
	if remainingAfter.IsNegative() {
		remainingAfter = decimal.Zero
	}

	return PaymentSchedule{
		PaybackAmount:  payback,
		DailyPayment:   daily,
		WeeklyPayment:  weekly,
		MonthlyPayment: monthly,
		CostOfCapital:  cost,
		CostPercentage: costPct,
		Withhold: model.WithholdBreakdown{
			NewDailyPayment:        daily,
			NewWithholdPercent:     daily.Div(capacity.DailyTrueRevenue).Mul(hundred).Round(2),
			TotalDailyPayment:      totalDaily,
			TotalWithholdPercent:   totalDaily.Div(capacity.DailyTrueRevenue).Mul(hundred).Round(2),
			RemainingCapacityAfter: remainingAfter.Round(2),
		},
	}, nil
}
