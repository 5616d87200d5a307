package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/model"
)

// ExplanationBuilder packages the five computation stages verbatim from the
// values the pipeline already computed. It never recomputes anything, which
// guarantees the displayed math always matches the live decision.
type ExplanationBuilder struct {
	breakdown model.MathBreakdown
}

// NewExplanationBuilder returns an empty builder.
func NewExplanationBuilder() *ExplanationBuilder {
	return &ExplanationBuilder{}
}

// RecordRevenue captures step 1, the monthly-to-daily conversion.
func (b *ExplanationBuilder) RecordRevenue(monthly, businessDays, daily decimal.Decimal) {
	b.breakdown.Revenue = model.RevenueStep{
		MonthlyTrueRevenue:   monthly,
		BusinessDaysPerMonth: businessDays,
		DailyTrueRevenue:     daily,
		Formula: fmt.Sprintf("%s / %s = %s",
			monthly.StringFixed(2), businessDays, daily.StringFixed(2)),
		Reached: true,
	}
}

// RecordCapacity captures step 2, the withhold-cap arithmetic.
func (b *ExplanationBuilder) RecordCapacity(c model.CapacityState) {
	b.breakdown.Capacity = model.CapacityStep{
		MaxWithholdPercent:     c.MaxWithholdPercent,
		MaxDailyPayment:        c.MaxDailyPayment,
		ExistingDailyPayment:   c.ExistingDailyPayment,
		RemainingDailyCapacity: c.RemainingDailyCapacity,
		CurrentWithholdPercent: c.CurrentWithholdPercent,
		Formula: fmt.Sprintf("%s x %s%% = %s; %s - %s = %s remaining",
			c.DailyTrueRevenue.StringFixed(2), c.MaxWithholdPercent,
			c.MaxDailyPayment.StringFixed(2), c.MaxDailyPayment.StringFixed(2),
			c.ExistingDailyPayment.StringFixed(2), c.RemainingDailyCapacity.StringFixed(2)),
		Reached: true,
	}
}

// RecordMaxFunding captures step 3, the capacity funding ceiling.
func (b *ExplanationBuilder) RecordMaxFunding(termBusinessDays int, factorRate, maxPayback, maxByCapacity decimal.Decimal) {
	b.breakdown.MaxFunding = model.MaxFundingStep{
		TermBusinessDays: termBusinessDays,
		FactorRate:       factorRate,
		MaxPayback:       maxPayback,
		MaxByCapacity:    maxByCapacity,
		Formula: fmt.Sprintf("%d days x remaining capacity = %s payback; %s / %s = %s fundable",
			termBusinessDays, maxPayback.StringFixed(2),
			maxPayback.StringFixed(2), factorRate, maxByCapacity.StringFixed(2)),
		Reached: true,
	}
}

// RecordApproval captures step 4, the min-of-three resolution.
func (b *ExplanationBuilder) RecordApproval(requested decimal.Decimal, res ApprovalResolution) {
	b.breakdown.Approved = model.ApprovedStep{
		RequestedAmount: requested,
		ApprovalPercent: res.ApprovalPercent.Mul(hundred),
		MaxByApproval:   res.MaxByApproval,
		MaxByCapacity:   res.MaxByCapacity,
		ApprovedAmount:  res.ApprovedAmount,
		Formula: fmt.Sprintf("min(%s, %s, %s) = %s",
			res.MaxByCapacity.StringFixed(2), res.MaxByApproval.StringFixed(2),
			requested.StringFixed(2), res.ApprovedAmount.StringFixed(2)),
		Reached: true,
	}
}

// RecordFinal captures step 5, the payment schedule.
func (b *ExplanationBuilder) RecordFinal(approved, factorRate decimal.Decimal, schedule PaymentSchedule) {
	b.breakdown.Final = model.FinalStep{
		ApprovedAmount:       approved,
		FactorRate:           factorRate,
		PaybackAmount:        schedule.PaybackAmount,
		DailyPayment:         schedule.DailyPayment,
		CostOfCapital:        schedule.CostOfCapital,
		CostPercentage:       schedule.CostPercentage,
		TotalWithholdPercent: schedule.Withhold.TotalWithholdPercent,
		Formula: fmt.Sprintf("%s x %s = %s payback; daily %s; cost %s (%s%%)",
			approved.StringFixed(2), factorRate, schedule.PaybackAmount.StringFixed(2),
			schedule.DailyPayment.StringFixed(2), schedule.CostOfCapital.StringFixed(2),
			schedule.CostPercentage),
		Reached: true,
	}
}

// Build returns the assembled breakdown. Steps never recorded stay at their
// zero value with Reached == false.
func (b *ExplanationBuilder) Build() model.MathBreakdown {
	return b.breakdown
}
