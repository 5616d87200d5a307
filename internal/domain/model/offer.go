package model

import (
	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Capacity
// ---------------------------------------------------------------------------

// CapacityState describes how much daily repayment room a merchant has left
// under the withhold cap. All fields derive from daily true revenue and the
// merchant's existing daily obligations.
type CapacityState struct {
	MaxWithholdPercent     decimal.Decimal `json:"max_withhold_percent"`
	DailyTrueRevenue       decimal.Decimal `json:"daily_true_revenue"`
	MaxDailyPayment        decimal.Decimal `json:"max_daily_payment"`
	ExistingDailyPayment   decimal.Decimal `json:"existing_daily_payment"`
	RemainingDailyCapacity decimal.Decimal `json:"remaining_daily_capacity"`
	CurrentWithholdPercent decimal.Decimal `json:"current_withhold_percent"`
	AtCapacity             bool            `json:"at_capacity"`
}

// ---------------------------------------------------------------------------
// Factor rate
// ---------------------------------------------------------------------------

// FactorRateAdjustment is one itemized risk adjustment applied on top of the
// term base rate. Amount is signed; negative values are discounts.
type FactorRateAdjustment struct {
	Reason      string          `json:"reason"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ---------------------------------------------------------------------------
// Offer
// ---------------------------------------------------------------------------

// WithholdBreakdown shows how an offer's daily payment stacks onto the
// merchant's existing obligations relative to the withhold cap.
type WithholdBreakdown struct {
	NewDailyPayment        decimal.Decimal `json:"new_daily_payment"`
	NewWithholdPercent     decimal.Decimal `json:"new_withhold_percent"`
	TotalDailyPayment      decimal.Decimal `json:"total_daily_payment"`
	TotalWithholdPercent   decimal.Decimal `json:"total_withhold_percent"`
	RemainingCapacityAfter decimal.Decimal `json:"remaining_capacity_after"`
}

// Offer is a fully priced advance. Instances are built once per calculation
// and never mutated.
type Offer struct {
	FundingAmount    decimal.Decimal        `json:"funding_amount"`
	FactorRate       decimal.Decimal        `json:"factor_rate"`
	TermMonths       int                    `json:"term_months"`
	TermBusinessDays int                    `json:"term_business_days"`
	PaybackAmount    decimal.Decimal        `json:"payback_amount"`
	DailyPayment     decimal.Decimal        `json:"daily_payment"`
	WeeklyPayment    decimal.Decimal        `json:"weekly_payment"`
	MonthlyPayment   decimal.Decimal        `json:"monthly_payment"`
	CostOfCapital    decimal.Decimal        `json:"cost_of_capital"`
	CostPercentage   decimal.Decimal        `json:"cost_percentage"`
	Position         int                    `json:"position"`
	Adjustments      []FactorRateAdjustment `json:"adjustments,omitempty"`
	Withhold         WithholdBreakdown      `json:"withhold_breakdown"`
}

// ---------------------------------------------------------------------------
// Decline
// ---------------------------------------------------------------------------

// Decline is a terminal, non-error outcome. The explanation is built from the
// same figures that appear in the math breakdown, so a decline justifies
// itself without re-derivation.
type Decline struct {
	Reason      valueobject.DeclineReason
	Explanation string
}

// ---------------------------------------------------------------------------
// Result
// ---------------------------------------------------------------------------

// PricingResult is the complete outcome of one pricing run. Exactly one of
// Offer or Decline is set, matching the decision.
type PricingResult struct {
	Decision  valueobject.Decision
	Offer     *Offer
	Decline   *Decline
	Breakdown MathBreakdown
}
