package model

import "github.com/shopspring/decimal"

// MathBreakdown is the five-step numeric trace behind a pricing decision.
//
// Every figure is copied verbatim from the live calculation; nothing here is
// re-derived. A step that was never reached (for example after an early
// decline) is left at its zero value and flagged via Reached.
type MathBreakdown struct {
	Revenue    RevenueStep    `json:"revenue"`
	Capacity   CapacityStep   `json:"capacity"`
	MaxFunding MaxFundingStep `json:"max_funding"`
	Approved   ApprovedStep   `json:"approved"`
	Final      FinalStep      `json:"final"`
}

// RevenueStep records the monthly-to-daily revenue conversion.
type RevenueStep struct {
	MonthlyTrueRevenue   decimal.Decimal `json:"monthly_true_revenue"`
	BusinessDaysPerMonth decimal.Decimal `json:"business_days_per_month"`
	DailyTrueRevenue     decimal.Decimal `json:"daily_true_revenue"`
	Formula              string          `json:"formula"`
	Reached              bool            `json:"reached"`
}

// CapacityStep records the withhold-cap arithmetic.
type CapacityStep struct {
	MaxWithholdPercent     decimal.Decimal `json:"max_withhold_percent"`
	MaxDailyPayment        decimal.Decimal `json:"max_daily_payment"`
	ExistingDailyPayment   decimal.Decimal `json:"existing_daily_payment"`
	RemainingDailyCapacity decimal.Decimal `json:"remaining_daily_capacity"`
	CurrentWithholdPercent decimal.Decimal `json:"current_withhold_percent"`
	Formula                string          `json:"formula"`
	Reached                bool            `json:"reached"`
}

// MaxFundingStep records how the capacity ceiling translates into a maximum
// fundable amount for the chosen term and factor rate.
type MaxFundingStep struct {
	TermBusinessDays int             `json:"term_business_days"`
	FactorRate       decimal.Decimal `json:"factor_rate"`
	MaxPayback       decimal.Decimal `json:"max_payback"`
	MaxByCapacity    decimal.Decimal `json:"max_by_capacity"`
	Formula          string          `json:"formula"`
	Reached          bool            `json:"reached"`
}

// ApprovedStep records the min-of-three approval resolution.
type ApprovedStep struct {
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	ApprovalPercent decimal.Decimal `json:"approval_percent"`
	MaxByApproval   decimal.Decimal `json:"max_by_approval"`
	MaxByCapacity   decimal.Decimal `json:"max_by_capacity"`
	ApprovedAmount  decimal.Decimal `json:"approved_amount"`
	Formula         string          `json:"formula"`
	Reached         bool            `json:"reached"`
}

// FinalStep records the payment schedule derived from the approved amount.
type FinalStep struct {
	ApprovedAmount       decimal.Decimal `json:"approved_amount"`
	FactorRate           decimal.Decimal `json:"factor_rate"`
	PaybackAmount        decimal.Decimal `json:"payback_amount"`
	DailyPayment         decimal.Decimal `json:"daily_payment"`
	CostOfCapital        decimal.Decimal `json:"cost_of_capital"`
	CostPercentage       decimal.Decimal `json:"cost_percentage"`
	TotalWithholdPercent decimal.Decimal `json:"total_withhold_percent"`
	Formula              string          `json:"formula"`
	Reached              bool            `json:"reached"`
}
