package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// PriceOfferRequest carries the data needed to price a single MCA offer.
// MonthlyTrueRevenue and ExistingDailyPayment come from the upstream
// statement-analysis pipeline.
type PriceOfferRequest struct {
	TenantID             string          `json:"tenant_id"`
	MerchantID           string          `json:"merchant_id"`
	MonthlyTrueRevenue   decimal.Decimal `json:"monthly_true_revenue"`
	ExistingDailyPayment decimal.Decimal `json:"existing_daily_payment"`
	RequestedAmount      decimal.Decimal `json:"requested_amount"`
	Position             int             `json:"position"`
	TermMonths           int             `json:"term_months"`
	FactorRate           decimal.Decimal `json:"factor_rate,omitempty"`
	Industry             string          `json:"industry,omitempty"`
	CreditScore          int             `json:"credit_score,omitempty"`
	RiskScore            *int            `json:"risk_score,omitempty"`
	VolatilityLevel      string          `json:"volatility_level,omitempty"`
}

// GenerateScenariosRequest carries the shared inputs for a scenario
// comparison; term and factor rate come from each scenario configuration.
type GenerateScenariosRequest struct {
	TenantID             string          `json:"tenant_id"`
	MerchantID           string          `json:"merchant_id"`
	MonthlyTrueRevenue   decimal.Decimal `json:"monthly_true_revenue"`
	ExistingDailyPayment decimal.Decimal `json:"existing_daily_payment"`
	RequestedAmount      decimal.Decimal `json:"requested_amount"`
	Position             int             `json:"position"`
	Industry             string          `json:"industry,omitempty"`
	CreditScore          int             `json:"credit_score,omitempty"`
	RiskScore            *int            `json:"risk_score,omitempty"`
	VolatilityLevel      string          `json:"volatility_level,omitempty"`
}

// GetQuoteRequest identifies a stored quote to retrieve.
type GetQuoteRequest struct {
	TenantID string `json:"tenant_id"`
	QuoteID  string `json:"quote_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// AdjustmentResponse is one itemized factor-rate adjustment.
type AdjustmentResponse struct {
	Reason      string          `json:"reason"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// WithholdResponse shows how the new daily payment stacks against the cap.
type WithholdResponse struct {
	NewDailyPayment        decimal.Decimal `json:"new_daily_payment"`
	NewWithholdPercent     decimal.Decimal `json:"new_withhold_percent"`
	TotalDailyPayment      decimal.Decimal `json:"total_daily_payment"`
	TotalWithholdPercent   decimal.Decimal `json:"total_withhold_percent"`
	RemainingCapacityAfter decimal.Decimal `json:"remaining_capacity_after"`
}

// OfferResponse is the external representation of a priced offer.
type OfferResponse struct {
	FundingAmount    decimal.Decimal      `json:"funding_amount"`
	FactorRate       decimal.Decimal      `json:"factor_rate"`
	TermMonths       int                  `json:"term_months"`
	TermBusinessDays int                  `json:"term_business_days"`
	PaybackAmount    decimal.Decimal      `json:"payback_amount"`
	DailyPayment     decimal.Decimal      `json:"daily_payment"`
	WeeklyPayment    decimal.Decimal      `json:"weekly_payment"`
	MonthlyPayment   decimal.Decimal      `json:"monthly_payment"`
	CostOfCapital    decimal.Decimal      `json:"cost_of_capital"`
	CostPercentage   decimal.Decimal      `json:"cost_percentage"`
	Position         int                  `json:"position"`
	Adjustments      []AdjustmentResponse `json:"adjustments,omitempty"`
	Withhold         WithholdResponse     `json:"withhold_breakdown"`
}

// QuoteResponse is the external representation of a pricing quote.
type QuoteResponse struct {
	ID                 string              `json:"id"`
	TenantID           string              `json:"tenant_id"`
	MerchantID         string              `json:"merchant_id"`
	Status             string              `json:"status"`
	Decision           string              `json:"decision"`
	Offer              *OfferResponse      `json:"offer,omitempty"`
	DeclineReason      string              `json:"decline_reason,omitempty"`
	DeclineExplanation string              `json:"decline_explanation,omitempty"`
	Breakdown          model.MathBreakdown `json:"math_breakdown"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// ScenarioResponse is one scenario of a side-by-side comparison.
type ScenarioResponse struct {
	Name          string          `json:"name"`
	TermMonths    int             `json:"term_months"`
	BaseFactor    decimal.Decimal `json:"base_factor"`
	Fundable      bool            `json:"fundable"`
	Offer         *OfferResponse  `json:"offer,omitempty"`
	DeclineReason string          `json:"decline_reason,omitempty"`
	Explanation   string          `json:"explanation,omitempty"`
}

// ScenarioSetResponse is the full comparison keyed by scenario name.
type ScenarioSetResponse struct {
	Scenarios   map[string]ScenarioResponse `json:"scenarios"`
	Recommended string                      `json:"recommended,omitempty"`
}
