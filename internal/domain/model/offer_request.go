package model

import (
	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/valueobject"
)

// OfferRequest carries the normalized inputs for a single pricing run.
//
// MonthlyTrueRevenue and ExistingDailyPayment come from the upstream statement
// analysis pipeline; both are opaque money values here and never recomputed.
type OfferRequest struct {
	MonthlyTrueRevenue   decimal.Decimal
	ExistingDailyPayment decimal.Decimal
	RequestedAmount      decimal.Decimal
	Position             int
	TermMonths           int

	// FactorRateOverride, when non-zero, bypasses risk adjustment entirely.
	// It must still fall inside the policy clamp band.
	FactorRateOverride decimal.Decimal

	// Industry is an enumerated tag; empty means unknown.
	Industry string

	// CreditScore is 300–850; zero means the bureau pull was unavailable.
	CreditScore int

	// RiskScore is the internal 0–100 score, higher meaning lower risk.
	RiskScore int

	Volatility valueobject.Volatility
}

// HasFactorOverride reports whether the caller pinned the factor rate.
func (r OfferRequest) HasFactorOverride() bool {
	return !r.FactorRateOverride.IsZero()
}
