package service

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	five    = decimal.NewFromInt(5)
)

// RateAnchor pins a base factor rate to a term length. Rates between anchors
// are linearly interpolated; terms outside the anchor range clamp to the
// nearest end.
type RateAnchor struct {
	TermMonths int
	Rate       decimal.Decimal
}

// ApprovalTier maps a minimum risk score to the fraction of the requested
// amount underwriting will approve. Tiers are ordered by descending
// MinRiskScore and the first matching tier wins.
type ApprovalTier struct {
	MinRiskScore int
	Percent      decimal.Decimal
}

// Policy bundles every underwriting breakpoint the engine consults. The
// concrete values are commercial policy, not math: they ship as defaults and
// may be overridden from configuration.
type Policy struct {
	BusinessDaysPerMonth decimal.Decimal
	MaxWithholdPercent   decimal.Decimal

	MinFactorRate decimal.Decimal
	MaxFactorRate decimal.Decimal

	MinFundingAmount decimal.Decimal
	MaxFundingAmount decimal.Decimal

	MinTermMonths int
	MaxTermMonths int

	MaxPosition int

	// RiskScoreFloor is the hard decline threshold; RiskScoreMidpoint is the
	// neutral point of the 0–100 internal score.
	RiskScoreFloor    int
	RiskScoreMidpoint int

	// RiskRateSpread is the maximum factor-rate movement (either direction)
	// attributable to risk-score distance from the midpoint.
	RiskRateSpread decimal.Decimal

	// HighRiskIndustries maps industry tags to their factor-rate premium.
	HighRiskIndustries map[string]decimal.Decimal

	SubprimeCreditScore   int
	LowCreditScore        int
	PrimeCreditScore      int
	SubprimeCreditPremium decimal.Decimal
	LowCreditPremium      decimal.Decimal
	PrimeCreditDiscount   decimal.Decimal

	HighVolatilityPremium decimal.Decimal
	LowVolatilityDiscount decimal.Decimal

	// PositionPremium applies per position beyond the first;
	// SeniorStackPremium adds on top for each position beyond the second.
	PositionPremium    decimal.Decimal
	SeniorStackPremium decimal.Decimal

	// ThinCapacityRatio declines high-volatility merchants whose remaining
	// capacity is below this fraction of the maximum daily payment.
	ThinCapacityRatio decimal.Decimal

	BaseRateAnchors []RateAnchor
	ApprovalTiers   []ApprovalTier
}

// DefaultPolicy returns the house underwriting policy.
func DefaultPolicy() Policy {
	return Policy{
		BusinessDaysPerMonth: decimal.RequireFromString("21.67"),
		MaxWithholdPercent:   decimal.NewFromInt(20),

		MinFactorRate: decimal.RequireFromString("1.10"),
		MaxFactorRate: decimal.RequireFromString("1.75"),

		MinFundingAmount: decimal.NewFromInt(5_000),
		MaxFundingAmount: decimal.NewFromInt(500_000),

		MinTermMonths: 2,
		MaxTermMonths: 12,

		MaxPosition: 4,

		RiskScoreFloor:    20,
		RiskScoreMidpoint: 50,
		RiskRateSpread:    decimal.RequireFromString("0.10"),

		HighRiskIndustries: map[string]decimal.Decimal{
			"restaurant":   decimal.RequireFromString("0.08"),
			"construction": decimal.RequireFromString("0.08"),
			"trucking":     decimal.RequireFromString("0.10"),
			"nightlife":    decimal.RequireFromString("0.10"),
			"retail":       decimal.RequireFromString("0.05"),
			"hospitality":  decimal.RequireFromString("0.05"),
		},

		SubprimeCreditScore:   550,
		LowCreditScore:        600,
		PrimeCreditScore:      720,
		SubprimeCreditPremium: decimal.RequireFromString("0.10"),
		LowCreditPremium:      decimal.RequireFromString("0.05"),
		PrimeCreditDiscount:   decimal.RequireFromString("-0.03"),

		HighVolatilityPremium: decimal.RequireFromString("0.07"),
		LowVolatilityDiscount: decimal.RequireFromString("-0.02"),

		PositionPremium:    decimal.RequireFromString("0.05"),
		SeniorStackPremium: decimal.RequireFromString("0.10"),

		ThinCapacityRatio: decimal.RequireFromString("0.15"),

		BaseRateAnchors: []RateAnchor{
			{TermMonths: 4, Rate: decimal.RequireFromString("1.45")},
			{TermMonths: 6, Rate: decimal.RequireFromString("1.35")},
			{TermMonths: 9, Rate: decimal.RequireFromString("1.25")},
		},

		ApprovalTiers: []ApprovalTier{
			{MinRiskScore: 50, Percent: decimal.RequireFromString("1.00")},
			{MinRiskScore: 35, Percent: decimal.RequireFromString("0.85")},
			{MinRiskScore: 20, Percent: decimal.RequireFromString("0.65")},
		},
	}
}

// TermBusinessDays converts a term in months to whole business days.
func (p Policy) TermBusinessDays(termMonths int) int {
	days := p.BusinessDaysPerMonth.Mul(decimal.NewFromInt(int64(termMonths)))
	return int(days.Round(0).IntPart())
}
