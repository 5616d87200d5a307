package service

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/model"
	"github.com/fundline/pricing-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// FactorRateEngine – term base rate plus itemized risk adjustments
// ---------------------------------------------------------------------------

// FactorRateEngine derives the factor rate for an offer: a term-anchored base
// rate folded with an ordered list of additive risk adjustments, clamped to
// the policy band.
type FactorRateEngine struct {
	policy  Policy
	anchors []RateAnchor
}

// NewFactorRateEngine returns an engine bound to the given policy.
func NewFactorRateEngine(policy Policy) *FactorRateEngine {
	anchors := make([]RateAnchor, len(policy.BaseRateAnchors))
	copy(anchors, policy.BaseRateAnchors)
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].TermMonths < anchors[j].TermMonths })
	return &FactorRateEngine{policy: policy, anchors: anchors}
}

// BaseRate returns the term-indexed base factor rate. Shorter terms carry a
// higher base rate; terms between anchors interpolate linearly and terms
// outside the anchor range clamp to the nearest end.
func (e *FactorRateEngine) BaseRate(termMonths int) decimal.Decimal {
	if len(e.anchors) == 0 {
		return e.policy.MinFactorRate
	}
	first, last := e.anchors[0], e.anchors[len(e.anchors)-1]
	if termMonths <= first.TermMonths {
		return first.Rate
	}
	if termMonths >= last.TermMonths {
		return last.Rate
	}
	for i := 1; i < len(e.anchors); i++ {
		lo, hi := e.anchors[i-1], e.anchors[i]
		if termMonths > hi.TermMonths {
			continue
		}
		span := decimal.NewFromInt(int64(hi.TermMonths - lo.TermMonths))
		offset := decimal.NewFromInt(int64(termMonths - lo.TermMonths))
		return lo.Rate.Add(hi.Rate.Sub(lo.Rate).Mul(offset).Div(span))
	}
	return last.Rate
}

// Adjustments computes the ordered, itemized risk adjustments for a request.
// Neutral factors produce no entry.
func (e *FactorRateEngine) Adjustments(req model.OfferRequest) []model.FactorRateAdjustment {
	var adjustments []model.FactorRateAdjustment

	if premium, ok := e.policy.HighRiskIndustries[req.Industry]; ok {
		adjustments = append(adjustments, model.FactorRateAdjustment{
			Reason:      "industry_risk",
			Description: fmt.Sprintf("industry %q is on the elevated-risk list", req.Industry),
			Amount:      premium,
		})
	}

	if req.CreditScore > 0 {
		switch {
		case req.CreditScore < e.policy.SubprimeCreditScore:
			adjustments = append(adjustments, model.FactorRateAdjustment{
				Reason:      "subprime_credit",
				Description: fmt.Sprintf("credit score %d below %d", req.CreditScore, e.policy.SubprimeCreditScore),
				Amount:      e.policy.SubprimeCreditPremium,
			})
		case req.CreditScore < e.policy.LowCreditScore:
			adjustments = append(adjustments, model.FactorRateAdjustment{
				Reason:      "low_credit",
				Description: fmt.Sprintf("credit score %d below %d", req.CreditScore, e.policy.LowCreditScore),
				Amount:      e.policy.LowCreditPremium,
			})
		case req.CreditScore >= e.policy.PrimeCreditScore:
			adjustments = append(adjustments, model.FactorRateAdjustment{
				Reason:      "prime_credit",
				Description: fmt.Sprintf("credit score %d at or above %d", req.CreditScore, e.policy.PrimeCreditScore),
				Amount:      e.policy.PrimeCreditDiscount,
			})
		}
	}

	if req.RiskScore != e.policy.RiskScoreMidpoint {
		// Signed distance from the midpoint, scaled to the policy spread.
		// Scores below the midpoint add premium; above it, discount.
		distance := decimal.NewFromInt(int64(e.policy.RiskScoreMidpoint - req.RiskScore))
		amount := e.policy.RiskRateSpread.Mul(distance).Div(decimal.NewFromInt(int64(e.policy.RiskScoreMidpoint)))
		adjustments = append(adjustments, model.FactorRateAdjustment{
			Reason:      "risk_score",
			Description: fmt.Sprintf("risk score %d vs midpoint %d", req.RiskScore, e.policy.RiskScoreMidpoint),
			Amount:      amount,
		})
	}

	switch {
	case req.Volatility.Equal(valueobject.VolatilityHigh):
		adjustments = append(adjustments, model.FactorRateAdjustment{
			Reason:      "high_volatility",
			Description: "high revenue volatility",
			Amount:      e.policy.HighVolatilityPremium,
		})
	case req.Volatility.Equal(valueobject.VolatilityLow):
		adjustments = append(adjustments, model.FactorRateAdjustment{
			Reason:      "low_volatility",
			Description: "low revenue volatility",
			Amount:      e.policy.LowVolatilityDiscount,
		})
	}

	if req.Position > 1 {
		extra := decimal.NewFromInt(int64(req.Position - 1))
		amount := e.policy.PositionPremium.Mul(extra)
		if req.Position > 2 {
			senior := decimal.NewFromInt(int64(req.Position - 2))
			amount = amount.Add(e.policy.SeniorStackPremium.Mul(senior))
		}
		adjustments = append(adjustments, model.FactorRateAdjustment{
			Reason:      "position_stacking",
			Description: fmt.Sprintf("advance position %d", req.Position),
			Amount:      amount,
		})
	}

	return adjustments
}

// Resolve returns the final clamped factor rate, the base rate it started
// from, and the ordered adjustments that were folded in. A caller-supplied
// override bypasses adjustment but must sit inside the clamp band.
func (e *FactorRateEngine) Resolve(req model.OfferRequest) (final, base decimal.Decimal, adjustments []model.FactorRateAdjustment, err error) {
	if req.HasFactorOverride() {
		override := req.FactorRateOverride
		if override.LessThan(e.policy.MinFactorRate) || override.GreaterThan(e.policy.MaxFactorRate) {
			return decimal.Decimal{}, decimal.Decimal{}, nil, fmt.Errorf(
				"%w: factor rate override %s outside policy band [%s, %s]",
				model.ErrInvalidInput, override, e.policy.MinFactorRate, e.policy.MaxFactorRate)
		}
		return override, override, nil, nil
	}

	base = e.BaseRate(req.TermMonths)
	adjustments = e.Adjustments(req)

	final = base
	for _, adj := range adjustments {
		final = final.Add(adj.Amount)
	}
	final = clamp(final, e.policy.MinFactorRate, e.policy.MaxFactorRate)
	return final, base, adjustments, nil
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
