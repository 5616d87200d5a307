package service

import (
	"github.com/shopspring/decimal"
)

// approvalTolerance is the rounding slack when comparing approved against
// requested amounts (one cent).
var approvalTolerance = decimal.RequireFromString("0.01")

// ApprovalResolution holds the min-of-three approval outcome and the
// intermediate ceilings that produced it.
type ApprovalResolution struct {
	ApprovalPercent decimal.Decimal // fraction of requested, 0..1
	MaxPayback      decimal.Decimal
	MaxByCapacity   decimal.Decimal
	MaxByApproval   decimal.Decimal
	ApprovedAmount  decimal.Decimal
	FullyApproved   bool
}

// ApprovalResolver bounds the requested amount by capacity and by the
// risk-score approval percentage. Capacity is a hard ceiling, the approval
// percentage a soft underwriting discount, and the merchant never receives
// more than requested.
type ApprovalResolver struct {
	policy Policy
}

// NewApprovalResolver returns a resolver bound to the given policy.
func NewApprovalResolver(policy Policy) *ApprovalResolver {
	return &ApprovalResolver{policy: policy}
}

// ApprovalPercent maps the internal risk score onto the approval fraction.
// The curve is monotone: full approval at or above the top tier, stepped
// discounts below it. Scores under the policy floor never reach here (they
// hard-decline first); the bottom tier's percentage applies as a floor.
func (r *ApprovalResolver) ApprovalPercent(riskScore int) decimal.Decimal {
	for _, tier := range r.policy.ApprovalTiers {
		if riskScore >= tier.MinRiskScore {
			return tier.Percent
		}
	}
	if n := len(r.policy.ApprovalTiers); n > 0 {
		return r.policy.ApprovalTiers[n-1].Percent
	}
	return decimal.NewFromInt(1)
}

// Resolve applies the min-of-three rule:
//
//	max_payback     = remaining_daily_capacity × term_business_days
//	max_by_capacity = max_payback / factor_rate
//	max_by_approval = requested × approval_percent
//	approved        = min(max_by_capacity, max_by_approval, requested)
func (r *ApprovalResolver) Resolve(
	requested, remainingDailyCapacity decimal.Decimal,
	termBusinessDays int,
	factorRate decimal.Decimal,
	riskScore int,
) ApprovalResolution {
	percent := r.ApprovalPercent(riskScore)

	maxPayback := remainingDailyCapacity.Mul(decimal.NewFromInt(int64(termBusinessDays)))
	maxByCapacity := maxPayback.Div(factorRate)
	maxByApproval := requested.Mul(percent)

	approved := maxByCapacity
	if maxByApproval.LessThan(approved) {
		approved = maxByApproval
	}
	if requested.LessThan(approved) {
		approved = requested
	}
	approved = approved.Round(2)

	return ApprovalResolution{
		ApprovalPercent: percent,
		MaxPayback:      maxPayback,
		MaxByCapacity:   maxByCapacity,
		MaxByApproval:   maxByApproval,
		ApprovedAmount:  approved,
		FullyApproved:   requested.Sub(approved).Abs().LessThanOrEqual(approvalTolerance),
	}
}
