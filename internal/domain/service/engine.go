package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/model"
	"github.com/fundline/pricing-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// PricingEngine – the full offer pipeline
// ---------------------------------------------------------------------------

// PricingEngine runs the capacity-constrained pricing pipeline:
// revenue normalization, capacity, risk-adjusted factor rate, approval
// resolution, schedule, decline checks, and the math breakdown.
//
// The engine is pure and safe for concurrent use: identical input always
// yields identical output.
type PricingEngine struct {
	policy   Policy
	revenue  *RevenueNormalizer
	capacity *CapacityCalculator
	rates    *FactorRateEngine
	approval *ApprovalResolver
	schedule *ScheduleCalculator
	declines *DeclineEvaluator
}

// NewPricingEngine wires the pipeline components around one policy.
func NewPricingEngine(policy Policy) *PricingEngine {
	return &PricingEngine{
		policy:   policy,
		revenue:  NewRevenueNormalizer(policy),
		capacity: NewCapacityCalculator(policy),
		rates:    NewFactorRateEngine(policy),
		approval: NewApprovalResolver(policy),
		schedule: NewScheduleCalculator(policy),
		declines: NewDeclineEvaluator(policy),
	}
}

// Policy returns the policy the engine was built with.
func (e *PricingEngine) Policy() Policy { return e.policy }

// CalculateOffer prices a single request. It returns an error only for
// invalid input; a decline is a valid result, not an error, and carries every
// intermediate figure that was safely computed.
func (e *PricingEngine) CalculateOffer(req model.OfferRequest) (model.PricingResult, error) {
	req = withDefaults(req)
	if err := e.validate(req); err != nil {
		return model.PricingResult{}, err
	}

	builder := NewExplanationBuilder()

	// Step 1: revenue normalization.
	dailyRevenue, err := e.revenue.DailyRevenue(req.MonthlyTrueRevenue)
	if err != nil {
		return model.PricingResult{}, err
	}
	builder.RecordRevenue(req.MonthlyTrueRevenue, e.policy.BusinessDaysPerMonth, dailyRevenue)

	// Step 2: capacity under the withhold cap.
	capacity := e.capacity.Evaluate(dailyRevenue, req.ExistingDailyPayment)
	builder.RecordCapacity(capacity)

	// Hard declines that need no rate or approval arithmetic.
	if decline := e.declines.CheckPosition(req.Position); decline != nil {
		return declinedResult(decline, builder), nil
	}
	if decline := e.declines.CheckRiskScore(req.RiskScore); decline != nil {
		return declinedResult(decline, builder), nil
	}
	if decline := e.declines.CheckCapacity(capacity); decline != nil {
		return declinedResult(decline, builder), nil
	}
	if decline := e.declines.CheckVolatility(req.Volatility, capacity); decline != nil {
		return declinedResult(decline, builder), nil
	}

	// Step 3: factor rate and the capacity funding ceiling.
	factorRate, _, adjustments, err := e.rates.Resolve(req)
	if err != nil {
		return model.PricingResult{}, err
	}
	termDays := e.policy.TermBusinessDays(req.TermMonths)

	resolution := e.approval.Resolve(
		req.RequestedAmount, capacity.RemainingDailyCapacity,
		termDays, factorRate, req.RiskScore,
	)
	builder.RecordMaxFunding(termDays, factorRate, resolution.MaxPayback, resolution.MaxByCapacity)

	// Step 4: min-of-three approval.
	builder.RecordApproval(req.RequestedAmount, resolution)

	if decline := e.declines.CheckMinimum(resolution.ApprovedAmount); decline != nil {
		return declinedResult(decline, builder), nil
	}

	// Step 5: payment schedule. A cap violation here is an internal
	// invariant breach, surfaced as an error rather than a decline.
	schedule, err := e.schedule.Build(resolution.ApprovedAmount, factorRate, termDays, capacity)
	if err != nil {
		return model.PricingResult{}, fmt.Errorf("build schedule: %w", err)
	}
	builder.RecordFinal(resolution.ApprovedAmount, factorRate, schedule)

	decision := valueobject.DecisionApproved
	if !resolution.FullyApproved {
		decision = valueobject.DecisionApprovedReduced
	}

	offer := model.Offer{
		FundingAmount:    resolution.ApprovedAmount,
		FactorRate:       factorRate,
		TermMonths:       req.TermMonths,
		TermBusinessDays: termDays,
		PaybackAmount:    schedule.PaybackAmount,
		DailyPayment:     schedule.DailyPayment,
		WeeklyPayment:    schedule.WeeklyPayment,
		MonthlyPayment:   schedule.MonthlyPayment,
		CostOfCapital:    schedule.CostOfCapital,
		CostPercentage:   schedule.CostPercentage,
		Position:         req.Position,
		Adjustments:      adjustments,
		Withhold:         schedule.Withhold,
	}

	return model.PricingResult{
		Decision:  decision,
		Offer:     &offer,
		Breakdown: builder.Build(),
	}, nil
}

// withDefaults fills the documented request defaults without touching
// explicit values.
func withDefaults(req model.OfferRequest) model.OfferRequest {
	if req.Volatility.IsZero() {
		req.Volatility = valueobject.VolatilityMedium
	}
	return req
}

func (e *PricingEngine) validate(req model.OfferRequest) error {
	switch {
	case req.MonthlyTrueRevenue.LessThanOrEqual(decimal.Zero):
		return fmt.Errorf("%w: monthly true revenue must be positive, got %s",
			model.ErrInvalidInput, req.MonthlyTrueRevenue)
	case req.ExistingDailyPayment.IsNegative():
		return fmt.Errorf("%w: existing daily payment must not be negative, got %s",
			model.ErrInvalidInput, req.ExistingDailyPayment)
	case req.RequestedAmount.LessThan(e.policy.MinFundingAmount) ||
		req.RequestedAmount.GreaterThan(e.policy.MaxFundingAmount):
		return fmt.Errorf("%w: requested amount %s outside policy bounds [%s, %s]",
			model.ErrInvalidInput, req.RequestedAmount,
			e.policy.MinFundingAmount, e.policy.MaxFundingAmount)
	case req.TermMonths < e.policy.MinTermMonths || req.TermMonths > e.policy.MaxTermMonths:
		return fmt.Errorf("%w: term %d months outside policy bounds [%d, %d]",
			model.ErrInvalidInput, req.TermMonths,
			e.policy.MinTermMonths, e.policy.MaxTermMonths)
	case req.Position < 1:
		return fmt.Errorf("%w: position must be at least 1, got %d", model.ErrInvalidInput, req.Position)
	case req.RiskScore < 0 || req.RiskScore > 100:
		return fmt.Errorf("%w: risk score %d outside [0, 100]", model.ErrInvalidInput, req.RiskScore)
	case req.CreditScore != 0 && (req.CreditScore < 300 || req.CreditScore > 850):
		return fmt.Errorf("%w: credit score %d outside [300, 850]", model.ErrInvalidInput, req.CreditScore)
	}
	return nil
}

func declinedResult(decline *model.Decline, builder *ExplanationBuilder) model.PricingResult {
	return model.PricingResult{
		Decision:  valueobject.DecisionDeclined,
		Decline:   decline,
		Breakdown: builder.Build(),
	}
}
