package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/application/dto"
	"github.com/fundline/pricing-service/internal/domain/model"
	"github.com/fundline/pricing-service/internal/domain/service"
	"github.com/fundline/pricing-service/internal/domain/valueobject"
)

// offerInputs collects the raw request fields shared by the pricing use
// cases before domain defaults apply.
type offerInputs struct {
	MonthlyTrueRevenue   decimal.Decimal
	ExistingDailyPayment decimal.Decimal
	RequestedAmount      decimal.Decimal
	Position             int
	TermMonths           int
	FactorRate           decimal.Decimal
	Industry             string
	CreditScore          int
	RiskScore            *int
	VolatilityLevel      string
}

// toOfferRequest maps raw inputs onto a domain request, applying the
// documented defaults: risk score falls back to the policy midpoint and the
// volatility level to medium.
func toOfferRequest(policy service.Policy, in offerInputs) (model.OfferRequest, error) {
	volatility, err := valueobject.NewVolatility(in.VolatilityLevel)
	if err != nil {
		return model.OfferRequest{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	riskScore := policy.RiskScoreMidpoint
	if in.RiskScore != nil {
		riskScore = *in.RiskScore
	}

	return model.OfferRequest{
		MonthlyTrueRevenue:   in.MonthlyTrueRevenue,
		ExistingDailyPayment: in.ExistingDailyPayment,
		RequestedAmount:      in.RequestedAmount,
		Position:             in.Position,
		TermMonths:           in.TermMonths,
		FactorRateOverride:   in.FactorRate,
		Industry:             in.Industry,
		CreditScore:          in.CreditScore,
		RiskScore:            riskScore,
		Volatility:           volatility,
	}, nil
}

func toOfferResponse(offer *model.Offer) *dto.OfferResponse {
	if offer == nil {
		return nil
	}
	adjustments := make([]dto.AdjustmentResponse, 0, len(offer.Adjustments))
	for _, adj := range offer.Adjustments {
		adjustments = append(adjustments, dto.AdjustmentResponse{
			Reason:      adj.Reason,
			Description: adj.Description,
			Amount:      adj.Amount,
		})
	}
	if len(adjustments) == 0 {
		adjustments = nil
	}
	return &dto.OfferResponse{
		FundingAmount:    offer.FundingAmount,
		FactorRate:       offer.FactorRate,
		TermMonths:       offer.TermMonths,
		TermBusinessDays: offer.TermBusinessDays,
		PaybackAmount:    offer.PaybackAmount,
		DailyPayment:     offer.DailyPayment,
		WeeklyPayment:    offer.WeeklyPayment,
		MonthlyPayment:   offer.MonthlyPayment,
		CostOfCapital:    offer.CostOfCapital,
		CostPercentage:   offer.CostPercentage,
		Position:         offer.Position,
		Adjustments:      adjustments,
		Withhold: dto.WithholdResponse{
			NewDailyPayment:        offer.Withhold.NewDailyPayment,
			NewWithholdPercent:     offer.Withhold.NewWithholdPercent,
			TotalDailyPayment:      offer.Withhold.TotalDailyPayment,
			TotalWithholdPercent:   offer.Withhold.TotalWithholdPercent,
			RemainingCapacityAfter: offer.Withhold.RemainingCapacityAfter,
		},
	}
}

func toQuoteResponse(quote model.PricingQuote) dto.QuoteResponse {
	resp := dto.QuoteResponse{
		ID:         quote.ID(),
		TenantID:   quote.TenantID(),
		MerchantID: quote.MerchantID(),
		Status:     quote.Status().String(),
		Decision:   quote.Decision().String(),
		Offer:      toOfferResponse(quote.Offer()),
		Breakdown:  quote.Breakdown(),
		CreatedAt:  quote.CreatedAt(),
		UpdatedAt:  quote.UpdatedAt(),
	}
	if decline := quote.DeclineInfo(); decline != nil {
		resp.DeclineReason = decline.Reason.String()
		resp.DeclineExplanation = decline.Explanation
	}
	return resp
}
