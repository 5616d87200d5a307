package usecase

import (
	"context"

	"github.com/fundline/pricing-service/internal/application/dto"
	"github.com/fundline/pricing-service/internal/domain/service"
)

// GenerateScenariosUseCase runs the side-by-side scenario comparison. The
// comparison is ephemeral: nothing is persisted and no events are published.
type GenerateScenariosUseCase struct {
	generator *service.ScenarioGenerator
	engine    *service.PricingEngine
}

// NewGenerateScenariosUseCase wires dependencies.
func NewGenerateScenariosUseCase(generator *service.ScenarioGenerator, engine *service.PricingEngine) *GenerateScenariosUseCase {
	return &GenerateScenariosUseCase{generator: generator, engine: engine}
}

// Execute prices every configured scenario for the given merchant inputs.
func (uc *GenerateScenariosUseCase) Execute(_ context.Context, req dto.GenerateScenariosRequest) (dto.ScenarioSetResponse, error) {
	policy := uc.engine.Policy()

	offerReq, err := toOfferRequest(policy, offerInputs{
		MonthlyTrueRevenue:   req.MonthlyTrueRevenue,
		ExistingDailyPayment: req.ExistingDailyPayment,
		RequestedAmount:      req.RequestedAmount,
		Position:             req.Position,
		TermMonths:           policy.MinTermMonths, // replaced per scenario
		Industry:             req.Industry,
		CreditScore:          req.CreditScore,
		RiskScore:            req.RiskScore,
		VolatilityLevel:      req.VolatilityLevel,
	})
	if err != nil {
		return dto.ScenarioSetResponse{}, err
	}

	set := uc.generator.Generate(offerReq)

	scenarios := make(map[string]dto.ScenarioResponse, len(set.Scenarios))
	for _, s := range set.Scenarios {
		resp := dto.ScenarioResponse{
			Name:        s.Name,
			TermMonths:  s.TermMonths,
			BaseFactor:  s.BaseFactor,
			Fundable:    s.Fundable,
			Offer:       toOfferResponse(s.Offer),
			Explanation: s.Explanation,
		}
		if !s.DeclineReason.IsZero() {
			resp.DeclineReason = s.DeclineReason.String()
		}
		scenarios[s.Name] = resp
	}

	return dto.ScenarioSetResponse{
		Scenarios:   scenarios,
		Recommended: set.Recommended,
	}, nil
}
