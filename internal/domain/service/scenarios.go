package service

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/model"
)

// ScenarioConfig names one canned term/rate configuration.
type ScenarioConfig struct {
	Name       string
	TermMonths int
	BaseFactor decimal.Decimal
}

// DefaultScenarioConfigs returns the house comparison set: a short, expensive
// turnaround, the standard mid-term offer, and a longer cheaper one.
func DefaultScenarioConfigs() []ScenarioConfig {
	return []ScenarioConfig{
		{Name: "conservative", TermMonths: 4, BaseFactor: decimal.RequireFromString("1.45")},
		{Name: "standard", TermMonths: 6, BaseFactor: decimal.RequireFromString("1.35")},
		{Name: "aggressive", TermMonths: 9, BaseFactor: decimal.RequireFromString("1.25")},
	}
}

// ScenarioGenerator runs the full pricing pipeline once per configuration,
// holding the merchant inputs fixed. Scenarios are independent: they run
// concurrently and one scenario's failure never blocks another.
type ScenarioGenerator struct {
	engine  *PricingEngine
	configs []ScenarioConfig
}

// NewScenarioGenerator wires a generator over an engine. A nil or empty
// config list falls back to the defaults.
func NewScenarioGenerator(engine *PricingEngine, configs []ScenarioConfig) *ScenarioGenerator {
	if len(configs) == 0 {
		configs = DefaultScenarioConfigs()
	}
	return &ScenarioGenerator{engine: engine, configs: configs}
}

// Generate prices every configured scenario and recommends the fundable one
// with the lowest cost percentage, if any.
func (g *ScenarioGenerator) Generate(req model.OfferRequest) model.ScenarioSet {
	scenarios := make([]model.Scenario, len(g.configs))

	var wg sync.WaitGroup
	for i, cfg := range g.configs {
		wg.Add(1)
		go func(i int, cfg ScenarioConfig) {
			defer wg.Done()
			scenarios[i] = g.run(req, cfg)
		}(i, cfg)
	}
	wg.Wait()

	return model.ScenarioSet{
		Scenarios:   scenarios,
		Recommended: recommend(scenarios),
	}
}

// run prices one scenario: the configuration pins the term and the factor
// rate, everything else comes from the request.
func (g *ScenarioGenerator) run(req model.OfferRequest, cfg ScenarioConfig) model.Scenario {
	scenarioReq := req
	scenarioReq.TermMonths = cfg.TermMonths
	scenarioReq.FactorRateOverride = cfg.BaseFactor

	scenario := model.Scenario{
		Name:       cfg.Name,
		TermMonths: cfg.TermMonths,
		BaseFactor: cfg.BaseFactor,
	}

	result, err := g.engine.CalculateOffer(scenarioReq)
	if err != nil {
		scenario.Explanation = err.Error()
		return scenario
	}
	if result.Decision.IsApproved() {
		scenario.Fundable = true
		scenario.Offer = result.Offer
		return scenario
	}

	scenario.DeclineReason = result.Decline.Reason
	scenario.Explanation = result.Decline.Explanation
	return scenario
}

func recommend(scenarios []model.Scenario) string {
	var (
		best     string
		bestCost decimal.Decimal
	)
	for _, s := range scenarios {
		if !s.Fundable {
			continue
		}
		if best == "" || s.Offer.CostPercentage.LessThan(bestCost) {
			best = s.Name
			bestCost = s.Offer.CostPercentage
		}
	}
	return best
}
