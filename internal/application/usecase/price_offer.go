package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fundline/pricing-service/internal/application/dto"
	"github.com/fundline/pricing-service/internal/domain/model"
	"github.com/fundline/pricing-service/internal/domain/port"
	"github.com/fundline/pricing-service/internal/domain/service"
)

// PriceOfferUseCase orchestrates a single pricing run: build the quote
// aggregate, run the engine, record the outcome, persist, and publish.
type PriceOfferUseCase struct {
	quoteRepo port.QuoteRepository
	publisher port.EventPublisher
	engine    *service.PricingEngine
}

// NewPriceOfferUseCase wires dependencies.
func NewPriceOfferUseCase(
	quoteRepo port.QuoteRepository,
	publisher port.EventPublisher,
	engine *service.PricingEngine,
) *PriceOfferUseCase {
	return &PriceOfferUseCase{
		quoteRepo: quoteRepo,
		publisher: publisher,
		engine:    engine,
	}
}

// Execute prices an offer request and returns the stored quote.
func (uc *PriceOfferUseCase) Execute(ctx context.Context, req dto.PriceOfferRequest) (dto.QuoteResponse, error) {
	now := time.Now().UTC()

	offerReq, err := toOfferRequest(uc.engine.Policy(), offerInputs{
		MonthlyTrueRevenue:   req.MonthlyTrueRevenue,
		ExistingDailyPayment: req.ExistingDailyPayment,
		RequestedAmount:      req.RequestedAmount,
		Position:             req.Position,
		TermMonths:           req.TermMonths,
		FactorRate:           req.FactorRate,
		Industry:             req.Industry,
		CreditScore:          req.CreditScore,
		RiskScore:            req.RiskScore,
		VolatilityLevel:      req.VolatilityLevel,
	})
	if err != nil {
		return dto.QuoteResponse{}, err
	}

	// 1. Create the quote aggregate.
	quote, err := model.NewPricingQuote(req.TenantID, req.MerchantID, offerReq, now)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("create quote: %w", err)
	}

	// 2. Run the pricing engine.
	result, err := uc.engine.CalculateOffer(offerReq)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("price offer: %w", err)
	}

	// 3. Apply the decision.
	if result.Decision.IsApproved() {
		quote, err = quote.MarkPriced(result.Decision, *result.Offer, result.Breakdown, now)
	} else {
		quote, err = quote.MarkDeclined(*result.Decline, result.Breakdown, now)
	}
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("apply decision: %w", err)
	}

	// 4. Persist.
	if err := uc.quoteRepo.Save(ctx, quote); err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("save quote: %w", err)
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, quote.DomainEvents()...); err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toQuoteResponse(quote), nil
}
