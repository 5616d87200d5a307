package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundline/pricing-service/internal/application/dto"
	"github.com/fundline/pricing-service/internal/application/usecase"
	"github.com/fundline/pricing-service/internal/domain/event"
	"github.com/fundline/pricing-service/internal/domain/model"
	"github.com/fundline/pricing-service/internal/domain/service"
)

// --- Mock implementations ---

type mockQuoteRepository struct {
	saveFunc     func(ctx context.Context, quote model.PricingQuote) error
	findByIDFunc func(ctx context.Context, tenantID, id string) (model.PricingQuote, error)
	savedQuotes  []model.PricingQuote
}

func (m *mockQuoteRepository) Save(ctx context.Context, quote model.PricingQuote) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, quote)
	}
	m.savedQuotes = append(m.savedQuotes, quote)
	return nil
}

func (m *mockQuoteRepository) FindByID(ctx context.Context, tenantID, id string) (model.PricingQuote, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.PricingQuote{}, model.ErrQuoteNotFound
}

func (m *mockQuoteRepository) FindByMerchantID(_ context.Context, _, _ string) ([]model.PricingQuote, error) {
	return nil, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

// --- Tests ---

func newEngine() *service.PricingEngine {
	return service.NewPricingEngine(service.DefaultPolicy())
}

func validPriceRequest() dto.PriceOfferRequest {
	return dto.PriceOfferRequest{
		TenantID:           "tenant-001",
		MerchantID:         "merchant-001",
		MonthlyTrueRevenue: decimal.NewFromInt(100_000),
		RequestedAmount:    decimal.NewFromInt(50_000),
		Position:           1,
		TermMonths:         6,
	}
}

func TestPriceOffer_Execute(t *testing.T) {
	t.Run("prices and persists an approved quote", func(t *testing.T) {
		repo := &mockQuoteRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewPriceOfferUseCase(repo, publisher, newEngine())

		resp, err := uc.Execute(context.Background(), validPriceRequest())
		require.NoError(t, err)

		assert.Equal(t, "PRICED", resp.Status)
		assert.Equal(t, "APPROVED", resp.Decision)
		require.NotNil(t, resp.Offer)
		assert.Equal(t, "50000.00", resp.Offer.FundingAmount.StringFixed(2))
		assert.Equal(t, "519.23", resp.Offer.DailyPayment.StringFixed(2))

		require.Len(t, repo.savedQuotes, 1)
		require.Len(t, publisher.publishedEvents, 2)
		assert.Equal(t, "pricing.quote.requested", publisher.publishedEvents[0].EventType())
		assert.Equal(t, "pricing.quote.priced", publisher.publishedEvents[1].EventType())
	})

	t.Run("risk score defaults to the policy midpoint", func(t *testing.T) {
		repo := &mockQuoteRepository{}
		uc := usecase.NewPriceOfferUseCase(repo, &mockEventPublisher{}, newEngine())

		req := validPriceRequest()
		req.RiskScore = nil

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Decision)
	})

	t.Run("persists a declined quote with its reason", func(t *testing.T) {
		repo := &mockQuoteRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewPriceOfferUseCase(repo, publisher, newEngine())

		req := validPriceRequest()
		req.ExistingDailyPayment = decimal.NewFromInt(950)

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "DECLINED", resp.Status)
		assert.Equal(t, "AT_CAPACITY", resp.DeclineReason)
		assert.NotEmpty(t, resp.DeclineExplanation)
		assert.Nil(t, resp.Offer)

		require.Len(t, publisher.publishedEvents, 2)
		assert.Equal(t, "pricing.quote.declined", publisher.publishedEvents[1].EventType())
	})

	t.Run("rejects an invalid volatility level", func(t *testing.T) {
		uc := usecase.NewPriceOfferUseCase(&mockQuoteRepository{}, &mockEventPublisher{}, newEngine())

		req := validPriceRequest()
		req.VolatilityLevel = "EXTREME"

		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	})

	t.Run("propagates engine validation errors", func(t *testing.T) {
		uc := usecase.NewPriceOfferUseCase(&mockQuoteRepository{}, &mockEventPublisher{}, newEngine())

		req := validPriceRequest()
		req.RequestedAmount = decimal.NewFromInt(1_000)

		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	})

	t.Run("fails when the repository fails", func(t *testing.T) {
		repo := &mockQuoteRepository{
			saveFunc: func(_ context.Context, _ model.PricingQuote) error {
				return fmt.Errorf("connection refused")
			},
		}
		uc := usecase.NewPriceOfferUseCase(repo, &mockEventPublisher{}, newEngine())

		_, err := uc.Execute(context.Background(), validPriceRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save quote")
	})

	t.Run("fails when publishing fails", func(t *testing.T) {
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
				return fmt.Errorf("broker unavailable")
			},
		}
		uc := usecase.NewPriceOfferUseCase(&mockQuoteRepository{}, publisher, newEngine())

		_, err := uc.Execute(context.Background(), validPriceRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish events")
	})
}
