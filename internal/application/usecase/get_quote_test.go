package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundline/pricing-service/internal/application/dto"
	"github.com/fundline/pricing-service/internal/application/usecase"
	"github.com/fundline/pricing-service/internal/domain/model"
	"github.com/fundline/pricing-service/internal/domain/valueobject"
)

func TestGetQuote_Execute(t *testing.T) {
	t.Run("returns a stored quote", func(t *testing.T) {
		now := time.Now().UTC()
		stored, err := model.NewPricingQuote("tenant-001", "merchant-001", model.OfferRequest{
			RiskScore:  50,
			Volatility: valueobject.VolatilityMedium,
		}, now)
		require.NoError(t, err)

		repo := &mockQuoteRepository{
			findByIDFunc: func(_ context.Context, tenantID, id string) (model.PricingQuote, error) {
				assert.Equal(t, "tenant-001", tenantID)
				assert.Equal(t, stored.ID(), id)
				return stored, nil
			},
		}
		uc := usecase.NewGetQuoteUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.GetQuoteRequest{
			TenantID: "tenant-001",
			QuoteID:  stored.ID(),
		})
		require.NoError(t, err)
		assert.Equal(t, stored.ID(), resp.ID)
		assert.Equal(t, "REQUESTED", resp.Status)
	})

	t.Run("wraps not-found errors", func(t *testing.T) {
		uc := usecase.NewGetQuoteUseCase(&mockQuoteRepository{})

		_, err := uc.Execute(context.Background(), dto.GetQuoteRequest{
			TenantID: "tenant-001",
			QuoteID:  "missing",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrQuoteNotFound))
	})
}
