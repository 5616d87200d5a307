package port

import (
	"context"

	"github.com/fundline/pricing-service/internal/domain/event"
	"github.com/fundline/pricing-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// QuoteRepository persists and retrieves pricing quotes.
type QuoteRepository interface {
	Save(ctx context.Context, quote model.PricingQuote) error
	FindByID(ctx context.Context, tenantID, id string) (model.PricingQuote, error)
	FindByMerchantID(ctx context.Context, tenantID, merchantID string) ([]model.PricingQuote, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
