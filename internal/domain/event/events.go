package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Event envelope
// ---------------------------------------------------------------------------

// DomainEvent is the interface all pricing domain events implement.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	AggregateType() string
	TenantID() string
	OccurredAt() time.Time
}

// BaseEvent provides the shared envelope for all domain events. Fields are
// exported so events serialize cleanly when published.
type BaseEvent struct {
	ID            string    `json:"event_id"`
	Type          string    `json:"event_type"`
	Aggregate     string    `json:"aggregate_id"`
	AggregateKind string    `json:"aggregate_type"`
	Tenant        string    `json:"tenant_id"`
	At            time.Time `json:"occurred_at"`
}

// NewBaseEvent creates an envelope with a generated event ID and the current
// UTC time.
func NewBaseEvent(eventType, aggregateID, aggregateType, tenantID string) BaseEvent {
	return BaseEvent{
		ID:            uuid.New().String(),
		Type:          eventType,
		Aggregate:     aggregateID,
		AggregateKind: aggregateType,
		Tenant:        tenantID,
		At:            time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) AggregateType() string { return e.AggregateKind }
func (e BaseEvent) TenantID() string      { return e.Tenant }
func (e BaseEvent) OccurredAt() time.Time { return e.At }

// ---------------------------------------------------------------------------
// Pricing quote events
// ---------------------------------------------------------------------------

// QuoteRequested is raised when a new pricing quote enters the system.
type QuoteRequested struct {
	BaseEvent
	MerchantID         string          `json:"merchant_id"`
	RequestedAmount    decimal.Decimal `json:"requested_amount"`
	MonthlyTrueRevenue decimal.Decimal `json:"monthly_true_revenue"`
	TermMonths         int             `json:"term_months"`
	Position           int             `json:"position"`
}

func NewQuoteRequested(
	quoteID, tenantID, merchantID string,
	requestedAmount, monthlyTrueRevenue decimal.Decimal,
	termMonths, position int,
) QuoteRequested {
	return QuoteRequested{
		BaseEvent:          NewBaseEvent("pricing.quote.requested", quoteID, "PricingQuote", tenantID),
		MerchantID:         merchantID,
		RequestedAmount:    requestedAmount,
		MonthlyTrueRevenue: monthlyTrueRevenue,
		TermMonths:         termMonths,
		Position:           position,
	}
}

// OfferPriced is raised when a quote resolves to an approved offer, full or
// reduced.
type OfferPriced struct {
	BaseEvent
	MerchantID     string          `json:"merchant_id"`
	Decision       string          `json:"decision"`
	FundingAmount  decimal.Decimal `json:"funding_amount"`
	FactorRate     decimal.Decimal `json:"factor_rate"`
	PaybackAmount  decimal.Decimal `json:"payback_amount"`
	DailyPayment   decimal.Decimal `json:"daily_payment"`
	TermMonths     int             `json:"term_months"`
	CostPercentage decimal.Decimal `json:"cost_percentage"`
}

func NewOfferPriced(
	quoteID, tenantID, merchantID, decision string,
	fundingAmount, factorRate, paybackAmount, dailyPayment, costPercentage decimal.Decimal,
	termMonths int,
) OfferPriced {
	return OfferPriced{
		BaseEvent:      NewBaseEvent("pricing.quote.priced", quoteID, "PricingQuote", tenantID),
		MerchantID:     merchantID,
		Decision:       decision,
		FundingAmount:  fundingAmount,
		FactorRate:     factorRate,
		PaybackAmount:  paybackAmount,
		DailyPayment:   dailyPayment,
		TermMonths:     termMonths,
		CostPercentage: costPercentage,
	}
}

// QuoteDeclined is raised when a quote resolves to a decline.
type QuoteDeclined struct {
	BaseEvent
	MerchantID  string `json:"merchant_id"`
	Reason      string `json:"reason"`
	Explanation string `json:"explanation"`
}

func NewQuoteDeclined(quoteID, tenantID, merchantID, reason, explanation string) QuoteDeclined {
	return QuoteDeclined{
		BaseEvent:   NewBaseEvent("pricing.quote.declined", quoteID, "PricingQuote", tenantID),
		MerchantID:  merchantID,
		Reason:      reason,
		Explanation: explanation,
	}
}
