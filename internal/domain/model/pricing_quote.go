package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fundline/pricing-service/internal/domain/event"
	"github.com/fundline/pricing-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// PricingQuote aggregate root
// ---------------------------------------------------------------------------

// PricingQuote is an immutable aggregate recording a single pricing run.
// Every mutation returns a new copy.
type PricingQuote struct {
	id           string
	tenantID     string
	merchantID   string
	request      OfferRequest
	status       valueobject.QuoteStatus
	decision     valueobject.Decision
	offer        *Offer
	decline      *Decline
	breakdown    MathBreakdown
	version      int
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewPricingQuote creates a brand-new quote in REQUESTED status.
func NewPricingQuote(tenantID, merchantID string, req OfferRequest, now time.Time) (PricingQuote, error) {
	if tenantID == "" {
		return PricingQuote{}, errors.New("tenant ID is required")
	}
	if merchantID == "" {
		return PricingQuote{}, errors.New("merchant ID is required")
	}

	id := uuid.New().String()
	q := PricingQuote{
		id:         id,
		tenantID:   tenantID,
		merchantID: merchantID,
		request:    req,
		status:     valueobject.QuoteStatusRequested,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}

	requested := event.NewQuoteRequested(
		id, tenantID, merchantID,
		req.RequestedAmount, req.MonthlyTrueRevenue,
		req.TermMonths, req.Position,
	)
	q.domainEvents = append(q.domainEvents, requested)
	return q, nil
}

// ReconstructPricingQuote rebuilds an aggregate from persistence without
// side-effects.
func ReconstructPricingQuote(
	id, tenantID, merchantID string,
	req OfferRequest,
	status valueobject.QuoteStatus,
	decision valueobject.Decision,
	offer *Offer,
	decline *Decline,
	breakdown MathBreakdown,
	version int,
	createdAt, updatedAt time.Time,
) PricingQuote {
	return PricingQuote{
		id:         id,
		tenantID:   tenantID,
		merchantID: merchantID,
		request:    req,
		status:     status,
		decision:   decision,
		offer:      offer,
		decline:    decline,
		breakdown:  breakdown,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// MarkPriced transitions REQUESTED -> PRICED and emits OfferPriced.
func (q PricingQuote) MarkPriced(
	decision valueobject.Decision,
	offer Offer,
	breakdown MathBreakdown,
	now time.Time,
) (PricingQuote, error) {
	if !q.status.Equal(valueobject.QuoteStatusRequested) {
		return q, valueobject.ErrInvalidStatusTransition
	}
	if !decision.IsApproved() {
		return q, errors.New("MarkPriced requires an approved decision")
	}
	next := q
	next.status = valueobject.QuoteStatusPriced
	next.decision = decision
	next.offer = &offer
	next.breakdown = breakdown
	next.updatedAt = now
	next.domainEvents = copyEvents(q.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewOfferPriced(
		q.id, q.tenantID, q.merchantID, decision.String(),
		offer.FundingAmount, offer.FactorRate, offer.PaybackAmount,
		offer.DailyPayment, offer.CostPercentage, offer.TermMonths,
	))
	return next, nil
}

// MarkDeclined transitions REQUESTED -> DECLINED and emits QuoteDeclined.
func (q PricingQuote) MarkDeclined(decline Decline, breakdown MathBreakdown, now time.Time) (PricingQuote, error) {
	if !q.status.Equal(valueobject.QuoteStatusRequested) {
		return q, valueobject.ErrInvalidStatusTransition
	}
	next := q
	next.status = valueobject.QuoteStatusDeclined
	next.decision = valueobject.DecisionDeclined
	next.decline = &decline
	next.breakdown = breakdown
	next.updatedAt = now
	next.domainEvents = copyEvents(q.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewQuoteDeclined(
		q.id, q.tenantID, q.merchantID, decline.Reason.String(), decline.Explanation,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (q PricingQuote) ID() string                        { return q.id }
func (q PricingQuote) TenantID() string                  { return q.tenantID }
func (q PricingQuote) MerchantID() string                { return q.merchantID }
func (q PricingQuote) Request() OfferRequest             { return q.request }
func (q PricingQuote) Status() valueobject.QuoteStatus   { return q.status }
func (q PricingQuote) Decision() valueobject.Decision    { return q.decision }
func (q PricingQuote) Offer() *Offer                     { return q.offer }
func (q PricingQuote) DeclineInfo() *Decline             { return q.decline }
func (q PricingQuote) Breakdown() MathBreakdown          { return q.breakdown }
func (q PricingQuote) Version() int                      { return q.version }
func (q PricingQuote) CreatedAt() time.Time              { return q.createdAt }
func (q PricingQuote) UpdatedAt() time.Time              { return q.updatedAt }
func (q PricingQuote) DomainEvents() []event.DomainEvent { return q.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (q PricingQuote) ClearEvents() PricingQuote {
	next := q
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
