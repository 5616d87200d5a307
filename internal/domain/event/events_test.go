package event_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundline/pricing-service/internal/domain/event"
)

func TestNewBaseEvent(t *testing.T) {
	e := event.NewBaseEvent("pricing.quote.requested", "quote-001", "PricingQuote", "tenant-001")

	assert.NotEmpty(t, e.EventID())
	assert.Equal(t, "pricing.quote.requested", e.EventType())
	assert.Equal(t, "quote-001", e.AggregateID())
	assert.Equal(t, "PricingQuote", e.AggregateType())
	assert.Equal(t, "tenant-001", e.TenantID())
	assert.False(t, e.OccurredAt().IsZero())
}

func TestEventIDsAreUnique(t *testing.T) {
	a := event.NewBaseEvent("t", "agg", "kind", "tenant")
	b := event.NewBaseEvent("t", "agg", "kind", "tenant")
	assert.NotEqual(t, a.EventID(), b.EventID())
}

func TestOfferPricedSerializes(t *testing.T) {
	e := event.NewOfferPriced(
		"quote-001", "tenant-001", "merchant-001", "APPROVED",
		decimal.NewFromInt(50_000), decimal.RequireFromString("1.35"),
		decimal.NewFromInt(67_500), decimal.RequireFromString("519.23"),
		decimal.NewFromInt(35), 6,
	)

	payload, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, "pricing.quote.priced", decoded["event_type"])
	assert.Equal(t, "quote-001", decoded["aggregate_id"])
	assert.Equal(t, "merchant-001", decoded["merchant_id"])
	assert.Equal(t, "50000", decoded["funding_amount"])
	assert.Equal(t, "APPROVED", decoded["decision"])
}

func TestQuoteDeclinedSerializes(t *testing.T) {
	e := event.NewQuoteDeclined("quote-002", "tenant-001", "merchant-001", "AT_CAPACITY", "no remaining capacity")

	payload, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, "pricing.quote.declined", decoded["event_type"])
	assert.Equal(t, "AT_CAPACITY", decoded["reason"])
	assert.Equal(t, "no remaining capacity", decoded["explanation"])
}
