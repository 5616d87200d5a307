package model

import (
	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/valueobject"
)

// Scenario is one named term/rate configuration run through the full pricing
// pipeline. A scenario either carries an offer or marks itself not fundable
// with its own decline reason; one scenario never blocks another.
type Scenario struct {
	Name          string
	TermMonths    int
	BaseFactor    decimal.Decimal
	Fundable      bool
	Offer         *Offer
	DeclineReason valueobject.DeclineReason
	Explanation   string
}

// ScenarioSet holds the side-by-side comparison plus an optional
// recommendation (the fundable scenario with the lowest cost percentage).
type ScenarioSet struct {
	Scenarios   []Scenario
	Recommended string
}
