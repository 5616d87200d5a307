package valueobject

import (
	"errors"
	"fmt"
)

// ErrInvalidStatusTransition is returned when an aggregate transition is not
// allowed from the current status.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// ---------------------------------------------------------------------------
// QuoteStatus – immutable value object
// ---------------------------------------------------------------------------

// QuoteStatus represents the lifecycle stage of a pricing quote.
type QuoteStatus struct {
	value string
}

const (
	quoteStatusRequested = "REQUESTED"
	quoteStatusPriced    = "PRICED"
	quoteStatusDeclined  = "DECLINED"
)

var (
	QuoteStatusRequested = QuoteStatus{value: quoteStatusRequested}
	QuoteStatusPriced    = QuoteStatus{value: quoteStatusPriced}
	QuoteStatusDeclined  = QuoteStatus{value: quoteStatusDeclined}
)

var validQuoteStatuses = map[string]QuoteStatus{
	quoteStatusRequested: QuoteStatusRequested,
	quoteStatusPriced:    QuoteStatusPriced,
	quoteStatusDeclined:  QuoteStatusDeclined,
}

// NewQuoteStatus creates a QuoteStatus from a raw string.
func NewQuoteStatus(s string) (QuoteStatus, error) {
	v, ok := validQuoteStatuses[s]
	if !ok {
		return QuoteStatus{}, fmt.Errorf("invalid quote status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s QuoteStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s QuoteStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s QuoteStatus) Equal(other QuoteStatus) bool { return s.value == other.value }
