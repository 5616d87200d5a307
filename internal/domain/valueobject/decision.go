package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Decision – immutable value object
// ---------------------------------------------------------------------------

// Decision represents the terminal outcome of pricing an offer request.
type Decision struct {
	value string
}

const (
	decisionApproved        = "APPROVED"
	decisionApprovedReduced = "APPROVED_REDUCED"
	decisionDeclined        = "DECLINED"
)

var (
	DecisionApproved        = Decision{value: decisionApproved}
	DecisionApprovedReduced = Decision{value: decisionApprovedReduced}
	DecisionDeclined        = Decision{value: decisionDeclined}
)

var validDecisions = map[string]Decision{
	decisionApproved:        DecisionApproved,
	decisionApprovedReduced: DecisionApprovedReduced,
	decisionDeclined:        DecisionDeclined,
}

// NewDecision creates a Decision from a raw string.
func NewDecision(s string) (Decision, error) {
	v, ok := validDecisions[s]
	if !ok {
		return Decision{}, fmt.Errorf("invalid decision: %q", s)
	}
	return v, nil
}

// String returns the string representation of the decision.
func (d Decision) String() string { return d.value }

// IsZero returns true if the decision has not been initialised.
func (d Decision) IsZero() bool { return d.value == "" }

// Equal returns true when both decisions carry the same value.
func (d Decision) Equal(other Decision) bool { return d.value == other.value }

// IsApproved reports whether the decision funds the merchant, fully or reduced.
func (d Decision) IsApproved() bool {
	return d.value == decisionApproved || d.value == decisionApprovedReduced
}

// ---------------------------------------------------------------------------
// DeclineReason – immutable value object
// ---------------------------------------------------------------------------

// DeclineReason names the policy rule that caused a decline.
type DeclineReason struct {
	value string
}

const (
	declineAtCapacity       = "AT_CAPACITY"
	declineTooManyPositions = "TOO_MANY_POSITIONS"
	declineLowRiskScore     = "LOW_RISK_SCORE"
	declineBelowMinimum     = "BELOW_MINIMUM"
	declineHighVolatility   = "HIGH_VOLATILITY"
)

var (
	DeclineAtCapacity       = DeclineReason{value: declineAtCapacity}
	DeclineTooManyPositions = DeclineReason{value: declineTooManyPositions}
	DeclineLowRiskScore     = DeclineReason{value: declineLowRiskScore}
	DeclineBelowMinimum     = DeclineReason{value: declineBelowMinimum}
	DeclineHighVolatility   = DeclineReason{value: declineHighVolatility}
)

var validDeclineReasons = map[string]DeclineReason{
	declineAtCapacity:       DeclineAtCapacity,
	declineTooManyPositions: DeclineTooManyPositions,
	declineLowRiskScore:     DeclineLowRiskScore,
	declineBelowMinimum:     DeclineBelowMinimum,
	declineHighVolatility:   DeclineHighVolatility,
}

// NewDeclineReason creates a DeclineReason from a raw string.
func NewDeclineReason(s string) (DeclineReason, error) {
	v, ok := validDeclineReasons[s]
	if !ok {
		return DeclineReason{}, fmt.Errorf("invalid decline reason: %q", s)
	}
	return v, nil
}

// String returns the string representation of the decline reason.
func (r DeclineReason) String() string { return r.value }

// IsZero returns true if the reason has not been initialised.
func (r DeclineReason) IsZero() bool { return r.value == "" }

// Equal returns true when both reasons carry the same value.
func (r DeclineReason) Equal(other DeclineReason) bool { return r.value == other.value }
