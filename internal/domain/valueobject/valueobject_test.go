package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundline/pricing-service/internal/domain/valueobject"
)

func TestNewDecision(t *testing.T) {
	for _, s := range []string{"APPROVED", "APPROVED_REDUCED", "DECLINED"} {
		d, err := valueobject.NewDecision(s)
		require.NoError(t, err)
		assert.Equal(t, s, d.String())
	}

	_, err := valueobject.NewDecision("approved")
	assert.Error(t, err)
	_, err = valueobject.NewDecision("")
	assert.Error(t, err)
}

func TestDecisionIsApproved(t *testing.T) {
	assert.True(t, valueobject.DecisionApproved.IsApproved())
	assert.True(t, valueobject.DecisionApprovedReduced.IsApproved())
	assert.False(t, valueobject.DecisionDeclined.IsApproved())
	assert.False(t, valueobject.Decision{}.IsApproved())
}

func TestNewDeclineReason(t *testing.T) {
	reasons := []string{
		"AT_CAPACITY", "TOO_MANY_POSITIONS", "LOW_RISK_SCORE",
		"BELOW_MINIMUM", "HIGH_VOLATILITY",
	}
	for _, s := range reasons {
		r, err := valueobject.NewDeclineReason(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
		assert.False(t, r.IsZero())
	}

	_, err := valueobject.NewDeclineReason("NO_SUCH_REASON")
	assert.Error(t, err)
}

func TestNewQuoteStatus(t *testing.T) {
	for _, s := range []string{"REQUESTED", "PRICED", "DECLINED"} {
		status, err := valueobject.NewQuoteStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := valueobject.NewQuoteStatus("PENDING")
	assert.Error(t, err)
}

func TestNewVolatility(t *testing.T) {
	for _, s := range []string{"LOW", "MEDIUM", "HIGH"} {
		v, err := valueobject.NewVolatility(s)
		require.NoError(t, err)
		assert.Equal(t, s, v.String())
	}

	// Empty defaults to MEDIUM.
	v, err := valueobject.NewVolatility("")
	require.NoError(t, err)
	assert.True(t, v.Equal(valueobject.VolatilityMedium))

	_, err = valueobject.NewVolatility("medium")
	assert.Error(t, err)
}
