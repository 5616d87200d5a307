package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fundline/pricing-service/internal/domain/service"
)

func newResolver() *service.ApprovalResolver {
	return service.NewApprovalResolver(service.DefaultPolicy())
}

func TestApprovalPercent_Tiers(t *testing.T) {
	resolver := newResolver()

	tests := []struct {
		score   int
		percent string
	}{
		{100, "1.00"},
		{50, "1.00"},
		{49, "0.85"},
		{35, "0.85"},
		{34, "0.65"},
		{20, "0.65"},
		{19, "0.65"}, // floor tier; scores this low hard-decline upstream
	}

	for _, tt := range tests {
		assert.Equal(t, tt.percent, resolver.ApprovalPercent(tt.score).StringFixed(2),
			"score %d", tt.score)
	}
}

func TestResolve_RequestedBinds(t *testing.T) {
	res := newResolver().Resolve(
		decimal.NewFromInt(50_000),
		decimal.RequireFromString("922.93"),
		130,
		decimal.RequireFromString("1.35"),
		50,
	)

	assert.Equal(t, "50000.00", res.ApprovedAmount.StringFixed(2))
	assert.True(t, res.FullyApproved)
	assert.Equal(t, "119980.90", res.MaxPayback.StringFixed(2))
}

func TestResolve_CapacityBinds(t *testing.T) {
	res := newResolver().Resolve(
		decimal.NewFromInt(200_000),
		decimal.RequireFromString("922.93"),
		130,
		decimal.RequireFromString("1.35"),
		50,
	)

	// 922.93 x 130 / 1.35 = 88874.74.
	assert.Equal(t, "88874.74", res.ApprovedAmount.StringFixed(2))
	assert.False(t, res.FullyApproved)
	assert.True(t, res.ApprovedAmount.LessThan(res.MaxByApproval))
}

func TestResolve_ApprovalPercentBinds(t *testing.T) {
	res := newResolver().Resolve(
		decimal.NewFromInt(50_000),
		decimal.RequireFromString("922.93"),
		130,
		decimal.RequireFromString("1.35"),
		40,
	)

	assert.Equal(t, "42500.00", res.ApprovedAmount.StringFixed(2))
	assert.False(t, res.FullyApproved)
}

func TestResolve_FullyApprovedWithinTolerance(t *testing.T) {
	// 103.846 x 130 / 1.35 = 9999.99 after cent rounding: one cent short of
	// the request still counts as fully approved.
	res := newResolver().Resolve(
		decimal.RequireFromString("10000.00"),
		decimal.RequireFromString("103.846"),
		130,
		decimal.RequireFromString("1.35"),
		50,
	)
	assert.Equal(t, "9999.99", res.ApprovedAmount.StringFixed(2))
	assert.True(t, res.FullyApproved)

	// A materially smaller capacity ceiling does not.
	reduced := newResolver().Resolve(
		decimal.RequireFromString("10000.00"),
		decimal.RequireFromString("103"),
		130,
		decimal.RequireFromString("1.35"),
		50,
	)
	assert.Equal(t, "9918.52", reduced.ApprovedAmount.StringFixed(2))
	assert.False(t, reduced.FullyApproved)
}
