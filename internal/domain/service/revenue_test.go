package service_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundline/pricing-service/internal/domain/model"
	"github.com/fundline/pricing-service/internal/domain/service"
)

func TestDailyRevenue(t *testing.T) {
	normalizer := service.NewRevenueNormalizer(service.DefaultPolicy())

	daily, err := normalizer.DailyRevenue(decimal.NewFromInt(100_000))
	require.NoError(t, err)
	assert.Equal(t, "4614.67", daily.StringFixed(2))

	daily, err = normalizer.DailyRevenue(decimal.RequireFromString("21670"))
	require.NoError(t, err)
	assert.Equal(t, "1000.00", daily.StringFixed(2))
}

func TestDailyRevenue_RejectsNonPositive(t *testing.T) {
	normalizer := service.NewRevenueNormalizer(service.DefaultPolicy())

	_, err := normalizer.DailyRevenue(decimal.Zero)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))

	_, err = normalizer.DailyRevenue(decimal.NewFromInt(-100))
	assert.Error(t, err)
}

func TestCapacityEvaluate(t *testing.T) {
	calc := service.NewCapacityCalculator(service.DefaultPolicy())

	state := calc.Evaluate(decimal.NewFromInt(1_000), decimal.NewFromInt(50))

	assert.Equal(t, "200.00", state.MaxDailyPayment.StringFixed(2))
	assert.Equal(t, "150.00", state.RemainingDailyCapacity.StringFixed(2))
	assert.Equal(t, "5.00", state.CurrentWithholdPercent.StringFixed(2))
	assert.False(t, state.AtCapacity)
}

func TestCapacityEvaluate_OverCap(t *testing.T) {
	calc := service.NewCapacityCalculator(service.DefaultPolicy())

	state := calc.Evaluate(decimal.NewFromInt(1_000), decimal.NewFromInt(250))

	assert.Equal(t, "-50.00", state.RemainingDailyCapacity.StringFixed(2))
	assert.True(t, state.AtCapacity)
}
