package pricing_test

import (
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/module/booking/pricing"
	"rental-booking-service/internal/pkg/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func money(f float64) *entity.Money {
	m := entity.MoneyFromFloat(f)
	return &m
}

func TestComputeCost(t *testing.T) {
	fees := pricing.FeeSchedule{
		CleaningFee:    money(50),
		ServiceFeeRate: 0.10,
		TaxRate:        0.08,
	}

	t.Run("three night stay", func(t *testing.T) {
		cost, err := pricing.ComputeCost(entity.MoneyFromFloat(100), date(2024, 6, 1), date(2024, 6, 4), 2, fees)
		require.NoError(t, err)

		assert.Equal(t, 3, cost.Nights)
		assert.Equal(t, entity.MoneyFromFloat(300), cost.BasePrice)
		assert.Equal(t, entity.MoneyFromFloat(50), cost.CleaningFee)
		assert.Equal(t, entity.MoneyFromFloat(30), cost.ServiceFee)
		assert.Equal(t, entity.MoneyFromFloat(30.40), cost.TaxAmount)
		assert.Equal(t, entity.MoneyFromFloat(410.40), cost.TotalCost)
	})

	t.Run("no cleaning fee", func(t *testing.T) {
		cost, err := pricing.ComputeCost(entity.MoneyFromFloat(100), date(2024, 6, 1), date(2024, 6, 2), 1, pricing.FeeSchedule{ServiceFeeRate: 0.1})
		require.NoError(t, err)
		assert.Equal(t, entity.Money(0), cost.CleaningFee)
		assert.Equal(t, entity.MoneyFromFloat(110), cost.TotalCost)
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		start := date(2024, 6, 1)
		cost, err := pricing.ComputeCost(entity.MoneyFromFloat(80), start, start.Add(49*time.Hour), 1, pricing.FeeSchedule{})
		require.NoError(t, err)
		assert.Equal(t, 3, cost.Nights)
		assert.Equal(t, entity.MoneyFromFloat(240), cost.TotalCost)
	})

	t.Run("service fee excludes cleaning", func(t *testing.T) {
		cost, err := pricing.ComputeCost(entity.MoneyFromFloat(99.99), date(2024, 1, 1), date(2024, 1, 2), 1, pricing.FeeSchedule{
			CleaningFee:    money(1000),
			ServiceFeeRate: 0.15,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.MoneyFromFloat(15.00), cost.ServiceFee)
	})

	testCases := []struct {
		name     string
		rate     entity.Money
		start    time.Time
		end      time.Time
		guests   int
		fees     pricing.FeeSchedule
		expected error
	}{
		{"end before start", 100, date(2024, 6, 4), date(2024, 6, 1), 1, fees, pricing.ErrInvalidDateRange},
		{"same day", 100, date(2024, 6, 4), date(2024, 6, 4), 1, fees, pricing.ErrInvalidDateRange},
		{"no guests", 100, date(2024, 6, 1), date(2024, 6, 4), 0, fees, pricing.ErrInvalidGuestCount},
		{"free listing", 0, date(2024, 6, 1), date(2024, 6, 4), 1, fees, pricing.ErrInvalidRate},
		{"negative tax", 100, date(2024, 6, 1), date(2024, 6, 4), 1, pricing.FeeSchedule{TaxRate: -0.1}, pricing.ErrInvalidFees},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.ComputeCost(tc.rate, tc.start, tc.end, tc.guests, tc.fees)
			assert.ErrorIs(t, err, tc.expected)
			assert.True(t, errors.Is(err, errors.ErrValidation))
		})
	}
}

func TestComputeCostInvariants(t *testing.T) {
	start := date(2024, 3, 1)
	for nights := 1; nights <= 30; nights++ {
		for _, rate := range []float64{0.01, 19.99, 73.33, 100, 249.5, 1234.56} {
			for _, srv := range []float64{0, 0.03, 0.1, 0.145} {
				for _, tax := range []float64{0, 0.07, 0.08, 0.2125} {
					fees := pricing.FeeSchedule{CleaningFee: money(33.33), ServiceFeeRate: srv, TaxRate: tax}
					end := start.AddDate(0, 0, nights)

					a, err := pricing.ComputeCost(entity.MoneyFromFloat(rate), start, end, 1, fees)
					require.NoError(t, err)
					b, err := pricing.ComputeCost(entity.MoneyFromFloat(rate), start, end, 1, fees)
					require.NoError(t, err)

					assert.Equal(t, a, b)
					assert.Equal(t, a.BasePrice+a.CleaningFee+a.ServiceFee+a.TaxAmount, a.TotalCost)
					assert.Equal(t, nights, a.Nights)
				}
			}
		}
	}
}
