// Package pricing computes the frozen cost snapshot of a stay.
package pricing

import (
	"math"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/pkg/errors"
	"time"
)

const (
	CodeInvalidDateRange  = "invalid_date_range"
	CodeInvalidGuestCount = "invalid_guest_count"
	CodeInvalidRate       = "invalid_nightly_rate"
	CodeInvalidFees       = "invalid_fee_schedule"
)

var (
	ErrInvalidDateRange  = errors.ValidationError(CodeInvalidDateRange, "end date must be after start date")
	ErrInvalidGuestCount = errors.ValidationError(CodeInvalidGuestCount, "guest count must be at least 1")
	ErrInvalidRate       = errors.ValidationError(CodeInvalidRate, "nightly rate must be positive")
	ErrInvalidFees       = errors.ValidationError(CodeInvalidFees, "fees and rates must not be negative")
)

// FeeSchedule carries the listing and platform fees. A nil CleaningFee means
// the listing charges none.
type FeeSchedule struct {
	CleaningFee    *entity.Money
	ServiceFeeRate float64
	TaxRate        float64
}

type CostBreakdown struct {
	Nights      int          `json:"nights"`
	NightlyRate entity.Money `json:"nightly_rate"`
	BasePrice   entity.Money `json:"base_price"`
	CleaningFee entity.Money `json:"cleaning_fee"`
	ServiceFee  entity.Money `json:"service_fee"`
	TaxAmount   entity.Money `json:"tax_amount"`
	TotalCost   entity.Money `json:"total_cost"`
}

// Nights counts billable nights; a partial day counts as a full night.
func Nights(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// ComputeCost prices a stay. The service fee applies to the base price only;
// tax applies to base, cleaning and service together.
func ComputeCost(nightlyRate entity.Money, start, end time.Time, guestCount int, fees FeeSchedule) (CostBreakdown, error) {
	if !end.After(start) {
		return CostBreakdown{}, ErrInvalidDateRange
	}
	if guestCount < 1 {
		return CostBreakdown{}, ErrInvalidGuestCount
	}
	if nightlyRate <= 0 {
		return CostBreakdown{}, ErrInvalidRate
	}
	if fees.ServiceFeeRate < 0 || fees.TaxRate < 0 || (fees.CleaningFee != nil && *fees.CleaningFee < 0) {
		return CostBreakdown{}, ErrInvalidFees
	}

	nights := Nights(start, end)
	base := nightlyRate * entity.Money(nights)

	var cleaning entity.Money
	if fees.CleaningFee != nil {
		cleaning = *fees.CleaningFee
	}

	service := base.MulRate(fees.ServiceFeeRate)
	tax := (base + cleaning + service).MulRate(fees.TaxRate)

	return CostBreakdown{
		Nights:      nights,
		NightlyRate: nightlyRate,
		BasePrice:   base,
		CleaningFee: cleaning,
		ServiceFee:  service,
		TaxAmount:   tax,
		TotalCost:   base + cleaning + service + tax,
	}, nil
}
