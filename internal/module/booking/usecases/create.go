package usecases

import (
	"context"
	"fmt"
	"rental-booking-service/internal/module/booking/lifecycle"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/module/booking/models/request"
	"rental-booking-service/internal/module/booking/models/response"
	"rental-booking-service/internal/module/booking/pricing"
	"rental-booking-service/internal/pkg/errors"
	"rental-booking-service/internal/pkg/helpers"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
	"go.uber.org/zap"
)

const referencePrefix = "RB-"

func newReferenceNumber() string {
	return referencePrefix + shortuuid.New()[:10]
}

func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := helpers.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.ValidationError(pricing.CodeInvalidDateRange, "invalid start date")
	}
	end, err := helpers.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.ValidationError(pricing.CodeInvalidDateRange, "invalid end date")
	}
	return start, end, nil
}

func (u *usecase) fees(listing response.Listing) pricing.FeeSchedule {
	return pricing.FeeSchedule{
		CleaningFee:    listing.CleaningFee,
		ServiceFeeRate: u.cfg.ServiceFeeRate,
		TaxRate:        u.cfg.TaxRate,
	}
}

func (u *usecase) currency(listing response.Listing) string {
	if listing.Currency != "" {
		return listing.Currency
	}
	return u.cfg.Currency
}

func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking, renterID int64) (response.Booking, error) {
	start, end, err := parseRange(payload.StartDate, payload.EndDate)
	if err != nil {
		return response.Booking{}, err
	}

	listing, err := u.repo.GetListing(ctx, payload.ListingID)
	if err != nil {
		return response.Booking{}, err
	}
	if !listing.Active {
		return response.Booking{}, errors.TransitionRejected(errors.CodeListingInactive, "listing is not accepting bookings")
	}
	if listing.OwnerID == renterID {
		return response.Booking{}, errors.TransitionRejected(errors.CodeOwnListing, "cannot book your own listing")
	}

	cost, err := pricing.ComputeCost(listing.NightlyRate, start, end, payload.GuestCount, u.fees(listing))
	if err != nil {
		return response.Booking{}, err
	}

	draft := entity.Booking{
		ID:              uuid.New(),
		ReferenceNumber: newReferenceNumber(),
		ListingID:       payload.ListingID,
		OwnerID:         listing.OwnerID,
		RenterID:        renterID,
		StartDate:       start,
		EndDate:         end,
		GuestCount:      payload.GuestCount,
		NightlyRate:     cost.NightlyRate,
		Nights:          cost.Nights,
		BasePrice:       cost.BasePrice,
		CleaningFee:     cost.CleaningFee,
		ServiceFee:      cost.ServiceFee,
		TaxAmount:       cost.TaxAmount,
		TotalCost:       cost.TotalCost,
		Currency:        u.currency(listing),
		SpecialRequests: payload.SpecialRequests,
	}

	booking, err := u.machine.Fire(ctx, draft, lifecycle.Trigger{
		Event:    lifecycle.EventCreate,
		Actor:    lifecycle.Actor{ID: renterID, Role: lifecycle.RoleRenter},
		Now:      u.now(),
		Capacity: listing.MaxGuests,
	})
	if err != nil {
		return response.Booking{}, err
	}

	hold := entity.Hold{BookingID: booking.ID, Start: booking.StartDate, End: booking.EndDate}
	if err := u.repo.HoldAvailability(ctx, booking.ListingID, hold); err != nil {
		return response.Booking{}, err
	}

	if err := u.repo.InsertBooking(ctx, &booking); err != nil {
		u.releaseHold(ctx, booking)
		return response.Booking{}, err
	}

	u.log.Info(ctx, "booking requested", zap.String("booking_id", booking.ID.String()), zap.String("reference_number", booking.ReferenceNumber))
	u.notify(ctx, NotifyRequested, booking, booking.OwnerID)

	return response.NewBooking(booking, nil), nil
}

// Quote prices a stay without creating anything.
func (u *usecase) Quote(ctx context.Context, payload *request.Quote) (response.Quote, error) {
	start, end, err := parseRange(payload.StartDate, payload.EndDate)
	if err != nil {
		return response.Quote{}, err
	}

	listing, err := u.repo.GetListing(ctx, payload.ListingID)
	if err != nil {
		return response.Quote{}, err
	}
	if payload.GuestCount > listing.MaxGuests {
		return response.Quote{}, errors.TransitionRejected(errors.CodeCapacityExceeded, fmt.Sprintf("listing accepts at most %d guests", listing.MaxGuests))
	}

	cost, err := pricing.ComputeCost(listing.NightlyRate, start, end, payload.GuestCount, u.fees(listing))
	if err != nil {
		return response.Quote{}, err
	}

	available, err := u.repo.CheckAvailable(ctx, payload.ListingID, start, end)
	if err != nil {
		return response.Quote{}, err
	}

	return response.Quote{
		ListingID:   payload.ListingID,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		Nights:      cost.Nights,
		NightlyRate: cost.NightlyRate,
		BasePrice:   cost.BasePrice,
		CleaningFee: cost.CleaningFee,
		ServiceFee:  cost.ServiceFee,
		TaxAmount:   cost.TaxAmount,
		TotalCost:   cost.TotalCost,
		Currency:    u.currency(listing),
		Available:   available && listing.Active,
	}, nil
}
