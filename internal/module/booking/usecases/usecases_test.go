package usecases_test

import (
	"context"
	"rental-booking-service/internal/module/booking/mocks"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/module/booking/models/request"
	"rental-booking-service/internal/module/booking/models/response"
	"rental-booking-service/internal/module/booking/usecases"
	"rental-booking-service/internal/pkg/errors"
	"rental-booking-service/internal/pkg/log"
	log_internal "rental-booking-service/internal/pkg/log"
	"rental-booking-service/internal/pkg/scheduler"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc          usecases.Usecase
	repoMock    *mocks.Repositories
	logMock     log.Logger
	p           message.Publisher
	dateTimeNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
)

type mockPublisher struct {
	err error
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return m.err
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = NewMockPublisher()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock, p, testConfig, usecases.WithClock(func() time.Time { return dateTimeNow }))
}

func teardown() {
	repoMock = nil
	uc = nil
}

func pendingBooking() entity.Booking {
	return entity.Booking{
		ID:              uuid.New(),
		ReferenceNumber: "RB-abc123",
		ListingID:       listing,
		OwnerID:         ownerID,
		RenterID:        renterID,
		StartDate:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		GuestCount:      2,
		TotalCost:       entity.MoneyFromFloat(410.40),
		Currency:        "USD",
		Status:          entity.StatusPendingApproval,
		CreatedAt:       dateTimeNow.Add(-time.Hour),
		Version:         1,
	}
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	payload := &request.CreateBooking{ListingID: listing, StartDate: "2024-06-01", EndDate: "2024-06-04", GuestCount: 2}
	listingMock := response.Listing{ID: listing, OwnerID: ownerID, NightlyRate: entity.MoneyFromFloat(100), MaxGuests: 4, Active: true}

	t.Run("insert fails releases hold", func(t *testing.T) {
		repoMock.On("GetListing", ctx, listing).Return(listingMock, nil).Once()
		repoMock.On("HoldAvailability", ctx, listing, mock.AnythingOfType("entity.Hold")).Return(nil).Once()
		repoMock.On("InsertBooking", ctx, mock.AnythingOfType("*entity.Booking")).Return(errors.InternalServerError("error insert booking")).Once()
		repoMock.On("ReleaseAvailability", ctx, listing, mock.AnythingOfType("uuid.UUID")).Return(nil).Once()

		_, err := uc.CreateBooking(ctx, payload, renterID)
		assert.Equal(t, errors.InternalServerError("error insert booking"), err)
		repoMock.AssertExpectations(t)
	})

	t.Run("inactive listing", func(t *testing.T) {
		inactive := listingMock
		inactive.Active = false
		repoMock.On("GetListing", ctx, listing).Return(inactive, nil).Once()

		_, err := uc.CreateBooking(ctx, payload, renterID)
		assert.ErrorIs(t, err, errors.TransitionRejected(errors.CodeListingInactive, ""))
	})

	t.Run("listing not found", func(t *testing.T) {
		repoMock.On("GetListing", ctx, int64(404)).Return(response.Listing{}, errors.NotFound("listing not found")).Once()

		_, err := uc.CreateBooking(ctx, &request.CreateBooking{ListingID: 404, StartDate: "2024-06-01", EndDate: "2024-06-04", GuestCount: 1}, renterID)
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("publish failure does not fail create", func(t *testing.T) {
		failing := usecases.New(repoMock, logMock, &mockPublisher{err: assert.AnError}, testConfig, usecases.WithClock(func() time.Time { return dateTimeNow }))
		repoMock.On("GetListing", ctx, listing).Return(listingMock, nil).Once()
		repoMock.On("HoldAvailability", ctx, listing, mock.AnythingOfType("entity.Hold")).Return(nil).Once()
		repoMock.On("InsertBooking", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()

		resp, err := failing.CreateBooking(ctx, payload, renterID)
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPendingApproval, resp.Status)
		assert.Equal(t, entity.MoneyFromFloat(356.40), resp.TotalCost)
	})
}

func TestApproveBooking(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("schedules payment window", func(t *testing.T) {
		b := pendingBooking()
		repoMock.On("FindBookingByID", ctx, b.ID).Return(b, nil).Once()
		repoMock.On("HasHold", ctx, listing, b.ID).Return(true, nil).Once()
		repoMock.On("SaveBooking", ctx, mock.MatchedBy(func(next *entity.Booking) bool {
			return next.Status == entity.StatusApproved && next.ApprovedAt != nil
		}), int64(1)).Return(nil).Once()
		repoMock.On("SetTaskScheduler", ctx, scheduler.TypePaymentWindowExpired, "payment_window:"+b.ID.String(), dateTimeNow.Add(24*time.Hour), mock.Anything).
			Return("payment_window:"+b.ID.String(), nil).Once()

		resp, err := uc.ApproveBooking(ctx, b.ID.String(), ownerID)
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, resp.Status)
		repoMock.AssertExpectations(t)
	})

	t.Run("hold lost", func(t *testing.T) {
		b := pendingBooking()
		repoMock.On("FindBookingByID", ctx, b.ID).Return(b, nil).Twice()
		repoMock.On("HasHold", ctx, listing, b.ID).Return(false, nil).Once()

		_, err := uc.ApproveBooking(ctx, b.ID.String(), ownerID)
		assert.ErrorIs(t, err, errors.ErrAvailabilityConflict)
	})

	t.Run("second version conflict surfaces", func(t *testing.T) {
		b := pendingBooking()
		repoMock.On("FindBookingByID", ctx, b.ID).Return(b, nil).Twice()
		repoMock.On("HasHold", ctx, listing, b.ID).Return(true, nil).Twice()
		repoMock.On("SaveBooking", ctx, mock.AnythingOfType("*entity.Booking"), int64(1)).Return(errors.VersionConflict("booking was modified concurrently")).Twice()

		_, err := uc.ApproveBooking(ctx, b.ID.String(), ownerID)
		assert.ErrorIs(t, err, errors.ErrVersionConflict)
	})
}

func TestMarkReviewLeft(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("not completed", func(t *testing.T) {
		b := pendingBooking()
		repoMock.On("FindBookingByID", ctx, b.ID).Return(b, nil).Once()

		err := uc.MarkReviewLeft(ctx, &request.ReviewSubmitted{BookingID: b.ID.String(), RenterID: renterID, Rating: 4})
		assert.ErrorIs(t, err, errors.TransitionRejected(errors.CodeReviewNotEligible, ""))
	})

	t.Run("someone else's stay", func(t *testing.T) {
		b := pendingBooking()
		b.Status = entity.StatusCompleted
		repoMock.On("FindBookingByID", ctx, b.ID).Return(b, nil).Once()

		err := uc.MarkReviewLeft(ctx, &request.ReviewSubmitted{BookingID: b.ID.String(), RenterID: 42, Rating: 4})
		assert.ErrorIs(t, err, errors.TransitionRejected(errors.CodeWrongActor, ""))
	})

	t.Run("success", func(t *testing.T) {
		b := pendingBooking()
		b.Status = entity.StatusCompleted
		repoMock.On("FindBookingByID", ctx, b.ID).Return(b, nil).Once()
		repoMock.On("SaveBooking", ctx, mock.MatchedBy(func(next *entity.Booking) bool { return next.ReviewLeft }), int64(1)).Return(nil).Once()

		err := uc.MarkReviewLeft(ctx, &request.ReviewSubmitted{BookingID: b.ID.String(), RenterID: renterID, Rating: 4})
		assert.NoError(t, err)
	})
}

func TestSweepLifecycleCountsFailures(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	b := pendingBooking()
	b.Status = entity.StatusConfirmed
	b.StartDate = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	repoMock.On("FindBookingsDue", ctx, b.StartDate, uuid.Nil, 10).Return([]entity.Booking{b}, nil).Once()
	repoMock.On("FindBookingByID", ctx, b.ID).Return(entity.Booking{}, errors.InternalServerError("error find booking by id")).Once()

	sweep, err := uc.SweepLifecycle(ctx)
	assert.NoError(t, err)
	assert.Equal(t, response.Sweep{Failed: 1}, sweep)
	repoMock.AssertExpectations(t)
}
