package usecases

import (
	"context"
	"rental-booking-service/config"
	"rental-booking-service/internal/module/booking/lifecycle"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/module/booking/models/request"
	"rental-booking-service/internal/module/booking/models/response"
	"rental-booking-service/internal/module/booking/repositories"
	"rental-booking-service/internal/pkg/errors"
	"rental-booking-service/internal/pkg/log"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config is the business configuration the orchestrator runs with.
type Config struct {
	ServiceFeeRate         float64
	TaxRate                float64
	Currency               string
	PaymentWindow          time.Duration
	CaptureTimeout         time.Duration
	FreeCancellationWindow time.Duration
	PartialRefundRate      float64
	SweepBatchSize         int
}

func ConfigFrom(cfg *config.Config) Config {
	return Config{
		ServiceFeeRate:         cfg.Pricing.ServiceFeeRate,
		TaxRate:                cfg.Pricing.TaxRate,
		Currency:               cfg.Payment.Currency,
		PaymentWindow:          cfg.Payment.Window,
		CaptureTimeout:         cfg.Payment.CaptureTimeout,
		FreeCancellationWindow: cfg.Cancellation.FreeWindow,
		PartialRefundRate:      cfg.Cancellation.PartialRefundRate,
		SweepBatchSize:         cfg.Scheduler.SweepBatchSize,
	}
}

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	machine *lifecycle.Machine
	cfg     Config
	now     func() time.Time
}

type Usecase interface {
	// http
	CreateBooking(ctx context.Context, payload *request.CreateBooking, renterID int64) (response.Booking, error)
	GetBooking(ctx context.Context, bookingID string, actorID int64) (response.Booking, error)
	ListBookings(ctx context.Context, userID int64, role string) ([]response.Booking, error)
	ApproveBooking(ctx context.Context, bookingID string, actorID int64) (response.Booking, error)
	RejectBooking(ctx context.Context, bookingID string, actorID int64, payload *request.RejectBooking) (response.Booking, error)
	InitiatePayment(ctx context.Context, bookingID string, actorID int64, payload *request.Payment) (response.Booking, error)
	CancelBooking(ctx context.Context, bookingID string, actorID int64, payload *request.CancelBooking) (response.Booking, error)
	CompleteBooking(ctx context.Context, bookingID string, actorID int64) (response.Booking, error)
	Quote(ctx context.Context, payload *request.Quote) (response.Quote, error)
	// scheduler
	ExpirePaymentWindow(ctx context.Context, payload *request.PaymentExpiration) error
	SweepLifecycle(ctx context.Context) (response.Sweep, error)
	// consumer
	MarkReviewLeft(ctx context.Context, payload *request.ReviewSubmitted) error
}

type Option func(*usecase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *usecase) {
		u.now = now
	}
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, cfg Config, opts ...Option) Usecase {
	u := &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		machine: lifecycle.NewMachine(repo),
		cfg:     cfg,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func parseBookingID(id string) (uuid.UUID, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errors.BadRequest("invalid booking id")
	}
	return bookingID, nil
}

// step describes one state-machine transition run by mutate.
type step struct {
	op     operation
	event  lifecycle.Event
	system bool
	reason string
	// prepare may adjust the fired booking before it is saved.
	prepare func(prev entity.Booking, actor lifecycle.Actor, next *entity.Booking) error
}

// mutate loads the booking, fires the step's event and saves the result
// against the version it read. A concurrent write is retried once on fresh
// state. When the booking already sits in the event's non-terminal target the
// current state is returned with applied false.
func (u *usecase) mutate(ctx context.Context, bookingID uuid.UUID, actorID int64, s step) (entity.Booking, bool, error) {
	for attempt := 0; attempt < 2; attempt++ {
		current, err := u.repo.FindBookingByID(ctx, bookingID)
		if err != nil {
			return entity.Booking{}, false, err
		}

		actor := lifecycle.System
		if !s.system {
			if actor, err = authorize(s.op, current, actorID); err != nil {
				return current, false, err
			}
		}

		target := lifecycle.Target(s.event)
		if current.Status == target && !target.IsTerminal() {
			return current, false, nil
		}

		next, err := u.machine.Fire(ctx, current, lifecycle.Trigger{
			Event:  s.event,
			Actor:  actor,
			Now:    u.now(),
			Reason: s.reason,
		})
		if err != nil {
			// a hold released by a concurrent writer looks like a conflict on a stale read
			if attempt == 0 && errors.Is(err, errors.ErrAvailabilityConflict) && u.changedSince(ctx, current) {
				continue
			}
			return current, false, err
		}
		if s.prepare != nil {
			if err := s.prepare(current, actor, &next); err != nil {
				return current, false, err
			}
		}

		err = u.repo.SaveBooking(ctx, &next, current.Version)
		if err == nil {
			return next, true, nil
		}
		if !errors.Is(err, errors.ErrVersionConflict) || attempt > 0 {
			return current, false, err
		}
		u.log.Warn(ctx, "booking changed concurrently, retrying", zap.String("booking_id", bookingID.String()), zap.String("event", string(s.event)))
	}
	return entity.Booking{}, false, errors.VersionConflict("booking was modified concurrently")
}

func (u *usecase) changedSince(ctx context.Context, b entity.Booking) bool {
	latest, err := u.repo.FindBookingByID(ctx, b.ID)
	return err == nil && latest.Version != b.Version
}

// releaseHold frees the listing dates held by b. The booking is already
// persisted at this point so a failure is logged only.
func (u *usecase) releaseHold(ctx context.Context, b entity.Booking) {
	if err := u.repo.ReleaseAvailability(ctx, b.ListingID, b.ID); err != nil {
		u.log.Error(ctx, "error release availability hold", zap.String("booking_id", b.ID.String()), err)
	}
}
