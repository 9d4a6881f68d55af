package usecases

import (
	"context"
	"rental-booking-service/internal/module/booking/lifecycle"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/module/booking/models/request"
	"rental-booking-service/internal/module/booking/models/response"
	"rental-booking-service/internal/pkg/errors"
	"rental-booking-service/internal/pkg/scheduler"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func paymentWindowTaskID(bookingID uuid.UUID) string {
	return "payment_window:" + bookingID.String()
}

func (u *usecase) GetBooking(ctx context.Context, bookingID string, actorID int64) (response.Booking, error) {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	booking, err := u.repo.FindBookingByID(ctx, id)
	if err != nil {
		return response.Booking{}, err
	}
	if _, err := authorize(opView, booking, actorID); err != nil {
		return response.Booking{}, err
	}

	txn, err := u.repo.FindTransactionByBookingID(ctx, id)
	if err != nil {
		return response.Booking{}, err
	}
	return response.NewBooking(booking, txn), nil
}

func (u *usecase) ListBookings(ctx context.Context, userID int64, role string) ([]response.Booking, error) {
	var (
		bookings []entity.Booking
		err      error
	)
	if lifecycle.Role(role) == lifecycle.RoleOwner {
		bookings, err = u.repo.FindBookingsByOwner(ctx, userID)
	} else {
		bookings, err = u.repo.FindBookingsByRenter(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]response.Booking, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, response.NewBooking(b, nil))
	}
	return resp, nil
}

// ApproveBooking accepts a pending request and opens the payment window.
// Approving an approved booking returns it unchanged.
func (u *usecase) ApproveBooking(ctx context.Context, bookingID string, actorID int64) (response.Booking, error) {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	booking, applied, err := u.mutate(ctx, id, actorID, step{op: opApprove, event: lifecycle.EventApprove})
	if err != nil {
		return response.Booking{}, err
	}

	// scheduling is keyed by booking so a retried approve reschedules safely
	if err := u.schedulePaymentWindow(ctx, booking); err != nil {
		return response.Booking{}, err
	}

	if applied {
		u.log.Info(ctx, "booking approved", zap.String("booking_id", booking.ID.String()))
		u.notify(ctx, NotifyApproved, booking, booking.RenterID)
	}
	return response.NewBooking(booking, nil), nil
}

func (u *usecase) schedulePaymentWindow(ctx context.Context, b entity.Booking) error {
	if b.ApprovedAt == nil {
		return nil
	}

	payload, err := json.Marshal(request.PaymentExpiration{BookingID: b.ID.String()})
	if err != nil {
		return errors.InternalServerError("error marshal payment expiration")
	}

	processAt := b.ApprovedAt.Add(u.cfg.PaymentWindow)
	if _, err := u.repo.SetTaskScheduler(ctx, scheduler.TypePaymentWindowExpired, paymentWindowTaskID(b.ID), processAt, payload); err != nil {
		return err
	}
	return nil
}

func (u *usecase) RejectBooking(ctx context.Context, bookingID string, actorID int64, payload *request.RejectBooking) (response.Booking, error) {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	booking, _, err := u.mutate(ctx, id, actorID, step{op: opReject, event: lifecycle.EventReject, reason: payload.Reason})
	if err != nil {
		return response.Booking{}, err
	}

	u.releaseHold(ctx, booking)
	u.log.Info(ctx, "booking rejected", zap.String("booking_id", booking.ID.String()))
	u.notify(ctx, NotifyRejected, booking, booking.RenterID)

	return response.NewBooking(booking, nil), nil
}

// CompleteBooking lets the owner close an active stay once it has ended.
func (u *usecase) CompleteBooking(ctx context.Context, bookingID string, actorID int64) (response.Booking, error) {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	booking, _, err := u.mutate(ctx, id, actorID, step{op: opComplete, event: lifecycle.EventComplete})
	if err != nil {
		return response.Booking{}, err
	}

	u.afterComplete(ctx, booking)

	txn, err := u.repo.FindTransactionByBookingID(ctx, id)
	if err != nil {
		u.log.Warn(ctx, "error load transaction for completed booking", err)
	}
	return response.NewBooking(booking, txn), nil
}

func (u *usecase) afterComplete(ctx context.Context, b entity.Booking) {
	u.releaseHold(ctx, b)
	u.log.Info(ctx, "booking completed", zap.String("booking_id", b.ID.String()))
	u.notify(ctx, NotifyCompleted, b, b.RenterID, b.OwnerID)
}

// MarkReviewLeft records that the renter reviewed a completed stay. It is
// driven by review events and safe to redeliver.
func (u *usecase) MarkReviewLeft(ctx context.Context, payload *request.ReviewSubmitted) error {
	id, err := parseBookingID(payload.BookingID)
	if err != nil {
		return err
	}

	for attempt := 0; attempt < 2; attempt++ {
		booking, err := u.repo.FindBookingByID(ctx, id)
		if err != nil {
			return err
		}
		if booking.RenterID != payload.RenterID {
			return errors.TransitionRejected(errors.CodeWrongActor, "only the renter can review this booking")
		}
		if booking.Status != entity.StatusCompleted {
			return errors.TransitionRejected(errors.CodeReviewNotEligible, "only completed stays can be reviewed")
		}
		if booking.ReviewLeft {
			return nil
		}

		expected := booking.Version
		booking.ReviewLeft = true
		booking.UpdatedAt = u.now()
		err = u.repo.SaveBooking(ctx, &booking, expected)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errors.ErrVersionConflict) {
			return err
		}
	}
	return errors.VersionConflict("booking was modified concurrently")
}

// ExpirePaymentWindow cancels a booking that is still unpaid when its
// payment window closes. Bookings that moved on are left alone.
func (u *usecase) ExpirePaymentWindow(ctx context.Context, payload *request.PaymentExpiration) error {
	id, err := parseBookingID(payload.BookingID)
	if err != nil {
		return err
	}

	current, err := u.repo.FindBookingByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status != entity.StatusApproved || current.ApprovedAt == nil {
		return nil
	}
	if deadline := current.ApprovedAt.Add(u.cfg.PaymentWindow); u.now().Before(deadline) {
		// asynq retries the task later
		return errors.TransitionRejected(errors.CodeTooEarly, "payment window closes at "+deadline.Format(time.RFC3339))
	}

	booking, _, err := u.mutate(ctx, id, 0, step{
		event:  lifecycle.EventExpirePayment,
		system: true,
		reason: "payment window expired",
	})
	if errors.Is(err, errors.ErrInvalidTransition) {
		return nil
	}
	if err != nil {
		return err
	}

	u.releaseHold(ctx, booking)
	u.log.Info(ctx, "booking payment window expired", zap.String("booking_id", booking.ID.String()))
	u.notify(ctx, NotifyExpired, booking, booking.RenterID, booking.OwnerID)
	return nil
}
