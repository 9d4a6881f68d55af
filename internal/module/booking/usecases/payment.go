package usecases

import (
	"context"
	"rental-booking-service/internal/module/booking/lifecycle"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/module/booking/models/request"
	"rental-booking-service/internal/module/booking/models/response"
	"rental-booking-service/internal/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiatePayment captures the booking total and confirms the booking. The
// booking id is the gateway idempotency key, so a retry after a timeout or a
// lost response reuses the first capture. A failed capture leaves the booking
// approved.
func (u *usecase) InitiatePayment(ctx context.Context, bookingID string, actorID int64, payload *request.Payment) (response.Booking, error) {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	current, err := u.repo.FindBookingByID(ctx, id)
	if err != nil {
		return response.Booking{}, err
	}
	actor, err := authorize(opPay, current, actorID)
	if err != nil {
		return response.Booking{}, err
	}

	stored, err := u.repo.FindTransactionByBookingID(ctx, id)
	if err != nil {
		return response.Booking{}, err
	}
	if current.Status == entity.StatusConfirmed {
		return response.NewBooking(current, stored), nil
	}
	if stored != nil && stored.Status == entity.TransactionRefunded {
		return response.Booking{}, errors.PaymentError(errors.CodeCaptureRefunded, "an earlier capture for this booking was refunded")
	}

	if payload.TotalAmount != nil && *payload.TotalAmount != current.TotalCost {
		return response.Booking{}, errors.ValidationError(errors.CodeAmountMismatch, "amount does not match booking total "+current.TotalCost.String())
	}

	// validate before charging; the fired state is rebuilt after capture
	if _, err := u.machine.Fire(ctx, current, u.confirmTrigger(actor)); err != nil {
		return response.Booking{}, err
	}

	captureCtx, cancel := context.WithTimeout(ctx, u.cfg.CaptureTimeout)
	defer cancel()

	capture, err := u.repo.CapturePayment(captureCtx, request.CapturePayment{
		IdempotencyKey: current.ID.String(),
		Amount:         current.TotalCost,
		Currency:       current.Currency,
		PaymentMethod:  payload.PaymentMethod,
		Details:        payload.Details,
		Description:    "booking " + current.ReferenceNumber,
	})
	if err != nil {
		u.log.Warn(ctx, "payment capture failed", zap.String("booking_id", id.String()), err)
		return response.Booking{}, err
	}
	if capture.Amount != 0 && capture.Amount != current.TotalCost {
		u.log.Error(ctx, "captured amount differs from booking total", zap.String("booking_id", id.String()), zap.Stringer("captured", capture.Amount))
	}

	txn := entity.Transaction{
		ID:              uuid.New(),
		BookingID:       current.ID,
		Amount:          current.TotalCost,
		Currency:        current.Currency,
		PaymentMethod:   payload.PaymentMethod,
		Status:          entity.TransactionCompleted,
		ReferenceNumber: capture.ReferenceNumber,
		CreatedAt:       u.now(),
	}

	booking, err := u.confirm(ctx, current, actor, &txn)
	if err != nil {
		return response.Booking{}, err
	}

	if err := u.repo.DeleteTaskScheduler(ctx, paymentWindowTaskID(booking.ID)); err != nil {
		u.log.Warn(ctx, "error delete payment window task", zap.String("booking_id", booking.ID.String()), err)
	}

	u.log.Info(ctx, "booking confirmed", zap.String("booking_id", booking.ID.String()), zap.String("capture_reference", capture.ReferenceNumber))
	u.notify(ctx, NotifyConfirmed, booking, booking.RenterID, booking.OwnerID)

	return response.NewBooking(booking, &txn), nil
}

func (u *usecase) confirmTrigger(actor lifecycle.Actor) lifecycle.Trigger {
	return lifecycle.Trigger{Event: lifecycle.EventConfirm, Actor: actor, Now: u.now()}
}

// confirm persists the confirmed status together with the payment record.
// The money is already captured here, so a concurrent change is retried once.
// A booking that can no longer be confirmed gets its capture refunded; any
// other failure is returned as is and a retry replays the same capture.
func (u *usecase) confirm(ctx context.Context, current entity.Booking, actor lifecycle.Actor, txn *entity.Transaction) (entity.Booking, error) {
	for attempt := 0; ; attempt++ {
		next, err := u.machine.Fire(ctx, current, u.confirmTrigger(actor))
		if err != nil {
			if unconfirmable(err) {
				u.refundCapture(ctx, current, txn, "booking could not be confirmed")
			}
			return entity.Booking{}, err
		}

		err = u.repo.SaveBookingWithTransaction(ctx, &next, current.Version, txn)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, errors.ErrVersionConflict) || attempt > 0 {
			return entity.Booking{}, err
		}

		if current, err = u.repo.FindBookingByID(ctx, current.ID); err != nil {
			return entity.Booking{}, err
		}
		if current.Status == entity.StatusConfirmed {
			// a concurrent retry of the same payment won
			stored, err := u.repo.FindTransactionByBookingID(ctx, current.ID)
			if err == nil && stored != nil {
				*txn = *stored
			}
			return current, nil
		}
	}
}

// unconfirmable reports whether err is a lifecycle outcome that no retry of
// the same payment can overcome.
func unconfirmable(err error) bool {
	return errors.Is(err, errors.ErrInvalidTransition) ||
		errors.Is(err, errors.ErrAvailabilityConflict) ||
		errors.Is(err, errors.ErrTransitionRejected)
}

func captureRefundKey(id uuid.UUID) string {
	return "capture-refund:" + id.String()
}

func cancellationRefundKey(id uuid.UUID) string {
	return "refund:" + id.String()
}

// refundCapture returns an orphaned capture and records it as refunded. The
// record burns the booking's capture key: InitiatePayment refuses to charge
// again, so a gateway replay of the refunded capture is never confirmed.
func (u *usecase) refundCapture(ctx context.Context, b entity.Booking, txn *entity.Transaction, reason string) {
	stored, err := u.repo.FindTransactionByBookingID(ctx, b.ID)
	if err != nil {
		u.log.Error(ctx, "error check recorded payment before refund", zap.String("booking_id", b.ID.String()), err)
		return
	}
	if stored != nil {
		// the capture belongs to a recorded payment and is refunded through its cancellation
		u.log.Warn(ctx, "capture already recorded, not refunding", zap.String("booking_id", b.ID.String()), zap.String("status", string(stored.Status)))
		return
	}

	_, err = u.repo.RefundPayment(ctx, request.RefundPayment{
		IdempotencyKey:       captureRefundKey(b.ID),
		TransactionReference: txn.ReferenceNumber,
		Amount:               txn.Amount,
		Currency:             txn.Currency,
		Reason:               reason,
	})
	if err != nil {
		u.log.Error(ctx, "error refund orphaned capture", zap.String("booking_id", b.ID.String()), err)
	}

	refunded := *txn
	refunded.Status = entity.TransactionRefunded
	if err := u.repo.InsertTransaction(ctx, &refunded); err != nil {
		u.log.Error(ctx, "error record refunded capture", zap.String("booking_id", b.ID.String()), err)
	}
}
