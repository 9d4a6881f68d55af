package usecases

import (
	"context"
	"rental-booking-service/internal/module/booking/lifecycle"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/module/booking/models/request"
	"rental-booking-service/internal/module/booking/models/response"
	"time"

	"go.uber.org/zap"
)

// refundFor applies the cancellation policy. Owners refund in full; renters
// get a full refund only when cancelling more than the free window before
// check-in, otherwise the partial rate applies.
func (u *usecase) refundFor(b entity.Booking, actor lifecycle.Actor, paid *entity.Transaction, now time.Time) entity.Money {
	if paid == nil || paid.Status != entity.TransactionCompleted {
		return 0
	}
	if actor.Role == lifecycle.RoleOwner {
		return paid.Amount
	}
	if b.StartDate.Sub(now) > u.cfg.FreeCancellationWindow {
		return paid.Amount
	}
	return paid.Amount.MulRate(u.cfg.PartialRefundRate)
}

func (u *usecase) CancelBooking(ctx context.Context, bookingID string, actorID int64, payload *request.CancelBooking) (response.Booking, error) {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	// read per snapshot; a capture committed meanwhile bumps the version
	var txn *entity.Transaction
	booking, _, err := u.mutate(ctx, id, actorID, step{
		op:     opCancel,
		event:  lifecycle.EventCancel,
		reason: payload.Reason,
		prepare: func(prev entity.Booking, actor lifecycle.Actor, next *entity.Booking) error {
			paid, err := u.repo.FindTransactionByBookingID(ctx, prev.ID)
			if err != nil {
				return err
			}
			txn = paid
			next.RefundAmount = u.refundFor(prev, actor, txn, *next.CancelledAt)
			return nil
		},
	})
	if err != nil {
		return response.Booking{}, err
	}

	u.releaseHold(ctx, booking)
	if txn != nil && booking.RefundAmount > 0 {
		_, err := u.repo.RefundPayment(ctx, request.RefundPayment{
			IdempotencyKey:       cancellationRefundKey(booking.ID),
			TransactionReference: txn.ReferenceNumber,
			Amount:               booking.RefundAmount,
			Currency:             txn.Currency,
			Reason:               payload.Reason,
		})
		if err != nil {
			u.log.Error(ctx, "error request refund", zap.String("booking_id", booking.ID.String()), zap.Stringer("amount", booking.RefundAmount), err)
		}
	}

	u.log.Info(ctx, "booking cancelled", zap.String("booking_id", booking.ID.String()), zap.Stringer("refund", booking.RefundAmount))
	u.notify(ctx, NotifyCancelled, booking, booking.RenterID, booking.OwnerID)

	return response.NewBooking(booking, txn), nil
}
