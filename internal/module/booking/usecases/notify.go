package usecases

import (
	"context"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/module/booking/models/request"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const TopicNotification = "booking_notification"

const (
	NotifyRequested = "booking_requested"
	NotifyApproved  = "booking_approved"
	NotifyRejected  = "booking_rejected"
	NotifyConfirmed = "booking_confirmed"
	NotifyCancelled = "booking_cancelled"
	NotifyExpired   = "booking_payment_expired"
	NotifyActive    = "booking_active"
	NotifyCompleted = "booking_completed"
)

// notify publishes one message per recipient. Delivery is best effort and
// never fails the transition that triggered it.
func (u *usecase) notify(ctx context.Context, event string, b entity.Booking, userIDs ...int64) {
	for _, userID := range userIDs {
		payload := request.NotificationMessage{
			UserID:          userID,
			Event:           event,
			BookingID:       b.ID.String(),
			ReferenceNumber: b.ReferenceNumber,
			Payload: map[string]any{
				"status":     b.Status,
				"start_date": b.StartDate.Format("2006-01-02"),
				"end_date":   b.EndDate.Format("2006-01-02"),
				"total_cost": b.TotalCost,
			},
		}
		if b.Status == entity.StatusCancelled {
			payload.Payload["refund_amount"] = b.RefundAmount
			payload.Payload["reason"] = b.CancellationReason
		}

		raw, err := json.Marshal(payload)
		if err != nil {
			u.log.Error(ctx, "error marshal notification", err)
			continue
		}

		msg := message.NewMessage(watermill.NewUUID(), raw)
		if err := u.publish.Publish(TopicNotification, msg); err != nil {
			u.log.Error(ctx, "error publish notification", zap.String("event", event), zap.Int64("user_id", userID), err)
		}
	}
}
