package handler

import (
	"fmt"
	"rental-booking-service/internal/module/booking/models/request"
	"rental-booking-service/internal/pkg/errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

const (
	TopicReviewSubmitted  = "review_submitted"
	TopicReviewPoisoned   = "review_submitted_poisoned"
	HandlerReviewConsumer = "booking_review_submitted"
)

// ConsumeReviewSubmitted marks a booking as reviewed. Messages that can never
// succeed go straight to the poison topic; other failures are returned so the
// router retries them.
func (h *BookingHandler) ConsumeReviewSubmitted(msg *message.Message) error {
	var req request.ReviewSubmitted
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.poison(msg, err)
		return nil
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.poison(msg, err)
		return nil
	}

	ctx := msg.Context()
	err := h.Usecase.MarkReviewLeft(ctx, &req)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errors.ErrTransitionRejected), errors.Is(err, errors.ErrNotFound), errors.Is(err, errors.ErrValidation):
		h.Log.Ctx(ctx).Warn(fmt.Sprintf("review event rejected: %v", err))
		h.poison(msg, err)
		return nil
	default:
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error mark review left: %v", err))
		return err
	}
}

func (h *BookingHandler) poison(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: TopicReviewSubmitted,
		ErrorMsg:    cause.Error(),
		Payload:     string(msg.Payload),
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)
	if err := h.Publish.Publish(TopicReviewPoisoned, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}
