package handler

import (
	"context"
	"fmt"
	"rental-booking-service/internal/module/booking/models/request"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
)

func (h *BookingHandler) PaymentWindowExpired(ctx context.Context, t *asynq.Task) error {
	var req request.PaymentExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Usecase.ExpirePaymentWindow(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error expire payment window: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) LifecycleSweep(ctx context.Context, t *asynq.Task) error {
	resp, err := h.Usecase.SweepLifecycle(ctx)
	if err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error sweep lifecycle: %v", err))
		return err
	}

	h.Log.Ctx(ctx).Info(fmt.Sprintf("lifecycle sweep processed %d, failed %d", resp.Processed, resp.Failed))
	return nil
}
