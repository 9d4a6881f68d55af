package usecases

import (
	"context"
	"rental-booking-service/internal/module/booking/lifecycle"
	"rental-booking-service/internal/module/booking/models/response"
	"rental-booking-service/internal/pkg/helpers"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultSweepBatch = 100

// SweepLifecycle fires the time-driven check_in and complete transitions for
// every booking that is due. A booking whose whole stay has passed is checked
// in and completed in the same sweep.
func (u *usecase) SweepLifecycle(ctx context.Context) (response.Sweep, error) {
	limit := u.cfg.SweepBatchSize
	if limit <= 0 {
		limit = defaultSweepBatch
	}

	var result response.Sweep
	// each pass pages through every due booking once; a failing booking does
	// not hold back the ones after it and is not retried within the run
	failed := map[uuid.UUID]bool{}
	for {
		progressed := 0
		after := uuid.Nil
		for {
			now := u.now()
			due, err := u.repo.FindBookingsDue(ctx, helpers.DateOnly(now), after, limit)
			if err != nil {
				return result, err
			}

			for _, b := range due {
				after = b.ID
				event, ok := lifecycle.DueEvent(b, now)
				if !ok || failed[b.ID] {
					continue
				}

				booking, applied, err := u.mutate(ctx, b.ID, 0, step{event: event, system: true})
				if err != nil {
					failed[b.ID] = true
					result.Failed++
					u.log.Warn(ctx, "error sweep booking", zap.String("booking_id", b.ID.String()), zap.String("event", string(event)), err)
					continue
				}
				if !applied {
					continue
				}

				result.Processed++
				progressed++
				switch event {
				case lifecycle.EventCheckIn:
					u.notify(ctx, NotifyActive, booking, booking.RenterID, booking.OwnerID)
				case lifecycle.EventComplete:
					u.afterComplete(ctx, booking)
				}
			}

			if len(due) < limit {
				break
			}
		}

		// a stay checked in this pass may already be due to complete
		if progressed == 0 {
			break
		}
	}

	u.log.Info(ctx, "lifecycle sweep finished", zap.Int("processed", result.Processed), zap.Int("failed", result.Failed))
	return result, nil
}
