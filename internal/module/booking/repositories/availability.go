package repositories

import (
	"context"
	"fmt"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/pkg/errors"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.elastic.co/apm"
)

const (
	holdLockExpiry = 10 * time.Second
	holdLockTries  = 16
)

func holdsKey(listingID int64) string {
	return fmt.Sprintf("availability:listing:%d", listingID)
}

func holdsLockKey(listingID int64) string {
	return fmt.Sprintf("lock:listing:%d", listingID)
}

func (r *repositories) holds(ctx context.Context, listingID int64) ([]entity.Hold, error) {
	raw, err := r.redisClient.HGetAll(ctx, holdsKey(listingID)).Result()
	if err != nil {
		r.log.Error(ctx, "error get listing holds", err)
		return nil, errors.InternalServerError("error get listing holds")
	}

	holds := make([]entity.Hold, 0, len(raw))
	for field, value := range raw {
		var h entity.Hold
		if err := json.Unmarshal([]byte(value), &h); err != nil {
			r.log.Warn(ctx, "skip malformed hold", field, err)
			continue
		}
		holds = append(holds, h)
	}
	return holds, nil
}

// CheckAvailable implements Repositories.
func (r *repositories) CheckAvailable(ctx context.Context, listingID int64, start, end time.Time) (bool, error) {
	span, ctx := apm.StartSpan(ctx, "CheckAvailable", "db.redis")
	defer span.End()

	holds, err := r.holds(ctx, listingID)
	if err != nil {
		return false, err
	}
	for _, h := range holds {
		if h.Overlaps(start, end) {
			return false, nil
		}
	}
	return true, nil
}

// HoldAvailability implements Repositories. Check and write run under a
// per-listing lock so two renters cannot both hold overlapping dates.
// Holding again with the same booking id is a no-op.
func (r *repositories) HoldAvailability(ctx context.Context, listingID int64, hold entity.Hold) error {
	span, ctx := apm.StartSpan(ctx, "HoldAvailability", "db.redis")
	defer span.End()

	mutex := r.locker.NewMutex(holdsLockKey(listingID),
		redsync.WithExpiry(holdLockExpiry),
		redsync.WithTries(holdLockTries),
	)
	if err := mutex.LockContext(ctx); err != nil {
		r.log.Error(ctx, "error lock listing", err)
		return errors.InternalServerError("error lock listing")
	}
	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			r.log.Warn(ctx, "error unlock listing", err)
		}
	}()

	holds, err := r.holds(ctx, listingID)
	if err != nil {
		return err
	}
	for _, h := range holds {
		if h.BookingID == hold.BookingID {
			return nil
		}
		if h.Overlaps(hold.Start, hold.End) {
			return errors.AvailabilityConflict("listing is already booked for these dates")
		}
	}

	value, err := json.Marshal(hold)
	if err != nil {
		return errors.InternalServerError("error encode hold")
	}
	if err := r.redisClient.HSet(ctx, holdsKey(listingID), hold.BookingID.String(), value).Err(); err != nil {
		r.log.Error(ctx, "error set hold", err)
		return errors.InternalServerError("error set hold")
	}
	return nil
}

// ReleaseAvailability implements Repositories. Releasing a missing hold is
// not an error.
func (r *repositories) ReleaseAvailability(ctx context.Context, listingID int64, bookingID uuid.UUID) error {
	span, ctx := apm.StartSpan(ctx, "ReleaseAvailability", "db.redis")
	defer span.End()

	if err := r.redisClient.HDel(ctx, holdsKey(listingID), bookingID.String()).Err(); err != nil {
		r.log.Error(ctx, "error release hold", err)
		return errors.InternalServerError("error release hold")
	}
	return nil
}

// HasHold implements Repositories.
func (r *repositories) HasHold(ctx context.Context, listingID int64, bookingID uuid.UUID) (bool, error) {
	span, ctx := apm.StartSpan(ctx, "HasHold", "db.redis")
	defer span.End()

	ok, err := r.redisClient.HExists(ctx, holdsKey(listingID), bookingID.String()).Result()
	if err != nil {
		r.log.Error(ctx, "error check hold", err)
		return false, errors.InternalServerError("error check hold")
	}
	return ok, nil
}
