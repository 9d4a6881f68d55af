package repositories_test

import (
	"context"
	"rental-booking-service/config"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/module/booking/repositories"
	"rental-booking-service/internal/pkg/errors"
	log_internal "rental-booking-service/internal/pkg/log"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) repositories.Repositories {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	locker := redsync.New(goredis.NewPool(client))
	return repositories.New(nil, log_internal.GetLogger(), nil, client, locker, nil, nil, &config.Config{})
}

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestHoldAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("overlap is rejected, back to back is not", func(t *testing.T) {
		repo := setupRedis(t)
		first := entity.Hold{BookingID: uuid.New(), Start: day(1), End: day(4)}
		require.NoError(t, repo.HoldAvailability(ctx, 11, first))

		err := repo.HoldAvailability(ctx, 11, entity.Hold{BookingID: uuid.New(), Start: day(3), End: day(5)})
		assert.ErrorIs(t, err, errors.ErrAvailabilityConflict)

		assert.NoError(t, repo.HoldAvailability(ctx, 11, entity.Hold{BookingID: uuid.New(), Start: day(4), End: day(6)}))
		assert.NoError(t, repo.HoldAvailability(ctx, 12, entity.Hold{BookingID: uuid.New(), Start: day(1), End: day(4)}))
	})

	t.Run("same booking holds twice", func(t *testing.T) {
		repo := setupRedis(t)
		hold := entity.Hold{BookingID: uuid.New(), Start: day(1), End: day(4)}
		require.NoError(t, repo.HoldAvailability(ctx, 11, hold))
		assert.NoError(t, repo.HoldAvailability(ctx, 11, hold))
	})

	t.Run("concurrent renters, one wins", func(t *testing.T) {
		repo := setupRedis(t)
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			conflicts int
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := repo.HoldAvailability(ctx, 11, entity.Hold{BookingID: uuid.New(), Start: day(1), End: day(4)})
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					succeeded++
				} else if errors.Is(err, errors.ErrAvailabilityConflict) {
					conflicts++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 7, conflicts)
	})
}

func TestReleaseAvailability(t *testing.T) {
	ctx := context.Background()
	repo := setupRedis(t)
	hold := entity.Hold{BookingID: uuid.New(), Start: day(1), End: day(4)}
	require.NoError(t, repo.HoldAvailability(ctx, 11, hold))

	held, err := repo.HasHold(ctx, 11, hold.BookingID)
	require.NoError(t, err)
	assert.True(t, held)

	available, err := repo.CheckAvailable(ctx, 11, day(2), day(3))
	require.NoError(t, err)
	assert.False(t, available)

	require.NoError(t, repo.ReleaseAvailability(ctx, 11, hold.BookingID))
	assert.NoError(t, repo.ReleaseAvailability(ctx, 11, hold.BookingID))

	held, err = repo.HasHold(ctx, 11, hold.BookingID)
	require.NoError(t, err)
	assert.False(t, held)

	available, err = repo.CheckAvailable(ctx, 11, day(2), day(3))
	require.NoError(t, err)
	assert.True(t, available)
}
