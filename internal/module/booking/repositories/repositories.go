package repositories

import (
	"context"
	"rental-booking-service/config"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/module/booking/models/request"
	"rental-booking-service/internal/module/booking/models/response"
	"rental-booking-service/internal/pkg/log"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
)

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	httpClient  *circuit.HTTPClient
	redisClient *redis.Client
	locker      *redsync.Redsync
	taskClient  *asynq.Client
	inspector   *asynq.Inspector
	cfg         *config.Config
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	GetListing(ctx context.Context, listingID int64) (response.Listing, error)
	CapturePayment(ctx context.Context, payload request.CapturePayment) (response.Capture, error)
	RefundPayment(ctx context.Context, payload request.RefundPayment) (response.Refund, error)
	// redis
	CheckAvailable(ctx context.Context, listingID int64, start, end time.Time) (bool, error)
	HoldAvailability(ctx context.Context, listingID int64, hold entity.Hold) error
	ReleaseAvailability(ctx context.Context, listingID int64, bookingID uuid.UUID) error
	HasHold(ctx context.Context, listingID int64, bookingID uuid.UUID) (bool, error)
	// db
	InsertBooking(ctx context.Context, booking *entity.Booking) error
	FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error)
	SaveBooking(ctx context.Context, booking *entity.Booking, expectedVersion int64) error
	SaveBookingWithTransaction(ctx context.Context, booking *entity.Booking, expectedVersion int64, txn *entity.Transaction) error
	FindTransactionByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Transaction, error)
	InsertTransaction(ctx context.Context, txn *entity.Transaction) error
	FindBookingsByRenter(ctx context.Context, renterID int64) ([]entity.Booking, error)
	FindBookingsByOwner(ctx context.Context, ownerID int64) ([]entity.Booking, error)
	FindBookingsDue(ctx context.Context, today time.Time, after uuid.UUID, limit int) ([]entity.Booking, error)
	// scheduler
	SetTaskScheduler(ctx context.Context, taskType, taskID string, processAt time.Time, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
}

func New(
	db *sqlx.DB,
	log log.Logger,
	httpClient *circuit.HTTPClient,
	redisClient *redis.Client,
	locker *redsync.Redsync,
	taskClient *asynq.Client,
	inspector *asynq.Inspector,
	cfg *config.Config,
) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		httpClient:  httpClient,
		redisClient: redisClient,
		locker:      locker,
		taskClient:  taskClient,
		inspector:   inspector,
		cfg:         cfg,
	}
}
