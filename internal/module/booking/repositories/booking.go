package repositories

import (
	"context"
	"database/sql"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/pkg/errors"
	"time"

	"github.com/google/uuid"
	"go.elastic.co/apm"
)

const bookingColumns = `id, reference_number, listing_id, owner_id, renter_id, start_date, end_date, guest_count,
	nightly_rate, nights, base_price, cleaning_fee, service_fee, tax_amount, total_cost, currency,
	status, special_requests, cancellation_reason, cancelled_by, refund_amount, review_left,
	created_at, approved_at, rejected_at, confirmed_at, activated_at, completed_at, cancelled_at, updated_at, version`

const insertBookingQuery = `INSERT INTO bookings (` + bookingColumns + `) VALUES (
	:id, :reference_number, :listing_id, :owner_id, :renter_id, :start_date, :end_date, :guest_count,
	:nightly_rate, :nights, :base_price, :cleaning_fee, :service_fee, :tax_amount, :total_cost, :currency,
	:status, :special_requests, :cancellation_reason, :cancelled_by, :refund_amount, :review_left,
	:created_at, :approved_at, :rejected_at, :confirmed_at, :activated_at, :completed_at, :cancelled_at, :updated_at, :version)`

// Only lifecycle columns are writable after insert; parties, dates and the
// financial snapshot are not part of the SET list.
const updateBookingQuery = `UPDATE bookings SET
	status = $3, cancellation_reason = $4, cancelled_by = $5, refund_amount = $6, review_left = $7,
	approved_at = $8, rejected_at = $9, confirmed_at = $10, activated_at = $11, completed_at = $12,
	cancelled_at = $13, updated_at = $14, version = version + 1
	WHERE id = $1 AND version = $2`

const insertTransactionQuery = `INSERT INTO transactions (id, booking_id, amount, currency, payment_method, status, reference_number, created_at)
	VALUES (:id, :booking_id, :amount, :currency, :payment_method, :status, :reference_number, :created_at)
	ON CONFLICT (booking_id) DO NOTHING`

const (
	findBookingByIDQuery     = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	findBookingsByRenter     = `SELECT ` + bookingColumns + ` FROM bookings WHERE renter_id = $1 ORDER BY start_date DESC`
	findBookingsByOwner      = `SELECT ` + bookingColumns + ` FROM bookings WHERE owner_id = $1 ORDER BY start_date DESC`
	findBookingsDueQuery     = `SELECT ` + bookingColumns + ` FROM bookings WHERE ((status = 'confirmed' AND start_date <= $1) OR (status = 'active' AND end_date < $1)) AND id > $2 ORDER BY id LIMIT $3`
	findTransactionByBooking = `SELECT id, booking_id, amount, currency, payment_method, status, reference_number, created_at FROM transactions WHERE booking_id = $1`
)

func updateArgs(b *entity.Booking, expectedVersion int64) []interface{} {
	return []interface{}{
		b.ID, expectedVersion,
		b.Status, b.CancellationReason, b.CancelledBy, b.RefundAmount, b.ReviewLeft,
		b.ApprovedAt, b.RejectedAt, b.ConfirmedAt, b.ActivatedAt, b.CompletedAt,
		b.CancelledAt, b.UpdatedAt,
	}
}

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, booking *entity.Booking) error {
	span, ctx := apm.StartSpan(ctx, "InsertBooking", "db.postgresql.query")
	defer span.End()

	booking.Version = 1
	if _, err := r.db.NamedExecContext(ctx, insertBookingQuery, booking); err != nil {
		r.log.Error(ctx, "error insert booking", err)
		return errors.InternalServerError("error insert booking")
	}
	return nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "FindBookingByID", "db.postgresql.query")
	defer span.End()

	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, findBookingByIDQuery, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find booking by id", err)
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// SaveBooking implements Repositories. It only writes when the stored version
// still equals expectedVersion.
func (r *repositories) SaveBooking(ctx context.Context, booking *entity.Booking, expectedVersion int64) error {
	span, ctx := apm.StartSpan(ctx, "SaveBooking", "db.postgresql.query")
	defer span.End()

	res, err := r.db.ExecContext(ctx, updateBookingQuery, updateArgs(booking, expectedVersion)...)
	if err != nil {
		r.log.Error(ctx, "error save booking", err)
		return errors.InternalServerError("error save booking")
	}
	if err := checkVersion(res); err != nil {
		return err
	}

	booking.Version = expectedVersion + 1
	return nil
}

// SaveBookingWithTransaction implements Repositories. The status change and
// the payment record commit together or not at all.
func (r *repositories) SaveBookingWithTransaction(ctx context.Context, booking *entity.Booking, expectedVersion int64, txn *entity.Transaction) error {
	span, ctx := apm.StartSpan(ctx, "SaveBookingWithTransaction", "db.postgresql.query")
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	res, err := tx.ExecContext(ctx, updateBookingQuery, updateArgs(booking, expectedVersion)...)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error save booking", err)
		return errors.InternalServerError("error save booking")
	}
	if err := checkVersion(res); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.NamedExecContext(ctx, insertTransactionQuery, txn); err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error insert transaction", err)
		return errors.InternalServerError("error insert transaction")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	booking.Version = expectedVersion + 1
	return nil
}

func checkVersion(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error read affected rows")
	}
	if n == 0 {
		return errors.VersionConflict("booking was modified concurrently")
	}
	return nil
}

// FindTransactionByBookingID implements Repositories. It returns nil when the
// booking has no payment yet.
func (r *repositories) FindTransactionByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Transaction, error) {
	span, ctx := apm.StartSpan(ctx, "FindTransactionByBookingID", "db.postgresql.query")
	defer span.End()

	var txn entity.Transaction
	err := r.db.GetContext(ctx, &txn, findTransactionByBooking, bookingID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find transaction by booking id", err)
		return nil, errors.InternalServerError("error find transaction by booking id")
	}
	return &txn, nil
}

// InsertTransaction implements Repositories. A booking keeps its first
// payment record; later inserts are ignored.
func (r *repositories) InsertTransaction(ctx context.Context, txn *entity.Transaction) error {
	span, ctx := apm.StartSpan(ctx, "InsertTransaction", "db.postgresql.query")
	defer span.End()

	if _, err := r.db.NamedExecContext(ctx, insertTransactionQuery, txn); err != nil {
		r.log.Error(ctx, "error insert transaction", err)
		return errors.InternalServerError("error insert transaction")
	}
	return nil
}

// FindBookingsByRenter implements Repositories.
func (r *repositories) FindBookingsByRenter(ctx context.Context, renterID int64) ([]entity.Booking, error) {
	return r.selectBookings(ctx, "FindBookingsByRenter", findBookingsByRenter, renterID)
}

// FindBookingsByOwner implements Repositories.
func (r *repositories) FindBookingsByOwner(ctx context.Context, ownerID int64) ([]entity.Booking, error) {
	return r.selectBookings(ctx, "FindBookingsByOwner", findBookingsByOwner, ownerID)
}

// FindBookingsDue implements Repositories. Pages are keyed by id: pass the
// last id of the previous page, or uuid.Nil for the first one.
func (r *repositories) FindBookingsDue(ctx context.Context, today time.Time, after uuid.UUID, limit int) ([]entity.Booking, error) {
	return r.selectBookings(ctx, "FindBookingsDue", findBookingsDueQuery, today, after, limit)
}

func (r *repositories) selectBookings(ctx context.Context, name, query string, args ...interface{}) ([]entity.Booking, error) {
	span, ctx := apm.StartSpan(ctx, name, "db.postgresql.query")
	defer span.End()

	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		r.log.Error(ctx, "error select bookings", name, err)
		return nil, errors.InternalServerError("error find bookings")
	}
	return bookings, nil
}
