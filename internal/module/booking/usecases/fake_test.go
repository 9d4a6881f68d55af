package usecases_test

import (
	"bytes"
	"context"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/module/booking/models/request"
	"rental-booking-service/internal/module/booking/models/response"
	"rental-booking-service/internal/pkg/errors"
	"sort"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// memoryRepo is an in-memory Repositories with the same version and hold
// semantics as the postgres/redis implementation.
type memoryRepo struct {
	mu       sync.Mutex
	listings map[int64]response.Listing
	bookings map[uuid.UUID]entity.Booking
	txns     map[uuid.UUID]entity.Transaction
	holds    map[int64]map[uuid.UUID]entity.Hold
	tasks    map[string]time.Time

	captures      map[string]response.Capture
	charges       int
	refunds       []request.RefundPayment
	captureErr    error
	dropResponses int
	// holdErrAt makes the n-th HasHold call from now fail
	holdErrAt int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		listings: map[int64]response.Listing{},
		bookings: map[uuid.UUID]entity.Booking{},
		txns:     map[uuid.UUID]entity.Transaction{},
		holds:    map[int64]map[uuid.UUID]entity.Hold{},
		tasks:    map[string]time.Time{},
		captures: map[string]response.Capture{},
	}
}

func (r *memoryRepo) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	return response.UserServiceValidate{IsValid: true}, nil
}

func (r *memoryRepo) GetListing(ctx context.Context, listingID int64) (response.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[listingID]
	if !ok {
		return response.Listing{}, errors.NotFound("listing not found")
	}
	return l, nil
}

// CapturePayment charges once per idempotency key. dropResponses simulates
// a capture that succeeds at the gateway while the caller times out.
func (r *memoryRepo) CapturePayment(ctx context.Context, payload request.CapturePayment) (response.Capture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.captureErr != nil {
		return response.Capture{}, r.captureErr
	}

	c, ok := r.captures[payload.IdempotencyKey]
	if ok {
		c.Replayed = true
	} else {
		r.charges++
		c = response.Capture{ID: "cap_" + payload.IdempotencyKey, Status: "succeeded", ReferenceNumber: "ch_" + payload.IdempotencyKey, Amount: payload.Amount, Currency: payload.Currency}
		r.captures[payload.IdempotencyKey] = c
	}

	if r.dropResponses > 0 {
		r.dropResponses--
		return response.Capture{}, errors.PaymentError(errors.CodePaymentTimeout, "payment gateway timed out")
	}
	return c, nil
}

func (r *memoryRepo) RefundPayment(ctx context.Context, payload request.RefundPayment) (response.Refund, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refunds = append(r.refunds, payload)
	return response.Refund{ID: "re_1", Status: "succeeded", Amount: payload.Amount}, nil
}

func (r *memoryRepo) CheckAvailable(ctx context.Context, listingID int64, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.holds[listingID] {
		if h.Overlaps(start, end) {
			return false, nil
		}
	}
	return true, nil
}

func (r *memoryRepo) HoldAvailability(ctx context.Context, listingID int64, hold entity.Hold) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.holds[listingID] == nil {
		r.holds[listingID] = map[uuid.UUID]entity.Hold{}
	}
	for id, h := range r.holds[listingID] {
		if id == hold.BookingID {
			return nil
		}
		if h.Overlaps(hold.Start, hold.End) {
			return errors.AvailabilityConflict("listing is already booked for these dates")
		}
	}
	r.holds[listingID][hold.BookingID] = hold
	return nil
}

func (r *memoryRepo) ReleaseAvailability(ctx context.Context, listingID int64, bookingID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.holds[listingID], bookingID)
	return nil
}

func (r *memoryRepo) HasHold(ctx context.Context, listingID int64, bookingID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.holdErrAt > 0 {
		r.holdErrAt--
		if r.holdErrAt == 0 {
			return false, errors.InternalServerError("error check hold")
		}
	}
	_, ok := r.holds[listingID][bookingID]
	return ok, nil
}

func (r *memoryRepo) InsertBooking(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking.Version = 1
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *memoryRepo) FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	return b, nil
}

func (r *memoryRepo) save(booking *entity.Booking, expectedVersion int64) error {
	stored, ok := r.bookings[booking.ID]
	if !ok || stored.Version != expectedVersion {
		return errors.VersionConflict("booking was modified concurrently")
	}
	booking.Version = expectedVersion + 1
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *memoryRepo) SaveBooking(ctx context.Context, booking *entity.Booking, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(booking, expectedVersion)
}

func (r *memoryRepo) SaveBookingWithTransaction(ctx context.Context, booking *entity.Booking, expectedVersion int64, txn *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.save(booking, expectedVersion); err != nil {
		return err
	}
	if _, ok := r.txns[booking.ID]; !ok {
		r.txns[booking.ID] = *txn
	}
	return nil
}

func (r *memoryRepo) FindTransactionByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.txns[bookingID]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *memoryRepo) InsertTransaction(ctx context.Context, txn *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.txns[txn.BookingID]; !ok {
		r.txns[txn.BookingID] = *txn
	}
	return nil
}

func (r *memoryRepo) filter(keep func(entity.Booking) bool) []entity.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Booking{}
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func (r *memoryRepo) FindBookingsByRenter(ctx context.Context, renterID int64) ([]entity.Booking, error) {
	return r.filter(func(b entity.Booking) bool { return b.RenterID == renterID }), nil
}

func (r *memoryRepo) FindBookingsByOwner(ctx context.Context, ownerID int64) ([]entity.Booking, error) {
	return r.filter(func(b entity.Booking) bool { return b.OwnerID == ownerID }), nil
}

func (r *memoryRepo) FindBookingsDue(ctx context.Context, today time.Time, after uuid.UUID, limit int) ([]entity.Booking, error) {
	due := r.filter(func(b entity.Booking) bool {
		if bytes.Compare(b.ID[:], after[:]) <= 0 {
			return false
		}
		return (b.Status == entity.StatusConfirmed && !b.StartDate.After(today)) ||
			(b.Status == entity.StatusActive && b.EndDate.Before(today))
	})
	sort.Slice(due, func(i, j int) bool { return bytes.Compare(due[i].ID[:], due[j].ID[:]) < 0 })
	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (r *memoryRepo) SetTaskScheduler(ctx context.Context, taskType, taskID string, processAt time.Time, payload []byte) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[taskID]; !ok {
		r.tasks[taskID] = processAt
	}
	return taskID, nil
}

func (r *memoryRepo) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, taskID)
	return nil
}

// recordingPublisher keeps every published message.
type recordingPublisher struct {
	mu       sync.Mutex
	messages map[string][]*message.Message
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{messages: map[string][]*message.Message{}}
}

func (p *recordingPublisher) Publish(topic string, messages ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages[topic] = append(p.messages[topic], messages...)
	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) count(topic string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages[topic])
}
