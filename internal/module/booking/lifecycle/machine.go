// Package lifecycle holds the booking state machine. It validates and applies
// transitions on a copy of a booking; persisting the result and running side
// effects is the caller's job.
package lifecycle

import (
	"context"
	"fmt"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/pkg/errors"
	"rental-booking-service/internal/pkg/helpers"
	"time"

	"github.com/google/uuid"
)

type Event string

const (
	EventCreate        Event = "create"
	EventApprove       Event = "approve"
	EventReject        Event = "reject"
	EventConfirm       Event = "confirm"
	EventCancel        Event = "cancel"
	EventCheckIn       Event = "check_in"
	EventComplete      Event = "complete"
	EventExpirePayment Event = "expire_payment"
)

type Role string

const (
	RoleRenter Role = "renter"
	RoleOwner  Role = "owner"
	RoleSystem Role = "system"
)

type Actor struct {
	ID   int64
	Role Role
}

var System = Actor{Role: RoleSystem}

type Trigger struct {
	Event  Event
	Actor  Actor
	Now    time.Time
	Reason string
	// Capacity is the listing's guest limit, read on create only.
	Capacity int
}

// HoldChecker reports whether a booking still owns its availability hold.
type HoldChecker interface {
	HasHold(ctx context.Context, listingID int64, bookingID uuid.UUID) (bool, error)
}

type transition struct {
	from   []entity.Status
	to     entity.Status
	actors []Role
}

// none is the status of a booking that has not been created yet.
const none entity.Status = ""

var transitions = map[Event]transition{
	EventCreate:        {from: []entity.Status{none}, to: entity.StatusPendingApproval, actors: []Role{RoleRenter}},
	EventApprove:       {from: []entity.Status{entity.StatusPendingApproval}, to: entity.StatusApproved, actors: []Role{RoleOwner}},
	EventReject:        {from: []entity.Status{entity.StatusPendingApproval}, to: entity.StatusRejected, actors: []Role{RoleOwner}},
	EventConfirm:       {from: []entity.Status{entity.StatusApproved}, to: entity.StatusConfirmed, actors: []Role{RoleRenter}},
	EventCancel:        {from: []entity.Status{entity.StatusPendingApproval, entity.StatusApproved, entity.StatusConfirmed}, to: entity.StatusCancelled, actors: []Role{RoleRenter, RoleOwner}},
	EventExpirePayment: {from: []entity.Status{entity.StatusApproved}, to: entity.StatusCancelled, actors: []Role{RoleSystem}},
	EventCheckIn:       {from: []entity.Status{entity.StatusConfirmed}, to: entity.StatusActive, actors: []Role{RoleSystem}},
	EventComplete:      {from: []entity.Status{entity.StatusActive}, to: entity.StatusCompleted, actors: []Role{RoleOwner, RoleSystem}},
}

func (t transition) allowsFrom(s entity.Status) bool {
	for _, f := range t.from {
		if f == s {
			return true
		}
	}
	return false
}

func (t transition) allowsActor(r Role) bool {
	for _, a := range t.actors {
		if a == r {
			return true
		}
	}
	return false
}

// CanTransition reports whether event is legal from status, ignoring guards.
func CanTransition(from entity.Status, event Event) bool {
	t, ok := transitions[event]
	return ok && t.allowsFrom(from)
}

// Target is the status event leads to.
func Target(event Event) entity.Status {
	return transitions[event].to
}

type Machine struct {
	holds HoldChecker
}

func NewMachine(holds HoldChecker) *Machine {
	return &Machine{holds: holds}
}

// Fire applies t to b and returns the next state. b is not modified.
func (m *Machine) Fire(ctx context.Context, b entity.Booking, t Trigger) (entity.Booking, error) {
	tr, ok := transitions[t.Event]
	if !ok {
		return b, errors.InvalidTransition(string(b.Status), string(t.Event))
	}
	if b.Status.IsTerminal() || !tr.allowsFrom(b.Status) {
		return b, errors.InvalidTransition(string(b.Status), string(t.Event))
	}
	if !tr.allowsActor(t.Actor.Role) {
		return b, errors.TransitionRejected(errors.CodeWrongActor, fmt.Sprintf("%s may not %s this booking", t.Actor.Role, t.Event))
	}
	if err := guard(b, t); err != nil {
		return b, err
	}

	if tr.to == entity.StatusApproved || tr.to == entity.StatusConfirmed {
		held, err := m.holds.HasHold(ctx, b.ListingID, b.ID)
		if err != nil {
			return b, err
		}
		if !held {
			return b, errors.AvailabilityConflict("listing is no longer held for these dates")
		}
	}

	next := b
	next.Status = tr.to
	stamp(&next, t)
	return next, nil
}

func guard(b entity.Booking, t Trigger) error {
	today := helpers.DateOnly(t.Now)

	switch t.Event {
	case EventCreate:
		if !b.EndDate.After(b.StartDate) {
			return errors.ValidationError("invalid_date_range", "end date must be after start date")
		}
		if b.StartDate.Before(today) {
			return errors.TransitionRejected(errors.CodeStartDatePassed, "start date is in the past")
		}
		if b.GuestCount < 1 {
			return errors.ValidationError("invalid_guest_count", "guest count must be at least 1")
		}
		if b.GuestCount > t.Capacity {
			return errors.TransitionRejected(errors.CodeCapacityExceeded, fmt.Sprintf("listing accepts at most %d guests", t.Capacity))
		}
	case EventApprove, EventConfirm:
		if !today.Before(b.StartDate) {
			return errors.TransitionRejected(errors.CodeStartDatePassed, "check-in date has already been reached")
		}
	case EventCancel:
		if b.Status == entity.StatusConfirmed && !today.Before(b.StartDate) {
			return errors.TransitionRejected(errors.CodeStartDatePassed, "stay has already started")
		}
	case EventCheckIn:
		if today.Before(b.StartDate) {
			return errors.TransitionRejected(errors.CodeTooEarly, "check-in date not reached")
		}
	case EventComplete:
		if !today.After(b.EndDate) {
			return errors.TransitionRejected(errors.CodeTooEarly, "stay has not ended")
		}
	}
	return nil
}

func stamp(b *entity.Booking, t Trigger) {
	now := t.Now
	switch t.Event {
	case EventCreate:
		b.CreatedAt = now
	case EventApprove:
		b.ApprovedAt = &now
	case EventReject:
		b.RejectedAt = &now
		b.CancellationReason = t.Reason
	case EventConfirm:
		b.ConfirmedAt = &now
	case EventCancel, EventExpirePayment:
		b.CancelledAt = &now
		b.CancellationReason = t.Reason
		if t.Actor.Role != RoleSystem {
			id := t.Actor.ID
			b.CancelledBy = &id
		}
	case EventCheckIn:
		b.ActivatedAt = &now
	case EventComplete:
		b.CompletedAt = &now
	}
	b.UpdatedAt = now
}

// DueEvent reports the time-driven transition b is ready for at now, if any.
func DueEvent(b entity.Booking, now time.Time) (Event, bool) {
	today := helpers.DateOnly(now)
	switch b.Status {
	case entity.StatusConfirmed:
		if !today.Before(b.StartDate) {
			return EventCheckIn, true
		}
	case entity.StatusActive:
		if today.After(b.EndDate) {
			return EventComplete, true
		}
	}
	return "", false
}
