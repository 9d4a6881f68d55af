package entity

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID              uuid.UUID `db:"id"`
	ReferenceNumber string    `db:"reference_number"`
	ListingID       int64     `db:"listing_id"`
	OwnerID         int64     `db:"owner_id"`
	RenterID        int64     `db:"renter_id"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	GuestCount      int       `db:"guest_count"`

	// Financial snapshot, frozen at creation.
	NightlyRate Money  `db:"nightly_rate"`
	Nights      int    `db:"nights"`
	BasePrice   Money  `db:"base_price"`
	CleaningFee Money  `db:"cleaning_fee"`
	ServiceFee  Money  `db:"service_fee"`
	TaxAmount   Money  `db:"tax_amount"`
	TotalCost   Money  `db:"total_cost"`
	Currency    string `db:"currency"`

	Status             Status `db:"status"`
	SpecialRequests    string `db:"special_requests"`
	CancellationReason string `db:"cancellation_reason"`
	CancelledBy        *int64 `db:"cancelled_by"`
	RefundAmount       Money  `db:"refund_amount"`
	ReviewLeft         bool   `db:"review_left"`

	CreatedAt   time.Time  `db:"created_at"`
	ApprovedAt  *time.Time `db:"approved_at"`
	RejectedAt  *time.Time `db:"rejected_at"`
	ConfirmedAt *time.Time `db:"confirmed_at"`
	ActivatedAt *time.Time `db:"activated_at"`
	CompletedAt *time.Time `db:"completed_at"`
	CancelledAt *time.Time `db:"cancelled_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	Version     int64      `db:"version"`
}

type Transaction struct {
	ID              uuid.UUID         `db:"id"`
	BookingID       uuid.UUID         `db:"booking_id"`
	Amount          Money             `db:"amount"`
	Currency        string            `db:"currency"`
	PaymentMethod   string            `db:"payment_method"`
	Status          TransactionStatus `db:"status"`
	ReferenceNumber string            `db:"reference_number"`
	CreatedAt       time.Time         `db:"created_at"`
}

// Hold is a tentative claim on a listing's calendar for [Start, End).
type Hold struct {
	BookingID uuid.UUID `json:"booking_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

func (h Hold) Overlaps(start, end time.Time) bool {
	return h.Start.Before(end) && start.Before(h.End)
}
