package response

import (
	"rental-booking-service/internal/module/booking/models/entity"
	"time"
)

type UserServiceValidate struct {
	IsValid   bool   `json:"is_valid"`
	UserID    int64  `json:"user_id"`
	EmailUser string `json:"email_user"`
}

type Listing struct {
	ID          int64        `json:"id"`
	OwnerID     int64        `json:"owner_id"`
	Title       string       `json:"title"`
	NightlyRate entity.Money `json:"nightly_rate"`
	// CleaningFee is nil when the listing charges none.
	CleaningFee *entity.Money `json:"cleaning_fee"`
	MaxGuests   int           `json:"max_guests"`
	Currency    string        `json:"currency"`
	Active      bool          `json:"active"`
}

type Capture struct {
	ID              string       `json:"id"`
	Status          string       `json:"status"`
	ReferenceNumber string       `json:"reference_number"`
	Amount          entity.Money `json:"amount"`
	Currency        string       `json:"currency"`
	Replayed        bool         `json:"replayed"`
}

type Refund struct {
	ID     string       `json:"id"`
	Status string       `json:"status"`
	Amount entity.Money `json:"amount"`
}

type Transaction struct {
	ID              string       `json:"id"`
	Amount          entity.Money `json:"amount"`
	Currency        string       `json:"currency"`
	PaymentMethod   string       `json:"payment_method"`
	Status          string       `json:"status"`
	ReferenceNumber string       `json:"reference_number"`
	CreatedAt       time.Time    `json:"created_at"`
}

type Booking struct {
	ID              string            `json:"id"`
	ReferenceNumber string            `json:"reference_number"`
	ListingID       int64             `json:"listing_id"`
	OwnerID         int64             `json:"owner_id"`
	RenterID        int64             `json:"renter_id"`
	StartDate       string            `json:"start_date"`
	EndDate         string            `json:"end_date"`
	GuestCount      int               `json:"guest_count"`
	Nights          int               `json:"nights"`
	NightlyRate     entity.Money      `json:"nightly_rate"`
	BasePrice       entity.Money      `json:"base_price"`
	CleaningFee     entity.Money      `json:"cleaning_fee"`
	ServiceFee      entity.Money      `json:"service_fee"`
	TaxAmount       entity.Money      `json:"tax_amount"`
	TotalCost       entity.Money      `json:"total_cost"`
	Currency        string            `json:"currency"`
	Status          entity.Status     `json:"status"`
	StatusMeta      entity.StatusMeta `json:"status_meta"`

	SpecialRequests    string        `json:"special_requests,omitempty"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
	RefundAmount       *entity.Money `json:"refund_amount,omitempty"`
	ReviewLeft         bool          `json:"review_left"`

	CreatedAt   time.Time  `json:"created_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	RejectedAt  *time.Time `json:"rejected_at,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	Transaction *Transaction `json:"transaction,omitempty"`
}

type Quote struct {
	ListingID   int64        `json:"listing_id"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	Nights      int          `json:"nights"`
	NightlyRate entity.Money `json:"nightly_rate"`
	BasePrice   entity.Money `json:"base_price"`
	CleaningFee entity.Money `json:"cleaning_fee"`
	ServiceFee  entity.Money `json:"service_fee"`
	TaxAmount   entity.Money `json:"tax_amount"`
	TotalCost   entity.Money `json:"total_cost"`
	Currency    string       `json:"currency"`
	Available   bool         `json:"available"`
}

type Sweep struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

func NewBooking(b entity.Booking, txn *entity.Transaction) Booking {
	resp := Booking{
		ID:                 b.ID.String(),
		ReferenceNumber:    b.ReferenceNumber,
		ListingID:          b.ListingID,
		OwnerID:            b.OwnerID,
		RenterID:           b.RenterID,
		StartDate:          b.StartDate.Format("2006-01-02"),
		EndDate:            b.EndDate.Format("2006-01-02"),
		GuestCount:         b.GuestCount,
		Nights:             b.Nights,
		NightlyRate:        b.NightlyRate,
		BasePrice:          b.BasePrice,
		CleaningFee:        b.CleaningFee,
		ServiceFee:         b.ServiceFee,
		TaxAmount:          b.TaxAmount,
		TotalCost:          b.TotalCost,
		Currency:           b.Currency,
		Status:             b.Status,
		StatusMeta:         b.Status.Meta(),
		SpecialRequests:    b.SpecialRequests,
		CancellationReason: b.CancellationReason,
		ReviewLeft:         b.ReviewLeft,
		CreatedAt:          b.CreatedAt,
		ApprovedAt:         b.ApprovedAt,
		RejectedAt:         b.RejectedAt,
		ConfirmedAt:        b.ConfirmedAt,
		ActivatedAt:        b.ActivatedAt,
		CompletedAt:        b.CompletedAt,
		CancelledAt:        b.CancelledAt,
	}

	if b.Status == entity.StatusCancelled {
		refund := b.RefundAmount
		resp.RefundAmount = &refund
	}

	if txn != nil {
		resp.Transaction = &Transaction{
			ID:              txn.ID.String(),
			Amount:          txn.Amount,
			Currency:        txn.Currency,
			PaymentMethod:   txn.PaymentMethod,
			Status:          string(txn.Status),
			ReferenceNumber: txn.ReferenceNumber,
			CreatedAt:       txn.CreatedAt,
		}
	}

	return resp
}
