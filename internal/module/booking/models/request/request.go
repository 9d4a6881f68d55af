package request

import "rental-booking-service/internal/module/booking/models/entity"

type CreateBooking struct {
	ListingID       int64  `json:"listing_id" validate:"required,gt=0"`
	StartDate       string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string `json:"end_date" validate:"required,datetime=2006-01-02"`
	GuestCount      int    `json:"guest_count" validate:"required,gte=1"`
	SpecialRequests string `json:"special_requests" validate:"max=1000"`
}

type Quote struct {
	ListingID  int64  `json:"listing_id" validate:"required,gt=0"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	GuestCount int    `json:"guest_count" validate:"required,gte=1"`
}

type RejectBooking struct {
	Reason string `json:"reason" validate:"max=500"`
}

type CancelBooking struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type Payment struct {
	// TotalAmount is optional; when sent it must equal the booking total.
	TotalAmount   *entity.Money     `json:"total_amount"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=card paypal bank_transfer wallet"`
	Details       map[string]string `json:"details"`
}

type ListBookings struct {
	Role string `query:"role" validate:"omitempty,oneof=renter owner"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

type PaymentExpiration struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type ReviewSubmitted struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	RenterID  int64  `json:"renter_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
}

type NotificationMessage struct {
	UserID          int64          `json:"user_id" validate:"required"`
	Event           string         `json:"event" validate:"required"`
	BookingID       string         `json:"booking_id" validate:"required"`
	ReferenceNumber string         `json:"reference_number"`
	Payload         map[string]any `json:"payload,omitempty"`
}

// CapturePayment is sent to the payment gateway. IdempotencyKey makes a
// replayed capture return the original result instead of charging again.
type CapturePayment struct {
	IdempotencyKey string            `json:"-"`
	Amount         entity.Money      `json:"amount"`
	Currency       string            `json:"currency"`
	PaymentMethod  string            `json:"payment_method"`
	Details        map[string]string `json:"details,omitempty"`
	Description    string            `json:"description"`
}

type RefundPayment struct {
	IdempotencyKey       string       `json:"-"`
	TransactionReference string       `json:"transaction_reference"`
	Amount               entity.Money `json:"amount"`
	Currency             string       `json:"currency"`
	Reason               string       `json:"reason"`
}
