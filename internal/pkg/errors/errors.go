package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind groups errors by how a caller is expected to react to them.
type Kind string

const (
	KindBadRequest           Kind = "bad_request"
	KindUnauthorized         Kind = "unauthorized"
	KindForbidden            Kind = "forbidden"
	KindNotFound             Kind = "not_found"
	KindInternal             Kind = "internal"
	KindValidation           Kind = "validation_error"
	KindAvailabilityConflict Kind = "availability_conflict"
	KindInvalidTransition    Kind = "invalid_transition"
	KindTransitionRejected   Kind = "transition_rejected"
	KindPayment              Kind = "payment_error"
	KindVersionConflict      Kind = "version_conflict"
)

// Reason codes rendered to clients. They are stable and the UI keys its
// messages on them.
const (
	CodeMalformedRequest  = "malformed_request"
	CodeDatesUnavailable  = "dates_unavailable"
	CodeAlreadyProcessed  = "already_processed"
	CodeWrongActor        = "wrong_actor"
	CodeCapacityExceeded  = "capacity_exceeded"
	CodeOwnListing        = "own_listing"
	CodeTooEarly          = "too_early"
	CodeStartDatePassed   = "start_date_passed"
	CodeAmountMismatch    = "amount_mismatch"
	CodePaymentDeclined   = "payment_declined"
	CodePaymentTimeout    = "payment_timeout"
	CodeGatewayDown       = "gateway_unavailable"
	CodeCaptureRefunded   = "capture_refunded"
	CodeStaleWrite        = "stale_write"
	CodeListingInactive   = "listing_inactive"
	CodeReviewNotEligible = "review_not_eligible"
)

type CustomError struct {
	HttpCode int    `json:"-"`
	Kind     Kind   `json:"kind"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message"`
}

func (e *CustomError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
	}
	return e.Message
}

// Is matches on kind, and on code when the target carries one, so sentinels
// such as ErrInvalidTransition match every concrete invalid transition.
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrValidation           = &CustomError{Kind: KindValidation}
	ErrAvailabilityConflict = &CustomError{Kind: KindAvailabilityConflict}
	ErrInvalidTransition    = &CustomError{Kind: KindInvalidTransition}
	ErrTransitionRejected   = &CustomError{Kind: KindTransitionRejected}
	ErrPayment              = &CustomError{Kind: KindPayment}
	ErrVersionConflict      = &CustomError{Kind: KindVersionConflict}
	ErrNotFound             = &CustomError{Kind: KindNotFound}
)

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func BadRequest(msg string) *CustomError {
	return &CustomError{HttpCode: http.StatusBadRequest, Kind: KindBadRequest, Code: CodeMalformedRequest, Message: msg}
}

func UnauthorizedError(msg string) *CustomError {
	return &CustomError{HttpCode: http.StatusUnauthorized, Kind: KindUnauthorized, Message: msg}
}

func ForbiddenError(msg string) *CustomError {
	return &CustomError{HttpCode: http.StatusForbidden, Kind: KindForbidden, Code: CodeWrongActor, Message: msg}
}

func NotFound(msg string) *CustomError {
	return &CustomError{HttpCode: http.StatusNotFound, Kind: KindNotFound, Message: msg}
}

func InternalServerError(msg string) *CustomError {
	return &CustomError{HttpCode: http.StatusInternalServerError, Kind: KindInternal, Message: msg}
}

func ValidationError(code, msg string) *CustomError {
	return &CustomError{HttpCode: http.StatusBadRequest, Kind: KindValidation, Code: code, Message: msg}
}

func AvailabilityConflict(msg string) *CustomError {
	return &CustomError{HttpCode: http.StatusConflict, Kind: KindAvailabilityConflict, Code: CodeDatesUnavailable, Message: msg}
}

func InvalidTransition(from, event string) *CustomError {
	return &CustomError{
		HttpCode: http.StatusConflict,
		Kind:     KindInvalidTransition,
		Code:     CodeAlreadyProcessed,
		Message:  fmt.Sprintf("cannot %s a booking in status %s", event, from),
	}
}

func TransitionRejected(code, msg string) *CustomError {
	httpCode := http.StatusUnprocessableEntity
	if code == CodeWrongActor {
		httpCode = http.StatusForbidden
	}
	return &CustomError{HttpCode: httpCode, Kind: KindTransitionRejected, Code: code, Message: msg}
}

func PaymentError(code, msg string) *CustomError {
	return &CustomError{HttpCode: http.StatusPaymentRequired, Kind: KindPayment, Code: code, Message: msg}
}

func VersionConflict(msg string) *CustomError {
	return &CustomError{HttpCode: http.StatusConflict, Kind: KindVersionConflict, Code: CodeStaleWrite, Message: msg}
}

// HttpCode resolves the status to answer with; unknown errors are 500.
func HttpCode(err error) int {
	var ce *CustomError
	if stderrors.As(err, &ce) && ce.HttpCode != 0 {
		return ce.HttpCode
	}
	return http.StatusInternalServerError
}
