package errors_test

import (
	"fmt"
	"net/http"
	"rental-booking-service/internal/pkg/errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	err := errors.InvalidTransition("rejected", "approve")

	assert.True(t, errors.Is(err, errors.ErrInvalidTransition))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), errors.ErrInvalidTransition))
	assert.False(t, errors.Is(err, errors.ErrTransitionRejected))

	rejected := errors.TransitionRejected(errors.CodeCapacityExceeded, "too many guests")
	assert.True(t, errors.Is(rejected, errors.TransitionRejected(errors.CodeCapacityExceeded, "")))
	assert.False(t, errors.Is(rejected, errors.TransitionRejected(errors.CodeWrongActor, "")))
}

func TestHttpCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", errors.ValidationError("invalid_date_range", "x"), http.StatusBadRequest},
		{"availability", errors.AvailabilityConflict("x"), http.StatusConflict},
		{"invalid transition", errors.InvalidTransition("cancelled", "cancel"), http.StatusConflict},
		{"wrong actor", errors.TransitionRejected(errors.CodeWrongActor, "x"), http.StatusForbidden},
		{"guard", errors.TransitionRejected(errors.CodeTooEarly, "x"), http.StatusUnprocessableEntity},
		{"payment", errors.PaymentError(errors.CodePaymentDeclined, "x"), http.StatusPaymentRequired},
		{"plain", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errors.HttpCode(tc.err))
		})
	}
}
