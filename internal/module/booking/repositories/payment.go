package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"rental-booking-service/internal/module/booking/models/request"
	"rental-booking-service/internal/module/booking/models/response"
	"rental-booking-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
	"go.elastic.co/apm"
)

const idempotencyHeader = "Idempotency-Key"

type gatewayError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CapturePayment implements Repositories. A replay with the same idempotency
// key returns the original capture; the gateway never charges twice.
func (r *repositories) CapturePayment(ctx context.Context, payload request.CapturePayment) (response.Capture, error) {
	span, ctx := apm.StartSpan(ctx, "CapturePayment", "external.payment")
	defer span.End()

	var capture response.Capture
	if err := r.postGateway(ctx, "/v1/captures", payload.IdempotencyKey, payload, &capture); err != nil {
		return response.Capture{}, err
	}
	if capture.Status != "succeeded" {
		return response.Capture{}, errors.PaymentError(errors.CodePaymentDeclined, fmt.Sprintf("capture %s", capture.Status))
	}
	return capture, nil
}

// RefundPayment implements Repositories.
func (r *repositories) RefundPayment(ctx context.Context, payload request.RefundPayment) (response.Refund, error) {
	span, ctx := apm.StartSpan(ctx, "RefundPayment", "external.payment")
	defer span.End()

	var refund response.Refund
	if err := r.postGateway(ctx, "/v1/refunds", payload.IdempotencyKey, payload, &refund); err != nil {
		return response.Refund{}, err
	}
	return refund, nil
}

func (r *repositories) postGateway(ctx context.Context, path, idempotencyKey string, body, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return errors.InternalServerError("error encode gateway request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Payment.GatewayURL+path, bytes.NewReader(encoded))
	if err != nil {
		return errors.InternalServerError("error build gateway request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(idempotencyHeader, idempotencyKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Error(ctx, "error call payment gateway", path, err)
		return transportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.PaymentError(errors.CodePaymentTimeout, "payment gateway response interrupted")
	}

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.InternalServerError("error decode gateway response")
		}
		return nil
	case resp.StatusCode == http.StatusConflict:
		// the same key is still being processed by another request
		return errors.PaymentError(errors.CodePaymentTimeout, "payment is still being processed")
	case resp.StatusCode >= http.StatusInternalServerError:
		return errors.PaymentError(errors.CodeGatewayDown, "payment gateway unavailable")
	default:
		var ge gatewayError
		_ = json.Unmarshal(raw, &ge)
		msg := ge.Message
		if msg == "" {
			msg = fmt.Sprintf("payment gateway answered %d", resp.StatusCode)
		}
		return errors.PaymentError(errors.CodePaymentDeclined, msg)
	}
}

func transportError(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, circuit.ErrBreakerTimeout) {
		return errors.PaymentError(errors.CodePaymentTimeout, "payment gateway timed out")
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.PaymentError(errors.CodePaymentTimeout, "payment gateway timed out")
	}
	return errors.PaymentError(errors.CodeGatewayDown, "payment gateway unavailable")
}
