package repositories

import (
	"context"
	"fmt"
	"net/http"
	"rental-booking-service/internal/module/booking/models/response"
	"rental-booking-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"go.elastic.co/apm"
)

// ValidateToken implements Repositories.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	span, ctx := apm.StartSpan(ctx, "ValidateToken", "external.http")
	defer span.End()

	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfg.UserService.Host, r.cfg.UserService.Port, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return response.UserServiceValidate{}, errors.InternalServerError("error build validate token request")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Error(ctx, "error call user service", err)
		return response.UserServiceValidate{}, errors.InternalServerError("error call user service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Error(ctx, "Invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		return response.UserServiceValidate{}, errors.InternalServerError("error decode user service response")
	}

	if !respData.IsValid {
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}
