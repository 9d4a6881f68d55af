package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"rental-booking-service/internal/module/booking/mocks"
	"rental-booking-service/internal/module/booking/models/response"
	"rental-booking-service/internal/pkg/errors"
	log_internal "rental-booking-service/internal/pkg/log"
	"rental-booking-service/internal/pkg/middleware"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	repoMock := &mocks.Repositories{}
	m := &middleware.Middleware{Log: log_internal.Setup(), Repo: repoMock}

	app := fiber.New()
	app.Get("/me", m.ValidateToken, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id"), "email": c.Locals("email_user")})
	})

	repoMock.On("ValidateToken", mock.Anything, "good").Return(response.UserServiceValidate{IsValid: true, UserID: 7, EmailUser: "renter@example.com"}, nil)
	repoMock.On("ValidateToken", mock.Anything, "expired").Return(response.UserServiceValidate{}, errors.UnauthorizedError("invalid token"))

	testCases := []struct {
		name   string
		header string
		code   int
	}{
		{"valid bearer token", "Bearer good", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", "good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"rejected by user service", "Bearer expired", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.code, resp.StatusCode)
		})
	}
}
