package helpers

import (
	"rental-booking-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Message: message,
		Data:    data,
	})
}

// RespError renders err with the status its kind maps to. Errors outside the
// errors package are hidden behind a generic message.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	var ce *errors.CustomError
	if !errors.As(err, &ce) {
		log.Ctx(ctx.UserContext()).Error("unhandled error", zap.Error(err))
		ce = errors.InternalServerError("internal server error")
	}

	return ctx.Status(errors.HttpCode(ce)).JSON(Response{
		Message: ce.Message,
		Error:   ce,
	})
}
