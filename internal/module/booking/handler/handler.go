package handler

import (
	"fmt"
	"rental-booking-service/internal/module/booking/models/entity"
	"rental-booking-service/internal/module/booking/models/request"
	"rental-booking-service/internal/module/booking/usecases"
	"rental-booking-service/internal/pkg/errors"
	"rental-booking-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func userID(ctx *fiber.Ctx) int64 {
	id, _ := ctx.Locals("user_id").(int64)
	return id
}

// parse decodes and validates the request body into req.
func (h *BookingHandler) parse(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return errors.BadRequest("error parse request")
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return errors.BadRequest(err.Error())
	}
	return nil
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req, userID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success request booking, waiting for owner approval")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	var req request.ListBookings
	if err := ctx.QueryParser(&req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse query"))
	}
	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.ListBookings(ctx.UserContext(), userID(ctx), req.Role)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) ShowBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetBooking(ctx.UserContext(), ctx.Params("id"), userID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show booking")
}

func (h *BookingHandler) ApproveBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ApproveBooking(ctx.UserContext(), ctx.Params("id"), userID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error approve booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success approve booking")
}

func (h *BookingHandler) RejectBooking(ctx *fiber.Ctx) error {
	var req request.RejectBooking
	if len(ctx.Body()) > 0 {
		if err := h.parse(ctx, &req); err != nil {
			return helpers.RespError(ctx, h.Log, err)
		}
	}

	resp, err := h.Usecase.RejectBooking(ctx.UserContext(), ctx.Params("id"), userID(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reject booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success reject booking")
}

func (h *BookingHandler) Payment(ctx *fiber.Ctx) error {
	var req request.Payment
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.InitiatePayment(ctx.UserContext(), ctx.Params("id"), userID(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success payment")
}

func (h *BookingHandler) CancelBooking(ctx *fiber.Ctx) error {
	var req request.CancelBooking
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CancelBooking(ctx.UserContext(), ctx.Params("id"), userID(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success cancel booking")
}

func (h *BookingHandler) CompleteBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.CompleteBooking(ctx.UserContext(), ctx.Params("id"), userID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error complete booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success complete booking")
}

func (h *BookingHandler) Quote(ctx *fiber.Ctx) error {
	var req request.Quote
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.Quote(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error quote: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success quote")
}

// ShowStatuses lists every status with its display metadata.
func (h *BookingHandler) ShowStatuses(ctx *fiber.Ctx) error {
	resp := make([]entity.StatusMeta, 0, len(entity.Statuses))
	for _, s := range entity.Statuses {
		resp = append(resp, s.Meta())
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success show statuses")
}
