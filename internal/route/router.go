package router

import (
	"rental-booking-service/internal/module/booking/handler"
	"rental-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *handler.BookingHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	v1 := Api.Group("/v1", m.ValidateToken)
	v1.Post("/quote", handlerBooking.Quote)

	bookings := v1.Group("/bookings")
	bookings.Post("", handlerBooking.CreateBooking)
	bookings.Get("", handlerBooking.ShowBookings)
	bookings.Get("/statuses", handlerBooking.ShowStatuses)
	bookings.Get("/:id", handlerBooking.ShowBooking)
	bookings.Post("/:id/approve", handlerBooking.ApproveBooking)
	bookings.Post("/:id/reject", handlerBooking.RejectBooking)
	bookings.Post("/:id/payment", handlerBooking.Payment)
	bookings.Post("/:id/cancel", handlerBooking.CancelBooking)
	bookings.Post("/:id/complete", handlerBooking.CompleteBooking)

	return app

}
