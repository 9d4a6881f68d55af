package http

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"rental-booking-service/internal/pkg/errors"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())

	return app
}

// StartHttpServer blocks until SIGINT/SIGTERM, then drains in-flight requests.
func StartHttpServer(app *fiber.App, port string) {
	go func() {
		if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
			log.Fatalf("error start http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	if err := app.Shutdown(); err != nil {
		log.Printf("error shutdown http server: %v", err)
	}
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	} else if errors.As(err, new(*errors.CustomError)) {
		code = errors.HttpCode(err)
	}

	return ctx.Status(code).JSON(fiber.Map{
		"message": err.Error(),
	})
}
