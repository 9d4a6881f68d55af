package main

import (
	"context"
	"log"
	"rental-booking-service/config"
	"rental-booking-service/internal/module/booking/handler"
	"rental-booking-service/internal/module/booking/repositories"
	"rental-booking-service/internal/module/booking/usecases"
	"rental-booking-service/internal/pkg/database"
	"rental-booking-service/internal/pkg/http"
	"rental-booking-service/internal/pkg/httpclient"
	log_internal "rental-booking-service/internal/pkg/log"
	"rental-booking-service/internal/pkg/messagestream"
	"rental-booking-service/internal/pkg/middleware"
	"rental-booking-service/internal/pkg/redis"
	"rental-booking-service/internal/pkg/scheduler"
	router "rental-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, bookingHandler, sch := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start task workers and the periodic lifecycle sweep
	go sch.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency,
		[]string{scheduler.TypePaymentWindowExpired, scheduler.TypeLifecycleSweep},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.PaymentWindowExpired, bookingHandler.LifecycleSweep},
	)
	go sch.StartPeriodic(&cfg.Redis, cfg.Scheduler.SweepCron, scheduler.TypeLifecycleSweep)

	if cfg.Scheduler.MonitoringEnable {
		go sch.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *handler.BookingHandler, *scheduler.Scheduler) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	locker := redsync.New(goredis.NewPool(redisClient))
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	// init scheduler
	sch := &scheduler.Scheduler{Log: logger}
	taskClient := sch.InitClient(&cfg.Redis)
	inspector := sch.InitInspector(&cfg.Redis)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	bookingRepo := repositories.New(db, logger, httpClient, redisClient, locker, taskClient, inspector, cfg)
	bookingUsecase := usecases.New(bookingRepo, logger, publisher, usecases.ConfigFrom(cfg))
	middleware := middleware.Middleware{
		Log:  log_internal.Setup(),
		Repo: bookingRepo,
	}

	validator := validator.New()
	bookingHandler := handler.BookingHandler{
		Log:       log_internal.Setup(),
		Validator: validator,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}

	var messageRouters []*message.Router

	reviewRouter, err := messagestream.NewRouter(publisher, handler.TopicReviewPoisoned, handler.HandlerReviewConsumer, handler.TopicReviewSubmitted, subscriber, bookingHandler.ConsumeReviewSubmitted, cfg.MessageStream.MaxRetries)
	if err != nil {
		logger.Error(ctx, "Failed to create review_submitted router", err)
	} else {
		messageRouters = append(messageRouters, reviewRouter)
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &middleware)

	return r, messageRouters, &bookingHandler, sch

}
