package scheduler

import (
	"context"
	"fmt"
	"net/http"
	"rental-booking-service/config"
	"rental-booking-service/internal/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypePaymentWindowExpired = "booking:payment_window_expired"
	TypeLifecycleSweep       = "booking:lifecycle_sweep"
)

type Scheduler struct {
	Log log.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, port string) {
	ctx := context.Background()
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	mux := http.NewServeMux()
	// asynqmon needs the trailing slash with net/http.ServeMux.
	mux.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(":"+port, mux)
	s.Log.Error(ctx, "error start monitoring scheduler", err)
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

func (s *Scheduler) InitInspector(cfg *config.RedisConfig) *asynq.Inspector {
	return asynq.NewInspector(redisOpt(cfg))
}

// StartPeriodic enqueues taskType on cronspec until the process exits.
func (s *Scheduler) StartPeriodic(cfg *config.RedisConfig, cronspec, taskType string) {
	ctx := context.Background()
	sch := asynq.NewScheduler(redisOpt(cfg), nil)

	if _, err := sch.Register(cronspec, asynq.NewTask(taskType, nil)); err != nil {
		s.Log.Error(ctx, "error register periodic task", err)
		return
	}

	if err := sch.Run(); err != nil {
		s.Log.Error(ctx, "error start periodic scheduler", err)
	}
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, concurrency int, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
