package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer     HttpServerConfig     `envconfig:"HTTP_SERVER"`
	Database       DatabaseConfig       `envconfig:"DATABASE"`
	Redis          RedisConfig          `envconfig:"REDIS"`
	MessageStream  MessageStreamConfig  `envconfig:"MESSAGE_STREAM"`
	HttpClient     HttpClientConfig     `envconfig:"HTTP_CLIENT"`
	UserService    UserServiceConfig    `envconfig:"USER_SERVICE"`
	ListingService ListingServiceConfig `envconfig:"LISTING_SERVICE"`
	Payment        PaymentConfig        `envconfig:"PAYMENT"`
	Pricing        PricingConfig        `envconfig:"PRICING"`
	Cancellation   CancellationConfig   `envconfig:"CANCELLATION"`
	Scheduler      SchedulerConfig      `envconfig:"SCHEDULER"`
}

type HttpServerConfig struct {
	Port string `envconfig:"PORT" default:"9090"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:"postgres"`
	Name            string        `envconfig:"NAME" default:"rental_booking"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
	// MaxRetries bounds redelivery before a message lands in the poison queue.
	MaxRetries int `envconfig:"MAX_RETRIES" default:"3"`
}

type HttpClientConfig struct {
	// Type selects the breaker: consecutive, threshold or rate.
	Type             string        `envconfig:"TYPE" default:"consecutive"`
	Timeout          time.Duration `envconfig:"TIMEOUT" default:"10s"`
	ConsecutiveFails int64         `envconfig:"CONSECUTIVE_FAILS" default:"5"`
	Threshold        int64         `envconfig:"THRESHOLD" default:"10"`
	ErrorRate        float64       `envconfig:"ERROR_RATE" default:"0.5"`
	MinSamples       int64         `envconfig:"MIN_SAMPLES" default:"20"`
}

type UserServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"9091"`
}

type ListingServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"9092"`
}

type PaymentConfig struct {
	GatewayURL     string        `envconfig:"GATEWAY_URL" default:"http://localhost:9093"`
	CaptureTimeout time.Duration `envconfig:"CAPTURE_TIMEOUT" default:"15s"`
	// Window is how long a renter has to pay after the owner approves.
	Window   time.Duration `envconfig:"WINDOW" default:"24h"`
	Currency string        `envconfig:"CURRENCY" default:"USD"`
}

type PricingConfig struct {
	ServiceFeeRate float64 `envconfig:"SERVICE_FEE_RATE" default:"0.10"`
	TaxRate        float64 `envconfig:"TAX_RATE" default:"0.08"`
}

type CancellationConfig struct {
	FreeWindow        time.Duration `envconfig:"FREE_WINDOW" default:"48h"`
	PartialRefundRate float64       `envconfig:"PARTIAL_REFUND_RATE" default:"0.5"`
}

type SchedulerConfig struct {
	Concurrency      int    `envconfig:"CONCURRENCY" default:"10"`
	SweepCron        string `envconfig:"SWEEP_CRON" default:"@every 15m"`
	SweepBatchSize   int    `envconfig:"SWEEP_BATCH_SIZE" default:"100"`
	MonitoringEnable bool   `envconfig:"MONITORING_ENABLE" default:"false"`
	MonitoringPort   string `envconfig:"MONITORING_PORT" default:"8080"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}
	return &cfg
}
