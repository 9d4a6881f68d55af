package httpclient_test

import (
	"rental-booking-service/config"
	"rental-booking-service/internal/pkg/httpclient"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitCircuitBreaker(t *testing.T) {
	cfg := &config.HttpClientConfig{
		Timeout:          time.Second,
		ConsecutiveFails: 2,
		Threshold:        3,
		ErrorRate:        0.5,
		MinSamples:       10,
	}

	t.Run("consecutive trips after configured failures", func(t *testing.T) {
		cb := httpclient.InitCircuitBreaker(cfg, httpclient.BreakerConsecutive)
		cb.Fail()
		assert.False(t, cb.Tripped())
		cb.Fail()
		assert.True(t, cb.Tripped())
	})

	t.Run("threshold trips after configured failures", func(t *testing.T) {
		cb := httpclient.InitCircuitBreaker(cfg, httpclient.BreakerThreshold)
		cb.Fail()
		cb.Fail()
		assert.False(t, cb.Tripped())
		cb.Fail()
		assert.True(t, cb.Tripped())
	})

	t.Run("client wraps breaker", func(t *testing.T) {
		cb := httpclient.InitCircuitBreaker(cfg, "")
		client := httpclient.InitHttpClient(cfg, cb)
		assert.NotNil(t, client)
		assert.NotNil(t, client.Client)
	})
}
