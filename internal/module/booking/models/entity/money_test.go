package entity_test

import (
	"rental-booking-service/internal/module/booking/models/entity"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("rounds to the cent", func(t *testing.T) {
		assert.Equal(t, entity.Money(41040), entity.MoneyFromFloat(410.40))
		assert.Equal(t, entity.Money(3040), entity.Money(38000).MulRate(0.08))
		assert.Equal(t, entity.Money(1), entity.Money(5).MulRate(0.1))
	})

	t.Run("renders as a decimal number", func(t *testing.T) {
		b, err := json.Marshal(struct {
			Total entity.Money `json:"total"`
		}{entity.Money(41040)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"total":410.40}`, string(b))
	})

	t.Run("accepts numbers and strings", func(t *testing.T) {
		var v struct {
			A entity.Money `json:"a"`
			B entity.Money `json:"b"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a":410.4,"b":"12.34"}`), &v))
		assert.Equal(t, entity.Money(41040), v.A)
		assert.Equal(t, entity.Money(1234), v.B)
	})
}

func TestStatus(t *testing.T) {
	for _, s := range entity.Statuses {
		assert.True(t, s.IsValid())
		assert.Equal(t, s, s.Meta().Status)
	}

	assert.True(t, entity.StatusRejected.IsTerminal())
	assert.True(t, entity.StatusCancelled.IsTerminal())
	assert.True(t, entity.StatusCompleted.IsTerminal())
	assert.False(t, entity.StatusActive.IsTerminal())

	_, err := entity.ParseStatus("paid")
	assert.Error(t, err)
}
