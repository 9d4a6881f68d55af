package entity

import (
	"math"
	"strconv"
)

// Money is an amount in minor currency units (cents).
type Money int64

func MoneyFromFloat(f float64) Money {
	return Money(math.Round(f * 100))
}

func (m Money) Float64() float64 {
	return float64(m) / 100
}

// MulRate multiplies by rate and rounds half away from zero to the cent.
func (m Money) MulRate(rate float64) Money {
	return Money(math.Round(float64(m) * rate))
}

func (m Money) String() string {
	return strconv.FormatFloat(m.Float64(), 'f', 2, 64)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*m = MoneyFromFloat(f)
	return nil
}
