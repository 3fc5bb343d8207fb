package car

import (
	"fmt"
	"math"
)

// Money is an amount in the single implied currency, held in minor units
// (hundredths).
type Money struct {
	minor int64
}

func NewMoney(minor int64) Money {
	return Money{minor: minor}
}

// MoneyFromAmount converts a decimal amount such as 800 or 499.5.
func MoneyFromAmount(amount float64) Money {
	return Money{minor: int64(math.Round(amount * 100))}
}

func (m Money) Minor() int64 {
	return m.minor
}

func (m Money) Amount() float64 {
	return float64(m.minor) / 100.0
}

func (m Money) IsZero() bool {
	return m.minor == 0
}

func (m Money) IsNegative() bool {
	return m.minor < 0
}

func (m Money) Times(n int64) Money {
	return Money{minor: m.minor * n}
}

// Half rounds half up in minor units.
func (m Money) Half() Money {
	return Money{minor: (m.minor + 1) / 2}
}

func (m Money) String() string {
	sign := ""
	v := m.minor
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
