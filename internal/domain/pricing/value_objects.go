package pricing

import (
	"errors"
	"math"
)

var (
	ErrInvalidPrice   = errors.New("base price must be positive")
	ErrInvalidBalance = errors.New("point balance cannot be negative")
	ErrNegativeMoney  = errors.New("money cannot be negative")
)

// Money is a whole-unit currency amount. The storefront currency has no
// sub-unit, so arithmetic stays in integers and rounding happens exactly
// once, at the end of a quote.
type Money int64

func NewMoney(v int64) (Money, error) {
	if v < 0 {
		return 0, ErrNegativeMoney
	}
	return Money(v), nil
}

func (m Money) Int64() int64 {
	return int64(m)
}

// roundHalfAwayFromZero rounds to the nearest whole unit, halves away from
// zero. Inputs here are never negative.
func roundHalfAwayFromZero(v float64) Money {
	return Money(math.Floor(v + 0.5))
}
