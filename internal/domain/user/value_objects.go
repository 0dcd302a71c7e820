package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail           = errors.New("invalid email format")
	ErrInvalidRole            = errors.New("invalid role")
	ErrNegativeLoyaltyBalance = errors.New("loyalty balance cannot be negative")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// LoyaltyBalance is the shopper's reward-point count. It is a read-only
// input to pricing; crediting and redemption bookkeeping happen elsewhere.
type LoyaltyBalance struct {
	points int64
}

func NewLoyaltyBalance(points int64) (LoyaltyBalance, error) {
	if points < 0 {
		return LoyaltyBalance{}, ErrNegativeLoyaltyBalance
	}
	return LoyaltyBalance{points: points}, nil
}

func (b LoyaltyBalance) Points() int64 {
	return b.points
}
