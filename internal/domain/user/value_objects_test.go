//go:build unit

package user_test

import (
	"testing"

	"storefront-rules/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid email", input: "shopper@example.com", want: "shopper@example.com"},
		{name: "trims surrounding whitespace", input: "  shopper@example.com  ", want: "shopper@example.com"},
		{name: "missing at sign", input: "shopper.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "shopper@", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}

func TestNewRole(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  user.Role
		errIs error
	}{
		{name: "shopper", input: "shopper", want: user.RoleShopper},
		{name: "admin", input: "admin", want: user.RoleAdmin},
		{name: "unknown role", input: "manager", errIs: user.ErrInvalidRole},
		{name: "empty", input: "", errIs: user.ErrInvalidRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := user.NewRole(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, role)
		})
	}
}

func TestNewLoyaltyBalance(t *testing.T) {
	t.Run("accepts zero and positive balances", func(t *testing.T) {
		for _, points := range []int64{0, 1, 100, 5000} {
			balance, err := user.NewLoyaltyBalance(points)
			require.NoError(t, err)
			assert.Equal(t, points, balance.Points())
		}
	})

	t.Run("rejects negative balances", func(t *testing.T) {
		_, err := user.NewLoyaltyBalance(-1)
		assert.ErrorIs(t, err, user.ErrNegativeLoyaltyBalance)
	})

	t.Run("zero value quotes at zero points", func(t *testing.T) {
		var balance user.LoyaltyBalance
		assert.Equal(t, int64(0), balance.Points())
	})
}
