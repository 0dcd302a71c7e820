//go:build unit

package pricing_test

import (
	"testing"

	"storefront-rules/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	engine := pricing.NewDefaultEngine()

	t.Run("zero points leaves base price untouched", func(t *testing.T) {
		q, err := engine.Quote(pricing.QuoteInput{BasePrice: 1000, Points: 0})
		require.NoError(t, err)

		assert.Equal(t, pricing.Money(1000), q.GeniusPrice)
		assert.Equal(t, pricing.Money(0), q.PointsDiscountApplied)
	})

	t.Run("points below the cap discount at the redemption rate", func(t *testing.T) {
		q, err := engine.Quote(pricing.QuoteInput{BasePrice: 1000, Points: 100})
		require.NoError(t, err)

		assert.Equal(t, pricing.Money(990), q.GeniusPrice)
		assert.Equal(t, pricing.Money(10), q.PointsDiscountApplied)
	})

	t.Run("discount is capped at a quarter of the base price", func(t *testing.T) {
		q, err := engine.Quote(pricing.QuoteInput{BasePrice: 1000, Points: 5000})
		require.NoError(t, err)

		assert.Equal(t, pricing.Money(750), q.GeniusPrice)
		assert.Equal(t, pricing.Money(250), q.PointsDiscountApplied)
	})

	t.Run("capped price respects the floor when it is not a whole unit", func(t *testing.T) {
		// floor = 999 - 249.75 = 749.25; the quote must not round below it
		q, err := engine.Quote(pricing.QuoteInput{BasePrice: 999, Points: 100000})
		require.NoError(t, err)

		assert.Equal(t, pricing.Money(750), q.GeniusPrice)
		assert.GreaterOrEqual(t, float64(q.GeniusPrice), 999*0.75)
	})

	t.Run("synthesized display anchor", func(t *testing.T) {
		q, err := engine.Quote(pricing.QuoteInput{BasePrice: 1000, Points: 0})
		require.NoError(t, err)

		assert.Equal(t, pricing.Money(1250), q.DisplayOriginalPrice)
		assert.Equal(t, pricing.Money(250), q.SavingsVsOriginal)
	})

	t.Run("explicit promotional original price is used verbatim", func(t *testing.T) {
		original := pricing.Money(1499)
		pct := 20.0
		q, err := engine.Quote(pricing.QuoteInput{
			BasePrice:       1000,
			Points:          0,
			OriginalPrice:   &original,
			DiscountPercent: &pct,
		})
		require.NoError(t, err)

		assert.Equal(t, pricing.Money(1499), q.DisplayOriginalPrice)
		assert.Equal(t, pricing.Money(499), q.SavingsVsOriginal)
	})

	t.Run("original price alone is not enough for the anchor", func(t *testing.T) {
		original := pricing.Money(1499)
		q, err := engine.Quote(pricing.QuoteInput{BasePrice: 1000, Points: 0, OriginalPrice: &original})
		require.NoError(t, err)

		assert.Equal(t, pricing.Money(1250), q.DisplayOriginalPrice)
	})

	t.Run("non-positive base price is rejected", func(t *testing.T) {
		for _, base := range []pricing.Money{0, -1} {
			q, err := engine.Quote(pricing.QuoteInput{BasePrice: base, Points: 10})
			require.Nil(t, q)
			require.ErrorIs(t, err, pricing.ErrInvalidPrice)
		}
	})

	t.Run("negative balance is rejected, not clamped", func(t *testing.T) {
		q, err := engine.Quote(pricing.QuoteInput{BasePrice: 1000, Points: -1})
		require.Nil(t, q)
		require.ErrorIs(t, err, pricing.ErrInvalidBalance)
	})
}

func TestQuoteBounds(t *testing.T) {
	engine := pricing.NewDefaultEngine()

	bases := []pricing.Money{1, 2, 9, 10, 99, 100, 999, 1000, 1001, 12345}
	points := []int64{0, 1, 9, 10, 99, 250, 1000, 5000, 1 << 20}

	for _, base := range bases {
		for _, p := range points {
			q, err := engine.Quote(pricing.QuoteInput{BasePrice: base, Points: p})
			require.NoError(t, err)

			assert.LessOrEqual(t, q.GeniusPrice, base,
				"base=%d points=%d", base, p)
			assert.GreaterOrEqual(t, float64(q.GeniusPrice), float64(base)*0.75,
				"base=%d points=%d", base, p)
			assert.Equal(t, base-q.PointsDiscountApplied, q.GeniusPrice,
				"base=%d points=%d", base, p)
		}
	}
}

func TestQuoteMonotonicInPoints(t *testing.T) {
	engine := pricing.NewDefaultEngine()

	for _, base := range []pricing.Money{10, 999, 1000} {
		prev := base
		for p := int64(0); p <= 4000; p += 7 {
			q, err := engine.Quote(pricing.QuoteInput{BasePrice: base, Points: p})
			require.NoError(t, err)
			assert.LessOrEqual(t, q.GeniusPrice, prev,
				"genius price increased at base=%d points=%d", base, p)
			prev = q.GeniusPrice
		}
	}
}

func TestQuoteIdempotent(t *testing.T) {
	engine := pricing.NewDefaultEngine()
	in := pricing.QuoteInput{BasePrice: 1000, Points: 1234}

	first, err := engine.Quote(in)
	require.NoError(t, err)
	second, err := engine.Quote(in)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
}
