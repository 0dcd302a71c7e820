package response

import (
	"storefront-rules/internal/domain/pricing"
)

type QuoteResponse struct {
	BasePrice             int64 `json:"base_price"`
	DisplayOriginalPrice  int64 `json:"display_original_price"`
	GeniusPrice           int64 `json:"genius_price"`
	PointsDiscountApplied int64 `json:"points_discount_applied"`
	SavingsVsOriginal     int64 `json:"savings_vs_original"`
}

func FromQuote(q *pricing.Quote) QuoteResponse {
	return QuoteResponse{
		BasePrice:             q.BasePrice.Int64(),
		DisplayOriginalPrice:  q.DisplayOriginalPrice.Int64(),
		GeniusPrice:           q.GeniusPrice.Int64(),
		PointsDiscountApplied: q.PointsDiscountApplied.Int64(),
		SavingsVsOriginal:     q.SavingsVsOriginal.Int64(),
	}
}
