package pricing

import "math"

// Fixed redemption policy. Each loyalty point is worth 0.1 currency units,
// and redemption may never discount more than a quarter of the base price.
const (
	DefaultPointValueRate      = 0.1
	DefaultMaxDiscountFraction = 0.25
	DefaultDisplayMarkup       = 1.25
)

// Engine computes the loyalty-adjusted "Genius" selling price. It holds
// policy constants only; every Quote call is an independent, pure
// evaluation over its inputs.
type Engine struct {
	pointValueRate      float64
	maxDiscountFraction float64
	displayMarkup       float64
}

func NewEngine(pointValueRate, maxDiscountFraction, displayMarkup float64) *Engine {
	return &Engine{
		pointValueRate:      pointValueRate,
		maxDiscountFraction: maxDiscountFraction,
		displayMarkup:       displayMarkup,
	}
}

func NewDefaultEngine() *Engine {
	return NewEngine(DefaultPointValueRate, DefaultMaxDiscountFraction, DefaultDisplayMarkup)
}

type QuoteInput struct {
	BasePrice Money
	Points    int64

	// Promotional display anchor. OriginalPrice is used verbatim only when
	// the product carries both fields; otherwise the anchor is synthesized
	// from BasePrice for comparative display and is never a real
	// historical price.
	OriginalPrice   *Money
	DiscountPercent *float64
}

type Quote struct {
	BasePrice             Money `json:"base_price"`
	DisplayOriginalPrice  Money `json:"display_original_price"`
	GeniusPrice           Money `json:"genius_price"`
	PointsDiscountApplied Money `json:"points_discount_applied"`
	SavingsVsOriginal     Money `json:"savings_vs_original"`
}

// Quote computes the Genius price for a product. The final price always
// stays within [basePrice * (1 - maxDiscountFraction), basePrice] and is
// monotonically non-increasing in Points.
func (e *Engine) Quote(in QuoteInput) (*Quote, error) {
	if in.BasePrice <= 0 {
		return nil, ErrInvalidPrice
	}
	// Negative balances are rejected rather than clamped; callers that want
	// a zero-point quote pass zero explicitly.
	if in.Points < 0 {
		return nil, ErrInvalidBalance
	}

	base := float64(in.BasePrice)
	rawPointsValue := float64(in.Points) * e.pointValueRate
	discountCap := base * e.maxDiscountFraction
	discount := math.Min(rawPointsValue, discountCap)

	geniusPrice := roundHalfAwayFromZero(base - discount)

	// Rounding may land just below the policy floor when the floor itself is
	// not a whole unit; lift to the first whole unit at or above it.
	if floor := base - discountCap; float64(geniusPrice) < floor {
		geniusPrice = Money(math.Ceil(floor))
	}
	if geniusPrice > in.BasePrice {
		geniusPrice = in.BasePrice
	}

	displayOriginal := e.displayOriginalPrice(in)

	return &Quote{
		BasePrice:             in.BasePrice,
		DisplayOriginalPrice:  displayOriginal,
		GeniusPrice:           geniusPrice,
		PointsDiscountApplied: in.BasePrice - geniusPrice,
		SavingsVsOriginal:     displayOriginal - in.BasePrice,
	}, nil
}

func (e *Engine) displayOriginalPrice(in QuoteInput) Money {
	if in.DiscountPercent != nil && in.OriginalPrice != nil {
		return *in.OriginalPrice
	}
	return roundHalfAwayFromZero(float64(in.BasePrice) * e.displayMarkup)
}
