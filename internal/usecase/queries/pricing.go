package queries

import (
	"context"

	"storefront-rules/internal/domain/pricing"
	"storefront-rules/internal/domain/user"
	"storefront-rules/internal/infra"
	"storefront-rules/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrQuoteProductNotFound = errs.ErrProductNotFound
	ErrQuoteShopperNotFound = errs.ErrUserNotFound
)

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type ShopperBalanceReadStore interface {
	FindRewardBalance(ctx context.Context, userID uuid.UUID) (user.LoyaltyBalance, error)
}

type PricingQueries interface {
	// GetQuote evaluates the Genius price for a product. A nil shopperID is
	// an anonymous storefront visit and quotes at zero points.
	GetQuote(ctx context.Context, productID uuid.UUID, shopperID *uuid.UUID) (*pricing.Quote, error)
}

type pricingQueriesImpl struct {
	engine   *pricing.Engine
	products ProductReadStore
	balances ShopperBalanceReadStore
}

func NewPricingQueries(engine *pricing.Engine, products ProductReadStore, balances ShopperBalanceReadStore) PricingQueries {
	return &pricingQueriesImpl{
		engine:   engine,
		products: products,
		balances: balances,
	}
}

func (q *pricingQueriesImpl) GetQuote(ctx context.Context, productID uuid.UUID, shopperID *uuid.UUID) (*pricing.Quote, error) {
	product, err := q.products.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQuoteProductNotFound
		}
		return nil, err
	}

	var balance user.LoyaltyBalance
	if shopperID != nil {
		balance, err = q.balances.FindRewardBalance(ctx, *shopperID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrQuoteShopperNotFound
			}
			return nil, err
		}
	}

	basePrice, err := pricing.NewMoney(product.Price)
	if err != nil {
		return nil, err
	}

	in := pricing.QuoteInput{
		BasePrice: basePrice,
		Points:    balance.Points(),
	}
	if product.MrpPrice != nil {
		mrp, err := pricing.NewMoney(*product.MrpPrice)
		if err != nil {
			return nil, err
		}
		in.OriginalPrice = &mrp
	}
	in.DiscountPercent = product.DiscountPct

	return q.engine.Quote(in)
}
