package readstore

import (
	"context"

	"storefront-rules/internal/infra"
	"storefront-rules/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductReadStore struct {
	db infra.DBTX
}

func NewProductReadStore(db infra.DBTX) *ProductReadStore {
	return &ProductReadStore{db: db}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	var v queries.ProductView
	err := r.db.QueryRow(ctx,
		`SELECT id, name, price, mrp_price, discount_pct, created_at, updated_at
		   FROM products WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Price, &v.MrpPrice, &v.DiscountPct, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}
	return &v, nil
}
