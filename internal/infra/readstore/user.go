package readstore

import (
	"context"

	"storefront-rules/internal/domain/user"
	"storefront-rules/internal/infra"
	"storefront-rules/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db infra.DBTX
}

func NewUserReadStore(db infra.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindAuthByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	var v queries.AuthorizedUserView
	var hash string
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, reward_points, is_active
		   FROM users WHERE email = $1`, email.Value()).
		Scan(&v.ID, &v.Email, &hash, &v.Role, &v.RewardPoints, &v.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to get user by email", err)
	}
	return &v, hash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role, reward_points, is_active
		   FROM users WHERE id = $1`, id).
		Scan(&v.ID, &v.Email, &v.Role, &v.RewardPoints, &v.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by id", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindRewardBalance(ctx context.Context, userID uuid.UUID) (user.LoyaltyBalance, error) {
	var points int64
	err := r.db.QueryRow(ctx,
		`SELECT reward_points FROM users WHERE id = $1 AND is_active = true`, userID).
		Scan(&points)
	if err != nil {
		if infra.IsNoRows(err) {
			return user.LoyaltyBalance{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return user.LoyaltyBalance{}, infra.WrapRepoErr("failed to get reward balance", err)
	}

	balance, err := user.NewLoyaltyBalance(points)
	if err != nil {
		return user.LoyaltyBalance{}, infra.WrapRepoErr("invalid reward balance", err)
	}
	return balance, nil
}
