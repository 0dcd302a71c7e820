package response

import (
	"storefront-rules/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RewardPoints int64     `json:"reward_points"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) UserResponse {
	return UserResponse{
		ID:           v.ID,
		Email:        v.Email,
		Role:         v.Role,
		RewardPoints: v.RewardPoints,
	}
}
