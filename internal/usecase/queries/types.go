package queries

import (
	"time"

	"github.com/google/uuid"
)

// ProductView represents read-optimized product pricing data
type ProductView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	MrpPrice    *int64    `json:"mrp_price,omitempty"`
	DiscountPct *float64  `json:"discount_pct,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AnnouncementView represents read-optimized announcement data. Status is
// filled by the query layer from the flag, window and injected clock; it is
// never read from storage.
type AnnouncementView struct {
	ID         uuid.UUID  `json:"id"`
	Text       string     `json:"text"`
	IconType   string     `json:"icon_type"`
	ColorToken string     `json:"color_token"`
	TargetLink *string    `json:"target_link,omitempty"`
	Active     bool       `json:"active"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RewardPoints int64     `json:"reward_points"`
	IsActive     bool      `json:"is_active"`
}
