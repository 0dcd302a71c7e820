package commands

import (
	"context"
	"time"

	"storefront-rules/internal/domain/announcement"

	"github.com/google/uuid"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a *announcement.Announcement) (uuid.UUID, error)
	Update(ctx context.Context, a *announcement.Announcement) error
	SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}
