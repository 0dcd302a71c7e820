package writerepo

import (
	"context"
	"time"

	"storefront-rules/internal/domain/announcement"
	"storefront-rules/internal/infra"

	"github.com/google/uuid"
)

type AnnouncementRepository struct {
	db infra.DBTX
}

func NewAnnouncementRepository(db infra.DBTX) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *announcement.Announcement) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO announcements (id, text, icon_type, color_token, target_link, active, start_time, end_time, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		a.ID(),
		a.Text().String(),
		a.IconType().String(),
		a.ColorToken().String(),
		a.TargetLink(),
		a.Active(),
		a.StartTime(),
		a.EndTime(),
		a.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create announcement", err, infra.KindFromPgError(err))
	}
	return a.ID(), nil
}

func (r *AnnouncementRepository) Update(ctx context.Context, a *announcement.Announcement) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE announcements
		    SET text = $2, icon_type = $3, color_token = $4, target_link = $5,
		        active = $6, start_time = $7, end_time = $8, updated_at = $9
		  WHERE id = $1`,
		a.ID(),
		a.Text().String(),
		a.IconType().String(),
		a.ColorToken().String(),
		a.TargetLink(),
		a.Active(),
		a.StartTime(),
		a.EndTime(),
		a.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update announcement", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("announcement not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AnnouncementRepository) SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE announcements SET active = $2, updated_at = $3 WHERE id = $1`,
		id, active, now)
	if err != nil {
		return infra.WrapRepoErr("failed to set announcement active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("announcement not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete announcement", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("announcement not found", nil, infra.KindNotFound)
	}
	return nil
}
