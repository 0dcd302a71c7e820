package readstore

import (
	"context"

	"storefront-rules/internal/infra"
	"storefront-rules/internal/usecase/queries"

	"github.com/google/uuid"
)

type AnnouncementReadStore struct {
	db infra.DBTX
}

func NewAnnouncementReadStore(db infra.DBTX) *AnnouncementReadStore {
	return &AnnouncementReadStore{db: db}
}

const announcementColumns = `id, text, icon_type, color_token, target_link, active, start_time, end_time, created_at, updated_at`

func (r *AnnouncementReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AnnouncementView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id)

	view, err := scanAnnouncement(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("announcement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get announcement by id", err)
	}
	return view, nil
}

func (r *AnnouncementReadStore) FindAll(ctx context.Context) ([]*queries.AnnouncementView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+announcementColumns+` FROM announcements ORDER BY created_at, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list announcements", err)
	}
	defer rows.Close()

	var views []*queries.AnnouncementView
	for rows.Next() {
		view, err := scanAnnouncement(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan announcement row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate announcement rows", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnnouncement(row rowScanner) (*queries.AnnouncementView, error) {
	var v queries.AnnouncementView
	err := row.Scan(
		&v.ID,
		&v.Text,
		&v.IconType,
		&v.ColorToken,
		&v.TargetLink,
		&v.Active,
		&v.StartTime,
		&v.EndTime,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
