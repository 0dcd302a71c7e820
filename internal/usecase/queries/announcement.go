package queries

import (
	"context"

	"storefront-rules/internal/domain/announcement"
	"storefront-rules/internal/infra"
	"storefront-rules/internal/pkg/clock"
	"storefront-rules/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAnnouncementNotFound = errs.ErrAnnouncementNotFound

type AnnouncementReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AnnouncementView, error)
	FindAll(ctx context.Context) ([]*AnnouncementView, error)
}

type AnnouncementQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AnnouncementView, error)
	// ListAll returns every announcement with its derived status; admin view.
	ListAll(ctx context.Context) ([]*AnnouncementView, error)
	// ListTicker returns only the announcements that are Live right now.
	ListTicker(ctx context.Context) ([]*AnnouncementView, error)
}

type announcementQueriesImpl struct {
	repo AnnouncementReadStore
	clk  clock.Clock
}

func NewAnnouncementQueries(repo AnnouncementReadStore, clk clock.Clock) AnnouncementQueries {
	return &announcementQueriesImpl{repo: repo, clk: clk}
}

func (q *announcementQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AnnouncementView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	q.fillStatus(view)
	return view, nil
}

func (q *announcementQueriesImpl) ListAll(ctx context.Context) ([]*AnnouncementView, error) {
	views, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.fillStatus(v)
	}
	return views, nil
}

func (q *announcementQueriesImpl) ListTicker(ctx context.Context) ([]*AnnouncementView, error) {
	views, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	live := make([]*AnnouncementView, 0, len(views))
	for _, v := range views {
		q.fillStatus(v)
		if v.Status == announcement.StatusLive.String() {
			live = append(live, v)
		}
	}
	return live, nil
}

func (q *announcementQueriesImpl) fillStatus(v *AnnouncementView) {
	v.Status = announcement.DeriveStatusAt(v.Active, v.StartTime, v.EndTime, q.clk.Now()).String()
}
