//go:build unit

package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-rules/internal/infra"
	"storefront-rules/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAnnouncementReadStore struct {
	mock.Mock
}

func (m *MockAnnouncementReadStore) FindByID(ctx context.Context, id uuid.UUID) (*AnnouncementView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AnnouncementView), args.Error(1)
}

func (m *MockAnnouncementReadStore) FindAll(ctx context.Context) ([]*AnnouncementView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*AnnouncementView), args.Error(1)
}

func tickerView(text string, active bool, start, end *time.Time) *AnnouncementView {
	return &AnnouncementView{
		ID:         uuid.New(),
		Text:       text,
		IconType:   "TRUCK",
		ColorToken: "#FAB005",
		Active:     active,
		StartTime:  start,
		EndTime:    end,
	}
}

func TestAnnouncementQueriesGetByID(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	t.Run("fills status from the clock", func(t *testing.T) {
		store := new(MockAnnouncementReadStore)
		q := NewAnnouncementQueries(store, clk)

		view := tickerView("Free delivery", true, nil, nil)
		store.On("FindByID", mock.Anything, view.ID).Return(view, nil)

		got, err := q.GetByID(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, "live", got.Status)
		store.AssertExpectations(t)
	})

	t.Run("paused wins over the window", func(t *testing.T) {
		store := new(MockAnnouncementReadStore)
		q := NewAnnouncementQueries(store, clk)

		start := now.Add(-time.Hour)
		end := now.Add(time.Hour)
		view := tickerView("Paused promo", false, &start, &end)
		store.On("FindByID", mock.Anything, view.ID).Return(view, nil)

		got, err := q.GetByID(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, "paused", got.Status)
	})

	t.Run("maps repository not found", func(t *testing.T) {
		store := new(MockAnnouncementReadStore)
		q := NewAnnouncementQueries(store, clk)

		id := uuid.New()
		repoErr := infra.WrapRepoErr("announcement not found", errors.New("no rows"), infra.KindNotFound)
		store.On("FindByID", mock.Anything, id).Return(nil, repoErr)

		_, err := q.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrAnnouncementNotFound)
	})
}

func TestAnnouncementQueriesListTicker(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	t.Run("returns only live announcements", func(t *testing.T) {
		store := new(MockAnnouncementReadStore)
		q := NewAnnouncementQueries(store, clk)

		views := []*AnnouncementView{
			tickerView("Permanent", true, nil, nil),
			tickerView("In window", true, &past, &future),
			tickerView("Not yet", true, &future, nil),
			tickerView("Over", true, nil, &past),
			tickerView("Paused", false, &past, &future),
		}
		store.On("FindAll", mock.Anything).Return(views, nil)

		live, err := q.ListTicker(context.Background())
		require.NoError(t, err)
		require.Len(t, live, 2)
		assert.Equal(t, "Permanent", live[0].Text)
		assert.Equal(t, "In window", live[1].Text)
	})

	t.Run("clock advance moves items out of the ticker", func(t *testing.T) {
		store := new(MockAnnouncementReadStore)
		movingClk := clock.NewMockClock(now)
		q := NewAnnouncementQueries(store, movingClk)

		end := now.Add(time.Minute)
		store.On("FindAll", mock.Anything).Return([]*AnnouncementView{
			tickerView("Short promo", true, nil, &end),
		}, nil).Twice()

		live, err := q.ListTicker(context.Background())
		require.NoError(t, err)
		assert.Len(t, live, 1)

		movingClk.Add(2 * time.Minute)
		live, err = q.ListTicker(context.Background())
		require.NoError(t, err)
		assert.Empty(t, live)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		store := new(MockAnnouncementReadStore)
		q := NewAnnouncementQueries(store, clk)

		store.On("FindAll", mock.Anything).Return(nil, errors.New("connection reset"))

		_, err := q.ListTicker(context.Background())
		assert.Error(t, err)
	})
}

func TestAnnouncementQueriesListAll(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	t.Run("keeps every row and annotates status", func(t *testing.T) {
		store := new(MockAnnouncementReadStore)
		q := NewAnnouncementQueries(store, clk)

		future := now.Add(time.Hour)
		past := now.Add(-time.Hour)
		store.On("FindAll", mock.Anything).Return([]*AnnouncementView{
			tickerView("Scheduled", true, &future, nil),
			tickerView("Expired", true, nil, &past),
			tickerView("Paused", false, nil, nil),
		}, nil)

		all, err := q.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "scheduled", all[0].Status)
		assert.Equal(t, "expired", all[1].Status)
		assert.Equal(t, "paused", all[2].Status)
	})
}
