//go:build unit

package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-rules/internal/domain/announcement"
	"storefront-rules/internal/infra"
	"storefront-rules/internal/pkg/clock"
	"storefront-rules/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, a *announcement.Announcement) (uuid.UUID, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAnnouncementRepository) Update(ctx context.Context, a *announcement.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) error {
	args := m.Called(ctx, id, active, now)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validCreateRequest() CreateAnnouncementRequest {
	return CreateAnnouncementRequest{
		Text:       "Free delivery on orders above 500",
		IconType:   "TRUCK",
		ColorToken: "#FAB005",
		Active:     true,
	}
}

func TestAnnouncementCreate(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	t.Run("persists a valid announcement", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		uc := NewAnnouncementUseCase(repo, clk)

		newID := uuid.New()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(a *announcement.Announcement) bool {
			return a.Text().String() == "Free delivery on orders above 500" && a.Active()
		})).Return(newID, nil)

		result, err := uc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, newID, result.AnnouncementID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid fields before touching the repository", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(r *CreateAnnouncementRequest)
			wantErr error
		}{
			{
				name:    "blank text",
				mutate:  func(r *CreateAnnouncementRequest) { r.Text = "   " },
				wantErr: announcement.ErrEmptyText,
			},
			{
				name:    "unknown icon",
				mutate:  func(r *CreateAnnouncementRequest) { r.IconType = "ROCKET" },
				wantErr: announcement.ErrInvalidIconType,
			},
			{
				name:    "malformed color",
				mutate:  func(r *CreateAnnouncementRequest) { r.ColorToken = "FAB005" },
				wantErr: announcement.ErrInvalidColorToken,
			},
			{
				name: "window start after end",
				mutate: func(r *CreateAnnouncementRequest) {
					start := now.Add(time.Hour)
					end := now
					r.StartTime = &start
					r.EndTime = &end
				},
				wantErr: announcement.ErrInvalidWindow,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := new(MockAnnouncementRepository)
				uc := NewAnnouncementUseCase(repo, clk)

				req := validCreateRequest()
				tc.mutate(&req)

				_, err := uc.Create(context.Background(), req)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.True(t, errs.Is(err, errs.ErrDomainValidation))
				repo.AssertNotCalled(t, "Create")
			})
		}
	})

	t.Run("marks repository failures as database errors", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		uc := NewAnnouncementUseCase(repo, clk)

		dbErr := infra.WrapRepoErr("failed to create announcement", errors.New("connection reset"))
		repo.On("Create", mock.Anything, mock.Anything).Return(uuid.Nil, dbErr)

		_, err := uc.Create(context.Background(), validCreateRequest())
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAnnouncementUpdate(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	id := uuid.New()

	req := UpdateAnnouncementRequest{
		Text:       "Diwali sale is on",
		IconType:   "SPARKLES",
		ColorToken: "#E03131",
		Active:     true,
	}

	t.Run("updates through the repository", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		uc := NewAnnouncementUseCase(repo, clk)

		repo.On("Update", mock.Anything, mock.MatchedBy(func(a *announcement.Announcement) bool {
			return a.ID() == id && a.IconType().String() == "SPARKLES"
		})).Return(nil)

		err := uc.Update(context.Background(), id, req)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("maps repository not found", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		uc := NewAnnouncementUseCase(repo, clk)

		repoErr := infra.WrapRepoErr("announcement not found", errors.New("no rows"), infra.KindNotFound)
		repo.On("Update", mock.Anything, mock.Anything).Return(repoErr)

		err := uc.Update(context.Background(), id, req)
		assert.ErrorIs(t, err, ErrAnnouncementNotFoundWrite)
	})
}

func TestAnnouncementPauseResume(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	id := uuid.New()

	t.Run("pause clears the manual flag", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		uc := NewAnnouncementUseCase(repo, clk)

		repo.On("SetActive", mock.Anything, id, false, now).Return(nil)

		require.NoError(t, uc.Pause(context.Background(), id))
		repo.AssertExpectations(t)
	})

	t.Run("resume sets the manual flag", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		uc := NewAnnouncementUseCase(repo, clk)

		repo.On("SetActive", mock.Anything, id, true, now).Return(nil)

		require.NoError(t, uc.Resume(context.Background(), id))
		repo.AssertExpectations(t)
	})

	t.Run("maps repository not found", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		uc := NewAnnouncementUseCase(repo, clk)

		repoErr := infra.WrapRepoErr("announcement not found", errors.New("no rows"), infra.KindNotFound)
		repo.On("SetActive", mock.Anything, id, false, now).Return(repoErr)

		err := uc.Pause(context.Background(), id)
		assert.ErrorIs(t, err, ErrAnnouncementNotFoundWrite)
	})
}

func TestAnnouncementDelete(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	id := uuid.New()

	t.Run("deletes through the repository", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		uc := NewAnnouncementUseCase(repo, clk)

		repo.On("Delete", mock.Anything, id).Return(nil)

		require.NoError(t, uc.Delete(context.Background(), id))
		repo.AssertExpectations(t)
	})

	t.Run("maps repository not found", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		uc := NewAnnouncementUseCase(repo, clk)

		repoErr := infra.WrapRepoErr("announcement not found", errors.New("no rows"), infra.KindNotFound)
		repo.On("Delete", mock.Anything, id).Return(repoErr)

		err := uc.Delete(context.Background(), id)
		assert.ErrorIs(t, err, ErrAnnouncementNotFoundWrite)
	})
}
