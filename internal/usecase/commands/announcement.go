package commands

import (
	"context"
	"time"

	"storefront-rules/internal/domain/announcement"
	"storefront-rules/internal/infra"
	"storefront-rules/internal/pkg/clock"
	"storefront-rules/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAnnouncementNotFoundWrite = errs.New("announcement not found")

type CreateAnnouncementResult struct {
	AnnouncementID uuid.UUID
}

type CreateAnnouncementRequest struct {
	Text       string
	IconType   string
	ColorToken string
	TargetLink *string
	Active     bool
	StartTime  *time.Time
	EndTime    *time.Time
}

type UpdateAnnouncementRequest struct {
	Text       string
	IconType   string
	ColorToken string
	TargetLink *string
	Active     bool
	StartTime  *time.Time
	EndTime    *time.Time
}

type AnnouncementCommands interface {
	Create(ctx context.Context, req CreateAnnouncementRequest) (*CreateAnnouncementResult, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateAnnouncementRequest) error
	Pause(ctx context.Context, id uuid.UUID) error
	Resume(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type announcementUseCaseImpl struct {
	repo  AnnouncementRepository
	clock clock.Clock
}

func NewAnnouncementUseCase(repo AnnouncementRepository, clk clock.Clock) AnnouncementCommands {
	return &announcementUseCaseImpl{repo: repo, clock: clk}
}

func (uc *announcementUseCaseImpl) Create(ctx context.Context, req CreateAnnouncementRequest) (*CreateAnnouncementResult, error) {
	a, err := announcement.NewAnnouncement(
		uuid.Nil,
		req.Text,
		req.IconType,
		req.ColorToken,
		req.TargetLink,
		req.Active,
		req.StartTime,
		req.EndTime,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := uc.repo.Create(ctx, a)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateAnnouncementResult{AnnouncementID: id}, nil
}

func (uc *announcementUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req UpdateAnnouncementRequest) error {
	a, err := announcement.NewAnnouncement(
		id,
		req.Text,
		req.IconType,
		req.ColorToken,
		req.TargetLink,
		req.Active,
		req.StartTime,
		req.EndTime,
		uc.clock.Now(),
	)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := uc.repo.Update(ctx, a); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func (uc *announcementUseCaseImpl) Pause(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(uc.repo.SetActive(ctx, id, false, uc.clock.Now()))
}

func (uc *announcementUseCaseImpl) Resume(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(uc.repo.SetActive(ctx, id, true, uc.clock.Now()))
}

func (uc *announcementUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(uc.repo.Delete(ctx, id))
}

func mapNotFound(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrAnnouncementNotFoundWrite
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
