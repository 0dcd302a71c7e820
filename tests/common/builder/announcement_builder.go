//go:build unit || e2e

package builder

import (
	"time"

	"storefront-rules/internal/domain/announcement"
	reqdto "storefront-rules/internal/handler/dto/request"
	"storefront-rules/internal/usecase/queries"

	"github.com/google/uuid"
)

type AnnouncementBuilder struct {
	id         uuid.UUID
	text       string
	iconType   string
	colorToken string
	targetLink *string
	active     bool
	startTime  *time.Time
	endTime    *time.Time
	now        time.Time
}

func NewAnnouncementBuilder() *AnnouncementBuilder {
	return &AnnouncementBuilder{
		id:         uuid.Nil,
		text:       "Free delivery on orders above 500",
		iconType:   "TRUCK",
		colorToken: "#FAB005",
		active:     true,
		now:        time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *AnnouncementBuilder) With(mutate func(*AnnouncementBuilder)) *AnnouncementBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *AnnouncementBuilder) WithID(id uuid.UUID) *AnnouncementBuilder {
	b.id = id
	return b
}

func (b *AnnouncementBuilder) WithText(text string) *AnnouncementBuilder {
	b.text = text
	return b
}

func (b *AnnouncementBuilder) WithIconType(icon string) *AnnouncementBuilder {
	b.iconType = icon
	return b
}

func (b *AnnouncementBuilder) WithColorToken(color string) *AnnouncementBuilder {
	b.colorToken = color
	return b
}

func (b *AnnouncementBuilder) WithTargetLink(link string) *AnnouncementBuilder {
	b.targetLink = &link
	return b
}

func (b *AnnouncementBuilder) WithActive(active bool) *AnnouncementBuilder {
	b.active = active
	return b
}

func (b *AnnouncementBuilder) WithWindow(start, end *time.Time) *AnnouncementBuilder {
	b.startTime = start
	b.endTime = end
	return b
}

func (b *AnnouncementBuilder) WithNow(now time.Time) *AnnouncementBuilder {
	b.now = now
	return b
}

func (b *AnnouncementBuilder) Build() (*announcement.Announcement, error) {
	return announcement.NewAnnouncement(
		b.id,
		b.text,
		b.iconType,
		b.colorToken,
		b.targetLink,
		b.active,
		b.startTime,
		b.endTime,
		b.now,
	)
}

func (b *AnnouncementBuilder) BuildView() *queries.AnnouncementView {
	id := b.id
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &queries.AnnouncementView{
		ID:         id,
		Text:       b.text,
		IconType:   b.iconType,
		ColorToken: b.colorToken,
		TargetLink: b.targetLink,
		Active:     b.active,
		StartTime:  b.startTime,
		EndTime:    b.endTime,
		Status:     announcement.DeriveStatusAt(b.active, b.startTime, b.endTime, b.now).String(),
		CreatedAt:  b.now,
		UpdatedAt:  b.now,
	}
}

func (b *AnnouncementBuilder) BuildCreateRequestDTO() reqdto.CreateAnnouncementRequest {
	return reqdto.CreateAnnouncementRequest{
		Text:       b.text,
		IconType:   b.iconType,
		ColorToken: b.colorToken,
		TargetLink: b.targetLink,
		Active:     &b.active,
		StartTime:  b.startTime,
		EndTime:    b.endTime,
	}
}

func (b *AnnouncementBuilder) BuildUpdateRequestDTO() reqdto.UpdateAnnouncementRequest {
	return reqdto.UpdateAnnouncementRequest{
		Text:       b.text,
		IconType:   b.iconType,
		ColorToken: b.colorToken,
		TargetLink: b.targetLink,
		Active:     b.active,
		StartTime:  b.startTime,
		EndTime:    b.endTime,
	}
}
