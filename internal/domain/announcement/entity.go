package announcement

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a promotional ticker message with a manual active flag and
// an optional display window. The window invariant (start <= end when both
// are present) is enforced here, at construction; status derivation assumes
// it holds.
type Announcement struct {
	id         uuid.UUID
	text       Text
	iconType   IconType
	colorToken ColorToken
	targetLink *string
	active     bool
	startTime  *time.Time
	endTime    *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAnnouncement(
	id uuid.UUID,
	text string,
	iconType string,
	colorToken string,
	targetLink *string,
	active bool,
	startTime, endTime *time.Time,
	now time.Time,
) (*Announcement, error) {
	t, err := NewText(text)
	if err != nil {
		return nil, err
	}

	icon, err := NewIconType(iconType)
	if err != nil {
		return nil, err
	}

	color, err := NewColorToken(colorToken)
	if err != nil {
		return nil, err
	}

	if startTime != nil && endTime != nil && startTime.After(*endTime) {
		return nil, ErrInvalidWindow
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Announcement{
		id:         id,
		text:       t,
		iconType:   icon,
		colorToken: color,
		targetLink: targetLink,
		active:     active,
		startTime:  startTime,
		endTime:    endTime,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Reconstruct rebuilds an announcement from persisted values without
// re-running creation-time validation.
func Reconstruct(
	id uuid.UUID,
	text Text,
	iconType IconType,
	colorToken ColorToken,
	targetLink *string,
	active bool,
	startTime, endTime *time.Time,
	createdAt, updatedAt time.Time,
) *Announcement {
	return &Announcement{
		id:         id,
		text:       text,
		iconType:   iconType,
		colorToken: colorToken,
		targetLink: targetLink,
		active:     active,
		startTime:  startTime,
		endTime:    endTime,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Announcement) ID() uuid.UUID          { return a.id }
func (a *Announcement) Text() Text             { return a.text }
func (a *Announcement) IconType() IconType     { return a.iconType }
func (a *Announcement) ColorToken() ColorToken { return a.colorToken }
func (a *Announcement) TargetLink() *string    { return a.targetLink }
func (a *Announcement) Active() bool           { return a.active }
func (a *Announcement) StartTime() *time.Time  { return a.startTime }
func (a *Announcement) EndTime() *time.Time    { return a.endTime }
func (a *Announcement) CreatedAt() time.Time   { return a.createdAt }
func (a *Announcement) UpdatedAt() time.Time   { return a.updatedAt }
