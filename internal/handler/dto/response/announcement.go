package response

import (
	"time"

	"storefront-rules/internal/usecase/queries"

	"github.com/google/uuid"
)

// AnnouncementResponse carries the derived status plus the raw window so
// clients can render "Starts: ..." / "Ends: ..." text themselves.
type AnnouncementResponse struct {
	ID         uuid.UUID  `json:"id"`
	Text       string     `json:"text"`
	IconType   string     `json:"icon_type"`
	ColorToken string     `json:"color_token"`
	TargetLink *string    `json:"target_link,omitempty"`
	Active     bool       `json:"active"`
	Status     string     `json:"status"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromAnnouncementView(v *queries.AnnouncementView) AnnouncementResponse {
	return AnnouncementResponse{
		ID:         v.ID,
		Text:       v.Text,
		IconType:   v.IconType,
		ColorToken: v.ColorToken,
		TargetLink: v.TargetLink,
		Active:     v.Active,
		Status:     v.Status,
		StartTime:  v.StartTime,
		EndTime:    v.EndTime,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromAnnouncementList(views []*queries.AnnouncementView) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromAnnouncementView(v))
	}
	return out
}
