package request

import "time"

type CreateAnnouncementRequest struct {
	Text       string     `json:"text" binding:"required"`
	IconType   string     `json:"icon_type" binding:"required"`
	ColorToken string     `json:"color_token" binding:"required"`
	TargetLink *string    `json:"target_link"`
	Active     *bool      `json:"active"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
}

// IsActive defaults the manual flag to true, matching the admin console
// behaviour where a new ticker message goes straight into rotation.
func (r CreateAnnouncementRequest) IsActive() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}

type UpdateAnnouncementRequest struct {
	Text       string     `json:"text" binding:"required"`
	IconType   string     `json:"icon_type" binding:"required"`
	ColorToken string     `json:"color_token" binding:"required"`
	TargetLink *string    `json:"target_link"`
	Active     bool       `json:"active"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
}
