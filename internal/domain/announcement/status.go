package announcement

import "time"

// DeriveStatus classifies a message at a point in time. First match wins:
// manual pause overrides scheduling regardless of window, then the window
// bounds apply with strict comparisons, so a message is Live at exactly its
// start and at exactly its end. A message with no window and active=true is
// Live at every instant.
//
// Behaviour is undefined for a message whose window violates start <= end;
// NewAnnouncement rejects those, so DeriveStatus never revalidates.
func DeriveStatus(a *Announcement, now time.Time) Status {
	return DeriveStatusAt(a.active, a.startTime, a.endTime, now)
}

// DeriveStatusAt is the raw form of DeriveStatus for callers holding the
// flag and window outside an entity (read models, admin list rows).
func DeriveStatusAt(active bool, startTime, endTime *time.Time, now time.Time) Status {
	if !active {
		return StatusPaused
	}
	if startTime != nil && now.Before(*startTime) {
		return StatusScheduled
	}
	if endTime != nil && now.After(*endTime) {
		return StatusExpired
	}
	return StatusLive
}
