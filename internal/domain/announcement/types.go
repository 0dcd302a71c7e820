package announcement

// Status is the derived display state of a ticker message. It is never
// stored; callers recompute it from the message and the current time on
// every query.
type Status string

const (
	StatusPaused    Status = "paused"
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}
