// Package realtime fans record-update deltas out to connected group
// views: writers publish to a redis channel, a bridge goroutine applies
// the stream to the websocket hub, clients recompute their leaderboard
// on each delta. Without redis configured, events go straight to the
// local hub.
package realtime

import "github.com/nur-collective/siyam/internal/ramadan"

const (
	EventRecordUpdated = "record_updated"
	EventUserJoined    = "user_joined"
	EventReminder      = "reminder"
	EventBoundary      = "boundary"
)

// Event is one delta on the live feed. Consumers treat it as a signal
// to re-pull and re-rank, not as incremental state.
type Event struct {
	Type    string         `json:"type"`
	UserID  int            `json:"userId,omitempty"`
	Name    string         `json:"name,omitempty"`
	Day     int            `json:"day,omitempty"`
	Stats   *ramadan.Stats `json:"stats,omitempty"`
	Message string         `json:"message,omitempty"`
}
