package domain

import (
	"fmt"
	"time"
)

// StreamStatus transitions (scheduled -> live -> ended) are owned by the
// backend; the client only mirrors the last value it fetched.
type StreamStatus string

const (
	StreamScheduled StreamStatus = "scheduled"
	StreamLive      StreamStatus = "live"
	StreamEnded     StreamStatus = "ended"
)

type StreamMetrics struct {
	Revenue    float64 `json:"revenue"`
	Engagement float64 `json:"engagement"`
}

type Stream struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	Status              StreamStatus  `json:"status"`
	Category            string        `json:"category"`
	CurrentParticipants int           `json:"currentParticipants"`
	MaxParticipants     int           `json:"maxParticipants"`
	RoomURL             string        `json:"roomUrl"`
	Token               string        `json:"token"`
	Products            []string      `json:"products"`
	SellerID            string        `json:"sellerId"`
	SellerName          string        `json:"sellerName"`
	ScheduledTime       *time.Time    `json:"scheduledTime,omitempty"`
	StartedAt           *time.Time    `json:"startedAt,omitempty"`
	EndedAt             *time.Time    `json:"endedAt,omitempty"`
	CreatedAt           *time.Time    `json:"createdAt,omitempty"`
	Metrics             StreamMetrics `json:"metrics"`

	LegacyID string `json:"_id,omitempty"`
}

func (s *Stream) Normalize() {
	if s.ID == "" {
		s.ID = s.LegacyID
	}
}

func (s Stream) Live() bool {
	return s.Status == StreamLive
}

// Joinable reports whether a playback session may still be opened for the
// stream. Ended streams are rejected before any widget load.
func (s Stream) Joinable() bool {
	return s.Status == StreamScheduled || s.Status == StreamLive
}

// Duration is the elapsed time since the stream started, capped at EndedAt
// once the stream is over. Zero when it never started.
func (s Stream) Duration() time.Duration {
	if s.StartedAt == nil {
		return 0
	}
	end := time.Now()
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	if end.Before(*s.StartedAt) {
		return 0
	}
	return end.Sub(*s.StartedAt)
}

// FormatDuration renders a duration the way the dashboard displays it,
// e.g. "45m" or "1h 12m".
func FormatDuration(d time.Duration) string {
	mins := int(d.Minutes())
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}

func (s Stream) String() string {
	return s.Title + " [" + string(s.Status) + "]"
}
