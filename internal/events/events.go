package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics carrying this service's published events.
const (
	TopicBookingEvents = "booking.events"
	TopicRankingEvents = "ranking.events"
)

// Event types.
const (
	BookingCreated = "booking.created"
	MatchRecorded  = "ranking.match.recorded"
)

// BookingCreatedEvent is published after a booking commit succeeds.
type BookingCreatedEvent struct {
	BookingID       uuid.UUID `json:"booking_id"`
	PitchID         string    `json:"pitch_id"`
	PlayerID        string    `json:"player_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// MatchRecordedEvent is published after a match result is stored.
type MatchRecordedEvent struct {
	MatchID    uuid.UUID `json:"match_id"`
	Player1ID  string    `json:"player1_id"`
	Player2ID  string    `json:"player2_id"`
	WinnerID   string    `json:"winner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
