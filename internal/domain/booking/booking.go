package booking

import (
	"time"

	"github.com/fieldhouse/service-booking/internal/domain"
	"github.com/google/uuid"
)

const (
	// MinDurationMinutes is the shortest bookable slot.
	MinDurationMinutes = 15
	// MaxDurationMinutes is the longest bookable slot.
	MaxDurationMinutes = 120
)

// Booking is the aggregate root for a committed pitch reservation.
// It is immutable after creation; there is no update or delete.
type Booking struct {
	id              uuid.UUID
	pitchID         string
	playerID        string
	startTime       time.Time
	durationMinutes int
	createdAt       time.Time
}

// NewBooking creates a booking with validated fields. The end time is
// always derived from start time and duration, never supplied.
func NewBooking(pitchID, playerID string, startTime time.Time, durationMinutes int) (*Booking, error) {
	if pitchID == "" {
		return nil, domain.NewValidationError("pitch ID is required")
	}
	if playerID == "" {
		return nil, domain.NewValidationError("player ID is required")
	}
	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return nil, domain.NewValidationError("booking duration must be between 15 and 120 minutes")
	}
	if !startTime.After(time.Now()) {
		return nil, domain.NewValidationError("start time must be in the future")
	}

	return &Booking{
		id:              uuid.New(),
		pitchID:         pitchID,
		playerID:        playerID,
		startTime:       startTime,
		durationMinutes: durationMinutes,
		createdAt:       time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(id uuid.UUID, pitchID, playerID string, startTime time.Time, durationMinutes int, createdAt time.Time) *Booking {
	return &Booking{
		id:              id,
		pitchID:         pitchID,
		playerID:        playerID,
		startTime:       startTime,
		durationMinutes: durationMinutes,
		createdAt:       createdAt,
	}
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// PitchID returns the booked pitch's identifier.
func (b *Booking) PitchID() string { return b.pitchID }

// PlayerID returns the booking player's identifier.
func (b *Booking) PlayerID() string { return b.playerID }

// StartTime returns the start of the booked window.
func (b *Booking) StartTime() time.Time { return b.startTime }

// DurationMinutes returns the booked duration in minutes.
func (b *Booking) DurationMinutes() int { return b.durationMinutes }

// EndTime returns the derived end of the booked window.
func (b *Booking) EndTime() time.Time {
	return b.startTime.Add(time.Duration(b.durationMinutes) * time.Minute)
}

// CreatedAt returns the commit timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// DayWindow returns the calendar-day boundaries containing t, from
// start of day to 23:59:59 in t's location.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Second)
	return start, end
}
