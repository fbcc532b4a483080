package booking

import (
	"context"
	"time"
)

// BookingRepository defines the persistence contract for bookings.
type BookingRepository interface {
	// FindByPlayerAndStartBetween retrieves a player's bookings whose start
	// time falls within [rangeStart, rangeEnd].
	FindByPlayerAndStartBetween(ctx context.Context, playerID string, rangeStart, rangeEnd time.Time) ([]*Booking, error)

	// FindByPitchOverlapping retrieves the pitch's bookings satisfying
	// startTime < windowEnd AND endTime > windowStart.
	FindByPitchOverlapping(ctx context.Context, pitchID string, windowEnd, windowStart time.Time) ([]*Booking, error)

	// Save persists a new booking.
	Save(ctx context.Context, booking *Booking) error

	// RunInTransaction executes fn against a transactional view of the
	// repository. The booking workflow runs its read-validate-write sequence
	// inside one serializable transaction to rule out double bookings.
	RunInTransaction(ctx context.Context, fn func(BookingRepository) error) error
}
