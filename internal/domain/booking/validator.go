package booking

import (
	"github.com/fieldhouse/service-booking/internal/domain"
)

// Validation messages kept byte-identical for API compatibility.
const (
	quotaExceededMessage = "Player exceeds daily limit of 2 hours"
	conflictMessage      = "Pitch is already booked for this time"
)

// ValidateDailyQuota checks that the player's aggregate booked minutes for
// the day, including the requested duration, stay within the configured
// maximum. Hitting the maximum exactly is allowed. The caller supplies the
// player's same-day bookings; this function performs no I/O.
func ValidateDailyQuota(existingSameDay []*Booking, requestedMinutes, maxMinutesPerDay int) error {
	total := 0
	for _, b := range existingSameDay {
		total += b.DurationMinutes()
	}
	if total+requestedMinutes > maxMinutesPerDay {
		return domain.NewQuotaExceededError(quotaExceededMessage)
	}
	return nil
}

// ValidateNoConflict checks that no existing booking overlaps the requested
// window. The caller supplies pitch bookings already filtered to the
// half-open overlap condition (existing.start < requestedEnd AND
// existing.end > requestedStart), so any entry is a conflict. Bookings that
// merely touch at an endpoint never appear in the input.
func ValidateNoConflict(existingPitchBookings []*Booking) error {
	if len(existingPitchBookings) > 0 {
		return domain.NewConflictError(conflictMessage)
	}
	return nil
}
