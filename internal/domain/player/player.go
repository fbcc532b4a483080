package player

import (
	"fmt"
	"regexp"
	"time"

	"github.com/fieldhouse/service-booking/internal/domain"
)

var playerIDPattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

// Player is the aggregate root for a registered player.
type Player struct {
	id               string
	name             string
	email            string
	typeCode         string
	registrationDate time.Time
}

// NewPlayer creates a registered player with validated fields. Uniqueness
// of ID and email is enforced by the service against the repository.
func NewPlayer(id, name, email, typeCode string) (*Player, error) {
	if !playerIDPattern.MatchString(id) {
		return nil, domain.NewValidationError("player ID must be 2-10 uppercase alphanumeric characters")
	}
	if len(name) < 2 || len(name) > 100 {
		return nil, domain.NewValidationError("name must be between 2 and 100 characters")
	}
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	if typeCode == "" {
		return nil, domain.NewValidationError("player type is required")
	}

	return &Player{
		id:               id,
		name:             name,
		email:            email,
		typeCode:         typeCode,
		registrationDate: time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Player from persistence data (no validation).
func Reconstruct(id, name, email, typeCode string, registrationDate time.Time) *Player {
	return &Player{
		id:               id,
		name:             name,
		email:            email,
		typeCode:         typeCode,
		registrationDate: registrationDate,
	}
}

// ID returns the player's business identifier.
func (p *Player) ID() string { return p.id }

// Name returns the player's display name.
func (p *Player) Name() string { return p.name }

// Email returns the player's email address.
func (p *Player) Email() string { return p.email }

// TypeCode returns the code of the player's membership type.
func (p *Player) TypeCode() string { return p.typeCode }

// RegistrationDate returns when the player registered.
func (p *Player) RegistrationDate() time.Time { return p.registrationDate }

// PlayerType is a membership tier controlling how far in advance a player
// may book.
type PlayerType struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	MaxAdvanceDays int    `json:"max_advance_days"`
	Active         bool   `json:"active"`
}

// CanBookAt reports whether a booking at t is within the tier's advance
// window relative to now.
func (t PlayerType) CanBookAt(bookingTime, now time.Time) bool {
	maxBookingTime := now.AddDate(0, 0, t.MaxAdvanceDays)
	return !bookingTime.After(maxBookingTime)
}

// String returns a short description of the type.
func (t PlayerType) String() string {
	return fmt.Sprintf("%s (%d days advance)", t.Code, t.MaxAdvanceDays)
}
