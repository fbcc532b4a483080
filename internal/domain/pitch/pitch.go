package pitch

import (
	"github.com/fieldhouse/service-booking/internal/domain"
)

// Pitch is the aggregate root for a bookable football pitch.
type Pitch struct {
	id     string
	name   string
	active bool
}

// NewPitch creates an active pitch with validated fields.
func NewPitch(id, name string) (*Pitch, error) {
	if id == "" {
		return nil, domain.NewValidationError("pitch ID is required")
	}
	if name == "" {
		return nil, domain.NewValidationError("pitch name is required")
	}
	return &Pitch{id: id, name: name, active: true}, nil
}

// Reconstruct rebuilds a Pitch from persistence data (no validation).
func Reconstruct(id, name string, active bool) *Pitch {
	return &Pitch{id: id, name: name, active: active}
}

// ID returns the pitch's business identifier.
func (p *Pitch) ID() string { return p.id }

// Name returns the pitch's display name.
func (p *Pitch) Name() string { return p.name }

// IsActive reports whether the pitch is open for booking.
func (p *Pitch) IsActive() bool { return p.active }

// Deactivate soft-deletes the pitch; existing bookings are untouched.
func (p *Pitch) Deactivate() {
	p.active = false
}
