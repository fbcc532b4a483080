package pitch

import "context"

// PitchRepository defines persistence operations for pitches.
type PitchRepository interface {
	FindByID(ctx context.Context, id string) (*Pitch, error)
	FindAll(ctx context.Context) ([]*Pitch, error)
	FindActive(ctx context.Context) ([]*Pitch, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, pitch *Pitch) error
	Update(ctx context.Context, pitch *Pitch) error
}
