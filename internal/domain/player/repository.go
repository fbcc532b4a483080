package player

import "context"

// PlayerRepository defines persistence operations for players.
type PlayerRepository interface {
	FindByID(ctx context.Context, id string) (*Player, error)
	FindAll(ctx context.Context) ([]*Player, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, player *Player) error
}

// PlayerTypeRepository defines persistence operations for membership types.
type PlayerTypeRepository interface {
	FindActive(ctx context.Context) ([]PlayerType, error)
	FindActiveByCode(ctx context.Context, code string) (*PlayerType, error)
}
