package ranking

import "context"

// MatchRepository defines persistence operations for match results.
type MatchRepository interface {
	// FindByPlayer retrieves all matches the player took part in.
	FindByPlayer(ctx context.Context, playerID string) ([]*Match, error)

	// FindAll retrieves the complete match log.
	FindAll(ctx context.Context) ([]*Match, error)

	// Save appends a new match result.
	Save(ctx context.Context, match *Match) error
}
