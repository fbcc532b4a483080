package ranking

import (
	"time"

	"github.com/fieldhouse/service-booking/internal/domain"
	"github.com/google/uuid"
)

// Match is the aggregate root for a recorded match result. Results are
// append-only; rankings are always derived from the full match log.
type Match struct {
	id        uuid.UUID
	player1ID string
	player2ID string
	winnerID  string
	matchDate time.Time
}

// NewMatch records a match result with validated participants.
func NewMatch(player1ID, player2ID, winnerID string) (*Match, error) {
	if player1ID == "" || player2ID == "" || winnerID == "" {
		return nil, domain.NewValidationError("both players and a winner are required")
	}
	if player1ID == player2ID {
		return nil, domain.NewValidationError("A player cannot play against themselves")
	}
	if winnerID != player1ID && winnerID != player2ID {
		return nil, domain.NewValidationError("Winner must be one of the participating players")
	}

	return &Match{
		id:        uuid.New(),
		player1ID: player1ID,
		player2ID: player2ID,
		winnerID:  winnerID,
		matchDate: time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Match from persistence data (no validation).
func Reconstruct(id uuid.UUID, player1ID, player2ID, winnerID string, matchDate time.Time) *Match {
	return &Match{
		id:        id,
		player1ID: player1ID,
		player2ID: player2ID,
		winnerID:  winnerID,
		matchDate: matchDate,
	}
}

// ID returns the match identifier.
func (m *Match) ID() uuid.UUID { return m.id }

// Player1ID returns the first participant.
func (m *Match) Player1ID() string { return m.player1ID }

// Player2ID returns the second participant.
func (m *Match) Player2ID() string { return m.player2ID }

// WinnerID returns the winning participant.
func (m *Match) WinnerID() string { return m.winnerID }

// MatchDate returns when the result was recorded.
func (m *Match) MatchDate() time.Time { return m.matchDate }

// Involves reports whether the given player took part in the match.
func (m *Match) Involves(playerID string) bool {
	return m.player1ID == playerID || m.player2ID == playerID
}
