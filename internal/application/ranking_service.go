package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fieldhouse/service-booking/internal/events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	rankingDomain "github.com/fieldhouse/service-booking/internal/domain/ranking"
)

// SubmitMatchRequest holds a match result to record.
type SubmitMatchRequest struct {
	Player1ID string `json:"player1_id" binding:"required"`
	Player2ID string `json:"player2_id" binding:"required"`
	WinnerID  string `json:"winner_id" binding:"required"`
}

// MatchDTO is the response representation of a recorded match.
type MatchDTO struct {
	ID        uuid.UUID `json:"id"`
	Player1ID string    `json:"player1_id"`
	Player2ID string    `json:"player2_id"`
	WinnerID  string    `json:"winner_id"`
	MatchDate time.Time `json:"match_date"`
}

// RankingService implements use cases for the win/loss ladder.
type RankingService struct {
	repo     rankingDomain.MatchRepository
	producer EventPublisher
	logger   *zap.Logger
}

// NewRankingService creates a new RankingService.
func NewRankingService(repo rankingDomain.MatchRepository, producer EventPublisher, logger *zap.Logger) *RankingService {
	return &RankingService{repo: repo, producer: producer, logger: logger}
}

// SubmitMatchResult records a validated match result and publishes a
// match.recorded event.
func (s *RankingService) SubmitMatchResult(ctx context.Context, req SubmitMatchRequest) (*MatchDTO, error) {
	m, err := rankingDomain.NewMatch(req.Player1ID, req.Player2ID, req.WinnerID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	s.logger.Info("match recorded",
		zap.String("match_id", m.ID().String()),
		zap.String("winner_id", m.WinnerID()),
	)

	evt := events.MatchRecordedEvent{
		MatchID:    m.ID(),
		Player1ID:  m.Player1ID(),
		Player2ID:  m.Player2ID(),
		WinnerID:   m.WinnerID(),
		OccurredAt: time.Now().UTC(),
	}
	publishEvent(ctx, s.producer, s.logger, events.TopicRankingEvents, events.MatchRecorded, m.ID().String(), evt)

	result := toMatchDTO(m)
	return &result, nil
}

// GetRankings returns the full ladder sorted by points descending.
func (s *RankingService) GetRankings(ctx context.Context) ([]rankingDomain.PlayerRanking, error) {
	matches, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load match log: %w", err)
	}

	seen := make(map[string]bool)
	var playerIDs []string
	for _, m := range matches {
		for _, id := range []string{m.Player1ID(), m.Player2ID()} {
			if !seen[id] {
				seen[id] = true
				playerIDs = append(playerIDs, id)
			}
		}
	}

	rankings := make([]rankingDomain.PlayerRanking, len(playerIDs))
	for i, id := range playerIDs {
		rankings[i] = rankingDomain.ComputeRanking(id, matches)
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Points > rankings[j].Points
	})
	return rankings, nil
}

// GetPlayerRanking returns a single player's ladder entry. A player with
// no matches gets a zeroed entry, not an error.
func (s *RankingService) GetPlayerRanking(ctx context.Context, playerID string) (*rankingDomain.PlayerRanking, error) {
	matches, err := s.repo.FindByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player matches: %w", err)
	}
	r := rankingDomain.ComputeRanking(playerID, matches)
	return &r, nil
}

// GetPlayerMatches returns all matches the player took part in.
func (s *RankingService) GetPlayerMatches(ctx context.Context, playerID string) ([]MatchDTO, error) {
	matches, err := s.repo.FindByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player matches: %w", err)
	}
	dtos := make([]MatchDTO, len(matches))
	for i, m := range matches {
		dtos[i] = toMatchDTO(m)
	}
	return dtos, nil
}

func toMatchDTO(m *rankingDomain.Match) MatchDTO {
	return MatchDTO{
		ID:        m.ID(),
		Player1ID: m.Player1ID(),
		Player2ID: m.Player2ID(),
		WinnerID:  m.WinnerID(),
		MatchDate: m.MatchDate(),
	}
}
