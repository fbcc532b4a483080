package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fieldhouse/service-booking/internal/domain"
	playerDomain "github.com/fieldhouse/service-booking/internal/domain/player"
)

// RegisterPlayerRequest holds the data needed to register a player.
type RegisterPlayerRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	Type  string `json:"type" binding:"required"`
}

// PlayerDTO is the response representation of a registered player.
type PlayerDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Type             string    `json:"type"`
	RegistrationDate time.Time `json:"registration_date"`
}

// PlayerService implements use cases for player registration and lookup.
type PlayerService struct {
	players playerDomain.PlayerRepository
	types   playerDomain.PlayerTypeRepository
	logger  *zap.Logger
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(
	players playerDomain.PlayerRepository,
	types playerDomain.PlayerTypeRepository,
	logger *zap.Logger,
) *PlayerService {
	return &PlayerService{players: players, types: types, logger: logger}
}

// RegisterPlayer registers a new player after uniqueness and type checks.
func (s *PlayerService) RegisterPlayer(ctx context.Context, req RegisterPlayerRequest) (*PlayerDTO, error) {
	exists, err := s.players.ExistsByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check player ID: %w", err)
	}
	if exists {
		return nil, domain.NewAlreadyExistsError(fmt.Sprintf("Player with ID %s already exists", req.ID))
	}

	exists, err = s.players.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check player email: %w", err)
	}
	if exists {
		return nil, domain.NewAlreadyExistsError(fmt.Sprintf("Player with email %s already exists", req.Email))
	}

	if _, err := s.types.FindActiveByCode(ctx, req.Type); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("Invalid player type: %s", req.Type))
	}

	p, err := playerDomain.NewPlayer(req.ID, req.Name, req.Email, req.Type)
	if err != nil {
		return nil, err
	}

	if err := s.players.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	s.logger.Info("player registered",
		zap.String("player_id", p.ID()),
		zap.String("type", p.TypeCode()),
	)
	result := toPlayerDTO(p)
	return &result, nil
}

// GetPlayer returns a single player by ID.
func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (*PlayerDTO, error) {
	p, err := s.players.FindByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	result := toPlayerDTO(p)
	return &result, nil
}

// GetAllPlayers returns every registered player.
func (s *PlayerService) GetAllPlayers(ctx context.Context) ([]PlayerDTO, error) {
	players, err := s.players.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	dtos := make([]PlayerDTO, len(players))
	for i, p := range players {
		dtos[i] = toPlayerDTO(p)
	}
	return dtos, nil
}

// GetActivePlayerTypes returns all active membership types.
func (s *PlayerService) GetActivePlayerTypes(ctx context.Context) ([]playerDomain.PlayerType, error) {
	return s.types.FindActive(ctx)
}

// GetPlayerType returns an active membership type by code.
func (s *PlayerService) GetPlayerType(ctx context.Context, code string) (*playerDomain.PlayerType, error) {
	return s.types.FindActiveByCode(ctx, code)
}

// GetPlayerMaxAdvanceDays returns how many days ahead the player may book.
func (s *PlayerService) GetPlayerMaxAdvanceDays(ctx context.Context, playerID string) (int, error) {
	p, err := s.players.FindByID(ctx, playerID)
	if err != nil {
		return 0, err
	}
	t, err := s.types.FindActiveByCode(ctx, p.TypeCode())
	if err != nil {
		return 0, domain.NewValidationError(fmt.Sprintf("Invalid player type: %s", p.TypeCode()))
	}
	return t.MaxAdvanceDays, nil
}

// CanPlayerBookAt reports whether the booking time falls within the
// player's advance-booking window.
func (s *PlayerService) CanPlayerBookAt(ctx context.Context, playerID string, bookingTime time.Time) (bool, error) {
	p, err := s.players.FindByID(ctx, playerID)
	if err != nil {
		return false, err
	}
	t, err := s.types.FindActiveByCode(ctx, p.TypeCode())
	if err != nil {
		return false, domain.NewValidationError(fmt.Sprintf("Invalid player type: %s", p.TypeCode()))
	}
	return t.CanBookAt(bookingTime, time.Now()), nil
}

func toPlayerDTO(p *playerDomain.Player) PlayerDTO {
	return PlayerDTO{
		ID:               p.ID(),
		Name:             p.Name(),
		Email:            p.Email(),
		Type:             p.TypeCode(),
		RegistrationDate: p.RegistrationDate(),
	}
}
