package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fieldhouse/service-booking/internal/domain"
	pitchDomain "github.com/fieldhouse/service-booking/internal/domain/pitch"
)

// CreatePitchRequest holds the data needed to create a pitch.
type CreatePitchRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// PitchDTO is the response representation of a pitch.
type PitchDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// PitchService implements use cases for pitch administration.
type PitchService struct {
	repo   pitchDomain.PitchRepository
	logger *zap.Logger
}

// NewPitchService creates a new PitchService.
func NewPitchService(repo pitchDomain.PitchRepository, logger *zap.Logger) *PitchService {
	return &PitchService{repo: repo, logger: logger}
}

// CreatePitch registers a new active pitch.
func (s *PitchService) CreatePitch(ctx context.Context, req CreatePitchRequest) (*PitchDTO, error) {
	exists, err := s.repo.ExistsByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pitch ID: %w", err)
	}
	if exists {
		return nil, domain.NewAlreadyExistsError(fmt.Sprintf("Pitch with ID %s already exists", req.ID))
	}

	p, err := pitchDomain.NewPitch(req.ID, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save pitch: %w", err)
	}

	s.logger.Info("pitch created", zap.String("pitch_id", p.ID()))
	result := toPitchDTO(p)
	return &result, nil
}

// GetAllPitches returns every pitch, active or not.
func (s *PitchService) GetAllPitches(ctx context.Context) ([]PitchDTO, error) {
	pitches, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pitches: %w", err)
	}
	return toPitchDTOs(pitches), nil
}

// GetActivePitches returns pitches open for booking.
func (s *PitchService) GetActivePitches(ctx context.Context) ([]PitchDTO, error) {
	pitches, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active pitches: %w", err)
	}
	return toPitchDTOs(pitches), nil
}

// GetPitch returns a single pitch by ID.
func (s *PitchService) GetPitch(ctx context.Context, pitchID string) (*PitchDTO, error) {
	p, err := s.repo.FindByID(ctx, pitchID)
	if err != nil {
		return nil, err
	}
	result := toPitchDTO(p)
	return &result, nil
}

// DeactivatePitch soft-deletes a pitch; existing bookings are untouched.
func (s *PitchService) DeactivatePitch(ctx context.Context, pitchID string) error {
	p, err := s.repo.FindByID(ctx, pitchID)
	if err != nil {
		return err
	}

	p.Deactivate()
	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to deactivate pitch: %w", err)
	}

	s.logger.Info("pitch deactivated", zap.String("pitch_id", pitchID))
	return nil
}

func toPitchDTO(p *pitchDomain.Pitch) PitchDTO {
	return PitchDTO{ID: p.ID(), Name: p.Name(), Active: p.IsActive()}
}

func toPitchDTOs(pitches []*pitchDomain.Pitch) []PitchDTO {
	dtos := make([]PitchDTO, len(pitches))
	for i, p := range pitches {
		dtos[i] = toPitchDTO(p)
	}
	return dtos
}
