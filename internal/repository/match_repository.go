package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	rankingDomain "github.com/fieldhouse/service-booking/internal/domain/ranking"
)

// MatchModel is the GORM model for the matches table.
type MatchModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Player1ID string    `gorm:"not null;size:10;index"`
	Player2ID string    `gorm:"not null;size:10;index"`
	WinnerID  string    `gorm:"not null;size:10"`
	MatchDate time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (MatchModel) TableName() string {
	return "matches"
}

// GormMatchRepository is the GORM-based implementation of MatchRepository.
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository.
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// FindByPlayer retrieves all matches the player took part in.
func (r *GormMatchRepository) FindByPlayer(ctx context.Context, playerID string) ([]*rankingDomain.Match, error) {
	var models []MatchModel
	if err := r.db.WithContext(ctx).
		Where("player1_id = ? OR player2_id = ?", playerID, playerID).
		Order("match_date").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find player matches: %w", err)
	}
	return toDomainMatches(models), nil
}

// FindAll retrieves the complete match log.
func (r *GormMatchRepository) FindAll(ctx context.Context) ([]*rankingDomain.Match, error) {
	var models []MatchModel
	if err := r.db.WithContext(ctx).Order("match_date").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load match log: %w", err)
	}
	return toDomainMatches(models), nil
}

// Save appends a new match result.
func (r *GormMatchRepository) Save(ctx context.Context, m *rankingDomain.Match) error {
	model := MatchModel{
		ID:        m.ID(),
		Player1ID: m.Player1ID(),
		Player2ID: m.Player2ID(),
		WinnerID:  m.WinnerID(),
		MatchDate: m.MatchDate(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}

func toDomainMatches(models []MatchModel) []*rankingDomain.Match {
	matches := make([]*rankingDomain.Match, len(models))
	for i, m := range models {
		matches[i] = rankingDomain.Reconstruct(m.ID, m.Player1ID, m.Player2ID, m.WinnerID, m.MatchDate)
	}
	return matches
}
