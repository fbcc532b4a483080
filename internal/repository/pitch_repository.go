package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fieldhouse/service-booking/internal/domain"
	pitchDomain "github.com/fieldhouse/service-booking/internal/domain/pitch"
)

// PitchModel is the GORM model for the pitches table.
type PitchModel struct {
	ID     string `gorm:"primaryKey;size:50"`
	Name   string `gorm:"not null;size:100"`
	Active bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for the GORM model.
func (PitchModel) TableName() string {
	return "pitches"
}

// GormPitchRepository is the GORM-based implementation of PitchRepository.
type GormPitchRepository struct {
	db *gorm.DB
}

// NewGormPitchRepository creates a new GormPitchRepository.
func NewGormPitchRepository(db *gorm.DB) *GormPitchRepository {
	return &GormPitchRepository{db: db}
}

// FindByID retrieves a pitch by ID.
func (r *GormPitchRepository) FindByID(ctx context.Context, id string) (*pitchDomain.Pitch, error) {
	var model PitchModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Pitch", id)
		}
		return nil, fmt.Errorf("failed to find pitch: %w", err)
	}
	return toDomainPitch(&model), nil
}

// FindAll retrieves every pitch.
func (r *GormPitchRepository) FindAll(ctx context.Context) ([]*pitchDomain.Pitch, error) {
	var models []PitchModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list pitches: %w", err)
	}
	return toDomainPitches(models), nil
}

// FindActive retrieves pitches open for booking.
func (r *GormPitchRepository) FindActive(ctx context.Context) ([]*pitchDomain.Pitch, error) {
	var models []PitchModel
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list active pitches: %w", err)
	}
	return toDomainPitches(models), nil
}

// ExistsByID reports whether a pitch with the given ID exists.
func (r *GormPitchRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PitchModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count pitches: %w", err)
	}
	return count > 0, nil
}

// Save persists a new pitch.
func (r *GormPitchRepository) Save(ctx context.Context, p *pitchDomain.Pitch) error {
	model := toPitchModel(p)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save pitch: %w", err)
	}
	return nil
}

// Update persists changes to an existing pitch.
func (r *GormPitchRepository) Update(ctx context.Context, p *pitchDomain.Pitch) error {
	model := toPitchModel(p)
	result := r.db.WithContext(ctx).
		Model(&PitchModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":   model.Name,
			"active": model.Active,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update pitch: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Pitch", model.ID)
	}
	return nil
}

func toPitchModel(p *pitchDomain.Pitch) PitchModel {
	return PitchModel{ID: p.ID(), Name: p.Name(), Active: p.IsActive()}
}

func toDomainPitch(m *PitchModel) *pitchDomain.Pitch {
	return pitchDomain.Reconstruct(m.ID, m.Name, m.Active)
}

func toDomainPitches(models []PitchModel) []*pitchDomain.Pitch {
	pitches := make([]*pitchDomain.Pitch, len(models))
	for i, m := range models {
		pitches[i] = toDomainPitch(&m)
	}
	return pitches
}
