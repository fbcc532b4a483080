package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fieldhouse/service-booking/internal/domain"
	playerDomain "github.com/fieldhouse/service-booking/internal/domain/player"
)

// PlayerModel is the GORM model for the players table.
type PlayerModel struct {
	ID               string    `gorm:"primaryKey;size:10"`
	Name             string    `gorm:"not null;size:100"`
	Email            string    `gorm:"uniqueIndex;not null;size:255"`
	PlayerTypeCode   string    `gorm:"not null;size:20"`
	RegistrationDate time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (PlayerModel) TableName() string {
	return "players"
}

// PlayerTypeModel is the GORM model for the player_types table.
type PlayerTypeModel struct {
	Code           string `gorm:"primaryKey;size:20"`
	Name           string `gorm:"not null;size:100"`
	MaxAdvanceDays int    `gorm:"not null"`
	Active         bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for the GORM model.
func (PlayerTypeModel) TableName() string {
	return "player_types"
}

// GormPlayerRepository is the GORM-based implementation of PlayerRepository.
type GormPlayerRepository struct {
	db *gorm.DB
}

// NewGormPlayerRepository creates a new GormPlayerRepository.
func NewGormPlayerRepository(db *gorm.DB) *GormPlayerRepository {
	return &GormPlayerRepository{db: db}
}

// FindByID retrieves a player by ID.
func (r *GormPlayerRepository) FindByID(ctx context.Context, id string) (*playerDomain.Player, error) {
	var model PlayerModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Player", id)
		}
		return nil, fmt.Errorf("failed to find player: %w", err)
	}
	return toDomainPlayer(&model), nil
}

// FindAll retrieves all registered players.
func (r *GormPlayerRepository) FindAll(ctx context.Context) ([]*playerDomain.Player, error) {
	var models []PlayerModel
	if err := r.db.WithContext(ctx).Order("registration_date").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	players := make([]*playerDomain.Player, len(models))
	for i, m := range models {
		players[i] = toDomainPlayer(&m)
	}
	return players, nil
}

// ExistsByID reports whether a player with the given ID exists.
func (r *GormPlayerRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PlayerModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count players by ID: %w", err)
	}
	return count > 0, nil
}

// ExistsByEmail reports whether a player with the given email exists.
func (r *GormPlayerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PlayerModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count players by email: %w", err)
	}
	return count > 0, nil
}

// Save persists a new player.
func (r *GormPlayerRepository) Save(ctx context.Context, p *playerDomain.Player) error {
	model := PlayerModel{
		ID:               p.ID(),
		Name:             p.Name(),
		Email:            p.Email(),
		PlayerTypeCode:   p.TypeCode(),
		RegistrationDate: p.RegistrationDate(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

// GormPlayerTypeRepository is the GORM-based implementation of PlayerTypeRepository.
type GormPlayerTypeRepository struct {
	db *gorm.DB
}

// NewGormPlayerTypeRepository creates a new GormPlayerTypeRepository.
func NewGormPlayerTypeRepository(db *gorm.DB) *GormPlayerTypeRepository {
	return &GormPlayerTypeRepository{db: db}
}

// FindActive retrieves all active membership types.
func (r *GormPlayerTypeRepository) FindActive(ctx context.Context) ([]playerDomain.PlayerType, error) {
	var models []PlayerTypeModel
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("code").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list player types: %w", err)
	}
	types := make([]playerDomain.PlayerType, len(models))
	for i, m := range models {
		types[i] = toDomainPlayerType(&m)
	}
	return types, nil
}

// FindActiveByCode retrieves an active membership type by code.
func (r *GormPlayerTypeRepository) FindActiveByCode(ctx context.Context, code string) (*playerDomain.PlayerType, error) {
	var model PlayerTypeModel
	if err := r.db.WithContext(ctx).Where("code = ? AND active = ?", code, true).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Player type", code)
		}
		return nil, fmt.Errorf("failed to find player type: %w", err)
	}
	t := toDomainPlayerType(&model)
	return &t, nil
}

func toDomainPlayer(m *PlayerModel) *playerDomain.Player {
	return playerDomain.Reconstruct(m.ID, m.Name, m.Email, m.PlayerTypeCode, m.RegistrationDate)
}

func toDomainPlayerType(m *PlayerTypeModel) playerDomain.PlayerType {
	return playerDomain.PlayerType{
		Code:           m.Code,
		Name:           m.Name,
		MaxAdvanceDays: m.MaxAdvanceDays,
		Active:         m.Active,
	}
}
