package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingDomain "github.com/fieldhouse/service-booking/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table. The end_time
// column is stored for the overlap query but is always derived from
// start_time and duration_minutes at write time.
type BookingModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PitchID         string    `gorm:"not null;size:50;index:idx_bookings_pitch_window,priority:1"`
	PlayerID        string    `gorm:"not null;size:10;index:idx_bookings_player_start,priority:1"`
	StartTime       time.Time `gorm:"not null;index:idx_bookings_pitch_window,priority:2;index:idx_bookings_player_start,priority:2"`
	EndTime         time.Time `gorm:"not null"`
	DurationMinutes int       `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByPlayerAndStartBetween retrieves a player's bookings starting within
// [rangeStart, rangeEnd], in store order.
func (r *GormBookingRepository) FindByPlayerAndStartBetween(ctx context.Context, playerID string, rangeStart, rangeEnd time.Time) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("player_id = ? AND start_time BETWEEN ? AND ?", playerID, rangeStart, rangeEnd).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find player bookings: %w", err)
	}
	return toDomainBookings(models), nil
}

// FindByPitchOverlapping retrieves the pitch's bookings satisfying
// start_time < windowEnd AND end_time > windowStart.
func (r *GormBookingRepository) FindByPitchOverlapping(ctx context.Context, pitchID string, windowEnd, windowStart time.Time) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("pitch_id = ? AND start_time < ? AND end_time > ?", pitchID, windowEnd, windowStart).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find overlapping bookings: %w", err)
	}
	return toDomainBookings(models), nil
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// RunInTransaction runs fn against a repository bound to a serializable
// transaction. Serializable isolation makes the read-validate-write
// booking sequence safe against concurrent double booking.
func (r *GormBookingRepository) RunInTransaction(ctx context.Context, fn func(bookingDomain.BookingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormBookingRepository(tx))
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func toBookingModel(bk *bookingDomain.Booking) BookingModel {
	return BookingModel{
		ID:              bk.ID(),
		PitchID:         bk.PitchID(),
		PlayerID:        bk.PlayerID(),
		StartTime:       bk.StartTime(),
		EndTime:         bk.EndTime(),
		DurationMinutes: bk.DurationMinutes(),
		CreatedAt:       bk.CreatedAt(),
	}
}

func toDomainBookings(models []BookingModel) []*bookingDomain.Booking {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bookings[i] = bookingDomain.Reconstruct(m.ID, m.PitchID, m.PlayerID, m.StartTime, m.DurationMinutes, m.CreatedAt)
	}
	return bookings
}
