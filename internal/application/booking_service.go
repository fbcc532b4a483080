package application

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldhouse/service-booking/internal/events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingDomain "github.com/fieldhouse/service-booking/internal/domain/booking"
	"github.com/fieldhouse/service-booking/internal/platform/kafka"
)

// EventPublisher publishes CloudEvents; satisfied by the Kafka producer.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event kafka.CloudEvent) error
}

// CreateBookingRequest holds the data needed to book a pitch.
type CreateBookingRequest struct {
	PitchID         string    `json:"pitch_id" binding:"required"`
	PlayerID        string    `json:"player_id" binding:"required"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=15,max=120"`
}

// BookingDTO is the response representation of a committed booking.
type BookingDTO struct {
	ID              uuid.UUID `json:"id"`
	PitchID         string    `json:"pitch_id"`
	PlayerID        string    `json:"player_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

// BookingService orchestrates the booking workflow: fetch the player's
// same-day bookings, enforce the daily quota, fetch overlapping pitch
// bookings, enforce the conflict rule, then commit. All reads and the
// write run in one serializable transaction.
type BookingService struct {
	repo             bookingDomain.BookingRepository
	producer         EventPublisher
	logger           *zap.Logger
	maxMinutesPerDay int
}

// NewBookingService creates a BookingService with the configured daily
// quota (minutes per player per calendar day).
func NewBookingService(
	repo bookingDomain.BookingRepository,
	producer EventPublisher,
	logger *zap.Logger,
	maxMinutesPerDay int,
) *BookingService {
	return &BookingService{
		repo:             repo,
		producer:         producer,
		logger:           logger,
		maxMinutesPerDay: maxMinutesPerDay,
	}
}

// BookPitch validates and commits one booking request. Validation failures
// return typed errors; any persistence failure propagates unchanged. On
// success exactly one record is written and a booking.created event is
// published.
func (s *BookingService) BookPitch(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	bk, err := bookingDomain.NewBooking(req.PitchID, req.PlayerID, req.StartTime, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	err = s.repo.RunInTransaction(ctx, func(txRepo bookingDomain.BookingRepository) error {
		dayStart, dayEnd := bookingDomain.DayWindow(bk.StartTime())
		sameDay, err := txRepo.FindByPlayerAndStartBetween(ctx, bk.PlayerID(), dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to fetch same-day bookings: %w", err)
		}
		if err := bookingDomain.ValidateDailyQuota(sameDay, bk.DurationMinutes(), s.maxMinutesPerDay); err != nil {
			return err
		}

		overlapping, err := txRepo.FindByPitchOverlapping(ctx, bk.PitchID(), bk.EndTime(), bk.StartTime())
		if err != nil {
			return fmt.Errorf("failed to fetch overlapping bookings: %w", err)
		}
		if err := bookingDomain.ValidateNoConflict(overlapping); err != nil {
			return err
		}

		return txRepo.Save(ctx, bk)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking committed",
		zap.String("booking_id", bk.ID().String()),
		zap.String("pitch_id", bk.PitchID()),
		zap.String("player_id", bk.PlayerID()),
	)
	s.publishBookingCreated(ctx, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// GetBookingsForPlayerOnDate returns the player's bookings for the calendar
// day containing date, in the order returned by the store. An empty slice
// is a valid result.
func (s *BookingService) GetBookingsForPlayerOnDate(ctx context.Context, playerID string, date time.Time) ([]BookingDTO, error) {
	dayStart, dayEnd := bookingDomain.DayWindow(date)
	bookings, err := s.repo.FindByPlayerAndStartBetween(ctx, playerID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos, nil
}

func (s *BookingService) publishBookingCreated(ctx context.Context, bk *bookingDomain.Booking) {
	evt := events.BookingCreatedEvent{
		BookingID:       bk.ID(),
		PitchID:         bk.PitchID(),
		PlayerID:        bk.PlayerID(),
		StartTime:       bk.StartTime(),
		EndTime:         bk.EndTime(),
		DurationMinutes: bk.DurationMinutes(),
		OccurredAt:      time.Now().UTC(),
	}
	publishEvent(ctx, s.producer, s.logger, events.TopicBookingEvents, events.BookingCreated, bk.ID().String(), evt)
}

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:              bk.ID(),
		PitchID:         bk.PitchID(),
		PlayerID:        bk.PlayerID(),
		StartTime:       bk.StartTime(),
		EndTime:         bk.EndTime(),
		DurationMinutes: bk.DurationMinutes(),
		CreatedAt:       bk.CreatedAt(),
	}
}

// publishEvent wraps data in a CloudEvent and publishes it. Publish
// failures are logged, never surfaced to the caller.
func publishEvent(ctx context.Context, producer EventPublisher, log *zap.Logger, topic, eventType, key string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent("service-booking", eventType, data)
	if err != nil {
		log.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := producer.PublishEvent(ctx, topic, key, cloudEvent); err != nil {
		log.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
