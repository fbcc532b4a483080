package application

import (
	"context"
	"sync"
	"time"

	bookingDomain "github.com/fieldhouse/service-booking/internal/domain/booking"
	pitchDomain "github.com/fieldhouse/service-booking/internal/domain/pitch"
	playerDomain "github.com/fieldhouse/service-booking/internal/domain/player"
	rankingDomain "github.com/fieldhouse/service-booking/internal/domain/ranking"

	"github.com/fieldhouse/service-booking/internal/domain"
	"github.com/fieldhouse/service-booking/internal/platform/kafka"
)

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	Topic string
	Key   string
	Event kafka.CloudEvent
}

func (p *capturingPublisher) PublishEvent(_ context.Context, topic, key string, event kafka.CloudEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func (p *capturingPublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

// fakeBookingRepository is an in-memory BookingRepository. Transactions
// run the callback against the repository itself; the serializable
// isolation guarantee belongs to the GORM implementation.
type fakeBookingRepository struct {
	mu       sync.Mutex
	bookings []*bookingDomain.Booking
}

func (r *fakeBookingRepository) FindByPlayerAndStartBetween(_ context.Context, playerID string, rangeStart, rangeEnd time.Time) ([]*bookingDomain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*bookingDomain.Booking
	for _, b := range r.bookings {
		if b.PlayerID() != playerID {
			continue
		}
		if b.StartTime().Before(rangeStart) || b.StartTime().After(rangeEnd) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepository) FindByPitchOverlapping(_ context.Context, pitchID string, windowEnd, windowStart time.Time) ([]*bookingDomain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*bookingDomain.Booking
	for _, b := range r.bookings {
		if b.PitchID() != pitchID {
			continue
		}
		if b.StartTime().Before(windowEnd) && b.EndTime().After(windowStart) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepository) Save(_ context.Context, booking *bookingDomain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *fakeBookingRepository) RunInTransaction(_ context.Context, fn func(bookingDomain.BookingRepository) error) error {
	return fn(r)
}

// fakePlayerRepository is an in-memory PlayerRepository.
type fakePlayerRepository struct {
	players map[string]*playerDomain.Player
}

func newFakePlayerRepository() *fakePlayerRepository {
	return &fakePlayerRepository{players: make(map[string]*playerDomain.Player)}
}

func (r *fakePlayerRepository) FindByID(_ context.Context, id string) (*playerDomain.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return nil, domain.NewNotFoundError("Player", id)
	}
	return p, nil
}

func (r *fakePlayerRepository) FindAll(_ context.Context) ([]*playerDomain.Player, error) {
	out := make([]*playerDomain.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePlayerRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.players[id]
	return ok, nil
}

func (r *fakePlayerRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, p := range r.players {
		if p.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePlayerRepository) Save(_ context.Context, player *playerDomain.Player) error {
	r.players[player.ID()] = player
	return nil
}

// fakePlayerTypeRepository serves a fixed set of membership types.
type fakePlayerTypeRepository struct {
	types []playerDomain.PlayerType
}

func defaultPlayerTypes() *fakePlayerTypeRepository {
	return &fakePlayerTypeRepository{types: []playerDomain.PlayerType{
		{Code: "standard", Name: "Standard", MaxAdvanceDays: 7, Active: true},
		{Code: "premium", Name: "Premium", MaxAdvanceDays: 30, Active: true},
	}}
}

func (r *fakePlayerTypeRepository) FindActive(_ context.Context) ([]playerDomain.PlayerType, error) {
	var out []playerDomain.PlayerType
	for _, t := range r.types {
		if t.Active {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakePlayerTypeRepository) FindActiveByCode(_ context.Context, code string) (*playerDomain.PlayerType, error) {
	for _, t := range r.types {
		if t.Active && t.Code == code {
			found := t
			return &found, nil
		}
	}
	return nil, domain.NewNotFoundError("PlayerType", code)
}

// fakePitchRepository is an in-memory PitchRepository.
type fakePitchRepository struct {
	pitches map[string]*pitchDomain.Pitch
}

func newFakePitchRepository() *fakePitchRepository {
	return &fakePitchRepository{pitches: make(map[string]*pitchDomain.Pitch)}
}

func (r *fakePitchRepository) FindByID(_ context.Context, id string) (*pitchDomain.Pitch, error) {
	p, ok := r.pitches[id]
	if !ok {
		return nil, domain.NewNotFoundError("Pitch", id)
	}
	return p, nil
}

func (r *fakePitchRepository) FindAll(_ context.Context) ([]*pitchDomain.Pitch, error) {
	out := make([]*pitchDomain.Pitch, 0, len(r.pitches))
	for _, p := range r.pitches {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePitchRepository) FindActive(_ context.Context) ([]*pitchDomain.Pitch, error) {
	var out []*pitchDomain.Pitch
	for _, p := range r.pitches {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePitchRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.pitches[id]
	return ok, nil
}

func (r *fakePitchRepository) Save(_ context.Context, pitch *pitchDomain.Pitch) error {
	r.pitches[pitch.ID()] = pitch
	return nil
}

func (r *fakePitchRepository) Update(_ context.Context, pitch *pitchDomain.Pitch) error {
	if _, ok := r.pitches[pitch.ID()]; !ok {
		return domain.NewNotFoundError("Pitch", pitch.ID())
	}
	r.pitches[pitch.ID()] = pitch
	return nil
}

// fakeMatchRepository is an in-memory append-only match log.
type fakeMatchRepository struct {
	matches []*rankingDomain.Match
}

func (r *fakeMatchRepository) FindByPlayer(_ context.Context, playerID string) ([]*rankingDomain.Match, error) {
	var out []*rankingDomain.Match
	for _, m := range r.matches {
		if m.Involves(playerID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepository) FindAll(_ context.Context) ([]*rankingDomain.Match, error) {
	return append([]*rankingDomain.Match(nil), r.matches...), nil
}

func (r *fakeMatchRepository) Save(_ context.Context, match *rankingDomain.Match) error {
	r.matches = append(r.matches, match)
	return nil
}
