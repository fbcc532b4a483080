package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldhouse/service-booking/internal/domain"
)

func TestNewBooking(t *testing.T) {
	tomorrow := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name      string
		pitchID   string
		playerID  string
		startTime time.Time
		minutes   int
		wantErr   string
	}{
		{
			name:      "valid booking",
			pitchID:   "PITCH-A",
			playerID:  "PL01",
			startTime: tomorrow,
			minutes:   90,
		},
		{
			name:      "minimum duration accepted",
			pitchID:   "PITCH-A",
			playerID:  "PL01",
			startTime: tomorrow,
			minutes:   15,
		},
		{
			name:      "maximum duration accepted",
			pitchID:   "PITCH-A",
			playerID:  "PL01",
			startTime: tomorrow,
			minutes:   120,
		},
		{
			name:      "missing pitch ID",
			pitchID:   "",
			playerID:  "PL01",
			startTime: tomorrow,
			minutes:   60,
			wantErr:   "pitch ID is required",
		},
		{
			name:      "missing player ID",
			pitchID:   "PITCH-A",
			playerID:  "",
			startTime: tomorrow,
			minutes:   60,
			wantErr:   "player ID is required",
		},
		{
			name:      "duration below minimum",
			pitchID:   "PITCH-A",
			playerID:  "PL01",
			startTime: tomorrow,
			minutes:   10,
			wantErr:   "booking duration must be between 15 and 120 minutes",
		},
		{
			name:      "duration above maximum",
			pitchID:   "PITCH-A",
			playerID:  "PL01",
			startTime: tomorrow,
			minutes:   150,
			wantErr:   "booking duration must be between 15 and 120 minutes",
		},
		{
			name:      "start time in the past",
			pitchID:   "PITCH-A",
			playerID:  "PL01",
			startTime: time.Now().Add(-time.Hour),
			minutes:   60,
			wantErr:   "start time must be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bk, err := NewBooking(tt.pitchID, tt.playerID, tt.startTime, tt.minutes)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, domain.IsKind(err, domain.KindValidation))
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, bk.ID())
			assert.Equal(t, tt.pitchID, bk.PitchID())
			assert.Equal(t, tt.playerID, bk.PlayerID())
			assert.Equal(t, tt.minutes, bk.DurationMinutes())
			assert.False(t, bk.CreatedAt().IsZero())
		})
	}
}

func TestBooking_EndTimeDerived(t *testing.T) {
	start := time.Now().Add(24 * time.Hour)
	bk, err := NewBooking("PITCH-A", "PL01", start, 90)
	require.NoError(t, err)

	assert.Equal(t, start.Add(90*time.Minute), bk.EndTime())
}

func TestReconstruct(t *testing.T) {
	id := uuid.New()
	start := time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC)
	created := start.Add(-48 * time.Hour)

	// Past start times must survive rehydration untouched.
	bk := Reconstruct(id, "PITCH-A", "PL01", start, 60, created)

	assert.Equal(t, id, bk.ID())
	assert.Equal(t, start, bk.StartTime())
	assert.Equal(t, start.Add(time.Hour), bk.EndTime())
	assert.Equal(t, created, bk.CreatedAt())
}

func TestDayWindow(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kuala_Lumpur")
	require.NoError(t, err)

	at := time.Date(2026, 3, 14, 17, 45, 12, 0, loc)
	start, end := DayWindow(at)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 14, 23, 59, 59, 0, loc), end)
}
