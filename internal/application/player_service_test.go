package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fieldhouse/service-booking/internal/domain"
)

func newPlayerService(t *testing.T) (*PlayerService, *fakePlayerRepository) {
	t.Helper()
	repo := newFakePlayerRepository()
	return NewPlayerService(repo, defaultPlayerTypes(), zap.NewNop()), repo
}

func TestPlayerService_RegisterPlayer(t *testing.T) {
	ctx := context.Background()
	valid := RegisterPlayerRequest{ID: "PL01", Name: "Alex Doe", Email: "alex@example.com", Type: "standard"}

	t.Run("registers a new player", func(t *testing.T) {
		svc, repo := newPlayerService(t)

		dto, err := svc.RegisterPlayer(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, "PL01", dto.ID)
		assert.Equal(t, "standard", dto.Type)
		assert.False(t, dto.RegistrationDate.IsZero())

		saved, err := repo.FindByID(ctx, "PL01")
		require.NoError(t, err)
		assert.Equal(t, "alex@example.com", saved.Email())
	})

	t.Run("rejects duplicate player ID", func(t *testing.T) {
		svc, _ := newPlayerService(t)
		_, err := svc.RegisterPlayer(ctx, valid)
		require.NoError(t, err)

		dup := valid
		dup.Email = "other@example.com"
		_, err = svc.RegisterPlayer(ctx, dup)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAlreadyExists))
		assert.Equal(t, "Player with ID PL01 already exists", err.Error())
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, _ := newPlayerService(t)
		_, err := svc.RegisterPlayer(ctx, valid)
		require.NoError(t, err)

		dup := valid
		dup.ID = "PL02"
		_, err = svc.RegisterPlayer(ctx, dup)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAlreadyExists))
	})

	t.Run("rejects unknown player type", func(t *testing.T) {
		svc, _ := newPlayerService(t)

		bad := valid
		bad.Type = "platinum"
		_, err := svc.RegisterPlayer(ctx, bad)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindValidation))
		assert.Equal(t, "Invalid player type: platinum", err.Error())
	})
}

func TestPlayerService_Lookups(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPlayerService(t)

	_, err := svc.RegisterPlayer(ctx, RegisterPlayerRequest{ID: "PL01", Name: "Alex Doe", Email: "alex@example.com", Type: "premium"})
	require.NoError(t, err)

	t.Run("get player by ID", func(t *testing.T) {
		dto, err := svc.GetPlayer(ctx, "PL01")
		require.NoError(t, err)
		assert.Equal(t, "Alex Doe", dto.Name)
	})

	t.Run("missing player is not found", func(t *testing.T) {
		_, err := svc.GetPlayer(ctx, "PL99")
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})

	t.Run("active player types listed", func(t *testing.T) {
		types, err := svc.GetActivePlayerTypes(ctx)
		require.NoError(t, err)
		assert.Len(t, types, 2)
	})

	t.Run("advance window follows the player's type", func(t *testing.T) {
		days, err := svc.GetPlayerMaxAdvanceDays(ctx, "PL01")
		require.NoError(t, err)
		assert.Equal(t, 30, days)

		ok, err := svc.CanPlayerBookAt(ctx, "PL01", time.Now().AddDate(0, 0, 20))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.CanPlayerBookAt(ctx, "PL01", time.Now().AddDate(0, 0, 40))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
