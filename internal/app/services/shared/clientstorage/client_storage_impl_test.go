package clientstorage

import (
	"anubha-web/internal/app/models"
	redisrepo "anubha-web/internal/app/services/shared/redis"
	"anubha-web/internal/pkg/constvars"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClientStorage(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	storage := NewClientStorage(redisrepo.NewRedisRepository(client), zap.NewNop(), time.Hour)
	ctx := context.Background()

	t.Run("missing key reports not found", func(t *testing.T) {
		var form models.BookingForm
		found, err := storage.Get(ctx, "sid-1", constvars.StorageKeyBookingForm, &form)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("round trip is scoped per session", func(t *testing.T) {
		err := storage.Set(ctx, "sid-1", constvars.StorageKeyBookingForm, &models.BookingForm{PlanSlug: "weight-loss"})
		require.NoError(t, err)

		var form models.BookingForm
		found, err := storage.Get(ctx, "sid-1", constvars.StorageKeyBookingForm, &form)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "weight-loss", form.PlanSlug)

		var other models.BookingForm
		found, err = storage.Get(ctx, "sid-2", constvars.StorageKeyBookingForm, &other)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("corrupted value is treated as absent", func(t *testing.T) {
		server.HSet(constvars.RedisClientStoragePrefix+"sid-3", constvars.StorageKeyUser, "{not json")

		var user map[string]interface{}
		found, err := storage.Get(ctx, "sid-3", constvars.StorageKeyUser, &user)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("remove deletes only the named keys", func(t *testing.T) {
		require.NoError(t, storage.Set(ctx, "sid-4", constvars.StorageKeyUser, map[string]string{"id": "u1"}))
		require.NoError(t, storage.Set(ctx, "sid-4", constvars.StorageKeyLoginOTPExpiry, 123))
		require.NoError(t, storage.Set(ctx, "sid-4", constvars.StorageKeyLoginFlow, "ENTER_PHONE"))

		require.NoError(t, storage.Remove(ctx, "sid-4", constvars.StorageKeyUser, constvars.StorageKeyLoginOTPExpiry))

		var state string
		found, err := storage.Get(ctx, "sid-4", constvars.StorageKeyLoginFlow, &state)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "ENTER_PHONE", state)

		var expiry int
		found, err = storage.Get(ctx, "sid-4", constvars.StorageKeyLoginOTPExpiry, &expiry)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set without session is rejected", func(t *testing.T) {
		err := storage.Set(ctx, "", constvars.StorageKeyUser, "x")
		assert.Error(t, err)
	})
}
