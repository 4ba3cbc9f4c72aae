package slots

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/services/shared/gateway"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSlotBackend_FindAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/slots/available", r.URL.Path)
		switch r.URL.Query().Get("mode") {
		case "ONLINE":
			assert.Equal(t, "2024-05-01", r.URL.Query().Get("date"))
			w.Write([]byte(`{"success":true,"data":[{"id":"s-1","startAt":"2024-05-01T10:00:00Z","endAt":"2024-05-01T10:40:00Z","mode":"ONLINE"}]}`))
		case "":
			_, hasMode := r.URL.Query()["mode"]
			assert.False(t, hasMode)
			w.Write([]byte(`{"success":true,"data":[]}`))
		}
	}))
	defer server.Close()

	cfg := &config.InternalConfig{Backend: config.Backend{BaseUrl: server.URL, TimeoutInSeconds: 5}}
	backend := NewSlotBackend(gateway.NewClient(cfg, zap.NewNop()), zap.NewNop())

	t.Run("filters by date and mode", func(t *testing.T) {
		slots, err := backend.FindAvailable(context.Background(), "2024-05-01", "ONLINE")
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "s-1", slots[0].ID)
		assert.Equal(t, "ONLINE", slots[0].Mode)
	})

	t.Run("mode is optional", func(t *testing.T) {
		slots, err := backend.FindAvailable(context.Background(), "2024-05-01", "")
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}
