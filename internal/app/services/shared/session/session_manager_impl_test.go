package session

import (
	"anubha-web/internal/app/config"
	redisrepo "anubha-web/internal/app/services/shared/redis"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *sessionManager {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &config.InternalConfig{
		Session: config.Session{
			Secret:             "test-secret",
			CookieName:         "anubha_sid",
			ExpiredTimeInHours: 1,
		},
	}
	return NewSessionManager(redisrepo.NewRedisRepository(client), zap.NewNop(), cfg).(*sessionManager)
}

func TestSessionManager_RoundTrip(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	first, err := manager.Load(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.True(t, first.IsNew())

	first.MergeBackendCookies([]*http.Cookie{{Name: "connect.sid", Value: "abc"}}, time.Now())

	rec := httptest.NewRecorder()
	require.NoError(t, manager.Save(ctx, rec, first))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "anubha_sid", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	second, err := manager.Load(ctx, req)
	require.NoError(t, err)
	assert.False(t, second.IsNew())
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "abc", second.BackendCookies["connect.sid"])
}

func TestSessionManager_RejectsForgedCookie(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	forged, err := (&sessionManager{Secret: []byte("other-secret"), now: time.Now}).createToken("victim", time.Now().Add(time.Hour))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "anubha_sid", Value: forged})

	session, err := manager.Load(ctx, req)
	require.NoError(t, err)
	assert.True(t, session.IsNew())
	assert.NotEqual(t, "victim", session.ID)
}

func TestSessionManager_SaveSkipsCleanSession(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	session, err := manager.Load(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.NoError(t, manager.Save(ctx, httptest.NewRecorder(), session))

	rec := httptest.NewRecorder()
	require.NoError(t, manager.Save(ctx, rec, session))
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionManager_Destroy(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	session, err := manager.Load(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	require.NoError(t, manager.Save(ctx, rec, session))
	issued := rec.Result().Cookies()[0]

	rec = httptest.NewRecorder()
	require.NoError(t, manager.Destroy(ctx, rec, session))
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(issued)
	reloaded, err := manager.Load(ctx, req)
	require.NoError(t, err)
	assert.True(t, reloaded.IsNew())
}
