package session

import (
	"campus-connect/config"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(NewMemoryStore(), config.Session{Secret: "test-secret", MaxAge: 3600})
}

// roundTrip 执行 fn，并把响应里的 cookie 带到下一次请求
func roundTrip(t *testing.T, cookies []*http.Cookie, fn func(c *gin.Context)) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	fn(c)
	return w.Result().Cookies()
}

func TestStartResolveEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestManager()

	cookies := roundTrip(t, nil, func(c *gin.Context) {
		require.NoError(t, m.Start(c, 7))
	})
	require.Len(t, cookies, 1)
	require.Equal(t, "campus_session", cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	roundTrip(t, cookies, func(c *gin.Context) {
		userID, err := m.Resolve(c)
		require.NoError(t, err)
		require.Equal(t, uint(7), userID)
	})

	cleared := roundTrip(t, cookies, func(c *gin.Context) {
		require.NoError(t, m.End(c))
	})
	require.Len(t, cleared, 1)
	require.Empty(t, cleared[0].Value)

	// 旧 cookie 在注销后失效
	roundTrip(t, cookies, func(c *gin.Context) {
		_, err := m.Resolve(c)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResolveWithoutCookie(t *testing.T) {
	m := newTestManager()
	roundTrip(t, nil, func(c *gin.Context) {
		_, err := m.Resolve(c)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResolveRejectsForgedCookie(t *testing.T) {
	m := newTestManager()
	roundTrip(t, []*http.Cookie{{Name: "campus_session", Value: "forged.token.value"}}, func(c *gin.Context) {
		_, err := m.Resolve(c)
		require.Error(t, err)
	})
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "a", 3, time.Minute))
	id, err := s.Load(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, uint(3), id)

	now = now.Add(2 * time.Minute)
	_, err = s.Load(ctx, "a")
	require.ErrorIs(t, err, ErrNotFound)
}
