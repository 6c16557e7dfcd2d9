package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{RPS: 10})
	defer rl.Stop()

	assert.NotNil(t, rl)
	assert.Equal(t, 10.0, rl.config.RPS)
	assert.Equal(t, 1, rl.config.Burst)
	assert.Equal(t, 10*time.Minute, rl.config.IdleTTL)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.Equal(t, "Too many requests. Please try again later.", rl.config.Message)
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}

	t.Run("WithinBurst", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{RPS: 0.001, Burst: 2})
		defer rl.Stop()
		handler := rl.Middleware()(ok)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("ExceededBurst", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{RPS: 0.001, Burst: 1, Message: "slow down"})
		defer rl.Stop()
		handler := rl.Middleware()(ok)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.NoError(t, handler(c))

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		c = e.NewContext(req, httptest.NewRecorder())
		err := handler(c)

		assert.Error(t, err)
		he, isHTTP := err.(*echo.HTTPError)
		assert.True(t, isHTTP)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
		assert.Equal(t, "slow down", he.Message)
	})

	t.Run("SeparateKeys", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{RPS: 0.001, Burst: 1})
		defer rl.Stop()
		handler := rl.Middleware()(ok)

		for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(echo.HeaderXRealIP, ip)
			c := e.NewContext(req, httptest.NewRecorder())
			assert.NoError(t, handler(c), ip)
		}
	})
}

func TestRateLimiterEvictIdle(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{RPS: 1, Burst: 1, IdleTTL: time.Minute})
	defer rl.Stop()

	rl.Allow("a")
	rl.Allow("b")
	rl.mu.Lock()
	rl.store["a"].lastSeen = time.Now().Add(-2 * time.Minute)
	rl.mu.Unlock()

	rl.evictIdle(time.Now())

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.store, "a")
	assert.Contains(t, rl.store, "b")
}
