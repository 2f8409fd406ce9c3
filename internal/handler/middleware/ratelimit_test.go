//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"marketplace-core/internal/handler/middleware"
	"marketplace-core/internal/pkg/ratelimit"
	"marketplace-core/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type scriptedLimiter struct {
	decision ratelimit.Decision
	err      error
	keys     []string
}

func (l *scriptedLimiter) Allow(_ context.Context, key string) (ratelimit.Decision, error) {
	l.keys = append(l.keys, key)
	return l.decision, l.err
}

func setupRateLimitRouter(limiter ratelimit.Limiter, userID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	if userID != nil {
		r.Use(func(c *gin.Context) {
			c.Set("user_id", *userID)
			c.Next()
		})
	}
	r.Use(middleware.RateLimit(limiter))
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("allowed request passes and is keyed by ip", func(t *testing.T) {
		l := &scriptedLimiter{decision: ratelimit.Decision{Allowed: true}}
		rec := httptest.PerformRequest(t, setupRateLimitRouter(l, nil), http.MethodGet, "/ping", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"ip:192.0.2.1"}, l.keys)
	})

	t.Run("authenticated caller is keyed by user", func(t *testing.T) {
		id := uuid.New()
		l := &scriptedLimiter{decision: ratelimit.Decision{Allowed: true}}
		_ = httptest.PerformRequest(t, setupRateLimitRouter(l, &id), http.MethodGet, "/ping", nil, "")

		assert.Equal(t, []string{"user:" + id.String()}, l.keys)
	})

	t.Run("denied request gets 429 with rounded up Retry-After", func(t *testing.T) {
		l := &scriptedLimiter{decision: ratelimit.Decision{Allowed: false, RetryAfter: 1500 * time.Millisecond}}
		rec := httptest.PerformRequest(t, setupRateLimitRouter(l, nil), http.MethodGet, "/ping", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
		assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	})

	t.Run("sub-second wait still advertises one second", func(t *testing.T) {
		l := &scriptedLimiter{decision: ratelimit.Decision{Allowed: false, RetryAfter: 10 * time.Millisecond}}
		rec := httptest.PerformRequest(t, setupRateLimitRouter(l, nil), http.MethodGet, "/ping", nil, "")

		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})

	t.Run("limiter failure fails open", func(t *testing.T) {
		l := &scriptedLimiter{err: errors.New("redis: connection refused")}
		rec := httptest.PerformRequest(t, setupRateLimitRouter(l, nil), http.MethodGet, "/ping", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
