package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewInMemoryRateLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("1.2.3.4"), "request %d", i)
	}
	assert.False(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("5.6.7.8"), "other keys are unaffected")
}

func TestRateLimiterWindowReset(t *testing.T) {
	limiter := NewInMemoryRateLimiter(1, 10*time.Millisecond)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))
	time.Sleep(20 * time.Millisecond)
	assert.True(t, limiter.Allow("1.2.3.4"))
}
