package server

import (
	"context"
	"testing"
	"time"

	"movieshelf/internal/conf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIPLimiterDisabled(t *testing.T) {
	assert.Nil(t, newIPLimiter(nil))
	assert.Nil(t, newIPLimiter(&conf.Server_RateLimit{}))
}

func TestIPLimiter(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newIPLimiter(&conf.Server_RateLimit{Rps: 1, Burst: 2})
	require.NotNil(t, l)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// other clients have their own bucket
	assert.True(t, l.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestIPLimiterSweepsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newIPLimiter(&conf.Server_RateLimit{Rps: 1, Burst: 1})
	l.now = func() time.Time { return now }

	l.Allow("10.0.0.1")
	l.Allow("10.0.0.2")
	require.Len(t, l.clients, 2)

	now = now.Add(limiterIdleTTL + time.Second)
	l.Allow("10.0.0.3")
	assert.Len(t, l.clients, 1)
	assert.Contains(t, l.clients, "10.0.0.3")
}

func TestRequestIDValuer(t *testing.T) {
	v := RequestID()
	assert.Equal(t, "", v(context.Background()))

	ctx := context.WithValue(context.Background(), requestIDKey{}, "abc")
	assert.Equal(t, "abc", v(ctx))

	id, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}
