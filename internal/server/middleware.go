package server

import (
	"context"
	"sync"
	"time"

	"movieshelf/internal/conf"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
	"github.com/tomasen/realip"
	"golang.org/x/time/rate"
)

const RequestIDHeader = "X-Request-Id"

var ErrRateLimited = errors.New(429, "RATE_LIMITED", "too many requests")

type requestIDKey struct{}

// RequestIDMiddleware propagates the caller's X-Request-Id, or generates one,
// and echoes it in the reply header.
func RequestIDMiddleware() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			tr, ok := transport.FromServerContext(ctx)
			if !ok {
				return handler(ctx, req)
			}

			id := tr.RequestHeader().Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			tr.ReplyHeader().Set(RequestIDHeader, id)

			return handler(context.WithValue(ctx, requestIDKey{}, id), req)
		}
	}
}

// RequestIDFromContext returns the id set by RequestIDMiddleware.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// RequestID is a log.Valuer for the current request id.
func RequestID() log.Valuer {
	return func(ctx context.Context) interface{} {
		if ctx == nil {
			return ""
		}
		id, _ := RequestIDFromContext(ctx)
		return id
	}
}

// RateLimitMiddleware rejects HTTP requests once the client IP has spent its
// token bucket.
func RateLimitMiddleware(l *ipLimiter) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			if l == nil {
				return handler(ctx, req)
			}
			r, ok := khttp.RequestFromServerContext(ctx)
			if !ok {
				return handler(ctx, req)
			}
			if !l.Allow(realip.FromRequest(r)) {
				return nil, ErrRateLimited
			}
			return handler(ctx, req)
		}
	}
}

const (
	limiterIdleTTL       = 3 * time.Minute
	limiterSweepInterval = time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter keeps one token bucket per client IP. Idle entries are dropped
// lazily.
type ipLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	rps       rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// newIPLimiter returns nil when limiting is disabled.
func newIPLimiter(c *conf.Server_RateLimit) *ipLimiter {
	if c == nil || c.Rps <= 0 {
		return nil
	}
	burst := c.Burst
	if burst <= 0 {
		burst = 1
	}
	return &ipLimiter{
		clients: make(map[string]*client),
		rps:     rate.Limit(c.Rps),
		burst:   burst,
		now:     time.Now,
	}
}

func (l *ipLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterSweepInterval {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) > limiterIdleTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}
