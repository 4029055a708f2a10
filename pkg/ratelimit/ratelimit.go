package ratelimit

import (
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// ErrLimited is returned when a key has exhausted its burst.
var ErrLimited = errors.New("rate limit exceeded")

// Config sizes a Limiter.
type Config struct {
	RequestsPerMin int
	Burst          int           // defaults to RequestsPerMin/10, at least 1
	MaxKeys        int           // defaults to 1000
	TTL            time.Duration // idle keys are forgotten after TTL; defaults to 5m
}

// Limiter is a keyed token-bucket limiter. Idle keys expire from an LRU so memory
// stays bounded.
type Limiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Limiter. A non-positive RequestsPerMin yields a Limiter that allows everything.
func New(cfg Config) *Limiter {
	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = 1000
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMin / 10
	}
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}

	limit := rate.Inf
	if cfg.RequestsPerMin > 0 {
		limit = rate.Limit(float64(cfg.RequestsPerMin) / 60.0)
	}

	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.MaxKeys, nil, cfg.TTL),
		rate:     limit,
		burst:    cfg.Burst,
	}
}

// Allow consumes one token for key, or returns ErrLimited.
func (l *Limiter) Allow(key string) error {
	l.mu.Lock()
	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}
	l.mu.Unlock()

	if !limiter.Allow() {
		return ErrLimited
	}
	return nil
}
