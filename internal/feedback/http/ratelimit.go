package http

import (
	"sync"

	"golang.org/x/time/rate"
)

// submitLimiter throttles feedback submissions per user so a stuck form
// cannot flood the inbox.
type submitLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newSubmitLimiter(limit rate.Limit, burst int) *submitLimiter {
	return &submitLimiter{
		limiters: map[string]*rate.Limiter{},
		limit:    limit,
		burst:    burst,
	}
}

func (l *submitLimiter) allow(uid string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[uid]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[uid] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}
