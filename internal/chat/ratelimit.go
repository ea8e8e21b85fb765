package chat

import (
	"sync"
	"time"
)

const (
	DefaultRateInterval = time.Second
	pruneThreshold      = 1024
)

// RateLimiter allows one message per conversation per interval.
type RateLimiter struct {
	mu       sync.Mutex
	last     map[string]time.Time
	interval time.Duration
}

func NewRateLimiter(interval time.Duration) *RateLimiter {
	if interval <= 0 {
		interval = DefaultRateInterval
	}
	return &RateLimiter{
		last:     make(map[string]time.Time),
		interval: interval,
	}
}

// Allow reports whether key may send now, or how long it has to wait.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	return rl.allowAt(key, time.Now())
}

func (rl *RateLimiter) allowAt(key string, now time.Time) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if last, ok := rl.last[key]; ok {
		next := last.Add(rl.interval)
		if now.Before(next) {
			return false, next.Sub(now)
		}
	}
	if len(rl.last) >= pruneThreshold {
		rl.pruneLocked(now)
	}
	rl.last[key] = now
	return true, 0
}

// pruneLocked drops keys whose interval has elapsed.
func (rl *RateLimiter) pruneLocked(now time.Time) {
	for k, t := range rl.last {
		if !now.Before(t.Add(rl.interval)) {
			delete(rl.last, k)
		}
	}
}

func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.last = make(map[string]time.Time)
}
