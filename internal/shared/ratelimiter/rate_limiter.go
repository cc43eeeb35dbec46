// Package ratelimiter provides a fixed-window limiter for outbound calls.
package ratelimiter

import (
	"log"
	"time"
)

// RateLimiterInterface limits the frequency of operations such as external API calls.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter counts calls within a fixed window and sleeps when the
// limit is reached.
type RateLimiter struct {
	limit     int           // maximum calls per interval
	interval  time.Duration // window length
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter instance.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded checks whether the window limit has been hit and sleeps
// until the window resets if so.
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			log.Printf("[RATE LIMIT] hit %d calls, sleeping for %v...", rl.limit, sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
