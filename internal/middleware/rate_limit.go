package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the trailing time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
}

// SlidingWindowLimiter admits requests based on the number of prior
// requests an identity made within a trailing window. State is held in
// process memory and is lost on restart.
type SlidingWindowLimiter struct {
	mu      sync.Mutex
	config  RateLimitConfig
	buckets map[string][]time.Time

	// now is swappable so tests can drive a fake clock.
	now func() time.Time

	stopSweep chan struct{}
	sweepOnce sync.Once
}

// NewSlidingWindowLimiter creates a new in-memory rate limiter instance
func NewSlidingWindowLimiter(config RateLimitConfig) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		config:    config,
		buckets:   make(map[string][]time.Time),
		now:       time.Now,
		stopSweep: make(chan struct{}),
	}
}

// Allow reports whether a request from the given identity is admitted.
// Timestamps older than the window are pruned on every call; a denied
// request is not recorded.
func (rl *SlidingWindowLimiter) Allow(identity string) bool {
	allowed, _, _ := rl.check(identity, true)
	return allowed
}

// Remaining returns the number of requests the identity has left in the
// current window and the time at which the oldest recorded request ages out.
func (rl *SlidingWindowLimiter) Remaining(identity string) (int, time.Time) {
	_, remaining, reset := rl.check(identity, false)
	return remaining, reset
}

func (rl *SlidingWindowLimiter) check(identity string, record bool) (bool, int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.config.Window)

	recent := rl.buckets[identity][:0]
	for _, ts := range rl.buckets[identity] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= rl.config.Limit {
		rl.buckets[identity] = recent
		return false, 0, recent[0].Add(rl.config.Window)
	}

	if record {
		recent = append(recent, now)
	}
	rl.buckets[identity] = recent

	remaining := rl.config.Limit - len(recent)
	reset := now.Add(rl.config.Window)
	if len(recent) > 0 {
		reset = recent[0].Add(rl.config.Window)
	}
	return true, remaining, reset
}

// Sweep removes identities whose recorded requests have all aged out of
// the window, bounding memory under many distinct identities.
func (rl *SlidingWindowLimiter) Sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.config.Window)
	for identity, stamps := range rl.buckets {
		live := false
		for _, ts := range stamps {
			if ts.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(rl.buckets, identity)
		}
	}
}

// StartSweeper runs Sweep once per window until Stop is called.
func (rl *SlidingWindowLimiter) StartSweeper() {
	go func() {
		ticker := time.NewTicker(rl.config.Window)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.Sweep()
			case <-rl.stopSweep:
				return
			}
		}
	}()
}

// Stop terminates the background sweeper.
func (rl *SlidingWindowLimiter) Stop() {
	rl.sweepOnce.Do(func() { close(rl.stopSweep) })
}

// RateLimitMiddleware returns a Gin middleware that enforces rate limiting
// per authenticated user.
func (rl *SlidingWindowLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		identity := fmt.Sprintf("%v", userID)
		allowed := rl.Allow(identity)
		remaining, resetTime := rl.Remaining(identity)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("Rate limit exceeded. Max %d requests per %v.", rl.config.Limit, rl.config.Window),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
