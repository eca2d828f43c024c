// middleware/ratelimit.go - per-IP token bucket rate limiting
package middleware

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

type tokenBucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(maxTokens, refillRate float64) *tokenBucket {
	return &tokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.refillRate
	if tb.tokens > tb.maxTokens {
		tb.tokens = tb.maxTokens
	}
	tb.lastRefill = now

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// RateLimiter keeps one token bucket per client key.
type RateLimiter struct {
	buckets       map[string]*tokenBucket
	mu            sync.Mutex
	maxRequests   int
	windowSeconds int
}

func NewRateLimiter(maxRequests, windowSeconds int) *RateLimiter {
	rl := &RateLimiter{
		buckets:       make(map[string]*tokenBucket),
		maxRequests:   maxRequests,
		windowSeconds: windowSeconds,
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	bucket, ok := rl.buckets[key]
	if !ok {
		refillRate := float64(rl.maxRequests) / float64(rl.windowSeconds)
		bucket = newTokenBucket(float64(rl.maxRequests), refillRate)
		rl.buckets[key] = bucket
	}
	rl.mu.Unlock()
	return bucket.allow()
}

// cleanupLoop drops buckets idle for half an hour so the map does not grow
// with every client ever seen.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		rl.mu.Lock()
		for key, bucket := range rl.buckets {
			bucket.mu.Lock()
			if now.Sub(bucket.lastRefill) > 30*time.Minute {
				delete(rl.buckets, key)
			}
			bucket.mu.Unlock()
		}
		rl.mu.Unlock()
	}
}

func rateLimitDisabled() bool {
	val := strings.ToLower(strings.TrimSpace(os.Getenv("RATE_LIMIT_ENABLED")))
	return val == "false" || val == "0" || val == "no"
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return def
}

// RateLimit returns a per-IP rate limiting middleware configured from
// RATE_LIMIT_MAX_REQUESTS / RATE_LIMIT_WINDOW_MS, skippable for development
// with RATE_LIMIT_ENABLED=false. The health endpoint is never limited.
func RateLimit() fiber.Handler {
	maxRequests := getEnvInt("RATE_LIMIT_MAX_REQUESTS", 100)
	windowSeconds := getEnvInt("RATE_LIMIT_WINDOW_MS", 60000) / 1000
	if windowSeconds <= 0 {
		windowSeconds = 60
	}
	limiter := NewRateLimiter(maxRequests, windowSeconds)

	return func(c *fiber.Ctx) error {
		if rateLimitDisabled() || c.Path() == "/health" {
			return c.Next()
		}
		if !limiter.Allow(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		}
		return c.Next()
	}
}
