package service

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ashhad25/moderateai-console/internal/pkg/redis"
)

// LoginRateLimit manages IP-based rate limiting for the login form. Counts
// are kept in Redis when it is available so limits survive a console
// restart; otherwise an in-memory sliding window is used.
type LoginRateLimit struct {
	requests map[string][]time.Time
	mu       sync.Mutex
	window   time.Duration
	maxReqs  int
}

// NewLoginRateLimit creates a new login rate limiter
func NewLoginRateLimit(window time.Duration, maxReqs int) *LoginRateLimit {
	return &LoginRateLimit{
		requests: make(map[string][]time.Time),
		window:   window,
		maxReqs:  maxReqs,
	}
}

// Check checks if the IP is within the login attempt limit
func (r *LoginRateLimit) Check(ip string) bool {
	if redis.Available() {
		count, err := redis.CountAttempt(r.redisKey(ip), r.window)
		if err == nil {
			return count <= r.maxReqs
		}
		// Redis error, fall back to the in-memory window
		zap.L().Warn("Redis error, using in-memory login limiter", zap.Error(err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	// Clean old requests
	if reqs, exists := r.requests[ip]; exists {
		var valid []time.Time
		for _, t := range reqs {
			if now.Sub(t) < r.window {
				valid = append(valid, t)
			}
		}
		r.requests[ip] = valid
	}

	// Check if within limit
	if len(r.requests[ip]) >= r.maxReqs {
		return false
	}

	// Add current request
	r.requests[ip] = append(r.requests[ip], now)
	return true
}

// Reset clears the attempt count for an IP after a successful login
func (r *LoginRateLimit) Reset(ip string) {
	if redis.Available() {
		if err := redis.ResetAttempts(r.redisKey(ip)); err != nil {
			zap.L().Warn("Failed to reset login attempts", zap.Error(err))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.requests, ip)
}

func (r *LoginRateLimit) redisKey(ip string) string {
	return fmt.Sprintf("login_attempts:%s", ip)
}
