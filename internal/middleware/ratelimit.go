package middleware

import (
	"net/http"
	"sync"
	"time"
)

// LoginRateLimiter limits login attempts per client IP
type LoginRateLimiter struct {
	attempts    map[string][]time.Time
	mutex       sync.Mutex
	maxAttempts int
	window      time.Duration
}

// NewLoginRateLimiter creates a new login rate limiter
func NewLoginRateLimiter(maxAttempts int, window time.Duration) *LoginRateLimiter {
	rl := &LoginRateLimiter{
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
	}

	go rl.cleanup()

	return rl
}

// IsAllowed checks whether an attempt from the given IP is allowed and
// records it
func (rl *LoginRateLimiter) IsAllowed(ip string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	var valid []time.Time
	for _, attempt := range rl.attempts[ip] {
		if attempt.After(cutoff) {
			valid = append(valid, attempt)
		}
	}

	if len(valid) >= rl.maxAttempts {
		rl.attempts[ip] = valid
		return false
	}

	rl.attempts[ip] = append(valid, now)
	return true
}

// Middleware rejects requests over the limit with 429
func (rl *LoginRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.IsAllowed(getClientIP(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"too many attempts, try again later"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *LoginRateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		cutoff := time.Now().Add(-rl.window)
		for ip, attempts := range rl.attempts {
			var valid []time.Time
			for _, attempt := range attempts {
				if attempt.After(cutoff) {
					valid = append(valid, attempt)
				}
			}
			if len(valid) == 0 {
				delete(rl.attempts, ip)
			} else {
				rl.attempts[ip] = valid
			}
		}
		rl.mutex.Unlock()
	}
}
