// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/utils"
)

const (
	defaultRateLimitRPS = 1.0
	visitorTTL          = 10 * time.Minute
	cleanupEvery        = 1000
)

// keyFunc selects the identity a bucket belongs to.
type keyFunc func(r *http.Request) string

// keyByUserOrIP prefers the authenticated user and falls back to the client
// address.
func keyByUserOrIP(r *http.Request) string {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok && userID > 0 {
		return "user:" + strconv.FormatInt(userID, 10)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-key token bucket limiter. Idle buckets are evicted
// during lookups.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn keyFunc
	now   func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
	lookups  int
}

// NewRateLimiter builds a limiter refilling rps tokens per second. A
// non-positive rps falls back to one per second and a non-positive burst to
// one.
func NewRateLimiter(rps float64, burst int, keyFn keyFunc) *RateLimiter {
	if rps <= 0 {
		rps = defaultRateLimitRPS
	}
	if burst <= 0 {
		burst = 1
	}

	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		keyFn:    keyFn,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lookups++
	if rl.lookups >= cleanupEvery {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= visitorTTL {
				delete(rl.visitors, k)
			}
		}
		rl.lookups = 0
	}

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}

	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: lim, lastSeen: now}
	return lim
}

// Limit rejects requests over the limit with 429 and a Retry-After header.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.keyFn(r)
		if rl.limiterFor(key).Allow() {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Warn().Str("func", "*RateLimiter.Limit").Str("key", key).Msg("rate limit exceeded")
		w.Header().Set("Retry-After", "1")
		utils.WriteError(w, ErrRateLimitExceeded.Error(), http.StatusTooManyRequests)
	})
}
