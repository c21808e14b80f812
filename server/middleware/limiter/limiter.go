// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"codeberg.org/scholarpage/scholarpage/config"
	"codeberg.org/scholarpage/scholarpage/server/request_context"
	"codeberg.org/scholarpage/scholarpage/server/routes"
)

// minCleanupInterval bounds how often the idle sweep runs.
const minCleanupInterval = time.Minute

var (
	limiters sync.Map   // network string -> *limiterWrapper
	timeNow  = time.Now // replaced in tests

	sweepMu     sync.Mutex
	sweepCancel context.CancelFunc
	sweepDone   chan struct{}
)

// limiterWrapper is the token bucket of one network.
type limiterWrapper struct {
	limiter *rate.Limiter
	network string

	mu         sync.Mutex
	lastAccess time.Time
}

// Evaluate is the limiter middleware. Requests over the network's budget get
// a 429 with the themed error page.
func Evaluate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	cfg := config.Global.Limiter
	if !cfg.Enabled {
		next.ServeHTTP(w, r)

		return
	}

	ip := getClientIP(r)
	if ip == nil {
		log.Warn().Str("remote_addr", r.RemoteAddr).Msg("Could not determine client IP, skipping rate limit")
		next.ServeHTTP(w, r)

		return
	}

	if !cfg.FilterLocal && isLocal(ip) {
		next.ServeHTTP(w, r)

		return
	}

	network := getNetwork(ip, cfg.IPv4Prefix, cfg.IPv6Prefix).String()
	lim := getOrCreateLimiter(network, cfg.Rate, cfg.Burst)

	if allow(lim) {
		next.ServeHTTP(w, r)

		return
	}

	log.Warn().
		Str("ip", ip.String()).
		Str("network", network).
		Msg("Rate limit exceeded")

	rc := request_context.FromRequest(r)
	rc.StatusCode = http.StatusTooManyRequests

	w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(cfg.Rate)))
	routes.ErrorPage(w, r)
}

// allow consumes one token from lim.
func allow(lim *limiterWrapper) bool {
	lim.mu.Lock()
	defer lim.mu.Unlock()

	now := timeNow()
	lim.lastAccess = now

	return lim.limiter.AllowN(now, 1)
}

// retryAfterSeconds is the time for one token to refill, rounded up.
func retryAfterSeconds(r float64) int {
	if r <= 0 {
		return 1
	}

	return max(1, int(math.Ceil(1/r)))
}

func getOrCreateLimiter(network string, r float64, burst int) *limiterWrapper {
	if v, ok := limiters.Load(network); ok {
		if lim, ok := v.(*limiterWrapper); ok {
			return lim
		}
	}

	fresh := &limiterWrapper{
		limiter:    rate.NewLimiter(rate.Limit(r), burst),
		network:    network,
		lastAccess: timeNow(),
	}

	actual, _ := limiters.LoadOrStore(network, fresh)

	lim, _ := actual.(*limiterWrapper)

	return lim
}

// cleanupIdleLimiters drops every bucket unused for longer than idle and
// returns how many were removed.
func cleanupIdleLimiters(idle time.Duration) int {
	cutoff := timeNow().Add(-idle)
	removed := 0

	limiters.Range(func(key, value any) bool {
		lim, ok := value.(*limiterWrapper)
		if !ok {
			limiters.Delete(key)

			return true
		}

		lim.mu.Lock()
		stale := lim.lastAccess.Before(cutoff)
		lim.mu.Unlock()

		if stale {
			limiters.Delete(key)

			removed++
		}

		return true
	})

	return removed
}

// Init starts the idle sweep. Calling Init while a sweep runs restarts it.
func Init() {
	Fini()

	idle := config.Global.Limiter.IdleTimeout
	interval := max(idle/2, minCleanupInterval)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	sweepMu.Lock()
	sweepCancel, sweepDone = cancel, done
	sweepMu.Unlock()

	log.Info().
		Float64("rate", config.Global.Limiter.Rate).
		Int("burst", config.Global.Limiter.Burst).
		Dur("idle_timeout", idle).
		Msg("Limiter enabled")

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				start := time.Now()
				removed := cleanupIdleLimiters(idle)

				log.Debug().
					Int("removed", removed).
					Dur("dur", time.Since(start)).
					Msg("limiter cleanup")
			}
		}
	}()
}

// Fini stops the idle sweep and waits for it to exit.
func Fini() {
	sweepMu.Lock()
	cancel, done := sweepCancel, sweepDone
	sweepCancel, sweepDone = nil, nil
	sweepMu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}
