// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/scholarpage/scholarpage/config"
	"codeberg.org/scholarpage/scholarpage/i18n"
	"codeberg.org/scholarpage/scholarpage/server/request_context"
)

func TestMain(m *testing.M) {
	if err := i18n.Setup(); err != nil {
		fmt.Fprintln(os.Stderr, "i18n setup:", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// The tests below share the limiter map, the clock and config.Global, so
// they run sequentially.

// setupLimiterTest enables the limiter with a small budget and a frozen clock.
func setupLimiterTest(t *testing.T) *time.Time {
	t.Helper()

	saved := config.Global.Limiter
	savedNow := timeNow

	config.Global.Limiter.Enabled = true
	config.Global.Limiter.Rate = 1
	config.Global.Limiter.Burst = 2
	config.Global.Limiter.FilterLocal = false
	config.Global.Limiter.IPv4Prefix = 24
	config.Global.Limiter.IPv6Prefix = 48
	config.Global.Limiter.IdleTimeout = 10 * time.Minute

	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }

	clearLimiters()

	t.Cleanup(func() {
		Fini()
		clearLimiters()

		config.Global.Limiter = saved
		timeNow = savedNow
	})

	return &now
}

func clearLimiters() {
	limiters.Range(func(key, _ any) bool {
		limiters.Delete(key)

		return true
	})
}

func serve(remoteAddr string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = remoteAddr
	r = r.WithContext(request_context.WithRequestContext(r.Context(), r))

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	Evaluate(rr, r, next)

	return rr
}

func TestEvaluateDisabled(t *testing.T) {
	setupLimiterTest(t)

	config.Global.Limiter.Enabled = false

	for range 10 {
		assert.Equal(t, http.StatusOK, serve("203.0.113.5:1000").Code)
	}
}

func TestEvaluateSharesBudgetPerNetwork(t *testing.T) {
	now := setupLimiterTest(t)

	assert.Equal(t, http.StatusOK, serve("203.0.113.5:1000").Code)
	assert.Equal(t, http.StatusOK, serve("203.0.113.9:1000").Code)

	blocked := serve("203.0.113.200:1000")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "1", blocked.Header().Get("Retry-After"))
	assert.Contains(t, blocked.Body.String(), "429")

	assert.Equal(t, http.StatusOK, serve("198.51.100.1:1000").Code, "other networks keep their own budget")

	*now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, serve("203.0.113.5:1000").Code, "one token refills per second")
	assert.Equal(t, http.StatusTooManyRequests, serve("203.0.113.5:1000").Code)
}

func TestEvaluateLocalClients(t *testing.T) {
	setupLimiterTest(t)

	for range 5 {
		assert.Equal(t, http.StatusOK, serve("127.0.0.1:1000").Code)
	}

	config.Global.Limiter.FilterLocal = true

	codes := make([]int, 0, 3)
	for range 3 {
		codes = append(codes, serve("127.0.0.1:1000").Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestCleanupIdleLimiters(t *testing.T) {
	now := setupLimiterTest(t)

	getOrCreateLimiter("203.0.113.0/24", 1, 2)

	*now = now.Add(5 * time.Minute)
	fresh := getOrCreateLimiter("198.51.100.0/24", 1, 2)
	require.True(t, allow(fresh))

	*now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, cleanupIdleLimiters(10*time.Minute))

	_, stale := limiters.Load("203.0.113.0/24")
	assert.False(t, stale)

	_, kept := limiters.Load("198.51.100.0/24")
	assert.True(t, kept)
}

func TestGetOrCreateLimiterReuses(t *testing.T) {
	setupLimiterTest(t)

	a := getOrCreateLimiter("203.0.113.0/24", 1, 2)
	b := getOrCreateLimiter("203.0.113.0/24", 5, 50)

	assert.Same(t, a, b)
	assert.Equal(t, 2, b.limiter.Burst())
}

func TestInitFini(t *testing.T) {
	setupLimiterTest(t)

	Init()
	Init()
	Fini()
	Fini()

	sweepMu.Lock()
	defer sweepMu.Unlock()

	assert.Nil(t, sweepCancel)
}

func TestRetryAfterSeconds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, retryAfterSeconds(5))
	assert.Equal(t, 4, retryAfterSeconds(0.25))
	assert.Equal(t, 1, retryAfterSeconds(0))
}
