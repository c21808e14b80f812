// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/scholarpage/scholarpage/config"
)

func TestSetResponseHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path             string
		wantCacheControl string
	}{
		{"/", "private, no-cache"},
		{"/css/site.css", "public, max-age=604800"},
		{"/images/avatar.jpg", "public, max-age=1209600"},
		{"/robots.txt", "public, max-age=86400"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

			Wrap(SetResponseHeaders, next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			h := rr.Header()
			assert.Equal(t, tt.wantCacheControl, h.Get("Cache-Control"))
			assert.Equal(t, "no-referrer", h.Get("Referrer-Policy"))
			assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
			assert.Contains(t, h.Get("Content-Security-Policy"), "script-src 'none'")
			assert.Equal(t, config.BuildVersion, h.Get("Scholarpage-Version"))
		})
	}
}

func TestHandlerCanOverrideCacheControl(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
	})

	Wrap(SetResponseHeaders, next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}
