// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		requestURL   string
		wantStatus   int
		wantLocation string
	}{
		{name: "root", requestURL: "/", wantStatus: http.StatusOK},
		{name: "root with query", requestURL: "/?tag=Animation&research=2", wantStatus: http.StatusOK},
		{name: "plain path", requestURL: "/research/HoughLaneNet/bibtex", wantStatus: http.StatusOK},
		{
			name:         "trailing slash",
			requestURL:   "/research/HoughLaneNet/bibtex/",
			wantStatus:   http.StatusPermanentRedirect,
			wantLocation: "/research/HoughLaneNet/bibtex",
		},
		{
			name:         "trailing slash keeps the query",
			requestURL:   "/healthz/?verbose=1",
			wantStatus:   http.StatusPermanentRedirect,
			wantLocation: "/healthz?verbose=1",
		},
		{
			name:         "repeated slashes",
			requestURL:   "/healthz//",
			wantStatus:   http.StatusPermanentRedirect,
			wantLocation: "/healthz",
		},
		{
			name:         "chinese entry point",
			requestURL:   "/zh",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/?lang=zh",
		},
		{
			name:         "english entry point with slash and query",
			requestURL:   "/en/?tag=Animation",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/?lang=en&tag=Animation",
		},
		{name: "locale must be the whole path", requestURL: "/zh/research", wantStatus: http.StatusOK},
		{name: "unknown locale segment", requestURL: "/fr", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			Wrap(NormalizeURL, next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.requestURL, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
		})
	}
}

func TestHasTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"/", false},
		{"/healthz", false},
		{"/healthz/", true},
		{"/research/x/bibtex/", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, hasTrailingSlash(httptest.NewRequest(http.MethodGet, tt.path, nil)), tt.path)
	}
}
