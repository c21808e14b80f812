// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression(t *testing.T) {
	t.Parallel()

	compress, err := Compression()
	require.NoError(t, err)

	large := strings.Repeat("<li class=\"news-item\">Accepted to CVPR</li>", 100)

	tests := []struct {
		name           string
		body           string
		acceptEncoding string
		wantEncoding   string
	}{
		{name: "large body compressed", body: large, acceptEncoding: "gzip, deflate", wantEncoding: "gzip"},
		{name: "small body untouched", body: "ok", acceptEncoding: "gzip"},
		{name: "client without gzip", body: large},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				_, _ = io.WriteString(w, tt.body)
			})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				r.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}

			rr := httptest.NewRecorder()
			Wrap(compress, next).ServeHTTP(rr, r)

			assert.Equal(t, tt.wantEncoding, rr.Header().Get("Content-Encoding"))

			body := io.Reader(rr.Body)

			if tt.wantEncoding == "gzip" {
				zr, err := gzip.NewReader(rr.Body)
				require.NoError(t, err)

				body = zr
			}

			got, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(got))
		})
	}
}
