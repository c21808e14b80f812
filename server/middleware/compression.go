// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// compressionMinSize is the smallest body worth compressing.
const compressionMinSize = 1024

// Compression returns a middleware that gzip-encodes responses for clients
// sending Accept-Encoding: gzip.
func Compression() (Middleware, error) {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(compressionMinSize))
	if err != nil {
		return nil, fmt.Errorf("creating gzip wrapper: %w", err)
	}

	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		wrap(next).ServeHTTP(w, r)
	}, nil
}
