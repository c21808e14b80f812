// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound signals that the requested resource does not exist.
	// middleware.CatchError answers it with the themed 404 page.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest signals malformed client input, answered with 400.
	ErrBadRequest = errors.New("bad request")
)

// StatusFor maps a handler error onto the status code of the error page.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NotFoundPage handles every path no other route matches.
func NotFoundPage(_ http.ResponseWriter, r *http.Request) error {
	return &notFoundError{path: r.URL.Path}
}

type notFoundError struct {
	path string
}

func (e *notFoundError) Error() string {
	return "no route for " + e.path
}

func (e *notFoundError) Unwrap() error {
	return ErrNotFound
}
