// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/scholarpage/scholarpage/i18n"
	"codeberg.org/scholarpage/scholarpage/server/request_context"
	"codeberg.org/scholarpage/scholarpage/server/routes"
)

func TestMain(m *testing.M) {
	if err := i18n.Setup(); err != nil {
		fmt.Fprintln(os.Stderr, "i18n setup:", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// newTestRequest returns a request that has passed through WithRequestContext.
func newTestRequest(t *testing.T, target string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)

	return req.WithContext(request_context.WithRequestContext(req.Context(), req))
}

func TestCatchError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    func(w http.ResponseWriter, r *http.Request) error
		wantStatus int
		wantBody   string
		wantHeader http.Header
		wantErr    error
		errorPage  bool
	}{
		{
			name: "success passes through",
			handler: func(w http.ResponseWriter, _ *http.Request) error {
				w.Header().Set("X-Test", "kept")
				_, _ = w.Write([]byte("ok"))

				return nil
			},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name: "redirect passes through",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				http.Redirect(w, r, "/", http.StatusSeeOther)

				return nil
			},
			wantStatus: http.StatusSeeOther,
			wantBody:   "<a href=\"/\">See Other</a>.\n\n",
			wantHeader: http.Header{"Location": {"/"}},
		},
		{
			name: "unexpected error is a server error",
			handler: func(http.ResponseWriter, *http.Request) error {
				return errors.New("boom")
			},
			wantStatus: http.StatusInternalServerError,
			errorPage:  true,
		},
		{
			name: "not found sentinel",
			handler: func(http.ResponseWriter, *http.Request) error {
				return fmt.Errorf("work %q: %w", "x", routes.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantErr:    routes.ErrNotFound,
			errorPage:  true,
		},
		{
			name: "bad request sentinel",
			handler: func(w http.ResponseWriter, _ *http.Request) error {
				_, _ = w.Write([]byte("partial output is dropped"))

				return fmt.Errorf("locale: %w", routes.ErrBadRequest)
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    routes.ErrBadRequest,
			errorPage:  true,
		},
		{
			name: "handler written 404 gets the themed page",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				http.NotFound(w, r)

				return nil
			},
			wantStatus: http.StatusNotFound,
			errorPage:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := newTestRequest(t, "/test")
			rr := httptest.NewRecorder()

			CatchError(tt.handler).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			rc := request_context.FromRequest(req)
			assert.Equal(t, tt.wantStatus, rc.StatusCode)

			if tt.wantErr != nil {
				require.ErrorIs(t, rc.RequestError, tt.wantErr)
			}

			for name := range tt.wantHeader {
				assert.Equal(t, tt.wantHeader.Get(name), rr.Header().Get(name), name)
			}

			if !tt.errorPage {
				assert.Equal(t, tt.wantBody, rr.Body.String())

				return
			}

			assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
			assert.NotContains(t, rr.Body.String(), "partial output")

			doc, err := goquery.NewDocumentFromReader(rr.Body)
			require.NoError(t, err)
			assert.Contains(t, doc.Find("h1").Text(), fmt.Sprint(tt.wantStatus))
			assert.Equal(t, rc.RequestID, doc.Find("code").Text())
		})
	}
}

func TestCatchErrorKeepsHeadersOnSuccess(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()

	CatchError(func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusAccepted)

		return nil
	}).ServeHTTP(rr, newTestRequest(t, "/"))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
}
