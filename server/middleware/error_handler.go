// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"

	"codeberg.org/scholarpage/scholarpage/config"
	"codeberg.org/scholarpage/scholarpage/core/audit"
	"codeberg.org/scholarpage/scholarpage/server/request_context"
	"codeberg.org/scholarpage/scholarpage/server/routes"
)

// CatchError adapts a fallible handler into an http.HandlerFunc.
//
// The handler writes into a buffer. When it returns an error, or when it
// answers 404, the buffer is dropped and the themed error page is rendered
// with the status routes.StatusFor picks for the error. Otherwise the
// buffered response is passed through unchanged.
//
// Every request is logged through an audit.Span unless the path is one of the
// quiet static prefixes.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := request_context.FromRequest(r)

		span := audit.Span{
			RequestID: rc.RequestID,
			Method:    r.Method,
			URL:       r.URL.String(),
		}

		r = r.WithContext(span.Begin(r.Context()))

		recorder := httptest.NewRecorder()

		err := handler(recorder, r)
		rc.RequestError = err

		switch {
		case err != nil || recorder.Code == http.StatusNotFound:
			if err != nil {
				rc.StatusCode = routes.StatusFor(err)
			} else {
				rc.StatusCode = http.StatusNotFound
			}

			counter := &countingWriter{ResponseWriter: w}
			routes.ErrorPage(counter, r)

			span.Size = counter.n

		default:
			rc.StatusCode = recorder.Code
			span.Size = recorder.Body.Len()

			maps.Copy(w.Header(), recorder.Header())
			w.WriteHeader(recorder.Code)

			if _, err := recorder.Body.WriteTo(w); err != nil {
				log.Err(err).Str("request_id", rc.RequestID).Msg("Failed to write response body")
			}
		}

		span.End()

		span.StatusCode = rc.StatusCode
		span.Error = rc.RequestError

		if !config.Global.ShouldSkipServerLogging(r.URL.Path) {
			span.Log()
		}
	}
}

// countingWriter tracks how many body bytes the error page produced.
type countingWriter struct {
	http.ResponseWriter

	n int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.ResponseWriter.Write(p)
	cw.n += n

	return n, err
}
