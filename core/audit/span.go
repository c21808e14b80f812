// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"fmt"
	"runtime/trace"
	"strconv"
	"time"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Span records one unit of work while serving a request, such as rendering a
// page or the whole request itself.
//
// A Span is timed by Begin and End, exposed as a Server-Timing metric when the
// request carries a timing header, and written to the log by Log.
type Span struct {
	task     *trace.Task
	start    time.Time
	duration time.Duration
	metric   *servertiming.Metric

	// Name identifies the span in Server-Timing output, e.g. "render".
	Name       string
	RequestID  string
	Method     string
	URL        string
	StatusCode int
	Error      error
	// Size is the number of response body bytes.
	Size int
}

// Begin starts timing the span and returns a context carrying its trace task.
func (span *Span) Begin(ctx context.Context) context.Context {
	span.start = time.Now()

	name := span.Name
	if name == "" {
		name = "request"
	}

	ctx, span.task = trace.NewTask(ctx, "http."+name)
	if timing := servertiming.FromContext(ctx); timing != nil {
		span.metric = timing.NewMetric(name)
		span.metric.Extra = map[string]string{
			"start": strconv.FormatFloat(float64(span.start.UnixNano())/float64(time.Millisecond), 'f', -1, 64),
		}
	}

	return ctx
}

// End stops the span. Calling End more than once has no effect.
func (span *Span) End() {
	if span.task == nil {
		return
	}

	span.duration = time.Since(span.start)
	span.task.End()

	if span.metric != nil {
		span.metric.Duration = span.duration
	}

	span.task = nil
}

// Duration is the measured time between Begin and End.
func (span *Span) Duration() time.Duration {
	return span.duration
}

// Log writes the span as a single structured line.
//
// Server errors are logged at error level, other failed requests at warn
// and everything else at debug.
func (span *Span) Log() {
	var event *zerolog.Event

	switch {
	case span.StatusCode >= 500:
		event = log.Error()
	case span.Error != nil:
		event = log.Warn()
	default:
		event = log.Debug()
	}

	event.Str("sys", "http").
		Str("method", span.Method).
		Str("url", span.URL).
		Int("status_code", span.StatusCode).
		Str("len", humanizeSize(span.Size)).
		Dur("dur", span.duration).
		Str("request_id", span.RequestID)

	if span.Error != nil {
		event.Err(span.Error)
	}

	event.Send()
}

const (
	bytesInKB = 1024
	bytesInMB = bytesInKB * bytesInKB
)

func humanizeSize(x int) string {
	switch {
	case x < bytesInKB:
		return strconv.Itoa(x)
	case x < bytesInMB:
		return fmt.Sprintf("%.2fK", float64(x)/bytesInKB)
	default:
		return fmt.Sprintf("%.2fM", float64(x)/bytesInMB)
	}
}
