// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"testing"
	"time"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanRecordsServerTiming(t *testing.T) {
	t.Parallel()

	var timing servertiming.Header

	ctx := servertiming.NewContext(context.Background(), &timing)

	span := Span{Name: "render"}
	span.Begin(ctx)
	time.Sleep(time.Millisecond)
	span.End()
	span.End()

	require.Len(t, timing.Metrics, 1)
	assert.Equal(t, "render", timing.Metrics[0].Name)
	assert.Positive(t, span.Duration())
	assert.Equal(t, span.Duration(), timing.Metrics[0].Duration)
}

func TestSpanWithoutTimingHeader(t *testing.T) {
	t.Parallel()

	span := Span{}
	span.Begin(context.Background())
	span.End()

	assert.Nil(t, span.metric)
}

func TestHumanizeSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512", humanizeSize(512))
	assert.Equal(t, "1.50K", humanizeSize(1536))
	assert.Equal(t, "2.00M", humanizeSize(2*bytesInMB))
}
