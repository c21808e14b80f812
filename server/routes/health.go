// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"encoding/json"
	"net/http"

	"codeberg.org/scholarpage/scholarpage/config"
	"codeberg.org/scholarpage/scholarpage/content"
)

type healthReport struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Revision string `json:"revision"`
	Works    int    `json:"works"`

	CachedPages *int `json:"cachedPages,omitempty"`
}

// Healthz is the liveness probe.
func Healthz(w http.ResponseWriter, _ *http.Request) error {
	report := healthReport{
		Status:   "ok",
		Version:  config.BuildVersion,
		Revision: config.Global.Build.Revision(),
		Works:    len(content.Current().Works),
	}

	if stats, ok := PageCacheStats(); ok {
		report.CachedPages = &stats.Entries
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")

	return json.NewEncoder(w).Encode(report)
}
