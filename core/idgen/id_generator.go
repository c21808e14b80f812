// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"github.com/google/uuid"
)

// Make returns a time-ordered request ID (UUIDv7).
//
// IDs sort by creation time, so log lines for consecutive requests stay
// ordered. If the random source fails, a v4 UUID is returned instead.
func Make() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
