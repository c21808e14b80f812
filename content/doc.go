// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package content holds the records shown on the homepage and loads them from YAML.
package content
