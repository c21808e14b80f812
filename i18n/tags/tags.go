// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package tags

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"
)

//go:embed data/labels.yaml
var embeddedLabels []byte

// labels maps locale code to raw tag to display label.
var labels = map[string]map[string]string{}

// SetLabels replaces the in-memory label table.
// The provided map is used as-is and not copied.
func SetLabels(m map[string]map[string]string) {
	labels = m
}

// LoadEmbedded decodes the built-in label table and installs it with [SetLabels].
// It returns the number of labels loaded across all locales.
func LoadEmbedded() (int, error) {
	var m map[string]map[string]string
	if err := yaml.Unmarshal(embeddedLabels, &m); err != nil {
		return 0, fmt.Errorf("failed to decode tag labels: %w", err)
	}

	SetLabels(m)

	count := 0
	for _, byTag := range m {
		count += len(byTag)
	}

	return count, nil
}

// Label returns the display label of tag in locale.
//
// Tags are identities: no normalization is performed on input (for example,
// case folding or whitespace trimming). If no label is found, Label returns
// the tag itself.
func Label(locale, tag string) string {
	if l, ok := labels[locale][tag]; ok && l != "" {
		return l
	}

	return tag
}
