// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// keySeparator separates the segments of a key path such as "sections.news.title".
const keySeparator = "."

var errEmptyDictionary = errors.New("dictionary has no entries")

// Dictionary is an immutable tree of translated strings for a single locale.
//
// Interior nodes are maps keyed by path segment; leaves are strings.
type Dictionary struct {
	root map[string]any
}

// ParseDictionary decodes a YAML document into a Dictionary.
func ParseDictionary(data []byte) (*Dictionary, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary: %w", err)
	}

	if len(root) == 0 {
		return nil, errEmptyDictionary
	}

	return &Dictionary{root: root}, nil
}

// Lookup walks keyPath one segment at a time.
//
// It reports false when a segment is missing, when an interior segment is not
// a map, or when the final node is not a string.
func (d *Dictionary) Lookup(keyPath string) (string, bool) {
	if d == nil {
		return "", false
	}

	var node any = d.root

	for segment := range strings.SplitSeq(keyPath, keySeparator) {
		children, ok := asMap(node)
		if !ok {
			return "", false
		}

		node, ok = children[segment]
		if !ok {
			return "", false
		}
	}

	s, ok := node.(string)

	return s, ok
}

// Keys returns the key path of every string leaf, sorted.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}

	var keys []string

	collectKeys(d.root, "", &keys)
	sort.Strings(keys)

	return keys
}

func collectKeys(node any, prefix string, keys *[]string) {
	if _, ok := node.(string); ok {
		*keys = append(*keys, prefix)

		return
	}

	children, ok := asMap(node)
	if !ok {
		return
	}

	for segment, child := range children {
		path := segment
		if prefix != "" {
			path = prefix + keySeparator + segment
		}

		collectKeys(child, path, keys)
	}
}

// asMap normalizes the two mapping shapes the YAML decoder can produce.
func asMap(node any) (map[string]any, bool) {
	switch m := node.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}

		return out, true
	default:
		return nil, false
	}
}
