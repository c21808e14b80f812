// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package listing

import (
	"codeberg.org/scholarpage/scholarpage/content"
)

// TagFilter selects research works by tag.
//
// The zero value is [AllTags]. A filter's identity is the raw tag, never a
// translated label, so switching language keeps the selection.
type TagFilter struct {
	tag string
}

// AllTags matches every work.
var AllTags = TagFilter{}

// ByTag returns a filter matching works tagged exactly tag.
// An empty tag yields [AllTags].
func ByTag(tag string) TagFilter {
	return TagFilter{tag: tag}
}

// IsAll reports whether f matches every work.
func (f TagFilter) IsAll() bool {
	return f.tag == ""
}

// Tag returns the raw tag, or "" for [AllTags].
func (f TagFilter) Tag() string {
	return f.tag
}

// Matches reports whether w passes the filter.
func (f TagFilter) Matches(w content.ResearchWork) bool {
	return f.IsAll() || w.HasTag(f.tag)
}

// FilterWorks returns the works matching f in their original order.
// For [AllTags] the input slice is returned as-is.
func FilterWorks(works []content.ResearchWork, f TagFilter) []content.ResearchWork {
	if f.IsAll() {
		return works
	}

	out := make([]content.ResearchWork, 0, len(works))

	for _, w := range works {
		if f.Matches(w) {
			out = append(out, w)
		}
	}

	return out
}

// BuildTags returns the selectable filters: [AllTags] first, then each
// distinct tag in first-seen order. The result is never empty.
func BuildTags(works []content.ResearchWork) []TagFilter {
	seen := make(map[string]struct{})
	out := []TagFilter{AllTags}

	for _, w := range works {
		for _, tag := range w.Tags {
			if tag == "" {
				continue
			}

			if _, ok := seen[tag]; ok {
				continue
			}

			seen[tag] = struct{}{}
			out = append(out, ByTag(tag))
		}
	}

	return out
}
