// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

// AbstractMaxRunes is how much of an abstract is shown before it is cut off.
const AbstractMaxRunes = 250

// Excerpt returns the displayed part of w's abstract and whether it was cut.
//
// The limit counts runes, so multi-byte text is never split mid-character.
func (w ResearchWork) Excerpt() (string, bool) {
	runes := []rune(w.Abstract)
	if len(runes) <= AbstractMaxRunes {
		return w.Abstract, false
	}

	return string(runes[:AbstractMaxRunes]), true
}

// ReadMoreLink is the link behind "See More" for a truncated abstract:
// the paper, then the project page, then nothing.
func (w ResearchWork) ReadMoreLink() string {
	if w.Links.Paper != "" {
		return w.Links.Paper
	}

	return w.Links.Project
}
