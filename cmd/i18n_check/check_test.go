// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/scholarpage/scholarpage/i18n"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	en, err := i18n.ParseDictionary([]byte("nav:\n  about: About\n  news: News\nbrand: Site\n"))
	require.NoError(t, err)

	zh, err := i18n.ParseDictionary([]byte("nav:\n  about: 关于\nbrand: 站点\n"))
	require.NoError(t, err)

	refs := map[string][]ref{
		"nav.about": {{file: "assets/views/nav.go", line: 40}},
		"nav.news":  {{file: "assets/views/nav.go", line: 41}, {file: "assets/views/home.go", line: 12}},
	}

	rep := check(refs, map[i18n.Locale]*i18n.Dictionary{i18n.English: en, i18n.Chinese: zh})

	assert.Equal(t, []missingKey{
		{locale: i18n.Chinese, key: "nav.news", at: ref{file: "assets/views/home.go", line: 12}},
	}, rep.missing)

	assert.Equal(t, []unusedKey{
		{locale: i18n.English, key: "brand"},
		{locale: i18n.Chinese, key: "brand"},
	}, rep.unused)
}

func TestCheckClean(t *testing.T) {
	t.Parallel()

	dict, err := i18n.ParseDictionary([]byte("a: x\n"))
	require.NoError(t, err)

	rep := check(map[string][]ref{"a": {{file: "f.go", line: 1}}}, map[i18n.Locale]*i18n.Dictionary{i18n.English: dict})

	assert.Empty(t, rep.missing)
	assert.Empty(t, rep.unused)
}

func TestRefString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "server/routes/home.go:7", ref{file: "server/routes/home.go", line: 7}.String())
	assert.Equal(t, ref{}, firstRef(nil))
}
