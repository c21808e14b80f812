// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
This package defines the cookie names used by this application.
*/
package cookie

type CookieName string

const (
	// LangCookie stores the visitor's UI language, "en" or "zh".
	LangCookie CookieName = "Lang"
)

// AllCookieNames defines all cookies that can be set by the user.
var AllCookieNames = []CookieName{
	LangCookie,
}

// IsHttpOnly reports whether a cookie should be hidden from scripts.
//
// The language preference is never read client-side.
func IsHttpOnly(name CookieName) bool {
	return name == LangCookie
}
