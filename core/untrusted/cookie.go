// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package untrusted

import (
	"net/http"
	"net/url"
	"time"

	"codeberg.org/scholarpage/scholarpage/core/cookie"
	"codeberg.org/scholarpage/scholarpage/server/utils"
)

// CookieSameSite keeps preferences on top-level navigations from external links.
const CookieSameSite = http.SameSiteLaxMode

// Cookies expire 30 days after they are set.
const cookieMaxAge = 30 * 24 * time.Hour

// Clear a cookie by setting its expiration date to this.
var cookieExpireDelete = time.Date(2009, time.November, 10, 23, 0, 0, 0, time.UTC)

func newCookie(name cookie.CookieName, value string, expires time.Time, isSecure bool) http.Cookie {
	return http.Cookie{
		Name:     string(name),
		Value:    value,
		Path:     "/",
		Expires:  expires,
		Secure:   isSecure,
		HttpOnly: cookie.IsHttpOnly(name),
		SameSite: CookieSameSite,
	}
}

// GetCookie returns the decoded value of the named cookie, or "" if it is
// absent or not valid query-escaped text.
func GetCookie(r *http.Request, name cookie.CookieName) string {
	c, err := r.Cookie(string(name))
	if err != nil {
		return ""
	}

	value, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}

	return value
}

// SetCookie stores value under name. An empty value clears the cookie.
func SetCookie(w http.ResponseWriter, r *http.Request, name cookie.CookieName, value string) {
	if value == "" {
		ClearCookie(w, r, name)

		return
	}

	c := newCookie(
		name, url.QueryEscape(value),
		time.Now().Add(cookieMaxAge),
		utils.IsConnectionSecure(r))
	http.SetCookie(w, &c)
}

func ClearCookie(w http.ResponseWriter, r *http.Request, name cookie.CookieName) {
	c := newCookie(name, "", cookieExpireDelete, utils.IsConnectionSecure(r))
	http.SetCookie(w, &c)
}

func ClearAllCookies(w http.ResponseWriter, r *http.Request) {
	for _, name := range cookie.AllCookieNames {
		ClearCookie(w, r, name)
	}
}
