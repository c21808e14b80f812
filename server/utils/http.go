// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"net"
	"net/http"
	"strings"
)

// IsConnectionSecure reports whether the client reached us over HTTPS.
//
// Supported deployments are a direct TLS listener, or one or more reverse
// proxies on a private network that set X-Forwarded-Proto. The header is
// ignored when the immediate peer has a public address.
func IsConnectionSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return false
	}

	parsedIP := net.ParseIP(host)
	if parsedIP == nil {
		return false
	}

	return (parsedIP.IsPrivate() || parsedIP.IsLoopback()) &&
		strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// RedirectBack sends the user to returnPath, or to the referring page when
// it is same-origin, or to "/" otherwise. The response is always 303.
func RedirectBack(w http.ResponseWriter, r *http.Request, returnPath string) {
	returnPath = SanitizeReturnPath(returnPath)

	if returnPath == "" {
		if referrer := r.Referer(); strings.HasPrefix(referrer, GetOriginFromRequest(r)+"/") {
			returnPath = SanitizeReturnPath(strings.TrimPrefix(referrer, GetOriginFromRequest(r)))
		}
	}

	if returnPath == "" {
		returnPath = "/"
	}

	http.Redirect(w, r, returnPath, http.StatusSeeOther)
}
