// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"
	"strconv"

	"codeberg.org/scholarpage/scholarpage/assets/views"
	"codeberg.org/scholarpage/scholarpage/i18n"
	"codeberg.org/scholarpage/scholarpage/server/request_context"
)

// ErrorPage writes the status recorded in the request context and renders the
// matching error page. Nothing may have been written to w before.
func ErrorPage(w http.ResponseWriter, r *http.Request) {
	rc := request_context.FromRequest(r)
	tr := i18n.From(r.Context())

	if rc.StatusCode < http.StatusBadRequest {
		rc.StatusCode = http.StatusInternalServerError
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", tr.Locale().String())
	w.WriteHeader(rc.StatusCode)

	data := views.ErrorData{
		StatusCode: rc.StatusCode,
		Message:    views.ErrorMessage(rc.StatusCode),
		RequestID:  rc.RequestID,
	}

	meta := pageMeta(strconv.Itoa(rc.StatusCode)+" · "+tr.Tr(i18n.KeyBrand), "", "")

	_ = views.Error(tr, meta, data).Render(r.Context(), w)
}
