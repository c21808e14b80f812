// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"
	"net/url"

	"codeberg.org/scholarpage/scholarpage/core/cookie"
	"codeberg.org/scholarpage/scholarpage/core/untrusted"
	"codeberg.org/scholarpage/scholarpage/i18n"
	"codeberg.org/scholarpage/scholarpage/server/utils"
)

// setLocale persists raw as the visitor's locale.
func setLocale(w http.ResponseWriter, r *http.Request, raw string) error {
	locale, ok := i18n.ParseLocale(raw)
	if !ok {
		return fmt.Errorf("%w: unsupported locale %q", ErrBadRequest, raw)
	}

	untrusted.SetCookie(w, r, cookie.LangCookie, locale.String())

	return nil
}

func setLanguage(w http.ResponseWriter, r *http.Request) error {
	return setLocale(w, r, utils.GetFormValue(r, "locale"))
}

//nolint:unparam
func resetAll(w http.ResponseWriter, r *http.Request) error {
	untrusted.ClearAllCookies(w, r)

	return nil
}

var actions = map[string]func(http.ResponseWriter, *http.Request) error{
	"language":  setLanguage,
	"reset_all": resetAll,
}

// SettingsPOST applies the setting named by the {action} path segment and
// sends the visitor back to the returnPath form value.
func SettingsPOST(w http.ResponseWriter, r *http.Request) error {
	action, ok := actions[utils.GetPathVar(r, "action")]
	if !ok {
		return fmt.Errorf("%w: no such setting %q", ErrNotFound, utils.GetPathVar(r, "action"))
	}

	if err := action(w, r); err != nil {
		return err
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.RedirectBack(w, r, withoutLangParam(utils.GetFormValue(r, "returnPath")))

	return nil
}

// LanguagePage switches the locale from a plain link: GET /lang/{locale}.
func LanguagePage(w http.ResponseWriter, r *http.Request) error {
	if err := setLocale(w, r, utils.GetPathVar(r, "locale")); err != nil {
		return err
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.RedirectBack(w, r, withoutLangParam(utils.GetQueryParam(r, "returnPath")))

	return nil
}

// withoutLangParam drops the lang query parameter from a return path, since
// it would override the cookie just set.
func withoutLangParam(returnPath string) string {
	u, err := url.Parse(returnPath)
	if err != nil || u.RawQuery == "" {
		return returnPath
	}

	q := u.Query()
	if !q.Has(i18n.LangParam) {
		return returnPath
	}

	q.Del(i18n.LangParam)
	u.RawQuery = q.Encode()

	return u.String()
}
