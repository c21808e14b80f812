// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package views renders the homepage and its sections as templ components.

Components are stateless. Each one receives the request's [i18n.Translator]
and the catalog records it displays; nothing is read from globals. Optional
record fields that are empty simply omit their affordance (a work without a
code link gets no Code button, a profile without interests gets no interests
block).

Interactive state such as the selected tag or the current page of a list is
expressed as links built from a [listing.Selection], so every control is a
plain GET request.
*/
package views
