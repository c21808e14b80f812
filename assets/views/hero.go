// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"codeberg.org/scholarpage/scholarpage/content"
	"codeberg.org/scholarpage/scholarpage/core/richtext"
	"codeberg.org/scholarpage/scholarpage/i18n"
)

type profileAction struct {
	href  string
	label string
	class string
}

func profileActions(tr i18n.Translator, p content.Profile) []profileAction {
	candidates := []profileAction{
		{p.Links.Scholar, tr.Tr(i18n.KeyActionScholar), "icon-scholar"},
		{p.Links.ORCID, tr.Tr(i18n.KeyActionORCID), "icon-orcid"},
		{p.Links.ResearchGate, tr.Tr(i18n.KeyActionResearchGate), "icon-researchgate"},
		{p.Links.GitHub, tr.Tr(i18n.KeyActionGitHub), "icon-github"},
		{p.Links.CV, tr.Tr(i18n.KeyActionCV), "icon-cv"},
	}

	if p.Email != "" {
		candidates = append(candidates, profileAction{"mailto:" + p.Email, tr.Tr(i18n.KeyActionEmail), "icon-email"})
	}

	actions := candidates[:0]

	for _, a := range candidates {
		if a.href != "" {
			actions = append(actions, a)
		}
	}

	return actions
}

// Hero renders the profile summary at the top of the page.
func Hero(tr i18n.Translator, p content.Profile) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw(`<div class="container hero"><div class="hero-aside">`)

		if p.AvatarPath != "" {
			w.raw(`<img class="avatar"`)
			w.attr("src", p.AvatarPath)
			w.attr("alt", p.Name)
			w.raw(">")
		}

		if actions := profileActions(tr, p); len(actions) > 0 {
			w.raw(`<ul class="hero-actions">`)

			for _, a := range actions {
				w.raw(`<li><a`)
				w.attr("class", classes("icon-button", a.class))
				w.external(a.href)
				w.attr("aria-label", a.label)
				w.attr("title", a.label)
				w.raw(">")
				w.text(a.label)
				w.raw("</a></li>")
			}

			w.raw("</ul>")
		}

		w.raw(`</div><div class="hero-body"><h1 class="hero-name">`)
		w.text(p.Name)
		w.raw(`</h1><p class="hero-title">`)
		w.text(p.Title)

		if p.Affiliation != "" {
			w.text(" · " + p.Affiliation)
		}

		w.raw("</p>")

		if p.Location != "" || p.Email != "" {
			w.raw(`<p class="hero-contact">`)

			if p.Location != "" {
				w.raw(`<span class="hero-location">`)
				w.text(p.Location)
				w.raw("</span>")
			}

			if p.Location != "" && p.Email != "" {
				w.raw(`<span class="separator">|</span>`)
			}

			if p.Email != "" {
				w.raw(`<span class="hero-email">`)
				w.text(p.Email)
				w.raw("</span>")
			}

			w.raw("</p>")
		}

		if p.Bio != "" {
			w.raw(`<p class="hero-bio">`)
			w.render(ctx, richtext.Component(p.Bio))
			w.raw("</p>")
		}

		if len(p.Interests) > 0 {
			w.raw(`<div class="interests"`)
			w.attr("aria-label", tr.Tr(i18n.KeyInterests))
			w.raw("><ul>")

			for _, item := range p.Interests {
				w.raw("<li><strong>")
				w.text(item.Label)
				w.raw("</strong>")

				if item.Description != "" {
					w.raw(`<span class="separator">|</span>`)
					w.text(item.Description)
				}

				w.raw("</li>")
			}

			w.raw("</ul></div>")
		}

		w.raw("</div></div>")

		return w.err
	})
}
