// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package richtext

import (
	"context"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
)

// LinkRel is the rel attribute of every rendered link.
const LinkRel = "noopener noreferrer"

// policy admits exactly the markup produced by writeNodes.
var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements("strong", "u")
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("rel").Matching(regexp.MustCompile(`^noopener noreferrer$`)).OnElements("a")

	return p
}()

// Render returns nodes as sanitized HTML.
func Render(nodes []Node) string {
	var sb strings.Builder

	writeNodes(&sb, nodes)

	return policy.Sanitize(sb.String())
}

// HTML parses markup and renders it; see [Parse] for what survives.
func HTML(markup string) string {
	return Render(Parse(markup))
}

// Component returns markup as a templ component.
func Component(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, HTML(markup))

		return err
	})
}

func writeNodes(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			sb.WriteString(html.EscapeString(n.Value))
		case Bold:
			sb.WriteString("<strong>")
			writeNodes(sb, n.Children)
			sb.WriteString("</strong>")
		case Underline:
			sb.WriteString("<u>")
			writeNodes(sb, n.Children)
			sb.WriteString("</u>")
		case Link:
			sb.WriteString(`<a href="`)
			sb.WriteString(html.EscapeString(n.Href))
			sb.WriteString(`" target="_blank" rel="` + LinkRel + `">`)
			writeNodes(sb, n.Children)
			sb.WriteString("</a>")
		}
	}
}
