// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package richtext

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type kind int

const (
	kindRoot kind = iota
	kindBold
	kindUnderline
	kindLink
)

// frame is an element that has been opened but not yet closed.
type frame struct {
	kind     kind
	tag      atom.Atom
	href     string
	children []Node
}

func (f *frame) appendText(s string) {
	if s == "" {
		return
	}

	if n := len(f.children); n > 0 {
		if prev, ok := f.children[n-1].(Text); ok {
			f.children[n-1] = Text{Value: prev.Value + s}

			return
		}
	}

	f.children = append(f.children, Text{Value: s})
}

func (f *frame) appendNodes(nodes []Node) {
	for _, n := range nodes {
		if t, ok := n.(Text); ok {
			f.appendText(t.Value)

			continue
		}

		f.children = append(f.children, n)
	}
}

// Parse turns a markup string into a node tree.
//
// Only <a href>, <b>/<strong> and <u> survive. Any other tag is removed and
// its text kept, except <script> and <style> whose contents are dropped.
// Links whose href is not http, https or mailto are reduced to their text.
// Unclosed elements are closed at the end of input. Parse never fails.
func Parse(markup string) []Node {
	z := html.NewTokenizer(strings.NewReader(markup))
	stack := []*frame{{kind: kindRoot}}

	var skipping atom.Atom

	for {
		tt := z.Next()

		switch tt {
		case html.ErrorToken:
			// io.EOF or a malformed tail; the input is exhausted either way.
			for len(stack) > 1 {
				stack = closeTop(stack)
			}

			return stack[0].children

		case html.TextToken:
			if skipping == 0 {
				stack[len(stack)-1].appendText(string(z.Text()))
			}

		case html.StartTagToken:
			tok := z.Token()

			if skipping != 0 {
				continue
			}

			switch tok.DataAtom {
			case atom.Script, atom.Style:
				skipping = tok.DataAtom
			case atom.B, atom.Strong:
				stack = append(stack, &frame{kind: kindBold, tag: tok.DataAtom})
			case atom.U:
				stack = append(stack, &frame{kind: kindUnderline, tag: tok.DataAtom})
			case atom.A:
				stack = append(stack, &frame{kind: kindLink, tag: tok.DataAtom, href: attr(tok, "href")})
			}

		case html.EndTagToken:
			tok := z.Token()

			if skipping != 0 {
				if tok.DataAtom == skipping {
					skipping = 0
				}

				continue
			}

			stack = closeMatching(stack, tok.DataAtom)

		case html.SelfClosingTagToken, html.CommentToken, html.DoctypeToken:
			// Carry no text.
		}
	}
}

func attr(tok html.Token, name string) string {
	for _, a := range tok.Attr {
		if a.Namespace == "" && a.Key == name {
			return strings.TrimSpace(a.Val)
		}
	}

	return ""
}

// closeMatching closes open elements down to and including the innermost one
// opened with tag. A stray end tag with no open element is ignored.
func closeMatching(stack []*frame, tag atom.Atom) []*frame {
	if tag == atom.Strong {
		tag = atom.B
	}

	for i := len(stack) - 1; i > 0; i-- {
		open := stack[i].tag
		if open == atom.Strong {
			open = atom.B
		}

		if open != tag {
			continue
		}

		for len(stack) > i {
			stack = closeTop(stack)
		}

		break
	}

	return stack
}

func closeTop(stack []*frame) []*frame {
	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	parent := stack[len(stack)-1]

	switch top.kind {
	case kindBold:
		parent.children = append(parent.children, Bold{Children: top.children})
	case kindUnderline:
		parent.children = append(parent.children, Underline{Children: top.children})
	case kindLink:
		if safeHref(top.href) {
			parent.children = append(parent.children, Link{Href: top.href, Children: top.children})
		} else {
			parent.appendNodes(top.children)
		}
	case kindRoot:
	}

	return stack
}

func safeHref(href string) bool {
	if href == "" {
		return false
	}

	u, err := url.Parse(href)
	if err != nil {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	default:
		return false
	}
}
