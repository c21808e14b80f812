// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package richtext

import "strings"

// Node is one element of a parsed rich-text fragment:
// exactly one of [Text], [Bold], [Underline] or [Link].
type Node interface {
	isNode()
}

// Text is a run of plain, unescaped text.
type Text struct {
	Value string
}

// Bold emphasises its children.
type Bold struct {
	Children []Node
}

// Underline underlines its children.
type Underline struct {
	Children []Node
}

// Link points at an http, https or mailto URL.
type Link struct {
	Href     string
	Children []Node
}

func (Text) isNode()      {}
func (Bold) isNode()      {}
func (Underline) isNode() {}
func (Link) isNode()      {}

// PlainText concatenates the text of nodes, dropping all markup.
func PlainText(nodes []Node) string {
	var sb strings.Builder

	writePlain(&sb, nodes)

	return sb.String()
}

func writePlain(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			sb.WriteString(n.Value)
		case Bold:
			writePlain(sb, n.Children)
		case Underline:
			writePlain(sb, n.Children)
		case Link:
			writePlain(sb, n.Children)
		}
	}
}
