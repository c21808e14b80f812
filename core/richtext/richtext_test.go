// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package richtext

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
		want   []Node
	}{
		{
			name:   "plain text",
			markup: "Miao Wang",
			want:   []Node{Text{Value: "Miao Wang"}},
		},
		{
			name:   "nested emphasis",
			markup: "<b><u>Jia-Qi Zhang</u></b>, Miao Wang",
			want: []Node{
				Bold{Children: []Node{Underline{Children: []Node{Text{Value: "Jia-Qi Zhang"}}}}},
				Text{Value: ", Miao Wang"},
			},
		},
		{
			name:   "strong is bold",
			markup: "<strong>x</strong>",
			want:   []Node{Bold{Children: []Node{Text{Value: "x"}}}},
		},
		{
			name:   "link keeps href only",
			markup: "<a href='http://miaowang.me/' target='_self' onclick='x()'>Professor Miao Wang</a>",
			want:   []Node{Link{Href: "http://miaowang.me/", Children: []Node{Text{Value: "Professor Miao Wang"}}}},
		},
		{
			name:   "mailto link",
			markup: `<a href="mailto:someone@example.org">mail</a>`,
			want:   []Node{Link{Href: "mailto:someone@example.org", Children: []Node{Text{Value: "mail"}}}},
		},
		{
			name:   "unknown tags are stripped with text kept",
			markup: "A <i>B</i> <span class='x'>C</span>",
			want:   []Node{Text{Value: "A B C"}},
		},
		{
			name:   "script contents dropped",
			markup: "safe<script>alert(1)</script> text",
			want:   []Node{Text{Value: "safe text"}},
		},
		{
			name:   "javascript link degrades to text",
			markup: "<a href='javascript:alert(1)'>click <b>me</b></a>",
			want:   []Node{Text{Value: "click "}, Bold{Children: []Node{Text{Value: "me"}}}},
		},
		{
			name:   "link without href degrades to text",
			markup: "<a>anchor</a> tail",
			want:   []Node{Text{Value: "anchor tail"}},
		},
		{
			name:   "unclosed element closed at end",
			markup: "<b>open",
			want:   []Node{Bold{Children: []Node{Text{Value: "open"}}}},
		},
		{
			name:   "stray end tag ignored",
			markup: "a</u>b",
			want:   []Node{Text{Value: "ab"}},
		},
		{
			name:   "entities decoded",
			markup: "Computers &amp; Graphics &lt;3",
			want:   []Node{Text{Value: "Computers & Graphics <3"}},
		},
		{
			name:   "empty input",
			markup: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Parse(tt.markup))
		})
	}
}

func TestHTMLLinks(t *testing.T) {
	t.Parallel()

	out := HTML("under <a href='https://cce.ncepu.edu.cn/a?b=1&c=2'>Professor Su-Qin Wang</a>.")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	link := doc.Find("a")
	require.Equal(t, 1, link.Length())

	href, _ := link.Attr("href")
	assert.Equal(t, "https://cce.ncepu.edu.cn/a?b=1&c=2", href)
	assert.Equal(t, "_blank", link.AttrOr("target", ""))
	assert.Equal(t, LinkRel, link.AttrOr("rel", ""))
	assert.Equal(t, "Professor Su-Qin Wang", link.Text())
}

func TestHTMLEmphasis(t *testing.T) {
	t.Parallel()

	out := HTML("Min Shi#, <b><u>Jia-Qi Zhang#</u></b>, Shu-Yu Chen")

	assert.Contains(t, out, "<strong><u>Jia-Qi Zhang#</u></strong>")
	assert.True(t, strings.HasPrefix(out, "Min Shi#, "))
}

func TestHTMLNeverLeaksMarkup(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`<img src=x onerror=alert(1)>caption`,
		`<script>document.cookie</script>`,
		`<a href="javascript:alert(1)">x</a>`,
		`<a href="http://ok.example" onmouseover="alert(1)">ok</a>`,
		`<style>body{display:none}</style>visible`,
		`<b onclick="x()">bold</b>`,
	}

	for _, in := range inputs {
		out := HTML(in)

		assert.NotContains(t, out, "<img", in)
		assert.NotContains(t, out, "<script", in)
		assert.NotContains(t, out, "javascript:", in)
		assert.NotContains(t, out, "onmouseover", in)
		assert.NotContains(t, out, "onclick", in)
		assert.NotContains(t, out, "display:none", in)
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	nodes := Parse("<b><u>Jia-Qi Zhang</u></b> and <a href='https://example.org'>Lin Gao</a>")
	assert.Equal(t, "Jia-Qi Zhang and Lin Gao", PlainText(nodes))
}

func TestComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, Component("<u>u</u>").Render(context.Background(), &buf))
	assert.Equal(t, "<u>u</u>", buf.String())
}
