// Package richtext extracts comparable plain text from rich definition
// content and computes insert/delete diffs between two versions. The core
// treats content as opaque markup; this package only strips tags so that
// markup-only edits do not show up as text changes.
package richtext

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags are elements whose boundaries separate words when flattened.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "tr": true, "table": true,
}

// Strip flattens rich content into normalized plain text: tags removed,
// block boundaries collapsed to single spaces, entities decoded. Input that
// is not well-formed markup is handled leniently by the tokenizer; plain
// text passes through unchanged.
func Strip(content string) string {
	if content == "" {
		return ""
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(content))

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed tail; either way we keep what we have.
			return collapseSpaces(b.String())
		case html.TextToken:
			b.WriteString(string(z.Text()))
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if blockTags[string(name)] {
				b.WriteByte(' ')
			}
		}
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
