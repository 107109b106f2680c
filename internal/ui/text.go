package ui

import (
	"strings"

	"golang.org/x/net/html"
)

// TextContent returns the rendered text of an HTML fragment: tags stripped,
// entities decoded, surrounding whitespace trimmed.
func TextContent(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// HasVisibleText reports whether an HTML fragment renders any non-whitespace
// text. Used to decide whether a label node is worth creating at all.
func HasVisibleText(fragment string) bool {
	return TextContent(fragment) != ""
}
