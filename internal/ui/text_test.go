package ui

import "testing"

func TestTextContent(t *testing.T) {
	cases := []struct {
		fragment string
		want     string
	}{
		{"<p>Chapter one</p>", "Chapter one"},
		{"  <b>bold</b> and <i>italic</i> ", "bold and italic"},
		{"&amp; more", "& more"},
		{"<img src=\"x.png\">", ""},
		{"   ", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := TextContent(c.fragment); got != c.want {
			t.Errorf("TextContent(%q) = %q, want %q", c.fragment, got, c.want)
		}
	}
}

func TestHasVisibleText(t *testing.T) {
	if HasVisibleText("<p></p>") {
		t.Error("empty paragraph should have no visible text")
	}
	if !HasVisibleText("<span>x</span>") {
		t.Error("span with text should count")
	}
}
