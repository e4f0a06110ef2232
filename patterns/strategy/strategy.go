// Package strategy makes a family of algorithms interchangeable behind one
// interface, so the object using them can swap policy at runtime. The cast:
// three ways to redact a banned word, one moderator that applies whichever
// policy it currently holds.
package strategy

import (
	"strings"
	"unicode/utf8"
)

// CensorStrategy decides what a banned word turns into. Implementations see
// one matched word at a time and return its replacement.
type CensorStrategy interface {
	Redact(word string) string
	Name() string
}

// StarsStrategy masks every rune, keeping the word's length visible.
type StarsStrategy struct{}

func (StarsStrategy) Redact(word string) string {
	return strings.Repeat("*", utf8.RuneCountInString(word))
}

func (StarsStrategy) Name() string { return "stars" }

// CutStrategy removes the word entirely; the moderator smooths the seam.
type CutStrategy struct{}

func (CutStrategy) Redact(string) string { return "" }

func (CutStrategy) Name() string { return "cut" }

// PlaceholderStrategy swaps the word for a fixed marker. An empty Marker
// falls back to "[removed]".
type PlaceholderStrategy struct {
	Marker string
}

func (p PlaceholderStrategy) Redact(string) string {
	if p.Marker == "" {
		return "[removed]"
	}
	return p.Marker
}

func (PlaceholderStrategy) Name() string { return "placeholder" }

// CensorFunc adapts a plain function to CensorStrategy, the same trick
// http.HandlerFunc plays. In Go a strategy does not need a struct at all.
type CensorFunc func(word string) string

func (f CensorFunc) Redact(word string) string { return f(word) }

func (CensorFunc) Name() string { return "func" }
