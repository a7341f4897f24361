// Package toc collects headings during model conversion and resolves
// table-of-contents placeholders against them.
package toc

import (
	"fmt"
	"strings"
	"unicode"
)

// Registry accumulates headings in document order across all sections of one
// assembly pass. It is append-only during the pass and discarded afterwards.
type Registry struct {
	entries []Entry
	anchors map[string]int
}

// Entry is one registered heading.
type Entry struct {
	Text     string
	Level    int
	AnchorID string
}

// NewRegistry returns an empty heading registry.
func NewRegistry() *Registry {
	return &Registry{anchors: make(map[string]int)}
}

// Register appends a heading and returns its stable anchor id. Anchor ids
// are slugs of the heading text, deduplicated with a numeric suffix so two
// identical headings never share an anchor.
func (r *Registry) Register(text string, level int) string {
	anchor := slugify(text)
	r.anchors[anchor]++
	if n := r.anchors[anchor]; n > 1 {
		anchor = fmt.Sprintf("%s-%d", anchor, n)
	}
	r.entries = append(r.entries, Entry{Text: text, Level: level, AnchorID: anchor})
	return anchor
}

// Entries returns the registered headings in document order.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// Len returns the number of registered headings.
func (r *Registry) Len() int {
	return len(r.entries)
}

// slugify lowercases text and folds runs of non-alphanumeric characters into
// single hyphens. Empty or fully symbolic text slugs to "section".
func slugify(text string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "section"
	}
	return slug
}
