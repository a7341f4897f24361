package convert

import (
	"strings"

	"github.com/MohtashamMurshid/md-to-docx/document"
)

// Marker recognition is deliberately heuristic string matching on raw
// content, kept in one place so the match rules can be tested without
// walking a syntax tree.

// Standalone paragraph tokens recognized at the top level only.
const (
	tocToken        = "[TOC]"
	pageBreakToken  = "[PAGEBREAK]"
	pageBreakEscape = `\pagebreak`
)

// commentPrefix marks embedded comment content inside raw markup.
const commentPrefix = "comment:"

// IsTOCToken reports whether a paragraph's full text is exactly the
// table-of-contents token.
func IsTOCToken(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), tocToken)
}

// IsPageBreakToken reports whether a paragraph's full text is exactly a
// page-break token.
func IsPageBreakToken(text string) bool {
	t := strings.TrimSpace(text)
	return strings.EqualFold(t, pageBreakToken) || strings.EqualFold(t, pageBreakEscape)
}

// SniffRaw inspects raw/embedded markup content and returns the block it
// maps to, if any. Content carrying a "comment:" prefix becomes a Comment
// block with the trailing text as its body; content mentioning a page break
// becomes a PageBreak. Everything else is dropped (nil): unsupported
// embedded markup is deliberately lossy, never an error.
func SniffRaw(raw string) document.Block {
	if body, ok := commentBody(raw); ok {
		return &document.Comment{Text: body}
	}
	if containsFold(raw, "pagebreak") {
		return &document.PageBreak{}
	}
	return nil
}

// commentBody extracts the text following a "comment:" prefix, stopping at a
// closing HTML comment marker if present.
func commentBody(raw string) (string, bool) {
	idx := indexFold(raw, commentPrefix)
	if idx < 0 {
		return "", false
	}
	body := raw[idx+len(commentPrefix):]
	if end := strings.Index(body, "-->"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body), true
}

func containsFold(s, substr string) bool {
	return indexFold(s, substr) >= 0
}

func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}
