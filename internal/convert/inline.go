package convert

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/MohtashamMurshid/md-to-docx/document"
)

// runState is the set of inline attributes inherited from enclosing markup
// layers. Each nested emphasis/strong/code/link layer copies the state
// forward and ORs in its own attribute, so a run inside bold-inside-italic
// carries both flags.
type runState struct {
	bold   bool
	italic bool
	code   bool
	link   string
}

func (s runState) run(text string) document.TextRun {
	return document.TextRun{
		Text:   text,
		Bold:   s.bold,
		Italic: s.italic,
		Code:   s.code,
		Link:   s.link,
	}
}

// runs walks the inline children of parent and emits text runs with
// composed attributes. Adjacent runs with identical attributes are merged
// as they are appended, before any node is finalized.
func (p *pass) runs(parent ast.Node, st runState) []document.TextRun {
	var out []document.TextRun
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = p.inline(out, c, st)
	}
	return out
}

func (p *pass) inline(out []document.TextRun, n ast.Node, st runState) []document.TextRun {
	switch n := n.(type) {
	case *ast.Text:
		out = appendRun(out, st.run(string(n.Segment.Value(p.src))))
		if n.HardLineBreak() {
			out = appendRun(out, st.run("\n"))
		} else if n.SoftLineBreak() {
			out = appendRun(out, st.run(" "))
		}
	case *ast.String:
		out = appendRun(out, st.run(string(n.Value)))
	case *ast.Emphasis:
		ns := st
		if n.Level >= 2 {
			ns.bold = true
		} else {
			ns.italic = true
		}
		out = appendRuns(out, p.childRuns(n, ns))
	case *ast.CodeSpan:
		ns := st
		ns.code = true
		out = appendRuns(out, p.childRuns(n, ns))
	case *ast.Link:
		ns := st
		ns.link = string(n.Destination)
		out = appendRuns(out, p.childRuns(n, ns))
	case *ast.AutoLink:
		url := string(n.URL(p.src))
		ns := st
		ns.link = url
		out = appendRun(out, ns.run(string(n.Label(p.src))))
	case *ast.Image:
		// Inline images in mixed paragraphs flatten to their alt text;
		// only a paragraph's sole image is promoted to an image block.
		out = appendRuns(out, p.childRuns(n, st))
	case *east.Strikethrough:
		// No strikethrough attribute in the model; text survives.
		out = appendRuns(out, p.childRuns(n, st))
	case *ast.RawHTML:
		// Inline raw markup contributes no text, but comment and
		// page-break markers still count; they surface as blocks after
		// the enclosing one.
		if b := SniffRaw(rawHTMLText(n, p.src)); b != nil {
			p.pendingRaw = append(p.pendingRaw, b)
		}
	default:
		// Unknown inline kinds contribute any nested text they carry.
		out = appendRuns(out, p.childRuns(n, st))
	}
	return out
}

// rawHTMLText joins an inline raw node's source segments.
func rawHTMLText(n *ast.RawHTML, src []byte) string {
	var b strings.Builder
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}

// childRuns converts the children of an inline container with the given
// state, merging into a fresh slice that the caller appends run-by-run so
// merging with the preceding run still happens.
func (p *pass) childRuns(parent ast.Node, st runState) []document.TextRun {
	var out []document.TextRun
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = p.inline(out, c, st)
	}
	return out
}

// appendRuns appends each run with merge semantics so identical-attribute
// runs merge across container boundaries too.
func appendRuns(out []document.TextRun, rs []document.TextRun) []document.TextRun {
	for _, r := range rs {
		out = appendRun(out, r)
	}
	return out
}

// appendRun merges r into the last run when attributes match; a run's text
// is never split across siblings once attributes are finalized. Empty runs
// are dropped.
func appendRun(runs []document.TextRun, r document.TextRun) []document.TextRun {
	if r.Text == "" {
		return runs
	}
	if n := len(runs); n > 0 && runs[n-1].SameAttributes(r) {
		runs[n-1].Text += r.Text
		return runs
	}
	return append(runs, r)
}
