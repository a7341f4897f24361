// Package convert walks a goldmark syntax tree and produces document model
// blocks. Conversion is total: unrecognized or malformed input degrades
// gracefully (dropped, flattened, or passed through as plain text) and never
// aborts the pass.
package convert

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/MohtashamMurshid/md-to-docx/document"
	"github.com/MohtashamMurshid/md-to-docx/internal/numbering"
	"github.com/MohtashamMurshid/md-to-docx/internal/toc"
)

// pass carries per-conversion state: the markdown source the tree indexes
// into and the two pass-scoped registries. Registries are owned by the
// caller so concurrent assembly passes never share state.
type pass struct {
	src      []byte
	nums     *numbering.Registry
	headings *toc.Registry

	// Raw markers found inside inline content; flushed as blocks right
	// after the enclosing block.
	pendingRaw []document.Block
}

// takePending returns the blocks gathered from inline raw markers and
// resets the collection for the next block.
func (p *pass) takePending() []document.Block {
	out := p.pendingRaw
	p.pendingRaw = nil
	return out
}

// Section converts the children of a parsed markdown document into model
// blocks for one section. Ordered lists are registered in nums in source
// order; headings are appended to headings in document order.
func Section(root ast.Node, src []byte, nums *numbering.Registry, headings *toc.Registry) []document.Block {
	p := &pass{src: src, nums: nums, headings: headings}
	nums.BeginSection()

	var blocks []document.Block
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		blocks = append(blocks, p.block(n, true)...)
	}
	return blocks
}

// block dispatches one syntax tree node to zero, one, or many model blocks.
// topLevel enables the standalone [TOC] and [PAGEBREAK] paragraph tokens,
// which are only recognized directly under the document root.
func (p *pass) block(n ast.Node, topLevel bool) []document.Block {
	switch n := n.(type) {
	case *ast.Heading:
		return append([]document.Block{p.heading(n)}, p.takePending()...)
	case *ast.Paragraph:
		return p.paragraph(n, topLevel)
	case *ast.TextBlock:
		// Tight list items wrap their text in a TextBlock instead of a
		// Paragraph; both map to the same model block.
		runs := p.runs(n, runState{})
		return append([]document.Block{&document.Paragraph{Runs: runs}}, p.takePending()...)
	case *ast.List:
		return []document.Block{p.list(n)}
	case *ast.FencedCodeBlock:
		return []document.Block{&document.CodeBlock{
			Language: string(n.Language(p.src)),
			Code:     linesText(n, p.src),
		}}
	case *ast.CodeBlock:
		return []document.Block{&document.CodeBlock{Code: linesText(n, p.src)}}
	case *ast.Blockquote:
		return []document.Block{p.blockquote(n)}
	case *east.Table:
		return []document.Block{p.table(n)}
	case *ast.HTMLBlock:
		if b := SniffRaw(htmlBlockText(n, p.src)); b != nil {
			return []document.Block{b}
		}
		return nil
	case *ast.ThematicBreak:
		// Decorative; has no docx counterpart worth emitting.
		return nil
	default:
		// Unknown node kinds are ignored, not rejected.
		return nil
	}
}

func (p *pass) heading(n *ast.Heading) *document.Heading {
	runs := p.runs(n, runState{})
	text := plainText(runs)
	return &document.Heading{
		Level:    n.Level,
		Runs:     runs,
		AnchorID: p.headings.Register(text, n.Level),
	}
}

// paragraph handles marker tokens, single-image promotion, and plain text
// paragraphs, in that order.
func (p *pass) paragraph(n *ast.Paragraph, topLevel bool) []document.Block {
	// A paragraph consisting of exactly one image becomes a standalone
	// image block rather than a text paragraph.
	if img, ok := soleImage(n); ok {
		image := &document.Image{
			Source: string(img.Destination),
			Alt:    plainText(p.runs(img, runState{})),
			Title:  string(img.Title),
		}
		return append([]document.Block{image}, p.takePending()...)
	}

	runs := p.runs(n, runState{})
	trailing := p.takePending()

	if topLevel {
		text := plainText(runs)
		if IsTOCToken(text) {
			return append([]document.Block{&document.TOCPlaceholder{}}, trailing...)
		}
		if IsPageBreakToken(text) {
			return append([]document.Block{&document.PageBreak{}}, trailing...)
		}
	}

	if len(runs) == 0 {
		return trailing
	}
	return append([]document.Block{&document.Paragraph{Runs: runs}}, trailing...)
}

// soleImage reports whether the paragraph's only child is an image.
func soleImage(n *ast.Paragraph) (*ast.Image, bool) {
	if n.ChildCount() != 1 {
		return nil, false
	}
	img, ok := n.FirstChild().(*ast.Image)
	return img, ok
}

// list recurses structurally: a nested list inside an item becomes a nested
// List block inside that item's children, preserving arbitrary depth.
// Ordered lists are registered before their items are processed so nested
// ordered lists receive independent, later sequence ids.
func (p *pass) list(n *ast.List) *document.List {
	lst := &document.List{Ordered: n.IsOrdered()}
	if lst.Ordered {
		lst.SequenceID = p.nums.Allocate(n)
	}
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		li := &document.ListItem{}
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			li.Blocks = append(li.Blocks, p.block(c, false)...)
		}
		if len(li.Blocks) == 0 {
			// Items are never childless.
			li.Blocks = []document.Block{&document.Paragraph{}}
		}
		lst.Items = append(lst.Items, li)
	}
	return lst
}

// blockquote recurses over children with the same dispatch as top-level
// blocks, flattening returned slices into its own children.
func (p *pass) blockquote(n *ast.Blockquote) *document.Blockquote {
	bq := &document.Blockquote{}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		bq.Blocks = append(bq.Blocks, p.block(c, false)...)
	}
	return bq
}

// table extracts the header row and data rows, flattening each cell's inline
// content to plain text. Row lengths are not forced to match the header;
// mismatches are resolved later by column-count derivation.
func (p *pass) table(n *east.Table) *document.Table {
	t := &document.Table{}
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, p.cellText(cell))
		}
		if _, ok := row.(*east.TableHeader); ok {
			t.Headers = cells
			continue
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// cellText flattens a table cell to plain text: emphasis, strong, code and
// link markup contribute their text, line breaks become "\n". Inline
// formatting is intentionally not preserved inside cells.
func (p *pass) cellText(cell ast.Node) string {
	text := plainText(p.runs(cell, runState{}))
	// Raw markers have no place inside a flattened cell.
	p.pendingRaw = nil
	return text
}

// plainText concatenates run values.
func plainText(runs []document.TextRun) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// linesText joins a block node's source line segments.
func linesText(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}

// htmlBlockText includes the closure line goldmark stores outside Lines().
func htmlBlockText(n *ast.HTMLBlock, src []byte) string {
	text := linesText(n, src)
	if n.HasClosure() {
		text += string(n.ClosureLine.Value(src))
	}
	return text
}
