// Package document defines the internal document model produced by markdown
// conversion and consumed by serialization backends.
//
// The model is a closed set of block variants plus a text run carrying
// composable inline attributes. Types here are pure data: blocks are built
// once by the converter and treated as immutable afterwards. Backends
// dispatch over the Block interface with a type switch; unknown blocks
// (there are none today) must be skipped, not rejected.
package document

// Block is one structural unit of the document model.
// The concrete types form a closed set: Paragraph, Heading, List, ListItem,
// CodeBlock, Blockquote, Image, Table, Comment, PageBreak, TOCPlaceholder.
type Block interface {
	block()
}

// TextRun is a contiguous span of text sharing one set of inline attributes.
// Attributes compose: a run nested inside bold-inside-italic markup carries
// both flags. Adjacent runs with identical attributes are merged before node
// creation, so a run's text is never split across siblings.
type TextRun struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	Link   string // target URL; empty for plain text
}

// SameAttributes reports whether two runs carry identical inline attributes.
func (r TextRun) SameAttributes(o TextRun) bool {
	return r.Bold == o.Bold && r.Italic == o.Italic && r.Code == o.Code && r.Link == o.Link
}

// Paragraph is a block of text runs.
// Indent is a left-indent level used only by generated content (TOC entries);
// converter-produced paragraphs always have Indent 0.
type Paragraph struct {
	Runs   []TextRun
	Indent int
}

// Heading is a titled block with a level (1-6) and a stable anchor id used as
// a cross-reference target from generated table-of-contents entries.
type Heading struct {
	Level    int
	Runs     []TextRun
	AnchorID string
}

// List holds list items. SequenceID is populated only for ordered lists and
// is unique within one assembly pass; nested ordered lists receive their own
// ids independent of the enclosing list.
type List struct {
	Ordered    bool
	Items      []*ListItem
	SequenceID int // 0 for unordered lists
}

// ListItem holds the block content of one list item. Items are never
// childless: an empty source item is normalized to one empty paragraph.
type ListItem struct {
	Blocks []Block
}

// CodeBlock is a fenced or indented code block. Language may be empty.
type CodeBlock struct {
	Language string
	Code     string
}

// Blockquote nests arbitrary block content.
type Blockquote struct {
	Blocks []Block
}

// Image is a standalone image promoted from a paragraph whose only content
// is a single image.
type Image struct {
	Source string
	Alt    string
	Title  string
}

// Table holds a header row and data rows as flattened plain text.
// Inline formatting inside cells is intentionally not preserved.
// Row lengths may differ from the header length; backends derive the column
// count as the maximum over headers and all rows (minimum 1).
type Table struct {
	Headers []string
	Rows    [][]string
}

// Comment carries the trailing text of a recognized comment marker.
type Comment struct {
	Text string
}

// PageBreak forces a page break in the output document.
type PageBreak struct{}

// TOCPlaceholder marks the position where a generated table of contents is
// inserted. At most one placeholder per assembly pass is resolved.
type TOCPlaceholder struct{}

func (*Paragraph) block()      {}
func (*Heading) block()        {}
func (*List) block()           {}
func (*ListItem) block()       {}
func (*CodeBlock) block()      {}
func (*Blockquote) block()     {}
func (*Image) block()          {}
func (*Table) block()          {}
func (*Comment) block()        {}
func (*PageBreak) block()      {}
func (*TOCPlaceholder) block() {}

// HeadingEntry is one heading collected during model conversion, in document
// order across all sections. The registry holding these entries is scoped to
// a single assembly pass.
type HeadingEntry struct {
	Text     string
	Level    int
	AnchorID string
}
