// Package docxout serializes resolved section descriptors into a .docx file
// using go-docx.
//
// The backend maps what the library can express and degrades the rest:
// section breaks other than "continuous" become page breaks, ordered lists
// are rendered with literal number prefixes derived from per-list counters
// (the numbering configuration on the document covers backends with native
// numbering support), internal anchor links render as plain text, and
// headers/footers carried on the descriptors are not emitted because
// go-docx does not author header parts.
package docxout

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/MohtashamMurshid/md-to-docx/document"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// Display colours (RRGGBB).
const (
	codeSpanColor   = "C7254E"
	commentColor    = "808080"
	blockquoteColor = "666666"
)

// indentStep is the prefix used to simulate one level of indentation.
const indentStep = "    "

// Serializer writes a Document as docx bytes.
type Serializer struct {
	highlight string
}

// New creates a Serializer with the given chroma highlight style name
// (empty selects DefaultHighlightStyle).
func New(highlightStyle string) *Serializer {
	if highlightStyle == "" {
		highlightStyle = DefaultHighlightStyle
	}
	return &Serializer{highlight: highlightStyle}
}

// Serialize encodes the resolved document. The context is checked between
// sections; serialization of an abandoned pass returns the context error.
func (s *Serializer) Serialize(ctx context.Context, doc *document.Document) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	for i, sec := range doc.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i > 0 && sec.Properties.BreakType != "continuous" {
			w.AddParagraph().AddPageBreaks()
		}
		for _, b := range sec.Blocks {
			s.writeBlock(w, b, sec.Properties.Style, 0)
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing docx: %w", err)
	}
	return buf.Bytes(), nil
}

// writeBlock dispatches one model block. Unknown kinds are skipped.
func (s *Serializer) writeBlock(w *docx.Docx, b document.Block, style document.StyleProperties, depth int) {
	switch b := b.(type) {
	case *document.Paragraph:
		s.paragraph(w, b, style)
	case *document.Heading:
		s.heading(w, b, style)
	case *document.List:
		s.list(w, b, style, depth)
	case *document.CodeBlock:
		s.codeBlock(w, b, style)
	case *document.Blockquote:
		s.blockquote(w, b, style, depth)
	case *document.Image:
		s.image(w, b, style)
	case *document.Table:
		s.table(w, b, style)
	case *document.Comment:
		p := w.AddParagraph()
		r := p.AddText("[Comment: " + b.Text + "]")
		r.Size(halfPoints(style.ParagraphSizePt)).Italic().Color(commentColor)
	case *document.PageBreak:
		w.AddParagraph().AddPageBreaks()
	case *document.TOCPlaceholder:
		// Unresolved placeholders carry no renderable content.
	}
}

func (s *Serializer) paragraph(w *docx.Docx, para *document.Paragraph, style document.StyleProperties) {
	p := w.AddParagraph()
	justify(p, style.ParagraphAlignment)
	prefix := strings.Repeat(indentStep, para.Indent)
	if prefix != "" {
		p.AddText(prefix).Size(halfPoints(style.ParagraphSizePt))
	}
	size := style.ParagraphSizePt
	if para.Indent > 0 {
		size = style.TOCSizePt
	}
	s.writeRuns(p, para.Runs, size)
}

func (s *Serializer) heading(w *docx.Docx, h *document.Heading, style document.StyleProperties) {
	p := w.AddParagraph()
	size := style.HeadingSizePt(h.Level)
	if h.Level == 1 && style.DocumentType == "report" {
		p.Style("Title")
		size = style.TitleSizePt
	} else {
		p.Style("Heading" + strconv.Itoa(clampLevel(h.Level)))
	}
	for _, r := range h.Runs {
		run := p.AddText(r.Text)
		run.Size(halfPoints(size))
		if r.Bold {
			run.Bold()
		}
		if r.Italic {
			run.Italic()
		}
	}
}

// list renders items depth-first. Ordered items carry literal "n." prefixes
// restarting at 1 per list, matching the author-visible numbering; the
// cross-section sequence id namespace lives in the document's numbering
// configuration, not in this backend's text.
func (s *Serializer) list(w *docx.Docx, lst *document.List, style document.StyleProperties, depth int) {
	counter := 0
	for _, item := range lst.Items {
		counter++
		marker := "- "
		if lst.Ordered {
			marker = strconv.Itoa(counter) + ". "
		}
		first := true
		for _, b := range item.Blocks {
			switch b := b.(type) {
			case *document.Paragraph:
				p := w.AddParagraph()
				prefix := strings.Repeat(indentStep, depth)
				if first {
					prefix += marker
				} else {
					prefix += strings.Repeat(" ", len(marker))
				}
				p.AddText(prefix).Size(halfPoints(style.ListItemSizePt))
				s.writeRuns(p, b.Runs, style.ListItemSizePt)
				first = false
			case *document.List:
				s.list(w, b, style, depth+1)
			default:
				s.writeBlock(w, b, style, depth+1)
				first = false
			}
		}
	}
}

func (s *Serializer) codeBlock(w *docx.Docx, cb *document.CodeBlock, style document.StyleProperties) {
	code := strings.TrimRight(cb.Code, "\n")
	if code == "" {
		return
	}
	size := halfPoints(style.CodeBlockSizePt)
	p := w.AddParagraph()
	for _, seg := range highlightCode(code, cb.Language, s.highlight) {
		for j, line := range strings.Split(seg.Text, "\n") {
			if j > 0 {
				p = w.AddParagraph()
			}
			if line == "" {
				continue
			}
			r := p.AddText(line)
			r.Size(size)
			if seg.Color != "" {
				r.Color(seg.Color)
			}
		}
	}
}

func (s *Serializer) blockquote(w *docx.Docx, bq *document.Blockquote, style document.StyleProperties, depth int) {
	for _, b := range bq.Blocks {
		if para, ok := b.(*document.Paragraph); ok {
			p := w.AddParagraph()
			justify(p, style.BlockquoteAlignment)
			p.AddText(strings.Repeat(indentStep, depth+1)).Size(halfPoints(style.BlockquoteSizePt))
			for _, r := range para.Runs {
				run := p.AddText(r.Text)
				run.Size(halfPoints(style.BlockquoteSizePt)).Italic().Color(blockquoteColor)
				if r.Bold {
					run.Bold()
				}
			}
			continue
		}
		s.writeBlock(w, b, style, depth+1)
	}
}

// image emits a reference to the image source. Embedding the binary would
// require fetching the target, which is the caller's concern, not the
// serializer's.
func (s *Serializer) image(w *docx.Docx, img *document.Image, style document.StyleProperties) {
	label := img.Alt
	if label == "" {
		label = img.Source
	}
	p := w.AddParagraph()
	if strings.HasPrefix(img.Source, "http://") || strings.HasPrefix(img.Source, "https://") {
		p.AddLink(label, img.Source)
		return
	}
	p.AddText("[image: "+label+"]").Size(halfPoints(style.ParagraphSizePt)).Italic()
}

func (s *Serializer) table(w *docx.Docx, t *document.Table, style document.StyleProperties) {
	cols := columnCount(t)
	rows := len(t.Rows)
	hasHeader := len(t.Headers) > 0
	if hasHeader {
		rows++
	}
	if rows == 0 {
		return
	}

	tbl := w.AddTable(rows, cols, 0, nil)
	size := halfPoints(style.ParagraphSizePt)

	rowIdx := 0
	if hasHeader {
		for c := 0; c < cols; c++ {
			cell := tbl.TableRows[0].TableCells[c]
			cell.AddParagraph().AddText(cellAt(t.Headers, c)).Size(size).Bold()
		}
		rowIdx++
	}
	for _, row := range t.Rows {
		for c := 0; c < cols; c++ {
			cell := tbl.TableRows[rowIdx].TableCells[c]
			cell.AddParagraph().AddText(cellAt(row, c)).Size(size)
		}
		rowIdx++
	}
}

// columnCount derives the column count as the maximum over the header row
// and all data rows, with a minimum of 1. Short rows are padded with empty
// cells rather than rejected.
func columnCount(t *document.Table) int {
	cols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// writeRuns emits text runs onto a paragraph. External links become
// hyperlinks; internal anchor links (leading '#') render as plain text.
func (s *Serializer) writeRuns(p *docx.Paragraph, runs []document.TextRun, sizePt int) {
	for _, r := range runs {
		if r.Link != "" && !strings.HasPrefix(r.Link, "#") {
			p.AddLink(r.Text, r.Link)
			continue
		}
		run := p.AddText(r.Text)
		run.Size(halfPoints(sizePt))
		if r.Bold {
			run.Bold()
		}
		if r.Italic {
			run.Italic()
		}
		if r.Code {
			run.Color(codeSpanColor)
		}
	}
}

func justify(p *docx.Paragraph, alignment string) {
	switch alignment {
	case "center":
		p.Justification("center")
	case "right":
		p.Justification("right")
	case "justify":
		p.Justification("both")
	}
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

// halfPoints converts a point size to go-docx's half-point string form.
func halfPoints(pt int) string {
	return strconv.Itoa(pt * 2)
}
