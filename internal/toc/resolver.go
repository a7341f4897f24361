package toc

import (
	"fmt"

	"github.com/MohtashamMurshid/md-to-docx/document"
)

// resolution state for one assembly pass.
const (
	statePending  = iota // no TOC inserted yet
	stateInserted        // first placeholder consumed
)

// ResolvePlaceholders replaces the first tocPlaceholder block encountered
// across the whole document, in section order, with a generated title block
// followed by one linked entry per registered heading. The transition from
// pending to inserted happens exactly once per pass: every later placeholder
// is left in place (backends skip it) and reported as a non-fatal diagnostic.
//
// If the registry is empty, the first placeholder resolves to nothing rather
// than producing an empty TOC.
func ResolvePlaceholders(doc *document.Document, reg *Registry, title string) []string {
	state := statePending
	var diags []string

	for si, sec := range doc.Sections {
		var out []document.Block
		for _, b := range sec.Blocks {
			if _, ok := b.(*document.TOCPlaceholder); !ok {
				out = append(out, b)
				continue
			}
			if state == stateInserted {
				diags = append(diags, fmt.Sprintf(
					"table of contents already inserted; ignoring extra placeholder in section %d", si+1))
				out = append(out, b)
				continue
			}
			state = stateInserted
			out = append(out, generate(reg, title)...)
		}
		sec.Blocks = out
	}
	return diags
}

// generate builds the TOC block sequence: a title followed by one entry per
// heading, indented proportionally to level-1 and linked to the heading's
// anchor. An empty registry generates nothing.
func generate(reg *Registry, title string) []document.Block {
	if reg.Len() == 0 {
		return nil
	}
	blocks := make([]document.Block, 0, reg.Len()+1)
	blocks = append(blocks, &document.Heading{
		Level: 1,
		Runs:  []document.TextRun{{Text: title}},
	})
	for _, e := range reg.Entries() {
		blocks = append(blocks, &document.Paragraph{
			Runs:   []document.TextRun{{Text: e.Text, Link: "#" + e.AnchorID}},
			Indent: e.Level - 1,
		})
	}
	return blocks
}
