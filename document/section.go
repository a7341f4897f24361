package document

// Document is the fully resolved output of one assembly pass: an ordered
// list of section descriptors plus the numbering configuration covering
// sequence ids 1..max. It is the contract handed to serialization backends.
type Document struct {
	Sections  []*Section
	Numbering []NumberingDef
}

// Section pairs converted block content with its resolved configuration.
// A Section owns its properties exclusively; resolved configuration shares
// no mutable state with the template or with other sections.
type Section struct {
	Properties SectionProperties
	Headers    HeaderFooterSet
	Footers    HeaderFooterSet
	Blocks     []Block
}

// SectionProperties carries the resolved page and section settings.
type SectionProperties struct {
	Page       PageProperties
	Numbering  *PageNumberProperties // nil = continue from previous section
	BreakType  string                // "nextPage", "continuous", "evenPage", "oddPage"
	TitlePage  bool
	Style      StyleProperties
}

// PageProperties describes the resolved page geometry in twips
// (twentieths of a point).
type PageProperties struct {
	WidthTwips  int
	HeightTwips int
	Orientation string
	Margins     MarginProperties
}

// MarginProperties are page margins in twips.
type MarginProperties struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// PageNumberProperties restarts page numbering for a section.
type PageNumberProperties struct {
	Start  int
	Format string // "decimal", "lowerRoman", "upperRoman", "lowerLetter", "upperLetter"
}

// HeaderFooterSet holds the resolved header or footer for each slot.
// A nil slot means no header/footer of that kind.
type HeaderFooterSet struct {
	Default *HeaderFooter
	First   *HeaderFooter
	Even    *HeaderFooter
}

// HeaderFooter is one resolved header or footer. Text may contain the
// {page} token, which capable backends render as a page-number field.
type HeaderFooter struct {
	Text      string
	Alignment string
	SizePt    int
}

// StyleProperties is the fully resolved per-section style consumed by
// backends. All sizes are in points, spacing values in twips.
type StyleProperties struct {
	DocumentType string // "document" or "report"
	FontFamily   string

	TitleSizePt      int
	HeadingSizesPt   [6]int // index 0 = level 1
	ParagraphSizePt  int
	ListItemSizePt   int
	CodeBlockSizePt  int
	BlockquoteSizePt int
	TOCSizePt        int

	LineSpacing         float64
	ParagraphSpacing    int // twips after paragraphs
	HeadingSpacing      int // twips after headings
	ParagraphAlignment  string
	BlockquoteAlignment string
}

// HeadingSizePt returns the configured size for a heading level, falling
// back to the paragraph size for out-of-range levels.
func (s StyleProperties) HeadingSizePt(level int) int {
	if level < 1 || level > len(s.HeadingSizes()) {
		return s.ParagraphSizePt
	}
	return s.HeadingSizesPt[level-1]
}

// HeadingSizes returns the per-level heading sizes.
func (s StyleProperties) HeadingSizes() []int {
	return s.HeadingSizesPt[:]
}

// NumberingDef is one entry of the numbering configuration given to the
// serialization backend, covering a single ordered-list sequence id.
type NumberingDef struct {
	Reference string
	Levels    []NumberingLevel
}

// NumberingLevel configures one nesting depth of an ordered-list sequence.
type NumberingLevel struct {
	Level        int
	Format       string // "decimal"
	Text         string // e.g. "%1."
	Alignment    string
	IndentTwips  int
	HangingTwips int
}
