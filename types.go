package md2docx

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// Document type constants. The report type maps top-level headings onto the
// Title style in the serialization backend.
const (
	DocumentTypeDocument = "document"
	DocumentTypeReport   = "report"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Alignment constants for paragraphs, headers, and footers.
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "justify"
)

// Section break type constants.
const (
	BreakNextPage   = "nextPage"
	BreakContinuous = "continuous"
	BreakEvenPage   = "evenPage"
	BreakOddPage    = "oddPage"
)

// Page number format constants.
const (
	NumberFormatDecimal     = "decimal"
	NumberFormatLowerRoman  = "lowerRoman"
	NumberFormatUpperRoman  = "upperRoman"
	NumberFormatLowerLetter = "lowerLetter"
	NumberFormatUpperLetter = "upperLetter"
)

// DefaultTOCTitle is used when no table-of-contents title is configured.
const DefaultTOCTitle = "Table of Contents"

// Style holds document-wide typography defaults. Zero-valued fields are
// unset and inherit from the enclosing configuration level. All sizes are
// in points; spacing values are in twips.
type Style struct {
	DocumentType string `yaml:"documentType"`
	FontFamily   string `yaml:"fontFamily"`

	TitleSize      int `yaml:"titleSize"`
	Heading1Size   int `yaml:"heading1Size"`
	Heading2Size   int `yaml:"heading2Size"`
	Heading3Size   int `yaml:"heading3Size"`
	Heading4Size   int `yaml:"heading4Size"`
	Heading5Size   int `yaml:"heading5Size"`
	Heading6Size   int `yaml:"heading6Size"`
	ParagraphSize  int `yaml:"paragraphSize"`
	ListItemSize   int `yaml:"listItemSize"`
	CodeBlockSize  int `yaml:"codeBlockSize"`
	BlockquoteSize int `yaml:"blockquoteSize"`
	TOCSize        int `yaml:"tocSize"`

	LineSpacing      float64 `yaml:"lineSpacing"`
	ParagraphSpacing int     `yaml:"paragraphSpacing"`
	HeadingSpacing   int     `yaml:"headingSpacing"`

	ParagraphAlignment  string `yaml:"paragraphAlignment"`
	BlockquoteAlignment string `yaml:"blockquoteAlignment"`

	// ParagraphAligment is the historical misspelling of
	// ParagraphAlignment, kept for configurations written against old
	// releases. It is folded into the canonical field before any merging.
	//
	// Deprecated: Use ParagraphAlignment.
	ParagraphAligment string `yaml:"paragraphAligment"`
}

// Validate checks style enum fields. Returns nil if s is nil.
func (s *Style) Validate() error {
	if s == nil {
		return nil
	}
	switch strings.ToLower(s.DocumentType) {
	case "", DocumentTypeDocument, DocumentTypeReport:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDocumentType, s.DocumentType)
	}
	for _, a := range []string{s.ParagraphAlignment, s.ParagraphAligment, s.BlockquoteAlignment} {
		if !isValidAlignment(a) {
			return fmt.Errorf("%w: %q", ErrInvalidAlignment, a)
		}
	}
	if s.LineSpacing < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidLineSpacing, s.LineSpacing)
	}
	return nil
}

func isValidAlignment(a string) bool {
	switch strings.ToLower(a) {
	case "", AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return true
	}
	return false
}

// PageConfig configures page geometry for a section. Zero-valued fields are
// unset and inherit.
type PageConfig struct {
	Size        string       `yaml:"size"`        // "a4", "letter", "legal"
	Orientation string       `yaml:"orientation"` // "portrait", "landscape"
	Margins     *PageMargins `yaml:"margins"`
}

// PageMargins are page margins in twips. A zero value is unset and inherits
// the enclosing level's margin for that side.
type PageMargins struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
}

// Validate checks page settings. Returns nil if p is nil.
func (p *PageConfig) Validate() error {
	if p == nil {
		return nil
	}
	switch strings.ToLower(p.Size) {
	case "", PageSizeA4, PageSizeLetter, PageSizeLegal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}
	switch strings.ToLower(p.Orientation) {
	case "", OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}
	if m := p.Margins; m != nil {
		for _, v := range []int{m.Top, m.Right, m.Bottom, m.Left} {
			if v < 0 {
				return fmt.Errorf("%w: %d", ErrInvalidMargin, v)
			}
		}
	}
	return nil
}

// HeaderFooterConfig configures one header or footer slot. Text may contain
// the {page} token (rendered as a page-number field by capable backends)
// and the {date} token (stamped at resolve time).
type HeaderFooterConfig struct {
	Text      string `yaml:"text"`
	Alignment string `yaml:"alignment"`
	FontSize  int    `yaml:"fontSize"` // points; 0 inherits
}

// Validate checks header/footer settings. Returns nil if h is nil.
func (h *HeaderFooterConfig) Validate() error {
	if h == nil {
		return nil
	}
	if !isValidAlignment(h.Alignment) {
		return fmt.Errorf("%w: %q", ErrInvalidAlignment, h.Alignment)
	}
	return nil
}

// slotState distinguishes the three merge behaviors of a header/footer slot.
type slotState uint8

const (
	slotInherit slotState = iota // absent: inherit from the enclosing level
	slotClear                    // explicit null: suppress the inherited value
	slotSet                      // explicit object: shallow-merge over inherited
)

// HeaderFooterSlot carries three-valued merge semantics for one header or
// footer slot. The zero value inherits from the enclosing level unchanged;
// ClearHeaderFooter suppresses the inherited value entirely; SetHeaderFooter
// shallow-merges an explicit configuration over the inherited one.
//
// In YAML, an absent key inherits, an explicit null clears, and a mapping
// sets. Distinguishing absent from explicit null is the point of this type.
type HeaderFooterSlot struct {
	state slotState
	value HeaderFooterConfig
}

// InheritHeaderFooter returns the inherit slot (same as the zero value).
func InheritHeaderFooter() HeaderFooterSlot {
	return HeaderFooterSlot{}
}

// ClearHeaderFooter returns a slot that suppresses any inherited value.
func ClearHeaderFooter() HeaderFooterSlot {
	return HeaderFooterSlot{state: slotClear}
}

// SetHeaderFooter returns a slot carrying an explicit configuration.
func SetHeaderFooter(cfg HeaderFooterConfig) HeaderFooterSlot {
	return HeaderFooterSlot{state: slotSet, value: cfg}
}

// IsSet reports whether the slot carries an explicit configuration.
func (s HeaderFooterSlot) IsSet() bool { return s.state == slotSet }

// IsClear reports whether the slot explicitly suppresses inheritance.
func (s HeaderFooterSlot) IsClear() bool { return s.state == slotClear }

// Config returns the explicit configuration and whether one is set.
func (s HeaderFooterSlot) Config() (HeaderFooterConfig, bool) {
	return s.value, s.state == slotSet
}

// Validate checks the slot's configuration, if set.
func (s HeaderFooterSlot) Validate() error {
	if s.state != slotSet {
		return nil
	}
	cfg := s.value
	return cfg.Validate()
}

// UnmarshalYAML maps YAML null onto the clear state and a mapping onto the
// set state. An absent key never reaches this method, leaving the zero
// (inherit) value in place.
func (s *HeaderFooterSlot) UnmarshalYAML(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "", "null", "~", "Null", "NULL":
		*s = HeaderFooterSlot{state: slotClear}
		return nil
	}
	var cfg HeaderFooterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	*s = HeaderFooterSlot{state: slotSet, value: cfg}
	return nil
}

// HeaderFooterGroup holds the three header or footer slots of one
// configuration level. Each slot resolves independently.
type HeaderFooterGroup struct {
	Default HeaderFooterSlot `yaml:"default"`
	First   HeaderFooterSlot `yaml:"first"`
	Even    HeaderFooterSlot `yaml:"even"`
}

// Validate checks every set slot in the group.
func (g HeaderFooterGroup) Validate() error {
	for _, slot := range []HeaderFooterSlot{g.Default, g.First, g.Even} {
		if err := slot.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalYAML decodes the group from its raw mapping. Decoding per key
// keeps explicit null distinguishable from an absent key when the group is
// nested inside a template or section: a null entry appears in the mapping
// with a nil value, an absent key does not appear at all.
func (g *HeaderFooterGroup) UnmarshalYAML(data []byte) error {
	var raw map[string]*HeaderFooterConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	slots := map[string]*HeaderFooterSlot{
		"default": &g.Default,
		"first":   &g.First,
		"even":    &g.Even,
	}
	for key := range raw {
		if _, ok := slots[key]; !ok {
			return fmt.Errorf("unknown header/footer slot %q", key)
		}
	}
	for key, slot := range slots {
		cfg, present := raw[key]
		switch {
		case !present:
			*slot = HeaderFooterSlot{}
		case cfg == nil:
			*slot = HeaderFooterSlot{state: slotClear}
		default:
			*slot = HeaderFooterSlot{state: slotSet, value: *cfg}
		}
	}
	return nil
}

// PageNumbering restarts page numbering for a section. Zero-valued fields
// are unset and inherit.
type PageNumbering struct {
	Start  int    `yaml:"start"`
	Format string `yaml:"format"`
}

// Validate checks the numbering format. Returns nil if p is nil.
func (p *PageNumbering) Validate() error {
	if p == nil {
		return nil
	}
	switch p.Format {
	case "", NumberFormatDecimal, NumberFormatLowerRoman, NumberFormatUpperRoman,
		NumberFormatLowerLetter, NumberFormatUpperLetter:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidNumberFormat, p.Format)
}

// SectionConfig pairs one section's markdown fragment with its overrides.
// All override fields are optional; unset fields inherit from the template
// and the caller-level global style.
type SectionConfig struct {
	Markdown      string            `yaml:"markdown"`
	Style         *Style            `yaml:"style"`
	Page          *PageConfig       `yaml:"page"`
	Headers       HeaderFooterGroup `yaml:"headers"`
	Footers       HeaderFooterGroup `yaml:"footers"`
	PageNumbering *PageNumbering    `yaml:"pageNumbering"`
	BreakType     string            `yaml:"breakType"`
	TitlePage     *bool             `yaml:"titlePage"`
}

// Validate checks the section's override fields.
func (c *SectionConfig) Validate() error {
	if c == nil {
		return nil
	}
	if err := c.Style.Validate(); err != nil {
		return err
	}
	if err := c.Page.Validate(); err != nil {
		return err
	}
	if err := c.Headers.Validate(); err != nil {
		return err
	}
	if err := c.Footers.Validate(); err != nil {
		return err
	}
	if err := c.PageNumbering.Validate(); err != nil {
		return err
	}
	return validateBreakType(c.BreakType)
}

func validateBreakType(bt string) error {
	switch bt {
	case "", BreakNextPage, BreakContinuous, BreakEvenPage, BreakOddPage:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidBreakType, bt)
}

// Template is a section configuration applied as defaults to every section
// before the section's own configuration.
type Template struct {
	Style         *Style            `yaml:"style"`
	Page          *PageConfig       `yaml:"page"`
	Headers       HeaderFooterGroup `yaml:"headers"`
	Footers       HeaderFooterGroup `yaml:"footers"`
	PageNumbering *PageNumbering    `yaml:"pageNumbering"`
	BreakType     string            `yaml:"breakType"`
	TitlePage     *bool             `yaml:"titlePage"`
}

// Validate checks the template's fields. Returns nil if t is nil.
func (t *Template) Validate() error {
	if t == nil {
		return nil
	}
	sec := SectionConfig{
		Style:         t.Style,
		Page:          t.Page,
		Headers:       t.Headers,
		Footers:       t.Footers,
		PageNumbering: t.PageNumbering,
		BreakType:     t.BreakType,
	}
	return sec.Validate()
}

// Input contains conversion parameters. Provide either Markdown (converted
// as a single section) or Sections; Sections wins when both are set.
type Input struct {
	Markdown string          // single-section shorthand
	Sections []SectionConfig // ordered section list
	Style    *Style          // caller-level global style, outermost default
	Template *Template       // per-document template, beneath each section
	TOCTitle string          // title for generated tables of contents
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	templateName   string
	templatePath   string
	highlightStyle string
	tocTitle       string
	now            time.Time
}

// WithTemplate selects a named built-in section template ("default",
// "report") loaded from embedded assets.
func WithTemplate(name string) Option {
	return func(c *Converter) { c.cfg.templateName = name }
}

// WithTemplatePath loads section templates from a directory instead of the
// embedded assets. Template names are resolved to <dir>/<name>.yaml.
func WithTemplatePath(dir string) Option {
	return func(c *Converter) { c.cfg.templatePath = dir }
}

// WithHighlightStyle selects the chroma style used to colour code blocks in
// the docx backend (default "github").
func WithHighlightStyle(name string) Option {
	return func(c *Converter) { c.cfg.highlightStyle = name }
}

// WithTOCTitle overrides the default table-of-contents title.
func WithTOCTitle(title string) Option {
	return func(c *Converter) { c.cfg.tocTitle = title }
}

// WithDate fixes the timestamp used to stamp {date} tokens in headers and
// footers. Intended for reproducible output and tests.
func WithDate(t time.Time) Option {
	return func(c *Converter) { c.cfg.now = t }
}

// WithSerializer replaces the document serialization backend. Passing nil
// disables serialization; Convert then returns only the resolved document.
func WithSerializer(s Serializer) Option {
	return func(c *Converter) {
		c.serializer = s
		c.serializerSet = true
	}
}
