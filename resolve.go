package md2docx

import (
	"strings"
	"time"

	"github.com/MohtashamMurshid/md-to-docx/document"
	"github.com/MohtashamMurshid/md-to-docx/internal/dateutil"
)

// Built-in style defaults, applied as the outermost configuration level
// beneath the caller's global style. Sizes in points, spacing in twips.
var defaultStyle = Style{
	DocumentType:        DocumentTypeDocument,
	FontFamily:          "Calibri",
	TitleSize:           28,
	Heading1Size:        16,
	Heading2Size:        14,
	Heading3Size:        13,
	Heading4Size:        12,
	Heading5Size:        11,
	Heading6Size:        11,
	ParagraphSize:       11,
	ListItemSize:        11,
	CodeBlockSize:       10,
	BlockquoteSize:      11,
	TOCSize:             11,
	LineSpacing:         1.15,
	ParagraphSpacing:    160,
	HeadingSpacing:      240,
	ParagraphAlignment:  AlignLeft,
	BlockquoteAlignment: AlignLeft,
}

// Page geometry defaults.
const (
	defaultMarginTwips     = 1440 // one inch
	defaultHeaderFooterPt  = 10
	defaultHeaderAlignment = AlignCenter
)

// pageDimensions holds portrait page sizes in twips.
var pageDimensions = map[string][2]int{
	PageSizeA4:     {11906, 16838},
	PageSizeLetter: {12240, 15840},
	PageSizeLegal:  {12240, 20160},
}

// resolvedSection is one section's fully merged configuration, owned
// exclusively by its section descriptor after resolution.
type resolvedSection struct {
	props   document.SectionProperties
	headers document.HeaderFooterSet
	footers document.HeaderFooterSet
}

// resolveSection merges, in order of increasing precedence: built-in
// defaults, the caller-level global style, the template, and the section's
// own overrides. The merge is pure: identical inputs always produce
// identical output, and no input object is mutated.
func resolveSection(global *Style, tmpl *Template, sec *SectionConfig, now time.Time) resolvedSection {
	if tmpl == nil {
		tmpl = &Template{}
	}
	if sec == nil {
		sec = &SectionConfig{}
	}

	style := defaultStyle
	style = mergeStyle(style, normalizeStyle(global))
	style = mergeStyle(style, normalizeStyle(tmpl.Style))
	style = mergeStyle(style, normalizeStyle(sec.Style))

	page := mergePage(mergePage(nil, tmpl.Page), sec.Page)

	var rs resolvedSection
	rs.props = document.SectionProperties{
		Page:      resolvePageProperties(page),
		Numbering: mergePageNumbering(tmpl.PageNumbering, sec.PageNumbering),
		BreakType: firstNonEmpty(sec.BreakType, tmpl.BreakType, BreakNextPage),
		TitlePage: resolveBool(tmpl.TitlePage, sec.TitlePage),
		Style:     toStyleProperties(style),
	}
	rs.headers = resolveGroup(tmpl.Headers, sec.Headers, now)
	rs.footers = resolveGroup(tmpl.Footers, sec.Footers, now)
	return rs
}

// normalizeStyle folds deprecated alias fields into their canonical names
// so merge logic only ever sees canonical fields. The modern field wins
// when both are set. Returns a copy; the input is never modified.
func normalizeStyle(s *Style) *Style {
	if s == nil {
		return nil
	}
	out := *s
	if out.ParagraphAlignment == "" && out.ParagraphAligment != "" {
		out.ParagraphAlignment = out.ParagraphAligment
	}
	out.ParagraphAligment = ""
	return &out
}

// mergeStyle shallow-merges over's set fields onto base, per key. A section
// overriding one field never loses sibling fields set at an outer level.
func mergeStyle(base Style, over *Style) Style {
	if over == nil {
		return base
	}
	out := base
	setString(&out.DocumentType, over.DocumentType)
	setString(&out.FontFamily, over.FontFamily)
	setInt(&out.TitleSize, over.TitleSize)
	setInt(&out.Heading1Size, over.Heading1Size)
	setInt(&out.Heading2Size, over.Heading2Size)
	setInt(&out.Heading3Size, over.Heading3Size)
	setInt(&out.Heading4Size, over.Heading4Size)
	setInt(&out.Heading5Size, over.Heading5Size)
	setInt(&out.Heading6Size, over.Heading6Size)
	setInt(&out.ParagraphSize, over.ParagraphSize)
	setInt(&out.ListItemSize, over.ListItemSize)
	setInt(&out.CodeBlockSize, over.CodeBlockSize)
	setInt(&out.BlockquoteSize, over.BlockquoteSize)
	setInt(&out.TOCSize, over.TOCSize)
	if over.LineSpacing != 0 {
		out.LineSpacing = over.LineSpacing
	}
	setInt(&out.ParagraphSpacing, over.ParagraphSpacing)
	setInt(&out.HeadingSpacing, over.HeadingSpacing)
	setString(&out.ParagraphAlignment, over.ParagraphAlignment)
	setString(&out.BlockquoteAlignment, over.BlockquoteAlignment)
	return out
}

// mergePage shallow-merges page settings per key, margins per side.
func mergePage(base, over *PageConfig) *PageConfig {
	if over == nil {
		if base == nil {
			return nil
		}
		out := *base
		if base.Margins != nil {
			m := *base.Margins
			out.Margins = &m
		}
		return &out
	}
	out := PageConfig{}
	if base != nil {
		out = *base
		if base.Margins != nil {
			m := *base.Margins
			out.Margins = &m
		}
	}
	setString(&out.Size, over.Size)
	setString(&out.Orientation, over.Orientation)
	if over.Margins != nil {
		if out.Margins == nil {
			out.Margins = &PageMargins{}
		}
		setInt(&out.Margins.Top, over.Margins.Top)
		setInt(&out.Margins.Right, over.Margins.Right)
		setInt(&out.Margins.Bottom, over.Margins.Bottom)
		setInt(&out.Margins.Left, over.Margins.Left)
	}
	return &out
}

// resolvePageProperties turns the merged page settings into concrete twips.
func resolvePageProperties(p *PageConfig) document.PageProperties {
	size := PageSizeA4
	orientation := OrientationPortrait
	margins := document.MarginProperties{
		Top: defaultMarginTwips, Right: defaultMarginTwips,
		Bottom: defaultMarginTwips, Left: defaultMarginTwips,
	}
	if p != nil {
		if p.Size != "" {
			size = strings.ToLower(p.Size)
		}
		if p.Orientation != "" {
			orientation = strings.ToLower(p.Orientation)
		}
		if p.Margins != nil {
			setInt(&margins.Top, p.Margins.Top)
			setInt(&margins.Right, p.Margins.Right)
			setInt(&margins.Bottom, p.Margins.Bottom)
			setInt(&margins.Left, p.Margins.Left)
		}
	}
	dims, ok := pageDimensions[size]
	if !ok {
		dims = pageDimensions[PageSizeA4]
	}
	w, h := dims[0], dims[1]
	if orientation == OrientationLandscape {
		w, h = h, w
	}
	return document.PageProperties{
		WidthTwips:  w,
		HeightTwips: h,
		Orientation: orientation,
		Margins:     margins,
	}
}

// mergePageNumbering shallow-merges per key; nil when neither level sets it.
func mergePageNumbering(base, over *PageNumbering) *document.PageNumberProperties {
	if base == nil && over == nil {
		return nil
	}
	out := PageNumbering{}
	if base != nil {
		out = *base
	}
	if over != nil {
		setInt(&out.Start, over.Start)
		setString(&out.Format, over.Format)
	}
	if out.Start == 0 {
		out.Start = 1
	}
	if out.Format == "" {
		out.Format = NumberFormatDecimal
	}
	return &document.PageNumberProperties{Start: out.Start, Format: out.Format}
}

// resolveGroup resolves the three header/footer slots independently. The
// template's slot is applied against an empty base first, then the
// section's slot against the template's result, preserving the
// absent/null/value distinction at both levels.
func resolveGroup(tmpl, sec HeaderFooterGroup, now time.Time) document.HeaderFooterSet {
	return document.HeaderFooterSet{
		Default: finalizeSlot(applySlot(applySlot(nil, tmpl.Default), sec.Default), now),
		First:   finalizeSlot(applySlot(applySlot(nil, tmpl.First), sec.First), now),
		Even:    finalizeSlot(applySlot(applySlot(nil, tmpl.Even), sec.Even), now),
	}
}

// applySlot implements the three-valued slot semantics: inherit passes the
// inherited value through unchanged, clear suppresses it entirely, and set
// shallow-merges the explicit configuration over the inherited one.
func applySlot(inherited *HeaderFooterConfig, slot HeaderFooterSlot) *HeaderFooterConfig {
	switch {
	case slot.IsClear():
		return nil
	case slot.IsSet():
		out := HeaderFooterConfig{}
		if inherited != nil {
			out = *inherited
		}
		cfg, _ := slot.Config()
		setString(&out.Text, cfg.Text)
		setString(&out.Alignment, cfg.Alignment)
		setInt(&out.FontSize, cfg.FontSize)
		return &out
	default:
		return inherited
	}
}

// finalizeSlot stamps {date} tokens and applies display defaults.
func finalizeSlot(cfg *HeaderFooterConfig, now time.Time) *document.HeaderFooter {
	if cfg == nil {
		return nil
	}
	alignment := strings.ToLower(cfg.Alignment)
	if alignment == "" {
		alignment = defaultHeaderAlignment
	}
	size := cfg.FontSize
	if size == 0 {
		size = defaultHeaderFooterPt
	}
	return &document.HeaderFooter{
		Text:      dateutil.ExpandTokens(cfg.Text, now),
		Alignment: alignment,
		SizePt:    size,
	}
}

// toStyleProperties converts the merged style into the backend contract.
func toStyleProperties(s Style) document.StyleProperties {
	return document.StyleProperties{
		DocumentType: strings.ToLower(s.DocumentType),
		FontFamily:   s.FontFamily,
		TitleSizePt:  s.TitleSize,
		HeadingSizesPt: [6]int{
			s.Heading1Size, s.Heading2Size, s.Heading3Size,
			s.Heading4Size, s.Heading5Size, s.Heading6Size,
		},
		ParagraphSizePt:     s.ParagraphSize,
		ListItemSizePt:      s.ListItemSize,
		CodeBlockSizePt:     s.CodeBlockSize,
		BlockquoteSizePt:    s.BlockquoteSize,
		TOCSizePt:           s.TOCSize,
		LineSpacing:         s.LineSpacing,
		ParagraphSpacing:    s.ParagraphSpacing,
		HeadingSpacing:      s.HeadingSpacing,
		ParagraphAlignment:  strings.ToLower(s.ParagraphAlignment),
		BlockquoteAlignment: strings.ToLower(s.BlockquoteAlignment),
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolveBool(base, over *bool) bool {
	if over != nil {
		return *over
	}
	if base != nil {
		return *base
	}
	return false
}
