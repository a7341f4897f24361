package md2docx

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MohtashamMurshid/md-to-docx/document"
)

// fakeSerializer captures the resolved document instead of encoding it.
type fakeSerializer struct {
	doc  *document.Document
	data []byte
	err  error
}

func (f *fakeSerializer) Serialize(_ context.Context, doc *document.Document) ([]byte, error) {
	f.doc = doc
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func newTestConverter(t *testing.T, opts ...Option) (*Converter, *fakeSerializer) {
	t.Helper()
	fake := &fakeSerializer{data: []byte("docx")}
	c, err := NewConverter(append(opts, WithSerializer(fake))...)
	if err != nil {
		t.Fatalf("NewConverter error: %v", err)
	}
	return c, fake
}

// =============================================================================
// Input validation
// =============================================================================

func TestConvertEmptyInput(t *testing.T) {
	t.Parallel()

	c, _ := newTestConverter(t)

	tests := []struct {
		name  string
		input Input
	}{
		{name: "zero input", input: Input{}},
		{name: "whitespace markdown", input: Input{Markdown: "   \n\t"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := c.Convert(context.Background(), tt.input)
			if !errors.Is(err, ErrEmptyInput) {
				t.Errorf("Convert() error = %v, want ErrEmptyInput", err)
			}
		})
	}
}

func TestConvertValidatesConfiguration(t *testing.T) {
	t.Parallel()

	c, _ := newTestConverter(t)

	_, err := c.Convert(context.Background(), Input{
		Markdown: "hi",
		Style:    &Style{DocumentType: "novel"},
	})
	if !errors.Is(err, ErrInvalidDocumentType) {
		t.Errorf("Convert() error = %v, want ErrInvalidDocumentType", err)
	}

	_, err = c.Convert(context.Background(), Input{
		Sections: []SectionConfig{
			{Markdown: "ok"},
			{Markdown: "bad", BreakType: "sideways"},
		},
	})
	if !errors.Is(err, ErrInvalidBreakType) {
		t.Errorf("Convert() error = %v, want ErrInvalidBreakType", err)
	}
}

// =============================================================================
// End-to-end assembly
// =============================================================================

func TestConvertSingleSection(t *testing.T) {
	t.Parallel()

	c, fake := newTestConverter(t)

	result, err := c.Convert(context.Background(), Input{
		Markdown: "# Title\n\n1. a\n2. b\n",
	})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if string(result.DOCX) != "docx" {
		t.Errorf("DOCX = %q, want serializer output", result.DOCX)
	}

	doc := fake.doc
	if len(doc.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(doc.Sections))
	}

	blocks := doc.Sections[0].Blocks
	h, ok := blocks[0].(*document.Heading)
	if !ok || h.Level != 1 {
		t.Fatalf("blocks[0] = %+v, want level-1 heading", blocks[0])
	}
	lst, ok := blocks[1].(*document.List)
	if !ok || !lst.Ordered {
		t.Fatalf("blocks[1] = %+v, want ordered list", blocks[1])
	}
	if lst.SequenceID != 1 {
		t.Errorf("SequenceID = %d, want 1", lst.SequenceID)
	}
	if len(doc.Numbering) != 1 || doc.Numbering[0].Reference != "ordered-1" {
		t.Errorf("Numbering = %+v, want one definition for ordered-1", doc.Numbering)
	}
}

func TestConvertCrossSectionNumbering(t *testing.T) {
	t.Parallel()

	c, fake := newTestConverter(t)

	_, err := c.Convert(context.Background(), Input{
		Sections: []SectionConfig{
			{Markdown: "1. x\n"},
			{Markdown: "1. y\n"},
		},
	})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	first := fake.doc.Sections[0].Blocks[0].(*document.List)
	second := fake.doc.Sections[1].Blocks[0].(*document.List)
	// Both lists restart at 1 in their own markdown, but their sequence
	// ids must not collide in the shared numbering namespace.
	if first.SequenceID != 1 || second.SequenceID != 2 {
		t.Errorf("sequence ids = %d, %d; want 1, 2", first.SequenceID, second.SequenceID)
	}
	if len(fake.doc.Numbering) != 2 {
		t.Errorf("got %d numbering definitions, want 2", len(fake.doc.Numbering))
	}
}

func TestConvertTOCAcrossSections(t *testing.T) {
	t.Parallel()

	c, fake := newTestConverter(t)

	result, err := c.Convert(context.Background(), Input{
		Sections: []SectionConfig{
			{Markdown: "[TOC]\n\n# One\n"},
			{Markdown: "# Two\n"},
		},
		TOCTitle: "Contents",
	})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("diagnostics = %v, want none", result.Diagnostics)
	}

	blocks := fake.doc.Sections[0].Blocks
	title := blocks[0].(*document.Heading)
	if title.Runs[0].Text != "Contents" {
		t.Errorf("TOC title = %q", title.Runs[0].Text)
	}
	// Title + entries for both sections' headings + the "# One" heading.
	if len(blocks) != 4 {
		t.Fatalf("got %d blocks, want 4: %+v", len(blocks), blocks)
	}
	entryTwo := blocks[2].(*document.Paragraph)
	if entryTwo.Runs[0].Link != "#two" {
		t.Errorf("second entry link = %q, want #two", entryTwo.Runs[0].Link)
	}
}

func TestConvertDuplicateTOCDiagnostic(t *testing.T) {
	t.Parallel()

	c, _ := newTestConverter(t)

	result, err := c.Convert(context.Background(), Input{
		Markdown: "[TOC]\n\n# H\n\n[TOC]\n",
	})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if len(result.Diagnostics) != 1 {
		t.Errorf("diagnostics = %v, want one warning", result.Diagnostics)
	}
}

func TestConvertSectionProperties(t *testing.T) {
	t.Parallel()

	c, fake := newTestConverter(t)

	_, err := c.Convert(context.Background(), Input{
		Sections: []SectionConfig{{
			Markdown: "text",
			Page:     &PageConfig{Size: PageSizeLetter, Orientation: OrientationLandscape},
			Footers: HeaderFooterGroup{
				Default: SetHeaderFooter(HeaderFooterConfig{Text: "{page}"}),
			},
		}},
	})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	sec := fake.doc.Sections[0]
	if sec.Properties.Page.WidthTwips != 15840 {
		t.Errorf("width = %d, want landscape letter", sec.Properties.Page.WidthTwips)
	}
	if sec.Footers.Default == nil || sec.Footers.Default.Text != "{page}" {
		t.Errorf("footer = %+v", sec.Footers.Default)
	}
}

// =============================================================================
// Templates
// =============================================================================

func TestConvertWithEmbeddedTemplate(t *testing.T) {
	t.Parallel()

	c, fake := newTestConverter(t, WithTemplate("report"), WithDate(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))

	_, err := c.Convert(context.Background(), Input{Markdown: "# R\n"})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	sec := fake.doc.Sections[0]
	if sec.Properties.Style.DocumentType != DocumentTypeReport {
		t.Errorf("DocumentType = %q, want report", sec.Properties.Style.DocumentType)
	}
	if !sec.Properties.TitlePage {
		t.Error("report template should enable the title page")
	}
	if sec.Headers.Default == nil || sec.Headers.Default.Text != "2024-01-02" {
		t.Errorf("header = %+v, want stamped date", sec.Headers.Default)
	}
}

func TestNewConverterUnknownTemplate(t *testing.T) {
	t.Parallel()

	_, err := NewConverter(WithTemplate("missing"))
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("NewConverter error = %v, want ErrTemplateNotFound", err)
	}
}

func TestNewConverterInvalidTemplatePath(t *testing.T) {
	t.Parallel()

	_, err := NewConverter(WithTemplatePath(filepath.Join(t.TempDir(), "missing")))
	if !errors.Is(err, ErrInvalidTemplatePath) {
		t.Errorf("NewConverter error = %v, want ErrInvalidTemplatePath", err)
	}
}

func TestConvertTemplateFromDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tmpl := "style:\n  fontFamily: Georgia\nfooters:\n  default:\n    text: custom\n"
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(tmpl), 0o600); err != nil {
		t.Fatalf("writing template: %v", err)
	}

	c, fake := newTestConverter(t, WithTemplatePath(dir), WithTemplate("custom"))
	if _, err := c.Convert(context.Background(), Input{Markdown: "x"}); err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	sec := fake.doc.Sections[0]
	if sec.Properties.Style.FontFamily != "Georgia" {
		t.Errorf("FontFamily = %q, want template value", sec.Properties.Style.FontFamily)
	}
	if sec.Footers.Default == nil || sec.Footers.Default.Text != "custom" {
		t.Errorf("footer = %+v, want template footer", sec.Footers.Default)
	}
}

func TestConvertInputTemplateOverridesLoaded(t *testing.T) {
	t.Parallel()

	c, fake := newTestConverter(t, WithTemplate("report"))

	_, err := c.Convert(context.Background(), Input{
		Markdown: "x",
		Template: &Template{Style: &Style{FontFamily: "Courier"}},
	})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	sec := fake.doc.Sections[0]
	if sec.Properties.Style.FontFamily != "Courier" {
		t.Errorf("FontFamily = %q, want input template", sec.Properties.Style.FontFamily)
	}
	// The loaded report template is fully replaced, not merged.
	if sec.Properties.Style.DocumentType == DocumentTypeReport {
		t.Error("input template should replace the loaded template")
	}
}

// =============================================================================
// Serialization and cancellation
// =============================================================================

func TestConvertSerializerError(t *testing.T) {
	t.Parallel()

	fake := &fakeSerializer{err: errors.New("boom")}
	c, err := NewConverter(WithSerializer(fake))
	if err != nil {
		t.Fatalf("NewConverter error: %v", err)
	}

	_, err = c.Convert(context.Background(), Input{Markdown: "x"})
	if !errors.Is(err, ErrSerialize) {
		t.Errorf("Convert() error = %v, want ErrSerialize", err)
	}
}

func TestConvertSerializationDisabled(t *testing.T) {
	t.Parallel()

	c, err := NewConverter(WithSerializer(nil))
	if err != nil {
		t.Fatalf("NewConverter error: %v", err)
	}

	result, err := c.Convert(context.Background(), Input{Markdown: "x"})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if result.DOCX != nil {
		t.Errorf("DOCX = %v, want nil with serialization disabled", result.DOCX)
	}
	if result.Document == nil {
		t.Error("Document should still be populated")
	}
}

func TestConvertCancelledContext(t *testing.T) {
	t.Parallel()

	c, _ := newTestConverter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Convert(ctx, Input{Markdown: "x"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestConvertTOCTitlePrecedence(t *testing.T) {
	t.Parallel()

	c, fake := newTestConverter(t, WithTOCTitle("Converter Title"))

	// Input title wins over the converter option.
	_, err := c.Convert(context.Background(), Input{
		Markdown: "[TOC]\n\n# H\n",
		TOCTitle: "Input Title",
	})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	title := fake.doc.Sections[0].Blocks[0].(*document.Heading)
	if title.Runs[0].Text != "Input Title" {
		t.Errorf("title = %q, want input title", title.Runs[0].Text)
	}

	// Without an input title, the converter option applies.
	_, err = c.Convert(context.Background(), Input{Markdown: "[TOC]\n\n# H\n"})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	title = fake.doc.Sections[0].Blocks[0].(*document.Heading)
	if title.Runs[0].Text != "Converter Title" {
		t.Errorf("title = %q, want converter option title", title.Runs[0].Text)
	}
}
