package md2docx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/MohtashamMurshid/md-to-docx/document"
	"github.com/MohtashamMurshid/md-to-docx/internal/assets"
	"github.com/MohtashamMurshid/md-to-docx/internal/convert"
	"github.com/MohtashamMurshid/md-to-docx/internal/docxout"
	"github.com/MohtashamMurshid/md-to-docx/internal/numbering"
	"github.com/MohtashamMurshid/md-to-docx/internal/toc"
	"github.com/MohtashamMurshid/md-to-docx/internal/yamlutil"
)

// Compile-time interface implementation checks.
var (
	_ Serializer    = (*docxout.Serializer)(nil)
	_ assets.Loader = (*assets.EmbeddedLoader)(nil)
	_ assets.Loader = (*assets.DirLoader)(nil)
)

// Serializer is the document-assembly collaborator: it consumes the
// resolved section descriptors and performs the actual binary encoding.
// Errors it returns abort the whole assembly pass.
type Serializer interface {
	Serialize(ctx context.Context, doc *document.Document) ([]byte, error)
}

// Result contains conversion output.
type Result struct {
	// DOCX holds the serialized document; nil when serialization is
	// disabled via WithSerializer(nil).
	DOCX []byte

	// Document is the resolved section-descriptor list handed to the
	// serialization backend, useful for inspection and testing.
	Document *document.Document

	// Diagnostics are non-fatal warnings gathered during the pass, such
	// as an ignored duplicate table-of-contents placeholder.
	Diagnostics []string
}

// Converter orchestrates the markdown-to-docx assembly pipeline.
// Create with NewConverter and reuse across conversions: each Convert call
// is an independent assembly pass with its own registries.
type Converter struct {
	cfg           converterConfig
	md            goldmark.Markdown
	template      *Template
	serializer    Serializer
	serializerSet bool
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTemplate, WithTOCTitle).
// Returns an error if template loading or parsing fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM, // tables, strikethrough, autolinks, task lists
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg.tocTitle == "" {
		c.cfg.tocTitle = DefaultTOCTitle
	}
	if c.cfg.now.IsZero() {
		c.cfg.now = time.Now()
	}

	if err := c.loadTemplate(); err != nil {
		return nil, err
	}

	// Create the docx backend if not injected (e.g., by tests).
	if c.serializer == nil && !c.serializerSet {
		c.serializer = docxout.New(c.cfg.highlightStyle)
	}
	return c, nil
}

// loadTemplate resolves WithTemplate/WithTemplatePath into a Template.
func (c *Converter) loadTemplate() error {
	if c.cfg.templateName == "" && c.cfg.templatePath == "" {
		return nil
	}

	var loader assets.Loader = assets.NewEmbeddedLoader()
	if c.cfg.templatePath != "" {
		dirLoader, err := assets.NewDirLoader(c.cfg.templatePath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTemplatePath, err)
		}
		loader = dirLoader
	}

	name := c.cfg.templateName
	if name == "" {
		name = assets.DefaultTemplateName
	}
	data, err := loader.LoadTemplate(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	}

	var tmpl Template
	if err := yamlutil.UnmarshalStrict(data, &tmpl); err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	if err := tmpl.Validate(); err != nil {
		return err
	}
	c.template = &tmpl
	return nil
}

// Convert runs one assembly pass: each section's markdown is parsed and
// converted against its resolved configuration, sequence ids are allocated
// across sections without collisions, and the first table-of-contents
// placeholder is replaced with generated entries. The context is used for
// cancellation; an abandoned pass produces no partial output.
// Recovers from internal panics to prevent crashes from propagating.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	sections, err := c.normalizeInput(input)
	if err != nil {
		return nil, err
	}

	tmpl := input.Template
	if tmpl == nil {
		tmpl = c.template
	}

	// Registries are scoped to this pass. Sections are processed strictly
	// in supplied order: both the numbering offsets and the heading order
	// depend on it.
	nums := numbering.NewRegistry()
	headings := toc.NewRegistry()
	doc := &document.Document{}

	for i := range sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sec := &sections[i]
		resolved := resolveSection(input.Style, tmpl, sec, c.cfg.now)

		parsed, err := c.parse(ctx, preprocessMarkdown(sec.Markdown))
		if err != nil {
			return nil, err
		}

		doc.Sections = append(doc.Sections, &document.Section{
			Properties: resolved.props,
			Headers:    resolved.headers,
			Footers:    resolved.footers,
			Blocks:     convert.Section(parsed.node, parsed.src, nums, headings),
		})
	}

	title := firstNonEmpty(input.TOCTitle, c.cfg.tocTitle)
	diags := toc.ResolvePlaceholders(doc, headings, title)
	doc.Numbering = nums.Definitions()

	result = &Result{Document: doc, Diagnostics: diags}

	if c.serializer != nil {
		data, serr := c.serializer.Serialize(ctx, doc)
		if serr != nil {
			return nil, fmt.Errorf("%w: %v", ErrSerialize, serr)
		}
		result.DOCX = data
	}
	return result, nil
}

// normalizeInput validates the input at the trust boundary and expands the
// single-markdown shorthand into one section. The core past this point
// assumes validated configuration and never re-checks ranges.
func (c *Converter) normalizeInput(input Input) ([]SectionConfig, error) {
	if len(input.Sections) == 0 && strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyInput
	}
	if err := input.Style.Validate(); err != nil {
		return nil, err
	}
	if err := input.Template.Validate(); err != nil {
		return nil, err
	}
	for i := range input.Sections {
		if err := input.Sections[i].Validate(); err != nil {
			return nil, fmt.Errorf("section %d: %w", i+1, err)
		}
	}
	if len(input.Sections) > 0 {
		return input.Sections, nil
	}
	return []SectionConfig{{Markdown: input.Markdown}}, nil
}

// parsed pairs a syntax tree with the source bytes its segments index into.
type parsed struct {
	node ast.Node
	src  []byte
}

// parse invokes the external markdown parser. Supports context cancellation
// via the goroutine + select pattern since goldmark doesn't take a context;
// parser panics surface as a single wrapped ErrParse.
func (c *Converter) parse(ctx context.Context, markdown string) (parsed, error) {
	if err := ctx.Err(); err != nil {
		return parsed{}, err
	}

	type outcome struct {
		p   parsed
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%w: %v", ErrParse, r)}
			}
		}()
		src := []byte(markdown)
		node := c.md.Parser().Parse(text.NewReader(src))
		done <- outcome{p: parsed{node: node, src: src}}
	}()

	select {
	case <-ctx.Done():
		return parsed{}, ctx.Err()
	case o := <-done:
		return o.p, o.err
	}
}
