// Package md2docx converts Markdown documents into Word (.docx) files.
//
// # Quick Start
//
// Create a converter, convert markdown, and write the result:
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", result.DOCX, 0644)
//
// The result also carries the resolved document model (result.Document) and
// any non-fatal diagnostics gathered during the pass.
//
// # Conversion Pipeline
//
// Each Convert call is one assembly pass:
//
//  1. Markdown preprocessing (line normalization)
//  2. Parsing via Goldmark (GFM) and syntax-tree to model conversion
//  3. Per-section configuration resolution (global style, template, section
//     overrides, with three-valued header/footer slot semantics)
//  4. Ordered-list sequence id allocation across sections
//  5. Table-of-contents placeholder resolution against collected headings
//  6. Serialization to .docx via go-docx
//
// # Sections and Templates
//
// A document may be assembled from multiple sections, each pairing a
// markdown fragment with page, header/footer, and numbering overrides:
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Sections: []md2docx.SectionConfig{
//	        {Markdown: intro, TitlePage: &yes},
//	        {Markdown: body, Footers: md2docx.HeaderFooterGroup{
//	            Default: md2docx.SetHeaderFooter(md2docx.HeaderFooterConfig{Text: "Page {page}"}),
//	        }},
//	    },
//	    Template: tmpl,
//	})
//
// A template supplies defaults beneath every section. Built-in templates
// ("default", "report") are selected with WithTemplate; a directory of
// custom YAML templates with WithTemplatePath.
//
// # Markers
//
// Inside markdown, a standalone [TOC] paragraph marks where the generated
// table of contents is inserted (once per document), a standalone
// [PAGEBREAK] paragraph or \pagebreak line forces a page break, and an HTML
// comment of the form <!-- comment: note --> becomes a visible review
// comment in the output.
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool:
//
//	pool := md2docx.NewConverterPool(4)
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	defer pool.Release(conv)
package md2docx
