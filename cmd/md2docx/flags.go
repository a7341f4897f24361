package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across modes.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags holds document style flags.
type styleFlags struct {
	font         string
	fontSize     int
	alignment    string
	lineSpacing  float64
	documentType string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      int
}

// headerFooterFlags holds running header/footer flags.
type headerFooterFlags struct {
	headerText  string
	headerAlign string
	footerText  string
	footerAlign string
	noHeader    bool
	noFooter    bool
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	title string
}

// templateFlags holds section template flags.
type templateFlags struct {
	name string
	path string
}

// convertFlags holds all CLI flags.
type convertFlags struct {
	common       commonFlags
	output       string
	workers      int
	version      bool
	date         string
	highlight    string
	style        styleFlags
	page         pageFlags
	headerFooter headerFooterFlags
	toc          tocFlags
	template     templateFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addStyleFlags adds document style flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.font, "font", "", "font family for body text")
	fs.IntVar(&f.fontSize, "font-size", 0, "paragraph font size in points")
	fs.StringVar(&f.alignment, "alignment", "", "paragraph alignment: left, center, right, justify")
	fs.Float64Var(&f.lineSpacing, "line-spacing", 0, "line spacing multiplier (e.g. 1.15)")
	fs.StringVar(&f.documentType, "doc-type", "", "document type: document, report")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.IntVar(&f.margin, "margin", 0, "uniform page margin in twips (1440 = 1 inch)")
}

// addHeaderFooterFlags adds running header/footer flags to a FlagSet.
func addHeaderFooterFlags(fs *flag.FlagSet, f *headerFooterFlags) {
	fs.StringVar(&f.headerText, "header-text", "", "running header text ({page}, {date} tokens)")
	fs.StringVar(&f.headerAlign, "header-align", "", "header alignment: left, center, right")
	fs.StringVar(&f.footerText, "footer-text", "", "running footer text ({page}, {date} tokens)")
	fs.StringVar(&f.footerAlign, "footer-align", "", "footer alignment: left, center, right")
	fs.BoolVar(&f.noHeader, "no-header", false, "suppress the template header")
	fs.BoolVar(&f.noFooter, "no-footer", false, "suppress the template footer")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.StringVar(&f.title, "toc-title", "", "table of contents heading")
}

// addTemplateFlags adds section template flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.StringVarP(&f.name, "template", "t", "", "section template name (default, report)")
	fs.StringVar(&f.path, "template-path", "", "directory of custom YAML templates")
}

// parseFlags parses CLI flags and returns positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("md2docx", flag.ContinueOnError)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.StringVar(&f.date, "date", "", "date stamped into {date} tokens (default: today)")
	fs.StringVar(&f.highlight, "highlight", "", "code highlight style name")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addPageFlags(fs, &f.page)
	addHeaderFooterFlags(fs, &f.headerFooter)
	addTOCFlags(fs, &f.toc)
	addTemplateFlags(fs, &f.template)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
