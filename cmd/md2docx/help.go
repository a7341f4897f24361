package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to DOCX.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir")
	fmt.Fprintln(w, "           or a sections list)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Template:")
	fmt.Fprintln(w, "  -t, --template <name>     Section template: default, report")
	fmt.Fprintln(w, "      --template-path <dir> Directory of custom YAML templates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Style:")
	fmt.Fprintln(w, "      --font <s>            Font family for body text")
	fmt.Fprintln(w, "      --font-size <n>       Paragraph font size in points")
	fmt.Fprintln(w, "      --alignment <s>       Paragraph alignment: left, center, right, justify")
	fmt.Fprintln(w, "      --line-spacing <f>    Line spacing multiplier (e.g. 1.15)")
	fmt.Fprintln(w, "      --doc-type <s>        Document type: document, report")
	fmt.Fprintln(w, "      --highlight <s>       Code highlight style (default: github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <n>          Uniform margin in twips (1440 = 1 inch)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Headers & Footers:")
	fmt.Fprintln(w, "      --header-text <s>     Running header text ({page}, {date} tokens)")
	fmt.Fprintln(w, "      --header-align <s>    Header alignment: left, center, right")
	fmt.Fprintln(w, "      --footer-text <s>     Running footer text")
	fmt.Fprintln(w, "      --footer-align <s>    Footer alignment")
	fmt.Fprintln(w, "      --no-header           Suppress the template header")
	fmt.Fprintln(w, "      --no-footer           Suppress the template footer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc-title <s>       Heading for generated [TOC] sections")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --date <s>            Date stamped into {date} tokens (YYYY-MM-DD)")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}
