package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2docx "github.com/MohtashamMurshid/md-to-docx"
	"github.com/MohtashamMurshid/md-to-docx/internal/config"
)

// defaultSectionsOutput names the assembled document when no output path
// is given in sections mode.
const defaultSectionsOutput = "document.docx"

// runSections assembles one document from the config's section list. Each
// listed markdown file becomes a section with its own overrides.
func runSections(ctx context.Context, flags *convertFlags, cfg *config.Config, opts []md2docx.Option, env *Environment) error {
	start := time.Now()

	sections := make([]md2docx.SectionConfig, 0, len(cfg.Sections))
	for i, sf := range cfg.Sections {
		if sf.File == "" {
			return fmt.Errorf("sections[%d]: missing file", i)
		}
		content, err := os.ReadFile(sf.File) // #nosec G304 -- config-listed path
		if err != nil {
			return fmt.Errorf("sections[%d]: %w: %v", i, ErrReadMarkdown, err)
		}
		sec := sf.SectionConfig(string(content))
		cfg.ApplyDocumentDefaults(&sec)
		sections = append(sections, sec)
	}

	conv, err := md2docx.NewConverter(opts...)
	if err != nil {
		return templateNotFoundHint(err)
	}

	result, err := conv.Convert(ctx, md2docx.Input{
		Sections: sections,
		Style:    cfg.Style,
		TOCTitle: cfg.TOC.Title,
	})
	if err != nil {
		return err
	}

	outPath := sectionsOutputPath(flags.output, cfg)
	if err := writeDOCX(outPath, result.DOCX); err != nil {
		return err
	}

	for _, d := range result.Diagnostics {
		fmt.Fprintf(env.Stderr, "warning: %s\n", d)
	}
	if !flags.common.quiet {
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "%d section(s) -> %s (%v)\n",
				len(sections), outPath, time.Since(start).Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", outPath)
		}
	}
	return nil
}

// sectionsOutputPath picks the assembled document's path: explicit file,
// directory from flag or config, else the default name in the working dir.
func sectionsOutputPath(flagOutput string, cfg *config.Config) string {
	out := flagOutput
	if out == "" {
		out = cfg.Output.DefaultDir
	}
	if out == "" {
		return defaultSectionsOutput
	}
	if strings.HasSuffix(out, ".docx") {
		return out
	}
	return filepath.Join(out, defaultSectionsOutput)
}
