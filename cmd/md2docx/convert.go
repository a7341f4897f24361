package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	md2docx "github.com/MohtashamMurshid/md-to-docx"
	"github.com/MohtashamMurshid/md-to-docx/internal/assets"
	"github.com/MohtashamMurshid/md-to-docx/internal/config"
	"github.com/MohtashamMurshid/md-to-docx/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteDOCX    = errors.New("failed to write DOCX file")
	ErrInvalidDate  = errors.New("invalid date (want YYYY-MM-DD)")
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, poolSize int, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err,
					hints.ForConfigNotFound(config.SearchedPaths(flags.common.config)))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}

	opts, err := converterOptions(flags, cfg, env)
	if err != nil {
		return err
	}

	// A sections list in the config assembles one document from many files.
	if len(cfg.Sections) > 0 {
		return runSections(ctx, flags, cfg, opts, env)
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	pool := newConverterPool(poolSize, opts...)
	defer pool.Close()

	var baseSection md2docx.SectionConfig
	cfg.ApplyDocumentDefaults(&baseSection)
	base := batchInput{
		style:    cfg.Style,
		tocTitle: cfg.TOC.Title,
		section:  baseSection,
	}

	results := convertBatch(ctx, pool, files, base)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	// Template flags
	if flags.template.name != "" {
		cfg.Template.Name = flags.template.name
	}
	if flags.template.path != "" {
		cfg.Template.Path = flags.template.path
	}

	// TOC flags
	if flags.toc.title != "" {
		cfg.TOC.Title = flags.toc.title
	}

	// Highlight flag
	if flags.highlight != "" {
		cfg.Code.HighlightStyle = flags.highlight
	}

	// Style flags
	if hasStyleFlags(flags.style) {
		if cfg.Style == nil {
			cfg.Style = &md2docx.Style{}
		}
		if flags.style.font != "" {
			cfg.Style.FontFamily = flags.style.font
		}
		if flags.style.fontSize > 0 {
			cfg.Style.ParagraphSize = flags.style.fontSize
		}
		if flags.style.alignment != "" {
			cfg.Style.ParagraphAlignment = flags.style.alignment
		}
		if flags.style.lineSpacing > 0 {
			cfg.Style.LineSpacing = flags.style.lineSpacing
		}
		if flags.style.documentType != "" {
			cfg.Style.DocumentType = flags.style.documentType
		}
	}

	// Page flags
	if hasPageFlags(flags.page) {
		if cfg.Page == nil {
			cfg.Page = &md2docx.PageConfig{}
		}
		if flags.page.size != "" {
			cfg.Page.Size = flags.page.size
		}
		if flags.page.orientation != "" {
			cfg.Page.Orientation = flags.page.orientation
		}
		if flags.page.margin > 0 {
			m := flags.page.margin
			cfg.Page.Margins = &md2docx.PageMargins{Top: m, Bottom: m, Left: m, Right: m}
		}
	}

	// Header/footer flags
	if flags.headerFooter.headerText != "" {
		cfg.Headers.Default = md2docx.SetHeaderFooter(md2docx.HeaderFooterConfig{
			Text:      flags.headerFooter.headerText,
			Alignment: flags.headerFooter.headerAlign,
		})
	}
	if flags.headerFooter.footerText != "" {
		cfg.Footers.Default = md2docx.SetHeaderFooter(md2docx.HeaderFooterConfig{
			Text:      flags.headerFooter.footerText,
			Alignment: flags.headerFooter.footerAlign,
		})
	}
	if flags.headerFooter.noHeader {
		cfg.Headers.Default = md2docx.ClearHeaderFooter()
	}
	if flags.headerFooter.noFooter {
		cfg.Footers.Default = md2docx.ClearHeaderFooter()
	}

	// Re-validate: flag values go through the same gate as file values.
	return cfg.Validate()
}

func hasStyleFlags(f styleFlags) bool {
	return f.font != "" || f.fontSize > 0 || f.alignment != "" ||
		f.lineSpacing > 0 || f.documentType != ""
}

func hasPageFlags(f pageFlags) bool {
	return f.size != "" || f.orientation != "" || f.margin > 0
}

// converterOptions builds library options from the merged configuration.
func converterOptions(flags *convertFlags, cfg *config.Config, env *Environment) ([]md2docx.Option, error) {
	var opts []md2docx.Option
	if cfg.Template.Name != "" {
		opts = append(opts, md2docx.WithTemplate(cfg.Template.Name))
	}
	if cfg.Template.Path != "" {
		opts = append(opts, md2docx.WithTemplatePath(cfg.Template.Path))
	}
	if cfg.TOC.Title != "" {
		opts = append(opts, md2docx.WithTOCTitle(cfg.TOC.Title))
	}
	if cfg.Code.HighlightStyle != "" {
		opts = append(opts, md2docx.WithHighlightStyle(cfg.Code.HighlightStyle))
	}

	now := env.Now()
	if flags.date != "" {
		t, err := time.Parse("2006-01-02", flags.date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, flags.date)
		}
		now = t
	}
	opts = append(opts, md2docx.WithDate(now))

	return opts, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// templateNotFoundHint appends the available template names when a named
// template fails to resolve.
func templateNotFoundHint(err error) error {
	if !errors.Is(err, md2docx.ErrTemplateNotFound) {
		return err
	}
	return fmt.Errorf("%w%s", err, hints.ForTemplateNotFound(assets.Available()))
}
