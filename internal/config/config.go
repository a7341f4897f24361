// Package config loads the CLI's YAML configuration. It maps the file
// surface onto the library's public configuration types; range validation
// happens here, at the trust boundary, before the core runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2docx "github.com/MohtashamMurshid/md-to-docx"
	"github.com/MohtashamMurshid/md-to-docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTOCTitleLength   = 100
	MaxHeaderTextLength = 500
	MaxTemplateLength   = 100
	MaxFontLength       = 100
)

// appDirName is the subdirectory searched under the user config directory.
const appDirName = "md-to-docx"

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Template TemplateConfig `yaml:"template"`
	TOC      TOCConfig      `yaml:"toc"`
	Code     CodeConfig     `yaml:"code"`

	// Document-level settings. Style sits beneath the section template in
	// the resolution order; page, numbering, and header settings are filled
	// into sections that leave them unset, so they win over the template.
	Style         *md2docx.Style            `yaml:"style"`
	Page          *md2docx.PageConfig       `yaml:"page"`
	Headers       md2docx.HeaderFooterGroup `yaml:"headers"`
	Footers       md2docx.HeaderFooterGroup `yaml:"footers"`
	PageNumbering *md2docx.PageNumbering    `yaml:"pageNumbering"`

	// Sections assembles the output from multiple markdown files, each
	// with optional per-section overrides. Empty = single-input mode.
	Sections []SectionFile `yaml:"sections"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// TemplateConfig selects a section template.
type TemplateConfig struct {
	Name string `yaml:"name"` // Built-in or custom template name
	Path string `yaml:"path"` // Directory of custom templates (empty = embedded)
}

// TOCConfig configures the generated table of contents.
type TOCConfig struct {
	Title string `yaml:"title"`
}

// CodeConfig configures code block rendering.
type CodeConfig struct {
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name
}

// SectionFile pairs one markdown file with per-section overrides.
type SectionFile struct {
	File          string                    `yaml:"file"`
	Style         *md2docx.Style            `yaml:"style"`
	Page          *md2docx.PageConfig       `yaml:"page"`
	Headers       md2docx.HeaderFooterGroup `yaml:"headers"`
	Footers       md2docx.HeaderFooterGroup `yaml:"footers"`
	PageNumbering *md2docx.PageNumbering    `yaml:"pageNumbering"`
	BreakType     string                    `yaml:"breakType"`
	TitlePage     *bool                     `yaml:"titlePage"`
}

// SectionConfig converts the file entry into the library's section type
// with the given markdown content.
func (s SectionFile) SectionConfig(markdown string) md2docx.SectionConfig {
	return md2docx.SectionConfig{
		Markdown:      markdown,
		Style:         s.Style,
		Page:          s.Page,
		Headers:       s.Headers,
		Footers:       s.Footers,
		PageNumbering: s.PageNumbering,
		BreakType:     s.BreakType,
		TitlePage:     s.TitlePage,
	}
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchedPaths returns the paths LoadConfig would try for a config name,
// for use in error hints.
func SearchedPaths(name string) []string {
	paths := []string{name + ".yaml", name + ".yml"}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range []string{".yaml", ".yml"} {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name: current directory
// first, then the user config directory, trying .yaml then .yml.
func resolveConfigPath(name string) (string, error) {
	for _, p := range SearchedPaths(name) {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (searched %s)", ErrConfigNotFound, name,
		strings.Join(SearchedPaths(name), ", "))
}

// Validate applies field-length limits and delegates range checks to the
// library's validators. This is the CLI's trust boundary: conversion
// assumes validated configuration.
func (c *Config) Validate() error {
	if len(c.TOC.Title) > MaxTOCTitleLength {
		return fmt.Errorf("%w: toc.title (max %d)", ErrFieldTooLong, MaxTOCTitleLength)
	}
	if len(c.Template.Name) > MaxTemplateLength {
		return fmt.Errorf("%w: template.name (max %d)", ErrFieldTooLong, MaxTemplateLength)
	}
	if c.Style != nil && len(c.Style.FontFamily) > MaxFontLength {
		return fmt.Errorf("%w: style.fontFamily (max %d)", ErrFieldTooLong, MaxFontLength)
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
	for i, sec := range c.Sections {
		probe := sec.SectionConfig("")
		if err := probe.Validate(); err != nil {
			return fmt.Errorf("sections[%d]: %w", i, err)
		}
		if err := validateHeaderTexts(sec.Headers, sec.Footers); err != nil {
			return fmt.Errorf("sections[%d]: %w", i, err)
		}
	}
	return validateHeaderTexts(c.Headers, c.Footers)
}

func validateHeaderTexts(groups ...md2docx.HeaderFooterGroup) error {
	for _, g := range groups {
		for _, slot := range []md2docx.HeaderFooterSlot{g.Default, g.First, g.Even} {
			if cfg, ok := slot.Config(); ok && len(cfg.Text) > MaxHeaderTextLength {
				return fmt.Errorf("%w: header/footer text (max %d)", ErrFieldTooLong, MaxHeaderTextLength)
			}
		}
	}
	return nil
}

// ApplyDocumentDefaults fills the section's unset override fields from the
// document-level settings. Fields the section specifies are left alone, so
// per-section configuration always wins over the document level.
func (c *Config) ApplyDocumentDefaults(sec *md2docx.SectionConfig) {
	if sec.Page == nil {
		sec.Page = c.Page
	}
	if sec.PageNumbering == nil {
		sec.PageNumbering = c.PageNumbering
	}
	fillGroup(&sec.Headers, c.Headers)
	fillGroup(&sec.Footers, c.Footers)
}

func fillGroup(dst *md2docx.HeaderFooterGroup, src md2docx.HeaderFooterGroup) {
	fillSlot(&dst.Default, src.Default)
	fillSlot(&dst.First, src.First)
	fillSlot(&dst.Even, src.Even)
}

// fillSlot copies src into dst only when dst still inherits.
func fillSlot(dst *md2docx.HeaderFooterSlot, src md2docx.HeaderFooterSlot) {
	if !dst.IsSet() && !dst.IsClear() {
		*dst = src
	}
}
