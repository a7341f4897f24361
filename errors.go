package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput = errors.New("input must carry markdown content or sections")
	ErrParse      = errors.New("markdown parsing failed")
	ErrSerialize  = errors.New("document serialization failed")

	// Style validation errors.
	ErrInvalidDocumentType = errors.New("invalid document type")
	ErrInvalidAlignment    = errors.New("invalid alignment")
	ErrInvalidLineSpacing  = errors.New("invalid line spacing")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Section validation errors.
	ErrInvalidBreakType    = errors.New("invalid section break type")
	ErrInvalidNumberFormat = errors.New("invalid page number format")

	// Template loading errors.
	ErrTemplateNotFound    = errors.New("template not found")
	ErrInvalidTemplatePath = errors.New("invalid template path")
	ErrTemplateParse       = errors.New("failed to parse template")
)
