package main

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Usage text covers the flag surface
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	wantFragments := []string{
		"Usage: md2docx",
		"--config",
		"--output",
		"--workers",
		"--template",
		"--font",
		"--page-size",
		"--header-text",
		"--no-footer",
		"--toc-title",
		"--date",
		"--highlight",
		"--version",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(out, frag) {
			t.Errorf("usage output missing %q", frag)
		}
	}
}
