package hints_test

import (
	"strings"
	"testing"

	"github.com/MohtashamMurshid/md-to-docx/internal/hints"
)

// ---------------------------------------------------------------------------
// TestForConfigNotFound - Suggests --config and the user config location
// ---------------------------------------------------------------------------

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("includes --config suggestion", func(t *testing.T) {
		t.Parallel()

		got := hints.ForConfigNotFound(nil)
		if !strings.Contains(got, "--config") {
			t.Errorf("hint = %q, want mention of --config", got)
		}
	})

	t.Run("includes user config path when searched", func(t *testing.T) {
		t.Parallel()

		paths := []string{
			"report.yaml",
			"/home/user/.config/md-to-docx/report.yaml",
		}
		got := hints.ForConfigNotFound(paths)
		if !strings.Contains(got, "/home/user/.config/md-to-docx/report.yaml") {
			t.Errorf("hint = %q, want user config path", got)
		}
	})

	t.Run("skips paths outside the user config dir", func(t *testing.T) {
		t.Parallel()

		got := hints.ForConfigNotFound([]string{"report.yaml", "report.yml"})
		if strings.Contains(got, "create") {
			t.Errorf("hint = %q, want no create suggestion", got)
		}
	})

	t.Run("formatted with hint prefix", func(t *testing.T) {
		t.Parallel()

		got := hints.ForConfigNotFound(nil)
		if !strings.HasPrefix(got, "\n  hint: ") {
			t.Errorf("hint = %q, want prefix %q", got, "\n  hint: ")
		}
	})
}

// ---------------------------------------------------------------------------
// TestForTemplateNotFound - Lists the available template names
// ---------------------------------------------------------------------------

func TestForTemplateNotFound(t *testing.T) {
	t.Parallel()

	t.Run("lists available templates", func(t *testing.T) {
		t.Parallel()

		got := hints.ForTemplateNotFound([]string{"default", "report"})
		if !strings.Contains(got, "available: default, report") {
			t.Errorf("hint = %q, want available template list", got)
		}
	})

	t.Run("empty list produces no hint", func(t *testing.T) {
		t.Parallel()

		if got := hints.ForTemplateNotFound(nil); got != "" {
			t.Errorf("hint = %q, want empty string", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestForOutputDirectory - Points at parent directory permissions
// ---------------------------------------------------------------------------

func TestForOutputDirectory(t *testing.T) {
	t.Parallel()

	got := hints.ForOutputDirectory()
	if !strings.Contains(got, "writable") {
		t.Errorf("hint = %q, want mention of writability", got)
	}
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("hint = %q, want prefix %q", got, "\n  hint: ")
	}
}
