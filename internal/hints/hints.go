// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/md-to-docx") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForTemplateNotFound returns hints listing the available template names.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

func format(hint string) string {
	return "\n  hint: " + hint
}
