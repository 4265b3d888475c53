// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to
// error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-layoutplan/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-layoutplan") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForBrandNotFound returns hints for brand profile loading errors.
func ForBrandNotFound() string {
	return format("pass --brand /path/to/brand.yaml, or omit it to use the default profile")
}

// ForBrandField returns hints for invalid brand profile field values.
func ForBrandField(field string, allowed []string) string {
	if len(allowed) == 0 {
		return ""
	}
	return format(field + " must be one of: " + strings.Join(allowed, ", "))
}

// ForEmptyDocument returns hints for documents with no sectionable content.
func ForEmptyDocument() string {
	return format("the input must contain markdown content beyond front matter")
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
