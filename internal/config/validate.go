package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Report formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatConsole  = "console"
)

// ValidFormats lists the accepted format names, including aliases.
var ValidFormats = []string{FormatHTML, FormatMarkdown, "md", FormatConsole}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for
// non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if err := validateFormat("format", cfg.Format); err != nil {
		return nil, err
	}

	if strings.ContainsAny(cfg.Title, "\r\n") {
		return nil, &ValidationError{Field: "title", Message: "must be a single line"}
	}

	if cfg.Output != "" && isMarkdownPath(cfg.Output) {
		warnings = append(warnings,
			fmt.Sprintf("output %q has a Markdown extension but is only used for HTML reports", cfg.Output))
	}
	if cfg.SummaryFile != "" && !isMarkdownPath(cfg.SummaryFile) {
		warnings = append(warnings,
			fmt.Sprintf("summary_file %q does not have a Markdown extension", cfg.SummaryFile))
	}

	return warnings, nil
}

// NormalizeFormat lowercases a format name and resolves aliases.
func NormalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "md" {
		return FormatMarkdown
	}
	return f
}

// ValidateFormat checks a format name. An empty format is accepted; it is
// inferred from the output path later.
func ValidateFormat(format string) error {
	return validateFormat("format", format)
}

func validateFormat(field, format string) error {
	if format == "" {
		return nil
	}
	switch NormalizeFormat(format) {
	case FormatHTML, FormatMarkdown, FormatConsole:
		return nil
	}
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("unknown format %q (valid: %s)", format, strings.Join(ValidFormats, ", ")),
	}
}

// InferFormat picks a format from the output path: a .md or .markdown path
// means Markdown, any other path HTML, and no path Markdown appended to the
// step summary.
func InferFormat(outputPath string) string {
	if outputPath == "" || isMarkdownPath(outputPath) {
		return FormatMarkdown
	}
	return FormatHTML
}

func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
