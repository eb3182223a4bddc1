// Package render formats a test summary as an HTML document or a Markdown
// step-summary fragment and writes it to disk.
package render

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/AleksandrSmirnovB2T/CICD/internal/errors"
	"github.com/AleksandrSmirnovB2T/CICD/internal/summary"
)

// DefaultTitle is used when no report title is configured.
const DefaultTitle = "TRX Test Summary"

// WriteMode controls how a report is written to an existing file.
type WriteMode int

const (
	// ModeOverwrite truncates the target file.
	ModeOverwrite WriteMode = iota
	// ModeAppend adds the report after any existing content.
	ModeAppend
)

// Renderer formats a summary.
type Renderer interface {
	// Name returns the format name.
	Name() string
	// Mode returns how the rendered report is written to a file.
	Mode() WriteMode
	// Render writes the formatted summary to w.
	Render(w io.Writer, s *summary.Summary) error
}

// WriteFile renders s in full and then writes it to path using the
// renderer's write mode. Parent directories are created as needed.
// Nothing is written if rendering fails.
func WriteFile(path string, r Renderer, s *summary.Summary) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, s); err != nil {
		return errors.Wrap(err, "failed to render "+r.Name()+" report")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Write(path, err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if r.Mode() == ModeAppend {
		flags = os.O_CREATE | os.O_RDWR | os.O_APPEND
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return errors.Write(path, err)
	}

	content := buf.Bytes()
	if r.Mode() == ModeAppend {
		sep, err := appendSeparator(f)
		if err != nil {
			_ = f.Close()
			return errors.Write(path, err)
		}
		content = append([]byte(sep), content...)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return errors.Write(path, err)
	}
	if err := f.Close(); err != nil {
		return errors.Write(path, err)
	}
	return nil
}

// appendSeparator returns the text needed so that appended content starts
// on a fresh line.
func appendSeparator(f *os.File) (string, error) {
	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.Size() == 0 {
		return "", nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return "", err
	}
	if last[0] != '\n' {
		return "\n\n", nil
	}
	return "", nil
}

// formatSeconds formats a duration in seconds with two decimals.
func formatSeconds(d float64) string {
	return strconv.FormatFloat(d, 'f', 2, 64)
}
