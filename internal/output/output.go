// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Writer handles CLI output formatting.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool
}

// New creates a new Writer with default settings. Colour follows the
// terminal detection of github.com/fatih/color, which also honours NO_COLOR.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: !color.NoColor,
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// SetColor enables or disables coloured output.
func (w *Writer) SetColor(enabled bool) {
	w.color = enabled
}

// Quiet reports whether quiet mode is enabled.
func (w *Writer) Quiet() bool {
	return w.quiet
}

// ErrWriter returns the writer used for stderr output.
func (w *Writer) ErrWriter() io.Writer {
	return w.err
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Error writes to stderr.
func (w *Writer) Error(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format, args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// paint wraps s in the given attributes when colour is enabled.
func (w *Writer) paint(s string, attrs ...color.Attribute) string {
	if !w.color || len(attrs) == 0 {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

// Info prints an info message (skipped in quiet mode).
func (w *Writer) Info(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println("%s", fmt.Sprintf(format, args...))
}

// Success prints a success message.
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s", w.paint(fmt.Sprintf(format, args...), color.FgGreen))
}

// Warning prints a warning message.
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Errorln("%s", w.paint("warning: "+fmt.Sprintf(format, args...), color.FgYellow))
}

// Section prints a section header.
func (w *Writer) Section(title string) {
	if w.quiet {
		return
	}
	w.Println("")
	w.Println("%s", w.paint("=== "+title+" ===", color.Bold))
}

// List prints a list of items.
func (w *Writer) List(items []string) {
	for _, item := range items {
		w.Println("  - %s", item)
	}
}

// Table prints a simple table.
func (w *Writer) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var headerParts []string
	for i, h := range headers {
		headerParts = append(headerParts, fmt.Sprintf("%-*s", widths[i], h))
	}
	w.Println("%s", strings.TrimRight(strings.Join(headerParts, "  "), " "))

	var sepParts []string
	for _, width := range widths {
		sepParts = append(sepParts, strings.Repeat("-", width))
	}
	w.Println("%s", strings.Join(sepParts, "  "))

	for _, row := range rows {
		var rowParts []string
		for i, cell := range row {
			if i < len(widths) {
				rowParts = append(rowParts, fmt.Sprintf("%-*s", widths[i], cell))
			}
		}
		w.Println("%s", strings.TrimRight(strings.Join(rowParts, "  "), " "))
	}
}

// Semantic color roles for help output.
var (
	colorTitle       = []color.Attribute{color.Bold, color.FgCyan}
	colorSection     = []color.Attribute{color.Bold, color.FgYellow}
	colorCommand     = []color.Attribute{color.Bold, color.FgCyan}
	colorPlaceholder = []color.Attribute{color.FgGreen}
	colorFlag        = []color.Attribute{color.FgYellow}
	colorDescription = []color.Attribute{color.Faint}
	colorExample     = []color.Attribute{color.FgCyan}
	colorEnvVar      = []color.Attribute{color.FgYellow}
)

// HelpTitle formats the main help title line.
func (w *Writer) HelpTitle(title string) {
	w.Println("%s", w.paint(title, colorTitle...))
}

// HelpSection formats a section header (e.g., "Commands:").
func (w *Writer) HelpSection(title string) {
	w.Println("")
	w.Println("%s", w.paint(title, colorSection...))
}

// HelpCommand formats a command with its description.
func (w *Writer) HelpCommand(name, description string, width int) {
	w.helpLine(name, description, width, colorCommand)
}

// HelpFlag formats a flag with its description.
func (w *Writer) HelpFlag(name, description string, width int) {
	w.helpLine(name, description, width, colorFlag)
}

func (w *Writer) helpLine(name, description string, width int, attrs []color.Attribute) {
	padding := width - len(name)
	if padding < 0 {
		padding = 0
	}
	w.Println("  %s%s  %s",
		w.colorPlaceholders(name, attrs),
		strings.Repeat(" ", padding),
		w.paint(description, colorDescription...))
}

// HelpExample formats an example command with description.
func (w *Writer) HelpExample(command, description string) {
	w.Println("  %s", w.paint(command, colorExample...))
	if description != "" {
		w.Println("      %s", w.paint(description, colorDescription...))
	}
}

// HelpUsage formats usage lines.
func (w *Writer) HelpUsage(usage string) {
	w.Println("  %s", w.colorPlaceholders(usage, nil))
}

// HelpEnvVar formats an environment variable.
func (w *Writer) HelpEnvVar(name, description string, width int) {
	padding := width - len(name)
	if padding < 0 {
		padding = 0
	}
	w.Println("  %s%s  %s",
		w.paint(name, colorEnvVar...),
		strings.Repeat(" ", padding),
		w.paint(description, colorDescription...))
}

// ErrorPrefix prints an error message with the trxreport prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Errorln("%s %s", w.paint("trxreport:", color.FgRed), msg)
}

// WarningSimple prints a warning message with a coloured "warning:" label.
func (w *Writer) WarningSimple(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Errorln("%s %s", w.paint("warning:", color.FgYellow), msg)
}

// SummaryHeader prints a summary section header.
func (w *Writer) SummaryHeader(title string) {
	w.Println("")
	w.Println("%s", w.paint("=== "+title+" ===", color.Bold, color.FgCyan))
	w.Println("")
}

// SummaryItem prints a labeled summary item with value.
func (w *Writer) SummaryItem(label, value string) {
	w.Println("  %s %s", w.paint(label+":", color.Faint), value)
}

// SummaryPassed prints a passed items summary.
func (w *Writer) SummaryPassed(label, value string) {
	w.Println("  %s %s", w.paint(label+":", color.Faint), w.paint(value, color.FgGreen))
}

// SummaryFailed prints a failed items summary.
func (w *Writer) SummaryFailed(label, value string) {
	w.Println("  %s %s", w.paint(label+":", color.Faint), w.paint(value, color.FgRed))
}

// SummarySkipped prints a skipped items summary.
func (w *Writer) SummarySkipped(label, value string) {
	w.Println("  %s %s", w.paint(label+":", color.Faint), w.paint(value, color.FgYellow))
}

// SummarySectionLabel prints a label for a summary section (e.g., "Suites:").
func (w *Writer) SummarySectionLabel(label string) {
	w.Println("  %s", w.paint(label, color.Faint))
}

// SummaryFailure prints one failed test with its optional message.
func (w *Writer) SummaryFailure(name, message string) {
	if w.color {
		w.Println("    %s %s", w.paint("✗", color.FgRed), name)
	} else {
		w.Println("    x %s", name)
	}
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimRight(line, "\r ")
		if line == "" {
			continue
		}
		w.Println("        %s", w.paint(line, color.Faint))
	}
}

// FinalSuccess prints a final success message.
func (w *Writer) FinalSuccess(format string, args ...interface{}) {
	w.Println("")
	w.Println("%s", w.paint(fmt.Sprintf(format, args...), color.FgGreen))
}

// FinalFailure prints a final failure message.
func (w *Writer) FinalFailure(format string, args ...interface{}) {
	w.Println("")
	w.Println("%s", w.paint(fmt.Sprintf(format, args...), color.FgRed))
}

// ValidationSuccess prints a validation success message.
func (w *Writer) ValidationSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s %s", w.paint("✓", color.FgGreen), msg)
	} else {
		w.Println("%s", msg)
	}
}

// Hint prints a hint message for the user.
func (w *Writer) Hint(format string, args ...interface{}) {
	w.Println("%s", w.paint(fmt.Sprintf(format, args...), color.Faint))
}

// colorPlaceholders paints text with attrs and highlights <placeholder>
// patterns in it.
func (w *Writer) colorPlaceholders(text string, attrs []color.Attribute) string {
	if !w.color {
		return text
	}
	var result strings.Builder
	rest := text
	for rest != "" {
		start := strings.Index(rest, "<")
		if start == -1 {
			break
		}
		end := strings.Index(rest[start:], ">")
		if end == -1 {
			break
		}
		if start > 0 {
			result.WriteString(w.paint(rest[:start], attrs...))
		}
		result.WriteString(w.paint(rest[start:start+end+1], colorPlaceholder...))
		rest = rest[start+end+1:]
	}
	if rest != "" {
		result.WriteString(w.paint(rest, attrs...))
	}
	return result.String()
}
