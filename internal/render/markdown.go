package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/AleksandrSmirnovB2T/CICD/internal/summary"
)

// MarkdownRenderer renders a GitHub-flavoured Markdown fragment suitable for
// appending to a CI step summary. Reports are appended, so several runs
// can share one summary file.
type MarkdownRenderer struct {
	Title string
}

// Name returns "markdown".
func (r *MarkdownRenderer) Name() string { return "markdown" }

// Mode returns ModeAppend.
func (r *MarkdownRenderer) Mode() WriteMode { return ModeAppend }

// Render writes the Markdown fragment to w.
func (r *MarkdownRenderer) Render(w io.Writer, s *summary.Summary) error {
	title := r.Title
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## 🧪 %s\n\n", flattenLines(title))

	b.WriteString("| Test Suite | Passed | Failed | Skipped | Duration (s) |\n")
	b.WriteString("|------------|--------|--------|---------|--------------|\n")
	for _, suite := range s.Suites() {
		c := suite.Counts()
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %s |\n",
			escapeCell(suite.Name), c.Passed, c.Failed, c.Skipped, formatSeconds(suite.Duration))
	}

	b.WriteString("\n---\n### Detailed Results:\n\n")
	b.WriteString("| Suite | Test Name | Outcome | Duration (s) |\n")
	b.WriteString("|-------|-----------|---------|--------------|\n")
	for _, d := range s.Details {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escapeCell(d.Suite), escapeCell(d.Test), escapeCell(d.Outcome), formatSeconds(d.Duration))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

var cellReplacer = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// escapeCell makes s safe inside a single Markdown table cell.
func escapeCell(s string) string {
	return cellReplacer.Replace(s)
}

func flattenLines(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
