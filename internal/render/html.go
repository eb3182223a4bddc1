package render

import (
	"html/template"
	"io"

	"github.com/AleksandrSmirnovB2T/CICD/internal/summary"
)

const htmlSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; padding: 20px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 40px; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; }
.passed { color: green; }
.failed { color: red; }
.skipped { color: orange; }
.other { color: gray; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table>
<tr><th>Test Suite</th><th>Passed</th><th>Failed</th><th>Skipped</th><th>Total Duration (s)</th></tr>
{{- range .Suites}}
<tr><td>{{.Name}}</td><td class="passed">{{.Passed}}</td><td class="failed">{{.Failed}}</td><td class="skipped">{{.Skipped}}</td><td>{{.Duration}}</td></tr>
{{- end}}
</table>
<h2>Detailed Test Results</h2>
<table>
<tr><th>Test Suite</th><th>Test Name</th><th>Outcome</th><th>Duration (s)</th></tr>
{{- range .Details}}
<tr><td>{{.Suite}}</td><td>{{.Test}}</td><td class="{{.Class}}">{{.Outcome}}</td><td>{{.Duration}}</td></tr>
{{- end}}
</table>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlSource))

type htmlSuiteRow struct {
	Name     string
	Passed   int
	Failed   int
	Skipped  int
	Duration string
}

type htmlDetailRow struct {
	Suite    string
	Test     string
	Outcome  string
	Class    string
	Duration string
}

type htmlPage struct {
	Title   string
	Suites  []htmlSuiteRow
	Details []htmlDetailRow
}

// HTMLRenderer renders a standalone HTML page with a per-suite summary
// table and a per-test detail table. All text is HTML-escaped.
type HTMLRenderer struct {
	Title string
}

// Name returns "html".
func (r *HTMLRenderer) Name() string { return "html" }

// Mode returns ModeOverwrite.
func (r *HTMLRenderer) Mode() WriteMode { return ModeOverwrite }

// Render writes the HTML page to w.
func (r *HTMLRenderer) Render(w io.Writer, s *summary.Summary) error {
	page := htmlPage{Title: r.Title}
	if page.Title == "" {
		page.Title = DefaultTitle
	}

	for _, suite := range s.Suites() {
		c := suite.Counts()
		page.Suites = append(page.Suites, htmlSuiteRow{
			Name:     suite.Name,
			Passed:   c.Passed,
			Failed:   c.Failed,
			Skipped:  c.Skipped,
			Duration: formatSeconds(suite.Duration),
		})
	}
	for _, d := range s.Details {
		page.Details = append(page.Details, htmlDetailRow{
			Suite:    d.Suite,
			Test:     d.Test,
			Outcome:  d.Outcome,
			Class:    d.Category().String(),
			Duration: formatSeconds(d.Duration),
		})
	}

	return htmlTemplate.Execute(w, page)
}
