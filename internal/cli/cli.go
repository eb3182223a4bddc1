// Package cli provides the command-line interface of trxreport.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/AleksandrSmirnovB2T/CICD/internal/errors"
	"github.com/AleksandrSmirnovB2T/CICD/internal/output"
)

// Version is set at build time.
var Version = "dev"

// Help text alignment widths for consistent formatting.
const (
	helpArgWidth = 13
	helpEnvWidth = 19
)

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return RunWith(args, output.New(), os.Environ())
}

// RunWith executes the CLI writing through w. environ holds the process
// environment as KEY=value pairs.
func RunWith(args []string, w *output.Writer, environ []string) int {
	if len(args) == 0 {
		printUsage(w)
		return errors.ExitRuntimeError
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage(w)
		return errors.ExitSuccess
	case "--version", "version":
		w.Println("trxreport %s", Version)
		return errors.ExitSuccess
	case "config":
		return cmdConfig(args[1:], w, environ)
	case "completion":
		return cmdCompletion(args[1:], w)
	}

	return cmdReport(args, w, environ)
}

// fail reports err and returns its exit code.
func fail(w *output.Writer, err error) int {
	w.ErrorPrefix("%v", err)
	return errors.GetExitCode(err)
}

func printUsage(w *output.Writer) {
	w.HelpTitle("trxreport - summarize Visual Studio TRX test results")

	w.HelpSection("Usage:")
	w.HelpUsage("trxreport [flags] <trx-file> [output-path]")
	w.HelpUsage("trxreport config validate [config-path]")
	w.HelpUsage("trxreport completion <shell>")
	w.HelpUsage("trxreport version")

	w.HelpSection("Arguments:")
	w.HelpFlag("<trx-file>", "TRX file produced by dotnet test or vstest", helpArgWidth)
	w.HelpFlag("[output-path]", "Report file; .md or .markdown selects Markdown, anything else HTML", helpArgWidth)

	w.HelpSection("Description:")
	w.Println("  Groups test results by class, writes an HTML report or appends a Markdown")
	w.Println("  summary to the CI step summary, and prints the totals to the console.")
	w.Println("  Without an output path the Markdown summary goes to $GITHUB_STEP_SUMMARY.")

	printFlags(w, newReportFlagSet(&reportOptions{}))

	w.HelpSection("Environment:")
	w.HelpEnvVar("GITHUB_STEP_SUMMARY", "Markdown summary target", helpEnvWidth)
	w.HelpEnvVar("TRXREPORT_FORMAT", "Default report format", helpEnvWidth)
	w.HelpEnvVar("TRXREPORT_CONFIG", "Configuration file", helpEnvWidth)
	w.HelpEnvVar("TRXREPORT_TITLE", "Report title", helpEnvWidth)
	w.HelpEnvVar("NO_COLOR", "Disable colored output", helpEnvWidth)

	w.HelpSection("Examples:")
	w.HelpExample("trxreport TestResults/results.trx", "Append a Markdown summary to the step summary")
	w.HelpExample("trxreport results.trx report.html", "Write an HTML report")
	w.HelpExample("trxreport -f console --fail-on-failure results.trx", "Print totals and fail the step on test failures")
	w.Println("")
}

// printFlags lists the flags of fs using pflag's backquoted placeholders.
func printFlags(w *output.Writer, fs *pflag.FlagSet) {
	type line struct{ name, usage string }
	var lines []line
	width := 0

	fs.VisitAll(func(f *pflag.Flag) {
		placeholder, usage := pflag.UnquoteUsage(f)
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		} else {
			name = "    " + name
		}
		if placeholder != "" {
			name += " <" + placeholder + ">"
		}
		if f.DefValue != "" && f.Value.Type() != "bool" {
			usage += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		if len(name) > width {
			width = len(name)
		}
		lines = append(lines, line{name, usage})
	})

	w.HelpSection("Flags:")
	for _, l := range lines {
		w.HelpFlag(l.name, l.usage, width)
	}
}

// flagNames returns the long and short forms of every flag in fs.
func flagNames(fs *pflag.FlagSet) []string {
	var names []string
	fs.VisitAll(func(f *pflag.Flag) {
		names = append(names, "--"+f.Name)
		if f.Shorthand != "" {
			names = append(names, "-"+f.Shorthand)
		}
	})
	return names
}

// joinQuoted joins values as a quoted, comma-separated list.
func joinQuoted(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
