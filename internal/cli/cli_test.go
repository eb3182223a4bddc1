package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleksandrSmirnovB2T/CICD/internal/output"
)

var sampleTRX = filepath.Join("..", "trx", "testdata", "sample.trx")

// run executes the CLI with plain output and returns the exit code,
// stdout and stderr.
func run(t *testing.T, environ []string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := RunWith(args, output.NewWithWriters(&stdout, &stderr, false), environ)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRun_NoArgs_PrintsUsage(t *testing.T) {
	t.Parallel()

	code, stdout, _ := run(t, nil)
	if code != 1 {
		t.Errorf("RunWith([]) = %d, want 1", code)
	}
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "trxreport [flags] <trx-file> [output-path]")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"-h", "--help", "help"} {
		arg := arg
		t.Run(arg, func(t *testing.T) {
			t.Parallel()
			code, stdout, stderr := run(t, nil, arg)
			if code != 0 {
				t.Errorf("RunWith(%q) = %d, want 0", arg, code)
			}
			assert.Contains(t, stdout, "Flags:")
			assert.Empty(t, stderr)
		})
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"version", "--version"} {
		code, stdout, _ := run(t, nil, arg)
		if code != 0 {
			t.Errorf("RunWith(%q) = %d, want 0", arg, code)
		}
		if stdout != "trxreport dev\n" {
			t.Errorf("RunWith(%q) output = %q, want %q", arg, stdout, "trxreport dev\n")
		}
	}
}

func TestPrintUsage_ListsFlags(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	printUsage(output.NewWithWriters(&stdout, &bytes.Buffer{}, false))
	got := stdout.String()

	for _, want := range []string{
		"-f, --format <format>",
		"-c, --config <file>",
		"    --title <title>",
		"    --env-file <file>",
		"    --fail-on-failure",
		"-q, --quiet",
		"    --log-level <level>",
		"(default warn)",
		"(default console)",
		"GITHUB_STEP_SUMMARY",
		"TRXREPORT_FORMAT",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "(default false)")
}

func TestFlagNames(t *testing.T) {
	t.Parallel()

	names := flagNames(newReportFlagSet(&reportOptions{}))
	for _, want := range []string{"--format", "-f", "--config", "-c", "--title", "--fail-on-failure", "--quiet", "-q", "--log-level", "--log-encoding", "--help", "-h"} {
		assert.Contains(t, names, want)
	}
}

func TestJoinQuoted(t *testing.T) {
	t.Parallel()

	if got := joinQuoted([]string{"a", "b c"}); got != `"a", "b c"` {
		t.Errorf("joinQuoted() = %q, want %q", got, `"a", "b c"`)
	}
	if got := joinQuoted(nil); got != "" {
		t.Errorf("joinQuoted(nil) = %q, want empty", got)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	t.Parallel()

	code, _, stderr := run(t, nil, "--bogus", sampleTRX)
	if code != 1 {
		t.Errorf("RunWith(--bogus) = %d, want 1", code)
	}
	assert.Contains(t, stderr, "trxreport: unknown flag: --bogus")
}

func TestRun_TooManyArguments(t *testing.T) {
	t.Parallel()

	code, _, stderr := run(t, nil, sampleTRX, "a.html", "extra")
	if code != 1 {
		t.Errorf("RunWith(3 args) = %d, want 1", code)
	}
	assert.Contains(t, stderr, `too many arguments: "extra"`)
}

func TestRun_ConfigValidateNotFound(t *testing.T) {
	t.Parallel()

	code, _, stderr := run(t, nil, "config", "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	if code != 2 {
		t.Errorf("config validate missing = %d, want 2", code)
	}
	assert.Contains(t, stderr, "missing.yaml")
}

func TestRun_ConfigSubcommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no subcommand", []string{"config"}, 2},
		{"unknown subcommand", []string{"config", "show"}, 2},
		{"help", []string{"config", "--help"}, 0},
		{"validate help", []string{"config", "validate", "-h"}, 0},
		{"validate too many", []string{"config", "validate", "a.yaml", "b.yaml"}, 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, _, _ := run(t, nil, tt.args...)
			if code != tt.want {
				t.Errorf("RunWith(%v) = %d, want %d", tt.args, code, tt.want)
			}
		})
	}
}

func TestRun_ConfigValidate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "trxreport.yaml")
	writeFile(t, path, "format: html\ntitle: Nightly\n")

	code, stdout, stderr := run(t, nil, "config", "validate", path)
	if code != 0 {
		t.Fatalf("config validate = %d, want 0 (stderr: %s)", code, stderr)
	}
	assert.Contains(t, stdout, "Configuration is valid.")
	assert.Contains(t, stdout, "Title: Nightly")
	assert.Contains(t, stdout, "Format: html")
}

func TestRun_ConfigValidateFromEnvironment(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ci.yaml")
	writeFile(t, path, "summary_file: out/summary.md\n")

	code, stdout, _ := run(t, []string{"TRXREPORT_CONFIG=" + path}, "config", "validate")
	if code != 0 {
		t.Fatalf("config validate = %d, want 0", code)
	}
	assert.Contains(t, stdout, "File: "+path)
	assert.Contains(t, stdout, "Format: inferred from output path")
}

func TestRun_ConfigValidateWarnings(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ci.yaml")
	writeFile(t, path, "format: markdown\ncolour: always\n")

	code, stdout, stderr := run(t, nil, "config", "validate", path)
	if code != 0 {
		t.Fatalf("config validate = %d, want 0", code)
	}
	assert.Contains(t, stderr, `warning: unknown field "colour"`)
	assert.Contains(t, stdout, "Warnings: 1")
}

func TestRun_ConfigValidateInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ci.yaml")
	writeFile(t, path, "format: pdf\n")

	code, stdout, stderr := run(t, nil, "config", "validate", path)
	if code != 2 {
		t.Errorf("config validate = %d, want 2", code)
	}
	assert.NotContains(t, stdout, "Configuration is valid.")
	assert.True(t, strings.HasPrefix(stderr, "trxreport: "), "stderr = %q", stderr)
}
