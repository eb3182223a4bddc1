package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestReportError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ReportError
		expected string
	}{
		{
			name:     "message only",
			err:      &ReportError{Message: "something failed"},
			expected: "something failed",
		},
		{
			name:     "with path",
			err:      &ReportError{Path: "results.trx", Message: "file not found"},
			expected: "results.trx: file not found",
		},
		{
			name:     "with path and cause",
			err:      &ReportError{Path: "results.trx", Message: "malformed TRX document", Cause: errors.New("unexpected EOF")},
			expected: "results.trx: malformed TRX document: unexpected EOF",
		},
		{
			name:     "cause without path",
			err:      &ReportError{Message: "wrapper", Cause: errors.New("inner")},
			expected: "wrapper: inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestReportError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ReportError{
		Message: "wrapper",
		Cause:   cause,
	}

	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}

	errNoCause := &ReportError{Message: "no cause"}
	if got := errNoCause.Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestReportError_ExitCode(t *testing.T) {
	tests := []struct {
		name     string
		kind     ErrorKind
		expected int
	}{
		{"runtime", KindRuntime, ExitRuntimeError},
		{"usage", KindUsage, ExitRuntimeError},
		{"config", KindConfig, ExitConfigError},
		{"not found", KindNotFound, ExitRuntimeError},
		{"malformed", KindMalformed, ExitRuntimeError},
		{"incomplete", KindIncomplete, ExitRuntimeError},
		{"write", KindWrite, ExitRuntimeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ReportError{Kind: tt.kind}
			if got := err.ExitCode(); got != tt.expected {
				t.Errorf("ExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf("error %d: %s", 42, "details")

	if err.Kind != KindRuntime {
		t.Errorf("Kind = %v, want %v", err.Kind, KindRuntime)
	}
	if err.Message != "error 42: details" {
		t.Errorf("Message = %q, want %q", err.Message, "error 42: details")
	}
}

func TestConfigf(t *testing.T) {
	err := Configf("field %q: %s", "format", "is invalid")

	if err.Kind != KindConfig {
		t.Errorf("Kind = %v, want %v", err.Kind, KindConfig)
	}
	expected := `field "format": is invalid`
	if err.Message != expected {
		t.Errorf("Message = %q, want %q", err.Message, expected)
	}
	if err.ExitCode() != ExitConfigError {
		t.Errorf("ExitCode() = %d, want %d", err.ExitCode(), ExitConfigError)
	}
}

func TestDocumentErrors(t *testing.T) {
	cause := errors.New("XML syntax error on line 3")

	malformed := Malformed("a.trx", cause)
	if malformed.Kind != KindMalformed {
		t.Errorf("Malformed Kind = %v, want %v", malformed.Kind, KindMalformed)
	}
	if !errors.Is(malformed, cause) {
		t.Error("Malformed error should wrap its cause")
	}

	incomplete := Incomplete("a.trx", "missing <Results> section")
	if incomplete.Kind != KindIncomplete {
		t.Errorf("Incomplete Kind = %v, want %v", incomplete.Kind, KindIncomplete)
	}
	if incomplete.Error() != "a.trx: missing <Results> section" {
		t.Errorf("Incomplete Error() = %q", incomplete.Error())
	}

	notFound := NotFound("missing.trx", "file not found")
	if notFound.Kind != KindNotFound {
		t.Errorf("NotFound Kind = %v, want %v", notFound.Kind, KindNotFound)
	}
}

func TestWithPath(t *testing.T) {
	orig := Incomplete("", "missing <Results> section")
	bound := orig.WithPath("run.trx")

	if orig.Path != "" {
		t.Errorf("WithPath mutated the original: Path = %q", orig.Path)
	}
	if bound.Path != "run.trx" {
		t.Errorf("Path = %q, want %q", bound.Path, "run.trx")
	}
	if bound.Kind != KindIncomplete {
		t.Errorf("Kind = %v, want %v", bound.Kind, KindIncomplete)
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("decode: %w", Malformed("x.trx", errors.New("eof")))

	if !IsKind(err, KindMalformed) {
		t.Error("IsKind(wrapped malformed, KindMalformed) = false, want true")
	}
	if IsKind(err, KindIncomplete) {
		t.Error("IsKind(wrapped malformed, KindIncomplete) = true, want false")
	}
	if IsKind(errors.New("plain"), KindRuntime) {
		t.Error("IsKind(plain error) = true, want false")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"ReportError runtime", New("runtime"), ExitRuntimeError},
		{"ReportError config", Config("config"), ExitConfigError},
		{"wrapped config", fmt.Errorf("load: %w", Config("config")), ExitConfigError},
		{"ReportError not found", NotFound("a", "b"), ExitRuntimeError},
		{"generic error", errors.New("generic"), ExitRuntimeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	kinds := []ErrorKind{KindRuntime, KindUsage, KindConfig, KindNotFound, KindMalformed, KindIncomplete, KindWrite}
	seen := make(map[string]bool)

	for _, k := range kinds {
		name := k.String()
		if seen[name] {
			t.Errorf("Duplicate ErrorKind name: %q", name)
		}
		seen[name] = true
	}
}

func TestExitCodeConstants(t *testing.T) {
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitRuntimeError != 1 {
		t.Errorf("ExitRuntimeError = %d, want 1", ExitRuntimeError)
	}
	if ExitConfigError != 2 {
		t.Errorf("ExitConfigError = %d, want 2", ExitConfigError)
	}
}
