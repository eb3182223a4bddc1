// Package errors provides structured error types and exit codes for trxreport.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Usage, input, document or write failure
	ExitConfigError  = 2 // Configuration error (invalid config file, bad flag value)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindUsage
	KindConfig
	KindNotFound
	KindMalformed
	KindIncomplete
	KindWrite
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindConfig:
		return "config"
	case KindNotFound:
		return "not-found"
	case KindMalformed:
		return "malformed"
	case KindIncomplete:
		return "incomplete"
	case KindWrite:
		return "write"
	default:
		return "runtime"
	}
}

// ReportError is the base error type for trxreport.
type ReportError struct {
	Kind    ErrorKind
	Message string
	Path    string // File the error refers to, if any
	Cause   error  // Underlying error
}

func (e *ReportError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ReportError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *ReportError) ExitCode() int {
	if e.Kind == KindConfig {
		return ExitConfigError
	}
	return ExitRuntimeError
}

// New creates a new runtime error.
func New(message string) *ReportError {
	return &ReportError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *ReportError {
	return New(fmt.Sprintf(format, args...))
}

// Usage creates a usage error (bad arguments).
func Usage(message string) *ReportError {
	return &ReportError{
		Kind:    KindUsage,
		Message: message,
	}
}

// Config creates a new configuration error.
func Config(message string) *ReportError {
	return &ReportError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *ReportError {
	return Config(fmt.Sprintf(format, args...))
}

// NotFound creates an error for a missing input file.
func NotFound(path, message string) *ReportError {
	return &ReportError{
		Kind:    KindNotFound,
		Path:    path,
		Message: message,
	}
}

// Malformed creates an error for a document that is not well-formed XML.
func Malformed(path string, cause error) *ReportError {
	return &ReportError{
		Kind:    KindMalformed,
		Path:    path,
		Message: "malformed TRX document",
		Cause:   cause,
	}
}

// Incomplete creates an error for a document missing required sections.
func Incomplete(path, message string) *ReportError {
	return &ReportError{
		Kind:    KindIncomplete,
		Path:    path,
		Message: message,
	}
}

// Write creates an error for a failed report write.
func Write(path string, cause error) *ReportError {
	return &ReportError{
		Kind:    KindWrite,
		Path:    path,
		Message: "failed to write report",
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *ReportError {
	return &ReportError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// WithPath returns a copy of the error bound to the given file path.
func (e *ReportError) WithPath(path string) *ReportError {
	cp := *e
	cp.Path = path
	return &cp
}

// IsKind reports whether err is a ReportError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var re *ReportError
	if errors.As(err, &re) {
		return re.ExitCode()
	}
	return ExitRuntimeError
}
