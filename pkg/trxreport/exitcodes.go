// Package trxreport provides public constants for tools wrapping the
// trxreport CLI in CI pipelines.
package trxreport

// Exit codes returned by the trxreport CLI.
const (
	// ExitSuccess indicates the report was produced (and, with
	// --fail-on-failure, that no test failed).
	ExitSuccess = 0

	// ExitFailure covers usage errors, a missing input file, a malformed or
	// incomplete TRX document, write failures and, with --fail-on-failure,
	// failed tests.
	ExitFailure = 1

	// ExitConfigError indicates an invalid configuration file or flag value.
	ExitConfigError = 2
)
