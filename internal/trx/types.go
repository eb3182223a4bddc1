// Package trx decodes Visual Studio Test Results (TRX) documents into test
// definitions and test results.
package trx

// Namespace is the XML namespace every TRX element lives in.
const Namespace = "http://microsoft.com/schemas/VisualStudio/TeamTest/2010"

// UnknownSuite is the suite assigned to tests whose definition is missing
// or carries no class name.
const UnknownSuite = "Unknown"

// TestDefinition maps a test identifier to the suite (class) it belongs to.
type TestDefinition struct {
	ID    string // UnitTest@id
	Name  string // UnitTest@name
	Suite string // TestMethod@className, or UnknownSuite
}

// TestResult is a single UnitTestResult entry.
type TestResult struct {
	Name        string  // UnitTestResult@testName
	Outcome     string  // UnitTestResult@outcome, kept verbatim
	Duration    float64 // seconds, zero when missing or unparseable
	RawDuration string  // UnitTestResult@duration as written
	TestID      string  // UnitTestResult@testId
	Message     string  // Output/ErrorInfo/Message, usually set for failures
}

// Run is everything extracted from one TRX document.
type Run struct {
	Definitions []TestDefinition
	Results     []TestResult

	// DegradedDurations counts results whose duration text was present but
	// could not be interpreted and was replaced by zero.
	DegradedDurations int
}

// SuiteIndex returns the test identifier to suite name mapping.
// When an identifier is defined more than once the last definition wins.
func (r *Run) SuiteIndex() map[string]string {
	index := make(map[string]string, len(r.Definitions))
	for _, def := range r.Definitions {
		index[def.ID] = def.Suite
	}
	return index
}
