// Package config provides loading and validation for the optional
// .trxreport.yaml file and the trxreport environment variables.
package config

// DefaultFile is the configuration file looked up in the working directory
// when no path is given.
const DefaultFile = ".trxreport.yaml"

// Config represents the .trxreport.yaml configuration.
type Config struct {
	// Format is the default report format (html, markdown, md, console).
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// Title is the report heading.
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	// Output is the HTML report path used when none is given on the
	// command line.
	Output string `yaml:"output,omitempty" json:"output,omitempty"`

	// SummaryFile is the Markdown target when GITHUB_STEP_SUMMARY is unset.
	SummaryFile string `yaml:"summary_file,omitempty" json:"summary_file,omitempty"`

	// FailOnFailure makes the run exit non-zero when any test failed.
	FailOnFailure bool `yaml:"fail_on_failure,omitempty" json:"fail_on_failure,omitempty"`
}
