package config

// Default configuration values.
const (
	DefaultTitle       = "TRX Test Summary"
	DefaultOutput      = "report.html"
	DefaultSummaryFile = "summary.md"
)

// applyDefaults fills in default values for unset configuration fields.
// Format is left empty so that it can be inferred from the output path.
func applyDefaults(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.SummaryFile == "" {
		cfg.SummaryFile = DefaultSummaryFile
	}
}

// Default returns a configuration with only default values set.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
