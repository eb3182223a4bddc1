package config

// Overrides holds values given on the command line. Empty strings are unset.
type Overrides struct {
	Format        string
	Title         string
	FailOnFailure bool
}

// Settings is the effective configuration of one run.
type Settings struct {
	// Format is normalized: html, markdown or console.
	Format string
	Title  string
	// Target is the report file; empty for the console format.
	Target        string
	FailOnFailure bool
}

// Resolve merges command-line overrides, environment, file configuration
// and defaults, in that order of precedence. cfg may be nil.
func Resolve(flags Overrides, e Env, cfg *Config, outputPath string) (*Settings, error) {
	if cfg == nil {
		cfg = Default()
	}

	format := firstNonEmpty(flags.Format, e.Format, cfg.Format)
	if err := validateFormat("format", format); err != nil {
		return nil, err
	}
	if format == "" {
		format = InferFormat(outputPath)
	}

	s := &Settings{
		Format:        NormalizeFormat(format),
		Title:         firstNonEmpty(flags.Title, e.Title, cfg.Title, DefaultTitle),
		FailOnFailure: flags.FailOnFailure || cfg.FailOnFailure,
	}

	switch s.Format {
	case FormatMarkdown:
		s.Target = firstNonEmpty(outputPath, e.StepSummary, cfg.SummaryFile, DefaultSummaryFile)
	case FormatHTML:
		s.Target = firstNonEmpty(outputPath, cfg.Output, DefaultOutput)
	}

	return s, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
