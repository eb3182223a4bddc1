package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AleksandrSmirnovB2T/CICD/internal/config"
	"github.com/AleksandrSmirnovB2T/CICD/internal/errors"
	"github.com/AleksandrSmirnovB2T/CICD/internal/logger"
	"github.com/AleksandrSmirnovB2T/CICD/internal/output"
	"github.com/AleksandrSmirnovB2T/CICD/internal/render"
	"github.com/AleksandrSmirnovB2T/CICD/internal/summary"
	"github.com/AleksandrSmirnovB2T/CICD/internal/trx"
)

// reportOptions holds the flags of the report command.
type reportOptions struct {
	format        string
	configPath    string
	title         string
	envFile       string
	failOnFailure bool
	quiet         bool
	noColor       bool
	help          bool
	log           logger.Options
}

func newReportFlagSet(o *reportOptions) *pflag.FlagSet {
	fs := pflag.NewFlagSet("trxreport", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&o.format, "format", "f", "", "Report `format`: html, markdown or console")
	fs.StringVarP(&o.configPath, "config", "c", "", "Configuration `file` (default .trxreport.yaml if present)")
	fs.StringVar(&o.title, "title", "", "Report `title`")
	fs.StringVar(&o.envFile, "env-file", "", "Load environment variables from a dotenv `file`")
	fs.BoolVar(&o.failOnFailure, "fail-on-failure", false, "Exit with status 1 when any test failed")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "Do not print the console summary")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&o.help, "help", "h", false, "Show this help")
	logger.Flags(fs, &o.log)

	return fs
}

// cmdReport decodes a TRX file, writes the report and prints the summary.
func cmdReport(args []string, w *output.Writer, environ []string) int {
	var opts reportOptions
	fs := newReportFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		w.ErrorPrefix("%v", err)
		w.Hint("Run 'trxreport --help' for usage.")
		return errors.ExitRuntimeError
	}

	if opts.help {
		printUsage(w)
		return errors.ExitSuccess
	}

	positional := fs.Args()
	switch {
	case len(positional) == 0:
		printUsage(w)
		return errors.ExitRuntimeError
	case len(positional) > 2:
		return fail(w, errors.Usage(fmt.Sprintf("too many arguments: %s", joinQuoted(positional[2:]))))
	}
	trxPath := positional[0]
	outputPath := ""
	if len(positional) == 2 {
		outputPath = positional[1]
	}

	w.SetQuiet(opts.quiet)
	if opts.noColor {
		w.SetColor(false)
	}

	log, err := logger.New(opts.log, w.ErrWriter())
	if err != nil {
		return fail(w, errors.Config(err.Error()))
	}
	defer func() { _ = log.Sync() }()

	vars, err := config.Environ(environ, opts.envFile)
	if err != nil {
		return fail(w, errors.Config(err.Error()))
	}
	env, err := config.LoadEnv(vars)
	if err != nil {
		return fail(w, errors.Config(err.Error()))
	}
	if env.ColorDisabled() {
		w.SetColor(false)
	}

	cfg, err := loadConfig(w, firstNonEmpty(opts.configPath, env.ConfigPath))
	if err != nil {
		return fail(w, err)
	}

	settings, err := config.Resolve(config.Overrides{
		Format:        opts.format,
		Title:         opts.title,
		FailOnFailure: opts.failOnFailure,
	}, env, cfg, outputPath)
	if err != nil {
		return fail(w, errors.Config(err.Error()))
	}
	log.Debug("resolved settings",
		zap.String("format", settings.Format),
		zap.String("target", settings.Target),
		zap.String("title", settings.Title))

	if settings.Format == config.FormatConsole && outputPath != "" {
		w.WarningSimple("output path %q is ignored for the console format", outputPath)
	}

	if err := trx.ResolveInput(trxPath); err != nil {
		return fail(w, err)
	}
	run, err := trx.DecodeFile(trxPath)
	if err != nil {
		return fail(w, err)
	}
	log.Debug("decoded TRX document",
		zap.String("path", trxPath),
		zap.Int("results", len(run.Results)),
		zap.Int("definitions", len(run.Definitions)))
	if run.DegradedDurations > 0 {
		log.Debug("unparseable durations counted as zero", zap.Int("count", run.DegradedDurations))
	}

	s := summary.Aggregate(run)

	if settings.Format != config.FormatConsole {
		renderer := render.NewRegistry(settings.Title).Get(settings.Format)
		if renderer == nil {
			return fail(w, errors.Configf("no renderer for format %q", settings.Format))
		}
		if err := render.WriteFile(settings.Target, renderer, s); err != nil {
			return fail(w, err)
		}
		log.Info("report written",
			zap.String("format", renderer.Name()),
			zap.String("path", settings.Target))
	}

	if !w.Quiet() {
		if settings.Format != config.FormatConsole {
			w.Success("%s report written to %s", reportLabel(settings.Format), settings.Target)
		}
		printSummary(w, s, settings.Title)
	}

	if settings.FailOnFailure && s.Totals().Failed > 0 {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

// loadConfig loads the configuration file at path, or the default file in
// the working directory when path is empty. A missing default file yields
// the built-in defaults.
func loadConfig(w *output.Writer, path string) (*config.Config, error) {
	found, err := config.Find(path, ".")
	if err != nil {
		return nil, errors.Config(err.Error())
	}
	if found == "" {
		return config.Default(), nil
	}

	cfg, warnings, err := config.LoadAndValidate(found)
	for _, warning := range warnings {
		w.WarningSimple("%s: %s", found, warning)
	}
	if err != nil {
		return nil, errors.Configf("%s: %v", found, err)
	}
	return cfg, nil
}

var titleCase = cases.Title(language.English)

// categoryLabel returns the display label of a category, e.g. "Passed".
func categoryLabel(c summary.Category) string {
	return titleCase.String(c.String())
}

func reportLabel(format string) string {
	if format == config.FormatHTML {
		return "HTML"
	}
	return titleCase.String(format)
}

// printSummary prints the console summary of a run.
func printSummary(w *output.Writer, s *summary.Summary, title string) {
	totals := s.Totals()

	w.SummaryHeader(title)
	w.SummaryPassed(categoryLabel(summary.Passed), strconv.Itoa(totals.Passed))
	if totals.Failed > 0 {
		w.SummaryFailed(categoryLabel(summary.Failed), strconv.Itoa(totals.Failed))
	}
	if totals.Skipped > 0 {
		w.SummarySkipped(categoryLabel(summary.Skipped), strconv.Itoa(totals.Skipped))
	}
	if totals.Other > 0 {
		w.SummaryItem(categoryLabel(summary.Other), strconv.Itoa(totals.Other))
	}
	w.SummaryItem("Total", strconv.Itoa(totals.Total))
	w.SummaryItem("Duration", fmt.Sprintf("%.2fs", s.Duration()))

	if suites := s.Suites(); len(suites) > 0 {
		w.Println("")
		w.SummarySectionLabel("Suites:")
		rows := make([][]string, 0, len(suites))
		for _, suite := range suites {
			c := suite.Counts()
			rows = append(rows, []string{
				suite.Name,
				strconv.Itoa(c.Passed),
				strconv.Itoa(c.Failed),
				strconv.Itoa(c.Skipped),
				fmt.Sprintf("%.2f", suite.Duration),
			})
		}
		w.Table([]string{"Suite", "Passed", "Failed", "Skipped", "Duration (s)"}, rows)
	}

	if failed := s.FailedDetails(); len(failed) > 0 {
		w.Println("")
		w.SummarySectionLabel("Failed tests:")
		for _, d := range failed {
			w.SummaryFailure(d.Test, d.Message)
		}
	}

	switch {
	case totals.Total == 0:
		w.FinalSuccess("No test results found.")
	case totals.Failed > 0:
		w.FinalFailure("%d of %d tests failed.", totals.Failed, totals.Total)
	case totals.Passed == totals.Total:
		w.FinalSuccess("All %d tests passed.", totals.Total)
	default:
		w.FinalSuccess("No failures: %d of %d tests passed.", totals.Passed, totals.Total)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
