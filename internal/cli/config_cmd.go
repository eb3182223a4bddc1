package cli

import (
	"fmt"

	"github.com/AleksandrSmirnovB2T/CICD/internal/config"
	"github.com/AleksandrSmirnovB2T/CICD/internal/errors"
	"github.com/AleksandrSmirnovB2T/CICD/internal/output"
)

// cmdConfig handles configuration utilities.
func cmdConfig(args []string, w *output.Writer, environ []string) int {
	if len(args) == 0 {
		w.ErrorPrefix("config: subcommand required (validate)")
		return errors.ExitConfigError
	}

	switch args[0] {
	case "validate":
		return cmdConfigValidate(args[1:], w, environ)
	case "-h", "--help":
		printConfigUsage(w)
		return errors.ExitSuccess
	default:
		w.ErrorPrefix("config: unknown subcommand %q", args[0])
		return errors.ExitConfigError
	}
}

func printConfigUsage(w *output.Writer) {
	w.HelpTitle("trxreport config - configuration utilities")

	w.HelpSection("Usage:")
	w.HelpUsage("trxreport config validate [config-path]")

	w.HelpSection("Commands:")
	w.HelpCommand("validate [config-path]", "Check a configuration file against the schema", 22)

	w.HelpSection("Description:")
	w.Println("  Without a path, $TRXREPORT_CONFIG or %s in the current directory is checked.", config.DefaultFile)
	w.Println("")
}

func cmdConfigValidate(args []string, w *output.Writer, environ []string) int {
	path := ""
	switch len(args) {
	case 0:
	case 1:
		if args[0] == "-h" || args[0] == "--help" {
			printConfigUsage(w)
			return errors.ExitSuccess
		}
		path = args[0]
	default:
		return fail(w, errors.Config(fmt.Sprintf("config validate: too many arguments: %s", joinQuoted(args[1:]))))
	}

	if path == "" {
		vars, err := config.Environ(environ, "")
		if err != nil {
			return fail(w, errors.Config(err.Error()))
		}
		env, err := config.LoadEnv(vars)
		if err != nil {
			return fail(w, errors.Config(err.Error()))
		}
		path = env.ConfigPath
	}

	found, err := config.Find(path, ".")
	if err != nil {
		return fail(w, errors.Config(err.Error()))
	}
	if found == "" {
		return fail(w, errors.Configf("no configuration file found (looked for %s)", config.DefaultFile))
	}

	cfg, warnings, err := config.LoadAndValidate(found)
	for _, warning := range warnings {
		w.WarningSimple("%s", warning)
	}
	if err != nil {
		return fail(w, errors.Configf("%s: %v", found, err))
	}

	w.ValidationSuccess("Configuration is valid.")
	w.SummaryItem("File", found)
	w.SummaryItem("Format", firstNonEmpty(cfg.Format, "inferred from output path"))
	w.SummaryItem("Title", cfg.Title)
	if len(warnings) > 0 {
		w.SummaryItem("Warnings", fmt.Sprintf("%d", len(warnings)))
	}
	return errors.ExitSuccess
}
