package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/AleksandrSmirnovB2T/CICD/internal/config"
	"github.com/AleksandrSmirnovB2T/CICD/internal/errors"
	"github.com/AleksandrSmirnovB2T/CICD/internal/output"
)

const defaultCommandName = "trxreport"

// cmdCompletion generates shell completion scripts.
func cmdCompletion(args []string, w *output.Writer) int {
	shell := ""
	alias := ""

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			printCompletionUsage(w)
			return errors.ExitSuccess
		case strings.HasPrefix(arg, "--alias="):
			alias = strings.TrimPrefix(arg, "--alias=")
		case arg == "--alias":
			w.ErrorPrefix("completion: --alias requires a value (--alias=<name>)")
			return errors.ExitConfigError
		case strings.HasPrefix(arg, "-"):
			w.ErrorPrefix("completion: unknown flag: %s", arg)
			printCompletionUsage(w)
			return errors.ExitConfigError
		default:
			if shell != "" {
				w.ErrorPrefix("completion: unexpected argument: %s", arg)
				return errors.ExitConfigError
			}
			shell = arg
		}
	}

	if shell == "" {
		w.ErrorPrefix("completion: shell required (bash, zsh, fish)")
		printCompletionUsage(w)
		return errors.ExitConfigError
	}

	cmdName := defaultCommandName
	if alias != "" {
		cmdName = alias
	}

	switch shell {
	case "bash":
		w.Print("%s", generateBashCompletion(cmdName))
	case "zsh":
		w.Print("%s", generateZshCompletion(cmdName))
	case "fish":
		w.Print("%s", generateFishCompletion(cmdName))
	default:
		w.ErrorPrefix("completion: unsupported shell %q (use bash, zsh, or fish)", shell)
		return errors.ExitConfigError
	}

	return errors.ExitSuccess
}

func printCompletionUsage(w *output.Writer) {
	w.HelpTitle("trxreport completion - generate shell completion scripts")

	w.HelpSection("Usage:")
	w.HelpUsage("trxreport completion <shell> [--alias=<name>]")

	w.HelpSection("Arguments:")
	w.HelpFlag("<shell>", "Shell type: bash, zsh, or fish", 10)

	w.HelpSection("Options:")
	w.HelpFlag("--alias=<name>", "Generate completion for command alias", 14)
	w.HelpFlag("-h, --help", "Show this help", 14)

	w.HelpSection("Examples:")
	w.HelpExample("trxreport completion bash", "Generate bash completion")
	w.HelpExample("trxreport completion fish --alias=trx", "Generate fish completion for alias 'trx'")

	w.HelpSection("Installation:")
	w.Println("  Bash:  eval \"$(trxreport completion bash)\"")
	w.Println("  Zsh:   eval \"$(trxreport completion zsh)\"")
	w.Println("  Fish:  trxreport completion fish | source")
	w.Println("")
}

// builtinCommands returns the subcommands accepted in first position.
func builtinCommands() []string {
	return []string{"config", "completion", "version", "help"}
}

// reportFlags returns every flag of the report command.
func reportFlags() []string {
	return flagNames(newReportFlagSet(&reportOptions{}))
}

// completionFormats returns the values accepted by --format.
func completionFormats() []string {
	return config.ValidFormats
}

func aliasNote(cmdName, example string) string {
	if cmdName == defaultCommandName {
		return fmt.Sprintf(`
# Alias support:
# Generate completion directly for your alias:
#   %s
`, example)
	}
	return fmt.Sprintf(`
# This completion is generated for the alias "%s"
# Make sure you have the alias defined: alias %s="trxreport"
`, cmdName, cmdName)
}

func generateBashCompletion(cmdName string) string {
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_") + "_completions"

	return fmt.Sprintf(`# trxreport bash completion
# Add to ~/.bashrc: eval "$(trxreport completion bash)"
%s
%s() {
    local cur prev words cword
    _init_completion || return

    local commands="%s"
    local flags="%s"

    case "${prev}" in
        %s)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${flags}" -- "${cur}"))
            else
                COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
                _filedir trx
            fi
            return
            ;;
        config)
            COMPREPLY=($(compgen -W "validate" -- "${cur}"))
            return
            ;;
        validate)
            _filedir '@(yaml|yml)'
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "${cur}"))
            return
            ;;
        -f|--format)
            COMPREPLY=($(compgen -W "%s" -- "${cur}"))
            return
            ;;
        --log-level)
            COMPREPLY=($(compgen -W "debug info warn error" -- "${cur}"))
            return
            ;;
        --log-encoding)
            COMPREPLY=($(compgen -W "console json" -- "${cur}"))
            return
            ;;
        -c|--config|--env-file)
            _filedir
            return
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=($(compgen -W "${flags}" -- "${cur}"))
        return
    fi

    _filedir '@(trx|html|md|markdown)'
}

complete -F %s %s
`, aliasNote(cmdName, `eval "$(trxreport completion bash --alias=trx)"`), funcName,
		strings.Join(builtinCommands(), " "), strings.Join(reportFlags(), " "),
		cmdName, strings.Join(completionFormats(), " "), funcName, cmdName)
}

func generateZshCompletion(cmdName string) string {
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_")

	var flagSpecs []string
	newReportFlagSet(&reportOptions{}).VisitAll(func(f *pflag.Flag) {
		flagSpecs = append(flagSpecs, "        "+zshFlagSpec(f))
	})

	return fmt.Sprintf(`#compdef %s
# trxreport zsh completion
# Add to ~/.zshrc: eval "$(trxreport completion zsh)"
%s
%s() {
    local -a commands flags

    commands=(
        'config:Configuration utilities'
        'completion:Generate shell completion'
        'version:Show version information'
        'help:Show help'
    )

    flags=(
%s
    )

    if (( CURRENT == 2 )); then
        _describe -t commands 'command' commands
        _arguments -s $flags[@] '1:TRX file:_files -g "*.trx"'
        return
    fi

    case "${words[2]}" in
        config)
            if (( CURRENT == 3 )); then
                _values 'config subcommand' 'validate[Validate configuration]'
            else
                _files -g '*.(yaml|yml)'
            fi
            ;;
        completion)
            _values 'shell' bash zsh fish
            ;;
        *)
            _arguments -s $flags[@] '*:file:_files'
            ;;
    esac
}

compdef %s %s
`, cmdName, aliasNote(cmdName, `eval "$(trxreport completion zsh --alias=trx)"`), funcName,
		strings.Join(flagSpecs, "\n"), funcName, cmdName)
}

// zshFlagSpec renders one _arguments specification for f.
func zshFlagSpec(f *pflag.Flag) string {
	placeholder, usage := pflag.UnquoteUsage(f)
	usage = strings.NewReplacer("[", "(", "]", ")", "'", "").Replace(usage)

	var action string
	switch {
	case f.Name == "format":
		action = ":format:(" + strings.Join(completionFormats(), " ") + ")"
	case placeholder == "file":
		action = ":file:_files"
	case placeholder != "":
		action = ":" + placeholder + ":"
	}

	if f.Shorthand != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Shorthand, f.Name, f.Shorthand, f.Name, usage, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Name, usage, action)
}

func generateFishCompletion(cmdName string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`# trxreport fish completion
# Add to config: trxreport completion fish | source
%s
complete -c %s -n '__fish_use_subcommand' -k -a '(__fish_complete_suffix .trx)'

`, strings.TrimPrefix(aliasNote(cmdName, "trxreport completion fish --alias=trx | source"), "\n"), cmdName))

	commandDescs := []struct{ name, desc string }{
		{"config", "Configuration utilities"},
		{"completion", "Generate shell completion"},
		{"version", "Show version information"},
		{"help", "Show help"},
	}
	for _, c := range commandDescs {
		sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_use_subcommand' -a '%s' -d '%s'\n", cmdName, c.name, c.desc))
	}

	sb.WriteString("\n# Report flags\n")
	newReportFlagSet(&reportOptions{}).VisitAll(func(f *pflag.Flag) {
		placeholder, usage := pflag.UnquoteUsage(f)
		line := fmt.Sprintf("complete -c %s -l %s", cmdName, f.Name)
		if f.Shorthand != "" {
			line += " -s " + f.Shorthand
		}
		switch {
		case f.Name == "format":
			line += " -xa '" + strings.Join(completionFormats(), " ") + "'"
		case placeholder == "file":
			line += " -r -F"
		case placeholder != "":
			line += " -x"
		}
		line += " -d '" + strings.ReplaceAll(usage, "'", "") + "'"
		sb.WriteString(line + "\n")
	})

	sb.WriteString("\n# config subcommands\n")
	sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_seen_subcommand_from config' -a 'validate' -d 'Validate configuration'\n", cmdName))

	sb.WriteString("\n# completion subcommands\n")
	for _, shell := range []string{"bash", "zsh", "fish"} {
		sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_seen_subcommand_from completion' -a '%s' -d 'Generate %s completion'\n", cmdName, shell, shell))
	}

	return sb.String()
}
