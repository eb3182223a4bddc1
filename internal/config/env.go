package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds the environment variables trxreport reads.
type Env struct {
	StepSummary string `env:"GITHUB_STEP_SUMMARY"`
	Format      string `env:"TRXREPORT_FORMAT"`
	ConfigPath  string `env:"TRXREPORT_CONFIG"`
	Title       string `env:"TRXREPORT_TITLE"`
	NoColor     string `env:"NO_COLOR"`
}

// ColorDisabled reports whether NO_COLOR is set to a non-empty value.
func (e Env) ColorDisabled() bool {
	return e.NoColor != ""
}

// Environ converts KEY=value pairs to a map. When envFile is set, its
// variables are loaded first and the pairs take precedence over them.
func Environ(pairs []string, envFile string) (map[string]string, error) {
	vars := make(map[string]string)

	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = v
	}

	return vars, nil
}

// LoadEnv parses the trxreport variables from vars.
func LoadEnv(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}
