package config

import "testing"

// FuzzLoadWithWarnings checks that arbitrary YAML never panics the loader
// and that a successful parse always yields a config.
// Run: go test -fuzz=FuzzLoadWithWarnings -fuzztime=30s ./internal/config
func FuzzLoadWithWarnings(f *testing.F) {
	seeds := []string{
		"",
		"format: html\n",
		"format: md\ntitle: CI\noutput: out/report.html\nsummary_file: summary.md\nfail_on_failure: true\n",
		"colour: always\n",
		"$schema: ./schema/config.schema.json\n",
		"- a\n- b\n",
		"just a string",
		"format: [html\n",
		"title: \"multi\\nline\"\n",
		"fail_on_failure: yes\n",
		"? complex\n: key\n",
		"a: &x 1\nb: *x\n",
		"\t\tbad indent",
		"title: 项目 プロジェクト проект\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		cfg, _, err := LoadWithWarnings("fuzz.yaml", data)
		if err == nil && cfg == nil {
			t.Fatal("LoadWithWarnings() returned nil config without error")
		}
		if err != nil {
			return
		}
		_ = validateSchema(data)
		_, _ = Validate(cfg)
	})
}
