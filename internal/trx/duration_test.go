package trx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationOK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{"iso seconds", "PT12.5S", 12.5, true},
		{"iso seconds two decimals", "PT12.34S", 12.34, true},
		{"iso whole seconds", "PT1S", 1, true},
		{"iso zero", "PT0S", 0, true},
		{"iso minutes and seconds", "PT1M30S", 90, true},
		{"iso hours", "PT2H", 7200, true},
		{"iso days", "P1DT1S", 86401, true},
		{"iso surrounding space", "  PT2.5S\n", 2.5, true},
		{"clock milliseconds", "0:00:01.250", 1.25, true},
		{"clock seven digit fraction", "00:00:00.0030000", 0.003, true},
		{"clock whole", "01:02:03", 3723, true},
		{"clock with days", "1.00:00:00", 86400, true},
		{"bare seconds", "12.5", 12.5, true},
		{"bare integer", "3", 3, true},
		{"empty", "", 0, false},
		{"iso without components", "PT", 0, false},
		{"bare P", "P", 0, false},
		{"negative iso", "-PT1S", 0, false},
		{"negative seconds", "-1.5", 0, false},
		{"minutes out of range", "0:75:00", 0, false},
		{"seconds out of range", "0:00:61", 0, false},
		{"garbage", "soon", 0, false},
		{"nan", "NaN", 0, false},
		{"infinity", "Inf", 0, false},
		{"lowercase iso", "pt1s", 0, false},
		{"trailing junk", "PT1Sx", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseDurationOK(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t, tt.want, ParseDuration(tt.input), 1e-9)
		})
	}
}

func TestParseDuration_Overflow(t *testing.T) {
	t.Parallel()

	assert.Zero(t, ParseDuration("PT1e400S"), "exponent form is not a recognised duration")

	digits := make([]byte, 400)
	for i := range digits {
		digits[i] = '9'
	}
	got, ok := ParseDurationOK("P" + string(digits) + "D")
	assert.False(t, ok)
	assert.Zero(t, got)
}

// FuzzParseDuration checks that duration parsing is total.
// Run: go test -fuzz=FuzzParseDuration -fuzztime=30s ./internal/trx
func FuzzParseDuration(f *testing.F) {
	seeds := []string{
		"PT12.5S",
		"PT1M30S",
		"P1DT2H3M4.5S",
		"0:00:01.250",
		"00:00:00.0030000",
		"1.02:03:04.5",
		"12.5",
		"",
		"PT",
		"-PT1S",
		"NaN",
		"9999999999999999999999999999999999999:00:00",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		got, ok := ParseDurationOK(input)
		if got < 0 {
			t.Errorf("ParseDurationOK(%q) = %v, must be non-negative", input, got)
		}
		if !ok && got != 0 {
			t.Errorf("ParseDurationOK(%q) = %v, false; unrecognised input must yield zero", input, got)
		}
		if got != got {
			t.Errorf("ParseDurationOK(%q) returned NaN", input)
		}
	})
}
