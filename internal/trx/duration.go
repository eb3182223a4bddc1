package trx

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ISO-8601 duration: P[nD][T[nH][nM][nS]], e.g. PT12.34S or PT1M30S.
	isoDurationPattern = regexp.MustCompile(`^P(?:(\d+(?:\.\d+)?)D)?(?:T(?:(\d+(?:\.\d+)?)H)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

	// .NET TimeSpan: [d.]h:mm:ss[.fffffff], e.g. 00:00:01.2500000.
	clockDurationPattern = regexp.MustCompile(`^(?:(\d+)\.)?(\d+):([0-5]?\d):([0-5]?\d(?:\.\d+)?)$`)

	// Bare seconds, e.g. 12.5.
	secondsPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// ParseDuration converts a TRX duration string to seconds.
// Unrecognised text yields zero; it never fails.
func ParseDuration(s string) float64 {
	d, _ := ParseDurationOK(s)
	return d
}

// ParseDurationOK converts a TRX duration string to seconds and reports
// whether the text was recognised. Accepted forms are the ISO-8601 duration
// shorthand (PT12.5S), the TimeSpan clock form (0:00:01.250, optionally with
// a day prefix) and bare decimal seconds.
func ParseDurationOK(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if match := isoDurationPattern.FindStringSubmatch(s); match != nil {
		days, hours, minutes, seconds := match[1], match[2], match[3], match[4]
		if days == "" && hours == "" && minutes == "" && seconds == "" {
			return 0, false
		}
		return combine(days, hours, minutes, seconds)
	}

	if match := clockDurationPattern.FindStringSubmatch(s); match != nil {
		return combine(match[1], match[2], match[3], match[4])
	}

	if secondsPattern.MatchString(s) {
		return combine("", "", "", s)
	}

	return 0, false
}

// combine adds up duration components; empty components count as zero.
func combine(days, hours, minutes, seconds string) (float64, bool) {
	var total float64
	for _, part := range []struct {
		text  string
		scale float64
	}{
		{days, 86400},
		{hours, 3600},
		{minutes, 60},
		{seconds, 1},
	} {
		if part.text == "" {
			continue
		}
		v, err := strconv.ParseFloat(part.text, 64)
		if err != nil {
			return 0, false
		}
		total += v * part.scale
	}
	if math.IsInf(total, 0) || math.IsNaN(total) || total < 0 {
		return 0, false
	}
	return total, true
}
