package tfrrs

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"tfrrs-backend/lib/textutil"
)

var parenGroupRegex = regexp.MustCompile(`\(([^)]*)\)`)

// SplitNameAndYear splits a raw athlete name like "JANE DOE (SR-4)"
// into its display name and class-year annotation. The last
// parenthesized group is the year; every parenthetical is stripped from
// the name. All-caps names are assumed to be a styling artifact and are
// re-rendered in title case.
func SplitNameAndYear(raw string) (string, string) {
	if raw == "" {
		return "", ""
	}

	year := ""
	groups := parenGroupRegex.FindAllStringSubmatch(raw, -1)
	if len(groups) > 0 {
		year = strings.TrimSpace(groups[len(groups)-1][1])
	}

	name := parenGroupRegex.ReplaceAllString(raw, "")
	name = textutil.CollapseSpace(name)
	if textutil.IsUpper(name) {
		name = textutil.TitleCase(name)
	}
	return name, year
}

// non-numeric marks that can appear in a time column
var timeFlags = map[string]bool{
	"NT":  true,
	"DNS": true,
	"DNF": true,
	"DQ":  true,
}

// NormalizeTime converts a clock time like "4:05.32" into total seconds.
// Recognized non-numeric flags (NT, DNS, DNF, DQ) are returned as the
// flag value when keepFlags is set and are otherwise treated as
// unparseable. ok is false for anything else that isn't 1-3
// colon-separated numeric segments.
func NormalizeTime(raw string, keepFlags bool) (seconds float64, flag string, ok bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return 0, "", false
	}
	if timeFlags[s] {
		if keepFlags {
			return 0, s, true
		}
		return 0, "", false
	}

	segments := strings.Split(s, ":")
	if len(segments) > 3 {
		return 0, "", false
	}
	total := 0.0
	for _, seg := range segments {
		v, err := strconv.ParseFloat(seg, 64)
		// ParseFloat also accepts "Inf"/"NaN" and negatives, none of
		// which are clock segments
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) || v < 0 {
			return 0, "", false
		}
		total = total*60 + v
	}
	return total, "", true
}
