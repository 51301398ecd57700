package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CollapseSpace trims a string and squeezes internal whitespace runs
// down to single spaces.
func CollapseSpace(s string) string {
	s = strings.Trim(s, " \n\t")
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// ContainsAnyFold reports whether s contains any of the keywords,
// case-insensitively.
func ContainsAnyFold(s string, keywords []string) bool {
	s = strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// IsUpper reports whether s contains at least one cased rune and no
// lower-case runes.
func IsUpper(s string) bool {
	return s != strings.ToLower(s) && s == strings.ToUpper(s)
}

// TitleCase renders s in English title case. A fresh Caser per call
// since cases.Caser carries state and is not safe for concurrent use.
func TitleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}
