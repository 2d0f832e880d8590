package catalog

import (
	"regexp"
	"strings"
)

var (
	titleCodePattern   = regexp.MustCompile(`^([A-Za-z]+)[\s*]+(\d+)`)
	queryLetterPattern = regexp.MustCompile(`[A-Za-z]+`)
	queryDigitPattern  = regexp.MustCompile(`\d+`)
)

// CourseCode is a course identifier split into its subject prefix and
// catalog number, e.g. "CS" and "2060".
type CourseCode struct {
	Prefix string
	Number string
}

// ParseTitleCode extracts the course code from a rendered result title.
// Titles lead with "<letters><separator><digits>" where the separator is
// whitespace or "*", e.g. "CS*2060 Intro to Programming".
func ParseTitleCode(title string) (CourseCode, bool) {
	match := titleCodePattern.FindStringSubmatch(strings.TrimSpace(title))
	if match == nil {
		return CourseCode{}, false
	}
	return CourseCode{Prefix: match[1], Number: match[2]}, true
}

// ParseQueryCode extracts the course code the caller asked for. Queries
// arrive URL-ish ("CS+2060", "cs 2060", "CS*2060"), so plus signs are
// stripped and the first letter run and digit run are taken.
func ParseQueryCode(query string) (CourseCode, bool) {
	cleaned := strings.ToUpper(strings.ReplaceAll(query, "+", ""))
	prefix := queryLetterPattern.FindString(cleaned)
	number := queryDigitPattern.FindString(cleaned)
	if prefix == "" || number == "" {
		return CourseCode{}, false
	}
	return CourseCode{Prefix: prefix, Number: number}, true
}

// Matches reports whether two codes identify the same course: prefixes
// equal ignoring case, numbers equal as exact strings. Exact number
// comparison is what keeps a fuzzy search for "CS2" from resolving to
// "CS200".
func (c CourseCode) Matches(other CourseCode) bool {
	return strings.EqualFold(c.Prefix, other.Prefix) && c.Number == other.Number
}
