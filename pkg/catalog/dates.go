package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateRangeSeparator = " - "

var dateRangePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4} - \d{1,2}/\d{1,2}/\d{2,4}$`)

// MatchesDateRange reports whether trimmed text looks like
// "MM/DD/YYYY - MM/DD/YYYY" (two-digit years accepted).
func MatchesDateRange(text string) bool {
	return dateRangePattern.MatchString(strings.TrimSpace(text))
}

// ParseDateRange normalizes a "<start> - <end>" string into a DateRange.
// The page emits these as free-form localized text, so every step is
// defensive: a missing separator, a side that is not three numeric
// /-separated parts, a zero component, or an impossible calendar date all
// reject the input. Rejection returns ok=false, never an error; the caller
// drops the row from classification.
func ParseDateRange(raw string) (DateRange, bool) {
	parts := strings.Split(raw, dateRangeSeparator)
	if len(parts) != 2 {
		return DateRange{}, false
	}
	start, startOK := parseDate(parts[0])
	end, endOK := parseDate(parts[1])
	if !startOK || !endOK {
		return DateRange{}, false
	}
	return DateRange{Start: start, End: end}, true
}

func parseDate(raw string) (time.Time, bool) {
	fields := strings.Split(strings.TrimSpace(raw), "/")
	if len(fields) != 3 {
		return time.Time{}, false
	}
	month := numericOrZero(fields[0])
	day := numericOrZero(fields[1])
	year := numericOrZero(fields[2])
	// A zero month, day or year is never a valid calendar component, and it
	// is also what a non-numeric field collapses to.
	if month == 0 || day == 0 || year == 0 {
		return time.Time{}, false
	}
	if year < 100 {
		year += 2000
	}
	candidate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (month 13 becomes
	// January), so round-trip to catch impossible dates.
	if candidate.Year() != year || candidate.Month() != time.Month(month) || candidate.Day() != day {
		return time.Time{}, false
	}
	return candidate, true
}

func numericOrZero(field string) int {
	value, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0
	}
	return value
}
