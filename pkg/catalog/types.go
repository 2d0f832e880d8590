// Package catalog holds the domain model for one course's offered sections
// and the parsing steps that turn scraped page text into it.
package catalog

import "time"

// Sentinel values stand in for fields the page did not render. Downstream
// code treats them as ordinary strings so no branch ever sees a nil field.
const (
	SentinelNoName = "no name provided"
	SentinelNoSeat = "no seat data"
	SentinelNoDate = "no date info"
)

// CourseRecord is the resolved course, immutable once matched.
type CourseRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RawSectionRow is one scraped, unvalidated section row. DateText is free
// text and may hold SentinelNoDate when no span on the row looked like a
// date range.
type RawSectionRow struct {
	SectionName string
	Professor   *string
	Seats       string
	DateText    string
}

// DateRange is a normalized pair of calendar dates. The page does not
// guarantee Start <= End and neither does this type.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// TermWindow is one entry of the configured academic calendar.
type TermWindow struct {
	Term  string
	Start time.Time
	End   time.Time
}

// ClassifiedSection is a section row whose date range fit inside at least
// one term window.
type ClassifiedSection struct {
	Name      string    `json:"name"`
	Professor *string   `json:"professor,omitempty"`
	Seats     string    `json:"seats"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// TermGroup collects the sections classified under one term.
type TermGroup struct {
	Term     string              `json:"term"`
	Sections []ClassifiedSection `json:"sections"`
}

// Result is the full response payload for one query.
type Result struct {
	Course                CourseRecord `json:"course"`
	SortedCoursesAndTerms []TermGroup  `json:"sortedCoursesAndTerms"`
}
