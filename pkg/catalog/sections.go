package catalog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	sectionRowSelector  = "li.course-section"
	sectionLinkSelector = "a.section-link"
	professorSelector   = ".office-hours .instructor-name"
	seatsSelector       = ".seats-available"
	meetingSpanSelector = ".meeting-times span"
)

// ExtractSections pulls one RawSectionRow per rendered section <li> out of
// the terms-and-sections panel HTML, in document order across all term
// groups. The page's own term grouping is not trusted; classification is
// recomputed from the dates afterwards.
//
// Every field is optional on the page: absent name, seats or dates fall
// back to their sentinels, and an absent office-hours element leaves the
// professor nil.
func ExtractSections(panelHTML string) ([]RawSectionRow, error) {
	document, err := goquery.NewDocumentFromReader(strings.NewReader(panelHTML))
	if err != nil {
		return nil, err
	}

	var rows []RawSectionRow
	document.Find(sectionRowSelector).Each(func(_ int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find(sectionLinkSelector).Text())
		if name == "" {
			name = SentinelNoName
		}

		var professor *string
		if instructor := row.Find(professorSelector); instructor.Length() > 0 {
			text := strings.TrimSpace(instructor.Text())
			professor = &text
		}

		seats := strings.TrimSpace(row.Find(seatsSelector).Text())
		if seats == "" {
			seats = SentinelNoSeat
		}

		// A row may render several timestamp spans (one per weekly meeting
		// pattern); only the first that looks like a date range counts.
		dateText := SentinelNoDate
		row.Find(meetingSpanSelector).EachWithBreak(func(_ int, span *goquery.Selection) bool {
			if text := strings.TrimSpace(span.Text()); MatchesDateRange(text) {
				dateText = text
				return false
			}
			return true
		})

		rows = append(rows, RawSectionRow{
			SectionName: name,
			Professor:   professor,
			Seats:       seats,
			DateText:    dateText,
		})
	})
	return rows, nil
}
