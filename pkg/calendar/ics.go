// Package calendar renders a classified search result as an iCalendar
// feed, one all-day event per section.
package calendar

import (
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"

	"CourseScout/pkg/catalog"
)

// BuildCalendar serializes every classified section of the result into a
// VEVENT spanning its meeting dates. Sections appearing under several
// terms produce one event per term, each tagged with the term name.
func BuildCalendar(result catalog.Result) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//CourseScout//coursescout//EN")

	for _, group := range result.SortedCoursesAndTerms {
		termSlug := strings.ReplaceAll(strings.ToLower(group.Term), " ", "-")
		for index, section := range group.Sections {
			event := cal.AddEvent(fmt.Sprintf("%s-%d@coursescout", termSlug, index))
			event.SetAllDayStartAt(section.StartDate)
			// DTEND is exclusive for all-day events.
			event.SetAllDayEndAt(section.EndDate.AddDate(0, 0, 1))
			event.SetSummary(fmt.Sprintf("%s / %s", result.Course.Name, section.Name))
			event.SetDescription(describeSection(group.Term, section))
		}
	}
	return cal.Serialize()
}

func describeSection(term string, section catalog.ClassifiedSection) string {
	lines := []string{"Term: " + term, "Seats: " + section.Seats}
	if section.Professor != nil {
		lines = append(lines, "Instructor: "+*section.Professor)
	}
	return strings.Join(lines, "\n")
}
