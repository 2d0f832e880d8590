package catalog

import (
	"errors"
	"fmt"
)

// Failure outcomes of a search, distinguished so the boundary layer can
// report each one differently. "No results" and "no exact match" are
// separate: the first means the list never held anything, the second means
// the top hit was some other course.
var (
	ErrNoResults    = errors.New("no results for query")
	ErrNoExactMatch = errors.New("no exact match for query")
)

// RenderError reports that the catalog page failed to reach a rendering
// stage within that stage's budget.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("stage %s did not complete: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Assemble builds the final payload from the resolved course and the raw
// scraped rows. Pure and deterministic: the same inputs always produce the
// same Result, byte for byte once encoded.
func Assemble(course CourseRecord, rows []RawSectionRow, windows []TermWindow) Result {
	return Result{
		Course:                course,
		SortedCoursesAndTerms: ClassifySections(rows, windows),
	}
}
