package catalog

// Contains reports whether the window fully contains the range: the
// section starts on or after the window opens and ends on or before it
// closes. Containment, not overlap: a section spanning two adjacent terms'
// boundary belongs to neither. That exclusion is deliberate and matches
// how the institution lists boundary-crossing offerings.
func (w TermWindow) Contains(r DateRange) bool {
	return !r.Start.Before(w.Start) && !r.End.After(w.End)
}

// ClassifySections buckets raw rows under every term window that fully
// contains their date range. Windows may overlap, so one section can land
// in several buckets; every match is recorded. Rows whose date text does
// not normalize are skipped without failing the batch. Output keeps the
// configured window order and drops terms that collected nothing.
func ClassifySections(rows []RawSectionRow, windows []TermWindow) []TermGroup {
	groups := []TermGroup{}
	for _, window := range windows {
		var bucket []ClassifiedSection
		for _, row := range rows {
			dates, ok := ParseDateRange(row.DateText)
			if !ok {
				continue
			}
			if !window.Contains(dates) {
				continue
			}
			bucket = append(bucket, ClassifiedSection{
				Name:      row.SectionName,
				Professor: row.Professor,
				Seats:     row.Seats,
				StartDate: dates.Start,
				EndDate:   dates.End,
			})
		}
		if len(bucket) > 0 {
			groups = append(groups, TermGroup{Term: window.Term, Sections: bucket})
		}
	}
	return groups
}
