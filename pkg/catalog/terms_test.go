package catalog

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testWindows() []TermWindow {
	return []TermWindow{
		{Term: "Summer 2024", Start: date(2024, time.May, 20), End: date(2024, time.August, 16)},
		{Term: "Fall 2024", Start: date(2024, time.September, 1), End: date(2024, time.December, 20)},
		{Term: "Spring 2025", Start: date(2025, time.January, 6), End: date(2025, time.May, 9)},
	}
}

func row(name, dateText string) RawSectionRow {
	return RawSectionRow{SectionName: name, Seats: SentinelNoSeat, DateText: dateText}
}

func TestClassifySections(t *testing.T) {
	tests := []struct {
		name string
		rows []RawSectionRow
		want map[string][]string // term -> section names
	}{
		{
			name: "Fully contained in one term",
			rows: []RawSectionRow{row("A", "09/05/2024 - 12/10/2024")},
			want: map[string][]string{"Fall 2024": {"A"}},
		},
		{
			name: "Boundary dates included",
			rows: []RawSectionRow{row("A", "09/01/2024 - 12/20/2024")},
			want: map[string][]string{"Fall 2024": {"A"}},
		},
		{
			name: "Spanning adjacent terms matches neither",
			rows: []RawSectionRow{row("A", "12/01/2024 - 01/05/2025")},
			want: map[string][]string{},
		},
		{
			name: "Unparseable date contributes to no bucket",
			rows: []RawSectionRow{row("A", "00/15/2025 - 05/01/2025"), row("B", SentinelNoDate)},
			want: map[string][]string{},
		},
		{
			name: "Rows keep document order within a bucket",
			rows: []RawSectionRow{
				row("A", "09/05/2024 - 12/10/2024"),
				row("B", "09/03/2024 - 12/16/2024"),
			},
			want: map[string][]string{"Fall 2024": {"A", "B"}},
		},
		{
			name: "Terms keep configured order and empty terms drop",
			rows: []RawSectionRow{
				row("SpringSection", "01/13/2025 - 05/02/2025"),
				row("SummerSection", "06/03/2024 - 07/26/2024"),
			},
			want: map[string][]string{
				"Summer 2024": {"SummerSection"},
				"Spring 2025": {"SpringSection"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := ClassifySections(tt.rows, testWindows())
			if groups == nil {
				t.Fatal("ClassifySections returned nil, want empty slice at minimum")
			}
			if len(groups) != len(tt.want) {
				t.Fatalf("got %d groups %+v, want %d", len(groups), groups, len(tt.want))
			}
			lastIndex := -1
			for _, group := range groups {
				wantNames, ok := tt.want[group.Term]
				if !ok {
					t.Fatalf("unexpected term %q", group.Term)
				}
				if len(group.Sections) != len(wantNames) {
					t.Fatalf("term %q has %d sections, want %d", group.Term, len(group.Sections), len(wantNames))
				}
				for i, section := range group.Sections {
					if section.Name != wantNames[i] {
						t.Errorf("term %q section %d = %q, want %q", group.Term, i, section.Name, wantNames[i])
					}
				}
				index := windowIndex(t, group.Term)
				if index <= lastIndex {
					t.Errorf("term %q out of configured order", group.Term)
				}
				lastIndex = index
			}
		})
	}
}

func windowIndex(t *testing.T, term string) int {
	t.Helper()
	for i, window := range testWindows() {
		if window.Term == term {
			return i
		}
	}
	t.Fatalf("unknown term %q", term)
	return -1
}

func TestClassifySectionsOverlappingWindows(t *testing.T) {
	windows := []TermWindow{
		{Term: "Fall 2024", Start: date(2024, time.September, 1), End: date(2024, time.December, 20)},
		{Term: "Full Year 24-25", Start: date(2024, time.August, 1), End: date(2025, time.May, 31)},
	}
	groups := ClassifySections([]RawSectionRow{row("A", "09/05/2024 - 12/10/2024")}, windows)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2: every containing window records the match", len(groups))
	}
	if groups[0].Term != "Fall 2024" || groups[1].Term != "Full Year 24-25" {
		t.Errorf("unexpected group order: %q, %q", groups[0].Term, groups[1].Term)
	}
}
