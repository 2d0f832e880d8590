package catalog

import "testing"

func TestParseTitleCode(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		wantOK     bool
		wantPrefix string
		wantNumber string
	}{
		{"Star separator", "CS*2060 Intro to Programming", true, "CS", "2060"},
		{"Space separator", "CS 2060 Intro to Programming", true, "CS", "2060"},
		{"Multiple separator characters", "CS * 2060", true, "CS", "2060"},
		{"Leading whitespace", "  MATH*1350 Calculus", true, "MATH", "1350"},
		{"Words before the number", "Computer Science 200", false, "", ""},
		{"No digits", "CS Seminar", false, "", ""},
		{"Empty", "", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTitleCode(tt.title)
			if ok != tt.wantOK {
				t.Fatalf("ParseTitleCode(%q) ok = %v, want %v", tt.title, ok, tt.wantOK)
			}
			if ok && (got.Prefix != tt.wantPrefix || got.Number != tt.wantNumber) {
				t.Errorf("ParseTitleCode(%q) = %+v, want {%s %s}", tt.title, got, tt.wantPrefix, tt.wantNumber)
			}
		})
	}
}

func TestParseQueryCode(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantOK     bool
		wantPrefix string
		wantNumber string
	}{
		{"Star form", "CS*2060", true, "CS", "2060"},
		{"Space form", "CS 2060", true, "CS", "2060"},
		{"Plus-encoded space", "cs+2060", true, "CS", "2060"},
		{"Lower case", "cs2060", true, "CS", "2060"},
		{"Digits only", "2060", false, "", ""},
		{"Letters only", "CS", false, "", ""},
		{"Empty", "", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseQueryCode(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("ParseQueryCode(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if ok && (got.Prefix != tt.wantPrefix || got.Number != tt.wantNumber) {
				t.Errorf("ParseQueryCode(%q) = %+v, want {%s %s}", tt.query, got, tt.wantPrefix, tt.wantNumber)
			}
		})
	}
}

func TestCourseCodeMatches(t *testing.T) {
	tests := []struct {
		name  string
		query string
		title string
		want  bool
	}{
		{"Exact match star form", "CS*2060", "CS*2060 Intro to Programming", true},
		{"Case-insensitive prefix", "cs 2060", "CS*2060 Intro to Programming", true},
		{"Fuzzy superset must not match", "CS2", "CS*200 Data Structures", false},
		{"Different number", "CS100", "CS*200 Survey", false},
		{"Different prefix", "MATH2060", "CS*2060 Intro to Programming", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queryCode, queryOK := ParseQueryCode(tt.query)
			titleCode, titleOK := ParseTitleCode(tt.title)
			if !queryOK || !titleOK {
				t.Fatalf("setup: parse failed for query=%q title=%q", tt.query, tt.title)
			}
			if got := titleCode.Matches(queryCode); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.title, tt.query, got, tt.want)
			}
		})
	}
}

func TestCourseCodeNoMatchOnUnparseableTitle(t *testing.T) {
	// Query "CS100" against a spelled-out title must resolve to no match:
	// the title has no leading code to compare against.
	if _, ok := ParseTitleCode("Computer Science 200"); ok {
		t.Fatal("expected spelled-out title to fail code parsing")
	}
}
