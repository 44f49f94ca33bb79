package roster

import (
	"reflect"
	"testing"
)

func sampleRecords() []Record {
	return []Record{
		{ID: "1", Name: "A.J. Brown", Role: RolePlayer, Position: "Wide Receiver", Number: "11", Type: TypeOffense},
		{ID: "2", Name: "Nick Sirianni", Role: RoleCoach, Position: "Head Coach", Number: "N/A", Type: "N/A"},
		{ID: "3", Name: "Jalen Hurts", Role: RolePlayer, Position: "Quarterback", Number: "1", Type: TypeOffense},
		{ID: "4", Name: "Zack Baun", Role: RolePlayer, Position: "Linebacker", Number: "53", Type: TypeDefense},
		{ID: "5", Name: "Vic Fangio", Role: RoleCoach, Position: "Defensive Coordinator", Number: "N/A", Type: TypeDefense},
		{ID: "6", Name: "Howie Roseman", Role: RoleStaff, Position: "General Manager", Number: "N/A", Type: "N/A"},
	}
}

func ids(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func numbers(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Number)
	}
	return out
}

func names(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func withNumbers(values ...string) []Record {
	out := make([]Record, 0, len(values))
	for i, v := range values {
		out = append(out, Record{ID: string(rune('a' + i)), Name: "p", Number: v})
	}
	return out
}

func TestQueryNoFiltersKeepsEveryRecord(t *testing.T) {
	records := sampleRecords()
	for _, key := range SortKeys() {
		got := Query(records, Criteria{SortKey: key, RoleFilter: AllRoles, TypeFilter: AllTypes})
		if len(got) != len(records) {
			t.Fatalf("sort %s: expected %d records, got %d", key, len(records), len(got))
		}
	}
}

func TestQueryDefaultSortIsAlphabetical(t *testing.T) {
	got := Query(sampleRecords(), Criteria{})
	want := []string{"A.J. Brown", "Howie Roseman", "Jalen Hurts", "Nick Sirianni", "Vic Fangio", "Zack Baun"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("expected %v, got %v", want, names(got))
	}
}

func TestQueryAlphabeticalIsCaseSensitive(t *testing.T) {
	records := []Record{{Name: "Zach"}, {Name: "Amy"}, {Name: "amy"}}
	got := Query(records, Criteria{SortKey: Alphabetical})
	// Byte order puts every upper-case initial before any lower-case one.
	want := []string{"Amy", "Zach", "amy"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("expected %v, got %v", want, names(got))
	}
}

func TestQuerySortsByPosition(t *testing.T) {
	got := Query(sampleRecords(), Criteria{SortKey: Position})
	want := []string{"5", "6", "2", "4", "3", "1"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestQueryJerseyNumberPutsUnknownLast(t *testing.T) {
	got := Query(withNumbers("10", "2", "N/A", "9", ""), Criteria{SortKey: JerseyNumber})
	want := []string{"2", "9", "10", "N/A", ""}
	if !reflect.DeepEqual(numbers(got), want) {
		t.Fatalf("expected %v, got %v", want, numbers(got))
	}
}

func TestQueryJerseyNumberTreatsSentinelCaseInsensitively(t *testing.T) {
	got := Query(withNumbers("n/a", "7", "N/a", "3"), Criteria{SortKey: JerseyNumber})
	want := []string{"3", "7", "n/a", "N/a"}
	if !reflect.DeepEqual(numbers(got), want) {
		t.Fatalf("expected %v, got %v", want, numbers(got))
	}
}

func TestQueryJerseyNumberUnparseableComparesEqual(t *testing.T) {
	// Regression pin: a malformed number is not reclassified as unknown and
	// compares equal to known numbers, so it blocks reordering around itself.
	cases := []struct {
		in   []string
		want []string
	}{
		{in: []string{"12", "abc"}, want: []string{"12", "abc"}},
		{in: []string{"abc", "12"}, want: []string{"abc", "12"}},
		{in: []string{"N/A", "abc"}, want: []string{"abc", "N/A"}},
		{in: []string{"10", "abc", "2"}, want: []string{"10", "abc", "2"}},
	}
	for _, tc := range cases {
		got := numbers(Query(withNumbers(tc.in...), Criteria{SortKey: JerseyNumber}))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("input %v: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestQuerySearchMatchesNameCaseInsensitively(t *testing.T) {
	got := Query(sampleRecords(), Criteria{SearchText: "jalen"})
	if len(got) != 1 || got[0].Name != "Jalen Hurts" {
		t.Fatalf("expected Jalen Hurts, got %v", names(got))
	}
}

func TestQuerySearchMatchesNumberExactly(t *testing.T) {
	got := Query(sampleRecords(), Criteria{SearchText: "1"})
	if len(got) != 1 || got[0].Name != "Jalen Hurts" {
		t.Fatalf("expected only exact number match, got %v", names(got))
	}

	if got := Query(sampleRecords(), Criteria{SearchText: "01"}); len(got) != 0 {
		t.Fatalf("expected no match for 01, got %v", names(got))
	}
	if got := Query(sampleRecords(), Criteria{SearchText: "N/A"}); len(got) != 3 {
		t.Fatalf("expected 3 N/A numbers, got %v", names(got))
	}
	if got := Query(sampleRecords(), Criteria{SearchText: "n/a"}); len(got) != 0 {
		t.Fatalf("expected number match to be case-sensitive, got %v", names(got))
	}
}

func TestQuerySearchMatchesPositionSubstring(t *testing.T) {
	got := Query(sampleRecords(), Criteria{SearchText: "COACH"})
	want := []string{"Nick Sirianni"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("expected %v, got %v", want, names(got))
	}
}

func TestQuerySearchIsTrimmed(t *testing.T) {
	got := Query(sampleRecords(), Criteria{SearchText: "  hurts "})
	if len(got) != 1 || got[0].Name != "Jalen Hurts" {
		t.Fatalf("expected trimmed search to match, got %v", names(got))
	}
}

func TestQueryRoleFilterIsExact(t *testing.T) {
	got := Query(sampleRecords(), Criteria{RoleFilter: "Play"})
	if len(got) != 0 {
		t.Fatalf("expected substring role filter to match nothing, got %v", names(got))
	}

	got = Query(sampleRecords(), Criteria{RoleFilter: "player"})
	if len(got) != 0 {
		t.Fatalf("expected role filter to be case-sensitive, got %v", names(got))
	}
}

func TestQueryTypeFilter(t *testing.T) {
	got := Query(sampleRecords(), Criteria{TypeFilter: TypeDefense})
	want := []string{"Vic Fangio", "Zack Baun"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("expected %v, got %v", want, names(got))
	}
}

func TestQueryCombinesFilters(t *testing.T) {
	got := Query(sampleRecords(), Criteria{SearchText: "coordinator", RoleFilter: RoleCoach, TypeFilter: TypeDefense})
	if len(got) != 1 || got[0].Name != "Vic Fangio" {
		t.Fatalf("expected Vic Fangio, got %v", names(got))
	}
}

func TestQueryRoleFilterScenario(t *testing.T) {
	records := []Record{
		{Name: "A.J. Brown", Role: "Player", Position: "Wide Receiver", Number: "11", Type: "Offense"},
		{Name: "Nick Sirianni", Role: "Coach", Position: "Head Coach", Number: "N/A", Type: "N/A"},
	}
	got := Query(records, Criteria{RoleFilter: "Player"})
	if len(got) != 1 || got[0] != records[0] {
		t.Fatalf("expected only the player record, got %+v", got)
	}
}

func TestQueryIsIdempotent(t *testing.T) {
	criteria := Criteria{SearchText: "a", TypeFilter: TypeOffense, SortKey: JerseyNumber}
	once := Query(sampleRecords(), criteria)
	twice := Query(once, criteria)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected re-query to be stable, got %v then %v", ids(once), ids(twice))
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := append([]Record(nil), records...)

	got := Query(records, Criteria{SortKey: JerseyNumber})
	if !reflect.DeepEqual(records, before) {
		t.Fatalf("expected input order to be preserved")
	}

	got[0].Name = "mutated"
	if records[0].Name == "mutated" || records[2].Name == "mutated" {
		t.Fatalf("expected result to be independent of input")
	}
}

func TestQueryEmptyInput(t *testing.T) {
	got := Query(nil, Criteria{SearchText: "x"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestIsNoFilter(t *testing.T) {
	for _, v := range []string{"", AllFilter, AllRoles, AllTypes} {
		if !IsNoFilter(v) {
			t.Fatalf("expected %q to be a no-filter sentinel", v)
		}
	}
	if IsNoFilter(RolePlayer) {
		t.Fatalf("expected Player to be a real filter")
	}
}

func TestCompareNumbers(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"9", "10", -1},
		{"10", "9", 1},
		{"7", "7", 0},
		{"", "N/A", 0},
		{"N/A", "1", 1},
		{"1", "n/A", -1},
		{"x", "1", 0},
		{"99999999999", "1", 0},
	}
	for _, tc := range cases {
		if got := CompareNumbers(tc.a, tc.b); got != tc.want {
			t.Fatalf("CompareNumbers(%q, %q): expected %d, got %d", tc.a, tc.b, tc.want, got)
		}
	}
}
