package roster

import (
	"reflect"
	"strings"
	"testing"
)

func TestOptionsIncludesSentinelsAndKnownValues(t *testing.T) {
	opts := Options(nil)

	if want := []string{AllRoles, RolePlayer, RoleCoach, RoleStaff}; !reflect.DeepEqual(opts.Roles, want) {
		t.Fatalf("expected roles %v, got %v", want, opts.Roles)
	}
	if want := []string{AllTypes, TypeOffense, TypeDefense}; !reflect.DeepEqual(opts.Types, want) {
		t.Fatalf("expected types %v, got %v", want, opts.Types)
	}
	if want := []string{"Alphabetical", "Jersey Number", "Position"}; !reflect.DeepEqual(opts.SortKeys, want) {
		t.Fatalf("expected sort keys %v, got %v", want, opts.SortKeys)
	}
}

func TestOptionsAppendsUnseenValues(t *testing.T) {
	opts := Options([]Record{
		{Role: "Trainer", Type: "Special Teams"},
		{Role: RolePlayer, Type: NotAvailable},
		{Role: "Trainer", Type: "Special Teams"},
	})

	if got := opts.Roles[len(opts.Roles)-1]; got != "Trainer" || len(opts.Roles) != 5 {
		t.Fatalf("expected Trainer appended once, got %v", opts.Roles)
	}
	if got := opts.Types[len(opts.Types)-1]; got != "Special Teams" || len(opts.Types) != 4 {
		t.Fatalf("expected Special Teams appended once without N/A, got %v", opts.Types)
	}
}

func TestFormatDetails(t *testing.T) {
	out := FormatDetails(Record{Name: "Jalen Hurts", Role: RolePlayer, Position: "Quarterback", Number: "1", Type: TypeOffense})

	for _, want := range []string{
		"PLAYER INFORMATION",
		"Number:     #1\n",
		"Name:       Jalen Hurts\n",
		"Position:   Quarterback\n",
		"Role:       Player\n",
		"Type:       Offense\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected details to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatDetailsFillsMissingFields(t *testing.T) {
	out := FormatDetails(Record{Name: "Nobody"})
	if !strings.Contains(out, "Number:     #N/A") || !strings.Contains(out, "Type:       N/A") {
		t.Fatalf("expected N/A placeholders, got:\n%s", out)
	}
}

func TestSummary(t *testing.T) {
	got := Summary(Record{Name: "A.J. Brown", Position: "Wide Receiver", Number: "11"})
	if got != "#11 A.J. Brown - Wide Receiver" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestParseSortKey(t *testing.T) {
	cases := map[string]SortKey{
		"":              Alphabetical,
		"Alphabetical":  Alphabetical,
		"name":          Alphabetical,
		"Jersey Number": JerseyNumber,
		"jersey":        JerseyNumber,
		" number ":      JerseyNumber,
		"POSITION":      Position,
		"bogus":         Alphabetical,
	}
	for label, want := range cases {
		if got := ParseSortKey(label); got != want {
			t.Fatalf("ParseSortKey(%q): expected %s, got %s", label, want, got)
		}
	}
}

func TestSortKeyTextRoundTrip(t *testing.T) {
	text, err := JerseyNumber.MarshalText()
	if err != nil || string(text) != "Jersey Number" {
		t.Fatalf("unexpected marshal result %q, %v", text, err)
	}

	var key SortKey
	if err := key.UnmarshalText([]byte("position")); err != nil || key != Position {
		t.Fatalf("expected Position, got %s (%v)", key, err)
	}

	if SortKey(42).String() != "Alphabetical" {
		t.Fatalf("expected unknown key to render as Alphabetical")
	}
}
