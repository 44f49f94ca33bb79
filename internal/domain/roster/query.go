package roster

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Query returns the records that satisfy criteria, ordered by its sort key.
// The input is never modified and the result is a new slice owned by the caller.
func Query(records []Record, criteria Criteria) []Record {
	m := newMatcher(criteria)

	result := make([]Record, 0, len(records))
	for _, r := range records {
		if m.matches(r) {
			result = append(result, r)
		}
	}

	slices.SortStableFunc(result, comparator(criteria.SortKey))
	return result
}

// Matches reports whether a single record passes the criteria's filters.
func Matches(r Record, criteria Criteria) bool {
	return newMatcher(criteria).matches(r)
}

// IsNoFilter reports whether a role or type filter value means "match everything".
func IsNoFilter(value string) bool {
	switch value {
	case "", AllFilter, AllRoles, AllTypes:
		return true
	default:
		return false
	}
}

type matcher struct {
	lower      cases.Caser
	search     string
	lowered    string
	roleFilter string
	typeFilter string
}

func newMatcher(criteria Criteria) matcher {
	// cases.Caser is stateful; each matcher gets its own.
	lower := cases.Lower(language.Und)
	search := strings.TrimSpace(criteria.SearchText)
	return matcher{
		lower:      lower,
		search:     search,
		lowered:    lower.String(search),
		roleFilter: criteria.RoleFilter,
		typeFilter: criteria.TypeFilter,
	}
}

func (m matcher) matches(r Record) bool {
	return m.matchesSearch(r) &&
		(IsNoFilter(m.roleFilter) || m.roleFilter == r.Role) &&
		(IsNoFilter(m.typeFilter) || m.typeFilter == r.Type)
}

func (m matcher) matchesSearch(r Record) bool {
	if m.search == "" {
		return true
	}
	return strings.Contains(m.lower.String(r.Name), m.lowered) ||
		r.Number == m.search ||
		strings.Contains(m.lower.String(r.Position), m.lowered)
}

func comparator(key SortKey) func(a, b Record) int {
	switch key {
	case JerseyNumber:
		return func(a, b Record) int { return CompareNumbers(a.Number, b.Number) }
	case Position:
		return func(a, b Record) int { return strings.Compare(a.Position, b.Position) }
	default:
		return func(a, b Record) int { return strings.Compare(a.Name, b.Name) }
	}
}

// IsUnknownNumber reports whether a jersey number is empty or the N/A sentinel.
func IsUnknownNumber(number string) bool {
	return number == "" || strings.EqualFold(number, NotAvailable)
}

// CompareNumbers orders jersey numbers numerically with unknown numbers last.
// A value that is neither unknown nor a valid integer compares equal to
// anything known, so it keeps its input position relative to its neighbours.
func CompareNumbers(a, b string) int {
	unknownA, unknownB := IsUnknownNumber(a), IsUnknownNumber(b)
	switch {
	case unknownA && unknownB:
		return 0
	case unknownA:
		return 1
	case unknownB:
		return -1
	}

	na, errA := strconv.ParseInt(a, 10, 32)
	nb, errB := strconv.ParseInt(b, 10, 32)
	if errA != nil || errB != nil {
		return 0
	}
	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	default:
		return 0
	}
}
