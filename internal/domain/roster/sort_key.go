package roster

import "strings"

// SortKey selects the ordering applied to a query result.
type SortKey int

const (
	// Alphabetical orders by name; it is the zero value and the fallback.
	Alphabetical SortKey = iota
	JerseyNumber
	Position
)

var sortKeyLabels = map[SortKey]string{
	Alphabetical: "Alphabetical",
	JerseyNumber: "Jersey Number",
	Position:     "Position",
}

var sortKeyAliases = map[string]SortKey{
	"alphabetical":  Alphabetical,
	"name":          Alphabetical,
	"jersey":        JerseyNumber,
	"jersey-number": JerseyNumber,
	"jersey_number": JerseyNumber,
	"jersey number": JerseyNumber,
	"jerseynumber":  JerseyNumber,
	"number":        JerseyNumber,
	"position":      Position,
}

// SortKeys lists the supported keys in dropdown order.
func SortKeys() []SortKey {
	return []SortKey{Alphabetical, JerseyNumber, Position}
}

// ParseSortKey maps a shell label to a SortKey. Unknown or empty labels
// resolve to Alphabetical.
func ParseSortKey(label string) SortKey {
	if key, ok := sortKeyAliases[strings.ToLower(strings.TrimSpace(label))]; ok {
		return key
	}
	return Alphabetical
}

// String returns the dropdown label for the key.
func (k SortKey) String() string {
	if label, ok := sortKeyLabels[k]; ok {
		return label
	}
	return sortKeyLabels[Alphabetical]
}

// MarshalText encodes the key as its label.
func (k SortKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts any label ParseSortKey understands.
func (k *SortKey) UnmarshalText(text []byte) error {
	*k = ParseSortKey(string(text))
	return nil
}
