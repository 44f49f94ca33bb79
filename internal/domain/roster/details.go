package roster

import "strings"

const detailsRule = "═══════════════════════════════════════"

// FormatDetails renders the detail panel text for a record.
func FormatDetails(r Record) string {
	var sb strings.Builder
	sb.WriteString(detailsRule + "\n")
	sb.WriteString("  PLAYER INFORMATION\n")
	sb.WriteString(detailsRule + "\n\n")
	sb.WriteString("  Number:     #" + orNotAvailable(r.Number) + "\n")
	sb.WriteString("  Name:       " + orNotAvailable(r.Name) + "\n")
	sb.WriteString("  Position:   " + orNotAvailable(r.Position) + "\n")
	sb.WriteString("  Role:       " + orNotAvailable(r.Role) + "\n")
	sb.WriteString("  Type:       " + orNotAvailable(r.Type) + "\n")
	sb.WriteString("\n" + detailsRule + "\n")
	return sb.String()
}

// Summary renders the single-line list entry for a record.
func Summary(r Record) string {
	return "#" + orNotAvailable(r.Number) + " " + r.Name + " - " + r.Position
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
