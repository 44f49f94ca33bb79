package testutil

import (
	"github.com/preston-bernstein/roster-service/internal/domain/roster"
)

// SampleRecord returns a minimal player record with the provided id.
func SampleRecord(id string) roster.Record {
	return roster.Record{
		ID:       id,
		Name:     "Sample Player",
		Role:     roster.RolePlayer,
		Position: "Quarterback",
		Number:   "1",
		Type:     roster.TypeOffense,
	}
}

// SampleRoster returns a small mixed roster with IDs 1..6 in load order.
func SampleRoster() []roster.Record {
	return []roster.Record{
		{ID: "1", Name: "A.J. Brown", Role: roster.RolePlayer, Position: "Wide Receiver", Number: "11", Type: roster.TypeOffense},
		{ID: "2", Name: "Nick Sirianni", Role: roster.RoleCoach, Position: "Head Coach", Number: roster.NotAvailable, Type: roster.NotAvailable},
		{ID: "3", Name: "Jalen Hurts", Role: roster.RolePlayer, Position: "Quarterback", Number: "1", Type: roster.TypeOffense},
		{ID: "4", Name: "Zack Baun", Role: roster.RolePlayer, Position: "Linebacker", Number: "53", Type: roster.TypeDefense},
		{ID: "5", Name: "Vic Fangio", Role: roster.RoleCoach, Position: "Defensive Coordinator", Number: roster.NotAvailable, Type: roster.TypeDefense},
		{ID: "6", Name: "Howie Roseman", Role: roster.RoleStaff, Position: "General Manager", Number: roster.NotAvailable, Type: roster.NotAvailable},
	}
}
