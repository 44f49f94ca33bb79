// Package seed embeds the static data the service ships with: the default
// roster written when no roster file exists and the team metadata.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/preston-bernstein/roster-service/internal/domain/team"
)

// RosterHeader is the first line of every roster file.
const RosterHeader = "Name,Role,Position,Number,Offense/Defense"

//go:embed team.csv
var defaultRoster []byte

//go:embed team.json
var teamJSON []byte

// DefaultRoster returns a copy of the default roster file contents.
func DefaultRoster() []byte {
	return append([]byte(nil), defaultRoster...)
}

// Team decodes the embedded team metadata.
func Team() (team.Team, error) {
	var t team.Team
	if err := json.Unmarshal(teamJSON, &t); err != nil {
		return team.Team{}, fmt.Errorf("decode team seed: %w", err)
	}
	return t, nil
}
