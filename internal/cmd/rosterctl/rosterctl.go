// Package rosterctl implements the command-line roster browser.
package rosterctl

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	rosterapp "github.com/preston-bernstein/roster-service/internal/app/roster"
	"github.com/preston-bernstein/roster-service/internal/domain/roster"
	"github.com/preston-bernstein/roster-service/internal/logging"
	"github.com/preston-bernstein/roster-service/internal/rosterfile"
	"github.com/preston-bernstein/roster-service/internal/store"
)

const defaultRosterFile = "team.csv"

// Config holds rosterctl configuration.
type Config struct {
	RosterFile string
	Criteria   roster.Criteria
	ID         string
	Options    bool
	Verbose    bool
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{RosterFile: envOrDefault(lookup, "ROSTER_FILE", defaultRosterFile)}
	var sortLabel string

	fs.StringVar(&cfg.RosterFile, "roster", cfg.RosterFile, "roster file (created with the default roster when missing)")
	fs.StringVar(&cfg.Criteria.SearchText, "search", "", "match name or position substring, or exact jersey number")
	fs.StringVar(&cfg.Criteria.RoleFilter, "role", roster.AllRoles, "role filter (Player, Coach, Staff)")
	fs.StringVar(&cfg.Criteria.TypeFilter, "type", roster.AllTypes, "type filter (Offense, Defense)")
	fs.StringVar(&sortLabel, "sort", roster.Alphabetical.String(), "sort key (alphabetical, jersey, position)")
	fs.StringVar(&cfg.ID, "id", "", "print the details block for one record")
	fs.BoolVar(&cfg.Options, "options", false, "list filter and sort options")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Criteria.SearchText = strings.TrimSpace(cfg.Criteria.SearchText)
	cfg.Criteria.SortKey = roster.ParseSortKey(sortLabel)
	return cfg, nil
}

// Run loads the roster and prints the query result, a single record, or the options.
func Run(cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	level := "warn"
	if cfg.Verbose {
		level = "debug"
	}
	logger := logging.NewLogger(logging.Config{Level: level, Output: errOut})

	svc := rosterapp.NewService(store.NewMemoryStore(), logger, nil)
	if err := svc.Load(rosterfile.NewFSStore(cfg.RosterFile)); err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	if st := svc.Status(); st.Skipped > 0 {
		logging.Warn(logger, "skipped malformed roster lines", slog.Int(logging.FieldSkipped, st.Skipped))
	}

	switch {
	case cfg.Options:
		printOptions(out, svc.Options())
	case cfg.ID != "":
		rec, ok := svc.RecordByID(cfg.ID)
		if !ok {
			return fmt.Errorf("record %q not found", cfg.ID)
		}
		fmt.Fprint(out, roster.FormatDetails(rec))
	default:
		for _, rec := range svc.Query(cfg.Criteria) {
			fmt.Fprintln(out, roster.Summary(rec))
		}
	}
	return nil
}

func printOptions(out io.Writer, opts roster.FilterOptions) {
	fmt.Fprintf(out, "Roles: %s\n", strings.Join(opts.Roles, ", "))
	fmt.Fprintf(out, "Types: %s\n", strings.Join(opts.Types, ", "))
	fmt.Fprintf(out, "Sort:  %s\n", strings.Join(opts.SortKeys, ", "))
}

func envOrDefault(lookup EnvLookup, key, fallback string) string {
	if lookup == nil {
		return fallback
	}
	if value, ok := lookup(key); ok {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}
