package rosterfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/preston-bernstein/roster-service/internal/domain/roster"
	"github.com/preston-bernstein/roster-service/internal/seed"
)

const minFields = 5

// LoadResult is the outcome of reading a roster file.
type LoadResult struct {
	Records []roster.Record
	// Skipped counts non-empty data lines with fewer than five fields.
	Skipped int
}

// FSStore reads the roster file from disk.
type FSStore struct {
	path string
}

// NewFSStore constructs a roster store backed by the file at path.
func NewFSStore(path string) *FSStore {
	return &FSStore{path: path}
}

// Path returns the roster file location.
func (s *FSStore) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Ensure writes the default roster when the file does not exist yet.
// It reports whether the file was created.
func (s *FSStore) Ensure() (bool, error) {
	if s == nil || s.path == "" {
		return false, errors.New("roster store not configured")
	}
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat roster file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create roster dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, seed.DefaultRoster(), 0o644); err != nil {
		return false, fmt.Errorf("write default roster: %w", err)
	}
	return true, nil
}

// Load reads and parses the roster file.
func (s *FSStore) Load() (LoadResult, error) {
	if s == nil || s.path == "" {
		return LoadResult{}, errors.New("roster store not configured")
	}
	f, err := os.Open(s.path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return LoadResult{}, fmt.Errorf("read roster file: %w", err)
	}
	return res, nil
}

// Parse reads roster lines from r. The first line is a header. Fields are
// split on commas without quoting support and trimmed; trailing empty fields
// are dropped before counting, lines with fewer than five fields are skipped
// and extra fields are ignored. Lines have no length limit. Records receive
// 1-based IDs in load order.
func Parse(r io.Reader) (LoadResult, error) {
	res := LoadResult{Records: []roster.Record{}}
	br := bufio.NewReader(r)

	header := true
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return LoadResult{}, err
		}
		if raw != "" {
			if header {
				header = false
			} else {
				res.add(raw)
			}
		}
		if err != nil {
			return res, nil
		}
	}
}

func (res *LoadResult) add(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return
	}
	parts := splitFields(line)
	if len(parts) < minFields {
		res.Skipped++
		return
	}
	res.Records = append(res.Records, roster.Record{
		ID:       strconv.Itoa(len(res.Records) + 1),
		Name:     strings.TrimSpace(parts[0]),
		Role:     strings.TrimSpace(parts[1]),
		Position: strings.TrimSpace(parts[2]),
		Number:   strings.TrimSpace(parts[3]),
		Type:     strings.TrimSpace(parts[4]),
	})
}

// splitFields splits on commas and drops trailing empty fields, so "a,b,c,,"
// has three fields while "a,b,c,,e" keeps its empty fourth field.
func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
