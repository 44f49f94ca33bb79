package rosterfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/preston-bernstein/roster-service/internal/domain/visitors"
	"github.com/preston-bernstein/roster-service/internal/timeutil"
)

// VisitorLogHeader is written once, when the visitor log is created.
const VisitorLogHeader = "Name,Email,Favorite Team,Login Date/Time"

// VisitorLog appends visitor rows to a CSV file.
type VisitorLog struct {
	mu   sync.Mutex
	path string
}

// NewVisitorLog constructs a visitor log writing to path.
func NewVisitorLog(path string) *VisitorLog {
	return &VisitorLog{path: path}
}

// Path returns the visitor log location.
func (l *VisitorLog) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append writes one visitor row, creating the file with a header first if needed.
func (l *VisitorLog) Append(v visitors.Visitor) error {
	if l == nil || l.path == "" {
		return errors.New("visitor log not configured")
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	_, statErr := os.Stat(l.path)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("stat visitor log: %w", statErr)
	}

	if !exists {
		if dir := filepath.Dir(l.path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create visitor log dir: %w", err)
			}
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open visitor log: %w", err)
	}

	var sb strings.Builder
	if !exists {
		sb.WriteString(VisitorLogHeader + "\n")
	}
	sb.WriteString(FormatVisitorRow(v) + "\n")

	if _, err := f.WriteString(sb.String()); err != nil {
		f.Close()
		return fmt.Errorf("write visitor log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close visitor log: %w", err)
	}
	return nil
}

// FormatVisitorRow renders a visitor as a CSV row without the line terminator.
func FormatVisitorRow(v visitors.Visitor) string {
	return strings.Join([]string{
		EscapeField(v.Name),
		EscapeField(v.Email),
		EscapeField(v.FavoriteTeam),
		timeutil.FormatLogTimestamp(v.LoggedAt),
	}, ",")
}

// EscapeField quotes a value containing a comma, double quote, or newline,
// doubling any inner quotes. Other values are returned unchanged.
func EscapeField(value string) string {
	if !strings.ContainsAny(value, ",\"\n") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
