package visitors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domain "github.com/preston-bernstein/roster-service/internal/domain/visitors"
	"github.com/preston-bernstein/roster-service/internal/logging"
	"github.com/preston-bernstein/roster-service/internal/metrics"
)

// ErrLogWrite marks a registration that was valid but could not be persisted.
var ErrLogWrite = errors.New("visitor log write failed")

// Log persists visitor rows.
type Log interface {
	Append(domain.Visitor) error
}

// Service handles the welcome step.
type Service struct {
	log     Log
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewService constructs a Service writing to log.
func NewService(log Log, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		log:     log,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Register validates a welcome form and appends it to the visitor log.
// A *domain.ValidationError is returned for missing fields; ErrLogWrite
// wraps persistence failures, in which case the returned Visitor is still
// populated so callers can continue.
func (s *Service) Register(ctx context.Context, reg domain.Registration) (domain.Visitor, error) {
	reg = reg.Normalize()
	if err := reg.Validate(); err != nil {
		return domain.Visitor{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Visitor{}, err
	}

	v := domain.Visitor{
		Name:         reg.Name,
		Email:        reg.Email,
		FavoriteTeam: reg.FavoriteTeam,
		LoggedAt:     s.now(),
	}

	logger := logging.FromContext(ctx, s.logger)
	if s.log == nil {
		err := fmt.Errorf("%w: log not configured", ErrLogWrite)
		s.metrics.RecordVisitor(err)
		logging.Warn(logger, "visitor not logged", "error", err)
		return v, err
	}
	if err := s.log.Append(v); err != nil {
		s.metrics.RecordVisitor(err)
		logging.Warn(logger, "visitor not logged", "error", err)
		return v, fmt.Errorf("%w: %w", ErrLogWrite, err)
	}

	s.metrics.RecordVisitor(nil)
	logging.Info(logger, "visitor registered")
	return v, nil
}
