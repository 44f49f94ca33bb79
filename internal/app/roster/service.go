package roster

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	domain "github.com/preston-bernstein/roster-service/internal/domain/roster"
	"github.com/preston-bernstein/roster-service/internal/logging"
	"github.com/preston-bernstein/roster-service/internal/metrics"
	"github.com/preston-bernstein/roster-service/internal/rosterfile"
)

// Store defines the contract for holding the loaded roster.
type Store interface {
	ListRecords() []domain.Record
	GetRecord(id string) (domain.Record, bool)
	SetRecords([]domain.Record)
}

// Source provides the roster file contents.
type Source interface {
	Ensure() (bool, error)
	Load() (rosterfile.LoadResult, error)
	Path() string
}

// Status describes the outcome of the most recent roster load.
type Status struct {
	Loaded    bool
	Records   int
	Skipped   int
	LastError string
	LoadedAt  time.Time
}

// IsReady reports whether a load has completed without error.
func (s Status) IsReady() bool {
	return s.Loaded && s.LastError == ""
}

// Service runs roster queries against the loaded records.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	statusMu sync.RWMutex
	status   Status
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:   store,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Load synthesizes the roster file if missing and loads it into the store.
// Failures are returned but leave the service usable with an empty roster.
func (s *Service) Load(src Source) error {
	if src == nil {
		return errors.New("roster source not configured")
	}
	path := src.Path()

	created, err := src.Ensure()
	if err != nil {
		logging.Warn(s.logger, "could not create default roster", slog.String(logging.FieldFile, path), "error", err)
	} else if created {
		logging.Info(s.logger, "wrote default roster", slog.String(logging.FieldFile, path))
	}

	res, err := src.Load()
	s.metrics.RecordRosterLoad(len(res.Records), err)
	if err != nil {
		s.store.SetRecords(nil)
		s.setStatus(Status{LastError: err.Error()})
		logging.Error(s.logger, "roster load failed", err, slog.String(logging.FieldFile, path))
		return err
	}

	s.store.SetRecords(res.Records)
	s.setStatus(Status{
		Loaded:   true,
		Records:  len(res.Records),
		Skipped:  res.Skipped,
		LoadedAt: s.now(),
	})
	logging.Info(s.logger, "roster loaded",
		slog.String(logging.FieldFile, path),
		slog.Int(logging.FieldRecords, len(res.Records)),
		slog.Int(logging.FieldSkipped, res.Skipped),
	)
	return nil
}

// Query filters and orders the loaded roster.
func (s *Service) Query(criteria domain.Criteria) []domain.Record {
	start := s.now()
	result := domain.Query(s.store.ListRecords(), criteria)
	elapsed := s.now().Sub(start)

	s.metrics.RecordQuery(criteria.SortKey.String(), len(result), elapsed)
	logging.Debug(s.logger, "roster query",
		slog.String(logging.FieldSort, criteria.SortKey.String()),
		slog.Int(logging.FieldCount, len(result)),
	)
	return result
}

// Records returns every loaded record in load order.
func (s *Service) Records() []domain.Record {
	return s.store.ListRecords()
}

// RecordByID returns a single record if present.
func (s *Service) RecordByID(id string) (domain.Record, bool) {
	return s.store.GetRecord(id)
}

// Options returns the dropdown choices for the loaded roster.
func (s *Service) Options() domain.FilterOptions {
	return domain.Options(s.store.ListRecords())
}

// Status returns the most recent load outcome.
func (s *Service) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

func (s *Service) setStatus(st Status) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status = st
}
