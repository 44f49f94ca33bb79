package metrics

import (
	"sync"
	"time"
)

// Recorder captures lightweight, in-memory counters alongside the optional
// OpenTelemetry instruments.
type Recorder struct {
	mu    sync.Mutex
	stats Snapshot
	otel  *otelInstruments
}

// Snapshot is a copy of the in-memory counters.
type Snapshot struct {
	Queries              int
	LastQueryResults     int
	LastQueryLatency     time.Duration
	RosterLoads          int
	RosterLoadErrors     int
	LastRosterSize       int
	VisitorRegistrations int
	VisitorLogErrors     int
	HTTPRequests         int
	LastHTTPPath         string
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{otel: otel}
}

// RecordQuery tracks one roster query, its result size, and latency.
func (r *Recorder) RecordQuery(sort string, results int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.Queries++
	r.stats.LastQueryResults = results
	r.stats.LastQueryLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordQuery(sort, results, duration)
	}
}

// RecordRosterLoad tracks a roster file load and the number of records it produced.
func (r *Recorder) RecordRosterLoad(records int, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.RosterLoads++
	if err != nil {
		r.stats.RosterLoadErrors++
	} else {
		r.stats.LastRosterSize = records
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRosterLoad(err)
	}
}

// RecordVisitor tracks a welcome registration and whether its log write failed.
func (r *Recorder) RecordVisitor(err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.VisitorRegistrations++
	if err != nil {
		r.stats.VisitorLogErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordVisitor(err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.HTTPRequests++
	r.stats.LastHTTPPath = path
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// Snapshot returns a copy of the current counters.
func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}
