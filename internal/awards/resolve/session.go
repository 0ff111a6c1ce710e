package resolve

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"nextrailer/internal/awards"
	"nextrailer/internal/logging"
	"nextrailer/internal/tmdb"
)

// Snapshot is the complete, consistent result of one resolution batch.
type Snapshot struct {
	BatchID       string
	RequestedYear int
	EffectiveYear int
	Categories    []awards.Category
	Items         map[string][]tmdb.MediaItem

	// Superseded is set when a newer year selection landed while this batch
	// was in flight; its results were not committed to the session.
	Superseded bool
}

// Session owns a nomination set for the lifetime of one browsing session.
// The records are fetched once and treated as immutable; every year
// selection recomputes categories and runs a fresh resolution batch stamped
// with a monotonically increasing generation. Only the batch whose
// generation is still current at commit time becomes visible through
// Current; older in-flight batches are discarded silently.
type Session struct {
	records     []awards.NominationRecord
	coordinator *Coordinator
	logger      *slog.Logger

	mu         sync.Mutex
	generation uint64
	current    *Snapshot
}

// NewSession creates a session over an already-fetched nomination set.
func NewSession(records []awards.NominationRecord, coordinator *Coordinator, logger *slog.Logger) *Session {
	return &Session{
		records:     records,
		coordinator: coordinator,
		logger:      logging.NewComponentLogger(logger, "session"),
	}
}

// LoadSession fetches the nomination feed once and wraps it in a session.
// A feed failure is batch-wide; no session exists without the feed.
func LoadSession(ctx context.Context, feed *awards.FeedClient, coordinator *Coordinator, logger *slog.Logger) (*Session, error) {
	records, err := feed.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return NewSession(records, coordinator, logger), nil
}

// Records returns the immutable nomination set.
func (s *Session) Records() []awards.NominationRecord {
	return s.records
}

// Current returns the last committed snapshot, or nil before the first
// completed selection.
func (s *Session) Current() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Select runs a full reconciliation pass for the requested year: effective
// year selection, category grouping, and batch resolution. The returned
// snapshot is always complete for the requested year; it is additionally
// committed as the session's current state unless a later Select started in
// the meantime, in which case it is marked Superseded and dropped.
func (s *Session) Select(ctx context.Context, requestedYear int) (*Snapshot, error) {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	snapshot := &Snapshot{
		BatchID:       uuid.NewString(),
		RequestedYear: requestedYear,
	}
	snapshot.EffectiveYear = awards.SelectEffectiveYear(s.records, requestedYear)
	snapshot.Categories = awards.GroupByCategory(s.records, snapshot.EffectiveYear)

	logger := s.logger.With(
		logging.String(logging.FieldBatchID, snapshot.BatchID),
		logging.Int(logging.FieldYear, snapshot.EffectiveYear))
	logger.Debug("starting resolution batch",
		logging.Int("requested_year", requestedYear),
		logging.Int("categories", len(snapshot.Categories)))

	items, err := s.coordinator.ResolveAll(ctx, snapshot.Categories)
	if err != nil {
		return nil, err
	}
	snapshot.Items = items

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		snapshot.Superseded = true
		logger.Debug("discarding superseded batch")
		return snapshot, nil
	}
	s.current = snapshot
	return snapshot, nil
}
