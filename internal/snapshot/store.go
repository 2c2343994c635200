// Package snapshot keeps named, timestamped copies of simulation runs for
// later side-by-side comparison and reload.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpgo/runway-simulator/internal/calculation"
	"github.com/rpgo/runway-simulator/internal/domain"
)

// ErrNotFound is returned for an id that is not in the store
var ErrNotFound = errors.New("snapshot not found")

// Persister writes snapshots through to durable storage.
type Persister interface {
	SaveSnapshot(ctx context.Context, s domain.Snapshot) error
	DeleteSnapshot(ctx context.Context, id string) error
	LoadSnapshots(ctx context.Context) ([]domain.Snapshot, error)
}

// IDGenerator produces unique snapshot ids
type IDGenerator func() string

// UUIDv7 returns time-sortable RFC 9562 ids
func UUIDv7() IDGenerator {
	return func() string {
		return uuid.Must(uuid.NewV7()).String()
	}
}

// Store owns saved snapshots. Every write replaces the whole collection, so a
// slice handed out by List is never modified afterwards. A Store has a single
// logical owner and does no locking.
type Store struct {
	snapshots []domain.Snapshot
	saved     int

	newID     IDGenerator
	now       func() time.Time
	engine    *calculation.ProjectionEngine
	horizon   int
	persister Persister
	logger    calculation.Logger
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator overrides the id strategy (tests use deterministic ids)
func WithIDGenerator(gen IDGenerator) Option { return func(s *Store) { s.newID = gen } }

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithPersister enables write-through persistence
func WithPersister(p Persister) Option { return func(s *Store) { s.persister = p } }

// WithLogger sets the logger
func WithLogger(l calculation.Logger) Option { return func(s *Store) { s.logger = l } }

// WithEngine sets the engine and horizon used when Save is given no precomputed result
func WithEngine(engine *calculation.ProjectionEngine, horizon int) Option {
	return func(s *Store) {
		s.engine = engine
		s.horizon = horizon
	}
}

// New creates an empty in-memory store
func New(opts ...Option) *Store {
	s := &Store{
		newID:   UUIDv7(),
		now:     calculation.Now,
		engine:  calculation.NewProjectionEngine(),
		horizon: domain.DefaultHorizon,
		logger:  calculation.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = calculation.NopLogger{}
	}
	return s
}

// Open creates a store backed by p and loads the snapshots already persisted.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	s := New(append(opts, WithPersister(p))...)
	loaded, err := p.LoadSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshots: %w", err)
	}
	s.snapshots = loaded
	// continue numbering after the highest save so names and colors are not reused
	s.saved = len(loaded)
	for _, snap := range loaded {
		s.saved = max(s.saved, snap.Seq)
	}
	return s, nil
}

// Save stores deep copies of params and the result's series. When result has
// no series the projection is computed with the store's engine.
func (s *Store) Save(ctx context.Context, name string, params domain.SimulationParameters, result domain.RunwayResult) (domain.Snapshot, error) {
	if len(result.Series) == 0 {
		result = s.engine.Run(params, nil, s.horizon)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Snapshot %d", s.saved+1)
	}

	snap := domain.Snapshot{
		ID:           s.newID(),
		Name:         name,
		Timestamp:    s.now().UTC(),
		Parameters:   params,
		RunwayMonths: result.RunwayMonths,
		Series:       result.Series.Clone(),
		DisplayColor: domain.PaletteColor(s.saved),
		Seq:          s.saved + 1,
	}

	if s.persister != nil {
		if err := s.persister.SaveSnapshot(ctx, snap); err != nil {
			return domain.Snapshot{}, fmt.Errorf("persisting snapshot %s: %w", snap.ID, err)
		}
	}

	next := make([]domain.Snapshot, len(s.snapshots), len(s.snapshots)+1)
	copy(next, s.snapshots)
	s.snapshots = append(next, snap)
	s.saved++

	s.logger.Infof("saved snapshot %s (%s) runway=%d", snap.ID, snap.Name, snap.RunwayMonths)
	return snap.Clone(), nil
}

// Delete removes a snapshot. An unknown id changes nothing and returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if s.persister != nil {
		if err := s.persister.DeleteSnapshot(ctx, id); err != nil {
			return fmt.Errorf("deleting snapshot %s: %w", id, err)
		}
	}
	next := make([]domain.Snapshot, 0, len(s.snapshots)-1)
	next = append(next, s.snapshots[:i]...)
	s.snapshots = append(next, s.snapshots[i+1:]...)
	s.logger.Infof("deleted snapshot %s", id)
	return nil
}

// List returns deep copies of all snapshots in insertion order
func (s *Store) List() []domain.Snapshot {
	out := make([]domain.Snapshot, len(s.snapshots))
	for i, snap := range s.snapshots {
		out[i] = snap.Clone()
	}
	return out
}

// Len returns the number of stored snapshots
func (s *Store) Len() int { return len(s.snapshots) }

// Get returns a deep copy of one snapshot
func (s *Store) Get(id string) (domain.Snapshot, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.snapshots[i].Clone(), nil
}

// Load returns a copy of the saved parameters for the editor
func (s *Store) Load(id string) (domain.SimulationParameters, error) {
	snap, err := s.Get(id)
	if err != nil {
		return domain.SimulationParameters{}, err
	}
	return snap.Parameters, nil
}

// Compare reports each snapshot's runway and final cash against the first id.
func (s *Store) Compare(ids ...string) ([]domain.SnapshotDelta, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	snaps := make([]domain.Snapshot, 0, len(ids))
	for _, id := range ids {
		snap, err := s.Get(id)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}

	ref := snaps[0]
	out := make([]domain.SnapshotDelta, 0, len(snaps))
	for i, snap := range snaps {
		out = append(out, domain.SnapshotDelta{
			ID:             snap.ID,
			Name:           snap.Name,
			RunwayMonths:   snap.RunwayMonths,
			RunwayDelta:    snap.RunwayMonths - ref.RunwayMonths,
			FinalCash:      snap.Series.FinalCash(),
			FinalCashDelta: snap.Series.FinalCash().Sub(ref.Series.FinalCash()),
			DisplayColor:   snap.DisplayColor,
			IsReference:    i == 0,
		})
	}
	return out, nil
}

func (s *Store) indexOf(id string) int {
	for i, snap := range s.snapshots {
		if snap.ID == id {
			return i
		}
	}
	return -1
}
