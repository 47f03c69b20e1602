package logstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"

	"github.com/aldoforce/apex-logger-services/internal/logbook"
	"github.com/aldoforce/apex-logger-services/internal/namespace"
	pebblestore "github.com/aldoforce/apex-logger-services/internal/storage/pebble"
	"github.com/aldoforce/apex-logger-services/pkg/log"
	"github.com/aldoforce/apex-logger-services/pkg/stamp"
)

// DefaultNamespace is the folder records are filed under when none is configured.
const DefaultNamespace = "logs"

// Options configures the store adapter.
type Options struct {
	// Namespace is the folder identifier new records are filed under. The
	// namespace must be provisioned before Create succeeds.
	Namespace string
	// Enabled gates Update writes. Read before each update; nil means always
	// enabled. A disabled update reports success without writing.
	Enabled func() bool
	// Compression gzips record bodies at rest.
	Compression bool
	// Stamps issues creation timestamps. Defaults to a fresh generator.
	Stamps *stamp.Generator
	// NewID assigns record identifiers. Defaults to random UUIDs.
	NewID func() string
	// Logger for store-level diagnostics.
	Logger log.Logger
}

// Store implements logbook.Store over Pebble.
type Store struct {
	db       *pebblestore.DB
	ns       string
	enabled  func() bool
	compress bool
	stamps   *stamp.Generator
	newID    func() string
	logger   log.Logger
}

var _ logbook.Store = (*Store)(nil)

// New builds a Store over an open Pebble DB.
func New(db *pebblestore.DB, opts Options) *Store {
	s := &Store{
		db:       db,
		ns:       opts.Namespace,
		enabled:  opts.Enabled,
		compress: opts.Compression,
		stamps:   opts.Stamps,
		newID:    opts.NewID,
		logger:   opts.Logger,
	}
	if s.ns == "" {
		s.ns = DefaultNamespace
	}
	if s.enabled == nil {
		s.enabled = func() bool { return true }
	}
	if s.stamps == nil {
		s.stamps = stamp.NewGenerator()
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.logger == nil {
		s.logger = log.Nop()
	}
	return s
}

// FetchLatest returns the record with the highest sort key under namePrefix,
// or (nil, nil) when none exists.
func (s *Store) FetchLatest(ctx context.Context, namePrefix string) (*logbook.Record, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: KeyRecordPrefix(s.ns, namePrefix),
		UpperBound: KeyRecordPrefixUpper(s.ns, namePrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("logstore: fetch latest: %w", err)
	}
	defer iter.Close()

	if !iter.Last() {
		return nil, nil
	}
	rec, err := decodeRecord(SortKeyFromKey(s.ns, iter.Key()), iter.Value())
	if err != nil {
		return nil, fmt.Errorf("logstore: fetch latest: %w", err)
	}
	return rec, nil
}

// FetchRecent lists record metadata under namePrefix, newest first, capped at
// limit. Corrupt values are skipped.
func (s *Store) FetchRecent(ctx context.Context, namePrefix string, limit int) ([]logbook.RecordInfo, error) {
	if limit <= 0 {
		limit = logbook.DefaultRecentLimit
	}
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: KeyRecordPrefix(s.ns, namePrefix),
		UpperBound: KeyRecordPrefixUpper(s.ns, namePrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("logstore: fetch recent: %w", err)
	}
	defer iter.Close()

	infos := make([]logbook.RecordInfo, 0, limit)
	for ok := iter.Last(); ok && len(infos) < limit; ok = iter.Prev() {
		sortKey := SortKeyFromKey(s.ns, iter.Key())
		info, err := decodeInfo(sortKey, iter.Value())
		if err != nil {
			s.logger.Warn("skipping corrupt record", log.Str("sortKey", sortKey))
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Create resolves the namespace and persists a fresh record with an empty
// body. Nothing is written when the namespace does not resolve.
func (s *Store) Create(ctx context.Context, baseName string) (*logbook.Record, error) {
	if _, err := namespace.Resolve(s.db, s.ns); err != nil {
		if errors.Is(err, namespace.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", logbook.ErrNamespaceNotFound, s.ns)
		}
		return nil, fmt.Errorf("logstore: resolve namespace: %w", err)
	}

	t := s.stamps.Next()
	rec := &logbook.Record{
		ID:          s.newID(),
		DisplayName: stamp.DisplayName(baseName, t),
		SortKey:     stamp.SortKey(baseName, t),
		CreatedAt:   t,
		ModifiedAt:  t,
	}

	val, err := encodeRecord(rec, s.compress)
	if err != nil {
		return nil, fmt.Errorf("logstore: create: %w", err)
	}
	if err := s.db.Set(KeyRecord(s.ns, rec.SortKey), val); err != nil {
		return nil, fmt.Errorf("logstore: create: %w", err)
	}
	s.logger.Debug("record created",
		log.Str("sortKey", rec.SortKey), log.Str("id", rec.ID))
	return rec, nil
}

// Update persists the record's current body. When the enable flag is off the
// call reports success without writing.
func (s *Store) Update(ctx context.Context, rec *logbook.Record) error {
	if !s.enabled() {
		s.logger.Debug("logging disabled, update skipped", log.Str("sortKey", rec.SortKey))
		return nil
	}

	rec.ModifiedAt = s.stamps.Next()
	val, err := encodeRecord(rec, s.compress)
	if err != nil {
		return fmt.Errorf("logstore: update: %w", err)
	}
	if err := s.db.Set(KeyRecord(s.ns, rec.SortKey), val); err != nil {
		return fmt.Errorf("logstore: update: %w", err)
	}
	return nil
}

// Prune deletes the oldest records under namePrefix past the newest keep,
// committing deletes as one batch. Returns the number deleted.
func (s *Store) Prune(ctx context.Context, namePrefix string, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: KeyRecordPrefix(s.ns, namePrefix),
		UpperBound: KeyRecordPrefixUpper(s.ns, namePrefix),
	})
	if err != nil {
		return 0, fmt.Errorf("logstore: prune: %w", err)
	}
	defer iter.Close()

	var keys [][]byte
	for ok := iter.First(); ok; ok = iter.Next() {
		keys = append(keys, append([]byte(nil), iter.Key()...))
	}
	if len(keys) <= keep {
		return 0, nil
	}

	doomed := keys[:len(keys)-keep]
	b := s.db.NewBatch()
	defer b.Close()
	for _, k := range doomed {
		if err := b.Delete(k, nil); err != nil {
			return 0, fmt.Errorf("logstore: prune: %w", err)
		}
	}
	if err := s.db.CommitBatch(ctx, b); err != nil {
		return 0, fmt.Errorf("logstore: prune: %w", err)
	}
	s.logger.Info("pruned records",
		log.Int("deleted", len(doomed)), log.Int("kept", keep))
	return len(doomed), nil
}
