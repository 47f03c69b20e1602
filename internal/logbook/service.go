package logbook

import (
	"context"
	"time"

	"github.com/aldoforce/apex-logger-services/pkg/log"
)

// DefaultBaseName is the log family new services write under.
const DefaultBaseName = "log"

// FlushObserver is an optional hook invoked once per flush attempt that
// reached the store. Implementations may emit metrics.
type FlushObserver interface {
	ObserveFlush(elapsed time.Duration, pendingBytes int, decision Decision, fallback bool, err error)
}

type noopObserver struct{}

func (noopObserver) ObserveFlush(time.Duration, int, Decision, bool, error) {}

// Service orchestrates the buffer, the store, and the rotation policy. One
// instance per logical owner; not safe for concurrent mutation.
type Service struct {
	store       Store
	buf         *Buffer
	baseName    string
	maxLen      int
	recentLimit int
	logger      log.Logger
	observer    FlushObserver
}

// Option configures a Service at construction.
type Option func(*Service)

// WithBaseName sets the log family name records are grouped under.
func WithBaseName(name string) Option {
	return func(s *Service) { s.baseName = name }
}

// WithMaxLogLength overrides the rotation threshold.
func WithMaxLogLength(n int) Option {
	return func(s *Service) { s.maxLen = n }
}

// WithRecentLimit overrides the listing cap used by Recent.
func WithRecentLimit(n int) Option {
	return func(s *Service) { s.recentLimit = n }
}

// WithLogger sets the process logger.
func WithLogger(logger log.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithObserver sets the flush metrics hook.
func WithObserver(obs FlushObserver) Option {
	return func(s *Service) { s.observer = obs }
}

// WithClock injects the message capture clock. Tests use this to pin
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.buf = NewBufferWithClock(now) }
}

// New builds a Service over the given store.
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:       store,
		buf:         NewBuffer(),
		baseName:    DefaultBaseName,
		maxLen:      DefaultMaxLogLength,
		recentLimit: DefaultRecentLimit,
		logger:      log.Nop(),
		observer:    noopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetBaseName changes the log family at runtime. Subsequent flushes and
// queries use the new name.
func (s *Service) SetBaseName(name string) *Service {
	s.baseName = name
	return s
}

// BaseName returns the current log family name.
func (s *Service) BaseName() string { return s.baseName }

// Append buffers one timestamped message.
func (s *Service) Append(text string) *Service {
	s.buf.Append(text)
	return s
}

// AppendError buffers a five-entry error block.
func (s *Service) AppendError(ec ErrorContext) *Service {
	s.buf.AppendError(ec)
	return s
}

// AppendSeparator buffers the fixed divider line.
func (s *Service) AppendSeparator() *Service {
	s.buf.AppendSeparator()
	return s
}

// AppendSection buffers the fixed blank block.
func (s *Service) AppendSection() *Service {
	s.buf.AppendSection()
	return s
}

// Buffered reports the number of entries waiting for the next flush.
func (s *Service) Buffered() int { return s.buf.Len() }

// Flush persists the buffered batch.
//
// The primary attempt fetches the latest record under the base name (creating
// one if none exists), applies the rotation policy, and writes the merged
// body. On any failure it falls back once: force-create a fresh record and
// write the pending batch alone, as a rotation would. An error from the
// fallback propagates.
//
// The buffer is cleared before Flush returns in every case, success or
// failure: callers observe messages as delivered even when persistence
// ultimately failed.
func (s *Service) Flush(ctx context.Context) error {
	if s.buf.Len() == 0 {
		return nil
	}
	defer s.buf.Clear()

	pending := s.buf.Drain()
	if err := s.flushPrimary(ctx, pending); err != nil {
		s.logger.Warn("primary flush failed, recreating record",
			log.Str("base", s.baseName), log.Err(err))
		if ferr := s.flushFallback(ctx, pending); ferr != nil {
			s.logger.Error("fallback flush failed, batch dropped",
				log.Str("base", s.baseName), log.Int("bytes", len(pending)), log.Err(ferr))
			return ferr
		}
	}
	return nil
}

func (s *Service) flushPrimary(ctx context.Context, pending string) error {
	start := time.Now()
	decision := Append

	err := func() error {
		rec, err := s.store.FetchLatest(ctx, s.baseName)
		if err != nil {
			return err
		}
		if rec == nil {
			if rec, err = s.store.Create(ctx, s.baseName); err != nil {
				return err
			}
		}

		decision = Decide(len(rec.Body), len(pending), s.maxLen)
		if decision == Rotate {
			// Fresh record instead of the resolved one; the old body stays behind.
			if rec, err = s.store.Create(ctx, s.baseName); err != nil {
				return err
			}
			rec.Body = pending
		} else {
			rec.Body = pending + rec.Body
		}
		return s.store.Update(ctx, rec)
	}()

	s.observer.ObserveFlush(time.Since(start), len(pending), decision, false, err)
	return err
}

func (s *Service) flushFallback(ctx context.Context, pending string) error {
	start := time.Now()

	err := func() error {
		rec, err := s.store.Create(ctx, s.baseName)
		if err != nil {
			return err
		}
		rec.Body = pending
		return s.store.Update(ctx, rec)
	}()

	s.observer.ObserveFlush(time.Since(start), len(pending), Rotate, true, err)
	return err
}

// Current returns the latest record under the base name, or nil when none
// exists yet.
func (s *Service) Current(ctx context.Context) (*Record, error) {
	return s.store.FetchLatest(ctx, s.baseName)
}

// Recent lists metadata for the most recent records under the base name,
// newest first, capped at the configured limit.
func (s *Service) Recent(ctx context.Context) ([]RecordInfo, error) {
	return s.store.FetchRecent(ctx, s.baseName, s.recentLimit)
}
