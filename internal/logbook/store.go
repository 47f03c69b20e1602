package logbook

import (
	"context"
	"errors"
)

// ErrNamespaceNotFound is returned by Store.Create when the namespace that
// new records are filed under does not resolve. The flush fallback retries
// Create once; a second occurrence propagates to the caller.
var ErrNamespaceNotFound = errors.New("logbook: namespace not found")

// DefaultRecentLimit caps Store.FetchRecent listings.
const DefaultRecentLimit = 10

// Store is the persistence backend for log records.
//
// Implementations live outside this package; see internal/logstore for the
// Pebble-backed adapter.
type Store interface {
	// FetchLatest returns the record with the highest SortKey among those
	// whose name starts with namePrefix, or (nil, nil) when no such record
	// exists. Absence is a normal result, not an error.
	FetchLatest(ctx context.Context, namePrefix string) (*Record, error)

	// FetchRecent returns metadata for records matching namePrefix, ordered
	// by creation time descending, capped at limit. An empty slice is a
	// normal result.
	FetchRecent(ctx context.Context, namePrefix string, limit int) ([]RecordInfo, error)

	// Create resolves the configured namespace and persists a new record
	// with an empty body and synthesized DisplayName/SortKey. Fails with
	// ErrNamespaceNotFound when the namespace does not resolve, without
	// partially creating a record.
	Create(ctx context.Context, baseName string) (*Record, error)

	// Update persists the record's current body. When writes are disabled by
	// the enable flag, Update is a no-op that still reports success.
	Update(ctx context.Context, rec *Record) error
}
