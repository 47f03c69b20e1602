package logbook

import "time"

// Record is one persisted unit of log storage. Instances are owned by the
// backing store; the service references them by ID and SortKey only.
type Record struct {
	// ID is the opaque backend identifier, assigned by the store on creation.
	ID string
	// DisplayName is the human-readable name: base name with word separators
	// replaced by spaces, followed by a local-timezone timestamp.
	DisplayName string
	// SortKey is the machine-sortable unique name: base name plus a compact
	// UTC timestamp. Lexicographic order follows creation time, so the
	// record with the highest SortKey under a base-name prefix is the latest.
	SortKey string
	// Body is the raw text blob, bounded by the configured maximum length.
	Body string

	CreatedAt  time.Time
	ModifiedAt time.Time
}

// RecordInfo is record metadata without the body, as returned by listings.
type RecordInfo struct {
	ID          string
	DisplayName string
	SortKey     string
	BodyLen     int
	CreatedAt   time.Time
	ModifiedAt  time.Time
}
