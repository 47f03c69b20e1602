// Package namespace manages the folder metadata under which log records are
// filed. Record creation resolves the configured namespace and fails when it
// does not exist; provisioning happens separately via Ensure.
package namespace

import (
	"encoding/json"
	"errors"
	"time"

	pebblestore "github.com/aldoforce/apex-logger-services/internal/storage/pebble"
)

// ErrNotFound is returned by Resolve when the namespace has not been provisioned.
var ErrNotFound = errors.New("namespace not found")

// Meta holds namespace metadata.
type Meta struct {
	Name        string `json:"name"`
	CreatedAtMs int64  `json:"createdAtMs"`
}

var nsMetaPrefix = []byte("nsmeta/")

// nsMetaKey builds the metadata key for a namespace.
func nsMetaKey(ns string) []byte {
	k := make([]byte, 0, len(nsMetaPrefix)+len(ns))
	k = append(k, nsMetaPrefix...)
	k = append(k, ns...)
	return k
}

// Ensure creates a namespace meta record if absent, returning the effective
// meta. Idempotent: returns existing if already present.
func Ensure(db *pebblestore.DB, name string) (Meta, error) {
	if m, err := Resolve(db, name); err == nil {
		return m, nil
	} else if !errors.Is(err, ErrNotFound) {
		return Meta{}, err
	}
	m := Meta{Name: name, CreatedAtMs: time.Now().UnixMilli()}
	bytes, err := json.Marshal(m)
	if err != nil {
		return Meta{}, err
	}
	if err := db.Set(nsMetaKey(name), bytes); err != nil {
		return Meta{}, err
	}
	return m, nil
}

// Resolve looks up an existing namespace. Returns ErrNotFound when the
// namespace has never been provisioned or its meta record is unreadable.
func Resolve(db *pebblestore.DB, name string) (Meta, error) {
	b, err := db.Get(nsMetaKey(name))
	if err != nil {
		if errors.Is(err, pebblestore.ErrNotFound) {
			return Meta{}, ErrNotFound
		}
		return Meta{}, err
	}
	var m Meta
	if err := json.Unmarshal(b, &m); err != nil {
		return Meta{}, ErrNotFound
	}
	return m, nil
}
