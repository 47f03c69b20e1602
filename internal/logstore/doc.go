// Package logstore is the Pebble-backed implementation of the logbook Store.
//
// # Keyspace
//
// Records are stored under lexicographically sortable keys:
//
//	ns/{namespace}/rec/{sortKey}
//
// The sortKey suffix is the base name plus a compact UTC timestamp, so a
// reverse scan over the base-name prefix yields records newest first and the
// first hit is the latest record.
//
// # Value encoding
//
// Values are framed as: varint headerLen | header (JSON) | payload |
// crc32c(header|payload). The header carries record metadata and the
// uncompressed body length; the payload is the body, gzip-compressed when
// compression is enabled. Listings decode the header only.
package logstore
